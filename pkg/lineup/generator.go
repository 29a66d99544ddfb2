package lineup

import (
	"errors"
	"math/rand"
	"time"

	"github.com/dugoutapps/lineup-api-go/pkg/models"
	"github.com/sirupsen/logrus"
)

// MaxAttempts caps the randomized search. Past this the generator commits
// the best-scoring candidate seen, or the capability-only fallback if no
// attempt produced a complete lineup.
const MaxAttempts = 1000

var (
	// ErrSittingInfeasible means an inning had fewer bench-eligible players
	// than bench slots. Recoverable: the caller retries with a new draw.
	ErrSittingInfeasible = errors.New("not enough bench-eligible players")

	// ErrSittingUnbalanced means the completed bench plan spread sitting
	// time across players by more than one inning.
	ErrSittingUnbalanced = errors.New("bench time spread exceeds one inning")

	// ErrPositionInfeasible means no available player was eligible for a
	// position. Recoverable: the caller retries rather than backtracking.
	ErrPositionInfeasible = errors.New("no eligible player for position")
)

// Generator assigns a roster to field positions and bench slots across the
// six innings. One Generate call owns all of its working state; callers
// must serialize invocations.
type Generator struct {
	roster       []string
	capabilities models.Capabilities
	attendance   models.Attendance
	rng          *rand.Rand
	log          *logrus.Entry
}

// Result is the terminal outcome of a generation run. The lineup is always
// present; callers must check Validation to learn whether it is compliant.
type Result struct {
	Lineup     models.Lineup
	Validation models.LineupValidation
	Attempts   int
	Fallback   bool
}

// NewGenerator creates a generator for the given roster. The random source
// is seeded from the clock; tests override it with WithRand.
func NewGenerator(roster []string, capabilities models.Capabilities, attendance models.Attendance) *Generator {
	return &Generator{
		roster:       roster,
		capabilities: capabilities,
		attendance:   attendance,
		rng:          rand.New(rand.NewSource(time.Now().UnixNano())),
		log:          logrus.NewEntry(logrus.StandardLogger()),
	}
}

// WithRand replaces the random source, making generation deterministic.
func (g *Generator) WithRand(r *rand.Rand) *Generator {
	g.rng = r
	return g
}

// WithLogger replaces the logger.
func (g *Generator) WithLogger(log *logrus.Entry) *Generator {
	g.log = log
	return g
}

// Attending returns the attending players in roster order.
func (g *Generator) Attending() []string {
	attending := make([]string, 0, len(g.roster))
	for _, player := range g.roster {
		if g.attendance.IsAttending(player) {
			attending = append(attending, player)
		}
	}
	return attending
}

// Generate runs the bounded retry search: draw a bench plan, fill the
// positions, validate, keep the best-scoring candidate. A valid lineup
// stops the search; exhaustion commits the best invalid candidate, or the
// capability-only fallback if no attempt ever completed.
func (g *Generator) Generate() *Result {
	attending := g.Attending()

	var best models.Lineup
	var bestValidation models.LineupValidation
	bestScore := 0

	for attempt := 1; attempt <= MaxAttempts; attempt++ {
		sitting, err := g.generateSitting(attending)
		if err != nil {
			continue
		}

		candidate, err := g.generatePositions(attending, sitting)
		if err != nil {
			continue
		}

		validation := Validate(candidate, attending)
		if validation.IsValid {
			g.log.WithFields(logrus.Fields{
				"attempts":  attempt,
				"attending": len(attending),
			}).Debug("Lineup generated")
			return &Result{
				Lineup:     candidate,
				Validation: validation,
				Attempts:   attempt,
			}
		}

		// Score by violation count; ties keep the earliest candidate.
		score := -len(validation.Errors)
		if best == nil || score > bestScore {
			best = candidate.Clone()
			bestValidation = validation
			bestScore = score
		}
	}

	if best != nil {
		g.log.WithFields(logrus.Fields{
			"attempts":   MaxAttempts,
			"violations": len(bestValidation.Errors),
		}).Warn("No valid lineup within attempt budget, committing best candidate")
		return &Result{
			Lineup:     best,
			Validation: bestValidation,
			Attempts:   MaxAttempts,
		}
	}

	g.log.WithFields(logrus.Fields{
		"attempts":  MaxAttempts,
		"attending": len(attending),
	}).Warn("No complete candidate produced, using capability-only fallback")
	fallback := g.generateSimple(attending)
	return &Result{
		Lineup:     fallback,
		Validation: Validate(fallback, attending),
		Attempts:   MaxAttempts,
		Fallback:   true,
	}
}

// sittingSlots returns the bench size per inning for n attending players.
func sittingSlots(n int) int {
	if n <= models.FieldersPerInning {
		return 0
	}
	return n - models.FieldersPerInning
}

// newLineup allocates empty rows for the nine positions plus slots bench rows.
func newLineup(slots int) models.Lineup {
	l := make(models.Lineup, len(models.Positions)+slots)
	for _, pos := range models.Positions {
		l[string(pos)] = make([]string, models.Innings)
	}
	for k := 1; k <= slots; k++ {
		l[SittingKey(k)] = make([]string, models.Innings)
	}
	return l
}
