package models

// Position is one of the nine fixed defensive positions.
type Position string

const (
	Pitcher     Position = "Pitcher"
	Catcher     Position = "Catcher"
	FirstBase   Position = "1st Base"
	SecondBase  Position = "2nd Base"
	ThirdBase   Position = "3rd Base"
	Shortstop   Position = "Shortstop"
	LeftField   Position = "Left Field"
	CenterField Position = "Center Field"
	RightField  Position = "Right Field"
)

// Innings is the fixed number of innings in a game.
const Innings = 6

// FieldersPerInning is the number of defensive positions filled each inning.
const FieldersPerInning = 9

// Positions lists all nine positions in declared order. Generators iterate
// this slice, so the fill order is the same every run.
var Positions = []Position{
	Pitcher, Catcher, FirstBase, SecondBase, ThirdBase,
	Shortstop, LeftField, CenterField, RightField,
}

var infield = map[Position]bool{
	Pitcher:    true,
	Catcher:    true,
	FirstBase:  true,
	SecondBase: true,
	ThirdBase:  true,
	Shortstop:  true,
}

// IsInfield reports whether p is an infield position.
func (p Position) IsInfield() bool {
	return infield[p]
}

// ValidPosition reports whether s is one of the nine position labels.
func ValidPosition(s string) bool {
	for _, p := range Positions {
		if string(p) == s {
			return true
		}
	}
	return false
}

// Capabilities maps a player name to the set of positions they may play.
// A player with an empty set cannot be scheduled to any field position.
type Capabilities map[string][]Position

// Can reports whether player may play pos.
func (c Capabilities) Can(player string, pos Position) bool {
	for _, p := range c[player] {
		if p == pos {
			return true
		}
	}
	return false
}

// Attendance maps a player name to whether they are present for the game.
// A player absent from the map is attending.
type Attendance map[string]bool

// IsAttending reports whether player is present. Unset defaults to true.
func (a Attendance) IsAttending(player string) bool {
	attending, ok := a[player]
	return !ok || attending
}

// SittingAssignment holds, per inning, the ordered list of players on the
// bench that inning.
type SittingAssignment [Innings][]string

// Lineup maps a row key to a 6-entry array of player names. Keys are the
// nine position labels plus "Sitting 1".."Sitting N" bench rows. The empty
// string marks an unfilled slot.
type Lineup map[string][]string

// Clone returns a deep copy of the lineup.
func (l Lineup) Clone() Lineup {
	out := make(Lineup, len(l))
	for key, row := range l {
		out[key] = append([]string(nil), row...)
	}
	return out
}

// PlayerStats accumulates one player's assignments during generation and
// validation. Always recomputed from scratch, never cached across calls.
type PlayerStats struct {
	PositionCounts map[Position]int
	InfieldInnings int
	BenchInnings   int
	// LastInning records the most recent inning played at each position,
	// needed for the Pitcher/Catcher consecutive-run rule.
	LastInning map[Position]int
}

// NewPlayerStats returns a zeroed stats record.
func NewPlayerStats() *PlayerStats {
	return &PlayerStats{
		PositionCounts: make(map[Position]int),
		LastInning:     make(map[Position]int),
	}
}

// Record notes that the player played pos in the given inning.
func (s *PlayerStats) Record(pos Position, inning int) {
	s.PositionCounts[pos]++
	s.LastInning[pos] = inning
	if pos.IsInfield() {
		s.InfieldInnings++
	}
}

// LineupValidation reports whether a lineup satisfies the league rules,
// with one human-readable message per violation. Messages are surfaced
// verbatim to end users.
type LineupValidation struct {
	IsValid bool     `json:"is_valid"`
	Errors  []string `json:"errors"`
}

// GenerateInput is the payload for the lineup generation endpoint.
type GenerateInput struct {
	Roster       []string            `json:"roster"`
	Capabilities map[string][]string `json:"capabilities"`
	Attendance   map[string]bool     `json:"attendance"`
}

// GenerateResponse is the lineup generation result.
type GenerateResponse struct {
	Lineup     Lineup           `json:"lineup"`
	Validation LineupValidation `json:"validation"`
	Attempts   int              `json:"attempts"`
	Fallback   bool             `json:"fallback"`
	Fairness   *FairnessReport  `json:"fairness,omitempty"`
}

// PlayerFairness is one player's share of field and bench time.
type PlayerFairness struct {
	Player          string `json:"player"`
	FieldInnings    int    `json:"field_innings"`
	InfieldInnings  int    `json:"infield_innings"`
	OutfieldInnings int    `json:"outfield_innings"`
	BenchInnings    int    `json:"bench_innings"`
}

// FairnessReport is the read-only analytics summary for a finished lineup.
// It is descriptive and never feeds back into generation.
type FairnessReport struct {
	Players         []PlayerFairness `json:"players"`
	PositionVariety map[string]int   `json:"position_variety"`
	FairnessScore   float64          `json:"fairness_score"`
}
