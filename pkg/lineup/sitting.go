package lineup

import (
	"sort"

	"github.com/dugoutapps/lineup-api-go/pkg/models"
)

// generateSitting builds the bench plan for all six innings. Each inning it
// ranks the attending players by (still below the target sit count, then
// fewest sits so far, random tiebreak) and benches the top of the ranking.
// Players already at target+1 sits are never benched again; if that leaves
// too few candidates the draw fails and the caller retries.
//
// A completed plan is still rejected when the final max-min sit spread
// exceeds one inning. The incremental heuristic almost always lands inside
// the gate, but it is not guaranteed to, so the gate is checked explicitly.
func (g *Generator) generateSitting(attending []string) (models.SittingAssignment, error) {
	var plan models.SittingAssignment

	perInning := sittingSlots(len(attending))
	if perInning == 0 {
		return plan, nil
	}

	target := perInning * models.Innings / len(attending)
	maxSits := target + 1

	counts := make(map[string]int, len(attending))

	for inning := 0; inning < models.Innings; inning++ {
		ranked := append([]string(nil), attending...)
		g.rng.Shuffle(len(ranked), func(i, j int) {
			ranked[i], ranked[j] = ranked[j], ranked[i]
		})
		sort.SliceStable(ranked, func(i, j int) bool {
			belowI := counts[ranked[i]] < target
			belowJ := counts[ranked[j]] < target
			if belowI != belowJ {
				return belowI
			}
			return counts[ranked[i]] < counts[ranked[j]]
		})

		eligible := make([]string, 0, len(ranked))
		for _, player := range ranked {
			if counts[player] < maxSits {
				eligible = append(eligible, player)
			}
		}
		if len(eligible) < perInning {
			return plan, ErrSittingInfeasible
		}

		selected := eligible[:perInning]
		plan[inning] = append([]string(nil), selected...)
		for _, player := range selected {
			counts[player]++
		}
	}

	minSits, maxSeen := counts[attending[0]], counts[attending[0]]
	for _, player := range attending {
		if counts[player] < minSits {
			minSits = counts[player]
		}
		if counts[player] > maxSeen {
			maxSeen = counts[player]
		}
	}
	if maxSeen-minSits > 1 {
		return plan, ErrSittingUnbalanced
	}

	return plan, nil
}
