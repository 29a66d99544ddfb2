package lineup

import (
	"fmt"

	"github.com/dugoutapps/lineup-api-go/pkg/models"
)

// SittingKey returns the lineup row key for the k-th bench seat (1-based).
func SittingKey(k int) string {
	return fmt.Sprintf("Sitting %d", k)
}

// generatePositions fills all nine positions for every inning, honoring the
// predetermined bench plan. Positions are filled in declared order; each
// slot picks uniformly at random among the eligible available players. An
// empty eligible set fails the whole attempt — there is no backtracking
// within an attempt, failures are handled by the outer retry loop.
func (g *Generator) generatePositions(attending []string, sitting models.SittingAssignment) (models.Lineup, error) {
	slots := sittingSlots(len(attending))
	result := newLineup(slots)

	stats := make(map[string]*models.PlayerStats, len(attending))
	for _, player := range attending {
		stats[player] = models.NewPlayerStats()
	}

	for inning := 0; inning < models.Innings; inning++ {
		benched := make(map[string]bool, len(sitting[inning]))
		for _, player := range sitting[inning] {
			benched[player] = true
		}

		available := make([]string, 0, len(attending))
		for _, player := range attending {
			if !benched[player] {
				available = append(available, player)
			}
		}

		for _, pos := range models.Positions {
			eligible := make([]string, 0, len(available))
			for _, player := range available {
				if g.canAssign(player, pos, inning, stats[player]) {
					eligible = append(eligible, player)
				}
			}
			if len(eligible) == 0 {
				return nil, fmt.Errorf("%w: %s in inning %d", ErrPositionInfeasible, pos, inning+1)
			}

			pick := eligible[g.rng.Intn(len(eligible))]
			result[string(pos)][inning] = pick
			stats[pick].Record(pos, inning)

			for i, player := range available {
				if player == pick {
					available = append(available[:i], available[i+1:]...)
					break
				}
			}
		}

		// Bench rows come from the predetermined plan in stable order,
		// padded with the empty sentinel on shortfall.
		for k := 0; k < slots; k++ {
			if k < len(sitting[inning]) {
				result[SittingKey(k+1)][inning] = sitting[inning][k]
			}
		}
	}

	return result, nil
}
