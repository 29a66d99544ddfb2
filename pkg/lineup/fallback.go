package lineup

import "github.com/dugoutapps/lineup-api-go/pkg/models"

// generateSimple is the last-resort generator. It fills each position from
// any capability-eligible available player, ignoring the per-position cap,
// infield minimum, bench fairness, and continuity rules, and it never
// fails: a slot nobody can fill stays empty. It exists to guarantee that
// pathological rosters still terminate with a displayable lineup.
func (g *Generator) generateSimple(attending []string) models.Lineup {
	slots := sittingSlots(len(attending))
	result := newLineup(slots)

	for inning := 0; inning < models.Innings; inning++ {
		available := append([]string(nil), attending...)

		for _, pos := range models.Positions {
			eligible := make([]string, 0, len(available))
			for _, player := range available {
				if g.capabilities.Can(player, pos) {
					eligible = append(eligible, player)
				}
			}
			if len(eligible) == 0 {
				continue
			}

			pick := eligible[g.rng.Intn(len(eligible))]
			result[string(pos)][inning] = pick

			for i, player := range available {
				if player == pick {
					available = append(available[:i], available[i+1:]...)
					break
				}
			}
		}

		for k := 0; k < slots; k++ {
			if k < len(available) {
				result[SittingKey(k+1)][inning] = available[k]
			}
		}
	}

	return result
}
