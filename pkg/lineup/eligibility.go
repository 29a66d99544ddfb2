package lineup

import "github.com/dugoutapps/lineup-api-go/pkg/models"

// League limits on how often one player may occupy a position.
const (
	maxInningsPerPosition = 3
	// A player this deep into catching may not pitch afterwards, and a
	// player this deep into pitching may not catch.
	catchingBlocksPitching = 4
	pitchingBlocksCatching = 2
)

// canAssign reports whether player may legally take pos in the given inning,
// given their accumulated assignments so far.
//
// Pitcher and Catcher carry an extra continuity rule: once a player has
// played the position, any further inning there must immediately follow
// their most recent one. A gap permanently closes the position to them for
// the rest of the game. The other seven positions have no such rule.
func (g *Generator) canAssign(player string, pos models.Position, inning int, stats *models.PlayerStats) bool {
	if !g.capabilities.Can(player, pos) {
		return false
	}
	if stats.PositionCounts[pos] >= maxInningsPerPosition {
		return false
	}
	if pos == models.Pitcher && stats.PositionCounts[models.Catcher] >= catchingBlocksPitching {
		return false
	}
	if pos == models.Catcher && stats.PositionCounts[models.Pitcher] >= pitchingBlocksCatching {
		return false
	}
	if pos == models.Pitcher || pos == models.Catcher {
		if stats.PositionCounts[pos] > 0 && inning != stats.LastInning[pos]+1 {
			return false
		}
	}
	return true
}
