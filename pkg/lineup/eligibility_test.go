package lineup

import (
	"math/rand"
	"testing"

	"github.com/dugoutapps/lineup-api-go/pkg/models"
)

func testGenerator(roster []string, capabilities models.Capabilities) *Generator {
	return NewGenerator(roster, capabilities, models.Attendance{}).
		WithRand(rand.New(rand.NewSource(1)))
}

func allPositionCaps(roster []string) models.Capabilities {
	caps := make(models.Capabilities, len(roster))
	for _, player := range roster {
		caps[player] = append([]models.Position(nil), models.Positions...)
	}
	return caps
}

func TestCanAssign_Capability(t *testing.T) {
	g := testGenerator([]string{"Alice"}, models.Capabilities{
		"Alice": {models.Pitcher},
	})

	stats := models.NewPlayerStats()
	if !g.canAssign("Alice", models.Pitcher, 0, stats) {
		t.Error("Expected Alice to be eligible for Pitcher")
	}
	if g.canAssign("Alice", models.Catcher, 0, stats) {
		t.Error("Expected Alice to be ineligible for Catcher without the capability")
	}
}

func TestCanAssign_PositionCap(t *testing.T) {
	g := testGenerator([]string{"Alice"}, allPositionCaps([]string{"Alice"}))

	stats := models.NewPlayerStats()
	stats.PositionCounts[models.FirstBase] = 3

	if g.canAssign("Alice", models.FirstBase, 3, stats) {
		t.Error("Expected 3 innings at a position to exhaust it")
	}
}

func TestCanAssign_CrossPositionExclusions(t *testing.T) {
	g := testGenerator([]string{"Alice"}, allPositionCaps([]string{"Alice"}))

	stats := models.NewPlayerStats()
	stats.PositionCounts[models.Catcher] = 4
	if g.canAssign("Alice", models.Pitcher, 4, stats) {
		t.Error("Expected 4 innings catching to forbid pitching")
	}

	stats = models.NewPlayerStats()
	stats.PositionCounts[models.Pitcher] = 2
	stats.LastInning[models.Pitcher] = 1
	if g.canAssign("Alice", models.Catcher, 2, stats) {
		t.Error("Expected 2 innings pitching to forbid catching")
	}
}

func TestCanAssign_ConsecutiveRunRule(t *testing.T) {
	g := testGenerator([]string{"Alice"}, allPositionCaps([]string{"Alice"}))

	// First ever inning at Pitcher is always allowed.
	stats := models.NewPlayerStats()
	if !g.canAssign("Alice", models.Pitcher, 3, stats) {
		t.Error("Expected first pitching assignment to be legal in any inning")
	}

	// A repeat must immediately follow the most recent inning.
	stats.Record(models.Pitcher, 1)
	if !g.canAssign("Alice", models.Pitcher, 2, stats) {
		t.Error("Expected inning 2 to legally extend a run ending at inning 1")
	}
	if g.canAssign("Alice", models.Pitcher, 3, stats) {
		t.Error("Expected a gap to close Pitcher for the rest of the game")
	}

	// The rule applies only to Pitcher and Catcher.
	stats = models.NewPlayerStats()
	stats.Record(models.LeftField, 0)
	if !g.canAssign("Alice", models.LeftField, 4, stats) {
		t.Error("Expected no continuity rule for outfield positions")
	}
}
