package lineup

import (
	"testing"

	"github.com/dugoutapps/lineup-api-go/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalyze_NinePlayersPerfectScore(t *testing.T) {
	players := roster(9)
	g := testGenerator(players, allPositionCaps(players))

	result := g.Generate()
	require.True(t, result.Validation.IsValid)

	report := Analyze(result.Lineup, players)

	// With no bench everyone fields all six innings: zero variance on both
	// series, so the score is exactly 100.
	assert.Equal(t, 100.0, report.FairnessScore)
	for _, p := range report.Players {
		assert.Equal(t, models.Innings, p.FieldInnings, p.Player)
		assert.Equal(t, 0, p.BenchInnings, p.Player)
		assert.Equal(t, p.FieldInnings, p.InfieldInnings+p.OutfieldInnings, p.Player)
	}
}

func TestAnalyze_ScoreBounds(t *testing.T) {
	// Maximally unfair: one player fields everything, the other nothing.
	l := newLineup(1)
	for _, pos := range models.Positions {
		for inning := 0; inning < models.Innings; inning++ {
			l[string(pos)][inning] = "A"
		}
	}
	for inning := 0; inning < models.Innings; inning++ {
		l[SittingKey(1)][inning] = "B"
	}

	report := Analyze(l, []string{"A", "B"})
	assert.GreaterOrEqual(t, report.FairnessScore, 0.0)
	assert.LessOrEqual(t, report.FairnessScore, 100.0)
	assert.Less(t, report.FairnessScore, 50.0, "lopsided lineup should score poorly")
}

func TestAnalyze_PositionVariety(t *testing.T) {
	l := newLineup(0)
	l[string(models.Pitcher)] = []string{"A", "A", "B", "B", "C", "C"}
	l[string(models.Catcher)] = []string{"D", "D", "D", "D", "D", "D"}

	report := Analyze(l, []string{"A", "B", "C", "D"})
	assert.Equal(t, 3, report.PositionVariety[string(models.Pitcher)])
	assert.Equal(t, 1, report.PositionVariety[string(models.Catcher)])
	assert.Equal(t, 0, report.PositionVariety[string(models.LeftField)])
}

func TestAnalyze_EmptyRoster(t *testing.T) {
	report := Analyze(newLineup(0), nil)
	assert.Equal(t, 100.0, report.FairnessScore)
	assert.Empty(t, report.Players)
}
