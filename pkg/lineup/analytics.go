package lineup

import (
	"gonum.org/v1/gonum/stat"

	"github.com/dugoutapps/lineup-api-go/pkg/models"
)

// Analyze builds the fairness report for a finished lineup: per-player
// field/infield/outfield/bench innings, how many distinct players covered
// each position, and a 0-100 fairness score. Purely descriptive — the
// report never feeds back into generation.
func Analyze(candidate models.Lineup, attending []string) *models.FairnessReport {
	stats := ComputeStats(candidate, attending)

	report := &models.FairnessReport{
		Players:         make([]models.PlayerFairness, 0, len(attending)),
		PositionVariety: make(map[string]int, len(models.Positions)),
	}

	fieldInnings := make([]float64, len(attending))
	benchInnings := make([]float64, len(attending))
	for i, player := range attending {
		s := stats[player]
		field := 0
		for _, n := range s.PositionCounts {
			field += n
		}
		report.Players = append(report.Players, models.PlayerFairness{
			Player:          player,
			FieldInnings:    field,
			InfieldInnings:  s.InfieldInnings,
			OutfieldInnings: field - s.InfieldInnings,
			BenchInnings:    s.BenchInnings,
		})
		fieldInnings[i] = float64(field)
		benchInnings[i] = float64(s.BenchInnings)
	}

	for _, pos := range models.Positions {
		distinct := make(map[string]bool)
		for _, player := range candidate[string(pos)] {
			if player != "" {
				distinct[player] = true
			}
		}
		report.PositionVariety[string(pos)] = len(distinct)
	}

	report.FairnessScore = (distributionScore(fieldInnings) + distributionScore(benchInnings)) / 2
	return report
}

// distributionScore maps the population variance of an innings series onto
// [0,100], where 100 means everyone got identical time. The worst possible
// variance for a 6-inning series is innings^2/4 (half the players at 0,
// half at 6).
func distributionScore(innings []float64) float64 {
	if len(innings) == 0 {
		return 100
	}

	theoreticalMax := float64(models.Innings*models.Innings) / 4
	score := 100 - 100*stat.PopVariance(innings, nil)/theoreticalMax
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}
