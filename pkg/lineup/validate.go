package lineup

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/dugoutapps/lineup-api-go/pkg/models"
)

// minInfieldInnings is the league minimum every attending player must reach.
const minInfieldInnings = 2

// maxBenchSpread is the widest allowed gap between any two players' bench time.
const maxBenchSpread = 1

// Validate checks a completed lineup against the league rules and collects
// one message per violation. It recomputes all stats from the lineup and is
// read-only: calling it twice on the same lineup yields identical results.
func Validate(candidate models.Lineup, attending []string) models.LineupValidation {
	stats := ComputeStats(candidate, attending)

	var errs []string
	errs = append(errs, validateInfieldMinimum(stats, attending)...)
	errs = append(errs, validateBenchFairness(stats, attending)...)
	errs = append(errs, ValidateConsecutivePositionAssignments(candidate, models.Pitcher)...)
	errs = append(errs, ValidateConsecutivePositionAssignments(candidate, models.Catcher)...)

	return models.LineupValidation{
		IsValid: len(errs) == 0,
		Errors:  errs,
	}
}

// ComputeStats rebuilds per-player stats from a lineup, ignoring empty
// slots. Every attending player gets an entry even if they never appear.
func ComputeStats(candidate models.Lineup, attending []string) map[string]*models.PlayerStats {
	stats := make(map[string]*models.PlayerStats, len(attending))
	for _, player := range attending {
		stats[player] = models.NewPlayerStats()
	}

	get := func(player string) *models.PlayerStats {
		if _, ok := stats[player]; !ok {
			stats[player] = models.NewPlayerStats()
		}
		return stats[player]
	}

	for _, pos := range models.Positions {
		for inning, player := range candidate[string(pos)] {
			if player == "" {
				continue
			}
			get(player).Record(pos, inning)
		}
	}

	for key, row := range candidate {
		if !strings.HasPrefix(key, "Sitting ") {
			continue
		}
		for _, player := range row {
			if player == "" {
				continue
			}
			get(player).BenchInnings++
		}
	}

	return stats
}

func validateInfieldMinimum(stats map[string]*models.PlayerStats, attending []string) []string {
	var errs []string
	for _, player := range attending {
		if n := stats[player].InfieldInnings; n < minInfieldInnings {
			errs = append(errs, fmt.Sprintf("%s only played %d infield innings (minimum 2 required)", player, n))
		}
	}
	return errs
}

func validateBenchFairness(stats map[string]*models.PlayerStats, attending []string) []string {
	if len(attending) == 0 {
		return nil
	}

	minBench, maxBench := stats[attending[0]].BenchInnings, stats[attending[0]].BenchInnings
	for _, player := range attending {
		b := stats[player].BenchInnings
		if b < minBench {
			minBench = b
		}
		if b > maxBench {
			maxBench = b
		}
	}

	if maxBench-minBench > maxBenchSpread {
		return []string{fmt.Sprintf("Bench time difference too large: max %d, min %d (max difference allowed: 1)", maxBench, minBench)}
	}
	return nil
}

// ValidateConsecutivePositionAssignments checks that any player occupying
// pos in two or more innings does so in one unbroken run. Violations list
// the player's innings 1-based, in the order players first appear in the row.
func ValidateConsecutivePositionAssignments(candidate models.Lineup, pos models.Position) []string {
	row := candidate[string(pos)]

	inningsByPlayer := make(map[string][]int)
	var order []string
	for inning, player := range row {
		if player == "" {
			continue
		}
		if _, seen := inningsByPlayer[player]; !seen {
			order = append(order, player)
		}
		inningsByPlayer[player] = append(inningsByPlayer[player], inning)
	}

	var errs []string
	for _, player := range order {
		innings := inningsByPlayer[player]
		if len(innings) < 2 {
			continue
		}

		consecutive := true
		for i := 1; i < len(innings); i++ {
			if innings[i] != innings[i-1]+1 {
				consecutive = false
				break
			}
		}
		if consecutive {
			continue
		}

		labels := make([]string, len(innings))
		for i, inning := range innings {
			labels[i] = strconv.Itoa(inning + 1)
		}
		errs = append(errs, fmt.Sprintf("%s played %s in non-consecutive innings: %s", player, pos, strings.Join(labels, ", ")))
	}
	return errs
}
