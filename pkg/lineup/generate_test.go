package lineup

import (
	"strings"
	"testing"

	"github.com/dugoutapps/lineup-api-go/pkg/models"
)

func TestGenerate_NinePlayers(t *testing.T) {
	players := roster(9)
	g := testGenerator(players, allPositionCaps(players))

	result := g.Generate()
	if !result.Validation.IsValid {
		t.Fatalf("Expected a valid lineup, got violations: %v", result.Validation.Errors)
	}
	if result.Fallback {
		t.Fatal("Expected the constraint-aware path, not the fallback")
	}

	// Nobody sits: no bench rows, no empty slots.
	for key, row := range result.Lineup {
		if strings.HasPrefix(key, "Sitting ") {
			t.Errorf("Unexpected bench row %q with 9 players", key)
		}
		if len(row) != models.Innings {
			t.Errorf("Row %q has %d entries, want %d", key, len(row), models.Innings)
		}
		for inning, player := range row {
			if player == "" {
				t.Errorf("Row %q inning %d is unfilled", key, inning+1)
			}
		}
	}
}

func TestGenerate_TenPlayersBenchBalance(t *testing.T) {
	players := roster(10)
	g := testGenerator(players, allPositionCaps(players))

	result := g.Generate()
	if !result.Validation.IsValid {
		t.Fatalf("Expected a valid lineup, got violations: %v", result.Validation.Errors)
	}

	stats := ComputeStats(result.Lineup, players)
	total := 0
	for _, player := range players {
		b := stats[player].BenchInnings
		if b > 1 {
			t.Errorf("Player %s benched %d innings, want 0 or 1", player, b)
		}
		total += b
	}
	if total != models.Innings {
		t.Errorf("Total bench innings %d, want %d", total, models.Innings)
	}
}

func TestGenerate_PositionCapInvariant(t *testing.T) {
	players := roster(11)
	g := testGenerator(players, allPositionCaps(players))

	result := g.Generate()
	stats := ComputeStats(result.Lineup, players)
	for _, player := range players {
		for pos, n := range stats[player].PositionCounts {
			if n > maxInningsPerPosition {
				t.Errorf("Player %s played %s %d times, cap is %d", player, pos, n, maxInningsPerPosition)
			}
		}
	}
}

func TestGenerate_ConsecutiveRunProperty(t *testing.T) {
	players := roster(10)
	g := testGenerator(players, allPositionCaps(players))

	result := g.Generate()
	if !result.Validation.IsValid {
		t.Fatalf("Expected a valid lineup, got violations: %v", result.Validation.Errors)
	}
	for _, pos := range []models.Position{models.Pitcher, models.Catcher} {
		if errs := ValidateConsecutivePositionAssignments(result.Lineup, pos); len(errs) != 0 {
			t.Errorf("Consecutive-run violations at %s: %v", pos, errs)
		}
	}
}

func TestGenerate_UncapablePlayerTerminatesViaFallback(t *testing.T) {
	players := roster(9)
	caps := allPositionCaps(players)
	caps[players[0]] = nil // one player capable of nothing

	g := testGenerator(players, caps)
	result := g.Generate()

	// Every attempt fails to seat the uncapable player, so the search
	// exhausts its budget and the capability-only fallback takes over.
	if result == nil {
		t.Fatal("Expected a result")
	}
	if !result.Fallback {
		t.Fatal("Expected the fallback path")
	}
	if result.Attempts != MaxAttempts {
		t.Errorf("Expected %d attempts, got %d", MaxAttempts, result.Attempts)
	}
	if result.Validation.IsValid {
		t.Error("Expected the fallback lineup to carry violations")
	}
	for _, pos := range models.Positions {
		if len(result.Lineup[string(pos)]) != models.Innings {
			t.Errorf("Row %s missing innings", pos)
		}
	}
}

func TestGenerate_ReplacesWholesale(t *testing.T) {
	players := roster(9)
	g := testGenerator(players, allPositionCaps(players))

	first := g.Generate()
	second := g.Generate()
	// Two runs produce independently owned lineups.
	first.Lineup[string(models.Pitcher)][0] = "tampered"
	if second.Lineup[string(models.Pitcher)][0] == "tampered" {
		t.Error("Generate results share underlying storage")
	}
}
