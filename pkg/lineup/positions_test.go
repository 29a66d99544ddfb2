package lineup

import (
	"errors"
	"testing"

	"github.com/dugoutapps/lineup-api-go/pkg/models"
)

func TestGeneratePositions_PartitionInvariant(t *testing.T) {
	players := roster(10)
	g := testGenerator(players, allPositionCaps(players))

	plan, err := g.generateSitting(players)
	if err != nil {
		t.Fatalf("Sitting plan failed: %v", err)
	}
	result, err := g.generatePositions(players, plan)
	if err != nil {
		t.Fatalf("Position fill failed: %v", err)
	}

	// Every inning: the 9 fielders plus the bench seat cover all 10
	// attending players exactly once.
	for inning := 0; inning < models.Innings; inning++ {
		seen := make(map[string]int)
		for _, row := range result {
			if row[inning] != "" {
				seen[row[inning]]++
			}
		}
		if len(seen) != len(players) {
			t.Errorf("Inning %d covers %d players, want %d", inning+1, len(seen), len(players))
		}
		for player, n := range seen {
			if n != 1 {
				t.Errorf("Inning %d assigns %s %d times", inning+1, player, n)
			}
		}
	}
}

func TestGeneratePositions_BenchRowsFollowPlan(t *testing.T) {
	players := roster(11)
	g := testGenerator(players, allPositionCaps(players))

	plan, err := g.generateSitting(players)
	if err != nil {
		t.Fatalf("Sitting plan failed: %v", err)
	}
	result, err := g.generatePositions(players, plan)
	if err != nil {
		t.Fatalf("Position fill failed: %v", err)
	}

	for inning := 0; inning < models.Innings; inning++ {
		for k, player := range plan[inning] {
			if got := result[SittingKey(k+1)][inning]; got != player {
				t.Errorf("Inning %d bench seat %d: got %q, want %q", inning+1, k+1, got, player)
			}
		}
	}
}

func TestGeneratePositions_NoEligiblePlayerFailsAttempt(t *testing.T) {
	players := roster(9)
	caps := allPositionCaps(players)
	// Nobody can catch: the Catcher slot can never be filled.
	for _, player := range players {
		var without []models.Position
		for _, pos := range caps[player] {
			if pos != models.Catcher {
				without = append(without, pos)
			}
		}
		caps[player] = without
	}

	g := testGenerator(players, caps)
	var plan models.SittingAssignment
	_, err := g.generatePositions(players, plan)
	if !errors.Is(err, ErrPositionInfeasible) {
		t.Fatalf("Expected ErrPositionInfeasible, got %v", err)
	}
}
