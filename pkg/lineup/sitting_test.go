package lineup

import (
	"testing"

	"github.com/dugoutapps/lineup-api-go/pkg/models"
)

func roster(n int) []string {
	names := make([]string, n)
	for i := range names {
		names[i] = string(rune('A' + i))
	}
	return names
}

func TestGenerateSitting_NineOrFewerSitNobody(t *testing.T) {
	players := roster(9)
	g := testGenerator(players, allPositionCaps(players))

	plan, err := g.generateSitting(players)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	for inning := 0; inning < models.Innings; inning++ {
		if len(plan[inning]) != 0 {
			t.Errorf("Expected empty bench in inning %d, got %v", inning+1, plan[inning])
		}
	}
}

func TestGenerateSitting_TenPlayers(t *testing.T) {
	players := roster(10)
	g := testGenerator(players, allPositionCaps(players))

	plan, err := g.generateSitting(players)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	counts := make(map[string]int)
	for inning := 0; inning < models.Innings; inning++ {
		if len(plan[inning]) != 1 {
			t.Fatalf("Expected 1 bench seat in inning %d, got %d", inning+1, len(plan[inning]))
		}
		counts[plan[inning][0]]++
	}

	// With 6 seats over 10 players everyone sits 0 or 1 innings.
	total := 0
	for player, n := range counts {
		if n > 1 {
			t.Errorf("Expected %s to sit at most once, sat %d times", player, n)
		}
		total += n
	}
	if total != models.Innings {
		t.Errorf("Expected 6 total bench innings, got %d", total)
	}
}

func TestGenerateSitting_TwelvePlayersSpread(t *testing.T) {
	players := roster(12)
	g := testGenerator(players, allPositionCaps(players))

	plan, err := g.generateSitting(players)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	counts := make(map[string]int)
	for inning := 0; inning < models.Innings; inning++ {
		if len(plan[inning]) != 3 {
			t.Fatalf("Expected 3 bench seats in inning %d, got %d", inning+1, len(plan[inning]))
		}
		seen := make(map[string]bool)
		for _, player := range plan[inning] {
			if seen[player] {
				t.Errorf("Player %s benched twice in inning %d", player, inning+1)
			}
			seen[player] = true
			counts[player]++
		}
	}

	minSits, maxSits := counts[players[0]], counts[players[0]]
	for _, player := range players {
		if counts[player] < minSits {
			minSits = counts[player]
		}
		if counts[player] > maxSits {
			maxSits = counts[player]
		}
	}
	if maxSits-minSits > 1 {
		t.Errorf("Expected bench spread <= 1, got max %d min %d", maxSits, minSits)
	}
}
