package handlers

import (
	"testing"

	"github.com/dugoutapps/lineup-api-go/pkg/models"
)

func TestBuildGenerator_RejectsBadInput(t *testing.T) {
	cases := []struct {
		name  string
		input models.GenerateInput
	}{
		{"empty roster", models.GenerateInput{}},
		{"empty name", models.GenerateInput{Roster: []string{""}}},
		{"duplicate name", models.GenerateInput{Roster: []string{"A", "A"}}},
		{"unknown capability player", models.GenerateInput{
			Roster:       []string{"A"},
			Capabilities: map[string][]string{"B": {"Pitcher"}},
		}},
		{"unknown position label", models.GenerateInput{
			Roster:       []string{"A"},
			Capabilities: map[string][]string{"A": {"Short Stop"}},
		}},
		{"unknown attendance player", models.GenerateInput{
			Roster:     []string{"A"},
			Attendance: map[string]bool{"B": true},
		}},
	}

	for _, tc := range cases {
		if _, _, err := buildGenerator(&tc.input); err == nil {
			t.Errorf("%s: expected an error", tc.name)
		}
	}
}

func TestBuildGenerator_AttendanceDefaultsToPresent(t *testing.T) {
	input := models.GenerateInput{
		Roster: []string{"A", "B", "C"},
		Capabilities: map[string][]string{
			"A": {"Pitcher"}, "B": {"Catcher"}, "C": {"1st Base"},
		},
		Attendance: map[string]bool{"B": false},
	}

	_, attending, err := buildGenerator(&input)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if len(attending) != 2 || attending[0] != "A" || attending[1] != "C" {
		t.Errorf("Expected attending [A C], got %v", attending)
	}
}
