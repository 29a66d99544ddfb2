package session

import (
	"fmt"

	"github.com/dugoutapps/lineup-api-go/pkg/models"
)

// Session owns the long-lived team state: roster, capabilities, attendance,
// batting order, the current lineup, and game metadata. Consumers query it
// explicitly; there is no implicit reactivity. A Session is not safe for
// concurrent use.
type Session struct {
	roster       []string
	capabilities models.Capabilities
	attendance   models.Attendance
	battingOrder []string
	lineup       models.Lineup

	Opponent string
	GameDate string
}

// State is the serializable snapshot of a session, exchanged with the
// share service as an opaque round-trip payload.
type State struct {
	Roster       []string            `json:"roster"`
	Capabilities map[string][]string `json:"capabilities"`
	Attendance   map[string]bool     `json:"attendance"`
	BattingOrder []string            `json:"batting_order"`
	Lineup       models.Lineup       `json:"lineup,omitempty"`
	Opponent     string              `json:"opponent,omitempty"`
	GameDate     string              `json:"game_date,omitempty"`
}

// New creates an empty session.
func New() *Session {
	return &Session{
		capabilities: make(models.Capabilities),
		attendance:   make(models.Attendance),
	}
}

// AddPlayer appends a player to the roster. Names must be non-empty and
// unique (case-sensitive exact match).
func (s *Session) AddPlayer(name string) error {
	if name == "" {
		return fmt.Errorf("player name cannot be empty")
	}
	for _, existing := range s.roster {
		if existing == name {
			return fmt.Errorf("player %q already on roster", name)
		}
	}
	s.roster = append(s.roster, name)
	return nil
}

// RenamePlayer changes a player's name everywhere: roster, capabilities,
// attendance, and batting order. A previously generated lineup is left
// untouched; callers decide when to discard it.
func (s *Session) RenamePlayer(oldName, newName string) error {
	if newName == "" {
		return fmt.Errorf("player name cannot be empty")
	}
	if oldName == newName {
		return nil
	}
	for _, existing := range s.roster {
		if existing == newName {
			return fmt.Errorf("player %q already on roster", newName)
		}
	}

	found := false
	for i, existing := range s.roster {
		if existing == oldName {
			s.roster[i] = newName
			found = true
			break
		}
	}
	if !found {
		return fmt.Errorf("player %q not on roster", oldName)
	}

	if caps, ok := s.capabilities[oldName]; ok {
		s.capabilities[newName] = caps
		delete(s.capabilities, oldName)
	}
	if attending, ok := s.attendance[oldName]; ok {
		s.attendance[newName] = attending
		delete(s.attendance, oldName)
	}
	for i, existing := range s.battingOrder {
		if existing == oldName {
			s.battingOrder[i] = newName
		}
	}
	return nil
}

// RemovePlayer drops a player from the roster, cascading to capabilities,
// attendance, and batting order. The current lineup is left untouched.
func (s *Session) RemovePlayer(name string) error {
	found := false
	for i, existing := range s.roster {
		if existing == name {
			s.roster = append(s.roster[:i], s.roster[i+1:]...)
			found = true
			break
		}
	}
	if !found {
		return fmt.Errorf("player %q not on roster", name)
	}

	delete(s.capabilities, name)
	delete(s.attendance, name)
	for i, existing := range s.battingOrder {
		if existing == name {
			s.battingOrder = append(s.battingOrder[:i], s.battingOrder[i+1:]...)
			break
		}
	}
	return nil
}

// Roster returns a copy of the roster in order.
func (s *Session) Roster() []string {
	return append([]string(nil), s.roster...)
}

// SetCapabilities replaces a player's permitted positions.
func (s *Session) SetCapabilities(name string, positions []models.Position) {
	s.capabilities[name] = append([]models.Position(nil), positions...)
}

// Capabilities returns the capability map (shared, not copied).
func (s *Session) Capabilities() models.Capabilities {
	return s.capabilities
}

// SetAttendance marks a player present or absent for the game.
func (s *Session) SetAttendance(name string, attending bool) {
	s.attendance[name] = attending
}

// Attendance returns the attendance map (shared, not copied).
func (s *Session) Attendance() models.Attendance {
	return s.attendance
}

// SetBattingOrder replaces the batting order.
func (s *Session) SetBattingOrder(order []string) {
	s.battingOrder = append([]string(nil), order...)
}

// BattingOrder returns a copy of the batting order.
func (s *Session) BattingOrder() []string {
	return append([]string(nil), s.battingOrder...)
}

// AttendingPlayers returns the attending roster members in roster order.
func (s *Session) AttendingPlayers() []string {
	attending := make([]string, 0, len(s.roster))
	for _, player := range s.roster {
		if s.attendance.IsAttending(player) {
			attending = append(attending, player)
		}
	}
	return attending
}

// AllPlayersHaveCapabilities reports whether every roster member can play
// at least one position. Generation invoked despite a false result still
// terminates, via the fallback generator.
func (s *Session) AllPlayersHaveCapabilities() bool {
	for _, player := range s.roster {
		if len(s.capabilities[player]) == 0 {
			return false
		}
	}
	return true
}

// SetLineup replaces the current lineup wholesale. The previous lineup is
// discarded, never merged.
func (s *Session) SetLineup(l models.Lineup) {
	s.lineup = l
}

// Lineup returns the current lineup, or nil when none has been generated.
func (s *Session) Lineup() models.Lineup {
	return s.lineup
}

// ClearLineup discards the current lineup.
func (s *Session) ClearLineup() {
	s.lineup = nil
}

// Snapshot deep-copies the session into a serializable State.
func (s *Session) Snapshot() State {
	caps := make(map[string][]string, len(s.capabilities))
	for player, positions := range s.capabilities {
		row := make([]string, len(positions))
		for i, pos := range positions {
			row[i] = string(pos)
		}
		caps[player] = row
	}

	attendance := make(map[string]bool, len(s.attendance))
	for player, attending := range s.attendance {
		attendance[player] = attending
	}

	var l models.Lineup
	if s.lineup != nil {
		l = s.lineup.Clone()
	}

	return State{
		Roster:       append([]string(nil), s.roster...),
		Capabilities: caps,
		Attendance:   attendance,
		BattingOrder: append([]string(nil), s.battingOrder...),
		Lineup:       l,
		Opponent:     s.Opponent,
		GameDate:     s.GameDate,
	}
}

// Restore builds a session from a snapshot.
func Restore(state State) *Session {
	s := New()
	s.roster = append([]string(nil), state.Roster...)
	for player, labels := range state.Capabilities {
		positions := make([]models.Position, 0, len(labels))
		for _, label := range labels {
			positions = append(positions, models.Position(label))
		}
		s.capabilities[player] = positions
	}
	for player, attending := range state.Attendance {
		s.attendance[player] = attending
	}
	s.battingOrder = append([]string(nil), state.BattingOrder...)
	if state.Lineup != nil {
		s.lineup = state.Lineup.Clone()
	}
	s.Opponent = state.Opponent
	s.GameDate = state.GameDate
	return s
}
