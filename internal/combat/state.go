// Package combat resolves turn-based encounters between a character and one
// monster. State is transient and never persisted.
package combat

import (
	"github.com/KirkDiggler/questlog-api/internal/entities"
)

// Turn says whose move it is
type Turn string

// Turns
const (
	TurnPlayer  Turn = "player"
	TurnMonster Turn = "monster"
)

// Result is the terminal state of an encounter
type Result string

// Results
const (
	ResultNone    Result = ""
	ResultVictory Result = "victory"
	ResultDefeat  Result = "defeat"
	ResultFled    Result = "fled"
)

// Player is the character snapshot taken when the encounter starts
type Player struct {
	CharacterID string            `json:"characterId"`
	HP          int               `json:"hp"`
	MaxHP       int               `json:"maxHP"`
	MP          int               `json:"mp"`
	MaxMP       int               `json:"maxMP"`
	Attack      int               `json:"attack"`
	Defense     int               `json:"defense"`
	Stats       entities.Stats    `json:"stats"`
	Skills      []*entities.Skill `json:"skills"`
}

// Opponent is the monster snapshot with its running HP
type Opponent struct {
	entities.Monster
	CurrentHP int `json:"currentHP"`
}

// State is one encounter. Result is set exactly when IsActive is false.
type State struct {
	Player    Player   `json:"player"`
	Monster   Opponent `json:"monster"`
	Turn      Turn     `json:"turn"`
	BattleLog []string `json:"battleLog"`
	IsActive  bool     `json:"isActive"`
	Result    Result   `json:"result,omitempty"`
}

// RecentLog returns at most the last n log lines. n <= 0 returns all of them.
func (s *State) RecentLog(n int) []string {
	lines := s.BattleLog
	if n > 0 && len(lines) > n {
		lines = lines[len(lines)-n:]
	}
	out := make([]string, len(lines))
	copy(out, lines)
	return out
}

// Clone returns a deep copy
func (s *State) Clone() *State {
	if s == nil {
		return nil
	}
	cp := *s
	cp.BattleLog = append([]string(nil), s.BattleLog...)
	cp.Player.Skills = make([]*entities.Skill, len(s.Player.Skills))
	for i, skill := range s.Player.Skills {
		sk := *skill
		cp.Player.Skills[i] = &sk
	}
	return &cp
}

func (s *State) skill(id string) *entities.Skill {
	for _, skill := range s.Player.Skills {
		if skill.ID == id {
			return skill
		}
	}
	return nil
}

func (s *State) finish(result Result) {
	s.IsActive = false
	s.Result = result
}
