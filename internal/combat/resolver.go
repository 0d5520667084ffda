package combat

import (
	"fmt"
	"math"

	"github.com/KirkDiggler/questlog-api/internal/entities"
	"github.com/KirkDiggler/questlog-api/internal/errors"
	"github.com/KirkDiggler/questlog-api/internal/rules"
)

// ActionType names a player action
type ActionType string

// Player actions
const (
	ActionAttack ActionType = "attack"
	ActionSkill  ActionType = "skill"
	ActionFlee   ActionType = "flee"
)

// Action is one player input
type Action struct {
	Type    ActionType
	SkillID string
}

// Outcome tells the caller what an action changed and what to persist
type Outcome struct {
	// Ignored means the state was inactive or it was not the player's turn
	Ignored bool

	// Rejected means a failure line was logged and nothing else changed
	Rejected bool

	// SyncVitals asks the caller to copy HP and MP onto the stored character
	SyncVitals bool
	HP         int
	MP         int

	// Result is set when the action ended the encounter
	Result Result

	ExperienceReward int
	GoldReward       int
}

// Ended reports whether the action moved the encounter into a terminal state
func (o Outcome) Ended() bool {
	return o.Result != ResultNone
}

// NewEncounter snapshots the character and monster into a fresh encounter
func NewEncounter(ch *entities.Character, monster *entities.Monster, skills []*entities.Skill) (*State, error) {
	if ch == nil {
		return nil, errors.InvalidArgument("character is required")
	}
	if monster == nil {
		return nil, errors.InvalidArgument("monster is required")
	}

	owned := make([]*entities.Skill, 0, len(skills))
	for _, skill := range skills {
		if skill == nil {
			continue
		}
		sk := *skill
		owned = append(owned, &sk)
	}

	state := &State{
		Player: Player{
			CharacterID: ch.ID,
			HP:          min(ch.Vitals.CurrentHP, ch.Vitals.MaxHP),
			MaxHP:       ch.Vitals.MaxHP,
			MP:          min(ch.Vitals.CurrentMP, ch.Vitals.MaxMP),
			MaxMP:       ch.Vitals.MaxMP,
			Attack:      rules.CombatAttack(ch.Stats),
			Defense:     rules.CombatDefense(ch.Stats),
			Stats:       ch.Stats,
			Skills:      owned,
		},
		Monster: Opponent{
			Monster:   *monster,
			CurrentHP: monster.HP,
		},
		Turn:     TurnPlayer,
		IsActive: true,
	}
	state.logf("A wild %s appears!", monster.Name)
	return state, nil
}

// Act resolves one player action and, when the monster survives, its reply.
// It never returns an error; every failure path leaves a valid state.
func Act(state *State, action Action) Outcome {
	if state == nil || !state.IsActive || state.Turn != TurnPlayer {
		return Outcome{Ignored: true}
	}

	var damage int
	switch action.Type {
	case ActionAttack:
		damage = max(1, state.Player.Attack-state.Monster.Defense)
		state.logf("You attack for %d damage!", damage)

	case ActionSkill:
		skill := state.skill(action.SkillID)
		if skill == nil || state.Player.MP < skill.ManaCost {
			state.logf("Not enough MP or skill not available!")
			return Outcome{Rejected: true}
		}
		base := float64(skill.Damage) + rules.SkillStatBonus(skill.RequiredClass, state.Player.Stats)
		damage = max(1, int(math.Floor(base-float64(state.Monster.Defense)/2)))
		state.Player.MP -= skill.ManaCost
		state.logf("You cast %s for %d damage!", skill.Name, damage)

	case ActionFlee:
		state.logf("You fled from battle!")
		state.finish(ResultFled)
		return Outcome{Result: ResultFled}

	default:
		state.logf("Invalid action!")
		return Outcome{Rejected: true}
	}

	state.Monster.CurrentHP = max(0, state.Monster.CurrentHP-damage)
	if state.Monster.CurrentHP == 0 {
		return victory(state)
	}

	state.Turn = TurnMonster
	return monsterTurn(state)
}

func victory(state *State) Outcome {
	exp, gold := state.Monster.ExpReward, state.Monster.GoldReward
	state.logf("%s is defeated!", state.Monster.Name)
	state.logf("You gained %d EXP and %d Gold!", exp, gold)
	state.finish(ResultVictory)

	return Outcome{
		Result:           ResultVictory,
		SyncVitals:       true,
		HP:               state.Player.HP,
		MP:               state.Player.MP,
		ExperienceReward: exp,
		GoldReward:       gold,
	}
}

func monsterTurn(state *State) Outcome {
	damage := max(1, state.Monster.Attack-state.Player.Defense)
	state.Player.HP = max(0, state.Player.HP-damage)
	state.logf("%s attacks for %d damage!", state.Monster.Name, damage)

	if state.Player.HP == 0 {
		state.logf("You have been defeated!")
		state.finish(ResultDefeat)
		// The stored character never dies outright
		return Outcome{
			Result:     ResultDefeat,
			SyncVitals: true,
			HP:         max(1, state.Player.HP),
			MP:         state.Player.MP,
		}
	}

	state.Turn = TurnPlayer
	return Outcome{
		SyncVitals: true,
		HP:         state.Player.HP,
		MP:         state.Player.MP,
	}
}

func (s *State) logf(format string, args ...any) {
	s.BattleLog = append(s.BattleLog, fmt.Sprintf(format, args...))
}
