package game

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/questlog-api/internal/combat"
	"github.com/KirkDiggler/questlog-api/internal/entities"
	"github.com/KirkDiggler/questlog-api/internal/errors"
	"github.com/KirkDiggler/questlog-api/internal/repositories/catalog"
)

// StartCombat opens an encounter against the named monster or a random one.
// An empty catalog is NotFound and no encounter starts.
func (s *service) StartCombat(ctx context.Context, input *StartCombatInput) (*StartCombatOutput, error) {
	sess, err := s.session(input)
	if err != nil {
		return nil, err
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()

	if sess.combat != nil && sess.combat.IsActive {
		return nil, errors.FailedPrecondition("already in combat")
	}

	monster, err := s.pickMonster(ctx, input.MonsterID)
	if err != nil {
		return nil, err
	}

	var skills []*entities.Skill
	unlocked, err := s.catalog.ListUnlockedSkills(ctx, &catalog.ListUnlockedSkillsInput{UserID: sess.userID})
	if err != nil {
		slog.WarnContext(ctx, "fighting without skills",
			"user_id", sess.userID,
			"error", err.Error())
	} else {
		skills = unlocked.Skills
	}

	state, err := combat.NewEncounter(sess.character(), monster, skills)
	if err != nil {
		return nil, err
	}
	sess.combat = state

	slog.InfoContext(ctx, "combat started",
		"user_id", sess.userID,
		"monster_id", monster.ID,
		"skills", len(skills))

	return &StartCombatOutput{
		Combat: state.Clone(),
		Log:    state.RecentLog(s.combatLogLimit),
	}, nil
}

func (s *service) pickMonster(ctx context.Context, monsterID string) (*entities.Monster, error) {
	if monsterID != "" {
		out, err := s.catalog.GetMonster(ctx, &catalog.GetMonsterInput{ID: monsterID})
		if err != nil {
			return nil, err
		}
		return out.Monster, nil
	}

	out, err := s.catalog.RandomMonster(ctx, &catalog.RandomMonsterInput{Roller: s.roller})
	if err != nil {
		return nil, err
	}
	return out.Monster, nil
}

// PerformCombatAction resolves one player action and applies what the
// outcome asks for to the stored character
func (s *service) PerformCombatAction(ctx context.Context, input *CombatActionInput) (*CombatActionOutput, error) {
	sess, err := s.session(input)
	if err != nil {
		return nil, err
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()

	if sess.combat == nil {
		return nil, errors.FailedPrecondition("not in combat")
	}

	state := sess.combat
	outcome := combat.Act(state, input.Action)
	ch := sess.character()
	out := &CombatActionOutput{Outcome: outcome}

	if outcome.SyncVitals {
		ch.Vitals.CurrentHP = outcome.HP
		ch.Vitals.CurrentMP = outcome.MP
		ch.Vitals.Clamp()
		sess.markProfile()
	}

	if outcome.Result == combat.ResultVictory {
		out.Progression = s.engine.ApplyExperience(ctx, sess.userID, ch, outcome.ExperienceReward)
		state.BattleLog = append(state.BattleLog, out.Progression.Log...)
		ch.Gold += outcome.GoldReward
		sess.markProfile()
	}

	if outcome.Ended() {
		slog.InfoContext(ctx, "combat ended",
			"user_id", sess.userID,
			"monster_id", state.Monster.ID,
			"result", outcome.Result,
			"hp", ch.Vitals.CurrentHP)
		s.publish(ctx, EventCombatEnded, ch)
	}
	if sess.dirty() {
		s.requestFlush()
	}

	out.Combat = state.Clone()
	out.Log = state.RecentLog(s.combatLogLimit)
	out.Character = ch.Clone()
	return out, nil
}

// EndCombat leaves the encounter. Leaving one that is still running counts
// as fleeing.
func (s *service) EndCombat(ctx context.Context, input *EndCombatInput) (*EndCombatOutput, error) {
	sess, err := s.session(input)
	if err != nil {
		return nil, err
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()

	state := sess.combat
	if state == nil {
		return nil, errors.FailedPrecondition("not in combat")
	}
	if state.IsActive {
		if outcome := combat.Act(state, combat.Action{Type: combat.ActionFlee}); outcome.Ended() {
			s.publish(ctx, EventCombatEnded, sess.character())
		}
	}
	sess.combat = nil

	return &EndCombatOutput{Result: state.Result}, nil
}
