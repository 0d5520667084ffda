package game

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/questlog-api/internal/entities"
	"github.com/KirkDiggler/questlog-api/internal/errors"
	"github.com/KirkDiggler/questlog-api/internal/progression"
)

// AllocateStat spends an available point
func (s *service) AllocateStat(ctx context.Context, input *StatInput) (*StatOutput, error) {
	return s.statAction(ctx, input, "allocate", func(ch *entities.Character) *progression.Result {
		return s.engine.AllocateStatPoint(ch, input.Stat)
	})
}

// DeallocateStat returns a point to the pool
func (s *service) DeallocateStat(ctx context.Context, input *StatInput) (*StatOutput, error) {
	return s.statAction(ctx, input, "deallocate", func(ch *entities.Character) *progression.Result {
		return s.engine.DeallocateStatPoint(ch, input.Stat)
	})
}

// ResetStats puts every stat back to the baseline
func (s *service) ResetStats(ctx context.Context, input *ResetStatsInput) (*StatOutput, error) {
	return s.statAction(ctx, input, "reset", s.engine.ResetStats)
}

// statAction runs a stat change. Rejections are returned in the Result, not
// as errors.
func (s *service) statAction(
	ctx context.Context,
	input userInput,
	action string,
	apply func(*entities.Character) *progression.Result,
) (*StatOutput, error) {
	sess, err := s.session(input)
	if err != nil {
		return nil, err
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()

	if sess.combat != nil && sess.combat.IsActive {
		return nil, errors.FailedPrecondition("stats cannot change during combat")
	}

	ch := sess.character()
	result := apply(ch)
	if result.Rejected {
		slog.DebugContext(ctx, "stat change rejected",
			"user_id", sess.userID,
			"action", action,
			"reason", result.Message)
		return &StatOutput{Result: result, Character: ch.Clone()}, nil
	}

	sess.markProfile()
	s.requestFlush()
	return &StatOutput{Result: result, Character: ch.Clone()}, nil
}
