// Package rewards resolves what a quest pays out and enforces one-time
// completion.
package rewards

import (
	stderrors "errors"
	"time"

	"github.com/KirkDiggler/questlog-api/internal/entities"
	"github.com/KirkDiggler/questlog-api/internal/errors"
	"github.com/KirkDiggler/questlog-api/internal/rules"
)

// ErrAlreadyCompleted is returned by Claim for a quest that already paid out.
// Callers treat it as a no-op.
var ErrAlreadyCompleted = stderrors.New("quest already completed")

// Bundle is everything a completed quest grants
type Bundle struct {
	Experience  int
	Gold        int
	SkillPoints int
	Items       []entities.Item
}

// ResolveQuestReward looks up the quest's reward table. Weekly quests add a
// skill point and any quest items are carried through.
func ResolveQuestReward(quest *entities.Quest) (Bundle, error) {
	if quest == nil {
		return Bundle{}, errors.InvalidArgument("quest is required")
	}
	if err := quest.Validate(); err != nil {
		return Bundle{}, errors.WrapWithCode(err, errors.CodeInvalidArgument, "invalid quest")
	}

	var reward rules.Reward
	if quest.IsTimed() {
		tier, err := rules.Duration(quest.Duration)
		if err != nil {
			return Bundle{}, errors.WrapWithCode(err, errors.CodeInvalidArgument, "invalid quest duration")
		}
		reward = tier.Reward
	} else {
		r, err := rules.DifficultyReward(quest.Difficulty)
		if err != nil {
			return Bundle{}, errors.WrapWithCode(err, errors.CodeInvalidArgument, "invalid quest difficulty")
		}
		reward = r
	}

	bundle := Bundle{
		Experience: reward.Experience,
		Gold:       reward.Gold,
	}
	if quest.Type == entities.QuestTypeWeekly {
		bundle.SkillPoints = rules.WeeklySkillPoints
	}
	if len(quest.Rewards.Items) > 0 {
		bundle.Items = append([]entities.Item(nil), quest.Rewards.Items...)
	}
	return bundle, nil
}

// Remaining is the time left on a timer quest. Untimed quests report zero.
func Remaining(now time.Time, quest *entities.Quest) time.Duration {
	if quest == nil || !quest.IsTimed() {
		return 0
	}
	tier, err := rules.Duration(quest.Duration)
	if err != nil {
		return 0
	}
	return rules.QuestTimeRemaining(now, quest.StartedAt, tier.Hours)
}

// Claimable reports whether Claim would pay out at now
func Claimable(now time.Time, quest *entities.Quest) bool {
	if quest == nil || quest.IsCompleted {
		return false
	}
	if !quest.IsTimed() {
		return true
	}
	return quest.StartedAt != nil && Remaining(now, quest) == 0
}

// Claim marks the quest completed at now and returns its rewards. A timer
// quest must have been started and run out first.
func Claim(now time.Time, quest *entities.Quest) (Bundle, error) {
	if quest == nil {
		return Bundle{}, errors.InvalidArgument("quest is required")
	}
	if quest.IsCompleted {
		return Bundle{}, ErrAlreadyCompleted
	}

	if quest.IsTimed() {
		if quest.StartedAt == nil {
			return Bundle{}, errors.FailedPreconditionf("quest %s timer has not been started", quest.ID)
		}
		if left := Remaining(now, quest); left > 0 {
			return Bundle{}, errors.FailedPreconditionf("quest %s has %s remaining",
				quest.ID, rules.FormatRemaining(left)).
				WithMeta("remaining_seconds", int(left/time.Second))
		}
	}

	bundle, err := ResolveQuestReward(quest)
	if err != nil {
		return Bundle{}, err
	}

	completedAt := now
	quest.IsCompleted = true
	quest.IsActive = false
	quest.CompletedAt = &completedAt
	return bundle, nil
}
