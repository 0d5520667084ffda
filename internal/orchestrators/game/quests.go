package game

import (
	"context"
	stderrors "errors"
	"log/slog"
	"strings"

	"github.com/KirkDiggler/questlog-api/internal/entities"
	"github.com/KirkDiggler/questlog-api/internal/errors"
	"github.com/KirkDiggler/questlog-api/internal/rewards"
	"github.com/KirkDiggler/questlog-api/internal/rules"
)

// CreateQuest adds an active quest with its reward contract fixed now
func (s *service) CreateQuest(ctx context.Context, input *CreateQuestInput) (*CreateQuestOutput, error) {
	sess, err := s.session(input)
	if err != nil {
		return nil, err
	}

	title := strings.TrimSpace(input.Title)
	if title == "" {
		return nil, errors.InvalidArgument("quest title is required")
	}

	quest := &entities.Quest{
		ID:          s.idGen.Generate(),
		Title:       title,
		Description: input.Description,
		Type:        input.Type,
		Difficulty:  input.Difficulty,
		Duration:    input.Duration,
		IsActive:    true,
		CreatedAt:   s.clock.Now(),
		DueDate:     input.DueDate,
		MaxProgress: input.MaxProgress,
	}
	if len(input.Items) > 0 {
		quest.Rewards.Items = append([]entities.Item(nil), input.Items...)
	}

	bundle, err := rewards.ResolveQuestReward(quest)
	if err != nil {
		return nil, err
	}
	quest.Rewards.Experience = bundle.Experience
	quest.Rewards.Gold = bundle.Gold
	quest.Rewards.SkillPoints = bundle.SkillPoints

	sess.mu.Lock()
	sess.quests = append(sess.quests, quest)
	sess.markQuest(quest.ID)
	out := cloneQuest(quest)
	sess.mu.Unlock()

	slog.InfoContext(ctx, "quest created",
		"user_id", sess.userID,
		"quest_id", quest.ID,
		"type", quest.Type,
		"experience", quest.Rewards.Experience,
		"gold", quest.Rewards.Gold)

	s.requestFlush()
	return &CreateQuestOutput{Quest: out}, nil
}

// StartQuest starts the timer on a quest. Starting twice is refused so the
// countdown cannot be reset.
func (s *service) StartQuest(ctx context.Context, input *StartQuestInput) (*StartQuestOutput, error) {
	sess, err := s.session(input)
	if err != nil {
		return nil, err
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()

	_, quest := sess.quest(input.QuestID)
	if quest == nil {
		return nil, errors.NotFoundf("quest %s not found", input.QuestID)
	}
	if quest.IsCompleted {
		return nil, errors.FailedPreconditionf("quest %s is already completed", quest.ID)
	}
	if quest.StartedAt != nil {
		return nil, errors.FailedPreconditionf("quest %s is already started", quest.ID)
	}

	now := s.clock.Now()
	quest.StartedAt = &now
	quest.IsActive = true
	sess.markQuest(quest.ID)

	remaining := rewards.Remaining(now, quest)
	slog.InfoContext(ctx, "quest started",
		"user_id", sess.userID,
		"quest_id", quest.ID,
		"duration", quest.Duration)

	s.requestFlush()
	return &StartQuestOutput{Quest: cloneQuest(quest), Remaining: remaining}, nil
}

// CompleteQuest pays out a quest once. A second completion reports
// AlreadyCompleted and changes nothing.
func (s *service) CompleteQuest(ctx context.Context, input *CompleteQuestInput) (*CompleteQuestOutput, error) {
	sess, err := s.session(input)
	if err != nil {
		return nil, err
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()

	_, quest := sess.quest(input.QuestID)
	if quest == nil {
		return nil, errors.NotFoundf("quest %s not found", input.QuestID)
	}

	bundle, err := rewards.Claim(s.clock.Now(), quest)
	if stderrors.Is(err, rewards.ErrAlreadyCompleted) {
		return &CompleteQuestOutput{
			Quest:            cloneQuest(quest),
			AlreadyCompleted: true,
			Character:        sess.character().Clone(),
		}, nil
	}
	if err != nil {
		return nil, err
	}
	sess.markQuest(quest.ID)

	ch := sess.character()
	ch.Gold += bundle.Gold
	ch.SkillPoints += bundle.SkillPoints
	result := s.engine.ApplyExperience(ctx, sess.userID, ch, bundle.Experience)
	sess.markProfile()

	if len(bundle.Items) > 0 {
		for _, item := range bundle.Items {
			sess.addItem(item)
		}
		sess.markInventory()
	}

	slog.InfoContext(ctx, "quest completed",
		"user_id", sess.userID,
		"quest_id", quest.ID,
		"experience", bundle.Experience,
		"gold", bundle.Gold,
		"skill_points", bundle.SkillPoints,
		"levels_gained", result.LevelsGained)

	s.publish(ctx, EventQuestCompleted, ch)
	s.requestFlush()

	return &CompleteQuestOutput{
		Quest:       cloneQuest(quest),
		Rewards:     bundle,
		Progression: result,
		Character:   ch.Clone(),
	}, nil
}

// DeleteQuest removes a quest. Rewards already paid are kept.
func (s *service) DeleteQuest(ctx context.Context, input *DeleteQuestInput) (*DeleteQuestOutput, error) {
	sess, err := s.session(input)
	if err != nil {
		return nil, err
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()

	i, quest := sess.quest(input.QuestID)
	if quest == nil {
		return nil, errors.NotFoundf("quest %s not found", input.QuestID)
	}
	sess.quests = append(sess.quests[:i], sess.quests[i+1:]...)
	sess.markQuestDeleted(quest.ID)

	slog.InfoContext(ctx, "quest deleted",
		"user_id", sess.userID,
		"quest_id", quest.ID)

	s.requestFlush()
	return &DeleteQuestOutput{}, nil
}

// QuestTimers lists every started, unfinished timer quest with its countdown
func (s *service) QuestTimers(_ context.Context, input *QuestTimersInput) (*QuestTimersOutput, error) {
	sess, err := s.session(input)
	if err != nil {
		return nil, err
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()

	now := s.clock.Now()
	var timers []QuestTimer
	for _, q := range sess.quests {
		if !q.IsTimed() || q.IsCompleted || q.StartedAt == nil {
			continue
		}
		remaining := rewards.Remaining(now, q)
		timers = append(timers, QuestTimer{
			QuestID:   q.ID,
			Title:     q.Title,
			Remaining: remaining,
			Display:   rules.FormatRemaining(remaining),
			Claimable: rewards.Claimable(now, q),
		})
	}
	return &QuestTimersOutput{Timers: timers}, nil
}
