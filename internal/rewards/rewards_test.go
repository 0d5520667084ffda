package rewards_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/questlog-api/internal/entities"
	"github.com/KirkDiggler/questlog-api/internal/errors"
	"github.com/KirkDiggler/questlog-api/internal/rewards"
)

type RewardsTestSuite struct {
	suite.Suite
	now time.Time
}

func TestRewardsSuite(t *testing.T) {
	suite.Run(t, new(RewardsTestSuite))
}

func (s *RewardsTestSuite) SetupTest() {
	s.now = time.Date(2026, 4, 12, 18, 0, 0, 0, time.UTC)
}

func (s *RewardsTestSuite) TestDifficultyTable() {
	testCases := []struct {
		difficulty entities.QuestDifficulty
		exp, gold  int
	}{
		{entities.DifficultyEasy, 10, 5},
		{entities.DifficultyMedium, 25, 15},
		{entities.DifficultyHard, 50, 30},
		{entities.DifficultyEpic, 100, 60},
	}

	for _, tc := range testCases {
		s.Run(string(tc.difficulty), func() {
			bundle, err := rewards.ResolveQuestReward(&entities.Quest{
				Type:       entities.QuestTypeDaily,
				Difficulty: tc.difficulty,
			})
			s.Require().NoError(err)
			s.Equal(tc.exp, bundle.Experience)
			s.Equal(tc.gold, bundle.Gold)
			s.Zero(bundle.SkillPoints)
		})
	}
}

func (s *RewardsTestSuite) TestDurationTable() {
	testCases := []struct {
		duration  entities.QuestDuration
		exp, gold int
	}{
		{entities.Duration1h, 10, 5},
		{entities.Duration2h, 15, 10},
		{entities.Duration4h, 25, 20},
		{entities.Duration8h, 45, 35},
		{entities.Duration12h, 70, 50},
		{entities.Duration24h, 100, 80},
	}

	for _, tc := range testCases {
		s.Run(string(tc.duration), func() {
			bundle, err := rewards.ResolveQuestReward(&entities.Quest{
				Type:     entities.QuestTypeSingle,
				Duration: tc.duration,
			})
			s.Require().NoError(err)
			s.Equal(tc.exp, bundle.Experience)
			s.Equal(tc.gold, bundle.Gold)
		})
	}
}

func (s *RewardsTestSuite) TestWeeklyBonusAndItems() {
	potion := entities.Item{ID: "item_potion", Name: "Potion", Type: entities.ItemTypeConsumable, Quantity: 2}

	bundle, err := rewards.ResolveQuestReward(&entities.Quest{
		Type:       entities.QuestTypeWeekly,
		Difficulty: entities.DifficultyMedium,
		Rewards:    entities.QuestRewards{Items: []entities.Item{potion}},
	})
	s.Require().NoError(err)
	s.Equal(1, bundle.SkillPoints)
	s.Equal([]entities.Item{potion}, bundle.Items)
}

func (s *RewardsTestSuite) TestResolveRejectsBadSchemes() {
	_, err := rewards.ResolveQuestReward(&entities.Quest{
		Type:       entities.QuestTypeDaily,
		Difficulty: entities.DifficultyEasy,
		Duration:   entities.Duration1h,
	})
	s.True(errors.IsInvalidArgument(err))

	_, err = rewards.ResolveQuestReward(&entities.Quest{Type: entities.QuestTypeDaily, Difficulty: "legendary"})
	s.True(errors.IsInvalidArgument(err))

	_, err = rewards.ResolveQuestReward(nil)
	s.True(errors.IsInvalidArgument(err))
}

func (s *RewardsTestSuite) TestClaimOnlyOnce() {
	quest := &entities.Quest{ID: "quest_1", Type: entities.QuestTypeDaily, Difficulty: entities.DifficultyHard, IsActive: true}

	bundle, err := rewards.Claim(s.now, quest)
	s.Require().NoError(err)
	s.Equal(50, bundle.Experience)
	s.True(quest.IsCompleted)
	s.False(quest.IsActive)
	s.Require().NotNil(quest.CompletedAt)
	s.Equal(s.now, *quest.CompletedAt)

	_, err = rewards.Claim(s.now.Add(time.Hour), quest)
	s.ErrorIs(err, rewards.ErrAlreadyCompleted)
	s.Equal(s.now, *quest.CompletedAt)
}

func (s *RewardsTestSuite) TestClaimTimerQuest() {
	quest := &entities.Quest{ID: "quest_2", Type: entities.QuestTypeSingle, Duration: entities.Duration2h}

	_, err := rewards.Claim(s.now, quest)
	s.Require().Error(err)
	s.True(errors.IsFailedPrecondition(err))
	s.False(quest.IsCompleted)

	started := s.now
	quest.StartedAt = &started
	quest.IsActive = true

	_, err = rewards.Claim(s.now.Add(90*time.Minute), quest)
	s.Require().Error(err)
	s.True(errors.IsFailedPrecondition(err))
	s.NotErrorIs(err, rewards.ErrAlreadyCompleted)
	s.Equal(1800, errors.GetMeta(err)["remaining_seconds"])
	s.False(rewards.Claimable(s.now.Add(90*time.Minute), quest))

	s.True(rewards.Claimable(s.now.Add(2*time.Hour), quest))
	bundle, err := rewards.Claim(s.now.Add(2*time.Hour), quest)
	s.Require().NoError(err)
	s.Equal(15, bundle.Experience)
	s.Equal(10, bundle.Gold)
	s.True(quest.IsCompleted)
}

func (s *RewardsTestSuite) TestRemaining() {
	started := s.now
	quest := &entities.Quest{Type: entities.QuestTypeDaily, Duration: entities.Duration4h, StartedAt: &started}

	s.Equal(3*time.Hour, rewards.Remaining(s.now.Add(time.Hour), quest))
	s.Equal(time.Duration(0), rewards.Remaining(s.now.Add(5*time.Hour), quest))

	untimed := &entities.Quest{Type: entities.QuestTypeDaily, Difficulty: entities.DifficultyEasy}
	s.Equal(time.Duration(0), rewards.Remaining(s.now, untimed))
	s.True(rewards.Claimable(s.now, untimed))
}
