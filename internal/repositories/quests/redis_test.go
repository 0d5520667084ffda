package quests_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/questlog-api/internal/entities"
	"github.com/KirkDiggler/questlog-api/internal/errors"
	"github.com/KirkDiggler/questlog-api/internal/repositories/quests"
	"github.com/KirkDiggler/questlog-api/internal/testutils"
	"github.com/KirkDiggler/questlog-api/internal/testutils/builders"
)

type RedisRepositoryTestSuite struct {
	suite.Suite
	ctx     context.Context
	repo    quests.Repository
	cleanup func()
	now     time.Time
}

func TestRedisRepositorySuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}

func (s *RedisRepositoryTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.now = time.Date(2026, 1, 5, 7, 0, 0, 0, time.UTC)

	client, cleanup := testutils.CreateTestRedisClient(s.T())
	s.cleanup = cleanup

	repo, err := quests.NewRedis(&quests.RedisConfig{Client: client})
	s.Require().NoError(err)
	s.repo = repo
}

func (s *RedisRepositoryTestSuite) TearDownTest() {
	s.cleanup()
}

func (s *RedisRepositoryTestSuite) TestCreateAndGet() {
	q := builders.NewQuestBuilder().
		WithID("quest_1").
		WithTitle("Morning run").
		WithDuration(entities.Duration1h).
		WithCreatedAt(s.now).
		Build()

	_, err := s.repo.Create(s.ctx, &quests.CreateInput{UserID: "user_1", Quest: q})
	s.Require().NoError(err)

	out, err := s.repo.Get(s.ctx, &quests.GetInput{UserID: "user_1", QuestID: "quest_1"})
	s.Require().NoError(err)
	s.Equal(q, out.Quest)

	// Quests are scoped to their owner
	_, err = s.repo.Get(s.ctx, &quests.GetInput{UserID: "user_2", QuestID: "quest_1"})
	s.True(errors.IsNotFound(err))
}

func (s *RedisRepositoryTestSuite) TestCreateDuplicate() {
	q := builders.NewQuestBuilder().WithID("quest_1").WithCreatedAt(s.now).Build()

	_, err := s.repo.Create(s.ctx, &quests.CreateInput{UserID: "user_1", Quest: q})
	s.Require().NoError(err)

	_, err = s.repo.Create(s.ctx, &quests.CreateInput{UserID: "user_1", Quest: q})
	s.True(errors.IsAlreadyExists(err))
}

func (s *RedisRepositoryTestSuite) TestCreateValidation() {
	_, err := s.repo.Create(s.ctx, &quests.CreateInput{UserID: "user_1"})
	s.True(errors.IsInvalidArgument(err))

	both := builders.NewQuestBuilder().WithID("quest_1").WithDuration(entities.Duration2h).Build()
	both.Difficulty = entities.DifficultyEasy
	_, err = s.repo.Create(s.ctx, &quests.CreateInput{UserID: "user_1", Quest: both})
	s.True(errors.IsInvalidArgument(err))

	_, err = s.repo.Create(s.ctx, &quests.CreateInput{Quest: builders.NewQuestBuilder().Build()})
	s.True(errors.IsInvalidArgument(err))
}

func (s *RedisRepositoryTestSuite) TestSaveOverwrites() {
	q := builders.NewQuestBuilder().WithID("quest_1").WithCreatedAt(s.now).Build()
	_, err := s.repo.Save(s.ctx, &quests.SaveInput{UserID: "user_1", Quest: q})
	s.Require().NoError(err)

	completed := s.now.Add(time.Hour)
	q.IsCompleted = true
	q.CompletedAt = &completed
	_, err = s.repo.Save(s.ctx, &quests.SaveInput{UserID: "user_1", Quest: q})
	s.Require().NoError(err)

	out, err := s.repo.Get(s.ctx, &quests.GetInput{UserID: "user_1", QuestID: "quest_1"})
	s.Require().NoError(err)
	s.True(out.Quest.IsCompleted)
	s.Equal(completed, *out.Quest.CompletedAt)

	list, err := s.repo.ListByUser(s.ctx, &quests.ListByUserInput{UserID: "user_1"})
	s.Require().NoError(err)
	s.Len(list.Quests, 1)
}

func (s *RedisRepositoryTestSuite) TestListByUserOrdersByCreation() {
	for i, id := range []string{"quest_c", "quest_a", "quest_b"} {
		q := builders.NewQuestBuilder().
			WithID(id).
			WithCreatedAt(s.now.Add(time.Duration(i) * time.Minute)).
			Build()
		_, err := s.repo.Create(s.ctx, &quests.CreateInput{UserID: "user_1", Quest: q})
		s.Require().NoError(err)
	}

	out, err := s.repo.ListByUser(s.ctx, &quests.ListByUserInput{UserID: "user_1"})
	s.Require().NoError(err)
	s.Require().Len(out.Quests, 3)
	s.Equal("quest_c", out.Quests[0].ID)
	s.Equal("quest_a", out.Quests[1].ID)
	s.Equal("quest_b", out.Quests[2].ID)

	empty, err := s.repo.ListByUser(s.ctx, &quests.ListByUserInput{UserID: "user_2"})
	s.Require().NoError(err)
	s.Empty(empty.Quests)
}

func (s *RedisRepositoryTestSuite) TestDelete() {
	q := builders.NewQuestBuilder().WithID("quest_1").WithCreatedAt(s.now).Build()
	_, err := s.repo.Create(s.ctx, &quests.CreateInput{UserID: "user_1", Quest: q})
	s.Require().NoError(err)

	_, err = s.repo.Delete(s.ctx, &quests.DeleteInput{UserID: "user_1", QuestID: "quest_1"})
	s.Require().NoError(err)

	_, err = s.repo.Get(s.ctx, &quests.GetInput{UserID: "user_1", QuestID: "quest_1"})
	s.True(errors.IsNotFound(err))

	list, err := s.repo.ListByUser(s.ctx, &quests.ListByUserInput{UserID: "user_1"})
	s.Require().NoError(err)
	s.Empty(list.Quests)

	_, err = s.repo.Delete(s.ctx, &quests.DeleteInput{UserID: "user_1", QuestID: "quest_1"})
	s.True(errors.IsNotFound(err))
}
