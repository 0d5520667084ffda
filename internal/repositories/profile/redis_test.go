package profile_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/questlog-api/internal/entities"
	"github.com/KirkDiggler/questlog-api/internal/errors"
	"github.com/KirkDiggler/questlog-api/internal/repositories/profile"
	"github.com/KirkDiggler/questlog-api/internal/testutils"
)

type RedisRepositoryTestSuite struct {
	suite.Suite
	ctx     context.Context
	repo    profile.Repository
	cleanup func()
	now     time.Time
}

func TestRedisRepositorySuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}

func (s *RedisRepositoryTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.now = time.Date(2026, 2, 14, 10, 0, 0, 0, time.UTC)

	client, cleanup := testutils.CreateTestRedisClient(s.T())
	s.cleanup = cleanup

	repo, err := profile.NewRedis(&profile.RedisConfig{Client: client})
	s.Require().NoError(err)
	s.repo = repo
}

func (s *RedisRepositoryTestSuite) TearDownTest() {
	s.cleanup()
}

func (s *RedisRepositoryTestSuite) TestNewRedisRequiresClient() {
	_, err := profile.NewRedis(&profile.RedisConfig{})
	s.True(errors.IsInvalidArgument(err))
}

func (s *RedisRepositoryTestSuite) TestGetMissingProfile() {
	_, err := s.repo.Get(s.ctx, &profile.GetInput{UserID: "user_404"})
	s.Require().Error(err)
	s.True(errors.IsNotFound(err))

	_, err = s.repo.Get(s.ctx, &profile.GetInput{})
	s.True(errors.IsInvalidArgument(err))
}

func (s *RedisRepositoryTestSuite) TestPutAndGet() {
	p := entities.NewProfile("user_1", "ayla@example.com", "char_1", s.now)
	p.Character.Name = "Ayla"
	p.Character.Gold = 250

	_, err := s.repo.Put(s.ctx, &profile.PutInput{Profile: p})
	s.Require().NoError(err)

	out, err := s.repo.Get(s.ctx, &profile.GetInput{UserID: "user_1"})
	s.Require().NoError(err)
	s.Equal("ayla", out.Profile.DisplayName)
	s.Equal(s.now, out.Profile.RegistrationDate)
	s.Equal(*p.Character, *out.Profile.Character)
}

func (s *RedisRepositoryTestSuite) TestPutAssignsIncreasingRevisions() {
	p := entities.NewProfile("user_1", "ayla@example.com", "char_1", s.now)

	first, err := s.repo.Put(s.ctx, &profile.PutInput{Profile: p})
	s.Require().NoError(err)
	s.Equal(int64(1), first.Profile.Revision)
	s.Zero(p.Revision, "caller's profile is not modified")

	second, err := s.repo.Put(s.ctx, &profile.PutInput{Profile: p})
	s.Require().NoError(err)
	s.Equal(int64(2), second.Profile.Revision)

	got, err := s.repo.Get(s.ctx, &profile.GetInput{UserID: "user_1"})
	s.Require().NoError(err)
	s.Equal(int64(2), got.Profile.Revision)

	_, err = s.repo.Delete(s.ctx, &profile.DeleteInput{UserID: "user_1"})
	s.Require().NoError(err)
	third, err := s.repo.Put(s.ctx, &profile.PutInput{Profile: p})
	s.Require().NoError(err)
	s.Equal(int64(3), third.Profile.Revision)
}

func (s *RedisRepositoryTestSuite) TestPutRejectsInvalidCharacter() {
	p := entities.NewProfile("user_1", "ayla@example.com", "char_1", s.now)
	p.Character.Vitals.CurrentHP = p.Character.Vitals.MaxHP + 1

	_, err := s.repo.Put(s.ctx, &profile.PutInput{Profile: p})
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))

	_, err = s.repo.Put(s.ctx, &profile.PutInput{})
	s.True(errors.IsInvalidArgument(err))
}

func (s *RedisRepositoryTestSuite) TestDelete() {
	p := entities.NewProfile("user_1", "ayla@example.com", "char_1", s.now)
	_, err := s.repo.Put(s.ctx, &profile.PutInput{Profile: p})
	s.Require().NoError(err)

	_, err = s.repo.Delete(s.ctx, &profile.DeleteInput{UserID: "user_1"})
	s.Require().NoError(err)

	_, err = s.repo.Delete(s.ctx, &profile.DeleteInput{UserID: "user_1"})
	s.True(errors.IsNotFound(err))
}

func (s *RedisRepositoryTestSuite) TestSubscribeReceivesPuts() {
	ctx, cancel := context.WithCancel(s.ctx)
	defer cancel()

	updates := make(chan *entities.Profile, 4)
	out, err := s.repo.Subscribe(ctx, &profile.SubscribeInput{
		UserID: "user_1",
		Handler: func(_ context.Context, p *entities.Profile) {
			updates <- p
		},
	})
	s.Require().NoError(err)
	defer func() { _ = out.Subscription.Close() }()

	other := entities.NewProfile("user_2", "bram@example.com", "char_2", s.now)
	_, err = s.repo.Put(s.ctx, &profile.PutInput{Profile: other})
	s.Require().NoError(err)

	mine := entities.NewProfile("user_1", "ayla@example.com", "char_1", s.now)
	mine.Character.Level = 4
	_, err = s.repo.Put(s.ctx, &profile.PutInput{Profile: mine})
	s.Require().NoError(err)

	select {
	case got := <-updates:
		s.Equal("user_1", got.UserID)
		s.Equal(4, got.Character.Level)
		s.Equal(int64(1), got.Revision)
	case <-time.After(2 * time.Second):
		s.Fail("no profile update delivered")
	}

	s.NoError(out.Subscription.Close())
	s.NoError(out.Subscription.Close())
}

func (s *RedisRepositoryTestSuite) TestSubscribeValidation() {
	_, err := s.repo.Subscribe(s.ctx, &profile.SubscribeInput{UserID: "user_1"})
	s.True(errors.IsInvalidArgument(err))
}
