package progression_test

import (
	"context"
	"testing"

	"github.com/KirkDiggler/rpg-toolkit/events"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/questlog-api/internal/entities"
	"github.com/KirkDiggler/questlog-api/internal/errors"
	"github.com/KirkDiggler/questlog-api/internal/pkg/rng"
	"github.com/KirkDiggler/questlog-api/internal/progression"
	"github.com/KirkDiggler/questlog-api/internal/repositories/catalog"
	catalogmock "github.com/KirkDiggler/questlog-api/internal/repositories/catalog/mock"
	"github.com/KirkDiggler/questlog-api/internal/rules"
)

const testUserID = "user_1"

type EngineTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockCatalog *catalogmock.MockRepository
	bus         events.EventBus
	engine      *progression.Engine
	ctx         context.Context

	unlocked  map[string]bool
	published []string
}

func TestEngineSuite(t *testing.T) {
	suite.Run(t, new(EngineTestSuite))
}

func (s *EngineTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockCatalog = catalogmock.NewMockRepository(s.ctrl)
	s.bus = events.NewBus()
	s.ctx = context.Background()
	s.unlocked = map[string]bool{}
	s.published = nil

	record := func(_ context.Context, e events.Event) error {
		s.published = append(s.published, e.Type())
		return nil
	}
	s.bus.SubscribeFunc(progression.EventLevelUp, 0, record)
	s.bus.SubscribeFunc(progression.EventClassChanged, 0, record)

	engine, err := progression.NewEngine(&progression.Config{
		Catalog:  s.mockCatalog,
		Roller:   rng.NewSeeded(7),
		EventBus: s.bus,
	})
	s.Require().NoError(err)
	s.engine = engine
}

func (s *EngineTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func skillByID(id string) *entities.Skill {
	for _, skill := range catalog.DefaultSkills() {
		if skill.ID == id {
			return skill
		}
	}
	return nil
}

// allowCatalog wires the mock to an in-memory unlock table over the default
// skills.
func (s *EngineTestSuite) allowCatalog() {
	s.mockCatalog.EXPECT().
		IsSkillUnlocked(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, in *catalog.IsSkillUnlockedInput) (*catalog.IsSkillUnlockedOutput, error) {
			return &catalog.IsSkillUnlockedOutput{Unlocked: s.unlocked[in.SkillID]}, nil
		}).AnyTimes()

	s.mockCatalog.EXPECT().
		UnlockSkill(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, in *catalog.UnlockSkillInput) (*catalog.UnlockSkillOutput, error) {
			if s.unlocked[in.SkillID] {
				return nil, errors.AlreadyExistsf("skill %s already unlocked", in.SkillID)
			}
			s.unlocked[in.SkillID] = true
			return &catalog.UnlockSkillOutput{
				Unlocked: &entities.UnlockedSkill{UserID: in.UserID, SkillID: in.SkillID, Skill: skillByID(in.SkillID)},
			}, nil
		}).AnyTimes()

	s.mockCatalog.EXPECT().
		ListSkillsByClass(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, in *catalog.ListSkillsByClassInput) (*catalog.ListSkillsByClassOutput, error) {
			var skills []*entities.Skill
			for _, skill := range catalog.DefaultSkills() {
				if skill.RequiredClass == in.Class {
					skills = append(skills, skill)
				}
			}
			return &catalog.ListSkillsByClassOutput{Skills: skills}, nil
		}).AnyTimes()
}

func (s *EngineTestSuite) TestNewEngineRequiresDependencies() {
	_, err := progression.NewEngine(&progression.Config{})
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))

	_, err = progression.NewEngine(nil)
	s.Error(err)
}

func (s *EngineTestSuite) TestApplyExperienceNonPositiveIsNoop() {
	ch := entities.NewCharacter("char_1", "Ayla")
	before := *ch

	res := s.engine.ApplyExperience(s.ctx, testUserID, ch, 0)
	s.Equal(before, *ch)
	s.Zero(res.LevelsGained)

	res = s.engine.ApplyExperience(s.ctx, testUserID, ch, -40)
	s.Equal(before, *ch)
	s.Empty(res.Log)
}

func (s *EngineTestSuite) TestApplyExperienceWithoutLevelUp() {
	ch := entities.NewCharacter("char_1", "Ayla")
	ch.Vitals.CurrentHP = 40

	res := s.engine.ApplyExperience(s.ctx, testUserID, ch, 60)

	s.Equal(1, ch.Level)
	s.Equal(60, ch.Experience)
	s.Equal(100, ch.ExperienceToNext)
	s.Equal(40, ch.Vitals.CurrentHP, "no heal without a level up")
	s.Zero(res.LevelsGained)
	s.Empty(s.published)
}

func (s *EngineTestSuite) TestApplyExperienceTwoLevelsAndClassTransition() {
	s.allowCatalog()

	ch := entities.NewCharacter("char_1", "Ayla")
	ch.Vitals.CurrentHP = 12

	res := s.engine.ApplyExperience(s.ctx, testUserID, ch, 250)

	s.Equal(3, ch.Level)
	s.Equal(0, ch.Experience)
	s.Equal(225, ch.ExperienceToNext)
	s.Equal(2, ch.SkillPoints)
	s.Equal(6, ch.Stats.AvailablePoints)
	s.Equal(2, res.LevelsGained)

	// 5/5/5 ties resolve to Fighter
	s.Equal(entities.ClassFighter, ch.Class)
	s.True(res.ClassChanged)
	s.Equal(entities.ClassFighter, res.NewClass)

	hp, mp := rules.MaxVitals(3, entities.ClassFighter)
	s.Equal(hp, ch.Vitals.MaxHP)
	s.Equal(mp, ch.Vitals.MaxMP)
	s.Equal(hp, ch.Vitals.CurrentHP)
	s.Equal(mp, ch.Vitals.CurrentMP)

	s.Equal([]string{
		rules.SkillFocus,
		rules.SkillSecondWind,
		rules.SkillCleave,
		rules.SkillShieldBash,
		rules.SkillWhirlwind,
	}, res.SkillsUnlocked)
	s.Contains(res.Log, "Level up! You are now level 2!")
	s.Contains(res.Log, "Level up! You are now level 3!")
	s.Contains(res.Log, "You have become a Fighter!")
	s.Empty(res.Warnings)

	s.Equal([]string{
		progression.EventLevelUp,
		progression.EventLevelUp,
		progression.EventClassChanged,
	}, s.published)
}

func (s *EngineTestSuite) TestApplyExperienceLevelCount() {
	s.allowCatalog()

	amounts := []int{1, 99, 100, 101, 249, 250, 600, 1000, 5000, 40000}
	for _, amount := range amounts {
		ch := entities.NewCharacter("char_1", "Ayla")

		remaining, next, crossed := amount, 100, 0
		for remaining >= next {
			remaining -= next
			next = rules.NextThreshold(next)
			crossed++
		}

		res := s.engine.ApplyExperience(s.ctx, testUserID, ch, amount)

		s.Equal(1+crossed, ch.Level, "amount %d", amount)
		s.Equal(crossed, res.LevelsGained, "amount %d", amount)
		s.Equal(remaining, ch.Experience, "amount %d", amount)
		s.Less(ch.Experience, ch.ExperienceToNext, "amount %d", amount)
		s.GreaterOrEqual(ch.Experience, 0)
	}
}

func (s *EngineTestSuite) TestApplyExperienceIsAdditive() {
	s.allowCatalog()

	pairs := [][2]int{{0, 0}, {10, 20}, {60, 60}, {100, 150}, {30, 900}, {249, 1}, {1200, 3400}}
	for _, p := range pairs {
		split := entities.NewCharacter("char_1", "Ayla")
		s.engine.ApplyExperience(s.ctx, testUserID, split, p[0])
		s.engine.ApplyExperience(s.ctx, testUserID, split, p[1])

		whole := entities.NewCharacter("char_1", "Ayla")
		s.engine.ApplyExperience(s.ctx, testUserID, whole, p[0]+p[1])

		s.Equal(*whole, *split, "a=%d b=%d", p[0], p[1])
	}
}

func (s *EngineTestSuite) TestClassTransitionSkipsUnlockedSkills() {
	ch := entities.NewCharacter("char_1", "Ayla")
	ch.Level = 3
	ch.Stats.Intelligence = 9

	s.mockCatalog.EXPECT().
		ListSkillsByClass(s.ctx, &catalog.ListSkillsByClassInput{Class: entities.ClassWizard}).
		Return(&catalog.ListSkillsByClassOutput{Skills: []*entities.Skill{skillByID(rules.SkillFireball)}}, nil)
	s.mockCatalog.EXPECT().
		IsSkillUnlocked(s.ctx, &catalog.IsSkillUnlockedInput{UserID: testUserID, SkillID: rules.SkillFireball}).
		Return(&catalog.IsSkillUnlockedOutput{Unlocked: true}, nil)

	res := s.engine.ResolveClassTransition(s.ctx, testUserID, ch)

	s.Equal(entities.ClassWizard, ch.Class)
	s.Empty(res.SkillsUnlocked)
	s.Empty(res.Warnings)
}

func (s *EngineTestSuite) TestClassTransitionSwallowsDuplicateUnlock() {
	ch := entities.NewCharacter("char_1", "Ayla")
	ch.Level = 4
	ch.Stats.Dexterity = 8

	s.mockCatalog.EXPECT().
		ListSkillsByClass(gomock.Any(), gomock.Any()).
		Return(&catalog.ListSkillsByClassOutput{Skills: []*entities.Skill{skillByID(rules.SkillAimedShot)}}, nil)
	s.mockCatalog.EXPECT().
		IsSkillUnlocked(gomock.Any(), gomock.Any()).
		Return(&catalog.IsSkillUnlockedOutput{Unlocked: false}, nil)
	s.mockCatalog.EXPECT().
		UnlockSkill(gomock.Any(), gomock.Any()).
		Return(nil, errors.AlreadyExists("already unlocked"))

	res := s.engine.ResolveClassTransition(s.ctx, testUserID, ch)

	s.Equal(entities.ClassRanger, ch.Class)
	s.Empty(res.Warnings)
	s.Empty(res.SkillsUnlocked)
}

func (s *EngineTestSuite) TestClassTransitionWarnsAndContinues() {
	ch := entities.NewCharacter("char_1", "Ayla")
	ch.Level = 3

	s.mockCatalog.EXPECT().
		ListSkillsByClass(gomock.Any(), gomock.Any()).
		Return(&catalog.ListSkillsByClassOutput{Skills: []*entities.Skill{
			skillByID(rules.SkillCleave),
			skillByID(rules.SkillShieldBash),
		}}, nil)
	s.mockCatalog.EXPECT().
		IsSkillUnlocked(gomock.Any(), gomock.Any()).
		Return(&catalog.IsSkillUnlockedOutput{}, nil).Times(2)
	gomock.InOrder(
		s.mockCatalog.EXPECT().
			UnlockSkill(gomock.Any(), &catalog.UnlockSkillInput{UserID: testUserID, SkillID: rules.SkillCleave}).
			Return(nil, errors.Unavailable("catalog offline")),
		s.mockCatalog.EXPECT().
			UnlockSkill(gomock.Any(), &catalog.UnlockSkillInput{UserID: testUserID, SkillID: rules.SkillShieldBash}).
			Return(&catalog.UnlockSkillOutput{Unlocked: &entities.UnlockedSkill{SkillID: rules.SkillShieldBash}}, nil),
	)

	res := s.engine.ResolveClassTransition(s.ctx, testUserID, ch)

	s.Equal(entities.ClassFighter, ch.Class)
	s.Len(res.Warnings, 1)
	s.Equal([]string{rules.SkillShieldBash}, res.SkillsUnlocked)
}

func (s *EngineTestSuite) TestClassTransitionNotEligible() {
	below := entities.NewCharacter("char_1", "Ayla")
	below.Level = 2
	res := s.engine.ResolveClassTransition(s.ctx, testUserID, below)
	s.False(res.ClassChanged)
	s.Equal(entities.ClassNovice, below.Class)

	classed := entities.NewCharacter("char_2", "Bram")
	classed.Level = 8
	classed.Class = entities.ClassWizard
	classed.Stats.Strength = 20
	res = s.engine.ResolveClassTransition(s.ctx, testUserID, classed)
	s.False(res.ClassChanged)
	s.Equal(entities.ClassWizard, classed.Class)
}

func (s *EngineTestSuite) TestAdventurerSkillPickIsReproducible() {
	s.allowCatalog()

	run := func() []string {
		engine, err := progression.NewEngine(&progression.Config{
			Catalog:  s.mockCatalog,
			Roller:   rng.NewSeeded(42),
			EventBus: events.NewBus(),
		})
		s.Require().NoError(err)

		s.unlocked = map[string]bool{}
		ch := entities.NewCharacter("char_1", "Ayla")
		ch.Class = entities.ClassAdventurer
		ch.Level = 4
		ch.ExperienceToNext = 300

		res := engine.ApplyExperience(s.ctx, testUserID, ch, 300)
		s.Require().Equal(5, ch.Level)
		return res.SkillsUnlocked
	}

	first := run()
	s.Require().Len(first, 1)
	s.Contains([]string{rules.SkillShieldBash, rules.SkillVolley, rules.SkillFrostNova}, first[0])
	s.Equal(first, run())
}
