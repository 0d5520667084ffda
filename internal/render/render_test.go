package render_test

import (
	"errors"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/questlog-api/internal/combat"
	"github.com/KirkDiggler/questlog-api/internal/entities"
	"github.com/KirkDiggler/questlog-api/internal/progression"
	"github.com/KirkDiggler/questlog-api/internal/render"
	"github.com/KirkDiggler/questlog-api/internal/rewards"
)

var ansi = regexp.MustCompile(`\x1b\[[0-9;]*m`)

func plain(s string) string {
	return ansi.ReplaceAllString(s, "")
}

type RenderTestSuite struct {
	suite.Suite
	now     time.Time
	profile *entities.Profile
}

func TestRenderSuite(t *testing.T) {
	suite.Run(t, new(RenderTestSuite))
}

func (s *RenderTestSuite) SetupTest() {
	s.now = time.Date(2026, 5, 1, 9, 0, 0, 0, time.UTC)
	s.profile = entities.NewProfile("user_1", "hero@example.com", "char_1", s.now)
}

func (s *RenderTestSuite) TestCharacterSheet() {
	out := plain(render.CharacterSheet(s.profile, nil))

	s.Contains(out, "hero the Novice")
	s.Contains(out, "Level: 1")
	s.Contains(out, "100/100")
	s.Contains(out, "50/50")
	s.Contains(out, "Gold: 100")
	s.Contains(out, "STR 5")
	s.Contains(out, "Attack: 20 Defense: 10")
	s.Contains(out, "none unlocked")
	s.NotContains(out, "stat points to spend")
}

func (s *RenderTestSuite) TestCharacterSheetSkillsAndPoints() {
	s.profile.Character.Stats.AvailablePoints = 3
	skills := []*entities.Skill{{ID: "skill_focus", Name: "Focus", Damage: 10, ManaCost: 5}}

	out := plain(render.CharacterSheet(s.profile, skills))
	s.Contains(out, "3 stat points to spend")
	s.Contains(out, "Focus (10 dmg, 5 mp)")
}

func (s *RenderTestSuite) TestCharacterSheetWithoutCharacter() {
	s.Equal("no character", plain(render.CharacterSheet(nil, nil)))
}

func (s *RenderTestSuite) TestQuestBoardOrdersOpenFirst() {
	started := s.now.Add(-30 * time.Minute)
	done := s.now.Add(-time.Hour)
	quests := []*entities.Quest{
		{
			ID: "q_done", Title: "Wash dishes", Type: entities.QuestTypeDaily,
			Difficulty: entities.DifficultyEasy, IsCompleted: true, CompletedAt: &done,
			CreatedAt: s.now.Add(-3 * time.Hour),
		},
		{
			ID: "q_timer", Title: "Deep work", Type: entities.QuestTypeSingle,
			Duration: entities.Duration1h, StartedAt: &started,
			Rewards:   entities.QuestRewards{Experience: 10, Gold: 5},
			CreatedAt: s.now.Add(-2 * time.Hour),
		},
		{
			ID: "q_weekly", Title: "Review goals", Type: entities.QuestTypeWeekly,
			Difficulty: entities.DifficultyMedium,
			Rewards:    entities.QuestRewards{Experience: 25, Gold: 15, SkillPoints: 1},
			CreatedAt:  s.now.Add(-time.Hour),
		},
	}

	out := plain(render.QuestBoard(quests, s.now))

	s.Contains(out, "Quest Board")
	s.Contains(out, "00:30:00")
	s.Contains(out, "[weekly/medium]")
	s.Contains(out, "+25 exp +15 gold")
	s.Contains(out, "+1 sp")
	s.Less(strings.Index(out, "Deep work"), strings.Index(out, "Review goals"))
	s.Less(strings.Index(out, "Review goals"), strings.Index(out, "Wash dishes"))
}

func (s *RenderTestSuite) TestQuestBoardTimerStates() {
	started := s.now.Add(-2 * time.Hour)
	quests := []*entities.Quest{
		{ID: "a", Title: "Idle", Type: entities.QuestTypeSingle, Duration: entities.Duration1h},
		{ID: "b", Title: "Finished", Type: entities.QuestTypeSingle, Duration: entities.Duration1h, StartedAt: &started},
	}

	out := plain(render.QuestBoard(quests, s.now))
	s.Contains(out, "[not started]")
	s.Contains(out, "[ready]")
}

func (s *RenderTestSuite) TestEmptyQuestBoard() {
	s.Contains(plain(render.QuestBoard(nil, s.now)), "no quests yet")
}

func (s *RenderTestSuite) TestBattle() {
	monster := &entities.Monster{ID: "monster_slime", Name: "Slime", HP: 30, Attack: 8, Defense: 2}
	state, err := combat.NewEncounter(s.profile.Character, monster, nil)
	s.Require().NoError(err)

	out := plain(render.Battle(state, 5))
	s.Contains(out, "Battle vs Slime")
	s.Contains(out, "Slime HP:")
	s.Contains(out, "30/30")
	s.Contains(out, "attack or flee")

	state.Player.Skills = []*entities.Skill{{ID: "skill_focus", Name: "Focus", ManaCost: 5}}
	s.Contains(plain(render.Battle(state, 5)), "skill_focus (5 mp)")

	state.IsActive = false
	state.Result = combat.ResultVictory
	s.Contains(plain(render.Battle(state, 5)), "Victory!")

	s.Equal("not in combat", plain(render.Battle(nil, 5)))
}

func (s *RenderTestSuite) TestShopAndInventory() {
	stock := []entities.Item{
		{ID: "item_health_potion", Name: "Health Potion", Type: entities.ItemTypeConsumable, Rarity: entities.RarityCommon, Value: 25},
		{ID: "item_lucky_charm", Name: "Lucky Charm", Type: entities.ItemTypeAccessory, Rarity: entities.RarityRare, Value: 200,
			Stats: &entities.ItemStats{Strength: 1, Dexterity: 1, Intelligence: 1}},
	}

	shop := plain(render.Shop(stock, 50))
	s.Contains(shop, "Gold: 50")
	s.Contains(shop, "Health Potion item_health_potion consumable 25g")
	s.Contains(shop, "200g STR+1 DEX+1 INT+1")

	held := []*entities.Item{
		{ID: "item_health_potion", Name: "Health Potion", Quantity: 2, Rarity: entities.RarityCommon},
		{ID: "item_adventurer_hat", Name: "Adventurer's Hat", Rarity: entities.RarityUncommon, IsEquipped: true},
	}
	inv := plain(render.Inventory(held))
	s.Contains(inv, "Health Potion x2")
	s.Contains(inv, "Adventurer's Hat x1 item_adventurer_hat [equipped]")

	s.Contains(plain(render.Inventory(nil)), "empty")
}

func TestRewards(t *testing.T) {
	out := plain(render.Rewards(rewards.Bundle{
		Experience:  50,
		Gold:        30,
		SkillPoints: 1,
		Items:       []entities.Item{{Name: "Health Potion", Quantity: 2}},
	}))

	assert.Contains(t, out, "+50 exp +30 gold")
	assert.Contains(t, out, "+1 skill points")
	assert.Contains(t, out, "Health Potion x2")
}

func TestProgression(t *testing.T) {
	assert.Empty(t, render.Progression(nil))

	out := plain(render.Progression(&progression.Result{
		LevelsGained: 1,
		Log:          []string{"Reached level 2!"},
		Warnings:     []string{"skill catalog unavailable"},
	}))
	assert.Contains(t, out, "LEVEL UP")
	assert.Contains(t, out, "- Reached level 2!")
	assert.Contains(t, out, "! skill catalog unavailable")

	rejected := plain(render.Progression(&progression.Result{Rejected: true, Message: "no stat points available"}))
	assert.Equal(t, "no stat points available", rejected)
}

func TestBar(t *testing.T) {
	assert.Equal(t, "██████████░░░░░░░░░░ 50/100", plain(render.Bar(50, 100, 20)))
	assert.Equal(t, "░░░░ 0/0", plain(render.Bar(0, 0, 4)))
	assert.Equal(t, "████ 9/4", plain(render.Bar(9, 4, 4)))
}

func TestError(t *testing.T) {
	out := plain(render.Error(errors.New("boom")))
	require.True(t, strings.HasSuffix(out, "boom"))
}

func TestMonstersAndSkills(t *testing.T) {
	monsters := plain(render.Monsters([]*entities.Monster{
		{ID: "monster_slime", Name: "Slime", HP: 30, Attack: 8, Defense: 2, ExpReward: 20, GoldReward: 10},
	}))
	assert.Contains(t, monsters, "Slime monster_slime HP 30 ATK 8 DEF 2 +20 exp +10 gold")
	assert.Contains(t, plain(render.Monsters(nil)), "catalog is empty")

	skills := plain(render.Skills([]*entities.Skill{
		{ID: "skill_fireball", Name: "Fireball", Damage: 30, ManaCost: 15, RequiredClass: entities.ClassWizard},
		{ID: "skill_focus", Name: "Focus", Damage: 10, ManaCost: 5},
	}))
	assert.Contains(t, skills, "Fireball skill_fireball 30 dmg, 15 mp (Wizard)")
	assert.Contains(t, skills, "(any class)")
}
