package catalog

import (
	"github.com/KirkDiggler/questlog-api/internal/entities"
	"github.com/KirkDiggler/questlog-api/internal/rules"
)

// DefaultMonsters is the starter bestiary
func DefaultMonsters() []*entities.Monster {
	return []*entities.Monster{
		{ID: "monster_slime", Name: "Slime", HP: 30, Attack: 8, Defense: 2, ExpReward: 20, GoldReward: 10},
		{ID: "monster_goblin", Name: "Goblin", HP: 50, Attack: 12, Defense: 4, ExpReward: 35, GoldReward: 20},
		{ID: "monster_wolf", Name: "Dire Wolf", HP: 60, Attack: 15, Defense: 5, ExpReward: 45, GoldReward: 25},
		{ID: "monster_skeleton", Name: "Skeleton", HP: 80, Attack: 18, Defense: 8, ExpReward: 60, GoldReward: 35},
		{ID: "monster_orc", Name: "Orc Brute", HP: 120, Attack: 22, Defense: 10, ExpReward: 90, GoldReward: 50},
		{ID: "monster_troll", Name: "Cave Troll", HP: 180, Attack: 28, Defense: 14, ExpReward: 140, GoldReward: 80},
		{ID: "monster_whelp", Name: "Dragon Whelp", HP: 250, Attack: 35, Defense: 18, ExpReward: 220, GoldReward: 150},
	}
}

// DefaultSkills covers every skill the level table can grant
func DefaultSkills() []*entities.Skill {
	return []*entities.Skill{
		{ID: rules.SkillFocus, Name: "Focus", Description: "A steadied strike.", Damage: 10, ManaCost: 5},
		{ID: rules.SkillSecondWind, Name: "Second Wind", Description: "A burst of renewed vigor.", Damage: 12, ManaCost: 8},
		{ID: rules.SkillRally, Name: "Rally", Description: "A rousing blow.", Damage: 15, ManaCost: 10},
		{ID: rules.SkillCleave, Name: "Cleave", Description: "A wide, heavy swing.", Damage: 20, ManaCost: 10, RequiredClass: entities.ClassFighter},
		{ID: rules.SkillShieldBash, Name: "Shield Bash", Description: "Slam the foe with your shield.", Damage: 28, ManaCost: 15, RequiredClass: entities.ClassFighter},
		{ID: rules.SkillWhirlwind, Name: "Whirlwind", Description: "Spin through everything nearby.", Damage: 45, ManaCost: 25, RequiredClass: entities.ClassFighter},
		{ID: rules.SkillAimedShot, Name: "Aimed Shot", Description: "A careful shot at a weak point.", Damage: 18, ManaCost: 8, RequiredClass: entities.ClassRanger},
		{ID: rules.SkillVolley, Name: "Volley", Description: "Loose several arrows at once.", Damage: 26, ManaCost: 14, RequiredClass: entities.ClassRanger},
		{ID: rules.SkillRainOfArrows, Name: "Rain of Arrows", Description: "Darken the sky.", Damage: 42, ManaCost: 24, RequiredClass: entities.ClassRanger},
		{ID: rules.SkillFireball, Name: "Fireball", Description: "Hurl a ball of flame.", Damage: 25, ManaCost: 15, RequiredClass: entities.ClassWizard},
		{ID: rules.SkillFrostNova, Name: "Frost Nova", Description: "Freeze the air around you.", Damage: 35, ManaCost: 20, RequiredClass: entities.ClassWizard},
		{ID: rules.SkillMeteor, Name: "Meteor", Description: "Call down a falling star.", Damage: 60, ManaCost: 35, RequiredClass: entities.ClassWizard},
	}
}
