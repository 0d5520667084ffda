package rules

import (
	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/KirkDiggler/questlog-api/internal/entities"
	"github.com/KirkDiggler/questlog-api/internal/pkg/rng"
)

// anyClass keys the fallback entry of a level in the skill table
const anyClass entities.Class = ""

// Skill IDs granted by level. They match the seeded catalog.
const (
	SkillFocus        = "skill_focus"
	SkillSecondWind   = "skill_second_wind"
	SkillCleave       = "skill_cleave"
	SkillAimedShot    = "skill_aimed_shot"
	SkillFireball     = "skill_fireball"
	SkillShieldBash   = "skill_shield_bash"
	SkillVolley       = "skill_volley"
	SkillFrostNova    = "skill_frost_nova"
	SkillRally        = "skill_rally"
	SkillWhirlwind    = "skill_whirlwind"
	SkillRainOfArrows = "skill_rain_of_arrows"
	SkillMeteor       = "skill_meteor"
)

var levelSkills = map[int]map[entities.Class]string{
	2: {
		anyClass: SkillFocus,
	},
	3: {
		entities.ClassFighter: SkillCleave,
		entities.ClassRanger:  SkillAimedShot,
		entities.ClassWizard:  SkillFireball,
		anyClass:              SkillSecondWind,
	},
	5: {
		entities.ClassFighter: SkillShieldBash,
		entities.ClassRanger:  SkillVolley,
		entities.ClassWizard:  SkillFrostNova,
	},
	7: {
		anyClass: SkillRally,
	},
	10: {
		entities.ClassFighter: SkillWhirlwind,
		entities.ClassRanger:  SkillRainOfArrows,
		entities.ClassWizard:  SkillMeteor,
	},
}

// adventurerPool is the order Adventurer picks are drawn from
var adventurerPool = []entities.Class{entities.ClassWizard, entities.ClassFighter, entities.ClassRanger}

// SkillForLevel returns the skill granted on reaching level as class, or ""
// when the level grants nothing. Adventurers draw uniformly from the
// Wizard/Fighter/Ranger entries for the level using roller.
func SkillForLevel(level int, class entities.Class, roller dice.Roller) (string, error) {
	entries, ok := levelSkills[level]
	if !ok {
		return "", nil
	}

	if class == entities.ClassAdventurer {
		var options []string
		for _, c := range adventurerPool {
			if id, ok := entries[c]; ok {
				options = append(options, id)
			}
		}
		if len(options) > 0 {
			idx, err := rng.Pick(roller, len(options))
			if err != nil {
				return "", err
			}
			return options[idx], nil
		}
	}

	if id, ok := entries[class]; ok {
		return id, nil
	}
	return entries[anyClass], nil
}
