package rules

import "github.com/KirkDiggler/questlog-api/internal/entities"

// ClassTransitionLevel is the level at which a Novice picks a class
const ClassTransitionLevel = 3

// DetermineClass picks the class for the highest primary stat. Ties resolve
// strength > dexterity > intelligence.
func DetermineClass(stats entities.Stats) entities.Class {
	top := max(stats.Strength, stats.Dexterity, stats.Intelligence)
	switch top {
	case stats.Strength:
		return entities.ClassFighter
	case stats.Dexterity:
		return entities.ClassRanger
	default:
		return entities.ClassWizard
	}
}

// CombatAttack is the player's attack rating in an encounter
func CombatAttack(stats entities.Stats) int {
	return 10 + stats.Strength*2
}

// CombatDefense is the player's defense rating in an encounter
func CombatDefense(stats entities.Stats) int {
	return 5 + stats.Dexterity
}

// SkillStatBonus is the stat-driven damage bonus for a skill of the given class
func SkillStatBonus(class entities.Class, stats entities.Stats) float64 {
	switch class {
	case entities.ClassWizard:
		return float64(stats.Intelligence) * 2
	case entities.ClassFighter:
		return float64(stats.Strength) * 1.5
	case entities.ClassRanger:
		return float64(stats.Dexterity) * 1.5
	default:
		return 0
	}
}
