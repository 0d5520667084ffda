package rules

import "github.com/KirkDiggler/questlog-api/internal/entities"

// Base vitals at level 1 and the per-level increments
const (
	BaseHP        = 100
	BaseMP        = 50
	HPPerLevel    = 25
	MPPerLevel    = 25
	tabulatedMaxL = 10
)

// Bonuses are the per-class additions for a given level
type Bonuses struct {
	HP      float64
	MP      float64
	Attack  float64
	Defense float64
}

// baseVitals covers levels 1 through 10
var baseVitals = [tabulatedMaxL + 1]struct{ hp, mp int }{
	1:  {100, 50},
	2:  {125, 75},
	3:  {150, 100},
	4:  {175, 125},
	5:  {200, 150},
	6:  {225, 175},
	7:  {250, 200},
	8:  {275, 225},
	9:  {300, 250},
	10: {325, 275},
}

// ClassBonuses returns the linear per-class bonus for level
func ClassBonuses(class entities.Class, level int) Bonuses {
	l := float64(level)
	switch class {
	case entities.ClassFighter:
		return Bonuses{HP: 10 * l, MP: 0, Attack: 2 * l, Defense: 1 * l}
	case entities.ClassWizard:
		return Bonuses{HP: 0, MP: 15 * l, Attack: 1 * l, Defense: 0.5 * l}
	case entities.ClassRanger:
		return Bonuses{HP: 5 * l, MP: 5 * l, Attack: 1.5 * l, Defense: 2 * l}
	case entities.ClassAdventurer:
		return Bonuses{HP: 7 * l, MP: 7 * l, Attack: 7 * l, Defense: 7 * l}
	default:
		return Bonuses{}
	}
}

// MaxVitals returns maximum HP and MP for level and class. Levels below 1 are
// treated as level 1.
func MaxVitals(level int, class entities.Class) (maxHP, maxMP int) {
	if level < 1 {
		level = 1
	}

	var hp, mp int
	if level <= tabulatedMaxL {
		hp, mp = baseVitals[level].hp, baseVitals[level].mp
	} else {
		hp = BaseHP + (level-1)*HPPerLevel
		mp = BaseMP + (level-1)*MPPerLevel
	}

	b := ClassBonuses(class, level)
	return hp + int(b.HP), mp + int(b.MP)
}

// ApplyMaxVitals recomputes the character's maximums and clamps current
// values to them.
func ApplyMaxVitals(ch *entities.Character) {
	ch.Vitals.MaxHP, ch.Vitals.MaxMP = MaxVitals(ch.Level, ch.Class)
	ch.Vitals.Clamp()
}
