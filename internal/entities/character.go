package entities

import (
	"fmt"
	"strings"

	"github.com/KirkDiggler/rpg-toolkit/core"
)

// Class is the character's specialization
type Class string

// Class constants
const (
	ClassNovice     Class = "Novice"
	ClassFighter    Class = "Fighter"
	ClassRanger     Class = "Ranger"
	ClassWizard     Class = "Wizard"
	ClassAdventurer Class = "Adventurer"
)

// AllClasses returns every class in display order
func AllClasses() []Class {
	return []Class{ClassNovice, ClassFighter, ClassRanger, ClassWizard, ClassAdventurer}
}

// IsValid returns true for a known class
func (c Class) IsValid() bool {
	switch c {
	case ClassNovice, ClassFighter, ClassRanger, ClassWizard, ClassAdventurer:
		return true
	default:
		return false
	}
}

// ParseClass parses a class name, case-insensitive
func ParseClass(s string) (Class, error) {
	for _, c := range AllClasses() {
		if strings.EqualFold(string(c), strings.TrimSpace(s)) {
			return c, nil
		}
	}
	return "", fmt.Errorf("unknown class: %s", s)
}

// Stat names a primary stat
type Stat string

// Primary stats
const (
	StatStrength     Stat = "strength"
	StatDexterity    Stat = "dexterity"
	StatIntelligence Stat = "intelligence"
)

// ParseStat accepts the full name or the three letter abbreviation
func ParseStat(s string) (Stat, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "strength", "str":
		return StatStrength, nil
	case "dexterity", "dex":
		return StatDexterity, nil
	case "intelligence", "int":
		return StatIntelligence, nil
	default:
		return "", fmt.Errorf("unknown stat: %s", s)
	}
}

// Stats holds the three primary stats and the unspent point pool
type Stats struct {
	Strength        int `json:"strength"`
	Dexterity       int `json:"dexterity"`
	Intelligence    int `json:"intelligence"`
	AvailablePoints int `json:"availablePoints"`
}

// Get returns the value of a primary stat
func (s *Stats) Get(stat Stat) int {
	switch stat {
	case StatStrength:
		return s.Strength
	case StatDexterity:
		return s.Dexterity
	case StatIntelligence:
		return s.Intelligence
	default:
		return 0
	}
}

// Set assigns a primary stat. Unknown stats are ignored.
func (s *Stats) Set(stat Stat, value int) {
	switch stat {
	case StatStrength:
		s.Strength = value
	case StatDexterity:
		s.Dexterity = value
	case StatIntelligence:
		s.Intelligence = value
	}
}

// Vitals holds current and maximum HP/MP
type Vitals struct {
	CurrentHP int `json:"currentHP"`
	MaxHP     int `json:"maxHP"`
	CurrentMP int `json:"currentMP"`
	MaxMP     int `json:"maxMP"`
}

// Clamp enforces 0 <= current <= max for both pools
func (v *Vitals) Clamp() {
	v.CurrentHP = clamp(v.CurrentHP, 0, v.MaxHP)
	v.CurrentMP = clamp(v.CurrentMP, 0, v.MaxMP)
}

// Restore refills both pools
func (v *Vitals) Restore() {
	v.CurrentHP = v.MaxHP
	v.CurrentMP = v.MaxMP
}

// Appearance is the cosmetic portrait configuration
type Appearance struct {
	Face      int    `json:"face"`
	Hairstyle int    `json:"hairstyle"`
	HairColor string `json:"hairColor"`
}

// Character is the persistent player avatar
type Character struct {
	ID               string     `json:"id"`
	Name             string     `json:"name"`
	Level            int        `json:"level"`
	Experience       int        `json:"experience"`
	ExperienceToNext int        `json:"experienceToNext"`
	Class            Class      `json:"class"`
	Appearance       Appearance `json:"appearance"`
	Stats            Stats      `json:"stats"`
	Vitals           Vitals     `json:"vitals"`
	Gold             int        `json:"gold"`
	SkillPoints      int        `json:"skillPoints"`
}

// Starting values for a freshly registered character
const (
	StartingLevel            = 1
	StartingExperienceToNext = 100
	StartingStat             = 5
	StartingHP               = 100
	StartingMP               = 50
	StartingGold             = 100
	DefaultHairColor         = "#8B4513"
)

// NewCharacter returns a level 1 Novice with the registration defaults
func NewCharacter(id, name string) *Character {
	return &Character{
		ID:               id,
		Name:             name,
		Level:            StartingLevel,
		Experience:       0,
		ExperienceToNext: StartingExperienceToNext,
		Class:            ClassNovice,
		Appearance:       Appearance{HairColor: DefaultHairColor},
		Stats: Stats{
			Strength:     StartingStat,
			Dexterity:    StartingStat,
			Intelligence: StartingStat,
		},
		Vitals: Vitals{
			CurrentHP: StartingHP,
			MaxHP:     StartingHP,
			CurrentMP: StartingMP,
			MaxMP:     StartingMP,
		},
		Gold: StartingGold,
	}
}

// Clone returns a deep copy
func (c *Character) Clone() *Character {
	if c == nil {
		return nil
	}
	cp := *c
	return &cp
}

// Validate checks the persistent invariants
func (c *Character) Validate() error {
	switch {
	case c.Level < 1:
		return fmt.Errorf("level must be positive, got %d", c.Level)
	case c.Experience < 0:
		return fmt.Errorf("experience must not be negative, got %d", c.Experience)
	case c.ExperienceToNext < 1:
		return fmt.Errorf("experienceToNext must be positive, got %d", c.ExperienceToNext)
	case !c.Class.IsValid():
		return fmt.Errorf("invalid class %q", c.Class)
	case c.Stats.Strength < 1 || c.Stats.Dexterity < 1 || c.Stats.Intelligence < 1:
		return fmt.Errorf("primary stats must be at least 1")
	case c.Stats.AvailablePoints < 0:
		return fmt.Errorf("availablePoints must not be negative")
	case c.Vitals.CurrentHP > c.Vitals.MaxHP || c.Vitals.CurrentMP > c.Vitals.MaxMP:
		return fmt.Errorf("current vitals exceed maximum")
	case c.Vitals.CurrentHP < 0 || c.Vitals.CurrentMP < 0:
		return fmt.Errorf("vitals must not be negative")
	case c.Gold < 0 || c.SkillPoints < 0:
		return fmt.Errorf("currency must not be negative")
	}
	return nil
}

var _ core.Entity = (*Character)(nil)

// GetID implements core.Entity
func (c *Character) GetID() string {
	return c.ID
}

// GetType implements core.Entity
func (c *Character) GetType() string {
	return "character"
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
