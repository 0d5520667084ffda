package builders

import (
	"github.com/KirkDiggler/questlog-api/internal/entities"
	"github.com/KirkDiggler/questlog-api/internal/rules"
)

// CharacterBuilder provides a fluent interface for building test characters
type CharacterBuilder struct {
	character *entities.Character
}

// NewCharacterBuilder starts from a freshly registered character
func NewCharacterBuilder() *CharacterBuilder {
	return &CharacterBuilder{
		character: entities.NewCharacter("char-test-123", "Test Hero"),
	}
}

// WithID sets the character ID
func (b *CharacterBuilder) WithID(id string) *CharacterBuilder {
	b.character.ID = id
	return b
}

// WithLevel sets the level and recomputes maximum vitals, fully healed
func (b *CharacterBuilder) WithLevel(level int) *CharacterBuilder {
	b.character.Level = level
	rules.ApplyMaxVitals(b.character)
	b.character.Vitals.Restore()
	return b
}

// WithClass sets the class and recomputes maximum vitals, fully healed
func (b *CharacterBuilder) WithClass(class entities.Class) *CharacterBuilder {
	b.character.Class = class
	rules.ApplyMaxVitals(b.character)
	b.character.Vitals.Restore()
	return b
}

// WithStats sets the primary stats and point pool
func (b *CharacterBuilder) WithStats(str, dex, intel, available int) *CharacterBuilder {
	b.character.Stats = entities.Stats{
		Strength:        str,
		Dexterity:       dex,
		Intelligence:    intel,
		AvailablePoints: available,
	}
	return b
}

// WithVitals sets current HP and MP, clamped to the maximums
func (b *CharacterBuilder) WithVitals(hp, mp int) *CharacterBuilder {
	b.character.Vitals.CurrentHP = hp
	b.character.Vitals.CurrentMP = mp
	b.character.Vitals.Clamp()
	return b
}

// WithGold sets the gold balance
func (b *CharacterBuilder) WithGold(gold int) *CharacterBuilder {
	b.character.Gold = gold
	return b
}

// WithExperience sets experience and the next threshold
func (b *CharacterBuilder) WithExperience(exp, toNext int) *CharacterBuilder {
	b.character.Experience = exp
	b.character.ExperienceToNext = toNext
	return b
}

// Build returns the constructed character
func (b *CharacterBuilder) Build() *entities.Character {
	return b.character
}
