// Package catalog provides the interface for the monster and skill catalog
// and per-user skill unlocks
package catalog

//go:generate mockgen -destination=mock/mock_repository.go -package=catalogmock github.com/KirkDiggler/questlog-api/internal/repositories/catalog Repository

import (
	"context"

	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/KirkDiggler/questlog-api/internal/entities"
)

// Repository defines the interface for catalog persistence
type Repository interface {
	// ListMonsters returns every monster ordered by HP
	// Returns errors.Internal for storage failures
	ListMonsters(ctx context.Context, input *ListMonstersInput) (*ListMonstersOutput, error)

	// GetMonster retrieves a monster by ID
	// Returns errors.InvalidArgument for empty IDs
	// Returns errors.NotFound if the monster doesn't exist
	GetMonster(ctx context.Context, input *GetMonsterInput) (*GetMonsterOutput, error)

	// RandomMonster picks a monster uniformly using the supplied roller
	// Returns errors.NotFound when the catalog has no monsters
	RandomMonster(ctx context.Context, input *RandomMonsterInput) (*RandomMonsterOutput, error)

	// ListSkills returns every skill ordered by mana cost
	ListSkills(ctx context.Context, input *ListSkillsInput) (*ListSkillsOutput, error)

	// ListSkillsByClass returns the skills whose required class matches exactly
	ListSkillsByClass(ctx context.Context, input *ListSkillsByClassInput) (*ListSkillsByClassOutput, error)

	// GetSkill retrieves a skill by ID
	// Returns errors.NotFound if the skill doesn't exist
	GetSkill(ctx context.Context, input *GetSkillInput) (*GetSkillOutput, error)

	// ListUnlockedSkills returns the skills a user has unlocked
	// Returns errors.InvalidArgument for empty user IDs
	ListUnlockedSkills(ctx context.Context, input *ListUnlockedSkillsInput) (*ListUnlockedSkillsOutput, error)

	// IsSkillUnlocked reports whether a user has unlocked a skill
	IsSkillUnlocked(ctx context.Context, input *IsSkillUnlockedInput) (*IsSkillUnlockedOutput, error)

	// UnlockSkill records a skill unlock for a user
	// Returns errors.NotFound if the skill doesn't exist
	// Returns errors.AlreadyExists if the user already unlocked it
	UnlockSkill(ctx context.Context, input *UnlockSkillInput) (*UnlockSkillOutput, error)

	// Seed inserts monsters and skills, leaving existing rows untouched
	Seed(ctx context.Context, input *SeedInput) (*SeedOutput, error)
}

// ListMonstersInput defines the input for listing monsters
type ListMonstersInput struct{}

// ListMonstersOutput defines the output for listing monsters
type ListMonstersOutput struct {
	Monsters []*entities.Monster
}

// GetMonsterInput defines the input for getting a monster
type GetMonsterInput struct {
	ID string
}

// GetMonsterOutput defines the output for getting a monster
type GetMonsterOutput struct {
	Monster *entities.Monster
}

// RandomMonsterInput defines the input for picking a random monster
type RandomMonsterInput struct {
	Roller dice.Roller
}

// RandomMonsterOutput defines the output for picking a random monster
type RandomMonsterOutput struct {
	Monster *entities.Monster
}

// ListSkillsInput defines the input for listing skills
type ListSkillsInput struct{}

// ListSkillsOutput defines the output for listing skills
type ListSkillsOutput struct {
	Skills []*entities.Skill
}

// ListSkillsByClassInput defines the input for listing skills of one class
type ListSkillsByClassInput struct {
	Class entities.Class
}

// ListSkillsByClassOutput defines the output for listing skills of one class
type ListSkillsByClassOutput struct {
	Skills []*entities.Skill
}

// GetSkillInput defines the input for getting a skill
type GetSkillInput struct {
	ID string
}

// GetSkillOutput defines the output for getting a skill
type GetSkillOutput struct {
	Skill *entities.Skill
}

// ListUnlockedSkillsInput defines the input for listing a user's skills
type ListUnlockedSkillsInput struct {
	UserID string
}

// ListUnlockedSkillsOutput defines the output for listing a user's skills
type ListUnlockedSkillsOutput struct {
	Skills []*entities.Skill
}

// IsSkillUnlockedInput defines the input for checking an unlock
type IsSkillUnlockedInput struct {
	UserID  string
	SkillID string
}

// IsSkillUnlockedOutput defines the output for checking an unlock
type IsSkillUnlockedOutput struct {
	Unlocked bool
}

// UnlockSkillInput defines the input for unlocking a skill
type UnlockSkillInput struct {
	UserID  string
	SkillID string
}

// UnlockSkillOutput defines the output for unlocking a skill
type UnlockSkillOutput struct {
	Unlocked *entities.UnlockedSkill
}

// SeedInput defines the catalog rows to insert
type SeedInput struct {
	Monsters []*entities.Monster
	Skills   []*entities.Skill
}

// SeedOutput reports how many new rows were inserted
type SeedOutput struct {
	MonstersAdded int
	SkillsAdded   int
}
