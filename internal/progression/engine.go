// Package progression applies experience, level-ups, class transitions and
// stat allocation to a character. Validation failures never surface as
// errors; they come back as a rejected Result with a message.
package progression

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/KirkDiggler/rpg-toolkit/dice"
	"github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/KirkDiggler/questlog-api/internal/entities"
	"github.com/KirkDiggler/questlog-api/internal/errors"
	"github.com/KirkDiggler/questlog-api/internal/repositories/catalog"
	"github.com/KirkDiggler/questlog-api/internal/rules"
)

// Event types published on the bus
const (
	EventLevelUp      = "character.level_up"
	EventClassChanged = "class.changed"
)

// Config holds the dependencies for the engine
type Config struct {
	Catalog  catalog.Repository
	Roller   dice.Roller
	EventBus events.EventBus
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}

	vb := errors.NewValidationBuilder()
	if c.Catalog == nil {
		vb.RequiredField("Catalog")
	}
	if c.Roller == nil {
		vb.RequiredField("Roller")
	}
	if c.EventBus == nil {
		vb.RequiredField("EventBus")
	}
	return vb.Build()
}

// Engine mutates characters in place
type Engine struct {
	catalog  catalog.Repository
	roller   dice.Roller
	eventBus events.EventBus
}

// NewEngine creates a progression engine with the provided dependencies
func NewEngine(cfg *Config) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &Engine{
		catalog:  cfg.Catalog,
		roller:   cfg.Roller,
		eventBus: cfg.EventBus,
	}, nil
}

// ApplyExperience adds amount to the character and resolves every level
// threshold crossed. Amounts of zero or less are a no-op.
func (e *Engine) ApplyExperience(ctx context.Context, userID string, ch *entities.Character, amount int) *Result {
	res := &Result{}
	if ch == nil || amount <= 0 {
		return res
	}

	if ch.ExperienceToNext < 1 {
		ch.ExperienceToNext = entities.StartingExperienceToNext
	}

	startLevel := ch.Level
	ch.Experience += amount

	for ch.Experience >= ch.ExperienceToNext {
		ch.Experience -= ch.ExperienceToNext
		ch.ExperienceToNext = rules.NextThreshold(ch.ExperienceToNext)
		ch.Level++
		ch.SkillPoints += rules.SkillPointsPerLevel
		ch.Stats.AvailablePoints += rules.StatPointsPerLevel

		res.logf("Level up! You are now level %d!", ch.Level)
		e.grantLevelSkill(ctx, userID, ch, res)
		e.publish(ctx, EventLevelUp, ch, res)
	}

	res.LevelsGained = ch.Level - startLevel
	if res.LevelsGained > 0 {
		rules.ApplyMaxVitals(ch)
		ch.Vitals.Restore()

		slog.InfoContext(ctx, "character leveled up",
			"user_id", userID,
			"character_id", ch.ID,
			"from_level", startLevel,
			"to_level", ch.Level,
			"experience", ch.Experience,
			"experience_to_next", ch.ExperienceToNext)
	}

	e.resolveClassTransition(ctx, userID, ch, res)
	return res
}

// ResolveClassTransition moves a Novice at level 3 or above into the class
// picked by its highest stat. Any other character is left untouched.
func (e *Engine) ResolveClassTransition(ctx context.Context, userID string, ch *entities.Character) *Result {
	res := &Result{}
	if ch == nil {
		return res
	}
	e.resolveClassTransition(ctx, userID, ch, res)
	return res
}

func (e *Engine) resolveClassTransition(ctx context.Context, userID string, ch *entities.Character, res *Result) {
	if ch.Class != entities.ClassNovice || ch.Level < rules.ClassTransitionLevel {
		return
	}

	newClass := rules.DetermineClass(ch.Stats)
	if newClass == entities.ClassNovice {
		return
	}

	ch.Class = newClass
	rules.ApplyMaxVitals(ch)
	ch.Vitals.Restore()

	res.ClassChanged = true
	res.NewClass = newClass
	res.logf("You have become a %s!", newClass)

	slog.InfoContext(ctx, "class transition",
		"user_id", userID,
		"character_id", ch.ID,
		"class", newClass,
		"level", ch.Level)

	out, err := e.catalog.ListSkillsByClass(ctx, &catalog.ListSkillsByClassInput{Class: newClass})
	if err != nil {
		res.warn(ctx, fmt.Sprintf("could not list %s skills: %v", newClass, err))
	} else {
		for _, skill := range out.Skills {
			e.unlock(ctx, userID, skill.ID, res)
		}
	}

	e.publish(ctx, EventClassChanged, ch, res)
}

func (e *Engine) grantLevelSkill(ctx context.Context, userID string, ch *entities.Character, res *Result) {
	skillID, err := rules.SkillForLevel(ch.Level, ch.Class, e.roller)
	if err != nil {
		res.warn(ctx, fmt.Sprintf("could not pick a skill for level %d: %v", ch.Level, err))
		return
	}
	if skillID == "" {
		return
	}
	e.unlock(ctx, userID, skillID, res)
}

// unlock grants skillID unless the user already has it. Duplicate unlocks are
// expected and ignored; anything else becomes a warning.
func (e *Engine) unlock(ctx context.Context, userID, skillID string, res *Result) {
	check, err := e.catalog.IsSkillUnlocked(ctx, &catalog.IsSkillUnlockedInput{
		UserID:  userID,
		SkillID: skillID,
	})
	if err != nil {
		res.warn(ctx, fmt.Sprintf("could not check skill %s: %v", skillID, err))
		return
	}
	if check.Unlocked {
		return
	}

	out, err := e.catalog.UnlockSkill(ctx, &catalog.UnlockSkillInput{
		UserID:  userID,
		SkillID: skillID,
	})
	if err != nil {
		if errors.IsAlreadyExists(err) {
			return
		}
		res.warn(ctx, fmt.Sprintf("could not unlock skill %s: %v", skillID, err))
		return
	}

	res.SkillsUnlocked = append(res.SkillsUnlocked, skillID)
	name := skillID
	if out != nil && out.Unlocked != nil && out.Unlocked.Skill != nil {
		name = out.Unlocked.Skill.Name
	}
	res.logf("New skill unlocked: %s!", name)
}

func (e *Engine) publish(ctx context.Context, eventType string, ch *entities.Character, res *Result) {
	if err := e.eventBus.Publish(ctx, events.NewGameEvent(eventType, ch, nil)); err != nil {
		res.warn(ctx, fmt.Sprintf("could not publish %s: %v", eventType, err))
	}
}
