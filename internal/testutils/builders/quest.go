// Package builders provides test data builders for creating test fixtures
package builders

import (
	"time"

	"github.com/KirkDiggler/questlog-api/internal/entities"
)

// DefaultCreatedAt is the creation time builders use unless overridden
var DefaultCreatedAt = time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)

// QuestBuilder provides a fluent interface for building test Quest instances
type QuestBuilder struct {
	quest *entities.Quest
}

// NewQuestBuilder creates a builder for an active, easy daily quest
func NewQuestBuilder() *QuestBuilder {
	return &QuestBuilder{
		quest: &entities.Quest{
			ID:         "quest-test-123",
			Title:      "Test quest",
			Type:       entities.QuestTypeDaily,
			Difficulty: entities.DifficultyEasy,
			IsActive:   true,
			CreatedAt:  DefaultCreatedAt,
		},
	}
}

// WithID sets the quest ID
func (b *QuestBuilder) WithID(id string) *QuestBuilder {
	b.quest.ID = id
	return b
}

// WithTitle sets the title
func (b *QuestBuilder) WithTitle(title string) *QuestBuilder {
	b.quest.Title = title
	return b
}

// WithType sets the quest type
func (b *QuestBuilder) WithType(t entities.QuestType) *QuestBuilder {
	b.quest.Type = t
	return b
}

// WithDifficulty switches the quest to the difficulty reward scheme
func (b *QuestBuilder) WithDifficulty(d entities.QuestDifficulty) *QuestBuilder {
	b.quest.Difficulty = d
	b.quest.Duration = ""
	return b
}

// WithDuration switches the quest to the timer reward scheme
func (b *QuestBuilder) WithDuration(d entities.QuestDuration) *QuestBuilder {
	b.quest.Duration = d
	b.quest.Difficulty = ""
	return b
}

// WithStartedAt starts the quest timer
func (b *QuestBuilder) WithStartedAt(t time.Time) *QuestBuilder {
	b.quest.StartedAt = &t
	return b
}

// WithCreatedAt sets the creation time
func (b *QuestBuilder) WithCreatedAt(t time.Time) *QuestBuilder {
	b.quest.CreatedAt = t
	return b
}

// WithItems sets the reward items
func (b *QuestBuilder) WithItems(items ...entities.Item) *QuestBuilder {
	b.quest.Rewards.Items = items
	return b
}

// Completed marks the quest completed at t
func (b *QuestBuilder) Completed(t time.Time) *QuestBuilder {
	b.quest.IsCompleted = true
	b.quest.IsActive = false
	b.quest.CompletedAt = &t
	return b
}

// Build returns the constructed quest
func (b *QuestBuilder) Build() *entities.Quest {
	return b.quest
}
