package entities

import (
	"fmt"
	"time"
)

// QuestType is the cadence of a quest
type QuestType string

// Quest types
const (
	QuestTypeDaily  QuestType = "daily"
	QuestTypeWeekly QuestType = "weekly"
	QuestTypeMain   QuestType = "main"
	QuestTypeSingle QuestType = "single"
)

// IsValid returns true for a known quest type
func (t QuestType) IsValid() bool {
	switch t {
	case QuestTypeDaily, QuestTypeWeekly, QuestTypeMain, QuestTypeSingle:
		return true
	default:
		return false
	}
}

// QuestDifficulty is the reward tier of an untimed quest
type QuestDifficulty string

// Quest difficulties
const (
	DifficultyEasy   QuestDifficulty = "easy"
	DifficultyMedium QuestDifficulty = "medium"
	DifficultyHard   QuestDifficulty = "hard"
	DifficultyEpic   QuestDifficulty = "epic"
)

// QuestDuration is the reward tier of a timer quest
type QuestDuration string

// Quest durations
const (
	Duration1h  QuestDuration = "1h"
	Duration2h  QuestDuration = "2h"
	Duration4h  QuestDuration = "4h"
	Duration8h  QuestDuration = "8h"
	Duration12h QuestDuration = "12h"
	Duration24h QuestDuration = "24h"
)

// QuestRewards is the reward contract fixed at quest creation
type QuestRewards struct {
	Experience  int    `json:"experience"`
	Gold        int    `json:"gold"`
	SkillPoints int    `json:"skillPoints,omitempty"`
	Items       []Item `json:"items,omitempty"`
}

// Quest is a user task with a reward contract
type Quest struct {
	ID          string          `json:"id"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Type        QuestType       `json:"type"`
	Difficulty  QuestDifficulty `json:"difficulty,omitempty"`
	Duration    QuestDuration   `json:"duration,omitempty"`
	Rewards     QuestRewards    `json:"rewards"`
	IsCompleted bool            `json:"isCompleted"`
	IsActive    bool            `json:"isActive"`
	CreatedAt   time.Time       `json:"createdAt"`
	CompletedAt *time.Time      `json:"completedAt,omitempty"`
	StartedAt   *time.Time      `json:"startedAt,omitempty"`
	DueDate     *time.Time      `json:"dueDate,omitempty"`
	Progress    int             `json:"progress,omitempty"`
	MaxProgress int             `json:"maxProgress,omitempty"`
}

// IsTimed reports whether the quest uses the duration reward scheme
func (q *Quest) IsTimed() bool {
	return q.Duration != ""
}

// Validate checks that exactly one reward scheme is set
func (q *Quest) Validate() error {
	if !q.Type.IsValid() {
		return fmt.Errorf("invalid quest type %q", q.Type)
	}
	if q.Difficulty != "" && q.Duration != "" {
		return fmt.Errorf("quest must use either a difficulty or a duration, not both")
	}
	if q.Difficulty == "" && q.Duration == "" {
		return fmt.Errorf("quest requires a difficulty or a duration")
	}
	return nil
}
