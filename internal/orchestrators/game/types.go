package game

import (
	"time"

	"github.com/KirkDiggler/questlog-api/internal/combat"
	"github.com/KirkDiggler/questlog-api/internal/entities"
	"github.com/KirkDiggler/questlog-api/internal/progression"
	"github.com/KirkDiggler/questlog-api/internal/rewards"
)

// LoadInput defines the request for loading a user's session
type LoadInput struct {
	UserID string
	// Email seeds the display name when a new profile is created
	Email string
	// Watch follows profile writes made by other processes while the
	// session has nothing pending
	Watch bool
}

// LoadOutput defines the response for loading a user's session
type LoadOutput struct {
	Snapshot *Snapshot
	// Created is set when no stored profile existed
	Created bool
}

// UnloadInput defines the request for releasing a session
type UnloadInput struct {
	UserID string
}

// UnloadOutput defines the response for releasing a session
type UnloadOutput struct{}

// StateInput defines the request for reading a session
type StateInput struct {
	UserID string
}

// StateOutput defines the response for reading a session
type StateOutput struct {
	Snapshot *Snapshot
}

// CreateQuestInput defines the request for creating a quest
type CreateQuestInput struct {
	UserID      string
	Title       string
	Description string
	Type        entities.QuestType
	Difficulty  entities.QuestDifficulty
	Duration    entities.QuestDuration
	Items       []entities.Item
	DueDate     *time.Time
	MaxProgress int
}

// CreateQuestOutput defines the response for creating a quest
type CreateQuestOutput struct {
	Quest *entities.Quest
}

// StartQuestInput defines the request for starting a quest timer
type StartQuestInput struct {
	UserID  string
	QuestID string
}

// StartQuestOutput defines the response for starting a quest timer
type StartQuestOutput struct {
	Quest     *entities.Quest
	Remaining time.Duration
}

// CompleteQuestInput defines the request for completing a quest
type CompleteQuestInput struct {
	UserID  string
	QuestID string
}

// CompleteQuestOutput defines the response for completing a quest
type CompleteQuestOutput struct {
	Quest *entities.Quest
	// AlreadyCompleted means nothing was paid out
	AlreadyCompleted bool
	Rewards          rewards.Bundle
	Progression      *progression.Result
	Character        *entities.Character
}

// DeleteQuestInput defines the request for deleting a quest
type DeleteQuestInput struct {
	UserID  string
	QuestID string
}

// DeleteQuestOutput defines the response for deleting a quest
type DeleteQuestOutput struct{}

// QuestTimersInput defines the request for listing running timers
type QuestTimersInput struct {
	UserID string
}

// QuestTimer is the countdown of one started timer quest
type QuestTimer struct {
	QuestID   string
	Title     string
	Remaining time.Duration
	Display   string
	Claimable bool
}

// QuestTimersOutput defines the response for listing running timers
type QuestTimersOutput struct {
	Timers []QuestTimer
}

// StatInput defines the request for allocating or deallocating a point
type StatInput struct {
	UserID string
	Stat   entities.Stat
}

// ResetStatsInput defines the request for resetting stats
type ResetStatsInput struct {
	UserID string
}

// StatOutput defines the response for every stat action. A rejected Result
// leaves the character unchanged.
type StatOutput struct {
	Result    *progression.Result
	Character *entities.Character
}

// StartCombatInput defines the request for starting an encounter. An empty
// MonsterID picks a random monster.
type StartCombatInput struct {
	UserID    string
	MonsterID string
}

// StartCombatOutput defines the response for starting an encounter
type StartCombatOutput struct {
	Combat *combat.State
	Log    []string
}

// CombatActionInput defines the request for one player action
type CombatActionInput struct {
	UserID string
	Action combat.Action
}

// CombatActionOutput defines the response for one player action
type CombatActionOutput struct {
	Outcome     combat.Outcome
	Combat      *combat.State
	Log         []string
	Progression *progression.Result
	Character   *entities.Character
}

// EndCombatInput defines the request for leaving an encounter
type EndCombatInput struct {
	UserID string
}

// EndCombatOutput defines the response for leaving an encounter
type EndCombatOutput struct {
	Result combat.Result
}

// ItemInput defines the request for an inventory action
type ItemInput struct {
	UserID string
	ItemID string
}

// ItemOutput defines the response for an inventory action
type ItemOutput struct {
	Item *entities.Item
	Gold int
}

// ListShopInput defines the request for listing shop stock
type ListShopInput struct{}

// ListShopOutput defines the response for listing shop stock
type ListShopOutput struct {
	Items []entities.Item
}

// FlushInput defines the request for a synchronous write. An empty UserID
// flushes every loaded session.
type FlushInput struct {
	UserID string
}

// FlushOutput defines the response for a synchronous write
type FlushOutput struct {
	Flushed int
}

func (i *UnloadInput) user() string {
	if i == nil {
		return ""
	}
	return i.UserID
}

func (i *StateInput) user() string {
	if i == nil {
		return ""
	}
	return i.UserID
}

func (i *CreateQuestInput) user() string {
	if i == nil {
		return ""
	}
	return i.UserID
}

func (i *StartQuestInput) user() string {
	if i == nil {
		return ""
	}
	return i.UserID
}

func (i *CompleteQuestInput) user() string {
	if i == nil {
		return ""
	}
	return i.UserID
}

func (i *DeleteQuestInput) user() string {
	if i == nil {
		return ""
	}
	return i.UserID
}

func (i *QuestTimersInput) user() string {
	if i == nil {
		return ""
	}
	return i.UserID
}

func (i *StatInput) user() string {
	if i == nil {
		return ""
	}
	return i.UserID
}

func (i *ResetStatsInput) user() string {
	if i == nil {
		return ""
	}
	return i.UserID
}

func (i *StartCombatInput) user() string {
	if i == nil {
		return ""
	}
	return i.UserID
}

func (i *CombatActionInput) user() string {
	if i == nil {
		return ""
	}
	return i.UserID
}

func (i *EndCombatInput) user() string {
	if i == nil {
		return ""
	}
	return i.UserID
}

func (i *ItemInput) user() string {
	if i == nil {
		return ""
	}
	return i.UserID
}
