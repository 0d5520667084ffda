// Package quests provides the interface for quest persistence
package quests

//go:generate mockgen -destination=mock/mock_repository.go -package=questsmock github.com/KirkDiggler/questlog-api/internal/repositories/quests Repository

import (
	"context"

	"github.com/KirkDiggler/questlog-api/internal/entities"
)

// Repository defines the interface for quest persistence
type Repository interface {
	// Create stores a new quest for a user
	// Returns errors.InvalidArgument for validation failures
	// Returns errors.AlreadyExists if a quest with the same ID exists
	Create(ctx context.Context, input *CreateInput) (*CreateOutput, error)

	// Get retrieves a user's quest by ID
	// Returns errors.NotFound if the quest doesn't exist for that user
	Get(ctx context.Context, input *GetInput) (*GetOutput, error)

	// Save creates or replaces a user's quest
	// Returns errors.InvalidArgument for validation failures
	Save(ctx context.Context, input *SaveInput) (*SaveOutput, error)

	// Delete removes a user's quest
	// Returns errors.NotFound if the quest doesn't exist for that user
	Delete(ctx context.Context, input *DeleteInput) (*DeleteOutput, error)

	// ListByUser returns a user's quests, oldest first
	ListByUser(ctx context.Context, input *ListByUserInput) (*ListByUserOutput, error)
}

// CreateInput defines the input for creating a quest
type CreateInput struct {
	UserID string
	Quest  *entities.Quest
}

// CreateOutput defines the output for creating a quest
type CreateOutput struct {
	Quest *entities.Quest
}

// GetInput defines the input for getting a quest
type GetInput struct {
	UserID  string
	QuestID string
}

// GetOutput defines the output for getting a quest
type GetOutput struct {
	Quest *entities.Quest
}

// SaveInput defines the input for saving a quest
type SaveInput struct {
	UserID string
	Quest  *entities.Quest
}

// SaveOutput defines the output for saving a quest
type SaveOutput struct {
	Quest *entities.Quest
}

// DeleteInput defines the input for deleting a quest
type DeleteInput struct {
	UserID  string
	QuestID string
}

// DeleteOutput defines the output for deleting a quest
type DeleteOutput struct{}

// ListByUserInput defines the input for listing a user's quests
type ListByUserInput struct {
	UserID string
}

// ListByUserOutput defines the output for listing a user's quests
type ListByUserOutput struct {
	Quests []*entities.Quest
}
