// Package inventory provides the interface for per-user item persistence
package inventory

//go:generate mockgen -destination=mock/mock_repository.go -package=inventorymock github.com/KirkDiggler/questlog-api/internal/repositories/inventory Repository

import (
	"context"

	"github.com/KirkDiggler/questlog-api/internal/entities"
)

// Repository defines the interface for inventory persistence
type Repository interface {
	// List returns every item a user holds, ordered by ID
	List(ctx context.Context, input *ListInput) (*ListOutput, error)

	// Get retrieves one item
	// Returns errors.NotFound if the user doesn't hold it
	Get(ctx context.Context, input *GetInput) (*GetOutput, error)

	// Put creates or replaces one item
	Put(ctx context.Context, input *PutInput) (*PutOutput, error)

	// Delete removes one item
	// Returns errors.NotFound if the user doesn't hold it
	Delete(ctx context.Context, input *DeleteInput) (*DeleteOutput, error)

	// Replace swaps the whole inventory atomically
	Replace(ctx context.Context, input *ReplaceInput) (*ReplaceOutput, error)
}

// ListInput defines the input for listing items
type ListInput struct {
	UserID string
}

// ListOutput defines the output for listing items
type ListOutput struct {
	Items []*entities.Item
}

// GetInput defines the input for getting an item
type GetInput struct {
	UserID string
	ItemID string
}

// GetOutput defines the output for getting an item
type GetOutput struct {
	Item *entities.Item
}

// PutInput defines the input for storing an item
type PutInput struct {
	UserID string
	Item   *entities.Item
}

// PutOutput defines the output for storing an item
type PutOutput struct {
	Item *entities.Item
}

// DeleteInput defines the input for deleting an item
type DeleteInput struct {
	UserID string
	ItemID string
}

// DeleteOutput defines the output for deleting an item
type DeleteOutput struct{}

// ReplaceInput defines the input for replacing an inventory
type ReplaceInput struct {
	UserID string
	Items  []*entities.Item
}

// ReplaceOutput defines the output for replacing an inventory
type ReplaceOutput struct{}
