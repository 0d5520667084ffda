// Package profile provides the interface for user profile persistence
package profile

//go:generate mockgen -destination=mock/mock_repository.go -package=profilemock github.com/KirkDiggler/questlog-api/internal/repositories/profile Repository

import (
	"context"

	"github.com/KirkDiggler/questlog-api/internal/entities"
)

// Repository defines the interface for profile persistence
type Repository interface {
	// Get retrieves a profile by user ID
	// Returns errors.InvalidArgument for empty IDs
	// Returns errors.NotFound if the profile doesn't exist
	// Returns errors.Internal for storage failures
	Get(ctx context.Context, input *GetInput) (*GetOutput, error)

	// Put stores the whole profile document under a new revision and
	// notifies subscribers. The output carries the assigned revision.
	// Returns errors.InvalidArgument for validation failures
	// Returns errors.Internal for storage failures
	Put(ctx context.Context, input *PutInput) (*PutOutput, error)

	// Delete removes a profile
	// Returns errors.NotFound if the profile doesn't exist
	Delete(ctx context.Context, input *DeleteInput) (*DeleteOutput, error)

	// Subscribe delivers every profile written for the user until the
	// subscription is closed or ctx is cancelled
	Subscribe(ctx context.Context, input *SubscribeInput) (*SubscribeOutput, error)
}

// GetInput defines the input for getting a profile
type GetInput struct {
	UserID string
}

// GetOutput defines the output for getting a profile
type GetOutput struct {
	Profile *entities.Profile
}

// PutInput defines the input for storing a profile
type PutInput struct {
	Profile *entities.Profile
}

// PutOutput defines the output for storing a profile
type PutOutput struct {
	Profile *entities.Profile
}

// DeleteInput defines the input for deleting a profile
type DeleteInput struct {
	UserID string
}

// DeleteOutput defines the output for deleting a profile
type DeleteOutput struct{}

// Handler receives profile updates
type Handler func(ctx context.Context, profile *entities.Profile)

// SubscribeInput defines the input for subscribing to profile updates
type SubscribeInput struct {
	UserID  string
	Handler Handler
}

// SubscribeOutput defines the output for subscribing to profile updates
type SubscribeOutput struct {
	Subscription Subscription
}

// Subscription is a live profile feed
type Subscription interface {
	// Close stops delivery and releases the connection
	Close() error
}
