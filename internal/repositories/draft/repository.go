// Package draft defines persistence for in-progress investigator drafts.
// A player owns at most one draft at a time.
package draft

import (
	"context"

	"github.com/arkham-tools/investigator-api/internal/entities/coc7e"
)

// Repository defines the interface for investigator draft persistence
type Repository interface {
	// Create creates or replaces a player's draft. A draft without an ID is
	// assigned one.
	// Returns errors.InvalidArgument for validation failures
	// Returns errors.Internal for storage failures
	Create(ctx context.Context, input CreateInput) (*CreateOutput, error)

	// Get retrieves a draft by ID
	// Returns errors.NotFound if the draft doesn't exist
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// GetByPlayerID retrieves the player's single draft
	// Returns errors.NotFound if the player has no draft
	GetByPlayerID(ctx context.Context, input GetByPlayerIDInput) (*GetByPlayerIDOutput, error)

	// Update updates an existing draft
	// Returns errors.NotFound if the draft doesn't exist
	Update(ctx context.Context, input UpdateInput) (*UpdateOutput, error)

	// Delete deletes a draft by ID
	// Returns errors.NotFound if the draft doesn't exist
	Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error)
}

// CreateInput defines the input for creating a draft
type CreateInput struct {
	Draft *coc7e.Draft
}

// CreateOutput contains the stored draft, ID and timestamps filled in
type CreateOutput struct {
	Draft *coc7e.Draft
}

// GetInput defines the input for getting a draft
type GetInput struct {
	ID string
}

// GetOutput defines the output for getting a draft
type GetOutput struct {
	Draft *coc7e.Draft
}

// GetByPlayerIDInput defines the input for getting a player's draft
type GetByPlayerIDInput struct {
	PlayerID string
}

// GetByPlayerIDOutput defines the output for getting a player's draft
type GetByPlayerIDOutput struct {
	Draft *coc7e.Draft
}

// UpdateInput defines the input for updating a draft
type UpdateInput struct {
	Draft *coc7e.Draft
}

// UpdateOutput contains the stored draft with a refreshed update timestamp
type UpdateOutput struct {
	Draft *coc7e.Draft
}

// DeleteInput defines the input for deleting a draft
type DeleteInput struct {
	ID string
}

// DeleteOutput defines the output for deleting a draft
type DeleteOutput struct{}
