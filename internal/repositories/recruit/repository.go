// Package recruit provides persistence for generated recruits
package recruit

//go:generate mockgen -destination=mock/mock_repository.go -package=recruitmock github.com/dreamshade/recruit-api/internal/repositories/recruit Repository

import (
	"context"
	"sort"

	"github.com/dreamshade/recruit-api/internal/entities"
	"github.com/dreamshade/recruit-api/internal/errors"
)

// Repository defines the interface for recruit persistence
type Repository interface {
	// Create stores a new recruit and stamps its timestamps
	// Returns errors.InvalidArgument for validation failures
	// Returns errors.AlreadyExists if a recruit with the same ID exists
	// Returns errors.Internal for storage failures
	Create(ctx context.Context, input CreateInput) (*CreateOutput, error)

	// Get retrieves a recruit by ID
	// Returns errors.InvalidArgument for empty IDs
	// Returns errors.NotFound if the recruit doesn't exist
	// Returns errors.Internal for storage failures
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// Update replaces an existing recruit and refreshes UpdatedAt
	// Returns errors.InvalidArgument for validation failures
	// Returns errors.NotFound if the recruit doesn't exist
	// Returns errors.Internal for storage failures
	Update(ctx context.Context, input UpdateInput) (*UpdateOutput, error)

	// Delete removes a recruit by ID
	// Returns errors.InvalidArgument for empty IDs
	// Returns errors.NotFound if the recruit doesn't exist
	// Returns errors.Internal for storage failures
	Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error)

	// ListByPlayerID returns a player's roster, oldest first
	// Returns errors.InvalidArgument for empty player IDs
	// Returns errors.Internal for storage failures
	ListByPlayerID(ctx context.Context, input ListByPlayerIDInput) (*ListByPlayerIDOutput, error)
}

// CreateInput defines the input for creating a recruit
type CreateInput struct {
	Recruit *entities.Recruit
}

// CreateOutput defines the output for creating a recruit
type CreateOutput struct {
	Recruit *entities.Recruit
}

// GetInput defines the input for getting a recruit
type GetInput struct {
	ID string
}

// GetOutput defines the output for getting a recruit
type GetOutput struct {
	Recruit *entities.Recruit
}

// UpdateInput defines the input for updating a recruit
type UpdateInput struct {
	Recruit *entities.Recruit
}

// UpdateOutput defines the output for updating a recruit
type UpdateOutput struct {
	Recruit *entities.Recruit
}

// DeleteInput defines the input for deleting a recruit
type DeleteInput struct {
	ID string
}

// DeleteOutput defines the output for deleting a recruit
type DeleteOutput struct{}

// ListByPlayerIDInput defines the input for listing a player's recruits
type ListByPlayerIDInput struct {
	PlayerID string
}

// ListByPlayerIDOutput defines the output for listing a player's recruits
type ListByPlayerIDOutput struct {
	Recruits []*entities.Recruit
}

const (
	errRecruitNil      = "recruit cannot be nil"
	errRecruitIDEmpty  = "recruit ID cannot be empty"
	errPlayerIDEmpty   = "player ID cannot be empty"
	errRecruitNotFound = "recruit with ID %s not found"
)

func validateRecruit(r *entities.Recruit) error {
	if r == nil {
		return errors.InvalidArgument(errRecruitNil)
	}
	if r.ID == "" {
		return errors.InvalidArgument(errRecruitIDEmpty)
	}
	if r.PlayerID == "" {
		return errors.InvalidArgument(errPlayerIDEmpty)
	}
	return nil
}

// sortRoster orders recruits by creation time, then ID
func sortRoster(recruits []*entities.Recruit) {
	sort.SliceStable(recruits, func(i, j int) bool {
		if !recruits[i].CreatedAt.Equal(recruits[j].CreatedAt) {
			return recruits[i].CreatedAt.Before(recruits[j].CreatedAt)
		}
		return recruits[i].ID < recruits[j].ID
	})
}
