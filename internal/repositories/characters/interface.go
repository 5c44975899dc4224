package characters

//go:generate mockgen -destination=mock/mock.go -package=mockcharacters -source=interface.go

import (
	"context"

	"github.com/hollowmoor/soulsfight/internal/domain/character"
)

// Repository defines the interface for character persistence
type Repository interface {
	// Create stores a new character and returns its assigned ID
	Create(ctx context.Context, char *character.Character) (string, error)

	// Get retrieves a character by ID
	Get(ctx context.Context, id string) (*character.Character, error)

	// List retrieves every stored character
	List(ctx context.Context) ([]*character.Character, error)

	// ListIDs retrieves every stored character ID
	ListIDs(ctx context.Context) ([]string, error)

	// Update overwrites an existing character
	Update(ctx context.Context, char *character.Character) error

	// Delete removes a character
	Delete(ctx context.Context, id string) error
}
