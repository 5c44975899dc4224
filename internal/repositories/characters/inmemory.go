package characters

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/hollowmoor/soulsfight/internal/domain/character"
	apperr "github.com/hollowmoor/soulsfight/internal/errors"
	"github.com/hollowmoor/soulsfight/internal/uuid"
)

// inMemoryRepo is a thread-safe in-memory character store for tests
// and local development
type inMemoryRepo struct {
	mu            sync.RWMutex
	characters    map[string]*character.Character
	uuidGenerator uuid.Generator
}

// NewInMemoryRepository creates a new in-memory character repository
func NewInMemoryRepository() Repository {
	return &inMemoryRepo{
		characters:    make(map[string]*character.Character),
		uuidGenerator: uuid.NewGoogleUUIDGenerator(),
	}
}

// copyCharacter deep-copies through JSON so callers never share state
func copyCharacter(char *character.Character) *character.Character {
	data, err := json.Marshal(char)
	if err != nil {
		return nil
	}
	var out character.Character
	if err := json.Unmarshal(data, &out); err != nil {
		return nil
	}
	return &out
}

func (r *inMemoryRepo) Create(_ context.Context, char *character.Character) (string, error) {
	if char == nil {
		return "", apperr.InvalidArgument("character cannot be nil")
	}
	if char.Name == "" {
		return "", apperr.InvalidArgument("character name is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if char.ID == "" {
		char.ID = r.uuidGenerator.New()
	}
	if _, exists := r.characters[char.ID]; exists {
		return "", apperr.Conflictf("character with ID '%s' already exists", char.ID).
			WithMeta("character_id", char.ID)
	}

	char.CreatedAt = time.Now().UTC()
	char.UpdatedAt = char.CreatedAt
	r.characters[char.ID] = copyCharacter(char)

	return char.ID, nil
}

func (r *inMemoryRepo) Get(_ context.Context, id string) (*character.Character, error) {
	if id == "" {
		return nil, apperr.InvalidArgument("character ID is required")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	char, ok := r.characters[id]
	if !ok {
		return nil, apperr.NotFoundf("character with ID '%s' not found", id).
			WithMeta("character_id", id)
	}
	return copyCharacter(char), nil
}

func (r *inMemoryRepo) List(_ context.Context) ([]*character.Character, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	chars := make([]*character.Character, 0, len(r.characters))
	for _, char := range r.characters {
		chars = append(chars, copyCharacter(char))
	}
	return chars, nil
}

func (r *inMemoryRepo) ListIDs(_ context.Context) ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := make([]string, 0, len(r.characters))
	for id := range r.characters {
		ids = append(ids, id)
	}
	return ids, nil
}

func (r *inMemoryRepo) Update(_ context.Context, char *character.Character) error {
	if char == nil {
		return apperr.InvalidArgument("character cannot be nil")
	}
	if char.ID == "" {
		return apperr.InvalidArgument("character ID is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.characters[char.ID]; !exists {
		return apperr.NotFoundf("character with ID '%s' not found", char.ID).
			WithMeta("character_id", char.ID)
	}

	char.UpdatedAt = time.Now().UTC()
	r.characters[char.ID] = copyCharacter(char)
	return nil
}

func (r *inMemoryRepo) Delete(_ context.Context, id string) error {
	if id == "" {
		return apperr.InvalidArgument("character ID is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.characters[id]; !exists {
		return apperr.NotFoundf("character with ID '%s' not found", id).
			WithMeta("character_id", id)
	}

	delete(r.characters, id)
	return nil
}
