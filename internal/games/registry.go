package games

import (
	"errors"
	"sort"
	"sync"
)

// ErrUnknownGameType is returned when a game type has not been registered.
var ErrUnknownGameType = errors.New("unknown game type")

// ErrUnknownMove is returned when a game type does not declare a move.
var ErrUnknownMove = errors.New("unknown move")

// Registry maps game-type identifiers to factories. It is built once at
// startup and owned by whoever wires the services; there is no package-level
// default instance.
type Registry struct {
	mu        sync.RWMutex
	factories map[string]Factory
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		factories: make(map[string]Factory),
	}
}

// Register adds a factory. Registering the same game type twice is an error:
// the command table is built from this set and silent replacement would
// desynchronize it.
func (r *Registry) Register(f Factory) error {
	if f == nil {
		return errors.New("cannot register nil factory")
	}
	if f.GameType() == "" {
		return errors.New("game type cannot be empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.factories[f.GameType()]; exists {
		return errors.New("game type already registered: " + f.GameType())
	}
	r.factories[f.GameType()] = f
	return nil
}

// Get retrieves a factory by game type.
func (r *Registry) Get(gameType string) (Factory, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	f, ok := r.factories[gameType]
	if !ok {
		return nil, ErrUnknownGameType
	}
	return f, nil
}

// Move retrieves the descriptor for one move of one game type.
func (r *Registry) Move(gameType, moveName string) (MoveDescriptor, error) {
	f, err := r.Get(gameType)
	if err != nil {
		return MoveDescriptor{}, err
	}
	for _, desc := range f.Moves() {
		if desc.Name == moveName {
			return desc, nil
		}
	}
	return MoveDescriptor{}, ErrUnknownMove
}

// Types returns the registered game-type identifiers, sorted.
func (r *Registry) Types() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	types := make([]string, 0, len(r.factories))
	for t := range r.factories {
		types = append(types, t)
	}
	sort.Strings(types)
	return types
}

// Count returns the number of registered game types.
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.factories)
}
