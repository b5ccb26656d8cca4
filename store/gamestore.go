package store

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/minaorangina/klondike/engine"
)

var (
	ErrUnknownGameID = errors.New("unknown game ID")
	ErrFnGameExists  = func(gameID string) error {
		return fmt.Errorf("game with id \"%s\" already exists", gameID)
	}
)

// GameStore holds many independent games
type GameStore interface {
	FindGame(gameID string) engine.GameEngine
	AddGame(game engine.GameEngine) error
	RemoveGame(gameID string) error
	GameIDs() []string
}

// InMemoryGameStore maps game id to game engine
type InMemoryGameStore struct {
	mu    sync.RWMutex
	Games map[string]engine.GameEngine
}

// NewInMemoryGameStore constructs an InMemoryGameStore
func NewInMemoryGameStore() *InMemoryGameStore {
	return &InMemoryGameStore{
		Games: map[string]engine.GameEngine{},
	}
}

func (s *InMemoryGameStore) FindGame(gameID string) engine.GameEngine {
	s.mu.RLock()
	defer s.mu.RUnlock()

	game, ok := s.Games[gameID]
	if !ok {
		return nil
	}
	return game
}

func (s *InMemoryGameStore) AddGame(game engine.GameEngine) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.Games[game.ID()]; exists {
		return ErrFnGameExists(game.ID())
	}

	s.Games[game.ID()] = game
	return nil
}

func (s *InMemoryGameStore) RemoveGame(gameID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.Games[gameID]; !ok {
		return ErrUnknownGameID
	}

	delete(s.Games, gameID)
	return nil
}

// GameIDs returns the IDs of every stored game, oldest first
func (s *InMemoryGameStore) GameIDs() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := make([]string, 0, len(s.Games))
	for id := range s.Games {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool {
		ti, tj := s.Games[ids[i]].CreatedAt(), s.Games[ids[j]].CreatedAt()
		if ti.Equal(tj) {
			return ids[i] < ids[j]
		}
		return ti.Before(tj)
	})
	return ids
}
