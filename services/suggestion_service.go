package services

import (
	"context"
	"sync"
)

// RecipeFinder is the slice of SpoonacularService the suggestion cache
// needs; tests substitute a fake.
type RecipeFinder interface {
	FindByIngredients(ctx context.Context, ingredients []string, maxResults int) ([]RecipeSuggestion, error)
}

// Notifier is satisfied by RealtimeHub.
type Notifier interface {
	Broadcast(userID uint, kind string, payload any)
}

type suggestionState struct {
	gen     uint64
	latest  []RecipeSuggestion
	loading bool
}

// SuggestionService keeps the per-user suggestion list in sync with the
// inventory. Fetches run off the caller's goroutine; each is tagged
// with a generation so a slow stale response can never overwrite a
// newer one. Only the goroutine holding the winning generation writes
// the cached list.
type SuggestionService struct {
	finder     RecipeFinder
	hub        Notifier
	maxResults int

	mu    sync.Mutex
	users map[uint]*suggestionState
}

func NewSuggestionService(finder RecipeFinder, hub Notifier, maxResults int) *SuggestionService {
	if maxResults <= 0 {
		maxResults = 10
	}
	return &SuggestionService{
		finder:     finder,
		hub:        hub,
		maxResults: maxResults,
		users:      make(map[uint]*suggestionState),
	}
}

func (s *SuggestionService) state(userID uint) *suggestionState {
	st, ok := s.users[userID]
	if !ok {
		st = &suggestionState{}
		s.users[userID] = st
	}
	return st
}

// Refresh recomputes the user's suggestions from the given ingredient
// names. The returned channel closes once this invocation has settled
// (applied or discarded as stale); callers that don't care may ignore it.
//
// An empty ingredient set clears the list without a network call.
// A fetch error also clears the list — stale suggestions are not kept
// past a failed refresh.
func (s *SuggestionService) Refresh(userID uint, ingredientNames []string) <-chan struct{} {
	done := make(chan struct{})

	s.mu.Lock()
	st := s.state(userID)
	st.gen++
	gen := st.gen

	if len(ingredientNames) == 0 {
		st.latest = []RecipeSuggestion{}
		st.loading = false
		s.mu.Unlock()
		s.notify(userID, []RecipeSuggestion{})
		close(done)
		return done
	}

	st.loading = true
	s.mu.Unlock()

	go func() {
		defer close(done)

		result, err := s.finder.FindByIngredients(context.Background(), ingredientNames, s.maxResults)

		s.mu.Lock()
		st := s.state(userID)
		if gen != st.gen {
			// A newer refresh has been issued; this result is stale.
			s.mu.Unlock()
			return
		}
		if err != nil {
			st.latest = []RecipeSuggestion{}
		} else {
			st.latest = result
		}
		st.loading = false
		snapshot := st.latest
		s.mu.Unlock()

		s.notify(userID, snapshot)
	}()

	return done
}

func (s *SuggestionService) notify(userID uint, suggestions []RecipeSuggestion) {
	if s.hub != nil {
		s.hub.Broadcast(userID, "suggestions.updated", suggestions)
	}
}

// Latest returns the cached suggestion list and whether a refresh is
// still in flight.
func (s *SuggestionService) Latest(userID uint) ([]RecipeSuggestion, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	st, ok := s.users[userID]
	if !ok || st.latest == nil {
		return []RecipeSuggestion{}, ok && st.loading
	}
	return st.latest, st.loading
}
