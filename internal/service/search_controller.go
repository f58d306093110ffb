package service

import (
	"context"
	"strings"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/weathercard/backend/internal/domain"
)

// SearchController sequences weather lookups for one widget session and
// owns its SearchState. At most one lookup is in flight at a time.
type SearchController struct {
	client WeatherLookup

	mu         sync.Mutex
	state      domain.SearchState
	generation uint64

	wgBg sync.WaitGroup // tracks async lookups for graceful shutdown
}

// lookupTicket identifies one started lookup
type lookupTicket struct {
	generation uint64
	place      string
}

// NewSearchController creates a controller in the Idle phase
func NewSearchController(client WeatherLookup) *SearchController {
	return &SearchController{
		client: client,
		state:  domain.SearchState{Phase: domain.PhaseIdle},
	}
}

// State returns a snapshot of the current search state
func (c *SearchController) State() domain.SearchState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state.Clone()
}

// SetQuery updates the query text. Editing is allowed in every phase.
func (c *SearchController) SetQuery(query string) domain.SearchState {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state.Query = query
	return c.state.Clone()
}

// Submit runs a lookup for the current query and returns the resolved state.
// It returns domain.ErrLookupInFlight if a lookup is already loading.
func (c *SearchController) Submit(ctx context.Context) (domain.SearchState, error) {
	ticket, snapshot, started, err := c.begin()
	if err != nil {
		return snapshot, err
	}
	if !started {
		return snapshot, nil
	}

	return c.run(ctx, ticket), nil
}

// SubmitAsync starts a lookup and returns immediately with the current state.
// The returned channel receives the resolved state and is then closed; for
// rejected input it is already resolved.
func (c *SearchController) SubmitAsync(ctx context.Context) (domain.SearchState, <-chan domain.SearchState, error) {
	ticket, snapshot, started, err := c.begin()
	if err != nil {
		return snapshot, nil, err
	}

	done := make(chan domain.SearchState, 1)
	if !started {
		done <- snapshot
		close(done)
		return snapshot, done, nil
	}

	c.wgBg.Add(1)
	go func() {
		defer c.wgBg.Done()
		defer close(done)
		done <- c.run(ctx, ticket)
	}()

	return snapshot, done, nil
}

// Dismiss returns to Idle and clears any result or error. A lookup still in
// flight is not cancelled, but its response will be discarded.
func (c *SearchController) Dismiss() domain.SearchState {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.generation++
	c.state.Phase = domain.PhaseIdle
	c.state.Result = nil
	c.state.Error = nil
	return c.state.Clone()
}

// Wait blocks until all async lookups complete.
// Call during graceful shutdown to avoid abandoned requests.
func (c *SearchController) Wait() {
	c.wgBg.Wait()
}

// begin validates the query and moves to Loading.
// started is false when the query was rejected locally.
func (c *SearchController) begin() (lookupTicket, domain.SearchState, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state.Phase == domain.PhaseLoading {
		return lookupTicket{}, c.state.Clone(), false, domain.ErrLookupInFlight
	}

	place := strings.TrimSpace(c.state.Query)
	if place == "" {
		c.state.Phase = domain.PhaseFailed
		c.state.Result = nil
		c.state.Error = domain.NewLookupError(domain.KindInvalidInput, domain.MsgEmptyQuery, nil)
		return lookupTicket{}, c.state.Clone(), false, nil
	}

	c.generation++
	c.state.Phase = domain.PhaseLoading
	c.state.Result = nil
	c.state.Error = nil

	return lookupTicket{generation: c.generation, place: place}, c.state.Clone(), true, nil
}

// run performs the lookup without holding the lock, then resolves it
func (c *SearchController) run(ctx context.Context, ticket lookupTicket) domain.SearchState {
	reading, err := c.client.Lookup(ctx, ticket.place)
	return c.resolve(ticket, reading, err)
}

func (c *SearchController) resolve(ticket lookupTicket, reading domain.WeatherReading, err error) domain.SearchState {
	c.mu.Lock()
	defer c.mu.Unlock()

	if ticket.generation != c.generation {
		log.Debug().
			Str("place", ticket.place).
			Uint64("generation", ticket.generation).
			Msg("discarding stale lookup result")
		return c.state.Clone()
	}

	if err != nil {
		lookupErr := domain.AsLookupError(err)
		log.Info().
			Str("place", ticket.place).
			Str("kind", string(lookupErr.Kind)).
			Msg("weather lookup failed")
		c.state.Phase = domain.PhaseFailed
		c.state.Result = nil
		c.state.Error = lookupErr
		return c.state.Clone()
	}

	c.state.Phase = domain.PhaseSuccess
	c.state.Result = &reading
	c.state.Error = nil
	c.state.Query = ""
	return c.state.Clone()
}
