package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"listinggen/internal/model"
)

// Session holds the mutable per-session state: at most one record, one
// result, one optional enhancement, and the generation counter that selects
// the next creative angle.
type Session struct {
	ID              string
	Record          *model.PropertyRecord
	Result          *model.GenerationResult
	Enhanced        string
	UseEnhanced     bool
	GenerationCount int
	LastFallback    bool
	CreatedAt       time.Time
	UpdatedAt       time.Time

	mu sync.Mutex
}

// Empty reports whether the session holds no record or result.
func (s *Session) Empty() bool {
	return s.Record == nil && s.Result == nil
}

// Snapshot renders the session for the state endpoint.
func (s *Session) Snapshot() model.SessionSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap := model.SessionSnapshot{
		SessionID:       s.ID,
		Record:          s.Record,
		Result:          s.Result,
		Enhanced:        s.Enhanced,
		UseEnhanced:     s.UseEnhanced,
		GenerationCount: s.GenerationCount,
		Version:         s.GenerationCount + 1,
	}
	if s.Result != nil {
		snap.Style = VariationFor(s.GenerationCount).Name
	}
	return snap
}

// SessionStore keeps live sessions in memory, keyed by id. Nothing is
// persisted beyond the process.
type SessionStore struct {
	mu       sync.RWMutex
	sessions map[string]*Session
}

// NewSessionStore creates an empty store
func NewSessionStore() *SessionStore {
	return &SessionStore{
		sessions: make(map[string]*Session),
	}
}

// Create registers a new empty session and returns it.
func (st *SessionStore) Create() *Session {
	s := &Session{
		ID:        uuid.NewString(),
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	st.mu.Lock()
	st.sessions[s.ID] = s
	st.mu.Unlock()
	return s
}

// Get returns the session for an id, or an error when unknown.
func (st *SessionStore) Get(id string) (*Session, error) {
	st.mu.RLock()
	defer st.mu.RUnlock()
	s, ok := st.sessions[id]
	if !ok {
		return nil, fmt.Errorf("unknown session: %s", id)
	}
	return s, nil
}

// Delete removes a session entirely.
func (st *SessionStore) Delete(id string) {
	st.mu.Lock()
	delete(st.sessions, id)
	st.mu.Unlock()
}

// Len returns the number of live sessions.
func (st *SessionStore) Len() int {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return len(st.sessions)
}

// SessionService executes the generate/regenerate/enhance/clear actions
// against a session, delegating content production to the Generator.
type SessionService struct {
	store     *SessionStore
	generator *Generator
}

// NewSessionService wires the action handlers
func NewSessionService(store *SessionStore, generator *Generator) *SessionService {
	return &SessionService{
		store:     store,
		generator: generator,
	}
}

// Store exposes the underlying session store.
func (svc *SessionService) Store() *SessionStore {
	return svc.store
}

// Generate runs a fresh generation: counter reset to 0, prior enhancement
// state discarded, the record replaced wholesale.
func (svc *SessionService) Generate(ctx context.Context, sessionID string, record *model.PropertyRecord, apiKey string) (*model.GenerateResponse, error) {
	s, err := svc.store.Get(sessionID)
	if err != nil {
		return nil, err
	}

	record.ApplyDefaults()
	if err := record.Validate(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.GenerationCount = 0
	s.Record = record
	s.Enhanced = ""
	s.UseEnhanced = false

	outcome := svc.generator.Generate(ctx, record, s.GenerationCount, apiKey)
	s.Result = outcome.Result
	s.LastFallback = outcome.Fallback
	s.UpdatedAt = time.Now()

	return svc.response(s, outcome), nil
}

// Regenerate increments the counter, discards enhancement state, and
// re-invokes the orchestrator with the new counter as variation seed. The
// record may be replaced or omitted to reuse the held one.
func (svc *SessionService) Regenerate(ctx context.Context, sessionID string, record *model.PropertyRecord, apiKey string) (*model.GenerateResponse, error) {
	s, err := svc.store.Get(sessionID)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.Result == nil {
		return nil, fmt.Errorf("nothing to regenerate: generate first")
	}

	if record != nil {
		record.ApplyDefaults()
		if err := record.Validate(); err != nil {
			return nil, err
		}
		s.Record = record
	}
	if s.Record == nil {
		return nil, fmt.Errorf("session holds no property record")
	}

	s.GenerationCount++
	s.Enhanced = ""
	s.UseEnhanced = false

	outcome := svc.generator.Generate(ctx, s.Record, s.GenerationCount, apiKey)
	s.Result = outcome.Result
	s.LastFallback = outcome.Fallback
	s.UpdatedAt = time.Now()

	return svc.response(s, outcome), nil
}

// Enhance runs the second-pass rewrite. On failure the session is left
// unchanged and the error is surfaced.
func (svc *SessionService) Enhance(ctx context.Context, sessionID, style, length, apiKey string) (*model.EnhanceResponse, error) {
	s, err := svc.store.Get(sessionID)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.Result == nil || s.Record == nil {
		return nil, fmt.Errorf("nothing to enhance: generate first")
	}

	enhanced, err := svc.generator.Enhance(ctx, s.Result.FullDescription, s.Record, style, length, apiKey)
	if err != nil {
		return nil, err
	}

	s.Enhanced = enhanced
	s.UpdatedAt = time.Now()

	return &model.EnhanceResponse{
		SessionID:   s.ID,
		Enhanced:    enhanced,
		Style:       style,
		Length:      length,
		WordCount:   wordCount(enhanced),
		UseEnhanced: s.UseEnhanced,
	}, nil
}

// UpdateEnhanced edits the held enhancement text or the use-in-exports flag.
func (svc *SessionService) UpdateEnhanced(sessionID string, update *model.EnhancedUpdateRequest) (*model.SessionSnapshot, error) {
	s, err := svc.store.Get(sessionID)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	if update.Text != nil {
		s.Enhanced = *update.Text
	}
	if update.UseEnhanced != nil {
		if *update.UseEnhanced && s.Enhanced == "" {
			s.mu.Unlock()
			return nil, fmt.Errorf("no enhanced description to use")
		}
		s.UseEnhanced = *update.UseEnhanced
	}
	s.UpdatedAt = time.Now()
	s.mu.Unlock()

	snap := s.Snapshot()
	return &snap, nil
}

// Clear discards everything held by the session and returns it to empty,
// counter reset to 0.
func (svc *SessionService) Clear(sessionID string) error {
	s, err := svc.store.Get(sessionID)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.Record = nil
	s.Result = nil
	s.Enhanced = ""
	s.UseEnhanced = false
	s.GenerationCount = 0
	s.LastFallback = false
	s.UpdatedAt = time.Now()
	s.mu.Unlock()

	return nil
}

func (svc *SessionService) response(s *Session, outcome GenerateOutcome) *model.GenerateResponse {
	return &model.GenerateResponse{
		SessionID: s.ID,
		Result:    *outcome.Result,
		Version:   s.GenerationCount + 1,
		Style:     VariationFor(s.GenerationCount).Name,
		Fallback:  outcome.Fallback,
	}
}
