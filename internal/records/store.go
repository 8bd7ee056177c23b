// Package records owns the per-account work-session and trial-visit
// collections and keeps their key-value mirror in sync. Every mutation
// rewrites the whole collection, so the persisted form is always either
// the previous or the next complete state.
package records

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/fcosta/horas/internal/domain"
	"github.com/fcosta/horas/internal/kvstore"
	"github.com/google/uuid"
)

// Store holds the record collections for one account.
type Store struct {
	kv     *kvstore.Store
	userID string
	log    *slog.Logger

	sessions    []domain.WorkSession
	visits      []domain.TrialVisit
	initialized bool
}

// NewStore creates a record store scoped to the given account. Call Load
// before reading.
func NewStore(kv *kvstore.Store, userID string, log *slog.Logger) *Store {
	if log == nil {
		log = slog.Default()
	}
	return &Store{kv: kv, userID: userID, log: log}
}

// Load reads the collections from storage, running any pending legacy
// migrations first. Load never fails hard: if anything goes wrong the
// collections come up empty and the store still counts as initialized.
func (s *Store) Load() {
	s.sessions = nil
	s.visits = nil
	s.initialized = true

	if err := runMigrations(s.kv, s.log); err != nil {
		s.log.Error("storage migration failed, starting empty", "error", err)
		return
	}

	var stored []storedWorkSession
	if err := s.kv.Get(sessionsKey(s.userID), &stored); err != nil && !errors.Is(err, kvstore.ErrNotFound) {
		s.log.Error("loading work sessions failed, starting empty", "error", err)
		return
	}
	for _, rec := range stored {
		decoded, err := decodeWorkSession(rec)
		if err != nil {
			s.log.Warn("discarding stored work session", "error", err)
			continue
		}
		s.sessions = append(s.sessions, decoded)
	}

	var storedVisits []storedTrialVisit
	if err := s.kv.Get(visitsKey(s.userID), &storedVisits); err != nil && !errors.Is(err, kvstore.ErrNotFound) {
		s.log.Error("loading trial visits failed, starting empty", "error", err)
		s.sessions = nil
		return
	}
	for _, rec := range storedVisits {
		decoded, err := decodeTrialVisit(rec)
		if err != nil {
			s.log.Warn("discarding stored trial visit", "error", err)
			continue
		}
		s.visits = append(s.visits, decoded)
	}
}

// Initialized reports whether Load has run.
func (s *Store) Initialized() bool {
	return s.initialized
}

// WorkSessions returns the loaded work sessions.
func (s *Store) WorkSessions() []domain.WorkSession {
	return s.sessions
}

// TrialVisits returns the loaded trial visits.
func (s *Store) TrialVisits() []domain.TrialVisit {
	return s.visits
}

// AddWorkSession validates the session, derives its hours and earnings,
// appends it, and persists the collection.
func (s *Store) AddWorkSession(session domain.WorkSession) (domain.WorkSession, error) {
	if session.ID == "" {
		session.ID = uuid.New().String()
	}
	session.UserID = s.userID
	if err := session.Validate(); err != nil {
		return domain.WorkSession{}, err
	}
	session.Derive()
	s.sessions = append(s.sessions, session)
	s.persistSessions()
	return session, nil
}

// UpdateWorkSession replaces the session with the same ID, recomputing its
// derived fields.
func (s *Store) UpdateWorkSession(session domain.WorkSession) (domain.WorkSession, error) {
	session.UserID = s.userID
	if err := session.Validate(); err != nil {
		return domain.WorkSession{}, err
	}
	session.Derive()
	for i := range s.sessions {
		if s.sessions[i].ID == session.ID {
			s.sessions[i] = session
			s.persistSessions()
			return session, nil
		}
	}
	return domain.WorkSession{}, fmt.Errorf("work session %s: %w", session.ID, domain.ErrNotFound)
}

// DeleteWorkSession removes the session with the given ID.
func (s *Store) DeleteWorkSession(id string) error {
	for i := range s.sessions {
		if s.sessions[i].ID == id {
			s.sessions = append(s.sessions[:i], s.sessions[i+1:]...)
			s.persistSessions()
			return nil
		}
	}
	return fmt.Errorf("work session %s: %w", id, domain.ErrNotFound)
}

// AddTrialVisit appends a trial visit. Visits are append-only: there is no
// update or delete.
func (s *Store) AddTrialVisit(visit domain.TrialVisit) (domain.TrialVisit, error) {
	if visit.ID == "" {
		visit.ID = uuid.New().String()
	}
	visit.UserID = s.userID
	if err := visit.Validate(); err != nil {
		return domain.TrialVisit{}, err
	}
	s.visits = append(s.visits, visit)
	s.persistVisits()
	return visit, nil
}

// Clear empties both collections and removes the current and legacy
// storage keys.
func (s *Store) Clear() {
	s.sessions = nil
	s.visits = nil
	for _, key := range []string{sessionsKey(s.userID), visitsKey(s.userID), legacySessions, legacyVisits, legacyEnvelope} {
		if err := s.kv.Delete(key); err != nil {
			s.log.Error("clearing storage key failed", "key", key, "error", fmt.Errorf("%v: %w", err, domain.ErrPersistence))
		}
	}
}

// persistSessions mirrors the in-memory collection to storage. A write
// failure is logged and the in-memory state stands; this is the one case
// where the two may diverge.
func (s *Store) persistSessions() {
	stored := make([]storedWorkSession, 0, len(s.sessions))
	for _, sess := range s.sessions {
		stored = append(stored, encodeWorkSession(sess))
	}
	if err := s.kv.Set(sessionsKey(s.userID), stored); err != nil {
		s.log.Error("persisting work sessions failed", "error", fmt.Errorf("%v: %w", err, domain.ErrPersistence))
	}
}

func (s *Store) persistVisits() {
	stored := make([]storedTrialVisit, 0, len(s.visits))
	for _, v := range s.visits {
		stored = append(stored, encodeTrialVisit(v))
	}
	if err := s.kv.Set(visitsKey(s.userID), stored); err != nil {
		s.log.Error("persisting trial visits failed", "error", fmt.Errorf("%v: %w", err, domain.ErrPersistence))
	}
}

// SessionsFor reads the persisted work sessions of an arbitrary account
// straight from storage, bypassing any in-memory store instance. The
// identity service uses this when acting on another account's data.
func SessionsFor(kv *kvstore.Store, userID string, log *slog.Logger) []domain.WorkSession {
	if log == nil {
		log = slog.Default()
	}
	var stored []storedWorkSession
	if err := kv.Get(sessionsKey(userID), &stored); err != nil {
		if !errors.Is(err, kvstore.ErrNotFound) {
			log.Error("reading work sessions failed", "user_id", userID, "error", err)
		}
		return nil
	}
	var sessions []domain.WorkSession
	for _, rec := range stored {
		decoded, err := decodeWorkSession(rec)
		if err != nil {
			log.Warn("discarding stored work session", "error", err)
			continue
		}
		sessions = append(sessions, decoded)
	}
	return sessions
}

// DeleteAllFor removes every stored collection belonging to an account.
// Used when the account itself is deleted.
func DeleteAllFor(kv *kvstore.Store, userID string) error {
	if err := kv.Delete(sessionsKey(userID)); err != nil {
		return err
	}
	return kv.Delete(visitsKey(userID))
}
