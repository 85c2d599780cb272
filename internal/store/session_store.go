package store

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"teleconsult-server/internal/models"
)

// DoctorResolver looks up a doctor by id. Satisfied by DoctorStore.
type DoctorResolver interface {
	Get(id string) (models.Doctor, error)
}

// SessionStore exclusively owns chat sessions and their message logs, and
// enforces the session state machine: active is entered exactly once at
// creation, completed and cancelled are terminal. A single mutex serializes
// all mutations, which gives every session a linear message order and makes
// each operation atomic with respect to the others. Sessions are never
// deleted; closed sessions remain queryable.
type SessionStore struct {
	mu      sync.Mutex
	byID    map[string]*models.ChatSession
	order   []string
	doctors DoctorResolver
}

// NewSessionStore creates an empty SessionStore that resolves doctors
// against the given resolver.
func NewSessionStore(doctors DoctorResolver) *SessionStore {
	return &SessionStore{byID: make(map[string]*models.ChatSession), doctors: doctors}
}

// Create registers a new session together with its initial message list.
// The session must arrive in the active state. It fails with ErrDuplicateID
// on an id collision, ErrNotFound when the doctor id does not resolve, and
// ErrInvariantViolation when the session's tenant differs from the doctor's.
// On failure nothing is registered; a partial session is never visible.
func (s *SessionStore) Create(session models.ChatSession) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if session.Status != models.SessionActive {
		return ErrInvalidState
	}
	if _, exists := s.byID[session.ID]; exists {
		return ErrDuplicateID
	}
	doctor, err := s.doctors.Get(session.DoctorID)
	if err != nil {
		return err
	}
	if doctor.TenantID != session.TenantID {
		return ErrInvariantViolation
	}

	if session.CreatedAt.IsZero() {
		session.CreatedAt = time.Now()
	}
	// Own the message log: copy the seed messages so the caller's slice
	// cannot alias store state.
	session.Messages = append([]models.Message(nil), session.Messages...)

	s.byID[session.ID] = &session
	s.order = append(s.order, session.ID)
	return nil
}

// Get returns a snapshot of the session, or ErrNotFound.
func (s *SessionStore) Get(id string) (models.ChatSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, exists := s.byID[id]
	if !exists {
		return models.ChatSession{}, ErrNotFound
	}
	return snapshot(session), nil
}

// AppendMessage appends a message to the session's log, assigning it a fresh
// id and a timestamp that never decreases within the session. Appends racing
// from the patient and doctor sides are linearized by the store lock; the
// resulting order is the order the calls complete in. It fails with
// ErrNotFound for an unknown session and ErrInvalidState once the session is
// closed, leaving the log untouched.
func (s *SessionStore) AppendMessage(sessionID string, message models.Message) (models.Message, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, exists := s.byID[sessionID]
	if !exists {
		return models.Message{}, ErrNotFound
	}
	if session.Status.Terminal() {
		return models.Message{}, ErrInvalidState
	}

	message.ID = uuid.New().String()
	message.Timestamp = time.Now()
	if n := len(session.Messages); n > 0 {
		if last := session.Messages[n-1].Timestamp; message.Timestamp.Before(last) {
			message.Timestamp = last
		}
	}
	session.Messages = append(session.Messages, message)
	return message, nil
}

// Messages returns a snapshot of the session's message log in append order.
func (s *SessionStore) Messages(sessionID string) ([]models.Message, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, exists := s.byID[sessionID]
	if !exists {
		return nil, ErrNotFound
	}
	return append([]models.Message(nil), session.Messages...), nil
}

// Complete transitions the session to completed and records the clinician's
// notes. Completing an already completed session is not an error: the notes
// are overwritten and the status stays completed, so duplicate "end session"
// signals are tolerated. Completing a cancelled session fails with
// ErrInvalidState.
func (s *SessionStore) Complete(sessionID, notes string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, exists := s.byID[sessionID]
	if !exists {
		return ErrNotFound
	}
	if session.Status == models.SessionCancelled {
		return ErrInvalidState
	}
	session.Status = models.SessionCompleted
	session.Notes = notes
	return nil
}

// Cancel transitions the session to cancelled. Like Complete it is idempotent
// for repeated cancels; cancelling a completed session fails with
// ErrInvalidState.
func (s *SessionStore) Cancel(sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, exists := s.byID[sessionID]
	if !exists {
		return ErrNotFound
	}
	if session.Status == models.SessionCompleted {
		return ErrInvalidState
	}
	session.Status = models.SessionCancelled
	return nil
}

// ListActiveByDoctor returns the doctor's active sessions in creation order.
// This is the doctor's work queue.
func (s *SessionStore) ListActiveByDoctor(doctorID string) []models.ChatSession {
	s.mu.Lock()
	defer s.mu.Unlock()

	var sessions []models.ChatSession
	for _, id := range s.order {
		session := s.byID[id]
		if session.DoctorID == doctorID && session.Status == models.SessionActive {
			sessions = append(sessions, snapshot(session))
		}
	}
	return sessions
}

func snapshot(session *models.ChatSession) models.ChatSession {
	copied := *session
	copied.Messages = append([]models.Message(nil), session.Messages...)
	return copied
}
