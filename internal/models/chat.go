package models

import (
	"time"
)

// SenderType identifies who authored a message.
type SenderType string

const (
	SenderPatient SenderType = "patient"
	SenderDoctor  SenderType = "doctor"
	SenderSystem  SenderType = "system"
)

// SessionStatus represents the lifecycle state of a consultation.
type SessionStatus string

const (
	SessionActive    SessionStatus = "active"
	SessionCompleted SessionStatus = "completed"
	SessionCancelled SessionStatus = "cancelled"
)

// Terminal reports whether no further status transition is allowed.
func (s SessionStatus) Terminal() bool {
	return s == SessionCompleted || s == SessionCancelled
}

// Message is a single chat message. Messages are immutable once appended;
// ids and timestamps are assigned by the SessionStore, not by callers.
type Message struct {
	ID         string     `json:"id"`
	SenderID   string     `json:"senderId"`
	SenderType SenderType `json:"senderType"`
	Content    string     `json:"content"`
	Timestamp  time.Time  `json:"timestamp"`
}

// PatientSession holds the per-consultation patient record captured at
// intake. It is created once and never modified afterwards; the concern may
// already be the summarized form when it reaches the store.
type PatientSession struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Age      string `json:"age"`
	Concern  string `json:"concern"`
	Language string `json:"language"`
	Phone    string `json:"phone,omitempty"`
}

// ChatSession is the consultation channel between one patient and one doctor.
// TenantID always equals the doctor's tenant; SessionStore enforces this at
// creation and the pair is immutable afterwards.
type ChatSession struct {
	ID        string         `json:"id"`
	TenantID  string         `json:"tenantId"`
	DoctorID  string         `json:"doctorId"`
	Patient   PatientSession `json:"patient"`
	Status    SessionStatus  `json:"status"`
	Messages  []Message      `json:"messages"`
	Notes     string         `json:"notes,omitempty"`
	CreatedAt time.Time      `json:"createdAt"`
}
