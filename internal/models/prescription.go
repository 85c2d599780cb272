package models

import "time"

// Medicine is one entry in a prescription's medication list.
type Medicine struct {
	Name      string `json:"name"`
	Dosage    string `json:"dosage"`
	Frequency string `json:"frequency"`
	Duration  string `json:"duration"`
}

// Prescription is the structured artifact produced at consultation close.
// Each generation yields a new independent record; nothing prevents a doctor
// from regenerating, and a regeneration never mutates a prior record.
type Prescription struct {
	ID           string     `json:"id"`
	ChatID       string     `json:"chatId"`
	Medicines    []Medicine `json:"medicines"`
	Instructions string     `json:"instructions"`
	CreatedAt    time.Time  `json:"createdAt"`
}
