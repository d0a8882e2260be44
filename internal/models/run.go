package models

import "time"

// Run is a persisted record of one optimization run.
type Run struct {
	ID        string    `json:"id" db:"id"`
	Query     string    `json:"query" db:"query"`
	Variants  []string  `json:"variants" db:"variants"`
	Metrics   Metrics   `json:"metrics" db:"metrics"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}
