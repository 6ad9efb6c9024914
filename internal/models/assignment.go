package models

import (
	"time"
)

// Assignment is a single tracked piece of homework. The JSON tags define the
// field layout of the durable slot payload, so renaming them breaks existing
// stored state.
type Assignment struct {
	ID             int64      `json:"id"`
	Name           string     `json:"name"`
	Subject        string     `json:"subject"`
	Deadline       time.Time  `json:"deadline"`
	Description    string     `json:"description"`
	IsCompleted    bool       `json:"isCompleted"`
	CompletionDate *time.Time `json:"completionDate,omitempty"`
}
