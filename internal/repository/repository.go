package repository

import (
	"time"

	"github.com/adityagv/homework-hub/internal/models"
)

// AssignmentInput carries the four editable fields of an assignment. Identity
// and completion state never travel through it.
type AssignmentInput struct {
	Name        string
	Subject     string
	Deadline    time.Time
	Description string
}

// AssignmentRepository defines the interface for the in-session assignment
// collection. The collection is the single source of truth while the process
// runs; durable storage only mirrors it.
type AssignmentRepository interface {
	// Create builds a new active assignment and appends it.
	Create(input AssignmentInput) *models.Assignment

	// Update replaces the editable fields of an existing assignment.
	Update(id int64, input AssignmentInput) (*models.Assignment, error)

	// Complete marks an assignment done and stamps its completion date.
	Complete(id int64) (*models.Assignment, error)

	// Find returns an assignment by ID.
	Find(id int64) (*models.Assignment, error)

	// ListAll returns the full collection in insertion order.
	ListAll() []models.Assignment

	// ListActive returns assignments not yet completed, insertion order.
	ListActive() []models.Assignment

	// ListCompleted returns completed assignments, insertion order.
	ListCompleted() []models.Assignment

	// Replace installs a loaded collection, discarding the current one.
	Replace(assignments []models.Assignment)
}
