package repository

import (
	"errors"
	"sync"
	"time"

	"github.com/adityagv/homework-hub/internal/models"
)

// ErrAssignmentNotFound is returned when an operation references an ID that
// is not in the collection.
var ErrAssignmentNotFound = errors.New("assignment not found")

// MemoryAssignmentRepository is an insertion-ordered, mutex-guarded
// implementation of AssignmentRepository. All returned assignments are
// copies; callers never see the internal slice.
type MemoryAssignmentRepository struct {
	mu          sync.Mutex
	assignments []models.Assignment
	byID        map[int64]int
	now         func() time.Time
}

// NewAssignmentRepository creates an empty repository.
func NewAssignmentRepository() AssignmentRepository {
	return &MemoryAssignmentRepository{
		byID: make(map[int64]int),
		now:  time.Now,
	}
}

// Create builds a new active assignment. IDs are the creation time in
// milliseconds; a candidate that collides with an existing ID is nudged
// upward until free, so rapid back-to-back creation stays unique.
func (r *MemoryAssignmentRepository) Create(input AssignmentInput) *models.Assignment {
	r.mu.Lock()
	defer r.mu.Unlock()

	id := r.now().UnixMilli()
	for {
		if _, taken := r.byID[id]; !taken {
			break
		}
		id++
	}

	assignment := models.Assignment{
		ID:          id,
		Name:        input.Name,
		Subject:     input.Subject,
		Deadline:    input.Deadline,
		Description: input.Description,
	}

	r.assignments = append(r.assignments, assignment)
	r.byID[id] = len(r.assignments) - 1

	out := cloneAssignment(assignment)
	return &out
}

// Update replaces name, subject, deadline and description in place. ID,
// IsCompleted and CompletionDate are untouched.
func (r *MemoryAssignmentRepository) Update(id int64, input AssignmentInput) (*models.Assignment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx, ok := r.byID[id]
	if !ok {
		return nil, ErrAssignmentNotFound
	}

	a := &r.assignments[idx]
	a.Name = input.Name
	a.Subject = input.Subject
	a.Deadline = input.Deadline
	a.Description = input.Description

	out := cloneAssignment(*a)
	return &out, nil
}

// Complete marks an assignment done and stamps its completion date. A repeat
// call re-stamps the date; the dashboard never offers the action twice.
func (r *MemoryAssignmentRepository) Complete(id int64) (*models.Assignment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx, ok := r.byID[id]
	if !ok {
		return nil, ErrAssignmentNotFound
	}

	a := &r.assignments[idx]
	completed := r.now()
	a.IsCompleted = true
	a.CompletionDate = &completed

	out := cloneAssignment(*a)
	return &out, nil
}

func (r *MemoryAssignmentRepository) Find(id int64) (*models.Assignment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx, ok := r.byID[id]
	if !ok {
		return nil, ErrAssignmentNotFound
	}

	out := cloneAssignment(r.assignments[idx])
	return &out, nil
}

func (r *MemoryAssignmentRepository) ListAll() []models.Assignment {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]models.Assignment, len(r.assignments))
	for i, a := range r.assignments {
		out[i] = cloneAssignment(a)
	}
	return out
}

func (r *MemoryAssignmentRepository) ListActive() []models.Assignment {
	return r.list(func(a models.Assignment) bool { return !a.IsCompleted })
}

func (r *MemoryAssignmentRepository) ListCompleted() []models.Assignment {
	return r.list(func(a models.Assignment) bool { return a.IsCompleted })
}

// Replace installs a loaded collection, discarding the current one. Used once
// at startup to hydrate from storage.
func (r *MemoryAssignmentRepository) Replace(assignments []models.Assignment) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.assignments = make([]models.Assignment, len(assignments))
	r.byID = make(map[int64]int, len(assignments))
	for i, a := range assignments {
		r.assignments[i] = cloneAssignment(a)
		r.byID[a.ID] = i
	}
}

func (r *MemoryAssignmentRepository) list(keep func(models.Assignment) bool) []models.Assignment {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]models.Assignment, 0, len(r.assignments))
	for _, a := range r.assignments {
		if keep(a) {
			out = append(out, cloneAssignment(a))
		}
	}
	return out
}

// cloneAssignment deep-copies the one pointer field so callers cannot reach
// back into the stored value.
func cloneAssignment(a models.Assignment) models.Assignment {
	if a.CompletionDate != nil {
		d := *a.CompletionDate
		a.CompletionDate = &d
	}
	return a
}
