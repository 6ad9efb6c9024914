package services

import (
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/adityagv/homework-hub/internal/constants"
	"github.com/adityagv/homework-hub/internal/dto"
	"github.com/adityagv/homework-hub/internal/models"
	"github.com/adityagv/homework-hub/internal/repository"
)

var (
	ErrAssignmentNotFound = errors.New("assignment not found")
	ErrNameRequired       = errors.New("name is required")
	ErrDeadlineRequired   = errors.New("deadline is required")
)

// Store is the durable side of the persistence loop. *storage.Adapter
// satisfies it.
type Store interface {
	Load() []models.Assignment
	Save(assignments []models.Assignment) error
}

// AssignmentService turns user intents into repository mutations, mirrors
// every mutation into durable storage, and hands back fresh display state.
// One mutex serializes mutate, persist, project, so durable state is written
// after the mutation and before anything is redisplayed.
type AssignmentService struct {
	mu    sync.Mutex
	repo  repository.AssignmentRepository
	store Store
	now   func() time.Time
}

// NewAssignmentService creates a new AssignmentService.
func NewAssignmentService(repo repository.AssignmentRepository, store Store) *AssignmentService {
	return &AssignmentService{
		repo:  repo,
		store: store,
		now:   time.Now,
	}
}

// SubmitInput carries the entry form fields. A non-nil ID means the form was
// in update mode.
type SubmitInput struct {
	ID          *int64
	Name        string
	Subject     string
	Deadline    time.Time
	Description string
}

// FormModel pre-fills the entry form for editing. DeadlineInput is truncated
// to minute precision, the granularity of a datetime-local input.
type FormModel struct {
	ID            int64  `json:"id"`
	Name          string `json:"name"`
	Subject       string `json:"subject"`
	DeadlineInput string `json:"deadline_input"`
	Description   string `json:"description"`
}

// LoadFromStorage hydrates the repository from the durable slot. Called once
// at startup; an absent or unreadable slot yields an empty collection.
func (s *AssignmentService) LoadFromStorage() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.repo.Replace(s.store.Load())
}

// Submit creates a new assignment, or updates an existing one when the input
// carries an ID. The collection is persisted before the call returns.
func (s *AssignmentService) Submit(input SubmitInput) (*models.Assignment, error) {
	if input.Name == "" {
		return nil, ErrNameRequired
	}
	if input.Deadline.IsZero() {
		return nil, ErrDeadlineRequired
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	fields := repository.AssignmentInput{
		Name:        input.Name,
		Subject:     input.Subject,
		Deadline:    input.Deadline,
		Description: input.Description,
	}

	var (
		assignment *models.Assignment
		err        error
	)
	if input.ID != nil {
		assignment, err = s.repo.Update(*input.ID, fields)
		if err != nil {
			if errors.Is(err, repository.ErrAssignmentNotFound) {
				return nil, ErrAssignmentNotFound
			}
			return nil, fmt.Errorf("failed to update assignment: %w", err)
		}
	} else {
		assignment = s.repo.Create(fields)
	}

	s.persist()
	return assignment, nil
}

// Complete marks an assignment done and persists the collection.
func (s *AssignmentService) Complete(id int64) (*models.Assignment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	assignment, err := s.repo.Complete(id)
	if err != nil {
		if errors.Is(err, repository.ErrAssignmentNotFound) {
			return nil, ErrAssignmentNotFound
		}
		return nil, fmt.Errorf("failed to complete assignment: %w", err)
	}

	s.persist()
	return assignment, nil
}

// Find returns a single assignment.
func (s *AssignmentService) Find(id int64) (*models.Assignment, error) {
	assignment, err := s.repo.Find(id)
	if err != nil {
		if errors.Is(err, repository.ErrAssignmentNotFound) {
			return nil, ErrAssignmentNotFound
		}
		return nil, fmt.Errorf("failed to find assignment: %w", err)
	}
	return assignment, nil
}

// EditForm returns the entry form pre-filled with an assignment's current
// field values, switched into update mode.
func (s *AssignmentService) EditForm(id int64) (*FormModel, error) {
	assignment, err := s.Find(id)
	if err != nil {
		return nil, err
	}

	return &FormModel{
		ID:            assignment.ID,
		Name:          assignment.Name,
		Subject:       assignment.Subject,
		DeadlineInput: assignment.Deadline.Format(constants.DeadlineInputFormat),
		Description:   assignment.Description,
	}, nil
}

// Dashboard projects the current collection into display state.
func (s *AssignmentService) Dashboard() dto.DisplayModel {
	return dto.Project(s.repo.ListAll(), s.now())
}

// CompletedHistory lists completed assignments with their completion dates.
func (s *AssignmentService) CompletedHistory() []dto.CompletedItem {
	return dto.ProjectCompleted(s.repo.ListCompleted())
}

// Assignments returns the full collection in insertion order.
func (s *AssignmentService) Assignments() []models.Assignment {
	return s.repo.ListAll()
}

// persist mirrors the collection into the durable slot. Saves are
// best-effort: a failed write is logged, the in-memory state stays
// authoritative for the rest of the session.
func (s *AssignmentService) persist() {
	if err := s.store.Save(s.repo.ListAll()); err != nil {
		log.Printf("services: failed to persist assignments: %v", err)
	}
}
