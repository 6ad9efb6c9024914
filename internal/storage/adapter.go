package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/adityagv/homework-hub/internal/models"
)

// Slot is the single durable row holding the serialized assignment
// collection. There is one row per slot key; every save rewrites it whole.
type Slot struct {
	Key       string `gorm:"primarykey;size:64"`
	Payload   string `gorm:"type:text"`
	UpdatedAt time.Time
}

// Adapter moves the assignment collection between memory and the durable
// slot. It carries no state of its own beyond the connection and the key.
type Adapter struct {
	db  *gorm.DB
	key string
}

func NewAdapter(db *gorm.DB, key string) *Adapter {
	return &Adapter{db: db, key: key}
}

// Load returns the stored collection. A missing slot, an empty payload, and
// an undecodable payload all mean the same thing to the caller: start from an
// empty collection. No prior data is a normal state, not a failure.
func (a *Adapter) Load() []models.Assignment {
	var slot Slot
	if err := a.db.First(&slot, "key = ?", a.key).Error; err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Printf("storage: could not read slot %q, starting empty: %v", a.key, err)
		}
		return []models.Assignment{}
	}

	if slot.Payload == "" {
		return []models.Assignment{}
	}

	var assignments []models.Assignment
	if err := json.Unmarshal([]byte(slot.Payload), &assignments); err != nil {
		log.Printf("storage: slot %q holds an undecodable payload, starting empty: %v", a.key, err)
		return []models.Assignment{}
	}

	return assignments
}

// Save overwrites the slot with the full collection, insertion order
// preserved. Callers persist after every mutation; there are no incremental
// writes.
func (a *Adapter) Save(assignments []models.Assignment) error {
	payload, err := json.Marshal(assignments)
	if err != nil {
		return fmt.Errorf("failed to encode assignments: %w", err)
	}

	slot := Slot{Key: a.key, Payload: string(payload), UpdatedAt: time.Now()}
	err = a.db.
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"payload", "updated_at"}),
		}).
		Create(&slot).Error
	if err != nil {
		return fmt.Errorf("failed to write slot %q: %w", a.key, err)
	}

	return nil
}
