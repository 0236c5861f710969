package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"exhibit-labels/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	// ErrNotFound means no label row exists for the identifier.
	ErrNotFound = errors.New("label not found")
	// ErrCorrupted means a row exists but its stored document is not
	// valid JSON. Kept distinct from ErrNotFound so callers can tell a
	// bad row from a missing one.
	ErrCorrupted = errors.New("label data corrupted")
)

const (
	idLength       = 8
	createAttempts = 5
)

// LabelStore persists Label rows through a shared gorm connection pool.
type LabelStore struct {
	db *gorm.DB
}

func New(db *gorm.DB) *LabelStore {
	return &LabelStore{db: db}
}

// Summary is the sidebar view of one label.
type Summary struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Template  string    `json:"template"`
	CreatedAt time.Time `json:"created_at"`
}

// NewID returns a short identifier: the first 8 hex characters of a
// random UUID.
func NewID() string {
	return uuid.NewString()[:idLength]
}

// Create serializes doc and inserts it under id. A duplicate id surfaces
// as gorm.ErrDuplicatedKey.
func (s *LabelStore) Create(id string, doc map[string]any) error {
	data, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to encode label %s: %w", id, err)
	}
	return s.db.Create(&models.Label{ID: id, Data: string(data)}).Error
}

// CreateWithNewID generates a short identifier and inserts doc under it,
// retrying with a fresh identifier when the generated one is already
// taken.
func (s *LabelStore) CreateWithNewID(doc map[string]any) (string, error) {
	var lastErr error
	for i := 0; i < createAttempts; i++ {
		id := NewID()
		err := s.Create(id, doc)
		if err == nil {
			return id, nil
		}
		if !errors.Is(err, gorm.ErrDuplicatedKey) {
			return "", err
		}
		lastErr = err
	}
	return "", fmt.Errorf("failed to generate a unique label id: %w", lastErr)
}

// Fetch returns the stored document for id. ErrNotFound when no row
// matches, ErrCorrupted when the row's text does not decode.
func (s *LabelStore) Fetch(id string) (map[string]any, error) {
	var label models.Label
	if err := s.db.First(&label, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	var doc map[string]any
	if err := json.Unmarshal([]byte(label.Data), &doc); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrCorrupted, id)
	}
	return doc, nil
}

// FetchAllSummaries lists every label, newest first. Title and Template
// are pulled from the stored document on a best-effort basis; undecodable
// rows still appear with their id so they stay visible in the sidebar.
func (s *LabelStore) FetchAllSummaries() ([]Summary, error) {
	var labels []models.Label
	if err := s.db.Order("created_at DESC").Find(&labels).Error; err != nil {
		return nil, err
	}

	summaries := make([]Summary, 0, len(labels))
	for _, l := range labels {
		sum := Summary{ID: l.ID, CreatedAt: l.CreatedAt}
		var doc map[string]any
		if err := json.Unmarshal([]byte(l.Data), &doc); err == nil {
			if title, ok := doc["title"].(string); ok {
				sum.Title = title
			}
			if tpl, ok := doc["template"].(string); ok {
				sum.Template = tpl
			}
		}
		summaries = append(summaries, sum)
	}
	return summaries, nil
}

// Delete removes the row for id and reports whether one was removed.
// Media files referenced by the document are left in place.
func (s *LabelStore) Delete(id string) (bool, error) {
	res := s.db.Delete(&models.Label{}, "id = ?", id)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
