package models

import (
	"time"
)

// Label is a single stored exhibit record. Data carries the client-supplied
// JSON document as text; no schema is enforced on it beyond the optional
// "template" field read at render time.
type Label struct {
	ID        string    `gorm:"primaryKey" json:"id"`
	Data      string    `gorm:"type:text;not null" json:"data"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (Label) TableName() string {
	return "labels"
}
