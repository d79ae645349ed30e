// Package domain defines the conversion history types and ports
package domain

import (
	"time"

	"github.com/google/uuid"
)

// DefaultCapacity is the number of entries kept per session
const DefaultCapacity = 10

// Entry is one successful conversion kept in the history log
type Entry struct {
	ID        uuid.UUID `json:"id"`
	Label     string    `json:"label"`
	Source    string    `json:"source_text"`
	Result    string    `json:"result_text"`
	CreatedAt time.Time `json:"timestamp"`
}

// RecordInput is what callers hand to Record; ID and CreatedAt are assigned by the service
type RecordInput struct {
	Session string
	Label   string
	Source  string
	Result  string
}
