// Package domain defines usage and error events emitted by the converter
package domain

import (
	"time"

	"github.com/google/uuid"
)

// Kind names an event
type Kind string

// Event kinds
const (
	ConversionCompleted Kind = "conversion_completed"
	ConversionFailed    Kind = "conversion_failed"
	LanguageDetected    Kind = "language_detected"
	ErrorOccurred       Kind = "error_occurred"
	HistoryCleared      Kind = "history_cleared"
)

// Event is one telemetry record; zero ID and At are filled in on emit
type Event struct {
	ID         uuid.UUID `json:"id"`
	Kind       Kind      `json:"kind"`
	At         time.Time `json:"at"`
	Session    string    `json:"session,omitempty"`
	From       string    `json:"from,omitempty"`
	To         string    `json:"to,omitempty"`
	InputSize  int       `json:"input_size,omitempty"`
	DurationMs int64     `json:"duration_ms,omitempty"`
	Success    bool      `json:"success"`
	Message    string    `json:"message,omitempty"`
}
