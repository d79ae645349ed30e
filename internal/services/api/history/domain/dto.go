// Package domain holds DTOs for the history http and service contracts
package domain

import (
	"context"

	histdom "langshift/internal/services/history/domain"
)

// ListOutput is the response of GET /history, newest entry first
type ListOutput struct {
	Session string          `json:"session" example:"9b2f8c1e-4a57-4a4e-bd0b-0c1d7c6f2e11"`
	Entries []histdom.Entry `json:"entries"`
}

// ClearOutput is the response of DELETE /history
type ClearOutput struct {
	Session string `json:"session"`
	Cleared int    `json:"cleared" example:"3"`
}

// ServicePort is the history API contract
type ServicePort interface {
	List(ctx context.Context, session string) (ListOutput, error)
	Clear(ctx context.Context, session string) (ClearOutput, error)
}
