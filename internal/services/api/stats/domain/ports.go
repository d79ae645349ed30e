package domain

import "context"

// ServicePort is consumed by handlers and other modules
type ServicePort interface {
	ByPair(ctx context.Context, in ByPairInput) ([]ByPairRow, error)
	Daily(ctx context.Context, in DailyInput) ([]DailyRow, error)
}
