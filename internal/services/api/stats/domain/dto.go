// Package domain holds DTOs for stats http and service contracts
package domain

// DefaultDays is the window used when a query leaves Days unset
const DefaultDays = 7

// Window bounds a stats query to the trailing number of days
type Window struct {
	Days int `json:"days,omitempty" validate:"omitempty,min=1,max=90" example:"7"`
}

// ByPairInput buckets conversions by source and target language
type ByPairInput struct {
	Window
	// optional filter on the source tag
	From string `json:"from,omitempty" validate:"omitempty,langtag" example:"json"`
}

// ByPairRow is one source and target pair in the window
type ByPairRow struct {
	From      string  `json:"from" example:"json"`
	To        string  `json:"to" example:"yaml"`
	Completed uint64  `json:"completed" example:"42"`
	Failed    uint64  `json:"failed" example:"3"`
	AvgMs     float64 `json:"avg_ms" example:"1.5"`
}

// DailyInput buckets events by day and kind
type DailyInput struct {
	Window
	// optional filter on the event kind
	Kind string `json:"kind,omitempty" validate:"omitempty,oneof=conversion_completed conversion_failed language_detected error_occurred history_cleared" example:"conversion_completed"`
}

// DailyRow counts one event kind on one day
type DailyRow struct {
	Day   string `json:"day" example:"2026-10-01"`
	Kind  string `json:"kind" example:"conversion_completed"`
	Count uint64 `json:"count" example:"120"`
}
