package model

import "time"

// GenerationLog is one row of the usage ledger: a single dispatch, its token
// accounting, and its derived cost in micro-dollars.
type GenerationLog struct {
	ID               string    `db:"id" json:"id"`
	ModelID          string    `db:"model_id" json:"model_id"`
	ProviderID       string    `db:"provider_id" json:"provider_id"`
	Mode             string    `db:"mode" json:"mode"`
	PromptTokens     int       `db:"prompt_tokens" json:"prompt_tokens"`
	CompletionTokens int       `db:"completion_tokens" json:"completion_tokens"`
	TotalTokens      int       `db:"total_tokens" json:"total_tokens"`
	CostMicros       int64     `db:"cost_micros" json:"cost_micros"`
	LatencyMS        int64     `db:"latency_ms" json:"latency_ms"`
	Status           string    `db:"status" json:"status"`
	ErrorKind        string    `db:"error_kind" json:"error_kind,omitempty"`
	CreatedAt        time.Time `db:"created_at" json:"created_at"`
}

// DailyStats is an aggregate over the ledger, grouped by calendar day.
type DailyStats struct {
	Date            string  `db:"date" json:"date"`
	TotalRequests   int64   `db:"total_requests" json:"total_requests"`
	TotalTokens     int64   `db:"total_tokens" json:"total_tokens"`
	TotalCostMicros int64   `db:"total_cost_micros" json:"total_cost_micros"`
	AvgLatencyMS    float64 `db:"avg_latency" json:"avg_latency_ms"`
}
