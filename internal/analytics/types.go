package analytics

import "quadratic-api/internal/quadratic"

// SummaryResponse is the JSON response for GET /analytics/summary. The
// descriptive statistics flatten into the top level.
type SummaryResponse struct {
	quadratic.Summary
	Relationships quadratic.RelationshipSet `json:"relationships"`
}

// TrendPoint is one day's solve count.
type TrendPoint struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}

// TrendsResponse is the JSON response for GET /analytics/trends. Trends holds
// one point per day in the window, zero-filled, oldest first.
type TrendsResponse struct {
	Days   int          `json:"days"`
	Total  int          `json:"total"`
	Trends []TrendPoint `json:"trends"`
}

// SamplesResponse is the JSON response for GET /analytics/samples.
type SamplesResponse struct {
	Count      int                  `json:"count"`
	Difficulty string               `json:"difficulty"`
	Samples    []quadratic.Equation `json:"samples"`
}
