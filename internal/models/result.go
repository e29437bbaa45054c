package models

import "time"

// Run statuses reported in the result metadata block.
const (
	StatusComplete = "complete"
	StatusPartial  = "partial_extraction_due_to_error"
)

// Metadata describes one scrape run.
type Metadata struct {
	SearchFrom     string `json:"search_from" bson:"search_from"`
	SearchTo       string `json:"search_to" bson:"search_to"`
	ExtractionDate string `json:"extraction_date" bson:"extraction_date"`
	TotalCases     int    `json:"total_cases" bson:"total_cases"`
	SourceURL      string `json:"source_url" bson:"source_url"`
	Status         string `json:"status" bson:"status"`
}

// Envelope is the top-level JSON document written after a run.
type Envelope struct {
	Metadata Metadata `json:"metadata"`
	Cases    []Case   `json:"Cases"`
}

// NewEnvelope builds the output document for the given window and records.
func NewEnvelope(cases []Case, from, to, sourceURL, status string) *Envelope {
	if cases == nil {
		cases = []Case{}
	}
	return &Envelope{
		Metadata: Metadata{
			SearchFrom:     from,
			SearchTo:       to,
			ExtractionDate: time.Now().Format("2006-01-02 15:04:05"),
			TotalCases:     len(cases),
			SourceURL:      sourceURL,
			Status:         status,
		},
		Cases: cases,
	}
}
