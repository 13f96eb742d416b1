package domain

import (
	"context"
	"time"
)

// RawRequest represents an unprocessed message from the request topic.
// Value holds one request line.
type RawRequest struct {
	Key       []byte
	Value     []byte
	Headers   map[string]string
	Topic     string
	Partition int
	Offset    int64
	Timestamp time.Time
	Commit    func(ctx context.Context) error
}

// ConversionEvent is the serialized answer to one request, destined for the
// result topic and fixture files.
type ConversionEvent struct {
	ID       string  `json:"id"`
	Input    string  `json:"input"`
	Outcome  Outcome `json:"outcome"`
	Message  string  `json:"message"`
	Category string  `json:"category,omitempty"`

	// Unit symbols; empty when the side did not resolve.
	SourceUnit string `json:"source_unit,omitempty"`
	TargetUnit string `json:"target_unit,omitempty"`

	Amount *float64 `json:"amount,omitempty"`
	Value  *float64 `json:"value,omitempty"`

	ProcessedAt time.Time `json:"processed_at"`
}
