package domain

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// RequestLine extracts the request text from a raw message, dropping the
// line terminator a producer may have left on it.
func RequestLine(raw RawRequest) string {
	return strings.TrimRight(string(raw.Value), "\r\n")
}

// NewConversionEvent builds the event describing how input was answered.
// Amount is reported for negative and converted outcomes, Value only for
// converted ones.
func NewConversionEvent(input string, res Result) ConversionEvent {
	event := ConversionEvent{
		ID:          generateID(input),
		Input:       input,
		Outcome:     res.Outcome,
		Message:     res.Message(),
		ProcessedAt: clock.Now(),
	}

	if res.Source.Valid() {
		event.SourceUnit = res.Source.Symbol()
		event.Category = res.Source.Category().String()
	}
	if res.Target.Valid() {
		event.TargetUnit = res.Target.Symbol()
		if event.Category == "" {
			event.Category = res.Target.Category().String()
		}
	}

	switch res.Outcome {
	case OutcomeConverted:
		amount, value := res.Amount, res.Value
		event.Amount = &amount
		event.Value = &value
	case OutcomeNegative:
		amount := res.Amount
		event.Amount = &amount
	}

	return event
}

// generateID produces a deterministic ID from the request line so replays
// of the request topic map onto the same result keys.
func generateID(input string) string {
	hash := sha256.Sum256([]byte(input))
	return "conv-" + hex.EncodeToString(hash[:8])
}
