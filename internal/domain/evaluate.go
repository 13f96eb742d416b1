package domain

import "fmt"

// Outcome classifies how a request line was answered.
type Outcome string

const (
	OutcomeConverted  Outcome = "converted"
	OutcomeParseError Outcome = "parse_error"
	OutcomeImpossible Outcome = "impossible"
	OutcomeNegative   Outcome = "negative"
)

// unknownUnitPlaceholder stands in for an unresolved unit in responses.
const unknownUnitPlaceholder = "???"

// Result is the evaluation of one request line. Source and Target are zero
// when they did not resolve; Amount and Value are set only once the number
// has been parsed.
type Result struct {
	Outcome Outcome
	Source  Unit
	Target  Unit
	Amount  float64
	Value   float64
}

// Message renders the response line, newline included.
func (r Result) Message() string {
	switch r.Outcome {
	case OutcomeParseError:
		return "Parse error\n"
	case OutcomeImpossible:
		return fmt.Sprintf("Conversion from %s to %s is impossible\n", pluralOrPlaceholder(r.Source), pluralOrPlaceholder(r.Target))
	case OutcomeNegative:
		return r.Source.Category().Title() + " shouldn't be negative\n"
	default:
		return r.Source.Render(r.Amount) + " is " + r.Target.Render(r.Value) + "\n"
	}
}

func pluralOrPlaceholder(u Unit) string {
	if !u.Valid() {
		return unknownUnitPlaceholder
	}
	return u.Plural()
}

// Evaluate parses, validates and converts a single request line.
//
// Grammar mismatches, unknown units, category mismatches and forbidden
// negative amounts are ordinary outcomes. The only error is a number that
// matched the grammar but is not a valid float; it wraps [ErrNumberFormat].
func Evaluate(input string) (Result, error) {
	req, err := ParseRequest(input)
	if err != nil {
		return Result{Outcome: OutcomeParseError}, nil
	}

	// Both lookups run even if the first fails so the response can name
	// whichever side did resolve.
	source, _ := Resolve(req.Source)
	target, _ := Resolve(req.Target)
	if !source.CanConvert(target) {
		return Result{Outcome: OutcomeImpossible, Source: source, Target: target}, nil
	}

	amount, err := req.Amount()
	if err != nil {
		return Result{}, err
	}

	if source.OnlyPositive() && amount < 0 {
		return Result{Outcome: OutcomeNegative, Source: source, Target: target, Amount: amount}, nil
	}

	return Result{
		Outcome: OutcomeConverted,
		Source:  source,
		Target:  target,
		Amount:  amount,
		Value:   Convert(source, target, amount),
	}, nil
}

// Handle evaluates input and returns the response line.
func Handle(input string) (string, error) {
	res, err := Evaluate(input)
	if err != nil {
		return "", err
	}
	return res.Message(), nil
}
