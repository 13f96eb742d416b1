// Command validate performs integrity checks on the conversion fixtures: the
// request lines, the JSON result fixture, and the domain package that
// produced it. It verifies coverage, reproducibility, and schema rules so a
// stale fixture is caught before downstream consumers load it.
//
// Usage:
//
//	go run ./cmd/validate \
//	  -requests data/mock/conversion_requests.txt \
//	  -results data/mock/conversion_results.json
package main

import (
	"bufio"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"math"
	"os"
	"strings"
	"time"

	"github.com/couchcryptid/unit-converter/internal/domain"
	"github.com/jonboulle/clockwork"
)

// fixtureTime must match cmd/genfixtures.
var fixtureTime = time.Date(2024, time.April, 27, 6, 0, 0, 0, time.UTC)

// phase tracks pass/fail for a validation phase.
type phase struct {
	name   string
	errors []string
}

func (p *phase) errorf(format string, args ...any) {
	p.errors = append(p.errors, fmt.Sprintf(format, args...))
}

func (p *phase) passed() bool { return len(p.errors) == 0 }

func main() {
	requests := flag.String("requests", "", "file with one conversion request per line")
	results := flag.String("results", "", "path to the JSON result fixture")
	flag.Parse()

	if *requests == "" || *results == "" {
		flag.Usage()
		os.Exit(1)
	}

	if code := run(*requests, *results); code != 0 {
		os.Exit(code)
	}
}

func run(requestsPath, resultsPath string) int {
	domain.SetClock(clockwork.NewFakeClockAt(fixtureTime))
	defer domain.SetClock(nil)

	fmt.Println("=== Conversion Fixture Validation ===")
	fmt.Println()

	lines, err := loadLines(requestsPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "FATAL: load requests: %v\n", err)
		return 1
	}

	events, err := loadEvents(resultsPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "FATAL: load results: %v\n", err)
		return 1
	}

	phases := []*phase{
		validateCoverage(lines, events),
		validateReproduction(events),
		validateSchema(events),
	}

	allPassed := true
	for _, p := range phases {
		status := "\033[32mPASS\033[0m"
		if !p.passed() {
			status = fmt.Sprintf("\033[31mFAIL (%d errors)\033[0m", len(p.errors))
			allPassed = false
		}
		fmt.Printf("  %-42s %s\n", p.name, status)
	}

	fmt.Println()
	fmt.Printf("Records: %d request lines, %d fixture events\n", len(lines), len(events))

	for _, p := range phases {
		if p.passed() {
			continue
		}
		fmt.Printf("\n--- %s ---\n", p.name)
		for i, e := range p.errors {
			fmt.Printf("  [%d] %s\n", i+1, e)
		}
	}

	if allPassed {
		fmt.Println("\nAll validations passed.")
		return 0
	}
	fmt.Println("\nValidation FAILED.")
	return 1
}

func loadLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var lines []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	return lines, scanner.Err()
}

func loadEvents(path string) ([]domain.ConversionEvent, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var events []domain.ConversionEvent
	if err := json.Unmarshal(data, &events); err != nil {
		return nil, err
	}
	return events, nil
}

// validateCoverage checks that every request line has exactly one fixture
// event, except lines whose number text is malformed, which must have none.
func validateCoverage(lines []string, events []domain.ConversionEvent) *phase {
	p := &phase{name: "Request coverage"}

	byInput := make(map[string]int, len(events))
	for _, e := range events {
		byInput[e.Input]++
	}

	seen := make(map[string]bool, len(lines))
	for i, line := range lines {
		if seen[line] {
			p.errorf("line %d: duplicate request %q", i+1, line)
			continue
		}
		seen[line] = true

		_, err := domain.Evaluate(line)
		switch {
		case errors.Is(err, domain.ErrNumberFormat):
			if byInput[line] != 0 {
				p.errorf("line %d: %q has a malformed number but a fixture event", i+1, line)
			}
		case err != nil:
			p.errorf("line %d: %q: unexpected error: %v", i+1, line, err)
		case byInput[line] != 1:
			p.errorf("line %d: %q has %d fixture events, want 1", i+1, line, byInput[line])
		}
	}

	for input := range byInput {
		if !seen[input] {
			p.errorf("fixture event for %q has no request line", input)
		}
	}
	return p
}

// validateReproduction re-evaluates every fixture input and compares the
// result with the stored event.
func validateReproduction(events []domain.ConversionEvent) *phase {
	p := &phase{name: "Fixture reproduction"}
	for i := range events {
		stored := &events[i]
		res, err := domain.Evaluate(stored.Input)
		if err != nil {
			p.errorf("[%d] %q: %v", i, stored.Input, err)
			continue
		}
		compareEvents(p, i, domain.NewConversionEvent(stored.Input, res), stored)
	}
	return p
}

func compareEvents(p *phase, i int, fresh domain.ConversionEvent, stored *domain.ConversionEvent) {
	pf := func(format string, args ...any) {
		p.errorf("[%d] %q: "+format, append([]any{i, stored.Input}, args...)...)
	}
	if fresh.ID != stored.ID {
		pf("id %s, want %s", stored.ID, fresh.ID)
	}
	if fresh.Outcome != stored.Outcome {
		pf("outcome %s, want %s", stored.Outcome, fresh.Outcome)
	}
	if fresh.Message != stored.Message {
		pf("message %q, want %q", stored.Message, fresh.Message)
	}
	if fresh.Category != stored.Category {
		pf("category %q, want %q", stored.Category, fresh.Category)
	}
	if fresh.SourceUnit != stored.SourceUnit || fresh.TargetUnit != stored.TargetUnit {
		pf("units %s->%s, want %s->%s", stored.SourceUnit, stored.TargetUnit, fresh.SourceUnit, fresh.TargetUnit)
	}
	if !ptrFloatEq(fresh.Amount, stored.Amount) {
		pf("amount %s, want %s", ptrFloat(stored.Amount), ptrFloat(fresh.Amount))
	}
	if !ptrFloatEq(fresh.Value, stored.Value) {
		pf("value %s, want %s", ptrFloat(stored.Value), ptrFloat(fresh.Value))
	}
}

var validOutcomes = map[domain.Outcome]bool{
	domain.OutcomeConverted:  true,
	domain.OutcomeParseError: true,
	domain.OutcomeImpossible: true,
	domain.OutcomeNegative:   true,
}

// validateSchema checks the invariants consumers rely on.
func validateSchema(events []domain.ConversionEvent) *phase {
	p := &phase{name: "Schema rules"}
	ids := make(map[string]bool, len(events))
	for i := range events {
		e := &events[i]
		if !strings.HasPrefix(e.ID, "conv-") {
			p.errorf("[%d] id %q lacks conv- prefix", i, e.ID)
		}
		if ids[e.ID] {
			p.errorf("[%d] duplicate id %s", i, e.ID)
		}
		ids[e.ID] = true

		if !validOutcomes[e.Outcome] {
			p.errorf("[%d] unknown outcome %q", i, e.Outcome)
		}
		if !strings.HasSuffix(e.Message, "\n") {
			p.errorf("[%d] message %q lacks trailing newline", i, e.Message)
		}
		if (e.Value != nil) != (e.Outcome == domain.OutcomeConverted) {
			p.errorf("[%d] value must be present exactly for converted outcomes", i)
		}
		if e.Outcome == domain.OutcomeParseError && (e.SourceUnit != "" || e.TargetUnit != "") {
			p.errorf("[%d] parse error carries units", i)
		}
		if !e.ProcessedAt.Equal(fixtureTime) {
			p.errorf("[%d] processed_at %s, want %s", i, e.ProcessedAt.Format(time.RFC3339), fixtureTime.Format(time.RFC3339))
		}
	}
	return p
}

func floatEq(a, b float64) bool {
	if a == b {
		return true
	}
	return math.Abs(a-b) <= 1e-9*math.Max(math.Abs(a), math.Abs(b))
}

func ptrFloatEq(a, b *float64) bool {
	if a == nil || b == nil {
		return a == b
	}
	return floatEq(*a, *b)
}

func ptrFloat(f *float64) string {
	if f == nil {
		return "<nil>"
	}
	return fmt.Sprintf("%g", *f)
}
