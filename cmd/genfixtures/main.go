// Command genfixtures reads request lines and generates the conversion result
// fixture used by the pipeline tests and downstream consumers. It evaluates
// every line with the real domain package so the fixture matches pipeline
// behavior.
//
// Usage:
//
//	go run ./cmd/genfixtures \
//	  -requests data/mock/conversion_requests.txt \
//	  -out data/mock/conversion_results.json
package main

import (
	"bufio"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/couchcryptid/unit-converter/internal/domain"
	"github.com/jonboulle/clockwork"
)

// fixtureTime is the ProcessedAt stamped on every generated event.
var fixtureTime = time.Date(2024, time.April, 27, 6, 0, 0, 0, time.UTC)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	requests := flag.String("requests", "", "file with one conversion request per line")
	out := flag.String("out", "", "output path for the JSON result fixture")
	flag.Parse()

	if *requests == "" || *out == "" {
		flag.Usage()
		return fmt.Errorf("missing required flags: -requests, -out")
	}

	// Set a fixed clock for reproducible ProcessedAt timestamps.
	domain.SetClock(clockwork.NewFakeClockAt(fixtureTime))
	defer domain.SetClock(nil)

	lines, err := readLines(*requests)
	if err != nil {
		return fmt.Errorf("reading %s: %w", *requests, err)
	}

	events, skipped, err := buildEvents(lines)
	if err != nil {
		return err
	}
	log.Printf("evaluated %d requests, skipped %d", len(lines), skipped)

	if err := writeJSON(*out, events); err != nil {
		return fmt.Errorf("writing fixture: %w", err)
	}
	log.Printf("wrote fixture: %s", *out)

	printStats(events)
	return nil
}

func readLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open: %w", err)
	}
	defer f.Close()

	var lines []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	return lines, scanner.Err()
}

// buildEvents evaluates each line. Lines with a malformed number produce no
// event, mirroring the pipeline which skips them.
func buildEvents(lines []string) ([]domain.ConversionEvent, int, error) {
	events := make([]domain.ConversionEvent, 0, len(lines))
	var skipped int
	for i, line := range lines {
		res, err := domain.Evaluate(line)
		if err != nil {
			if errors.Is(err, domain.ErrNumberFormat) {
				log.Printf("line %d: skipping %q: %v", i+1, line, err)
				skipped++
				continue
			}
			return nil, 0, fmt.Errorf("line %d: %w", i+1, err)
		}
		events = append(events, domain.NewConversionEvent(line, res))
	}
	return events, skipped, nil
}

func writeJSON(path string, v any) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	data = append(data, '\n')
	return os.WriteFile(path, data, 0o600)
}

type outcomeCount struct {
	outcome domain.Outcome
	count   int
}

func printStats(events []domain.ConversionEvent) {
	outcomes := map[domain.Outcome]int{}
	categories := map[string]int{}
	for i := range events {
		outcomes[events[i].Outcome]++
		if events[i].Category != "" {
			categories[events[i].Category]++
		}
	}

	oc := make([]outcomeCount, 0, len(outcomes))
	for o, c := range outcomes {
		oc = append(oc, outcomeCount{o, c})
	}
	sort.Slice(oc, func(i, j int) bool { return oc[i].count > oc[j].count })

	fmt.Println("\n=== Stats for updating test assertions ===")
	fmt.Printf("Total: %d\n", len(events))
	fmt.Print("By outcome:")
	for _, o := range oc {
		fmt.Printf(" %s=%d", o.outcome, o.count)
	}
	fmt.Println()
	fmt.Printf("By category: length=%d, weight=%d, temperature=%d\n",
		categories["length"], categories["weight"], categories["temperature"])
}
