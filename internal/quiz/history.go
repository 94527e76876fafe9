package quiz

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"

	"github.com/abhisek/dbi/internal/store"
)

const (
	// ResultsKey is the storage key holding the JSON history array.
	ResultsKey = "dbi-quiz-results"

	// MaxHistory bounds the stored history; the oldest entries go first.
	MaxHistory = 10
)

const historySchemaURL = "schema://dbi-quiz-results.json"

var historySchemaDef = map[string]any{
	"type": "array",
	"items": map[string]any{
		"type":     "object",
		"required": []any{"score", "total", "percentage"},
		"properties": map[string]any{
			"date":       map[string]any{"type": "string"},
			"score":      map[string]any{"type": "integer", "minimum": 0},
			"total":      map[string]any{"type": "integer", "minimum": 0},
			"percentage": map[string]any{"type": "integer", "minimum": 0, "maximum": 100},
		},
	},
}

// errMalformedHistory marks a stored blob that is not valid history JSON.
var errMalformedHistory = errors.New("malformed history")

var (
	historySchemaOnce sync.Once
	historySchema     *jsonschema.Schema
	historySchemaErr  error
)

func compiledHistorySchema() (*jsonschema.Schema, error) {
	historySchemaOnce.Do(func() {
		// Round-trip through JSON so the compiler sees plain decoded values.
		raw, err := json.Marshal(historySchemaDef)
		if err != nil {
			historySchemaErr = fmt.Errorf("marshal schema: %w", err)
			return
		}
		var def any
		if err := json.Unmarshal(raw, &def); err != nil {
			historySchemaErr = fmt.Errorf("parse schema: %w", err)
			return
		}

		c := jsonschema.NewCompiler()
		if err := c.AddResource(historySchemaURL, def); err != nil {
			historySchemaErr = fmt.Errorf("add resource: %w", err)
			return
		}
		historySchema, historySchemaErr = c.Compile(historySchemaURL)
	})
	return historySchema, historySchemaErr
}

// History is the bounded list of completed quizzes kept in per-origin storage.
type History struct {
	kv store.KV
}

// NewHistory returns a History backed by kv.
func NewHistory(kv store.KV) *History {
	return &History{kv: kv}
}

// List parses the stored history fresh on every call. A missing, unreadable
// or malformed blob yields an empty list.
func (h *History) List(ctx context.Context) []Result {
	results, err := h.load(ctx)
	if err != nil {
		log.Printf("warning: quiz history unreadable, treating as empty: %v", err)
		return []Result{}
	}
	return results
}

// Best returns the entry with the highest percentage; the earliest wins ties.
func (h *History) Best(ctx context.Context) (Result, bool) {
	return BestOf(h.List(ctx))
}

// BestOf picks the best result from results.
func BestOf(results []Result) (Result, bool) {
	if len(results) == 0 {
		return Result{}, false
	}
	best := results[0]
	for _, r := range results[1:] {
		if r.Percentage > best.Percentage {
			best = r
		}
	}
	return best, true
}

// Append adds r to the end of the history, evicts the oldest entries beyond
// MaxHistory and overwrites the stored collection.
// A read failure aborts without writing; only a malformed blob is replaced.
func (h *History) Append(ctx context.Context, r Result) error {
	results, err := h.load(ctx)
	if errors.Is(err, errMalformedHistory) {
		log.Printf("warning: replacing malformed quiz history: %v", err)
		results = []Result{}
	} else if err != nil {
		return err
	}
	results = append(results, r)
	if len(results) > MaxHistory {
		results = results[len(results)-MaxHistory:]
	}

	raw, err := json.Marshal(results)
	if err != nil {
		return fmt.Errorf("encode history: %w", err)
	}
	if err := h.kv.Set(ctx, ResultsKey, string(raw)); err != nil {
		return fmt.Errorf("save history: %w", err)
	}
	return nil
}

// Clear removes the stored history.
func (h *History) Clear(ctx context.Context) error {
	return h.kv.Delete(ctx, ResultsKey)
}

func (h *History) load(ctx context.Context) ([]Result, error) {
	raw, err := h.kv.Get(ctx, ResultsKey)
	if errors.Is(err, store.ErrNotFound) {
		return []Result{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read history: %w", err)
	}
	results, err := decodeHistory([]byte(raw))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errMalformedHistory, err)
	}
	return results, nil
}

// decodeHistory validates raw against the history schema and decodes it.
func decodeHistory(raw []byte) ([]Result, error) {
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return nil, fmt.Errorf("invalid JSON: %w", err)
	}

	sch, err := compiledHistorySchema()
	if err != nil {
		return nil, fmt.Errorf("compile schema: %w", err)
	}
	if err := sch.Validate(parsed); err != nil {
		return nil, fmt.Errorf("schema validation failed: %w", err)
	}

	var results []Result
	if err := json.Unmarshal(raw, &results); err != nil {
		return nil, fmt.Errorf("decode history: %w", err)
	}
	if results == nil {
		results = []Result{}
	}
	return results, nil
}
