package quiz

import (
	"fmt"
	"math"
	"time"
)

// timestampLayout matches JavaScript's Date.toISOString output.
const timestampLayout = "2006-01-02T15:04:05.000Z"

// Result is one completed quiz as persisted in the history blob.
type Result struct {
	Timestamp  string `json:"date"`
	Score      int    `json:"score"`
	Total      int    `json:"total"`
	Percentage int    `json:"percentage"`
}

// NewResult builds a Result stamped at now.
func NewResult(now time.Time, score, total int) Result {
	return Result{
		Timestamp:  now.UTC().Format(timestampLayout),
		Score:      score,
		Total:      total,
		Percentage: Percentage(score, total),
	}
}

// Time parses the stored timestamp.
func (r Result) Time() (time.Time, error) {
	return time.Parse(time.RFC3339, r.Timestamp)
}

// ScoreText renders "score/total (pct%)".
func (r Result) ScoreText() string {
	return fmt.Sprintf("%d/%d (%d%%)", r.Score, r.Total, r.Percentage)
}

// Percentage returns round(100*score/total), or 0 for an empty quiz.
func Percentage(score, total int) int {
	if total <= 0 {
		return 0
	}
	return int(math.Round(float64(score) * 100 / float64(total)))
}

// Tier is the qualitative band a percentage falls in.
type Tier int

const (
	TierLowest Tier = iota // [0,40)
	TierLow                // [40,60)
	TierMedium             // [60,80)
	TierHigh               // [80,100)
	TierTop                // 100
)

// TierFor maps a percentage to its tier.
func TierFor(percentage int) Tier {
	switch {
	case percentage >= 100:
		return TierTop
	case percentage >= 80:
		return TierHigh
	case percentage >= 60:
		return TierMedium
	case percentage >= 40:
		return TierLow
	default:
		return TierLowest
	}
}

// Message returns the fixed result message for the tier.
func (t Tier) Message() string {
	switch t {
	case TierTop:
		return "🏆 Doskonale! Jesteś ekspertem bezpieczeństwa w internecie!"
	case TierHigh:
		return "🌟 Świetnie! Masz bardzo dobrą wiedzę o bezpieczeństwie!"
	case TierMedium:
		return "👍 Dobrze! Ale jest jeszcze miejsce na poprawę."
	case TierLow:
		return "📚 Warto pogłębić wiedzę o bezpieczeństwie w internecie."
	default:
		return "⚠️ Koniecznie przeczytaj porady na naszej stronie!"
	}
}
