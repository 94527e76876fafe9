// Package quiz runs the internet-safety quiz: a linear pass through a fixed
// question bank with per-answer feedback, a scored result and a bounded
// history of past results.
package quiz

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/google/uuid"
)

var (
	// ErrInvalidTransition is returned when an operation is not valid in the
	// current phase. Session state is left untouched.
	ErrInvalidTransition = errors.New("quiz: invalid transition")

	// ErrAnswerOutOfRange is returned for an answer index outside the options.
	ErrAnswerOutOfRange = errors.New("quiz: answer index out of range")
)

// Advance button labels.
const (
	NextLabel    = "Następne pytanie"
	ResultsLabel = "Zobacz wynik"
)

// Feedback headings.
const (
	CorrectHeading   = "✅ Poprawna odpowiedź!"
	IncorrectHeading = "❌ Niepoprawna odpowiedź!"
)

// Phase is the quiz state machine position.
type Phase int

const (
	PhaseNotStarted Phase = iota
	PhaseInQuestion
	PhaseFeedback
	PhaseResults
)

func (p Phase) String() string {
	switch p {
	case PhaseNotStarted:
		return "not-started"
	case PhaseInQuestion:
		return "in-question"
	case PhaseFeedback:
		return "feedback"
	case PhaseResults:
		return "results"
	default:
		return "unknown"
	}
}

// Session is the in-memory progress of one run through the bank.
type Session struct {
	ID      string
	Index   int
	Score   int
	Started bool
	Phase   Phase
}

// Mark is how an answer option is shown after submission.
type Mark int

const (
	MarkNone Mark = iota
	MarkCorrect
	MarkWrong
)

// Prompt is what the view shows for a question awaiting an answer.
type Prompt struct {
	Index   int
	Total   int
	Text    string
	Answers []string
}

// Feedback is what the view shows after an answer is selected. All options
// are locked once feedback is shown.
type Feedback struct {
	Prompt
	Selected     int
	Correct      int
	IsCorrect    bool
	Heading      string
	Explanation  string
	Marks        []Mark
	AdvanceLabel string
}

// Outcome is what the view shows on the results screen.
type Outcome struct {
	Result
	Tier    Tier
	Message string
}

// View receives every rendering the engine produces.
type View interface {
	RenderQuestion(p Prompt)
	RenderFeedback(f Feedback)
	RenderResults(o Outcome)
}

// Engine owns the quiz session and drives its View.
type Engine struct {
	questions []Question
	session   Session
	view      View
	history   *History
	now       func() time.Time
}

// Option configures an Engine.
type Option func(*Engine)

// WithClock overrides the clock used to stamp results.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) { e.now = now }
}

// NewEngine creates an engine over questions. history may be nil, in which
// case results are not persisted.
func NewEngine(questions []Question, view View, history *History, opts ...Option) *Engine {
	e := &Engine{
		questions: questions,
		view:      view,
		history:   history,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Session returns a copy of the current session.
func (e *Engine) Session() Session {
	return e.session
}

// Phase returns the current phase.
func (e *Engine) Phase() Phase {
	return e.session.Phase
}

// Len returns the number of questions.
func (e *Engine) Len() int {
	return len(e.questions)
}

// Current returns the question at the session index.
func (e *Engine) Current() (Question, bool) {
	if e.session.Phase != PhaseInQuestion && e.session.Phase != PhaseFeedback {
		return Question{}, false
	}
	return e.questions[e.session.Index], true
}

// Start resets the session and shows the first question.
func (e *Engine) Start() error {
	if len(e.questions) == 0 {
		return ErrInvalidTransition
	}
	e.session = Session{
		ID:      uuid.NewString(),
		Index:   0,
		Score:   0,
		Started: true,
		Phase:   PhaseInQuestion,
	}
	e.renderQuestion()
	return nil
}

// Restart is Start again.
func (e *Engine) Restart() error {
	return e.Start()
}

// SelectAnswer scores the answer for the current question and shows feedback.
func (e *Engine) SelectAnswer(selected int) error {
	if e.session.Phase != PhaseInQuestion {
		return ErrInvalidTransition
	}
	q := e.questions[e.session.Index]
	if selected < 0 || selected >= len(q.Answers) {
		return ErrAnswerOutOfRange
	}

	isCorrect := selected == q.Correct
	if isCorrect {
		e.session.Score++
	}
	e.session.Phase = PhaseFeedback

	marks := make([]Mark, len(q.Answers))
	marks[q.Correct] = MarkCorrect
	if !isCorrect {
		marks[selected] = MarkWrong
	}

	heading := IncorrectHeading
	if isCorrect {
		heading = CorrectHeading
	}

	label := NextLabel
	if e.session.Index == len(e.questions)-1 {
		label = ResultsLabel
	}

	if e.view != nil {
		e.view.RenderFeedback(Feedback{
			Prompt:       e.prompt(),
			Selected:     selected,
			Correct:      q.Correct,
			IsCorrect:    isCorrect,
			Heading:      heading,
			Explanation:  q.Explanation,
			Marks:        marks,
			AdvanceLabel: label,
		})
	}
	return nil
}

// Advance moves past the feedback to the next question, or to the results
// once the last question has been answered. Entering results persists them.
func (e *Engine) Advance(ctx context.Context) error {
	if e.session.Phase != PhaseFeedback {
		return ErrInvalidTransition
	}

	if e.session.Index+1 < len(e.questions) {
		e.session.Index++
		e.session.Phase = PhaseInQuestion
		e.renderQuestion()
		return nil
	}

	e.session.Phase = PhaseResults
	result := NewResult(e.now(), e.session.Score, len(e.questions))

	if e.history != nil {
		if err := e.history.Append(ctx, result); err != nil {
			log.Printf("warning: quiz %s: result not saved: %v", e.session.ID, err)
		}
	}

	tier := TierFor(result.Percentage)
	if e.view != nil {
		e.view.RenderResults(Outcome{Result: result, Tier: tier, Message: tier.Message()})
	}
	return nil
}

func (e *Engine) prompt() Prompt {
	q := e.questions[e.session.Index]
	return Prompt{
		Index:   e.session.Index,
		Total:   len(e.questions),
		Text:    q.Text,
		Answers: q.Answers,
	}
}

func (e *Engine) renderQuestion() {
	if e.view != nil {
		e.view.RenderQuestion(e.prompt())
	}
}
