package quiz

import (
	"errors"
	"fmt"
)

// Contract violations. These indicate caller bugs, not runtime failures, and
// are surfaced loudly rather than silently defaulted.
var (
	ErrSessionComplete  = errors.New("quiz session already complete")
	ErrNotComplete      = errors.New("quiz session not yet complete")
	ErrNoAnswerToUndo   = errors.New("no answered question to go back from")
	ErrQuestionMismatch = errors.New("answer does not target the current question")
)

// Session holds the state of one quiz run: the accumulated score vector, the
// answer history, and the current question pointer. Sessions are
// single-threaded UI state; they are not safe for concurrent use.
type Session struct {
	content *Content
	scores  map[Outcome]int
	history []int
	current int
	done    bool
}

// NewSession creates a session at question 0 with an all-zero score vector.
func NewSession(content *Content) (*Session, error) {
	if err := content.Validate(); err != nil {
		return nil, fmt.Errorf("invalid quiz content: %w", err)
	}

	s := &Session{content: content}
	s.Restart()
	return s, nil
}

// Answer records the chosen option for the current question, adds its score
// vector to the running total, and advances to the next question. Answering
// the final question transitions the session to the result-ready state.
func (s *Session) Answer(questionIndex, optionIndex int) error {
	if s.done {
		return ErrSessionComplete
	}
	if questionIndex != s.current {
		return fmt.Errorf("%w: got question %d, current is %d", ErrQuestionMismatch, questionIndex, s.current)
	}

	question := s.content.Questions[s.current]
	if optionIndex < 0 || optionIndex >= len(question.Options) {
		return fmt.Errorf("option index %d out of range for question %d", optionIndex, s.current)
	}

	for code, points := range question.Options[optionIndex].Scores {
		s.scores[code] += points
	}
	s.history = append(s.history, optionIndex)

	if s.current == len(s.content.Questions)-1 {
		s.done = true
	} else {
		s.current++
	}

	return nil
}

// GoBack undoes the most recent answer: the recorded option's score vector
// is subtracted element-wise (the exact algebraic inverse of Answer), the
// history entry is removed, and the question pointer moves back one.
func (s *Session) GoBack() error {
	if s.done {
		return ErrSessionComplete
	}
	if len(s.history) == 0 {
		return ErrNoAnswerToUndo
	}

	previous := s.current - 1
	optionIndex := s.history[len(s.history)-1]
	for code, points := range s.content.Questions[previous].Options[optionIndex].Scores {
		s.scores[code] -= points
	}

	s.history = s.history[:len(s.history)-1]
	s.current = previous

	return nil
}

// Resolve returns the outcome with the highest accumulated score. Ties
// resolve to the outcome declared first in the content's canonical order.
// Valid only once every question has been answered.
func (s *Session) Resolve() (OutcomeProfile, error) {
	if !s.done {
		return OutcomeProfile{}, ErrNotComplete
	}

	winner := s.content.Outcomes[0]
	best := s.scores[winner.Code]
	for _, o := range s.content.Outcomes[1:] {
		if s.scores[o.Code] > best {
			winner = o
			best = s.scores[o.Code]
		}
	}

	return winner, nil
}

// Restart resets the score vector to all-zero, clears the answer history,
// and returns to question 0.
func (s *Session) Restart() {
	s.scores = make(map[Outcome]int, len(s.content.Outcomes))
	for _, o := range s.content.Outcomes {
		s.scores[o.Code] = 0
	}
	s.history = nil
	s.current = 0
	s.done = false
}

// CurrentQuestion returns the index of the question awaiting an answer.
func (s *Session) CurrentQuestion() int {
	return s.current
}

// Done reports whether every question has been answered.
func (s *Session) Done() bool {
	return s.done
}

// Scores returns a copy of the accumulated score vector.
func (s *Session) Scores() map[Outcome]int {
	out := make(map[Outcome]int, len(s.scores))
	for code, points := range s.scores {
		out[code] = points
	}
	return out
}
