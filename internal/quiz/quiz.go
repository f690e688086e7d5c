// Package quiz implements the preference-matching quiz: a fixed sequence of
// multiple-choice questions whose options carry per-outcome score
// contributions, resolved to a single recommended product.
package quiz

import (
	"context"
	"errors"
	"fmt"
)

// Outcome is the short code identifying one product the quiz can recommend.
type Outcome string

// OutcomeProfile describes one quiz outcome and the product it maps to.
type OutcomeProfile struct {
	Code        Outcome `json:"code"`
	Slug        string  `json:"slug"`
	Name        string  `json:"name"`
	Tagline     string  `json:"tagline"`
	Description string  `json:"description"`
	Color       string  `json:"color"`
	ImageURL    string  `json:"imageUrl"`
}

// Option is one answer choice with its score contributions. Outcomes absent
// from Scores contribute zero.
type Option struct {
	Label  string          `json:"label"`
	Scores map[Outcome]int `json:"scores"`
}

// Question is one quiz question with its ordered answer options.
type Question struct {
	Prompt  string   `json:"prompt"`
	Options []Option `json:"options"`
}

// Content is the full quiz definition. The declaration order of Outcomes is
// the canonical tie-break order: when two outcomes finish with equal top
// scores, the one declared first wins.
type Content struct {
	Outcomes  []OutcomeProfile `json:"outcomes"`
	Questions []Question       `json:"questions"`
}

// Loader defines the interface for loading quiz content.
type Loader interface {
	// Load reads a quiz content definition from the given source.
	Load(ctx context.Context, source string) (*Content, error)
}

// Validate checks that the content is internally consistent: at least one
// outcome and question, unique outcome codes, and every option score keyed
// by a declared outcome.
func (c *Content) Validate() error {
	if len(c.Outcomes) == 0 {
		return errors.New("quiz content must declare at least one outcome")
	}
	if len(c.Questions) == 0 {
		return errors.New("quiz content must declare at least one question")
	}

	known := make(map[Outcome]bool, len(c.Outcomes))
	for _, o := range c.Outcomes {
		if o.Code == "" {
			return errors.New("outcome code must not be empty")
		}
		if known[o.Code] {
			return fmt.Errorf("duplicate outcome code: %s", o.Code)
		}
		known[o.Code] = true
	}

	for qi, q := range c.Questions {
		if len(q.Options) == 0 {
			return fmt.Errorf("question %d has no options", qi)
		}
		for oi, opt := range q.Options {
			for code := range opt.Scores {
				if !known[code] {
					return fmt.Errorf("question %d option %d scores unknown outcome: %s", qi, oi, code)
				}
			}
		}
	}

	return nil
}

// Profile returns the outcome profile for a code, or false when the code is
// not part of this content.
func (c *Content) Profile(code Outcome) (OutcomeProfile, bool) {
	for _, o := range c.Outcomes {
		if o.Code == code {
			return o, true
		}
	}
	return OutcomeProfile{}, false
}
