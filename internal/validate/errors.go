// errors.go defines sentinel errors and the rejection type for validation
// failures.
//
// Separated to centralise error definitions. Sentinels are the categories
// callers branch on with errors.Is(); RejectionError carries the detail a
// user needs to fix their input.

package validate

import (
	"errors"
	"fmt"
)

var (
	ErrMalformed        = errors.New("malformed name")
	ErrTooLong          = errors.New("name too long")
	ErrInvalidCharacter = errors.New("invalid character")
	ErrInvalidName      = errors.New("invalid name")
)

// Rule identifies which check rejected an input.
type Rule string

// Rules in the order they are evaluated.
const (
	RuleLength     Rule = "length"
	RuleEmpty      Rule = "empty"
	RuleTerminator Rule = "terminator"
	RuleEncoding   Rule = "encoding"
	RuleTrailing   Rule = "trailing"
	RuleCharacters Rule = "characters"
	RuleSeparator  Rule = "separator"
	RuleReserved   Rule = "reserved"
)

// RejectionError reports a failed portability check.
type RejectionError struct {
	Rule   Rule   // which check fired
	Value  string // the component or path that was rejected
	Reason string // human-readable, printed verbatim by the CLI

	category error
}

// Error returns the reason text.
func (e *RejectionError) Error() string {
	return e.Reason
}

// Unwrap returns the category sentinel for errors.Is() compatibility.
func (e *RejectionError) Unwrap() error {
	return e.category
}

func reject(rule Rule, category error, value, format string, args ...any) *RejectionError {
	return &RejectionError{
		Rule:     rule,
		Value:    value,
		Reason:   fmt.Sprintf(format, args...),
		category: category,
	}
}

// RuleOf returns the rule that produced err, or "" if err is not a rejection.
func RuleOf(err error) Rule {
	var re *RejectionError
	if errors.As(err, &re) {
		return re.Rule
	}
	return ""
}
