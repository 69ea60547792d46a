package core

import (
	"errors"
	"fmt"
)

// Kind classifies a rule violation so callers can branch on it.
type Kind int

const (
	KindNone Kind = iota
	KindOutOfBounds
	KindOverlap
	KindAdjacency
	KindRepeatAttack
	KindBoardExhausted
	KindInvalidShip
	KindInvalidOrientation
)

// String returns the stable code for the kind.
func (k Kind) String() string {
	switch k {
	case KindOutOfBounds:
		return "OUT_OF_BOUNDS"
	case KindOverlap:
		return "OVERLAP"
	case KindAdjacency:
		return "ADJACENCY_VIOLATION"
	case KindRepeatAttack:
		return "REPEAT_ATTACK"
	case KindBoardExhausted:
		return "BOARD_EXHAUSTED"
	case KindInvalidShip:
		return "INVALID_SHIP"
	case KindInvalidOrientation:
		return "INVALID_ORIENTATION"
	default:
		return "NONE"
	}
}

// RuleError reports a rejected placement or attack.
// Two RuleErrors match under errors.Is when their kinds are equal.
type RuleError struct {
	Kind    Kind
	Index   string // offending index, empty when not applicable
	Message string
}

// NewRuleError builds a RuleError.
func NewRuleError(kind Kind, index, message string) RuleError {
	return RuleError{Kind: kind, Index: index, Message: message}
}

func (e RuleError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Kind, e.Message)
}

// Is matches any RuleError of the same kind.
func (e RuleError) Is(target error) bool {
	t, ok := target.(RuleError)
	return ok && t.Kind == e.Kind
}

// Sentinels for errors.Is.
var (
	ErrOutOfBounds        = RuleError{Kind: KindOutOfBounds}
	ErrOverlap            = RuleError{Kind: KindOverlap}
	ErrAdjacency          = RuleError{Kind: KindAdjacency}
	ErrRepeatAttack       = RuleError{Kind: KindRepeatAttack}
	ErrBoardExhausted     = RuleError{Kind: KindBoardExhausted}
	ErrInvalidShip        = RuleError{Kind: KindInvalidShip}
	ErrInvalidOrientation = RuleError{Kind: KindInvalidOrientation}
)

// KindOf extracts the rule kind from err, or KindNone if err is not a RuleError.
func KindOf(err error) Kind {
	var re RuleError
	if errors.As(err, &re) {
		return re.Kind
	}
	return KindNone
}
