package menu

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidArgument is returned when a required configuration value is
	// missing or out of range. Nothing is mutated when it is returned.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrTransitionInProgress rejects a request while the menu is opening or closing.
	ErrTransitionInProgress = errors.New("menu transition in progress")

	// ErrIllegalTransition is returned for a state change the state machine does not allow.
	ErrIllegalTransition = errors.New("illegal menu state transition")
)

// ArgumentError names the parameter that was rejected.
type ArgumentError struct {
	Param string // Parameter name (e.g. "corner", "items")
	Value any    // Offending value, nil when missing
}

func (e *ArgumentError) Error() string {
	if e.Value == nil {
		return fmt.Sprintf("cyclemenu: parameter %q can't be nil", e.Param)
	}
	return fmt.Sprintf("cyclemenu: parameter %q has invalid value %v", e.Param, e.Value)
}

func (e *ArgumentError) Unwrap() error {
	return ErrInvalidArgument
}

// IsInvalidArgument reports whether err rejects a configuration value.
func IsInvalidArgument(err error) bool {
	return errors.Is(err, ErrInvalidArgument)
}

// TransitionError records a rejected state change.
type TransitionError struct {
	From, To State
	Err      error
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("cyclemenu: %s -> %s: %v", e.From, e.To, e.Err)
}

func (e *TransitionError) Unwrap() error {
	return e.Err
}
