// Package errors provides sentinel errors and error types for the chess rules engine.
// It defines common error conditions and structured error types that preserve
// context while allowing error inspection with errors.Is() and errors.As().
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common failure conditions.
// Use these with errors.Is() to check for specific error types.
var (
	// ErrIllegalMove indicates a destination outside the piece's legal set.
	ErrIllegalMove = errors.New("illegal move")

	// ErrOutOfBounds indicates a coordinate outside 0-7. Reaching the core
	// with one is a programming error.
	ErrOutOfBounds = errors.New("coordinate out of bounds")

	// ErrInvalidPromotionChoice indicates a promotion kind other than
	// queen, rook, bishop or knight.
	ErrInvalidPromotionChoice = errors.New("invalid promotion choice")

	// ErrPromotionPending indicates a move request while a promotion choice
	// is still awaited.
	ErrPromotionPending = errors.New("promotion choice pending")

	// ErrNoPromotionPending indicates a promotion choice with no pawn waiting.
	ErrNoPromotionPending = errors.New("no promotion pending")

	// ErrGameOver indicates a move request after checkmate or a draw.
	ErrGameOver = errors.New("game is over")

	// ErrInvalidFEN indicates a malformed FEN string.
	ErrInvalidFEN = errors.New("invalid FEN string")

	// ErrInvalidSquare indicates a square name that cannot be parsed.
	ErrInvalidSquare = errors.New("invalid square")

	// ErrInvalidConfig indicates invalid configuration values.
	ErrInvalidConfig = errors.New("invalid configuration")
)

// MoveError wraps errors with move context: the squares involved and the
// turn on which the move was attempted. It implements the error interface
// and supports unwrapping via errors.Is() and errors.As().
type MoveError struct {
	Err   error  // The underlying error
	From  string // Source square name (if known)
	To    string // Destination square name (if known)
	Turn  int    // Turn counter when the error occurred (0 if not applicable)
	Piece string // Kind of the moving piece (if known)
}

// Error returns a formatted error message including all available context.
func (e *MoveError) Error() string {
	var parts []string

	if e.Turn > 0 {
		parts = append(parts, fmt.Sprintf("turn %d", e.Turn))
	}

	if e.Piece != "" {
		parts = append(parts, e.Piece)
	}

	switch {
	case e.From != "" && e.To != "":
		parts = append(parts, fmt.Sprintf("%s-%s", e.From, e.To))
	case e.From != "":
		parts = append(parts, fmt.Sprintf("from %s", e.From))
	case e.To != "":
		parts = append(parts, fmt.Sprintf("to %s", e.To))
	}

	context := strings.Join(parts, ", ")

	if e.Err != nil {
		if context == "" {
			return e.Err.Error()
		}
		return fmt.Sprintf("%s: %v", context, e.Err)
	}
	if context == "" {
		return "move error"
	}
	return context
}

// Unwrap returns the underlying error, enabling errors.Is() and errors.As()
// to work through the MoveError wrapper.
func (e *MoveError) Unwrap() error {
	return e.Err
}

// ParseError represents a FEN or square parsing error with position context.
type ParseError struct {
	Err      error  // The underlying error
	Input    string // The text being parsed
	Field    string // FEN field or token name
	Column   int    // Column number (1-based, 0 if unknown)
	Expected string // What was expected
	Got      string // What was found instead
}

// Error returns a formatted error message with location and context.
func (e *ParseError) Error() string {
	var parts []string

	if e.Field != "" {
		loc := e.Field
		if e.Column > 0 {
			loc += fmt.Sprintf(":%d", e.Column)
		}
		parts = append(parts, loc)
	}

	if e.Expected != "" && e.Got != "" {
		parts = append(parts, fmt.Sprintf("expected %s, got %s", e.Expected, e.Got))
	} else if e.Expected != "" {
		parts = append(parts, fmt.Sprintf("expected %s", e.Expected))
	} else if e.Got != "" {
		parts = append(parts, fmt.Sprintf("unexpected %s", e.Got))
	}

	if e.Err != nil {
		if len(parts) > 0 {
			return fmt.Sprintf("%s: %v", strings.Join(parts, ": "), e.Err)
		}
		return e.Err.Error()
	}

	if len(parts) > 0 {
		return strings.Join(parts, ": ")
	}
	return "parse error"
}

// Unwrap returns the underlying error.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// Wrap adds context to an error while preserving the underlying error
// for inspection with errors.Is() and errors.As().
func Wrap(err error, context string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", context, err)
}

// Wrapf adds formatted context to an error while preserving the underlying
// error for inspection with errors.Is() and errors.As().
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}
