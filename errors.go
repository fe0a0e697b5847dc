package lispy

import (
	"fmt"
)

// ErrorKind is an evaluation error. It is carried inside a Value rather than
// returned, so that errors propagate through nested groups like numbers do.
type ErrorKind int

// The zero ErrorKind is not a valid kind.
const (
	ErrDivZero ErrorKind = iota + 1
	ErrBadOp
	ErrBadNum
)

var errorMessages = map[ErrorKind]string{
	ErrDivZero: "Division by zero!",
	ErrBadOp:   "Invalid Operator!",
	ErrBadNum:  "Invalid number!",
}

func (k ErrorKind) Error() string {
	if msg, ok := errorMessages[k]; ok {
		return msg
	}
	return fmt.Sprintf("unknown error kind %d", int(k))
}

// ParseError reports input that does not match the grammar.
type ParseError struct {
	Filename string
	Line     int
	Column   int
	Message  string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s:%d:%d: error: %s", e.Filename, e.Line, e.Column, e.Message)
}
