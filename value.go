package lispy

import (
	"strconv"
)

type ValueType int

const (
	ValueNil ValueType = iota
	ValueNum
	ValueErr
)

// Value is the outcome of evaluating a node: an integer or an error kind.
// The zero Value is the result of an empty program.
type Value struct {
	t   ValueType
	num int64
	err ErrorKind
}

func NumValue(x int64) Value {
	return Value{t: ValueNum, num: x}
}

func ErrValue(k ErrorKind) Value {
	return Value{t: ValueErr, err: k}
}

func (v Value) Type() ValueType {
	return v.t
}

func (v Value) IsErr() bool {
	return v.t == ValueErr
}

// Int returns the integer held by v and whether v holds one.
func (v Value) Int() (int64, bool) {
	return v.num, v.t == ValueNum
}

// Err returns the error kind held by v, or nil.
func (v Value) Err() error {
	if v.t != ValueErr {
		return nil
	}
	return v.err
}

func (v Value) String() string {
	switch v.t {
	case ValueNum:
		return strconv.FormatInt(v.num, 10)
	case ValueErr:
		return "Error: " + v.err.Error()
	}
	return ""
}
