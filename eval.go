package lispy

import (
	"strconv"
)

// Eval reduces node to a Value. It never panics on malformed trees; shapes
// the evaluator cannot interpret become ErrBadOp.
func Eval(node *Node) Value {
	if node == nil {
		return Value{}
	}
	switch node.t {
	case NodeNumber:
		x, err := strconv.ParseInt(node.v, 10, 64)
		if err != nil {
			return ErrValue(ErrBadNum)
		}
		return NumValue(x)
	case NodeGroup:
		return evalGroup(node)
	case NodeProgram:
		var ret Value
		for _, child := range node.children {
			ret = Eval(child)
			if ret.IsErr() {
				return ret
			}
		}
		return ret
	}
	return ErrValue(ErrBadOp)
}

func evalGroup(node *Node) Value {
	if len(node.children) < 2 || node.children[0].t != NodeOperator {
		return ErrValue(ErrBadOp)
	}
	op := node.children[0].v

	x := Eval(node.children[1])
	for _, child := range node.children[2:] {
		// bare operators in operand position are not operands
		if child.t == NodeOperator {
			continue
		}
		x = apply(x, op, Eval(child))
	}
	return x
}

// EvalString parses and evaluates line. The error is non-nil only when line
// does not parse.
func EvalString(line string) (Value, error) {
	node, err := Parse(line)
	if err != nil {
		return Value{}, err
	}
	return Eval(node), nil
}
