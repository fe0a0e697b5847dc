package lispy

type Fn func(x, y int64) Value

var ops map[string]Fn

func init() {
	ops = make(map[string]Fn)
	ops["+"] = doPlus
	ops["-"] = doMinus
	ops["*"] = doMul
	ops["/"] = doDiv
}

func doPlus(x, y int64) Value {
	return NumValue(x + y)
}

func doMinus(x, y int64) Value {
	return NumValue(x - y)
}

func doMul(x, y int64) Value {
	return NumValue(x * y)
}

// doDiv truncates toward zero. math.MinInt64 / -1 wraps to math.MinInt64.
func doDiv(x, y int64) Value {
	if y == 0 {
		return ErrValue(ErrDivZero)
	}
	return NumValue(x / y)
}

// apply combines x and y with op. An error in x wins over an error in y.
func apply(x Value, op string, y Value) Value {
	if x.IsErr() {
		return x
	}
	if y.IsErr() {
		return y
	}
	fn, ok := ops[op]
	if !ok {
		return ErrValue(ErrBadOp)
	}
	return fn(x.num, y.num)
}
