package field

// Op identifies the kind of a primitive field operation.
type Op uint8

const (
	OpAdd Op = iota
	OpSub
	OpNeg
	OpHalf
	OpCorrect
	OpMul
	OpSqr
	OpRdc
	OpAddWide
	OpSubWide
	OpSwap
	OpConvert
	OpLast
)

var opNames = [...]string{
	OpAdd:     "add",
	OpSub:     "sub",
	OpNeg:     "neg",
	OpHalf:    "half",
	OpCorrect: "correct",
	OpMul:     "mul",
	OpSqr:     "sqr",
	OpRdc:     "rdc",
	OpAddWide: "addwide",
	OpSubWide: "subwide",
	OpSwap:    "swap",
	OpConvert: "convert",
}

func (op Op) String() string {
	if op >= OpLast {
		return "unknown"
	}
	return opNames[op]
}

// Tracer receives the kind of every primitive operation executed by a Field.
// Values are never reported, only operation kinds.
type Tracer interface {
	Trace(op Op)
}

func (f *Field) trace(op Op) {
	if f.tracer != nil {
		f.tracer.Trace(op)
	}
}
