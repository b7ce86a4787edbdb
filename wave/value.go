package wave

import "strconv"

// ValueKind discriminates the three shapes a signal value can take.
type ValueKind int

const (
	// ValueBit is a single binary digit.
	ValueBit ValueKind = iota
	// ValueVector is a multi-bit value carried as text, as the trace
	// format delivers it.
	ValueVector
	// ValueAbsent marks a region where no value is in effect (before the
	// first recorded change of a fetched signal).
	ValueAbsent
)

// Value is one signal value. Bit is meaningful for ValueBit, Text for
// ValueVector.
type Value struct {
	Kind ValueKind
	Bit  uint8
	Text string
}

func BitValue(b uint8) Value {
	if b > 1 {
		b = 1
	}
	return Value{Kind: ValueBit, Bit: b}
}

func VectorValue(text string) Value { return Value{Kind: ValueVector, Text: text} }

func AbsentValue() Value { return Value{Kind: ValueAbsent} }

// Change is one value change at a point in time. Sequences of changes are
// strictly increasing in Time.
type Change struct {
	Time  float64
	Value Value
}

// DecodeNumeric turns trace text into a number: binary first, then decimal,
// then zero. Malformed signal text never produces an error, only a zero.
func DecodeNumeric(text string) uint64 {
	if n, err := strconv.ParseUint(text, 2, 64); err == nil {
		return n
	}
	if n, err := strconv.ParseUint(text, 10, 64); err == nil {
		return n
	}
	return 0
}

// ParseValue classifies raw trace text as a bit or a vector.
func ParseValue(text string) Value {
	if len(text) == 1 && (text[0] == '0' || text[0] == '1') {
		return BitValue(text[0] - '0')
	}
	if text == "" {
		return AbsentValue()
	}
	return VectorValue(text)
}

// Level maps a value onto the two waveform bands: anything nonzero is high.
func (v Value) Level() uint8 {
	switch v.Kind {
	case ValueBit:
		return v.Bit
	case ValueVector:
		if DecodeNumeric(v.Text) != 0 {
			return 1
		}
		return 0
	default:
		return 0
	}
}

// Label is the text drawn inside a vector segment.
func (v Value) Label() string {
	switch v.Kind {
	case ValueBit:
		return strconv.Itoa(int(v.Bit))
	case ValueVector:
		return strconv.FormatUint(DecodeNumeric(v.Text), 10)
	default:
		return "x"
	}
}
