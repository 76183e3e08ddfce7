package parity

// The type sets below enumerate every primitive numeric width Go provides.
// Tilde terms admit defined types whose underlying type is the primitive, so
// newtypes satisfy the predicates without adapters.

// Signed matches every primitive signed integer type.
type Signed interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

// Unsigned matches every primitive unsigned integer type.
type Unsigned interface {
	~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Integer matches every primitive integer type, signed or unsigned.
type Integer interface {
	Signed | Unsigned
}

// Float matches both primitive floating-point types.
type Float interface {
	~float32 | ~float64
}
