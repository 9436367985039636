package core

// Fixed-point scalars used by the simulation. All physics state is stored in
// these types; no floating point enters the simulation path.
//
// Num is a signed 7.8 value in an int16: integer range roughly ±127 with 8
// fractional bits. It spans one screen axis and is used for vertical
// position and velocity.
//
// BigNum is a signed 15.16 value in an int32. Horizontal travel has to
// represent off-screen margins beyond the visible width, so it gets the
// wider type.
//
// Both are plain defined integer types, so +, -, and comparisons work
// natively on the raw scaled representation. Neither checks for overflow;
// callers pick the width that covers their value range.

// Num is a signed 7.8 fixed-point scalar.
type Num int16

// BigNum is a signed 15.16 fixed-point scalar.
type BigNum int32

const (
	// NumShift is the number of fractional bits in a Num.
	NumShift = 8
	// NumOne is 1.0 as a Num.
	NumOne Num = 1 << NumShift
	// NumEpsilon is the smallest positive Num step.
	NumEpsilon Num = 1

	// BigShift is the number of fractional bits in a BigNum.
	BigShift = 16
	// BigOne is 1.0 as a BigNum.
	BigOne BigNum = 1 << BigShift
)

// NumInt converts an integer to a Num.
func NumInt(i int) Num {
	return Num(i) << NumShift
}

// NumRatio builds a Num from a rational constant, truncating toward zero.
func NumRatio(num, den int) Num {
	return Num((num << NumShift) / den)
}

// Int returns the truncated integer part, used for rendering.
func (n Num) Int() int {
	return int(n >> NumShift)
}

// Mul multiplies two Nums, widening internally to avoid losing the
// intermediate product.
func (n Num) Mul(m Num) Num {
	return Num(int32(n) * int32(m) >> NumShift)
}

// Abs returns the absolute value.
func (n Num) Abs() Num {
	if n < 0 {
		return -n
	}
	return n
}

// Big widens a Num to a BigNum of equal value.
func (n Num) Big() BigNum {
	return BigNum(n) << (BigShift - NumShift)
}

// BigInt converts an integer to a BigNum.
func BigInt(i int) BigNum {
	return BigNum(i) << BigShift
}

// BigRatio builds a BigNum from a rational constant, truncating toward zero.
func BigRatio(num, den int) BigNum {
	return BigNum((num << BigShift) / den)
}

// Int returns the truncated integer part, used for rendering.
func (b BigNum) Int() int {
	return int(b >> BigShift)
}

// Mul multiplies two BigNums, widening internally.
func (b BigNum) Mul(o BigNum) BigNum {
	return BigNum(int64(b) * int64(o) >> BigShift)
}

// Abs returns the absolute value.
func (b BigNum) Abs() BigNum {
	if b < 0 {
		return -b
	}
	return b
}

// Num narrows a BigNum to a Num. The value must be in Num range; bits above
// it are discarded.
func (b BigNum) Num() Num {
	return Num(b >> (BigShift - NumShift))
}

// ClampNum restricts a Num to [lo, hi].
func ClampNum(v, lo, hi Num) Num {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// ClampBig restricts a BigNum to [lo, hi].
func ClampBig(v, lo, hi BigNum) BigNum {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
