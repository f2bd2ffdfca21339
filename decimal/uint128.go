package decimal

import "fmt"

// Uint128 is an unsigned 128-bit integer used to carry encoded bit patterns
// wider than 64 bits. The zero value is zero.
//
// Uint128 is comparable; two values are equal when both halves are equal.
type Uint128 struct {
	Hi uint64 // upper 64 bits
	Lo uint64 // lower 64 bits
}

// FromUint64 returns v widened to a Uint128.
func FromUint64(v uint64) Uint128 {
	return Uint128{Lo: v}
}

// IsZero reports whether u is zero.
func (u Uint128) IsZero() bool {
	return u.Hi == 0 && u.Lo == 0
}

// Uint64 returns the low 64 bits of u.
func (u Uint128) Uint64() uint64 {
	return u.Lo
}

// And returns the bitwise AND of u and v.
func (u Uint128) And(v Uint128) Uint128 {
	return Uint128{Hi: u.Hi & v.Hi, Lo: u.Lo & v.Lo}
}

// Or returns the bitwise OR of u and v.
func (u Uint128) Or(v Uint128) Uint128 {
	return Uint128{Hi: u.Hi | v.Hi, Lo: u.Lo | v.Lo}
}

// Shl returns u shifted left by n bits. Bits shifted past position 127 are
// discarded.
func (u Uint128) Shl(n uint) Uint128 {
	switch {
	case n >= 128:
		return Uint128{}
	case n >= 64:
		return Uint128{Hi: u.Lo << (n - 64)}
	case n == 0:
		return u
	default:
		return Uint128{Hi: u.Hi<<n | u.Lo>>(64-n), Lo: u.Lo << n}
	}
}

// Shr returns u shifted right by n bits.
func (u Uint128) Shr(n uint) Uint128 {
	switch {
	case n >= 128:
		return Uint128{}
	case n >= 64:
		return Uint128{Lo: u.Hi >> (n - 64)}
	case n == 0:
		return u
	default:
		return Uint128{Hi: u.Hi >> n, Lo: u.Lo>>n | u.Hi<<(64-n)}
	}
}

// Float64 returns the nearest float64 to u. Values above 2^53 lose
// precision, matching a direct integer-to-float conversion.
func (u Uint128) Float64() float64 {
	if u.Hi == 0 {
		return float64(u.Lo)
	}

	return float64(u.Hi)*0x1p64 + float64(u.Lo)
}

// String returns u in hexadecimal.
func (u Uint128) String() string {
	if u.Hi == 0 {
		return fmt.Sprintf("0x%x", u.Lo)
	}

	return fmt.Sprintf("0x%x%016x", u.Hi, u.Lo)
}

// mask128 returns a Uint128 with the low n bits set.
func mask128(n int) Uint128 {
	switch {
	case n >= 128:
		return Uint128{Hi: ^uint64(0), Lo: ^uint64(0)}
	case n >= 64:
		return Uint128{Hi: 1<<(n-64) - 1, Lo: ^uint64(0)}
	case n <= 0:
		return Uint128{}
	default:
		return Uint128{Lo: 1<<n - 1}
	}
}
