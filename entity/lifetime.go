package entity

// Lifetime is either Forever or a signed number of milliseconds remaining.
// The zero value is Forever.
type Lifetime struct {
	limited   bool
	remaining int64
}

// Forever returns a lifetime that never runs out
func Forever() Lifetime {
	return Lifetime{}
}

// Remaining returns a lifetime with ms milliseconds left
func Remaining(ms int64) Lifetime {
	return Lifetime{limited: true, remaining: ms}
}

// IsForever reports whether the lifetime never runs out
func (l Lifetime) IsForever() bool {
	return !l.limited
}

// Remaining returns the milliseconds left and whether the lifetime is limited
func (l Lifetime) Remaining() (int64, bool) {
	return l.remaining, l.limited
}

// Expired reports whether a limited lifetime has reached zero or gone below it
func (l Lifetime) Expired() bool {
	return l.limited && l.remaining <= 0
}

// sub counts a limited lifetime down. The result may go negative.
func (l Lifetime) sub(deltaMS uint64) Lifetime {
	if !l.limited {
		return l
	}
	return Remaining(l.remaining - int64(deltaMS))
}
