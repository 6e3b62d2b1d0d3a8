package convert

// strategy is how a resolved scale factor is applied to a value. The
// variant is fixed by the sign of the exponent delta alone, so the set
// is closed at three.
type strategy int8

const (
	divideTruncate  strategy = iota - 1 // scale down, truncating toward zero
	identity                            // equal prefixes, value passes through
	multiplyChecked                     // scale up, rejecting overflow
)

// strategyFor selects the application strategy for an exponent delta.
func strategyFor(delta int) strategy {
	switch {
	case delta < 0:
		return divideTruncate
	case delta > 0:
		return multiplyChecked
	}

	return identity
}

func abs(delta int) int {
	if delta < 0 {
		return -delta
	}

	return delta
}
