package util

import (
	"math"
	"strconv"
	"strings"
)

// Amount is a request amount that accepts either a JSON number or a numeric
// string. Anything else (null, booleans, garbage text, NaN) decodes to zero
// so that positivity checks reject it instead of failing the whole body.
type Amount float64

func (a *Amount) UnmarshalJSON(b []byte) error {
	s := strings.TrimSpace(string(b))
	if unquoted, err := strconv.Unquote(s); err == nil {
		s = strings.TrimSpace(unquoted)
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		*a = 0
		return nil
	}
	*a = Amount(f)
	return nil
}

func (a Amount) Float64() float64 {
	return float64(a)
}
