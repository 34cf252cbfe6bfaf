package quantity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQuantityEqual(t *testing.T) {
	for _, tc := range []struct {
		name string
		a, b Quantity
		want bool
	}{
		{"scalar match", Scalar(2.18, "atm"), Scalar(2.18, "atm"), true},
		{"scalar value mismatch", Scalar(2.18, "atm"), Scalar(2.19, "atm"), false},
		{"scalar units mismatch", Scalar(2.18, "atm"), Scalar(2.18, "Torr"), false},
		{"series match", Series([]float64{1164.48, 1164.97}, "K"), Series([]float64{1164.48, 1164.97}, "K"), true},
		{"series length mismatch", Series([]float64{1164.48, 1164.97}, "K"), Series([]float64{1164.48}, "K"), false},
		{"series element mismatch", Series([]float64{1164.48, 1164.97}, "K"), Series([]float64{1164.48, 1164.98}, "K"), false},
		{"one-element series equals scalar", Series([]float64{1.0}, "ms"), Scalar(1.0, "ms"), true},
		{"empty equals empty", Quantity{}, Quantity{}, true},
		{"empty vs scalar", Quantity{}, Scalar(0, ""), false},
	} {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.a.Equal(tc.b))
			assert.Equal(t, tc.want, tc.b.Equal(tc.a))
		})
	}
}

func TestQuantityAccessors(t *testing.T) {
	check := assert.New(t)

	s := Scalar(958, "Torr")
	check.True(s.IsScalar())
	check.Equal(1, s.Len())
	check.Equal(958.0, s.Value())
	check.Equal("Torr", s.Units())

	ser := Series([]float64{471.54, 448.03}, "us")
	check.False(ser.IsScalar())
	check.Equal(2, ser.Len())
	check.Equal(471.54, ser.Value())
	check.True(ser.At(1).Equal(Scalar(448.03, "us")))
}

func TestQuantityImmutable(t *testing.T) {
	check := assert.New(t)

	in := []float64{1, 2, 3}
	q := Series(in, "s")
	in[0] = 99
	check.Equal([]float64{1, 2, 3}, q.Values())

	out := q.Values()
	out[1] = 99
	check.Equal([]float64{1, 2, 3}, q.Values())
}

func TestQuantityString(t *testing.T) {
	assert.Equal(t, "2.18 atm", Scalar(2.18, "atm").String())
	assert.Equal(t, "series[3] cm3", Series([]float64{1, 2, 3}, "cm3").String())
	assert.Equal(t, "<empty>", Quantity{}.String())
}
