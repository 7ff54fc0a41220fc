package domain

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNewMeasurement_SplitsFeetAndInches tests the feet/inches split from a scalar
func TestNewMeasurement_SplitsFeetAndInches(t *testing.T) {
	m := NewMeasurement(150)

	assert.Equal(t, 12, m.Feet)
	assert.InDelta(t, 6.0, m.Inches, 1e-9)
	assert.InDelta(t, 150.0, m.TotalInches, 1e-9)
	assert.Equal(t, `12' 6"`, m.Display)
}

// TestNewMeasurement_Invariant tests that totalInches always equals feet*12+inches
func TestNewMeasurement_Invariant(t *testing.T) {
	values := []float64{0, 0.5, 1, 11.999, 12, 96, 150.03, 143.99, 1234.5678}

	for _, v := range values {
		m := NewMeasurement(v)
		assert.InDelta(t, m.TotalInches, float64(m.Feet)*12+m.Inches, 1e-9)
		assert.GreaterOrEqual(t, m.Inches, 0.0)
		assert.Less(t, m.Inches, 12.0)
	}
}

// TestNewMeasurement_NegativeClampsToZero tests that negative inputs become zero
func TestNewMeasurement_NegativeClampsToZero(t *testing.T) {
	m := NewMeasurement(-42)

	assert.True(t, m.IsZero())
	assert.Equal(t, `0"`, m.Display)
}

// TestMeasurementFromFeetInches tests construction from split components
func TestMeasurementFromFeetInches(t *testing.T) {
	m := MeasurementFromFeetInches(12, 6)

	assert.InDelta(t, 150.0, m.TotalInches, 1e-9)
	assert.InDelta(t, 12.5, m.AsFeet(), 1e-9)
}

// TestFormatInches tests display formatting across whole, fractional and carry cases
func TestFormatInches(t *testing.T) {
	tests := []struct {
		name        string
		totalInches float64
		expected    string
	}{
		{"zero", 0, `0"`},
		{"whole inches", 6, `6"`},
		{"bare fraction", 0.5, `1/2"`},
		{"inches with fraction", 3.5, `3-1/2"`},
		{"sixteenth", 0.0625, `1/16"`},
		{"feet and inches", 150, `12' 6"`},
		{"even feet", 96, `8' 0"`},
		{"feet with fraction", 150.25, `12' 6-1/4"`},
		{"rounds up to next foot", 143.99, `12' 0"`},
		{"rounds to nearest sixteenth", 150.03, `12' 6"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatInches(tt.totalInches, DefaultPrecision))
		})
	}
}

// TestParseMeasurement tests every accepted input form
func TestParseMeasurement(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected float64
	}{
		{"feet and inches", `12'6"`, 150},
		{"feet and inches with spaces", ` 12' 6" `, 150},
		{"decimal feet", `12.5'`, 150},
		{"feet with ft suffix", `12 ft`, 144},
		{"plain inches", `150"`, 150},
		{"inches with in suffix", `42 in`, 42},
		{"feet with fractional inches", `5'3-1/2"`, 63.5},
		{"inches with fraction", `3-1/2"`, 3.5},
		{"bare fraction", `1/2"`, 0.5},
		{"bare feet", `12'`, 144},
		{"feet with bare fraction", `8' 3/8"`, 96.375},
		{"missing closing quote", `12'6`, 150},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := ParseMeasurement(tt.input)
			require.NoError(t, err)
			assert.InDelta(t, tt.expected, m.TotalInches, 1e-9)
		})
	}
}

// TestParseMeasurement_EquivalentForms tests that the three spellings of 12.5 feet agree
func TestParseMeasurement_EquivalentForms(t *testing.T) {
	for _, input := range []string{`12'6"`, `12.5'`, `150"`} {
		m, err := ParseMeasurement(input)
		require.NoError(t, err)
		assert.InDelta(t, 150.0, m.TotalInches, 1e-9, "input %q", input)
	}
}

// TestParseMeasurement_Invalid tests rejection of unparseable input
func TestParseMeasurement_Invalid(t *testing.T) {
	inputs := []string{"", "abc", `--3"`, `1/0"`, "12,5'", "ft 12"}

	for _, input := range inputs {
		_, err := ParseMeasurement(input)
		assert.ErrorIs(t, err, ErrMeasurementFormat, "input %q", input)
	}
}

// TestMeasurement_FormatParseRoundTrip tests that parsing a display string
// recovers the value within the precision grid
func TestMeasurement_FormatParseRoundTrip(t *testing.T) {
	values := []float64{0, 0.3, 5.55, 12, 96.4, 150.03, 207.9}

	for _, v := range values {
		m := NewMeasurement(v)
		parsed, err := ParseMeasurement(m.Display)
		require.NoError(t, err, "display %q", m.Display)
		assert.InDelta(t, v, parsed.TotalInches, 1.0/DefaultPrecision)
	}
}

// TestDecimalToFraction tests reduction to tape-measure fractions
func TestDecimalToFraction(t *testing.T) {
	tests := []struct {
		name      string
		decimal   float64
		precision int
		expected  string
	}{
		{"half", 0.5, 16, "1/2"},
		{"third snaps to grid", 0.333, 16, "5/16"},
		{"quarter", 0.25, 16, "1/4"},
		{"three quarters", 0.75, 16, "3/4"},
		{"sixteenth", 0.0625, 16, "1/16"},
		{"eighth precision", 0.5, 8, "1/2"},
		{"zero", 0, 16, "0"},
		{"near one", 0.99, 16, "1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, DecimalToFraction(tt.decimal, tt.precision))
		})
	}
}

// TestMeasurement_Convert tests unit conversion including the inches fallback
func TestMeasurement_Convert(t *testing.T) {
	m := NewMeasurement(150)

	tests := []struct {
		name     string
		target   Unit
		expected float64
	}{
		{"inches", UnitInch, 150},
		{"feet", UnitFoot, 12.5},
		{"yards", UnitYard, 150.0 / 36.0},
		{"centimeters", UnitCentimeter, 381},
		{"millimeters", UnitMillimeter, 3810},
		{"unknown falls back to inches", Unit("furlong"), 150},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, m.Convert(tt.target), 1e-9)
		})
	}
}

// TestMeasurement_Equals tests the default 1/16 inch comparison tolerance
func TestMeasurement_Equals(t *testing.T) {
	base := NewMeasurement(150)

	assert.True(t, base.Equals(NewMeasurement(150.05)))
	assert.True(t, base.Equals(NewMeasurement(149.95)))
	assert.False(t, base.Equals(NewMeasurement(150.07)))
	assert.True(t, base.EqualsWithin(NewMeasurement(150.4), 0.5))
}

// TestMeasurement_Comparisons tests ordering helpers
func TestMeasurement_Comparisons(t *testing.T) {
	small := NewMeasurement(10)
	large := NewMeasurement(20)

	assert.True(t, small.LessThan(large))
	assert.False(t, large.LessThan(small))
	assert.True(t, large.GreaterThan(small))
	assert.Equal(t, small, MinMeasurement(small, large))
	assert.Equal(t, large, MaxMeasurement(small, large))
}

// TestMeasurement_Add tests measurement addition
func TestMeasurement_Add(t *testing.T) {
	sum := NewMeasurement(100).Add(NewMeasurement(50))

	assert.InDelta(t, 150.0, sum.TotalInches, 1e-9)
	assert.Equal(t, `12' 6"`, sum.Display)
}

// TestMeasurement_UnmarshalJSON tests that decoding rebuilds derived fields
func TestMeasurement_UnmarshalJSON(t *testing.T) {
	var fromScalar Measurement
	require.NoError(t, json.Unmarshal([]byte(`{"totalInches":150}`), &fromScalar))
	assert.Equal(t, 12, fromScalar.Feet)
	assert.InDelta(t, 6.0, fromScalar.Inches, 1e-9)
	assert.Equal(t, `12' 6"`, fromScalar.Display)

	var fromComponents Measurement
	require.NoError(t, json.Unmarshal([]byte(`{"feet":8,"inches":6}`), &fromComponents))
	assert.InDelta(t, 102.0, fromComponents.TotalInches, 1e-9)
}

// TestMeasurement_String tests display regeneration for bare struct literals
func TestMeasurement_String(t *testing.T) {
	bare := Measurement{TotalInches: 96}

	assert.Equal(t, `8' 0"`, bare.String())
	assert.Equal(t, `12' 6"`, NewMeasurement(150).String())
}

// TestNewMeasurementWithPrecision_GuardsPrecision tests fallback for bad precision
func TestNewMeasurementWithPrecision_GuardsPrecision(t *testing.T) {
	m := NewMeasurementWithPrecision(3.5, 0)

	assert.Equal(t, `3-1/2"`, m.Display)
	assert.False(t, math.IsNaN(m.TotalInches))
}
