package currency

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToCLP(t *testing.T) {
	f := New()

	assert.Equal(t, 106260.0, f.ToCLP(3))
	assert.Equal(t, 53130.0, f.ToCLP(1.5))
	assert.Equal(t, 0.0, f.ToCLP(0))
}

func TestFormatUF(t *testing.T) {
	f := New()

	tests := []struct {
		uf   float64
		want string
	}{
		{uf: 3, want: "3 UF (106.260 CLP)"},
		{uf: 2, want: "2 UF (70.840 CLP)"},
		{uf: 1.5, want: "1.5 UF (53.130 CLP)"},
		{uf: 2.5, want: "2.5 UF (88.550 CLP)"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, f.FormatUF(tt.uf), "FormatUF(%v)", tt.uf)
	}
}

func TestFormatCLP(t *testing.T) {
	f := New()

	assert.Equal(t, "$106.260", f.FormatCLP(3))
	assert.Equal(t, "$159.390", f.FormatTotal(159390))
	assert.Equal(t, "1.5 UF", f.FormatUFAmount(1.5))
}

func TestFormatter_CustomRate(t *testing.T) {
	f := Formatter{Rate: 10000, Locale: DefaultLocale}

	assert.Equal(t, 25000.0, f.ToCLP(2.5))
	assert.Equal(t, "2.5 UF (25.000 CLP)", f.FormatUF(2.5))
}
