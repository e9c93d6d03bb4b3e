package calc

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestApply(t *testing.T) {
	tests := []struct {
		name      string
		a, b      float64
		operation string
		want      string
	}{
		{"add", 25, 17, "add", "25.0 + 17.0 = 42.0"},
		{"subtract", 10, 4, "subtract", "10.0 - 4.0 = 6.0"},
		{"multiply", 15, 8, "multiply", "15.0 × 8.0 = 120.0"},
		{"divide", 9, 2, "divide", "9.0 ÷ 2.0 = 4.5"},
		{"power", 2, 10, "power", "2.0 ^ 10.0 = 1024.0"},
		{"average", 4, 8, "average", "average(4.0, 8.0) = 6.0"},
		{"case insensitive", 1, 2, "ADD", "1.0 + 2.0 = 3.0"},
		{"padded", 1, 2, " Multiply ", "1.0 × 2.0 = 2.0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Apply(tt.a, tt.b, tt.operation))
		})
	}
}

func TestApplyDivideByZero(t *testing.T) {
	assert.Equal(t, "Error: Cannot divide by zero", Apply(1, 0, "divide"))
	assert.Equal(t, "Error: Cannot divide by zero", Divide(1, 0))
}

func TestApplyUnknownOperation(t *testing.T) {
	got := Apply(1, 2, "modulo")
	assert.Contains(t, got, "Unknown operation: modulo")
	assert.Contains(t, got, "add, subtract, multiply, divide, power, average")
}

func TestAverage(t *testing.T) {
	assert.Equal(t, "2.5", Average("1, 2, 3, 4"))
	assert.Equal(t, "5.0", Average("5"))
	assert.Equal(t, "Error: Invalid number format. Use comma-separated numbers like '1,2,3,4'", Average("1,two,3"))
	assert.Equal(t, "Error: No numbers provided", Average(""))
	assert.Equal(t, "Error: No numbers provided", Average(" , , "))
}

func TestFormatNumber(t *testing.T) {
	assert.Equal(t, "42.0", FormatNumber(42))
	assert.Equal(t, "-3.0", FormatNumber(-3))
	assert.Equal(t, "4.5", FormatNumber(4.5))
	assert.Equal(t, "0.125", FormatNumber(0.125))
}
