// Package calc implements the arithmetic behind the calculator tools.
// Every failure is reported as a plain string result, never as an error,
// because the only consumer of these results is a language model.
package calc

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Operations supported by Apply, in display order.
var Operations = []string{"add", "subtract", "multiply", "divide", "power", "average"}

// FormatNumber renders a float the way the tool results expect:
// integral values keep one decimal place ("42.0"), everything else
// uses the shortest exact representation.
func FormatNumber(f float64) string {
	if f == math.Trunc(f) && !math.IsInf(f, 0) {
		return strconv.FormatFloat(f, 'f', 1, 64)
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// Apply performs a named binary operation. Operation names are
// case-insensitive. The result is always a human-readable string.
func Apply(a, b float64, operation string) string {
	switch strings.ToLower(strings.TrimSpace(operation)) {
	case "add":
		return fmt.Sprintf("%s + %s = %s", FormatNumber(a), FormatNumber(b), FormatNumber(a+b))
	case "subtract":
		return fmt.Sprintf("%s - %s = %s", FormatNumber(a), FormatNumber(b), FormatNumber(a-b))
	case "multiply":
		return fmt.Sprintf("%s × %s = %s", FormatNumber(a), FormatNumber(b), FormatNumber(a*b))
	case "divide":
		if b == 0 {
			return "Error: Cannot divide by zero"
		}
		return fmt.Sprintf("%s ÷ %s = %s", FormatNumber(a), FormatNumber(b), FormatNumber(a/b))
	case "power":
		return fmt.Sprintf("%s ^ %s = %s", FormatNumber(a), FormatNumber(b), FormatNumber(math.Pow(a, b)))
	case "average":
		return fmt.Sprintf("average(%s, %s) = %s", FormatNumber(a), FormatNumber(b), FormatNumber((a+b)/2))
	default:
		return fmt.Sprintf("Unknown operation: %s. Use: %s", operation, strings.Join(Operations, ", "))
	}
}

// Divide returns a/b, or a failure string on division by zero.
func Divide(a, b float64) string {
	if b == 0 {
		return "Error: Cannot divide by zero"
	}
	return FormatNumber(a / b)
}

// Average parses a comma-separated list of numbers and returns their mean.
// Parse failures and empty input yield failure strings.
func Average(numbers string) string {
	parts := strings.Split(numbers, ",")

	var values []float64
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		v, err := strconv.ParseFloat(p, 64)
		if err != nil {
			return "Error: Invalid number format. Use comma-separated numbers like '1,2,3,4'"
		}
		values = append(values, v)
	}

	if len(values) == 0 {
		return "Error: No numbers provided"
	}

	var sum float64
	for _, v := range values {
		sum += v
	}
	return FormatNumber(sum / float64(len(values)))
}
