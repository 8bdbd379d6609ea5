package odometer

import "strconv"

// FormatRule converts a value into its display string. Any function or type
// with this single method works; format output is trusted (a rule that
// panics or misformats is a host bug, not a recoverable condition).
type FormatRule interface {
	Format(value float64) string
}

// FormatFunc adapts an ordinary function to a FormatRule.
type FormatFunc func(value float64) string

// Format calls f.
func (f FormatFunc) Format(value float64) string { return f(value) }

// Integer formats the value as a whole number, truncating toward zero.
func Integer() FormatRule {
	return FormatFunc(func(v float64) string {
		return strconv.FormatInt(int64(v), 10)
	})
}

// Fixed formats the value with a fixed number of decimal places.
func Fixed(prec int) FormatRule {
	return FormatFunc(func(v float64) string {
		return strconv.FormatFloat(v, 'f', prec, 64)
	})
}

// Grouped formats the value as a whole number with sep between thousands
// groups, e.g. Grouped(',') renders 1234567 as "1,234,567".
func Grouped(sep rune) FormatRule {
	return FormatFunc(func(v float64) string {
		s := strconv.FormatInt(int64(v), 10)
		start := 0
		if s[0] == '-' {
			start = 1
		}
		digits := len(s) - start
		if digits <= 3 {
			return s
		}
		out := make([]rune, 0, len(s)+digits/3)
		out = append(out, []rune(s[:start])...)
		for i, r := range s[start:] {
			if i > 0 && (digits-i)%3 == 0 {
				out = append(out, sep)
			}
			out = append(out, r)
		}
		return string(out)
	})
}
