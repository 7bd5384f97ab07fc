package finance

import "strconv"

// FormatMoney renders an integer currency amount with space-grouped
// thousands and no fractional units: 1234567 -> "1 234 567". The grouping is
// the fixed output-locale convention and is relied on by golden tests.
func FormatMoney(v int) string {
	neg := v < 0
	if neg {
		v = -v
	}
	digits := strconv.Itoa(v)
	n := len(digits)
	if n <= 3 {
		if neg {
			return "-" + digits
		}
		return digits
	}

	groups := (n - 1) / 3
	out := make([]byte, 0, n+groups+1)
	if neg {
		out = append(out, '-')
	}
	head := n - groups*3
	out = append(out, digits[:head]...)
	for i := head; i < n; i += 3 {
		out = append(out, ' ')
		out = append(out, digits[i:i+3]...)
	}
	return string(out)
}
