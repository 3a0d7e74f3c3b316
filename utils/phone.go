package utils

import "strings"

// FormatPhoneNumber normalizes an arbitrary phone string into the local
// +998 XX XXX XX XX layout. A 12-digit number must already carry the 998
// country code; a 9-digit number is treated as local. Anything else is
// returned as the bare digit string. The function never fails.
func FormatPhoneNumber(phone string) string {
	var b strings.Builder
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	digits := b.String()

	switch {
	case len(digits) == 12 && strings.HasPrefix(digits, "998"):
		return "+" + digits[:3] + " " + digits[3:5] + " " + digits[5:8] + " " + digits[8:10] + " " + digits[10:]
	case len(digits) == 9:
		return "+998 " + digits[:2] + " " + digits[2:5] + " " + digits[5:7] + " " + digits[7:]
	}
	return digits
}
