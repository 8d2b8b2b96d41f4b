package cpf

import "strings"

const (
	// Length is the number of digits in a complete CPF.
	Length = 11

	// BaseLength is the number of digits the check digits are computed from.
	BaseLength = 9
)

// Unformat strips every character that is not an ASCII digit, preserving order.
func Unformat(value string) string {
	var b strings.Builder
	b.Grow(len(value))
	for i := 0; i < len(value); i++ {
		if c := value[i]; c >= '0' && c <= '9' {
			b.WriteByte(c)
		}
	}
	return b.String()
}

// Format masks value as XXX.XXX.XXX-XX. Incomplete input gets a partial mask
// so the result can be shown while the user is still typing. Digits after the
// 11th are dropped.
func Format(value string) string {
	digits := Unformat(value)
	if len(digits) > Length {
		digits = digits[:Length]
	}

	switch n := len(digits); {
	case n <= 3:
		return digits
	case n <= 6:
		return digits[:3] + "." + digits[3:]
	case n <= 9:
		return digits[:3] + "." + digits[3:6] + "." + digits[6:]
	default:
		return digits[:3] + "." + digits[3:6] + "." + digits[6:9] + "-" + digits[9:]
	}
}

// IsComplete reports whether value holds exactly 11 digits once unformatted.
func IsComplete(value string) bool {
	return len(Unformat(value)) == Length
}

// IsValid reports whether value is a well-formed CPF with correct check digits.
// Punctuation is ignored; the digit count must be exactly 11.
func IsValid(value string) bool {
	digits := Unformat(value)
	if len(digits) != Length {
		return false
	}
	if isRepeated(digits) {
		return false
	}

	d1, d2, ok := CheckDigits(digits[:BaseLength])
	if !ok {
		return false
	}
	return int(digits[9]-'0') == d1 && int(digits[10]-'0') == d2
}

// CheckDigits computes both check digits for a 9-digit base. The base is
// unformatted first; ok is false when it does not hold exactly 9 digits.
func CheckDigits(base string) (d1, d2 int, ok bool) {
	digits := Unformat(base)
	if len(digits) != BaseLength {
		return 0, 0, false
	}

	var sum1, sum2 int
	for i := 0; i < BaseLength; i++ {
		d := int(digits[i] - '0')
		sum1 += d * (10 - i)
		sum2 += d * (11 - i)
	}

	d1 = checkDigit(sum1)
	d2 = checkDigit(sum2 + d1*2)
	return d1, d2, true
}

// checkDigit applies the modulo 11 rule: 11 - sum%11, where 10 and 11 become 0.
func checkDigit(sum int) int {
	r := 11 - sum%11
	if r >= 10 {
		return 0
	}
	return r
}

func isRepeated(digits string) bool {
	for i := 1; i < len(digits); i++ {
		if digits[i] != digits[0] {
			return false
		}
	}
	return true
}
