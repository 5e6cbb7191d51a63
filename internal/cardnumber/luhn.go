package cardnumber

import (
	"errors"
)

// ErrNotDigits is returned when a checksum input is empty or holds a non-decimal character.
var ErrNotDigits = errors.New("cardnumber: input must be a non-empty string of decimal digits")

// Checksum sums the digits of s, doubling every digit at an even index counted from the
// left and subtracting 9 from any doubled value above 9.
func Checksum(digits string) (int, error) {
	if len(digits) == 0 {
		return 0, ErrNotDigits
	}

	sum := 0
	for i := 0; i < len(digits); i++ {
		c := digits[i]
		if c < '0' || c > '9' {
			return 0, ErrNotDigits
		}
		d := int(c - '0')
		if i%2 == 0 {
			d *= 2
			if d > 9 {
				d -= 9
			}
		}
		sum += d
	}

	return sum, nil
}

// CheckDigit returns the digit that, appended to base, makes the checksum a multiple of 10.
func CheckDigit(base string) (int, error) {
	sum, err := Checksum(base)
	if err != nil {
		return 0, err
	}
	return (10 - sum%10) % 10, nil
}

// Valid reports whether number passes the Luhn check. Malformed input is never valid.
func Valid(number string) bool {
	sum, err := Checksum(number)
	if err != nil {
		return false
	}
	return sum%10 == 0
}

// ValidPin reports whether pin is exactly four decimal digits.
func ValidPin(pin string) bool {
	if len(pin) != PinLength {
		return false
	}
	for i := 0; i < len(pin); i++ {
		if pin[i] < '0' || pin[i] > '9' {
			return false
		}
	}
	return true
}
