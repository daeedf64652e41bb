// Package gs1 validates GS1 data: GTINs with their mod-10 check digit and
// Application Identifier element strings.
package gs1

import (
	"fmt"
	"strings"

	"golang.org/x/text/width"

	"github.com/ericlevine/databar"
)

// GTINLength is the length of a GTIN-14 including its check digit.
const GTINLength = 14

// Fold narrows full-width characters, so that "（０１）" reads as "(01)".
func Fold(s string) string {
	return width.Narrow.String(s)
}

// IsDigits reports whether s is non-empty and all ASCII digits.
func IsDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// CheckDigit returns the GS1 mod-10 check digit of body. Digits are weighted
// 3, 1, 3, ... starting from the rightmost. body must be all digits.
func CheckDigit(body string) int {
	sum := 0
	for i := 0; i < len(body); i++ {
		d := int(body[len(body)-1-i] - '0')
		if i&1 == 0 {
			sum += 3 * d
		} else {
			sum += d
		}
	}
	return (10 - sum%10) % 10
}

// ValidCheckDigit reports whether the last digit of s is the check digit of
// the digits before it.
func ValidCheckDigit(s string) bool {
	if len(s) < 2 || !IsDigits(s) {
		return false
	}
	return int(s[len(s)-1]-'0') == CheckDigit(s[:len(s)-1])
}

// NormalizeGTIN returns value as a GTIN-14. A leading "(01)" is stripped and
// the digits are left padded with zeros. A 14 digit value, or any value when
// checksumMandatory is set, must end in a correct check digit; shorter
// values otherwise have their check digit computed and appended.
func NormalizeGTIN(value string, checksumMandatory bool) (string, error) {
	v := strings.TrimPrefix(Fold(value), "(01)")
	if len(v) == 0 || len(v) > GTINLength {
		return "", fmt.Errorf("gtin %q: length %d not in 1..%d: %w", value, len(v), GTINLength, databar.ErrInvalidValue)
	}
	if !IsDigits(v) {
		return "", fmt.Errorf("gtin %q: non-digit character: %w", value, databar.ErrInvalidValue)
	}
	if checksumMandatory || len(v) == GTINLength {
		gtin := pad(v, GTINLength)
		if !ValidCheckDigit(gtin) {
			return "", fmt.Errorf("gtin %q: bad check digit, want %d: %w",
				value, CheckDigit(gtin[:GTINLength-1]), databar.ErrInvalidValue)
		}
		return gtin, nil
	}
	body := pad(v, GTINLength-1)
	return body + string(rune('0'+CheckDigit(body))), nil
}

func pad(s string, n int) string {
	if len(s) >= n {
		return s
	}
	return strings.Repeat("0", n-len(s)) + s
}
