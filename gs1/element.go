package gs1

import (
	"fmt"
	"strings"

	"github.com/ericlevine/databar"
)

// FNC1 separates a variable length element from the next one in reduced
// data. It is transmitted by scanners as ASCII GS.
const FNC1 = '\x1d'

// isoPunctuation is the punctuation of the ISO/IEC 646 subset that DataBar
// Expanded can carry.
const isoPunctuation = "!\"%&'()*+,-./:;<=>?_ "

// Element is one Application Identifier and its data.
type Element struct {
	AI   string
	Data string
}

// String returns the element in bracketed form, "(AI)data".
func (e Element) String() string {
	return "(" + e.AI + ")" + e.Data
}

// Encodable reports whether c can appear in element data.
func Encodable(c byte) bool {
	switch {
	case c >= '0' && c <= '9', c >= 'A' && c <= 'Z', c >= 'a' && c <= 'z':
		return true
	}
	return strings.IndexByte(isoPunctuation, c) >= 0
}

// ParseElementString splits a bracketed element string such as
// "(01)90012345678908(3103)001234" into elements and validates each one.
func ParseElementString(s string) ([]Element, error) {
	s = Fold(s)
	if s == "" {
		return nil, fmt.Errorf("empty element string: %w", databar.ErrInvalidValue)
	}
	var elements []Element
	for i := 0; i < len(s); {
		if s[i] != '(' {
			return nil, fmt.Errorf("element string %q: expected '(' at %d: %w", s, i, databar.ErrInvalidValue)
		}
		closing := strings.IndexByte(s[i+1:], ')')
		if closing < 0 {
			return nil, fmt.Errorf("element string %q: unclosed AI at %d: %w", s, i, databar.ErrInvalidValue)
		}
		ai := s[i+1 : i+1+closing]
		start := i + closing + 2
		end := strings.IndexByte(s[start:], '(')
		if end < 0 {
			end = len(s)
		} else {
			end += start
		}
		e := Element{AI: ai, Data: s[start:end]}
		if err := e.Validate(); err != nil {
			return nil, err
		}
		elements = append(elements, e)
		i = end
	}
	return elements, nil
}

// Validate checks the AI and the data of e.
func (e Element) Validate() error {
	if len(e.AI) < 2 || len(e.AI) > 4 || !IsDigits(e.AI) {
		return fmt.Errorf("AI %q: must be 2 to 4 digits: %w", e.AI, databar.ErrInvalidValue)
	}
	dl, ok := lookupAI(e.AI)
	if !ok {
		return fmt.Errorf("AI %q: unsupported: %w", e.AI, databar.ErrInvalidValue)
	}
	if dl.variable {
		if len(e.Data) < 1 || len(e.Data) > dl.length {
			return fmt.Errorf("AI %q: data length %d not in 1..%d: %w", e.AI, len(e.Data), dl.length, databar.ErrInvalidValue)
		}
	} else if len(e.Data) != dl.length {
		return fmt.Errorf("AI %q: data length %d, want %d: %w", e.AI, len(e.Data), dl.length, databar.ErrInvalidValue)
	}
	for i := 0; i < len(e.Data); i++ {
		c := e.Data[i]
		if c == ')' || !Encodable(c) {
			return fmt.Errorf("AI %q: invalid character %q: %w", e.AI, c, databar.ErrInvalidValue)
		}
	}
	if numericAI(e.AI) && !IsDigits(e.Data) {
		return fmt.Errorf("AI %q: data must be digits: %w", e.AI, databar.ErrInvalidValue)
	}
	if checkDigitAI(e.AI) && !ValidCheckDigit(e.Data) {
		return fmt.Errorf("AI %q: bad check digit: %w", e.AI, databar.ErrInvalidValue)
	}
	if dateAI(e.AI) {
		mm := int(e.Data[2]-'0')*10 + int(e.Data[3]-'0')
		dd := int(e.Data[4]-'0')*10 + int(e.Data[5]-'0')
		if mm < 1 || mm > 12 || dd > 31 {
			return fmt.Errorf("AI %q: invalid date %s: %w", e.AI, e.Data, databar.ErrInvalidValue)
		}
	}
	return nil
}

// Reduce joins elements without brackets, inserting FNC1 after each
// variable length element that is not the last.
func Reduce(elements []Element) string {
	var sb strings.Builder
	for i, e := range elements {
		sb.WriteString(e.AI)
		sb.WriteString(e.Data)
		if i < len(elements)-1 && NeedsSeparator(e.AI) {
			sb.WriteByte(FNC1)
		}
	}
	return sb.String()
}

// Caption joins elements in bracketed form for human reading.
func Caption(elements []Element) string {
	var sb strings.Builder
	for _, e := range elements {
		sb.WriteString(e.String())
	}
	return sb.String()
}
