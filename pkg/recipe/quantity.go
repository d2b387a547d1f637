package recipe

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Quantity is an exact positive rational amount. Ingredient quantities are
// nullable on the wire, so a nil *Quantity means "no amount given".
type Quantity struct {
	num int64
	den int64
}

// NewQuantity builds a normalized quantity. den must be positive.
func NewQuantity(num, den int64) (*Quantity, error) {
	if den <= 0 {
		return nil, fmt.Errorf("quantity: invalid denominator %d", den)
	}
	if num < 0 {
		return nil, fmt.Errorf("quantity: negative amount %d/%d", num, den)
	}
	q := &Quantity{num: num, den: den}
	q.reduce()
	return q, nil
}

// WholeQuantity is the common case of an integral amount.
func WholeQuantity(n int64) *Quantity {
	return &Quantity{num: n, den: 1}
}

// ParseQuantity accepts "", "3", "0.5", "1/2" and "1 1/2". The empty string
// parses to nil.
func ParseQuantity(s string) (*Quantity, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}

	// mixed fraction: whole part then a fraction
	if parts := strings.Fields(s); len(parts) == 2 && strings.Contains(parts[1], "/") {
		whole, err := strconv.ParseInt(parts[0], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("quantity: parse %q: %w", s, err)
		}
		frac, err := ParseQuantity(parts[1])
		if err != nil {
			return nil, err
		}
		return WholeQuantity(whole).Add(frac), nil
	}

	if num, den, ok := strings.Cut(s, "/"); ok {
		n, err := strconv.ParseInt(strings.TrimSpace(num), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("quantity: parse %q: %w", s, err)
		}
		d, err := strconv.ParseInt(strings.TrimSpace(den), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("quantity: parse %q: %w", s, err)
		}
		return NewQuantity(n, d)
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, fmt.Errorf("quantity: parse %q: %w", s, err)
	}
	return quantityFromFloat(f)
}

// quantityFromFloat converts a decimal to an exact rational by scaling out
// the fractional digits. Amounts on the wire carry at most a few decimals.
func quantityFromFloat(f float64) (*Quantity, error) {
	if f < 0 || math.IsNaN(f) || math.IsInf(f, 0) {
		return nil, fmt.Errorf("quantity: invalid amount %v", f)
	}
	den := int64(1)
	for f != math.Trunc(f) && den < 1_000_000 {
		f *= 10
		den *= 10
	}
	return NewQuantity(int64(math.Round(f)), den)
}

// Add returns the sum. A nil receiver or argument counts as zero.
func (q *Quantity) Add(o *Quantity) *Quantity {
	if q == nil {
		if o == nil {
			return nil
		}
		c := *o
		return &c
	}
	if o == nil {
		c := *q
		return &c
	}
	sum := &Quantity{num: q.num*o.den + o.num*q.den, den: q.den * o.den}
	sum.reduce()
	return sum
}

// Scale multiplies by num/den, leaving the receiver untouched.
func (q *Quantity) Scale(num, den int64) *Quantity {
	if q == nil {
		return nil
	}
	scaled := &Quantity{num: q.num * num, den: q.den * den}
	scaled.reduce()
	return scaled
}

// Float is a display-only approximation; comparisons use the exact form.
func (q *Quantity) Float() float64 {
	if q == nil {
		return 0
	}
	return float64(q.num) / float64(q.den)
}

// String renders mixed fractions: "3", "1/2", "1 1/2".
func (q *Quantity) String() string {
	if q == nil {
		return ""
	}
	if q.den == 1 {
		return strconv.FormatInt(q.num, 10)
	}
	whole := q.num / q.den
	rem := q.num % q.den
	if whole == 0 {
		return fmt.Sprintf("%d/%d", rem, q.den)
	}
	return fmt.Sprintf("%d %d/%d", whole, rem, q.den)
}

func (q *Quantity) reduce() {
	if q.den < 0 {
		q.num, q.den = -q.num, -q.den
	}
	g := gcd(abs(q.num), q.den)
	if g > 1 {
		q.num /= g
		q.den /= g
	}
}

func (q *Quantity) MarshalJSON() ([]byte, error) {
	if q == nil {
		return []byte("null"), nil
	}
	if q.den == 1 {
		return []byte(strconv.FormatInt(q.num, 10)), nil
	}
	// exact decimals stay numbers so the wire shape matches the service
	if isDecimalDen(q.den) {
		return json.Marshal(q.Float())
	}
	return json.Marshal(fmt.Sprintf("%d/%d", q.num, q.den))
}

func (q *Quantity) UnmarshalJSON(b []byte) error {
	if q == nil {
		return errors.New("quantity: unmarshal into nil")
	}
	var f float64
	if err := json.Unmarshal(b, &f); err == nil {
		parsed, err := quantityFromFloat(f)
		if err != nil {
			return err
		}
		*q = *parsed
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return fmt.Errorf("quantity: unmarshal %s", string(b))
	}
	parsed, err := ParseQuantity(s)
	if err != nil {
		return err
	}
	if parsed == nil {
		return errors.New("quantity: empty string")
	}
	*q = *parsed
	return nil
}

func isDecimalDen(den int64) bool {
	for den%2 == 0 {
		den /= 2
	}
	for den%5 == 0 {
		den /= 5
	}
	return den == 1
}

func gcd(a, b int64) int64 {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

func abs(n int64) int64 {
	if n < 0 {
		return -n
	}
	return n
}
