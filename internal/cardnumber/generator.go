package cardnumber

import (
	"fmt"
	"math/rand/v2"
	"strings"
	"sync"
	"time"
)

const (
	// DefaultIssuerPrefix is the issuer identification number every minted card starts with.
	DefaultIssuerPrefix = "400000"

	// IssuerPrefixLength is the number of leading digits reserved for the issuer.
	IssuerPrefixLength = 6

	// NumberLength is the full length of a card number including its check digit.
	NumberLength = 16

	// PinLength is the number of digits in a PIN.
	PinLength = 4

	accountDigits = NumberLength - IssuerPrefixLength - 1
)

// Generator mints card numbers and PINs from a random source.
// It is safe for concurrent use.
type Generator struct {
	prefix string

	mu  sync.Mutex
	rnd *rand.Rand
}

var (
	defaultOnce      sync.Once
	defaultGenerator *Generator
)

// Default returns the process-wide generator seeded from the clock.
func Default() *Generator {
	defaultOnce.Do(func() {
		now := uint64(time.Now().UnixNano())
		g, err := NewGenerator(DefaultIssuerPrefix, rand.NewPCG(now, now>>32|1))
		if err != nil {
			panic(err)
		}
		defaultGenerator = g
	})
	return defaultGenerator
}

// NewGenerator creates a Generator for the given issuer prefix. Tests pass a seeded source
// to make output reproducible.
func NewGenerator(prefix string, src rand.Source) (*Generator, error) {
	if err := ValidateIssuerPrefix(prefix); err != nil {
		return nil, err
	}
	if src == nil {
		return nil, fmt.Errorf("cardnumber: nil random source")
	}
	return &Generator{
		prefix: prefix,
		rnd:    rand.New(src),
	}, nil
}

// ValidateIssuerPrefix checks that prefix is exactly six decimal digits.
func ValidateIssuerPrefix(prefix string) error {
	if len(prefix) != IssuerPrefixLength {
		return fmt.Errorf("cardnumber: issuer prefix %q must be %d digits", prefix, IssuerPrefixLength)
	}
	if _, err := Checksum(prefix); err != nil {
		return fmt.Errorf("cardnumber: issuer prefix %q: %w", prefix, err)
	}
	return nil
}

// Prefix returns the issuer prefix.
func (g *Generator) Prefix() string {
	return g.prefix
}

// GeneratePin returns four independently drawn random digits.
func (g *Generator) GeneratePin() string {
	return g.randomDigits(PinLength)
}

// GenerateAccountNumber returns a 16-digit Luhn-valid number: the issuer prefix, nine
// random digits and the check digit.
func (g *Generator) GenerateAccountNumber() string {
	base := g.prefix + g.randomDigits(accountDigits)

	// base is always digits, so the error is unreachable.
	check, _ := CheckDigit(base)

	return base + string(rune('0'+check))
}

func (g *Generator) randomDigits(n int) string {
	g.mu.Lock()
	defer g.mu.Unlock()

	var b strings.Builder
	b.Grow(n)
	for i := 0; i < n; i++ {
		b.WriteByte(byte('0' + g.rnd.IntN(10)))
	}
	return b.String()
}
