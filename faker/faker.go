// Package faker supplies plausible random values (names, emails, addresses,
// lorem text, image URLs, timestamps) from a single seeded source. It makes
// no statistical promises beyond value shape; uniqueness is the caller's
// concern.
package faker

import (
	"fmt"
	"math/rand"
	"strings"
	"time"
)

type Faker struct {
	r   *rand.Rand
	now time.Time
}

// New returns a faker backed by its own rand source, so repeated runs with
// the same seed produce the same value stream.
func New(seed int64) *Faker {
	return &Faker{r: rand.New(rand.NewSource(seed)), now: time.Now().UTC()}
}

// Intn mirrors rand.Intn on the faker's source.
func (f *Faker) Intn(n int) int { return f.r.Intn(n) }

// IntBetween returns a uniform integer in [min, max] inclusive.
func (f *Faker) IntBetween(min, max int) int {
	return min + f.r.Intn(max-min+1)
}

// Float64Between returns a uniform float in [min, max).
func (f *Faker) Float64Between(min, max float64) float64 {
	return min + f.r.Float64()*(max-min)
}

// Bool is a fair coin flip.
func (f *Faker) Bool() bool { return f.r.Intn(2) == 0 }

// Pick returns one element of items uniformly.
func (f *Faker) Pick(items []string) string {
	return items[f.r.Intn(len(items))]
}

// Perm returns a random permutation of [0, n).
func (f *Faker) Perm(n int) []int { return f.r.Perm(n) }

func (f *Faker) FirstName() string { return f.Pick(firstNames) }

func (f *Faker) Name() string {
	return f.Pick(firstNames) + " " + f.Pick(lastNames)
}

// Email builds a name-based address. Collisions are possible; callers that
// need uniqueness run it through a registry retry loop.
func (f *Faker) Email() string {
	local := strings.ToLower(f.Pick(firstNames)) + "." + strings.ToLower(f.Pick(lastNames))
	return fmt.Sprintf("%s%d@%s", local, f.IntBetween(1, 9999), f.Pick(emailDomains))
}

func (f *Faker) StreetAddress() string {
	return fmt.Sprintf("%d %s %s", f.IntBetween(1, 9999), f.Pick(lastNames), f.Pick(streetSuffixes))
}

func (f *Faker) City() string { return f.Pick(cities) }

func (f *Faker) State() string { return f.Pick(states) }

func (f *Faker) ZipCode() string { return fmt.Sprintf("%05d", f.Intn(100000)) }

func (f *Faker) Company() string {
	return f.Pick(lastNames) + " " + f.Pick(companySuffixes)
}

func (f *Faker) Word() string { return f.Pick(loremWords) }

// CapitalizedWord returns a single word with an upper-cased first letter.
func (f *Faker) CapitalizedWord() string {
	w := f.Pick(loremWords)
	return strings.ToUpper(w[:1]) + w[1:]
}

// Words returns n lorem words.
func (f *Faker) Words(n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = f.Pick(loremWords)
	}
	return out
}

// Sentence returns roughly n words, capitalized, period-terminated.
func (f *Faker) Sentence(n int) string {
	s := strings.Join(f.Words(n), " ")
	return strings.ToUpper(s[:1]) + s[1:] + "."
}

// Text joins sentences until just under maxChars.
func (f *Faker) Text(maxChars int) string {
	var b strings.Builder
	for {
		s := f.Sentence(f.IntBetween(4, 10))
		if b.Len()+len(s)+1 > maxChars {
			break
		}
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(s)
	}
	if b.Len() == 0 {
		s := f.Sentence(3)
		if len(s) > maxChars {
			s = s[:maxChars]
		}
		return s
	}
	return b.String()
}

func (f *Faker) ImageURL() string {
	return fmt.Sprintf("https://picsum.photos/640/480?image=%d", f.Intn(1000))
}

// TimeBetween returns a uniform instant in [start, end), truncated to whole
// seconds so encoded timestamps survive a JSON round trip unchanged.
func (f *Faker) TimeBetween(start, end time.Time) time.Time {
	span := end.Unix() - start.Unix()
	if span <= 0 {
		return start
	}
	return time.Unix(start.Unix()+f.r.Int63n(span), 0).UTC()
}

// PastTime returns an instant within the last maxAge, relative to the
// faker's construction time.
func (f *Faker) PastTime(maxAge time.Duration) time.Time {
	return f.TimeBetween(f.now.Add(-maxAge), f.now)
}
