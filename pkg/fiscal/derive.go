package fiscal

import (
	"fmt"
	"strings"
	"time"
)

// Sex is the biological sex recorded in a codice fiscale.
type Sex uint8

const (
	// SexUnknown derives the same day digits as Male.
	SexUnknown Sex = iota
	Male
	Female
)

const (
	femaleDayOffset   = 40
	noBirthDate       = "00A00"
	municipalityWidth = 4
	nameWidth         = 3
)

// ParseSex accepts "M"/"F" in any case, surrounding whitespace included.
// Anything else yields SexUnknown.
func ParseSex(s string) Sex {
	switch Normalize(s) {
	case "M":
		return Male
	case "F":
		return Female
	default:
		return SexUnknown
	}
}

// String returns "M", "F" or "" for SexUnknown.
func (s Sex) String() string {
	switch s {
	case Male:
		return "M"
	case Female:
		return "F"
	default:
		return ""
	}
}

// PersonalIdentityFacts is the biographical input to Derive.
type PersonalIdentityFacts struct {
	Surname   string
	GivenName string
	// BirthDate is optional; the zero time produces the "00A00" segment.
	BirthDate time.Time
	Sex       Sex
	// Municipality is the cadastral code of the birth place (e.g. "H501" for
	// Rome). It is used as given apart from upper-casing and padding.
	Municipality string
}

// Derive computes the 16 character codice fiscale for the given facts.
// It never fails: missing names or municipality yield X padding and a
// missing birth date yields the "00A00" placeholder. The check letter is
// always computed over the first 15 characters, but the result only passes
// ValidateCodiceFiscale when Municipality is a well formed cadastral code
// (a letter followed by three digits). A padded or digit-first municipality
// fails with KindBadFormat.
func Derive(f PersonalIdentityFacts) string {
	var b strings.Builder
	b.Grow(codiceFiscaleLength)

	b.WriteString(surnameSegment(f.Surname))
	b.WriteString(givenNameSegment(f.GivenName))
	b.WriteString(dateSegment(f.BirthDate, f.Sex))
	b.WriteString(municipalitySegment(f.Municipality))

	code := b.String()
	check, _ := CodiceFiscaleCheckChar(code)
	return code + string(check)
}

func surnameSegment(s string) string {
	consonants, vowels := splitLetters(FoldName(s))
	return padName(consonants + vowels)
}

// givenNameSegment differs from the surname rule only when the name has four
// or more consonants: then the 1st, 3rd and 4th are used.
func givenNameSegment(s string) string {
	consonants, vowels := splitLetters(FoldName(s))
	if len(consonants) >= 4 {
		return string([]byte{consonants[0], consonants[2], consonants[3]})
	}
	return padName(consonants + vowels)
}

func dateSegment(d time.Time, sex Sex) string {
	if d.IsZero() {
		return noBirthDate
	}
	day := d.Day()
	if sex == Female {
		day += femaleDayOffset
	}
	return fmt.Sprintf("%02d%c%02d", d.Year()%100, MonthCode(d.Month()), day)
}

func municipalitySegment(s string) string {
	s = Normalize(s)
	var b strings.Builder
	b.Grow(municipalityWidth)
	for i := 0; i < len(s) && b.Len() < municipalityWidth; i++ {
		if alnumIndex(s[i]) >= 0 {
			b.WriteByte(s[i])
		}
	}
	for b.Len() < municipalityWidth {
		b.WriteByte(padChar)
	}
	return b.String()
}

// splitLetters expects the output of FoldName.
func splitLetters(s string) (consonants, vowels string) {
	var c, v strings.Builder
	for i := 0; i < len(s); i++ {
		if isVowel(s[i]) {
			v.WriteByte(s[i])
		} else {
			c.WriteByte(s[i])
		}
	}
	return c.String(), v.String()
}

func padName(s string) string {
	if len(s) >= nameWidth {
		return s[:nameWidth]
	}
	return s + strings.Repeat(string(padChar), nameWidth-len(s))
}
