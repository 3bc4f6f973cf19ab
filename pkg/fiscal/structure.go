package fiscal

import "regexp"

const (
	codiceFiscaleLength = 16
	partitaIVALength    = 11
	ibanLength          = 27
	ibanCountry         = "IT"
)

var (
	codiceFiscaleRegex = regexp.MustCompile(`^[A-Z]{6}[0-9]{2}[A-Z][0-9]{2}[A-Z][0-9]{3}[A-Z]$`)
	partitaIVARegex    = regexp.MustCompile(`^[0-9]{11}$`)
	ibanRegex          = regexp.MustCompile(`^IT[0-9]{2}[A-Z][0-9]{10}[A-Z0-9]{12}$`)
)

// checkCodiceFiscaleStructure expects a normalized, non-empty value.
func checkCodiceFiscaleStructure(s string) ErrorKind {
	if len(s) != codiceFiscaleLength {
		return KindBadLength
	}
	if !codiceFiscaleRegex.MatchString(s) {
		return KindBadFormat
	}
	return KindNone
}

func checkPartitaIVAStructure(s string) ErrorKind {
	if len(s) != partitaIVALength {
		return KindBadLength
	}
	if !partitaIVARegex.MatchString(s) {
		return KindNonNumeric
	}
	return KindNone
}

func checkIBANStructure(s string) ErrorKind {
	if len(s) != ibanLength {
		return KindBadLength
	}
	if s[:2] != ibanCountry {
		return KindWrongCountry
	}
	if !ibanRegex.MatchString(s) {
		return KindBadFormat
	}
	return KindNone
}
