package fiscal

import "strconv"

const mod97Window = 7

// CodiceFiscaleCheckChar computes the control letter for the first 15
// characters of a codice fiscale. The input must be upper-case ASCII
// alphanumeric; ok is false otherwise or when fewer than 15 characters are
// given. Characters beyond the 15th are ignored.
func CodiceFiscaleCheckChar(s string) (c byte, ok bool) {
	if len(s) < 15 {
		return 0, false
	}

	sum := 0
	for i := range 15 {
		idx := alnumIndex(s[i])
		if idx < 0 {
			return 0, false
		}
		// Positions are 1-indexed in the official tables, so index 0 is "odd".
		if i%2 == 0 {
			sum += oddValues[idx]
		} else {
			sum += evenValues[idx]
		}
	}

	return alphabet[sum%26], true
}

// PartitaIVACheckDigit computes the check digit for the first 10 digits of a
// partita IVA. ok is false if fewer than 10 characters are given or any of
// them is not an ASCII digit.
func PartitaIVACheckDigit(s string) (c byte, ok bool) {
	if len(s) < 10 {
		return 0, false
	}

	sum := 0
	for i := range 10 {
		if !isDigit(s[i]) {
			return 0, false
		}
		d := int(s[i] - '0')
		if i%2 == 1 {
			d *= 2
			if d > 9 {
				d -= 9
			}
		}
		sum += d
	}

	return byte('0' + (10-sum%10)%10), true
}

// IBANMod97 returns the ISO 7064 mod-97 remainder of an IBAN. The first four
// characters are moved to the end, letters are replaced by their two digit
// value (A=10 ... Z=35) and the resulting numeral is reduced in windows of
// seven digits so the computation never overflows. A correct IBAN yields 1.
//
// ok is false when the input is shorter than five characters or contains
// anything but upper-case ASCII letters and digits.
func IBANMod97(s string) (rem int, ok bool) {
	if len(s) < 5 {
		return 0, false
	}

	numeral, ok := transliterate(s[4:] + s[:4])
	if !ok {
		return 0, false
	}

	for i := 0; i < len(numeral); i += mod97Window {
		end := min(i+mod97Window, len(numeral))
		chunk, err := strconv.Atoi(strconv.Itoa(rem) + numeral[i:end])
		if err != nil {
			return 0, false
		}
		rem = chunk % 97
	}

	return rem, true
}

func transliterate(s string) (string, bool) {
	buf := make([]byte, 0, len(s)*2)
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case isDigit(c):
			buf = append(buf, c)
		case isLetter(c):
			buf = strconv.AppendInt(buf, int64(c)-55, 10)
		default:
			return "", false
		}
	}
	return string(buf), true
}
