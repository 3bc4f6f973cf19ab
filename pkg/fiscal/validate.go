package fiscal

// ValidateCodiceFiscale checks length, letter/digit layout and the control
// letter of a codice fiscale. Empty input is valid.
func ValidateCodiceFiscale(s string) Outcome {
	s = Normalize(s)
	if s == "" {
		return valid()
	}
	if k := checkCodiceFiscaleStructure(s); k != KindNone {
		return invalid(k)
	}

	if want, _ := CodiceFiscaleCheckChar(s); want != s[15] {
		return invalid(KindChecksumMismatch)
	}
	return valid()
}

// ValidatePartitaIVA checks that a partita IVA has 11 digits and a matching
// check digit. Empty input is valid.
func ValidatePartitaIVA(s string) Outcome {
	s = Normalize(s)
	if s == "" {
		return valid()
	}
	if k := checkPartitaIVAStructure(s); k != KindNone {
		return invalid(k)
	}

	if want, _ := PartitaIVACheckDigit(s); want != s[10] {
		return invalid(KindChecksumMismatch)
	}
	return valid()
}

// ValidateIBAN checks that an IBAN is a well formed Italian account number
// whose mod-97 remainder is 1. Foreign IBANs are rejected by length or
// country code. Empty input is valid.
func ValidateIBAN(s string) Outcome {
	s = Normalize(s)
	if s == "" {
		return valid()
	}
	if k := checkIBANStructure(s); k != KindNone {
		return invalid(k)
	}

	if rem, _ := IBANMod97(s); rem != 1 {
		return invalid(KindChecksumMismatch)
	}
	return valid()
}
