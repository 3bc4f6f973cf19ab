package validator

import (
	"strings"

	"github.com/dmitrymomot/fiscalkit/pkg/fiscal"
)

// Identifier names used in translation keys.
const (
	identifierCodiceFiscale = "codice_fiscale"
	identifierPartitaIVA    = "partita_iva"
	identifierIBAN          = "iban"
)

var kindMessages = map[fiscal.ErrorKind]string{
	fiscal.KindBadLength:        "has an invalid length",
	fiscal.KindBadFormat:        "has an invalid format",
	fiscal.KindNonNumeric:       "must contain digits only",
	fiscal.KindWrongCountry:     "must be an Italian IBAN",
	fiscal.KindChecksumMismatch: "has an invalid check character",
}

// ValidCodiceFiscale validates an Italian personal tax code.
// Empty values pass; combine with RequiredIdentifier for mandatory fields.
func ValidCodiceFiscale(field, value string) Rule {
	return outcomeRule(field, identifierCodiceFiscale, fiscal.ValidateCodiceFiscale(value))
}

// ValidPartitaIVA validates an Italian VAT number. Empty values pass.
func ValidPartitaIVA(field, value string) Rule {
	return outcomeRule(field, identifierPartitaIVA, fiscal.ValidatePartitaIVA(value))
}

// ValidIBAN validates an Italian IBAN. Empty values pass.
func ValidIBAN(field, value string) Rule {
	return outcomeRule(field, identifierIBAN, fiscal.ValidateIBAN(value))
}

// RequiredIdentifier fails when value is empty after whitespace removal.
func RequiredIdentifier(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return fiscal.Normalize(value) != ""
		},
		Error: ValidationError{
			Field:          field,
			Code:           "required",
			Message:        ErrFieldRequired.Error(),
			TranslationKey: "validation.required",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

// CodiceFiscaleMatches checks that the first 15 characters of code are the
// ones derived from facts, i.e. the code belongs to that person. The control
// letter is not compared; pair it with ValidCodiceFiscale. Empty codes pass.
func CodiceFiscaleMatches(field, code string, facts fiscal.PersonalIdentityFacts) Rule {
	return Rule{
		Check: func() bool {
			c := fiscal.Normalize(code)
			if c == "" {
				return true
			}
			if len(c) < 15 {
				return false
			}
			return strings.HasPrefix(fiscal.Derive(facts), c[:15])
		},
		Error: ValidationError{
			Field:          field,
			Code:           "mismatch",
			Message:        "does not match the personal data",
			TranslationKey: "validation.codice_fiscale.mismatch",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

// outcomeRule wraps an outcome computed at construction time; the rule's
// Error reflects its kind.
func outcomeRule(field, identifier string, out fiscal.Outcome) Rule {
	return Rule{
		Check: func() bool {
			return out.Valid
		},
		Error: ValidationError{
			Field:          field,
			Code:           out.Kind.String(),
			Message:        kindMessages[out.Kind],
			TranslationKey: "validation." + identifier + "." + out.Kind.String(),
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}
