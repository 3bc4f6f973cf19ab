// Package validator adapts the fiscal identifier engine to declarative,
// translation-friendly form validation.
//
// A Rule pairs a Check function with a ValidationError describing the
// failure. Apply evaluates any number of rules and aggregates failures into
// ValidationErrors, which implements error and matches ErrValidationFailed
// through errors.Is.
//
// # Identifier rules
//
//   - ValidCodiceFiscale, ValidPartitaIVA, ValidIBAN – structural and checksum
//     validation. Empty values pass because the identifiers are optional on
//     most records.
//   - RequiredIdentifier – rejects empty values for mandatory fields.
//   - CodiceFiscaleMatches – checks a tax code against the person it should
//     belong to.
//
// Every failure carries a Code equal to the fiscal.ErrorKind name and a
// TranslationKey of the form "validation.<identifier>.<kind>", for example
// "validation.iban.wrong_country". Messages are short English fallbacks;
// localisation is left to the caller.
//
// # Usage
//
//	err := validator.Apply(
//		validator.RequiredIdentifier("tax_code", form.TaxCode),
//		validator.ValidCodiceFiscale("tax_code", form.TaxCode),
//		validator.ValidPartitaIVA("vat_number", form.VATNumber),
//		validator.When(form.PaysByTransfer, validator.ValidIBAN("iban", form.IBAN)),
//	)
//	if verrs := validator.ExtractValidationErrors(err); verrs != nil {
//		for _, f := range verrs.Fields() {
//			// render verrs.GetErrors(f) next to the field
//		}
//	}
package validator
