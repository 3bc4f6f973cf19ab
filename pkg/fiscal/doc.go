// Package fiscal validates Italian fiscal identifiers and derives the personal
// tax code from biographical data.
//
// Three identifiers are supported:
//
//   - Codice Fiscale – the 16 character personal tax code. It can be validated
//     with ValidateCodiceFiscale and computed with Derive.
//   - Partita IVA – the 11 digit VAT registration number, validated with
//     ValidatePartitaIVA.
//   - IBAN – Italian bank account numbers (27 characters, "IT" prefix),
//     validated with ValidateIBAN and split into bank/branch/account segments
//     with ExtractIBANComponents.
//
// Validation only checks the internal structure and check characters of an
// identifier. It does not confirm that a code has been assigned by the tax
// authority or that a bank account exists.
//
// # Optional fields
//
// Every validator treats an empty input (after whitespace removal) as valid.
// These identifiers are optional on most records, so "nothing to check" is a
// success. Callers that need a required field must check for emptiness
// themselves.
//
// # Outcomes
//
// Validators never panic and never return errors. They return an Outcome
// value holding a validity flag and, on failure, an ErrorKind describing what
// went wrong. ErrorKind.Err maps each kind to a sentinel error so that callers
// can use errors.Is, and ErrorKind.String yields a stable snake_case name
// suitable for translation keys.
//
//	out := fiscal.ValidatePartitaIVA("123 456 789 03")
//	if !out.Valid {
//		return fmt.Errorf("partita iva: %w", out.Kind.Err())
//	}
//
// # Derivation
//
//	code := fiscal.Derive(fiscal.PersonalIdentityFacts{
//		Surname:      "Rossi",
//		GivenName:    "Mario",
//		BirthDate:    time.Date(1980, time.January, 1, 0, 0, 0, 0, time.UTC),
//		Sex:          fiscal.Male,
//		Municipality: "H501",
//	})
//	// code == "RSSMRA80A01H501U"
//
// # Concurrency
//
// All functions are pure and operate on package-level read-only tables, so
// they are safe for concurrent use without synchronisation.
package fiscal
