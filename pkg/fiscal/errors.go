package fiscal

import "errors"

// ErrorKind classifies why an identifier was rejected.
type ErrorKind uint8

const (
	// KindNone is the kind of a valid outcome.
	KindNone ErrorKind = iota
	// KindBadLength means the normalized identifier has the wrong length.
	KindBadLength
	// KindBadFormat means a character does not match the expected class
	// (letter, digit, alphanumeric) for its position.
	KindBadFormat
	// KindNonNumeric means a digits-only identifier contains other characters.
	KindNonNumeric
	// KindWrongCountry means an IBAN does not carry the IT country code.
	KindWrongCountry
	// KindChecksumMismatch means the structure is correct but the check
	// character does not match the computed one.
	KindChecksumMismatch
)

var (
	ErrBadLength        = errors.New("identifier has invalid length")
	ErrBadFormat        = errors.New("identifier has invalid format")
	ErrNonNumeric       = errors.New("identifier must contain digits only")
	ErrWrongCountry     = errors.New("iban is not an italian account")
	ErrChecksumMismatch = errors.New("identifier checksum mismatch")
)

var kindNames = [...]string{
	KindNone:             "none",
	KindBadLength:        "bad_length",
	KindBadFormat:        "bad_format",
	KindNonNumeric:       "non_numeric",
	KindWrongCountry:     "wrong_country",
	KindChecksumMismatch: "checksum_mismatch",
}

// String returns the snake_case name of the kind.
func (k ErrorKind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// Err returns the sentinel error for the kind, or nil for KindNone.
func (k ErrorKind) Err() error {
	switch k {
	case KindBadLength:
		return ErrBadLength
	case KindBadFormat:
		return ErrBadFormat
	case KindNonNumeric:
		return ErrNonNumeric
	case KindWrongCountry:
		return ErrWrongCountry
	case KindChecksumMismatch:
		return ErrChecksumMismatch
	default:
		return nil
	}
}

// Outcome is the result of validating a single identifier.
// Kind is KindNone whenever Valid is true.
type Outcome struct {
	Valid bool
	Kind  ErrorKind
}

// Err returns nil for a valid outcome and the kind's sentinel error otherwise.
func (o Outcome) Err() error {
	if o.Valid {
		return nil
	}
	return o.Kind.Err()
}

func valid() Outcome { return Outcome{Valid: true} }

func invalid(k ErrorKind) Outcome { return Outcome{Kind: k} }
