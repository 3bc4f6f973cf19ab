package fiscal

import "strings"

// IBANComponents is a read-only view over the segments of an Italian IBAN.
type IBANComponents struct {
	CountryCode   string
	CheckDigits   string
	CIN           string
	BankCode      string // ABI
	BranchCode    string // CAB
	AccountNumber string
}

// ExtractIBANComponents splits a structurally valid Italian IBAN into its
// segments. The mod-97 checksum is not verified, so a mistyped but well
// formed IBAN can still be split. ok is false if the structure is invalid.
func ExtractIBANComponents(s string) (IBANComponents, bool) {
	s = Normalize(s)
	if s == "" || checkIBANStructure(s) != KindNone {
		return IBANComponents{}, false
	}

	return IBANComponents{
		CountryCode:   s[0:2],
		CheckDigits:   s[2:4],
		CIN:           s[4:5],
		BankCode:      s[5:10],
		BranchCode:    s[10:15],
		AccountNumber: s[15:27],
	}, true
}

// IBAN reassembles the electronic form of the IBAN.
func (c IBANComponents) IBAN() string {
	return c.CountryCode + c.CheckDigits + c.CIN + c.BankCode + c.BranchCode + c.AccountNumber
}

// String returns the IBAN in print format, grouped by four characters.
func (c IBANComponents) String() string {
	return FormatIBAN(c.IBAN())
}

// FormatIBAN normalizes s and groups it by four characters separated by
// spaces, as IBANs are printed on paper.
func FormatIBAN(s string) string {
	s = Normalize(s)
	var b strings.Builder
	b.Grow(len(s) + len(s)/4)
	for i := 0; i < len(s); i++ {
		if i > 0 && i%4 == 0 {
			b.WriteByte(' ')
		}
		b.WriteByte(s[i])
	}
	return b.String()
}
