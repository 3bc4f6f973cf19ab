package fiscal_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/fiscalkit/pkg/fiscal"
)

func TestValidateCodiceFiscale(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		kind  fiscal.ErrorKind
	}{
		{"empty is valid", "", fiscal.KindNone},
		{"whitespace only is valid", "  \t\n", fiscal.KindNone},
		{"valid male", "RSSMRA80A01H501U", fiscal.KindNone},
		{"valid female", "RSSMRA80A41H501Y", fiscal.KindNone},
		{"valid lowercase with spaces", " rssmra 80a01 h501u ", fiscal.KindNone},
		{"valid other", "BNCGPP85T10F205B", fiscal.KindNone},
		{"structurally valid with wrong control letter", "RSSMRA80A01H501Z", fiscal.KindChecksumMismatch},
		{"too short", "RSSMRA80A01H501", fiscal.KindBadLength},
		{"too long", "RSSMRA80A01H501UU", fiscal.KindBadLength},
		{"digit in surname block", "RSSMR180A01H501U", fiscal.KindBadFormat},
		{"letter in year", "RSSMRAB0A01H501U", fiscal.KindBadFormat},
		{"digit in month position", "RSSMRA80101H501U", fiscal.KindBadFormat},
		{"letter in municipality digits", "RSSMRA80A01H5O1U", fiscal.KindBadFormat},
		{"digit as control char", "RSSMRA80A01H5011", fiscal.KindBadFormat},
		{"punctuation", "RSSMRA80A01H501-", fiscal.KindBadFormat},
		{"non ascii of matching byte length", "RSSMRA80A01H50È", fiscal.KindBadFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			out := fiscal.ValidateCodiceFiscale(tt.input)
			assert.Equal(t, tt.kind == fiscal.KindNone, out.Valid)
			assert.Equal(t, tt.kind, out.Kind)
		})
	}
}

func TestValidatePartitaIVA(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		kind  fiscal.ErrorKind
	}{
		{"empty is valid", "", fiscal.KindNone},
		{"known vector", "12345678903", fiscal.KindNone},
		{"with spaces", "123 456 789 03", fiscal.KindNone},
		{"all zeros", "00000000000", fiscal.KindNone},
		{"all nines", "99999999990", fiscal.KindNone},
		{"doubled nine boundary", "09090909095", fiscal.KindNone},
		{"even positions are not doubled", "90909090905", fiscal.KindNone},
		{"wrong check digit", "12345678901", fiscal.KindChecksumMismatch},
		{"nine subtracted twice", "09090909090", fiscal.KindChecksumMismatch},
		{"too short", "1234567890", fiscal.KindBadLength},
		{"too long", "123456789031", fiscal.KindBadLength},
		{"letter", "1234567890A", fiscal.KindNonNumeric},
		{"dash", "12345-67890", fiscal.KindNonNumeric},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			out := fiscal.ValidatePartitaIVA(tt.input)
			assert.Equal(t, tt.kind == fiscal.KindNone, out.Valid)
			assert.Equal(t, tt.kind, out.Kind)
		})
	}
}

func TestValidateIBAN(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		kind  fiscal.ErrorKind
	}{
		{"empty is valid", "", fiscal.KindNone},
		{"known vector", "IT60X0542811101000000123456", fiscal.KindNone},
		{"print format", "IT60 X054 2811 1010 0000 0123 456", fiscal.KindNone},
		{"lowercase", "it60x0542811101000000123456", fiscal.KindNone},
		{"letters in account across chunk boundary", "IT74Z03069096060Z0000000001", fiscal.KindNone},
		{"Z in cin and account", "IT80Z03069096060000000ZZ123", fiscal.KindNone},
		{"last digit perturbed", "IT60X0542811101000000123457", fiscal.KindChecksumMismatch},
		{"check digits perturbed", "IT61X0542811101000000123456", fiscal.KindChecksumMismatch},
		{"german iban", "DE89370400440532013000", fiscal.KindBadLength},
		{"foreign country with italian length", "FR60X0542811101000000123456", fiscal.KindWrongCountry},
		{"too short", "IT60X054281110100000012345", fiscal.KindBadLength},
		{"digit as cin", "IT6010542811101000000123456", fiscal.KindBadFormat},
		{"letter in abi", "IT60X05428A1101000000123456", fiscal.KindBadFormat},
		{"letter in check digits", "IT6AX0542811101000000123456", fiscal.KindBadFormat},
		{"symbol in account", "IT60X054281110100000012345*", fiscal.KindBadFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			out := fiscal.ValidateIBAN(tt.input)
			assert.Equal(t, tt.kind == fiscal.KindNone, out.Valid)
			assert.Equal(t, tt.kind, out.Kind)
		})
	}
}

func TestValidatorsAreDeterministic(t *testing.T) {
	t.Parallel()

	inputs := []string{"", "RSSMRA80A01H501Z", "12345678901", "IT60X0542811101000000123457", "garbage"}
	for _, in := range inputs {
		assert.Equal(t, fiscal.ValidateCodiceFiscale(in), fiscal.ValidateCodiceFiscale(in))
		assert.Equal(t, fiscal.ValidatePartitaIVA(in), fiscal.ValidatePartitaIVA(in))
		assert.Equal(t, fiscal.ValidateIBAN(in), fiscal.ValidateIBAN(in))
	}
}

func TestOutcomeErr(t *testing.T) {
	t.Parallel()

	assert.NoError(t, fiscal.ValidateIBAN("").Err())
	assert.NoError(t, fiscal.ValidatePartitaIVA("12345678903").Err())

	err := fiscal.ValidatePartitaIVA("12345678901").Err()
	assert.True(t, errors.Is(err, fiscal.ErrChecksumMismatch))

	err = fiscal.ValidateIBAN("FR60X0542811101000000123456").Err()
	assert.ErrorIs(t, err, fiscal.ErrWrongCountry)
}

func TestErrorKindString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "none", fiscal.KindNone.String())
	assert.Equal(t, "bad_length", fiscal.KindBadLength.String())
	assert.Equal(t, "bad_format", fiscal.KindBadFormat.String())
	assert.Equal(t, "non_numeric", fiscal.KindNonNumeric.String())
	assert.Equal(t, "wrong_country", fiscal.KindWrongCountry.String())
	assert.Equal(t, "checksum_mismatch", fiscal.KindChecksumMismatch.String())
	assert.Equal(t, "unknown", fiscal.ErrorKind(200).String())
	assert.Nil(t, fiscal.KindNone.Err())
}
