package bankregistry_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/fiscalkit/pkg/bankregistry"
	"github.com/dmitrymomot/fiscalkit/pkg/fiscal"
	"github.com/dmitrymomot/fiscalkit/pkg/logger"
)

func TestEnrich(t *testing.T) {
	t.Parallel()

	reg, err := bankregistry.Default()
	require.NoError(t, err)
	e := bankregistry.NewEnricher(reg)
	ctx := context.Background()

	t.Run("known bank", func(t *testing.T) {
		res, err := e.Enrich(ctx, "IT60 X054 2811 1010 0000 0123 456")
		require.NoError(t, err)
		assert.True(t, res.Outcome.Valid)
		assert.Equal(t, "05428", res.Components.BankCode)
		assert.Equal(t, "11101", res.Components.BranchCode)
		require.True(t, res.BankFound)
		assert.Equal(t, "UBI Banca", res.Bank.Name)

		res, err = e.Enrich(ctx, "IT74Z03069096060Z0000000001")
		require.NoError(t, err)
		require.True(t, res.BankFound)
		assert.Equal(t, "Intesa Sanpaolo", res.Bank.Name)
	})

	t.Run("unknown bank is not an error", func(t *testing.T) {
		res, err := e.Enrich(ctx, mustIBAN(t, "Z", "99999", "12345", "000000000001"))
		require.NoError(t, err)
		assert.True(t, res.Outcome.Valid)
		assert.False(t, res.BankFound)
		assert.Equal(t, "99999", res.Components.BankCode)
	})

	t.Run("empty iban", func(t *testing.T) {
		res, err := e.Enrich(ctx, "  ")
		require.NoError(t, err)
		assert.True(t, res.Outcome.Valid)
		assert.False(t, res.BankFound)
		assert.Empty(t, res.Components.BankCode)
	})

	t.Run("checksum mismatch keeps components", func(t *testing.T) {
		res, err := e.Enrich(ctx, "IT60X0542811101000000123457")
		assert.ErrorIs(t, err, bankregistry.ErrInvalidIBAN)
		assert.ErrorIs(t, err, fiscal.ErrChecksumMismatch)
		assert.Equal(t, fiscal.KindChecksumMismatch, res.Outcome.Kind)
		assert.Equal(t, "05428", res.Components.BankCode)
		assert.False(t, res.BankFound)
	})

	t.Run("wrong country", func(t *testing.T) {
		res, err := e.Enrich(ctx, "FR60X0542811101000000123456")
		assert.ErrorIs(t, err, fiscal.ErrWrongCountry)
		assert.Empty(t, res.Components.BankCode)
	})
}

func TestEnrichLogsFailedLookups(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log := logger.New(logger.WithOutput(buf))
	failing := bankregistry.RegistryFunc(func(ctx context.Context, abi string) (bankregistry.Bank, error) {
		return bankregistry.Bank{}, errors.New("registry unavailable")
	})

	res, err := bankregistry.NewEnricher(failing, bankregistry.WithLogger(log)).
		Enrich(context.Background(), "IT60X0542811101000000123456")
	require.NoError(t, err)
	assert.True(t, res.Outcome.Valid)
	assert.False(t, res.BankFound)

	out := buf.String()
	assert.Contains(t, out, "bank lookup failed")
	assert.Contains(t, out, `"abi":"05428"`)
	assert.Contains(t, out, "registry unavailable")
	assert.NotContains(t, out, "IT60X0542811101000000123456")
}

// mustIBAN builds an Italian IBAN with correct check digits.
func mustIBAN(t *testing.T, cin, abi, cab, account string) string {
	t.Helper()
	bban := cin + abi + cab + account
	rem, ok := fiscal.IBANMod97("IT00" + bban)
	require.True(t, ok)
	check := 98 - rem
	iban := "IT" + string(rune('0'+check/10)) + string(rune('0'+check%10)) + bban
	require.True(t, fiscal.ValidateIBAN(iban).Valid, iban)
	return iban
}
