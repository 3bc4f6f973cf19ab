package bankregistry

import (
	"context"
	"errors"
)

var (
	ErrBankNotFound    = errors.New("bank not found")
	ErrInvalidBankCode = errors.New("bank code must be 5 digits")
	ErrInvalidIBAN     = errors.New("iban is not a valid italian iban")
	ErrLoadRegistry    = errors.New("failed to load bank registry")
)

// Bank is a registry entry keyed by its ABI code.
type Bank struct {
	ABI  string `yaml:"abi" json:"abi"`
	Name string `yaml:"name" json:"name"`
	BIC  string `yaml:"bic,omitempty" json:"bic,omitempty"`
}

// Registry resolves ABI bank codes to banks.
// Implementations return ErrBankNotFound for unknown codes.
type Registry interface {
	Lookup(ctx context.Context, abi string) (Bank, error)
}

// RegistryFunc adapts a function to the Registry interface.
type RegistryFunc func(ctx context.Context, abi string) (Bank, error)

func (f RegistryFunc) Lookup(ctx context.Context, abi string) (Bank, error) {
	return f(ctx, abi)
}

func validABI(abi string) bool {
	if len(abi) != 5 {
		return false
	}
	for i := 0; i < len(abi); i++ {
		if abi[i] < '0' || abi[i] > '9' {
			return false
		}
	}
	return true
}
