package bankregistry

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed banks.yaml
var defaultTable []byte

type tableFile struct {
	Banks []Bank `yaml:"banks"`
}

// Static is an immutable in-memory registry.
type Static struct {
	banks map[string]Bank
}

// NewStatic builds a registry from the given banks. Later entries replace
// earlier ones with the same ABI.
func NewStatic(banks ...Bank) (*Static, error) {
	m := make(map[string]Bank, len(banks))
	for _, b := range banks {
		b.ABI = strings.TrimSpace(b.ABI)
		if !validABI(b.ABI) {
			return nil, fmt.Errorf("%w: %q", ErrInvalidBankCode, b.ABI)
		}
		if strings.TrimSpace(b.Name) == "" {
			return nil, fmt.Errorf("bank %s has no name", b.ABI)
		}
		m[b.ABI] = b
	}
	return &Static{banks: m}, nil
}

// Default returns the registry bundled with the package.
func Default() (*Static, error) {
	return parseTable(defaultTable)
}

// LoadYAML reads a registry from YAML of the form:
//
//	banks:
//	  - abi: "03069"
//	    name: Intesa Sanpaolo
//	    bic: BCITITMM
func LoadYAML(r io.Reader) (*Static, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Join(ErrLoadRegistry, err)
	}
	return parseTable(data)
}

// LoadFile reads a YAML registry from path.
func LoadFile(path string) (*Static, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Join(ErrLoadRegistry, err)
	}
	defer f.Close()
	return LoadYAML(f)
}

func parseTable(data []byte) (*Static, error) {
	var t tableFile
	if err := yaml.Unmarshal(data, &t); err != nil {
		return nil, errors.Join(ErrLoadRegistry, err)
	}
	s, err := NewStatic(t.Banks...)
	if err != nil {
		return nil, errors.Join(ErrLoadRegistry, err)
	}
	return s, nil
}

func (s *Static) Lookup(ctx context.Context, abi string) (Bank, error) {
	if err := ctx.Err(); err != nil {
		return Bank{}, err
	}
	if !validABI(abi) {
		return Bank{}, ErrInvalidBankCode
	}
	b, ok := s.banks[abi]
	if !ok {
		return Bank{}, ErrBankNotFound
	}
	return b, nil
}

// Len returns the number of banks in the registry.
func (s *Static) Len() int { return len(s.banks) }

// Banks returns all entries ordered by ABI.
func (s *Static) Banks() []Bank {
	out := make([]Bank, 0, len(s.banks))
	for _, b := range s.banks {
		out = append(out, b)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ABI < out[j].ABI })
	return out
}
