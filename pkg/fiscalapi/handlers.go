package fiscalapi

import (
	"errors"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/fiscalkit/pkg/bankregistry"
	"github.com/dmitrymomot/fiscalkit/pkg/fiscal"
	"github.com/dmitrymomot/fiscalkit/pkg/logger"
	"github.com/dmitrymomot/fiscalkit/pkg/validator"
)

const birthDateLayout = "2006-01-02"

// Identifier kinds accepted by /v1/validate/{kind}.
const (
	KindCodiceFiscale = "codice-fiscale"
	KindPartitaIVA    = "partita-iva"
	KindIBAN          = "iban"
)

var validators = map[string]func(string) fiscal.Outcome{
	KindCodiceFiscale: fiscal.ValidateCodiceFiscale,
	KindPartitaIVA:    fiscal.ValidatePartitaIVA,
	KindIBAN:          fiscal.ValidateIBAN,
}

type handlers struct {
	enricher *bankregistry.Enricher
	log      *slog.Logger
}

type validateRequest struct {
	Value string `json:"value"`
}

// ValidateResponse is returned by POST /v1/validate/{kind}.
type ValidateResponse struct {
	Valid     bool   `json:"valid"`
	ErrorKind string `json:"error_kind,omitempty"`
}

func (h *handlers) validate(w http.ResponseWriter, r *http.Request) {
	kind := chi.URLParam(r, "kind")
	check, ok := validators[kind]
	if !ok {
		writeError(w, r, h.log, http.StatusNotFound, "unknown_kind", ErrUnknownKind)
		return
	}

	var req validateRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, h.log, http.StatusBadRequest, "invalid_json", err)
		return
	}

	out := check(req.Value)
	resp := ValidateResponse{Valid: out.Valid}
	if !out.Valid {
		resp.ErrorKind = out.Kind.String()
		h.log.DebugContext(r.Context(), "identifier rejected",
			logger.Identifier(kind, req.Value),
			logger.ErrorKind(out.Kind),
		)
	}
	writeJSON(w, r, h.log, http.StatusOK, resp)
}

type deriveRequest struct {
	Surname      string `json:"surname"`
	GivenName    string `json:"given_name"`
	BirthDate    string `json:"birth_date"`
	Sex          string `json:"sex"`
	Municipality string `json:"municipality"`
	// CodiceFiscale, when set, is checked against the derived code.
	CodiceFiscale string `json:"codice_fiscale"`
}

func (req deriveRequest) facts() (fiscal.PersonalIdentityFacts, error) {
	f := fiscal.PersonalIdentityFacts{
		Surname:      req.Surname,
		GivenName:    req.GivenName,
		Sex:          fiscal.ParseSex(req.Sex),
		Municipality: req.Municipality,
	}
	if req.BirthDate != "" {
		d, err := time.Parse(birthDateLayout, req.BirthDate)
		if err != nil {
			return f, errors.Join(ErrInvalidDate, err)
		}
		f.BirthDate = d
	}
	return f, nil
}

// FieldError is a validation failure on a request field.
type FieldError struct {
	Field          string `json:"field"`
	Code           string `json:"code"`
	Message        string `json:"message"`
	TranslationKey string `json:"translation_key"`
}

// DeriveResponse is returned by POST /v1/derive. Matches is only present when
// the request carried a codice_fiscale to compare.
type DeriveResponse struct {
	CodiceFiscale string       `json:"codice_fiscale"`
	Matches       *bool        `json:"matches,omitempty"`
	Errors        []FieldError `json:"errors,omitempty"`
}

func (h *handlers) derive(w http.ResponseWriter, r *http.Request) {
	var req deriveRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, h.log, http.StatusBadRequest, "invalid_json", err)
		return
	}

	facts, err := req.facts()
	if err != nil {
		writeError(w, r, h.log, http.StatusBadRequest, "invalid_birth_date", err)
		return
	}

	resp := DeriveResponse{CodiceFiscale: fiscal.Derive(facts)}
	if fiscal.Normalize(req.CodiceFiscale) != "" {
		err := validator.Apply(
			validator.ValidCodiceFiscale("codice_fiscale", req.CodiceFiscale),
			validator.CodiceFiscaleMatches("codice_fiscale", req.CodiceFiscale, facts),
		)
		matches := err == nil
		resp.Matches = &matches
		for _, ve := range validator.ExtractValidationErrors(err) {
			resp.Errors = append(resp.Errors, FieldError{
				Field:          ve.Field,
				Code:           ve.Code,
				Message:        ve.Message,
				TranslationKey: ve.TranslationKey,
			})
		}
	}
	writeJSON(w, r, h.log, http.StatusOK, resp)
}

// IBANResponse is returned by GET /v1/iban/{iban}. Component fields are
// filled whenever the IBAN is structurally valid, even with a bad checksum.
type IBANResponse struct {
	Valid         bool               `json:"valid"`
	ErrorKind     string             `json:"error_kind,omitempty"`
	IBAN          string             `json:"iban,omitempty"`
	Formatted     string             `json:"formatted,omitempty"`
	CountryCode   string             `json:"country_code,omitempty"`
	CheckDigits   string             `json:"check_digits,omitempty"`
	CIN           string             `json:"cin,omitempty"`
	ABI           string             `json:"abi,omitempty"`
	CAB           string             `json:"cab,omitempty"`
	AccountNumber string             `json:"account_number,omitempty"`
	Bank          *bankregistry.Bank `json:"bank,omitempty"`
}

func (h *handlers) iban(w http.ResponseWriter, r *http.Request) {
	raw, err := url.PathUnescape(chi.URLParam(r, "iban"))
	if err != nil || fiscal.Normalize(raw) == "" {
		writeError(w, r, h.log, http.StatusBadRequest, "missing_iban", ErrMissingIBAN)
		return
	}

	res, err := h.enricher.Enrich(r.Context(), raw)
	resp := IBANResponse{Valid: res.Outcome.Valid}
	if c := res.Components; c.CountryCode != "" {
		resp.IBAN = c.IBAN()
		resp.Formatted = c.String()
		resp.CountryCode = c.CountryCode
		resp.CheckDigits = c.CheckDigits
		resp.CIN = c.CIN
		resp.ABI = c.BankCode
		resp.CAB = c.BranchCode
		resp.AccountNumber = c.AccountNumber
	}
	if res.BankFound {
		bank := res.Bank
		resp.Bank = &bank
	}

	if err != nil {
		resp.ErrorKind = res.Outcome.Kind.String()
		writeJSON(w, r, h.log, http.StatusUnprocessableEntity, resp)
		return
	}
	writeJSON(w, r, h.log, http.StatusOK, resp)
}
