package fiscalapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/fiscalkit/pkg/logger"
)

const maxBodyBytes = 64 << 10

var (
	ErrInvalidJSON   = errors.New("invalid json body")
	ErrInvalidDate   = errors.New("birth_date must be formatted as YYYY-MM-DD")
	ErrUnknownKind   = errors.New("unknown identifier kind")
	ErrMissingIBAN   = errors.New("iban is required")
	ErrUnknownRoute  = errors.New("route not found")
	ErrMethodBlocked = errors.New("method not allowed")
)

// ErrorDetail is the body of every non-2xx response.
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type errorResponse struct {
	Error ErrorDetail `json:"error"`
}

func writeJSON(w http.ResponseWriter, r *http.Request, log *slog.Logger, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.ErrorContext(r.Context(), "failed to write response", logger.Error(err))
	}
}

func writeError(w http.ResponseWriter, r *http.Request, log *slog.Logger, status int, code string, err error) {
	writeJSON(w, r, log, status, errorResponse{Error: ErrorDetail{Code: code, Message: err.Error()}})
}

// decodeJSON reads a single JSON object from the request body. Unknown
// fields are rejected.
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		if errors.Is(err, io.EOF) {
			return fmt.Errorf("%w: empty body", ErrInvalidJSON)
		}
		return fmt.Errorf("%w: %v", ErrInvalidJSON, err)
	}
	if dec.More() {
		return fmt.Errorf("%w: trailing data", ErrInvalidJSON)
	}
	return nil
}
