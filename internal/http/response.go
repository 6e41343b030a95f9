package httpx

import (
	"encoding/json"
	"errors"
	"net/http"

	"bpsgateway/internal/percent"
)

func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// WriteError writes {"error": msg, "code": code}.
func WriteError(w http.ResponseWriter, status int, code, msg string) {
	WriteJSON(w, status, map[string]string{
		"error": msg,
		"code":  code,
	})
}

// writeCalcError maps engine failures to HTTP responses.
func writeCalcError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, percent.ErrDivisionByZero):
		WriteError(w, http.StatusBadRequest, "division_by_zero", err.Error())
	case errors.Is(err, percent.ErrArithmeticOverflow):
		WriteError(w, http.StatusUnprocessableEntity, "arithmetic_overflow", err.Error())
	default:
		WriteError(w, http.StatusInternalServerError, "internal", "calculation failed")
	}
}
