package server

import (
	"encoding/json"
	"net/http"

	"github.com/binay-tripathy/CareerTree/pkg/errors"
)

func respondJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload != nil {
		_ = json.NewEncoder(w).Encode(payload)
	}
}

type errorResponse struct {
	Code    errors.Code `json:"code"`
	Message string      `json:"message"`
}

// respondError maps the domain error taxonomy onto HTTP statuses. Unknown
// errors surface as 500 without leaking internals.
func respondError(w http.ResponseWriter, err error) {
	code := errors.CodeOf(err)
	status := http.StatusInternalServerError
	message := "internal server error"

	switch code {
	case errors.CodeInvalidArgument:
		status, message = http.StatusBadRequest, err.Error()
	case errors.CodeUnauthenticated:
		status, message = http.StatusUnauthorized, err.Error()
	case errors.CodePermissionDenied:
		status, message = http.StatusForbidden, err.Error()
	case errors.CodeNotFound:
		status, message = http.StatusNotFound, err.Error()
	case errors.CodeAlreadyExists, errors.CodeFailedPrecondition:
		status, message = http.StatusConflict, err.Error()
	}

	respondJSON(w, status, errorResponse{Code: code, Message: message})
}
