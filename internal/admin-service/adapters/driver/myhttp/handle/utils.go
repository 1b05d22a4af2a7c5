package handle

import (
	"encoding/json"
	"errors"
	"net/http"

	"loadgo/internal/admin-service/core/myerrors"
)

const WaitTime = 10

// jsonResponse writes data as a JSON-encoded HTTP response with the given status code.
func jsonResponse(w http.ResponseWriter, code int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if data == nil {
		return
	}
	_ = json.NewEncoder(w).Encode(data)
}

// JsonError writes a failure payload with the specified HTTP status code.
func JsonError(w http.ResponseWriter, code int, err error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err == nil {
		return
	}
	_ = json.NewEncoder(w).Encode(map[string]interface{}{
		"success": false,
		"error":   err.Error(),
	})
}

// writeError maps the error taxonomy onto HTTP status codes: 404 for missing
// targets, 409 for tripped dependency guards, 400 for values outside their
// enumerated domain, 500 for everything unexpected.
func writeError(w http.ResponseWriter, err error) {
	var (
		nf *myerrors.NotFoundError
		cf *myerrors.ConflictError
		ve *myerrors.ValidationError
		in *myerrors.InternalError
	)
	switch {
	case errors.As(err, &nf):
		JsonError(w, http.StatusNotFound, nf)
	case errors.As(err, &cf):
		JsonError(w, http.StatusConflict, cf)
	case errors.As(err, &ve):
		JsonError(w, http.StatusBadRequest, ve)
	case errors.As(err, &in):
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"success": false,
			"error":   "Internal server error",
			"message": in.Error(),
		})
	default:
		JsonError(w, http.StatusBadRequest, err)
	}
}
