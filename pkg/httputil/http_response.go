package httputil

import (
	"bytes"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/bytedance/sonic"
)

const maxBodyBytes = 1 << 20

var ErrEmptyBody = errors.New("empty request body")

type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

// WriteErrorResponse writes the error envelope. details is only shown to
// the client when non-nil, so internal causes must not be passed here.
func WriteErrorResponse(w http.ResponseWriter, statusCode int, message string, details error) {
	resp := ErrorResponse{
		Code:    statusCode,
		Message: message,
	}
	if details != nil {
		resp.Details = details.Error()
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := sonic.ConfigFastest.NewEncoder(w).Encode(resp); err != nil {
		slog.Error("writing error response", "status", statusCode, "error", err.Error())
	}
}

// WriteJSONResponse encodes body before touching the header, so a body that
// cannot be encoded turns into a 500 instead of an empty success.
func WriteJSONResponse(w http.ResponseWriter, statusCode int, body any) {
	if body == nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(statusCode)
		return
	}
	data, err := sonic.ConfigDefault.Marshal(body)
	if err != nil {
		slog.Error("encoding response body", "status", statusCode, "error", err.Error())
		WriteErrorResponse(w, http.StatusInternalServerError, "internal error", nil)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if _, err = w.Write(append(data, '\n')); err != nil {
		slog.Error("writing response body", "status", statusCode, "error", err.Error())
	}
}

// DecodeJSONBody reads at most 1MiB of the body into dst and closes it.
func DecodeJSONBody(r *http.Request, dst any) error {
	defer r.Body.Close()
	data, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes))
	if err != nil {
		return err
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return ErrEmptyBody
	}
	return sonic.ConfigDefault.Unmarshal(data, dst)
}
