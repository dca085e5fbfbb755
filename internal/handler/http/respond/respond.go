// Package respond provides utilities for sending HTTP responses in JSON format.
// It maps domain errors to status codes and sanitizes internal errors before they reach clients.
package respond

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/goccy/go-json"

	"articles-api/internal/domain/entity"
	"articles-api/internal/handler/http/pathutil"
)

// JSON writes a JSON response with the given status code and data.
func JSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if v != nil {
		if err := json.NewEncoder(w).Encode(v); err != nil {
			// ヘッダー送信済みのためログのみ
			slog.Default().Error("failed to encode JSON response",
				slog.Int("status_code", code),
				slog.Any("error", err))
		}
	}
}

// Error writes a JSON error response with the given status code and error message.
func Error(w http.ResponseWriter, code int, err error) {
	JSON(w, code, map[string]string{"error": err.Error()})
}

// Status maps an error returned by a usecase to an HTTP status code.
//
//	validation failure / invalid id -> 400
//	not found                      -> 404
//	anything else                  -> 500
func Status(err error) int {
	switch {
	case errors.Is(err, entity.ErrValidationFailed),
		errors.Is(err, entity.ErrInvalidInput),
		errors.Is(err, pathutil.ErrInvalidID):
		return http.StatusBadRequest
	case errors.Is(err, entity.ErrNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// Fail writes err with the status chosen by Status.
func Fail(w http.ResponseWriter, err error) {
	SafeError(w, Status(err), err)
}

// SafeError writes 4xx messages as-is. 5xx errors are logged with secrets masked
// and the client receives a generic "internal server error".
func SafeError(w http.ResponseWriter, code int, err error) {
	if err == nil {
		return
	}

	if code < http.StatusInternalServerError {
		JSON(w, code, map[string]string{"error": clientMessage(err)})
		return
	}

	// 機密情報をマスクしてログ出力
	slog.Default().Error("internal server error",
		slog.String("status", http.StatusText(code)),
		slog.Int("code", code),
		slog.String("error", SanitizeError(err)))
	JSON(w, code, map[string]string{"error": "internal server error"})
}

// clientMessage strips the operation prefixes added by wrapping layers
// when a typed domain error is present.
func clientMessage(err error) string {
	var ve *entity.ValidationError
	if errors.As(err, &ve) {
		return ve.Error()
	}
	var nf *entity.NotFoundError
	if errors.As(err, &nf) {
		return nf.Error()
	}
	return err.Error()
}
