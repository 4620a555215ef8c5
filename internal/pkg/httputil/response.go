package httputil

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/ignite/jsonresponse/internal/pkg/logger"
)

// Response is a rendered reply ready to be written to the wire.
type Response struct {
	Body        []byte
	ContentType string
	Status      int
}

// NewResponse builds a Response. A zero status means 200.
func NewResponse(body []byte, contentType string, status int) Response {
	if status == 0 {
		status = http.StatusOK
	}
	return Response{Body: body, ContentType: contentType, Status: status}
}

// Write sends resp to w. Write errors are logged, the client is gone by then.
func Write(w http.ResponseWriter, resp Response) {
	h := w.Header()
	h.Set("Content-Type", resp.ContentType)
	h.Set("Content-Length", strconv.Itoa(len(resp.Body)))
	w.WriteHeader(resp.Status)
	if _, err := w.Write(resp.Body); err != nil {
		logger.Warn("[httputil] response write failed", "status", resp.Status, "err", err)
	}
}

// ErrorResponse is the body written for errors no handler recovered from.
type ErrorResponse struct {
	Error string `json:"error"`
}

// Error writes a JSON error response with the given status.
func Error(w http.ResponseWriter, status int, message string) {
	body, err := json.Marshal(ErrorResponse{Error: message})
	if err != nil {
		logger.Error("[httputil] JSON encode error", "err", err)
		body = []byte(`{"error":"internal server error"}`)
	}
	Write(w, NewResponse(body, "application/json; charset=UTF-8", status))
}

// InternalError writes a 500 error. Logs the real error but returns a
// generic message to the client (never leak internals).
func InternalError(w http.ResponseWriter, r *http.Request, err error) {
	logger.Error("[httputil] internal error", "method", r.Method, "path", r.URL.Path, "err", err)
	Error(w, http.StatusInternalServerError, "internal server error")
}
