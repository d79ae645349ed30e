package http

import (
	"encoding/json"
	"net/http"

	perr "langshift/internal/platform/errors"
	pnet "langshift/internal/platform/net"
)

// Envelope is the body of every JSON response
type Envelope struct {
	StatusCode int            `json:"status_code"`
	Status     string         `json:"status"`
	Code       perr.ErrorCode `json:"code,omitempty"`
	Error      string         `json:"error,omitempty"`
	Field      string         `json:"field,omitempty"`
	Op         string         `json:"op,omitempty"`
	RequestID  string         `json:"request_id,omitempty"`
	Data       any            `json:"data,omitempty"`
}

// JSON writes v with status
func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// Response is what return style handlers produce; an error Body
// becomes an error envelope with the status its code maps to
type Response struct {
	Status int
	Body   any
	Header http.Header
}

// OK is a 200 carrying data
func OK(data any) Response { return Response{Status: http.StatusOK, Body: data} }

// NoContent is a bodyless 204
func NoContent() Response { return Response{Status: http.StatusNoContent} }

// Error maps err to its status and envelope
func Error(err error) Response { return Response{Body: err} }

// Handle adapts a Response returning function
func Handle(h func(*http.Request) Response) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) { h(r).write(w, r) }
}

func (resp Response) write(w http.ResponseWriter, r *http.Request) {
	for k, vv := range resp.Header {
		for _, v := range vv {
			w.Header().Add(k, v)
		}
	}
	status := resp.Status
	if status == 0 {
		status = http.StatusOK
	}
	if status == http.StatusNoContent {
		w.WriteHeader(status)
		return
	}

	env := Envelope{RequestID: pnet.RequestID(r.Context())}
	if err, ok := resp.Body.(error); ok && err != nil {
		status = perr.HTTPStatus(err)
		wire := perr.WireFrom(err)
		env.Code, env.Error, env.Field, env.Op = wire.Code, wire.Message, wire.Field, wire.Op
	} else {
		env.Data = resp.Body
	}
	env.StatusCode, env.Status = status, http.StatusText(status)
	JSON(w, status, env)
}
