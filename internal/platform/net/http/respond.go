package http

import (
	"encoding/json"
	stdhttp "net/http"

	perr "reviewtrust/internal/platform/errors"
	"reviewtrust/internal/platform/logger"
	pnet "reviewtrust/internal/platform/net"
)

// Envelope wraps every JSON response body
type Envelope struct {
	StatusCode int            `json:"status_code"`
	Status     string         `json:"status"`
	Code       perr.ErrorCode `json:"code,omitempty"`
	Kind       string         `json:"kind,omitempty"`
	Error      string         `json:"error,omitempty"`
	Field      string         `json:"field,omitempty"`
	RequestID  string         `json:"request_id,omitempty"`
	Data       any            `json:"data,omitempty"`
}

// JSON writes v with status
func JSON(w stdhttp.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Named("http").Warn().Err(err).Msg("encode response")
	}
}

func envelope(status int, reqID string) Envelope {
	return Envelope{StatusCode: status, Status: stdhttp.StatusText(status), RequestID: reqID}
}

// RespondOK writes a 200 envelope around data
func RespondOK(w stdhttp.ResponseWriter, r *stdhttp.Request, data any) {
	env := envelope(stdhttp.StatusOK, pnet.RequestID(r.Context()))
	env.Data = data
	JSON(w, stdhttp.StatusOK, env)
}

// RespondError maps err through perr and writes the error envelope
func RespondError(w stdhttp.ResponseWriter, r *stdhttp.Request, err error) {
	status, wire := perr.HTTP(err)
	if status >= stdhttp.StatusInternalServerError {
		logger.C(r.Context()).Error().Err(err).Int("status", status).Msg("request failed")
	}
	env := envelope(status, pnet.RequestID(r.Context()))
	env.Code, env.Kind, env.Error, env.Field = wire.Code, wire.Kind, wire.Message, wire.Field
	JSON(w, status, env)
}

// Response is the return value of a return-style handler
type Response struct {
	Status int
	Body   any
	Err    error
	Header stdhttp.Header
}

// Handle adapts a return-style handler
func Handle(h func(r *stdhttp.Request) Response) stdhttp.HandlerFunc {
	return func(w stdhttp.ResponseWriter, r *stdhttp.Request) {
		resp := h(r)
		for k, vv := range resp.Header {
			for _, v := range vv {
				w.Header().Add(k, v)
			}
		}
		if resp.Err != nil {
			RespondError(w, r, resp.Err)
			return
		}
		status := resp.Status
		if status == 0 {
			status = stdhttp.StatusOK
		}
		if status == stdhttp.StatusNoContent {
			w.WriteHeader(status)
			return
		}
		env := envelope(status, pnet.RequestID(r.Context()))
		env.Data = resp.Body
		JSON(w, status, env)
	}
}

// OK is a 200 response
func OK(data any) Response { return Response{Status: stdhttp.StatusOK, Body: data} }

// Created is a 201 response
func Created(data any) Response { return Response{Status: stdhttp.StatusCreated, Body: data} }

// Error is an error response; status comes from the error code
func Error(err error) Response { return Response{Err: err} }
