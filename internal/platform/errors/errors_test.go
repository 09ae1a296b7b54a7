package errors

import (
	"context"
	"database/sql"
	stderrs "errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

func TestHTTPStatusCode(t *testing.T) {
	cases := map[ErrorCode]int{
		ErrorCodeNotFound:        http.StatusNotFound,
		ErrorCodeInvalidArgument: http.StatusUnprocessableEntity,
		ErrorCodeValidation:      http.StatusBadRequest,
		ErrorCodeJSON:            http.StatusBadRequest,
		ErrorCodeTooLarge:        http.StatusRequestEntityTooLarge,
		ErrorCodeConflict:        http.StatusConflict,
		ErrorCodeUnavailable:     http.StatusServiceUnavailable,
		ErrorCodeCanceled:        499,
		ErrorCodeStorage:         http.StatusInternalServerError,
		ErrorCodePanic:           http.StatusInternalServerError,
		ErrorCode(999):           http.StatusInternalServerError,
	}
	for code, want := range cases {
		if got := HTTPStatusCode(code); got != want {
			t.Fatalf("HTTPStatusCode(%s)=%d want %d", code, got, want)
		}
	}
}

func TestError_WrapAndUnwrap(t *testing.T) {
	root := stderrs.New("disk full")
	err := Wrap(root, ErrorCodeStorage, "save result")
	if err.Error() != "save result: disk full" {
		t.Fatalf("Error()=%q", err.Error())
	}
	if !stderrs.Is(err, root) {
		t.Fatalf("cause lost")
	}
	if Wrap(nil, ErrorCodeStorage, "x") != nil {
		t.Fatalf("Wrap(nil) should be nil")
	}

	outer := fmt.Errorf("handler: %w", NotFoundf("result %s", "abc"))
	if !IsCode(outer, ErrorCodeNotFound) {
		t.Fatalf("code lost through fmt wrap")
	}
	var nilErr *Error
	if nilErr.Error() != "<nil>" {
		t.Fatalf("nil render")
	}
}

func TestHTTP_WireShape(t *testing.T) {
	status, w := HTTP(WithField(InvalidArgf("too many items"), "items"))
	if status != http.StatusUnprocessableEntity || w.Kind != "invalid_argument" || w.Field != "items" {
		t.Fatalf("status=%d wire=%+v", status, w)
	}

	status, w = HTTP(stderrs.New("secret connection string leaked"))
	if status != http.StatusInternalServerError || w.Message != "internal error" {
		t.Fatalf("foreign error leaked: %d %+v", status, w)
	}

	if status, _ := HTTP(nil); status != http.StatusOK {
		t.Fatalf("nil status=%d", status)
	}
}

func TestWithField_ForeignBecomesValidation(t *testing.T) {
	err := WithField(stderrs.New("must be positive"), "workers")
	e, ok := As(err)
	if !ok || e.Code() != ErrorCodeValidation || e.Field() != "workers" {
		t.Fatalf("got %#v", err)
	}
	if WithField(nil, "x") != nil {
		t.Fatalf("nil in, nil out")
	}
}

func TestFromStorage(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want ErrorCode
	}{
		{"sql no rows", sql.ErrNoRows, ErrorCodeNotFound},
		{"pgx no rows", fmt.Errorf("scan: %w", pgx.ErrNoRows), ErrorCodeNotFound},
		{"unique", &pgconn.PgError{Code: "23505"}, ErrorCodeConflict},
		{"starting up", &pgconn.PgError{Code: "57P03"}, ErrorCodeUnavailable},
		{"other sqlstate", &pgconn.PgError{Code: "42P01"}, ErrorCodeStorage},
		{"canceled", context.Canceled, ErrorCodeCanceled},
		{"deadline", context.DeadlineExceeded, ErrorCodeUnavailable},
		{"plain", stderrs.New("boom"), ErrorCodeStorage},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := CodeOf(FromStorage(tc.err, "op")); got != tc.want {
				t.Fatalf("code=%s want %s", got, tc.want)
			}
		})
	}
	if FromStorage(nil, "op") != nil {
		t.Fatalf("nil in, nil out")
	}
	already := NotFoundf("result missing")
	if FromStorage(already, "op") != already {
		t.Fatalf("coded errors should pass through")
	}
}
