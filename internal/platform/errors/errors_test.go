package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
	"testing"
)

func TestErrorIsMatchesByCode(t *testing.T) {
	t.Parallel()

	err := Wrap(CodeNotFound, "maintenance missing", stderrors.New("boom"))
	wrapped := fmt.Errorf("load detail: %w", err)

	if !stderrors.Is(wrapped, New(CodeNotFound, "")) {
		t.Fatal("expected wrapped error to match by code")
	}
	if stderrors.Is(wrapped, New(CodeUnavailable, "")) {
		t.Fatal("did not expect match for different code")
	}
	if got := stderrors.Unwrap(err); got == nil || got.Error() != "boom" {
		t.Fatalf("Unwrap() = %v, want boom", got)
	}
}

func TestCodeOf(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want Code
	}{
		{name: "nil", err: nil, want: ""},
		{name: "plain", err: stderrors.New("x"), want: CodeUnknown},
		{name: "domain", err: New(CodeUnavailable, "down"), want: CodeUnavailable},
		{name: "wrapped", err: fmt.Errorf("ctx: %w", New(CodeNotFound, "gone")), want: CodeNotFound},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := CodeOf(tc.err); got != tc.want {
				t.Fatalf("CodeOf() = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestHTTPStatus(t *testing.T) {
	t.Parallel()

	tests := map[Code]int{
		CodeInvalidArgument:                    http.StatusUnprocessableEntity,
		CodeValidationFailed:                   http.StatusUnprocessableEntity,
		CodeFailedPrecondition:                 http.StatusConflict,
		CodeMaintenanceInvalidStatusTransition: http.StatusConflict,
		CodeNotFound:                           http.StatusNotFound,
		CodeUnavailable:                        http.StatusBadGateway,
		CodeUnknown:                            http.StatusInternalServerError,
	}
	for code, want := range tests {
		if got := code.HTTPStatus(); got != want {
			t.Fatalf("%s.HTTPStatus() = %d, want %d", code, got, want)
		}
	}
	if got := HTTPStatus(stderrors.New("x")); got != http.StatusInternalServerError {
		t.Fatalf("HTTPStatus(plain) = %d", got)
	}
}

func TestMetadataOf(t *testing.T) {
	t.Parallel()

	err := fmt.Errorf("call: %w", WithMetadata(CodeFailedPrecondition, "conflict", map[string]string{"upstream": "already done"}))
	if got := MetadataOf(err, "upstream"); got != "already done" {
		t.Fatalf("MetadataOf() = %q", got)
	}
	if got := MetadataOf(stderrors.New("x"), "upstream"); got != "" {
		t.Fatalf("MetadataOf(plain) = %q", got)
	}
}

func TestMessageKey(t *testing.T) {
	t.Parallel()

	if got := CodeNotFound.MessageKey(); got != "error.not_found" {
		t.Fatalf("MessageKey() = %q", got)
	}
	if got := Code("other").MessageKey(); got != "error.unknown" {
		t.Fatalf("MessageKey() = %q", got)
	}
}
