package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestWrapPreservesCause(t *testing.T) {
	t.Parallel()

	cause := errors.New("underlying")
	err := Wrap(CodeDependency, cause, "load catalog")

	if !errors.Is(err, cause) {
		t.Fatal("expected wrapped cause to be reachable via errors.Is")
	}
	if err.Code() != CodeDependency {
		t.Fatalf("unexpected code: %s", err.Code())
	}
}

func TestAsFindsTypedErrorInChain(t *testing.T) {
	t.Parallel()

	typed := New(CodeDataIntegrity, "schedule out of order")
	wrapped := fmt.Errorf("ingest: %w", typed)

	found := As(wrapped)
	if found == nil {
		t.Fatal("expected typed error in chain")
	}
	if found.Code() != CodeDataIntegrity {
		t.Fatalf("unexpected code: %s", found.Code())
	}
}

func TestAsReturnsNilForPlainError(t *testing.T) {
	t.Parallel()

	if As(errors.New("plain")) != nil {
		t.Fatal("expected nil for untyped error")
	}
	if As(nil) != nil {
		t.Fatal("expected nil for nil error")
	}
}

func TestMetadataForUnknownCode(t *testing.T) {
	t.Parallel()

	meta := MetadataFor(Code("BOGUS"))
	if meta.HTTPStatus != MetadataFor(CodeInternal).HTTPStatus {
		t.Fatalf("unknown codes should fall back to internal metadata, got %+v", meta)
	}
}

func TestDumpChain(t *testing.T) {
	t.Parallel()

	err := Wrap(CodeValidation, errors.New("bad qty"), "add item")
	d := Dump(err)

	if d.Code != CodeValidation {
		t.Fatalf("unexpected code: %s", d.Code)
	}
	if len(d.Chain) != 2 {
		t.Fatalf("expected 2 chain entries, got %d", len(d.Chain))
	}
}
