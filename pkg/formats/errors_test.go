package formats

import (
	"errors"
	"strings"
	"testing"
)

func TestParseError_LineMessage(t *testing.T) {
	err := &ParseError{Line: 12, Msg: "vertex", Err: ErrNonNumeric}

	if !strings.Contains(err.Error(), "line 12") {
		t.Errorf("expected line number in message, got %q", err.Error())
	}
	if !errors.Is(err, ErrNonNumeric) {
		t.Error("expected ParseError to unwrap to its sentinel")
	}
}

func TestParseError_OffsetMessage(t *testing.T) {
	err := &ParseError{Offset: 84, Msg: "triangle count", Err: ErrTriangleCountMismatch}

	if !strings.Contains(err.Error(), "offset 84") {
		t.Errorf("expected byte offset in message, got %q", err.Error())
	}
}
