package output

import (
	"bytes"
	"strings"
	"testing"
)

func capture(t *testing.T, compact bool, fn func()) string {
	t.Helper()
	var buf bytes.Buffer
	oldWriter, oldCompact := Writer, Compact
	Writer, Compact = &buf, compact
	defer func() { Writer, Compact = oldWriter, oldCompact }()
	fn()
	return buf.String()
}

func TestJSON_IndentedByDefault(t *testing.T) {
	got := capture(t, false, func() {
		if err := JSON(map[string]string{"city": "Paris"}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
	if !strings.Contains(got, "\n  \"city\"") {
		t.Errorf("expected indented output, got %q", got)
	}
}

func TestJSON_CompactIsSingleLine(t *testing.T) {
	got := capture(t, true, func() {
		if err := JSON(map[string]string{"city": "Paris"}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
	if strings.Count(got, "\n") != 1 {
		t.Errorf("expected one line, got %q", got)
	}
	if !strings.Contains(got, `{"city":"Paris"}`) {
		t.Errorf("unexpected compact output %q", got)
	}
}

func TestJSONError_Shape(t *testing.T) {
	got := capture(t, true, func() {
		JSONError("search failed", "upstream 500")
	})
	if !strings.Contains(got, `"error":"search failed"`) {
		t.Errorf("missing error field in %q", got)
	}
	if !strings.Contains(got, `"details":"upstream 500"`) {
		t.Errorf("missing details field in %q", got)
	}
}

func TestJSONError_OmitsEmptyDetails(t *testing.T) {
	got := capture(t, true, func() {
		JSONError("search failed", "")
	})
	if strings.Contains(got, "details") {
		t.Errorf("empty details should be omitted, got %q", got)
	}
}
