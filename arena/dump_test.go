package arena

import (
	"bytes"
	"strings"
	"testing"
)

func TestDumpListsEveryRegion(t *testing.T) {
	const pageSize = 4096

	a, err := New(pageSize, WithPageSize(pageSize))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer a.Destroy()

	chunk := uintptr(pageSize / 4)
	for a.head.next == nil {
		if a.Alloc(chunk) == nil {
			t.Fatal("Alloc failed before a second region was forced")
		}
	}

	var buf bytes.Buffer
	a.Dump(&buf)

	out := buf.String()
	if !strings.Contains(out, "region[0]") || !strings.Contains(out, "region[1]") {
		t.Fatalf("Dump output missing expected regions:\n%s", out)
	}

	if !strings.Contains(out, "(tail)") {
		t.Fatalf("Dump output missing tail marker:\n%s", out)
	}
}

func TestDumpOnNilArena(t *testing.T) {
	var a *Arena

	var buf bytes.Buffer
	a.Dump(&buf)

	if !strings.Contains(buf.String(), "<nil>") {
		t.Fatalf("Dump(nil) = %q", buf.String())
	}
}
