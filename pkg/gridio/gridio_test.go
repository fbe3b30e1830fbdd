package gridio

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/matzehuels/gridpack/pkg/errors"
	"github.com/matzehuels/gridpack/pkg/grid"
	"github.com/matzehuels/gridpack/pkg/responsive"
)

func TestUnmarshal(t *testing.T) {
	tests := []struct {
		name       string
		data       string
		wantItems  int
		wantBreaks int
		code       errors.Code
	}{
		{
			name:      "bare array",
			data:      `[{"id":"a","x":0,"y":0,"w":2,"h":1},{"id":"b","w":1,"h":1,"static":true}]`,
			wantItems: 2,
		},
		{
			name:       "document",
			data:       `{"layout":[{"id":"a","w":2,"h":1}],"responsive":{"sm":[{"id":"a","w":1,"h":1}]}}`,
			wantItems:  1,
			wantBreaks: 1,
		},
		{
			name:      "leading whitespace",
			data:      "\n  [{\"id\":\"a\",\"w\":1,\"h\":1}]",
			wantItems: 1,
		},
		{name: "empty", data: "  ", code: errors.ErrCodeInvalidFormat},
		{name: "scalar", data: `42`, code: errors.ErrCodeInvalidFormat},
		{name: "malformed", data: `[{"id":`, code: errors.ErrCodeInvalidFormat},
		{name: "unknown document field", data: `{"layout":[],"cols":12}`, code: errors.ErrCodeInvalidFormat},
		{name: "duplicate id", data: `[{"id":"a","w":1,"h":1},{"id":"a","w":1,"h":1}]`, code: errors.ErrCodeInvalidLayout},
		{name: "zero size", data: `[{"id":"a","w":0,"h":1}]`, code: errors.ErrCodeInvalidItem},
		{
			name: "bad responsive layout",
			data: `{"layout":[],"responsive":{"sm":[{"id":"","w":1,"h":1}]}}`,
			code: errors.ErrCodeInvalidItem,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, err := Unmarshal([]byte(tt.data))
			if tt.code != "" {
				if !errors.Is(err, tt.code) {
					t.Errorf("Unmarshal() error = %v, want %s", err, tt.code)
				}
				return
			}
			if err != nil {
				t.Fatalf("Unmarshal() error = %v", err)
			}
			if len(doc.Layout) != tt.wantItems {
				t.Errorf("len(Layout) = %d, want %d", len(doc.Layout), tt.wantItems)
			}
			if len(doc.Responsive) != tt.wantBreaks {
				t.Errorf("len(Responsive) = %d, want %d", len(doc.Responsive), tt.wantBreaks)
			}
		})
	}
}

func TestUnmarshalClearsMoved(t *testing.T) {
	doc, err := Unmarshal([]byte(`[{"id":"a","w":1,"h":1,"moved":true}]`))
	if err != nil {
		t.Fatal(err)
	}
	if doc.Layout[0].Moved {
		t.Error("Moved = true after decoding, want false")
	}
}

func TestMarshalShape(t *testing.T) {
	bare := &Document{Layout: grid.Layout{{ID: "a", W: 1, H: 1, Moved: true}}}
	data, err := Marshal(bare)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(data, []byte("[")) {
		t.Errorf("Marshal() without responsive = %s, want bare array", data)
	}
	if bytes.Contains(data, []byte("moved")) {
		t.Errorf("Marshal() wrote the moved flag: %s", data)
	}

	full := &Document{
		Layout:     grid.Layout{{ID: "a", W: 1, H: 1}},
		Responsive: responsive.Layouts{"sm": {{ID: "a", W: 1, H: 1}}},
	}
	data, err = Marshal(full)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(data, []byte("{")) || !bytes.Contains(data, []byte(`"responsive"`)) {
		t.Errorf("Marshal() with responsive = %s, want document", data)
	}
}

func TestMarshalRejectsInvalid(t *testing.T) {
	_, err := Marshal(&Document{Layout: grid.Layout{{ID: "a", W: -1, H: 1}}})
	if !errors.Is(err, errors.ErrCodeInvalidItem) {
		t.Errorf("Marshal() error = %v, want INVALID_ITEM", err)
	}
}

func TestFileRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "layout.json")
	in := &Document{
		Layout:     grid.Layout{{ID: "a", X: 1, Y: 2, W: 3, H: 4, Static: true}},
		Responsive: responsive.Layouts{"sm": {{ID: "a", W: 2, H: 4}}},
	}

	if err := WriteFile(path, in); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
	out, err := ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if out.Layout[0] != in.Layout[0] {
		t.Errorf("Layout[0] = %+v, want %+v", out.Layout[0], in.Layout[0])
	}
	if out.Responsive["sm"][0] != in.Responsive["sm"][0] {
		t.Errorf("Responsive[sm][0] = %+v, want %+v", out.Responsive["sm"][0], in.Responsive["sm"][0])
	}
}

func TestReadFileErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := ReadFile(filepath.Join(dir, "missing.json")); !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("ReadFile(missing) error = %v, want FILE_NOT_FOUND", err)
	}

	bad := filepath.Join(dir, "bad.json")
	if err := os.WriteFile(bad, []byte("nope"), 0o644); err != nil {
		t.Fatal(err)
	}
	_, err := ReadFile(bad)
	if !errors.Is(err, errors.ErrCodeInvalidFormat) {
		t.Errorf("ReadFile(bad) error = %v, want INVALID_FORMAT", err)
	}
	if !strings.Contains(err.Error(), "bad.json") {
		t.Errorf("error %q should name the file", err)
	}
}

func TestWriteLayout(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteLayout(&buf, grid.Layout{{ID: "a", W: 1, H: 1}}); err != nil {
		t.Fatal(err)
	}
	doc, err := ReadJSON(&buf)
	if err != nil {
		t.Fatalf("ReadJSON() error = %v", err)
	}
	if len(doc.Layout) != 1 || doc.Layout[0].ID != "a" {
		t.Errorf("ReadJSON() = %+v", doc.Layout)
	}
}
