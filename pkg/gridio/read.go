package gridio

import (
	"bytes"
	"encoding/json"
	"io"
	"maps"
	"os"
	"slices"

	"github.com/matzehuels/gridpack/pkg/errors"
	"github.com/matzehuels/gridpack/pkg/grid"
	"github.com/matzehuels/gridpack/pkg/responsive"
)

// Document is a layout file: the base layout plus optional per-breakpoint
// layouts.
type Document struct {
	Layout     grid.Layout        `json:"layout"`
	Responsive responsive.Layouts `json:"responsive,omitempty"`
}

// Unmarshal decodes a bare item array or a document and validates every
// layout in it.
func Unmarshal(data []byte) (*Document, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidFormat, "empty input")
	}

	var doc Document
	switch trimmed[0] {
	case '[':
		if err := json.Unmarshal(trimmed, &doc.Layout); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "decode layout")
		}
	case '{':
		dec := json.NewDecoder(bytes.NewReader(trimmed))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&doc); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "decode document")
		}
	default:
		return nil, errors.New(errors.ErrCodeInvalidFormat, "expected a JSON array or object")
	}

	if err := doc.Validate(); err != nil {
		return nil, err
	}
	doc.clearMoved()
	return &doc, nil
}

// Validate checks the base layout and every responsive layout.
func (d *Document) Validate() error {
	if err := grid.Validate(d.Layout); err != nil {
		return err
	}
	for _, bp := range slices.Sorted(maps.Keys(d.Responsive)) {
		if err := errors.ValidateBreakpointName(bp); err != nil {
			return err
		}
		if err := grid.Validate(d.Responsive[bp]); err != nil {
			return errors.Wrap(errors.GetCode(err), err, "breakpoint %q", bp)
		}
	}
	return nil
}

func (d *Document) clearMoved() {
	for i := range d.Layout {
		d.Layout[i].Moved = false
	}
	for _, l := range d.Responsive {
		for i := range l {
			l[i].Moved = false
		}
	}
}

// ReadJSON decodes a document from r. It does not close r.
func ReadJSON(r io.Reader) (*Document, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "read input")
	}
	return Unmarshal(data)
}

// ReadFile reads the document at path. A path of "-" reads standard input.
func ReadFile(path string) (*Document, error) {
	if path == "-" {
		return ReadJSON(os.Stdin)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "open %s", path)
		}
		return nil, errors.Wrap(errors.ErrCodeInvalidPath, err, "open %s", path)
	}
	doc, err := Unmarshal(data)
	if err != nil {
		return nil, errors.Wrap(errors.GetCode(err), err, "%s", path)
	}
	return doc, nil
}
