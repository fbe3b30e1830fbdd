package gridio

import (
	"encoding/json"
	"io"
	"os"

	"github.com/matzehuels/gridpack/pkg/errors"
	"github.com/matzehuels/gridpack/pkg/grid"
	"github.com/matzehuels/gridpack/pkg/responsive"
)

// Marshal encodes doc as indented JSON. The moved flag is never written.
func Marshal(doc *Document) ([]byte, error) {
	if err := doc.Validate(); err != nil {
		return nil, err
	}

	var v any = stripMoved(doc.Layout)
	if len(doc.Responsive) > 0 {
		out := Document{Layout: stripMoved(doc.Layout), Responsive: make(responsive.Layouts, len(doc.Responsive))}
		for bp, l := range doc.Responsive {
			out.Responsive[bp] = stripMoved(l)
		}
		v = out
	}

	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "encode")
	}
	return append(data, '\n'), nil
}

// WriteJSON encodes doc to w.
func WriteJSON(w io.Writer, doc *Document) error {
	data, err := Marshal(doc)
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}

// WriteLayout encodes a bare layout to w.
func WriteLayout(w io.Writer, l grid.Layout) error {
	return WriteJSON(w, &Document{Layout: l})
}

// WriteFile writes doc to path, replacing any existing file.
func WriteFile(path string, doc *Document) error {
	data, err := Marshal(doc)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidPath, err, "write %s", path)
	}
	return nil
}

func stripMoved(l grid.Layout) grid.Layout {
	out := l.Clone()
	for i := range out {
		out[i].Moved = false
	}
	return out
}

