package cli

import (
	"fmt"
	"io"

	"github.com/matzehuels/gridpack/pkg/gridio"
)

// writeDocument writes doc to output, or to w when output is empty. Status
// lines are only printed for file output so that stdout stays valid JSON.
func writeDocument(w io.Writer, doc *gridio.Document, output string, cacheHit bool) error {
	if output == "" {
		return gridio.WriteJSON(w, doc)
	}
	if err := gridio.WriteFile(output, doc); err != nil {
		return err
	}
	printSuccess("Layout written")
	printFile(output)
	printStats(len(doc.Layout), len(doc.Responsive), cacheHit)
	return nil
}

// itemCount formats n with its unit.
func itemCount(n int) string {
	if n == 1 {
		return "1 item"
	}
	return fmt.Sprintf("%d items", n)
}
