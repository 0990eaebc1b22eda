package preview

import (
	"fmt"
	"io"
	"strings"

	"github.com/muesli/termenv"
)

// WriteSwatchStrip writes one coloured block per swatch on a single line,
// followed by a line of the swatch IDs' initials. Colours are degraded to
// what profile supports, and termenv.Ascii writes plain text.
func WriteSwatchStrip(w io.Writer, swatches []Swatch, profile termenv.Profile) error {
	out := termenv.NewOutput(w, termenv.WithProfile(profile))
	var blocks, initials strings.Builder
	for _, s := range swatches {
		blocks.WriteString(out.String("  ").Background(out.Color(s.Color.Hex())).String())
		initials.WriteString(fmt.Sprintf("%-2.2s", s.ID))
	}
	_, err := fmt.Fprintf(w, "%s\n%s\n", blocks.String(), initials.String())
	return err
}
