package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/muesli/termenv"
)

// PrintBanner writes the flux banner and version to w.
func PrintBanner(w io.Writer, version string) {
	out := termenv.NewOutput(w)
	s1 := out.String("   __ _            ").Foreground(out.Color("#818cf8"))
	s2 := out.String("  / _| |_   ___  __").Foreground(out.Color("#a78bfa"))
	s3 := out.String(" | |_| | | | \\ \\/ /").Foreground(out.Color("#c084fc"))
	s4 := out.String(" |  _| | |_| |>  < ").Foreground(out.Color("#e879f9"))
	s5 := out.String(" |_| |_|\\__,_/_/\\_\\").Foreground(out.Color("#f472b6"))

	fmt.Fprintln(w)
	for _, s := range []termenv.Style{s1, s2, s3, s4, s5} {
		fmt.Fprintln(w, s)
	}
	if v := strings.TrimSpace(version); v != "" {
		fmt.Fprintln(w, out.String("  v"+v).Faint())
	}
	fmt.Fprintln(w)
}
