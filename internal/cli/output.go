package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/vaultpass/pwstrength/internal/model"
	"github.com/vaultpass/pwstrength/internal/password"
)

var levelColors = map[password.Level]lipgloss.Color{
	password.Low:          lipgloss.Color("196"), // red
	password.Intermediate: lipgloss.Color("214"), // orange
	password.Strong:       lipgloss.Color("42"),  // green
}

type styles struct {
	enabled bool
	label   lipgloss.Style
}

// newStyles enables styling only when out is a terminal and color was not
// turned off with --no-color or NO_COLOR.
func newStyles(out io.Writer, noColor bool) styles {
	enabled := !noColor && os.Getenv("NO_COLOR") == "" && isTerminal(out)
	return styles{
		enabled: enabled,
		label:   lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	}
}

func (s styles) level(l password.Level) string {
	if !s.enabled {
		return l.String()
	}
	return lipgloss.NewStyle().Bold(true).Foreground(levelColors[l]).Render(l.String())
}

func (s styles) key(k string) string {
	k = fmt.Sprintf("  %-10s", k)
	if !s.enabled {
		return k
	}
	return s.label.Render(k)
}

func printDetails(out io.Writer, st styles, resp model.ClassifyResponse) {
	fmt.Fprintln(out, st.key("length"), resp.Length)
	fmt.Fprintln(out, st.key("uppercase"), yesNo(resp.Uppercase))
	fmt.Fprintln(out, st.key("lowercase"), yesNo(resp.Lowercase))
	fmt.Fprintln(out, st.key("digit"), yesNo(resp.Digit))
	fmt.Fprintln(out, st.key("symbol"), yesNo(resp.Symbol))

	missing := "none"
	if len(resp.Missing) > 0 {
		missing = strings.Join(resp.Missing, ", ")
	}
	fmt.Fprintln(out, st.key("missing"), missing)
	if e := resp.Estimate; e != nil {
		fmt.Fprintf(out, "%s score %d/4, crack time %s\n", st.key("zxcvbn"), e.Score, e.CrackTime)
	}
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

func isTerminal(w any) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
