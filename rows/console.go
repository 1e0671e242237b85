package rows

import (
	"io"
	"os"
	"strings"
	"sync"

	"github.com/fatih/color"
	"github.com/npillmayer/treestore"
	"github.com/npillmayer/uax/grapheme"
	"github.com/npillmayer/uax/uax11"
	"golang.org/x/term"
)

// Config configures the output of Outline.
type Config struct {
	LineWidth int                       // maximum line width in fixed-width cells; 0 for unlimited
	Indent    int                       // cells of indentation per tree level, default 2
	Context   *uax11.Context            // context for measuring label widths
	Colors    map[Category]*color.Color // colors per category
}

// Outline prints rows as an indented outline, one row per line. Groups and leafs
// are marked and colored differently. Labels exceeding the line width are
// truncated.
//
// If config is nil, a heuristic will create a config from the current terminal's
// properties (if stdout is interactive). Config.Context will also be created based
// on heuristics from the user environment.
// If config.Colors is nil, a default palette is used.
func Outline[I treestore.Item](rows []Row[I], w io.Writer, config *Config) error {
	if config == nil {
		config = ConfigFromTerminal()
		config.Context = uax11.ContextFromEnvironment()
	}
	ctx := config.Context
	if ctx == nil {
		ctx = uax11.LatinContext
	}
	palette := config.Colors
	if palette == nil {
		palette = makeDefaultPalette()
	}
	indent := config.Indent
	if indent <= 0 {
		indent = 2
	}
	setupGraphemes()
	for _, row := range rows {
		marker := "- "
		if row.Category == Group {
			marker = "+ "
		}
		prefix := strings.Repeat(" ", row.Depth()*indent) + marker
		label := row.Label()
		if config.LineWidth > 0 {
			label = truncate(label, config.LineWidth-len(prefix), ctx)
		}
		if _, err := io.WriteString(w, prefix); err != nil {
			return err
		}
		var err error
		if c := palette[row.Category]; c != nil {
			_, err = c.Fprint(w, label)
		} else {
			_, err = io.WriteString(w, label)
		}
		if err != nil {
			return err
		}
		if _, err = io.WriteString(w, "\n"); err != nil {
			return err
		}
	}
	return nil
}

func makeDefaultPalette() map[Category]*color.Color {
	palette := map[Category]*color.Color{
		Group: color.New(color.FgBlue, color.Bold),
		Leaf:  color.New(color.FgWhite),
	}
	return palette
}

var graphemeSetup sync.Once

func setupGraphemes() {
	graphemeSetup.Do(grapheme.SetupGraphemeClasses)
}

func displayWidth(s string, ctx *uax11.Context) int {
	return uax11.StringWidth(grapheme.StringFromString(s), ctx)
}

// truncate shortens s to at most width cells, marking the cut with an ellipsis.
func truncate(s string, width int, ctx *uax11.Context) string {
	if width <= 0 {
		return ""
	}
	if displayWidth(s, ctx) <= width {
		return s
	}
	runes := []rune(s)
	for n := len(runes) - 1; n > 0; n-- {
		t := string(runes[:n]) + "…"
		if displayWidth(t, ctx) <= width {
			return t
		}
	}
	return "…"
}

// --- Config for terminals --------------------------------------------------

// ConfigFromTerminal is a simple helper for creating an outline Config.
// It checks wether stdout is a terminal, and if so it reads the terminal's width
// and sets the Config.LineWidth parameter accordingly.
func ConfigFromTerminal() *Config {
	config := &Config{}
	fd := int(os.Stdout.Fd())
	if term.IsTerminal(fd) {
		w, _, err := term.GetSize(fd)
		if err != nil || w <= 10 {
			config.LineWidth = 80
		} else {
			config.LineWidth = w
		}
	} else {
		config.LineWidth = 0
	}
	tracer().Infof("outline line width = %d", config.LineWidth)
	return config
}
