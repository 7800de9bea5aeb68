package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/danieljhkim/namefit/internal/config"
)

var (
	successColor = color.New(color.FgGreen, color.Bold)
	warningColor = color.New(color.FgYellow, color.Bold)
	errorColor   = color.New(color.FgRed, color.Bold)
	infoColor    = color.New(color.FgCyan)
	headerColor  = color.New(color.FgBlue, color.Bold)
	labelColor   = color.New(color.FgWhite, color.Bold)
	valueColor   = color.New(color.FgHiBlack)
	dimColor     = color.New(color.FgHiBlack)
)

// setupColor decides once per command whether output is colored.
func setupColor(mode config.ColorMode) {
	switch mode {
	case config.ColorAlways:
		color.NoColor = false
	case config.ColorNever:
		color.NoColor = true
	default:
		color.NoColor = os.Getenv("NO_COLOR") != "" || !term.IsTerminal(int(os.Stdout.Fd()))
	}
}

// printer writes report lines. Errors go to the error stream, the rest to out.
type printer struct {
	out io.Writer
	err io.Writer
}

func newPrinter(cmd *cobra.Command) *printer {
	return &printer{out: cmd.OutOrStdout(), err: cmd.ErrOrStderr()}
}

// PrintSection prints a section header
func (p *printer) PrintSection(title string) {
	_, _ = fmt.Fprintln(p.out)
	_, _ = headerColor.Fprintf(p.out, "▸ %s\n", title)
	_, _ = fmt.Fprintln(p.out)
}

// PrintSuccess prints a success message with a checkmark
func (p *printer) PrintSuccess(msg string) {
	_, _ = successColor.Fprintf(p.out, "✓ %s\n", msg)
}

// PrintWarning prints a warning message with a warning symbol
func (p *printer) PrintWarning(msg string) {
	_, _ = warningColor.Fprintf(p.out, "⚠ %s\n", msg)
}

// PrintError prints an error message to the error stream
func (p *printer) PrintError(msg string) {
	_, _ = errorColor.Fprintf(p.err, "✗ %s\n", msg)
}

// PrintInfo prints an informational message
func (p *printer) PrintInfo(msg string) {
	_, _ = fmt.Fprintln(p.out, msg)
}

// PrintRename prints one old → new line
func (p *printer) PrintRename(verb, oldName, newName string) {
	_, _ = fmt.Fprintf(p.out, "%s: %q ", verb, oldName)
	_, _ = dimColor.Fprint(p.out, "→")
	_, _ = infoColor.Fprintf(p.out, " %q\n", newName)
}

// PrintLabelValue prints a label-value pair with proper formatting
func (p *printer) PrintLabelValue(label, value string) {
	_, _ = labelColor.Fprintf(p.out, "  %s: ", label)
	_, _ = valueColor.Fprintln(p.out, value)
}

// PrintTable prints a simple table
func (p *printer) PrintTable(headers []string, rows [][]string) {
	if len(headers) == 0 || len(rows) == 0 {
		return
	}

	colWidths := make([]int, len(headers))
	for i, header := range headers {
		colWidths[i] = len(header)
	}
	for _, row := range rows {
		for i, cell := range row {
			if i < len(colWidths) && len(cell) > colWidths[i] {
				colWidths[i] = len(cell)
			}
		}
	}

	_, _ = fmt.Fprint(p.out, "  ")
	for i, header := range headers {
		if i > 0 {
			_, _ = fmt.Fprint(p.out, "  ")
		}
		_, _ = headerColor.Fprintf(p.out, "%-*s", colWidths[i], header)
	}
	_, _ = fmt.Fprintln(p.out)

	_, _ = fmt.Fprint(p.out, "  ")
	for i, width := range colWidths {
		if i > 0 {
			_, _ = fmt.Fprint(p.out, "  ")
		}
		_, _ = fmt.Fprint(p.out, strings.Repeat("-", width))
	}
	_, _ = fmt.Fprintln(p.out)

	for _, row := range rows {
		_, _ = fmt.Fprint(p.out, "  ")
		for i, cell := range row {
			if i >= len(colWidths) {
				break
			}
			if i > 0 {
				_, _ = fmt.Fprint(p.out, "  ")
			}
			_, _ = valueColor.Fprintf(p.out, "%-*s", colWidths[i], cell)
		}
		_, _ = fmt.Fprintln(p.out)
	}
}

// PrintEmptyState prints a message when there's no data to show
func (p *printer) PrintEmptyState(msg string) {
	_, _ = dimColor.Fprintf(p.out, "  %s\n", msg)
}

// PrintCount prints a count with proper formatting
func PrintCount(count int, singular, plural string) string {
	if count == 1 {
		return fmt.Sprintf("%d %s", count, singular)
	}
	return fmt.Sprintf("%d %s", count, plural)
}
