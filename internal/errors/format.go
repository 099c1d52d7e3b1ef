package errors

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

type paintFunc func(a ...any) string

// palette holds one paint function per part of a rendered error.
type palette struct {
	label, category, message paintFunc
	usageLabel, usage        paintFunc
	fixLabel, bullet         paintFunc
}

var colored = palette{
	label:      color.New(color.FgRed, color.Bold).SprintFunc(),
	category:   color.New(color.FgYellow).SprintFunc(),
	message:    color.New(color.FgRed).SprintFunc(),
	usageLabel: color.New(color.FgCyan, color.Bold).SprintFunc(),
	usage:      color.New(color.FgCyan).SprintFunc(),
	fixLabel:   color.New(color.FgGreen, color.Bold).SprintFunc(),
	bullet:     color.New(color.FgGreen).SprintFunc(),
}

var monochrome = palette{
	label: fmt.Sprint, category: fmt.Sprint, message: fmt.Sprint,
	usageLabel: fmt.Sprint, usage: fmt.Sprint,
	fixLabel: fmt.Sprint, bullet: fmt.Sprint,
}

// FormatError renders a CLIError for the terminal. Colors follow
// color.NoColor, which fatih/color sets when stderr is not a terminal.
func FormatError(err *CLIError) string {
	if color.NoColor {
		return FormatErrorPlain(err)
	}
	return render(err, colored)
}

// FormatErrorPlain renders a CLIError without escape sequences.
func FormatErrorPlain(err *CLIError) string {
	return render(err, monochrome)
}

func render(err *CLIError, p palette) string {
	if err == nil {
		return ""
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "%s [%s]: %s\n", p.label("Error"), p.category(err.Category), p.message(err.Message))

	if err.Usage != "" {
		fmt.Fprintf(&sb, "\n%s%s\n", p.usageLabel("Usage: "), p.usage(err.Usage))
	}

	if len(err.Remediation) > 0 {
		fmt.Fprintf(&sb, "\n%s\n", p.fixLabel("To fix this:"))
		for _, step := range err.Remediation {
			fmt.Fprintf(&sb, "  %s %s\n", p.bullet("•"), step)
		}
	}

	return sb.String()
}

// FprintError writes a rendered CLIError to w. A nil error writes nothing.
func FprintError(w io.Writer, err *CLIError) {
	if err == nil {
		return
	}
	io.WriteString(w, FormatError(err))
}
