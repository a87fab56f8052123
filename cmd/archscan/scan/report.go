package scan

import (
	"fmt"

	"github.com/viant/archscan/result"
	"github.com/viant/archscan/signal"
	"github.com/viant/archscan/validate"
)

// ANSI color codes for the default text report. No external color library
// in the retrieval pack is actually exercised for this (see DESIGN.md), so
// this stays a minimal hand-rolled set, gated by --no-color.
const (
	colorReset  = "\x1b[0m"
	colorRed    = "\x1b[31m"
	colorYellow = "\x1b[33m"
	colorCyan   = "\x1b[36m"
)

func severityColor(s signal.Severity) string {
	switch s {
	case signal.SeverityError:
		return colorRed
	case signal.SeverityWarning:
		return colorYellow
	default:
		return colorCyan
	}
}

func printReport(res *result.Result, validationFindings []validate.Finding, colorize bool) {
	fmt.Printf("files=%d types=%d functions=%d callSites=%d\n",
		res.Summary.FileCount, res.Summary.TypeCount, res.Summary.FunctionCount, res.Summary.CallSiteCount)
	fmt.Printf("signals: %d error, %d warning, %d info\n",
		res.Summary.ErrorCount, res.Summary.WarningCount, res.Summary.InfoCount)

	for _, f := range res.Signals {
		fmt.Println(formatFinding(f.Name, string(f.Severity), f.Message, f.File, colorize))
	}

	for _, v := range validationFindings {
		fmt.Println(formatFinding("validation", string(v.Severity), v.Message, nil, colorize))
	}
}

func formatFinding(name, severity, message string, file *string, colorize bool) string {
	location := ""
	if file != nil {
		location = " (" + *file + ")"
	}
	line := fmt.Sprintf("[%s] %s: %s%s", severity, name, message, location)
	if !colorize {
		return line
	}
	return severityColor(signal.Severity(severity)) + line + colorReset
}
