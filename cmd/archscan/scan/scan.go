// Package scan implements the `archscan scan` subcommand: the full
// parse → IR → graphs → signals → export pipeline wired around the core per
// §6's CLI surface.
package scan

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/viant/archscan/export"
	"github.com/viant/archscan/graph"
	"github.com/viant/archscan/ir"
	"github.com/viant/archscan/repository"
	"github.com/viant/archscan/result"
	"github.com/viant/archscan/signal"
	"github.com/viant/archscan/sourcelang"
	"github.com/viant/archscan/validate"
)

// Run executes the scan subcommand and returns the process exit code.
// Fatal errors (bad input path, directory enumeration failure, output write
// failure) return non-zero; per-file parse/read failures are recoverable —
// they are skipped and folded into the report as `parse-error` findings
// (§7), and do not by themselves fail the exit code.
func Run(args []string) int {
	fs := flag.NewFlagSet("scan", flag.ExitOnError)
	exportFormat := fs.String("export", "", "export format: json|dot|mermaid")
	output := fs.String("output", "", "write export to this path instead of stdout")
	configPath := fs.String("config", "", "YAML file overriding signal thresholds")
	validateFlag := fs.Bool("validate", false, "run the referential-integrity validator")
	verbose := fs.Bool("verbose", false, "print summary counts and a content hash")
	quiet := fs.Bool("quiet", false, "suppress non-essential output")
	noColor := fs.Bool("no-color", false, "disable ANSI colors in the default report")
	fs.Parse(args)

	if fs.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "usage: archscan scan <path> [flags]")
		return 2
	}
	path := fs.Arg(0)

	if _, err := os.Stat(path); err != nil {
		fmt.Fprintf(os.Stderr, "path not found: %s\n", path)
		return 2
	}

	ctx := context.Background()

	paths, err := repository.FindSourceFiles(ctx, path)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 2
	}

	parser := sourcelang.NewSourceParser()
	read := func(p string) ([]byte, error) { return repository.ReadFile(ctx, p) }
	parsedFiles, parseErrors := sourcelang.ParseAll(ctx, parser, paths, read)

	builtIR := ir.Build(parsedFiles)
	graphs := graph.Build(builtIR)

	thresholds, err := loadThresholds(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 2
	}

	findings := signal.NewEngine(thresholds).Run(builtIR, graphs)
	for _, pe := range parseErrors {
		p := pe.Path
		findings = append(findings, signal.Finding{
			Name: "parse-error", Severity: signal.SeverityWarning,
			Message: pe.Err.Error(), File: &p,
		})
	}
	signal.SortFindings(findings)

	res := result.Build(builtIR, graphs, findings)

	var validationFindings []validate.Finding
	if *validateFlag {
		validationFindings = validate.Run(builtIR)
	}

	if err := writeExport(res, *exportFormat, *output); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 2
	}

	if *exportFormat == "" && !*quiet {
		printReport(res, validationFindings, !*noColor)
	}

	if *verbose {
		printVerbose(res)
	}

	return 0
}

func writeExport(res *result.Result, format, output string) error {
	if format == "" {
		return nil
	}

	var content string
	switch format {
	case "json":
		data, err := export.JSON(res)
		if err != nil {
			return fmt.Errorf("render json export: %w", err)
		}
		content = string(data)
	case "dot":
		content = export.DOT(res)
	case "mermaid":
		content = export.Mermaid(res)
	default:
		return fmt.Errorf("unknown export format %q", format)
	}

	if output == "" {
		fmt.Println(content)
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(output), 0o755); err != nil {
		return fmt.Errorf("write output %s: %w", output, err)
	}
	if err := os.WriteFile(output, []byte(content), 0o644); err != nil {
		return fmt.Errorf("write output %s: %w", output, err)
	}
	return nil
}

func printVerbose(res *result.Result) {
	data, err := export.JSON(res)
	if err != nil {
		fmt.Fprintln(os.Stderr, "compute content hash:", err)
		return
	}
	hash, err := export.ContentHash(data)
	if err != nil {
		fmt.Fprintln(os.Stderr, "compute content hash:", err)
		return
	}
	fmt.Printf("files=%d types=%d functions=%d callSites=%d hash=%016x\n",
		res.Summary.FileCount, res.Summary.TypeCount, res.Summary.FunctionCount,
		res.Summary.CallSiteCount, hash)
}
