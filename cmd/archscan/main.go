// Command archscan is the CLI surface of §6: a single `scan` subcommand
// dispatched the way the pack's nearest CLI-driven static-analysis tool
// (1homsi-gorisk's cmd/gorisk) structures its own flat switch over
// os.Args[1].
package main

import (
	"fmt"
	"os"

	"github.com/viant/archscan/cmd/archscan/scan"
)

var version = "dev"

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	switch os.Args[1] {
	case "scan":
		os.Exit(scan.Run(os.Args[2:]))
	case "version":
		fmt.Println(version)
	default:
		fmt.Fprintf(os.Stderr, "unknown subcommand: %s\n", os.Args[1])
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, `archscan — static-analysis engine for target-language source trees

Usage:
  archscan scan <path> [--export json|dot|mermaid] [--output path]
                       [--validate] [--config file.yaml]
                       [--verbose] [--quiet] [--no-color]
  archscan version`)
}
