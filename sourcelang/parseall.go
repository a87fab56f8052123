package sourcelang

import (
	"context"
	"sort"

	"golang.org/x/sync/errgroup"
)

// ParseError records a per-file parse or read failure; per §7 it is
// recoverable — the offending file is skipped and reported, analysis
// continues over the rest.
type ParseError struct {
	Path string
	Err  error
}

// Reader yields a file's raw bytes; it is the only collaborator boundary
// between ParseAll and the file system.
type Reader func(path string) ([]byte, error)

// ParseAll parses every path in a bounded worker pool and returns results
// ordered by input path, regardless of completion order, so IDs built from
// the result stay deterministic (§5). Per-file read or parse failures are
// collected as ParseError and the file is omitted from the result.
func ParseAll(ctx context.Context, parser Parser, paths []string, read Reader) ([]*ParsedFile, []ParseError) {
	sorted := append([]string(nil), paths...)
	sort.Strings(sorted)

	results := make([]*ParsedFile, len(sorted))
	errs := make([]error, len(sorted))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workerLimit())

	for idx, path := range sorted {
		idx, path := idx, path
		g.Go(func() error {
			if gctx.Err() != nil {
				return nil
			}
			src, err := read(path)
			if err != nil {
				errs[idx] = err
				return nil
			}
			pf, err := parser.ParseFile(path, src)
			if err != nil {
				errs[idx] = err
				return nil
			}
			results[idx] = pf
			return nil
		})
	}
	_ = g.Wait()

	var parsed []*ParsedFile
	var failures []ParseError
	for i, pf := range results {
		if errs[i] != nil {
			failures = append(failures, ParseError{Path: sorted[i], Err: errs[i]})
			continue
		}
		if pf != nil {
			parsed = append(parsed, pf)
		}
	}
	return parsed, failures
}

func workerLimit() int {
	return 8
}
