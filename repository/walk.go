package repository

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/viant/afs"
	"github.com/viant/afs/option"
)

// FindSourceFiles walks root recursively with afs and returns every file
// whose name ends in SourceExtension, sorted by path — the deterministic
// ordering the IR Builder's ID stability depends on (§5/§9).
func FindSourceFiles(ctx context.Context, root string) ([]string, error) {
	fs := afs.New()
	objects, err := fs.List(ctx, root, option.NewRecursive(true))
	if err != nil {
		return nil, fmt.Errorf("cannot enumerate %s: %w", root, err)
	}

	var paths []string
	for _, obj := range objects {
		if obj.IsDir() {
			continue
		}
		if strings.HasSuffix(obj.Name(), SourceExtension) {
			paths = append(paths, obj.URL())
		}
	}
	sort.Strings(paths)
	return paths, nil
}

// ReadFile reads one file's bytes through afs; the scan command wraps it in
// the sourcelang.Reader that ParseAll expects.
func ReadFile(ctx context.Context, path string) ([]byte, error) {
	fs := afs.New()
	data, err := fs.DownloadWithURL(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("cannot read %s: %w", path, err)
	}
	return data, nil
}
