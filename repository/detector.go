// Package repository walks an input directory for target-language source
// files and detects the project root containing it. Out of core scope
// (§1), adapted from the teacher's inspector/repository package: trimmed to
// the one manifest marker relevant to the target language (Package.swift)
// plus the generic .git marker, since no other ecosystem's manifest format
// applies here.
package repository

import (
	"bufio"
	"os"
	"path/filepath"
	"strings"
)

// SourceExtension is the target language's source file suffix, used by the
// directory walker (FindSourceFiles).
const SourceExtension = ".swift"

// ProjectMarker is the target language's own project-manifest file name.
const ProjectMarker = "Package.swift"

// Project describes the project root containing a scanned file or directory.
type Project struct {
	RootPath string
	Name     string
	HasGit   bool
	Origin   string
}

// Detector finds the nearest enclosing project root for a path.
type Detector struct {
	markers []string
}

// New creates a Detector recognizing the target language's manifest and the
// generic .git marker.
func New() *Detector {
	return &Detector{markers: []string{ProjectMarker, ".git"}}
}

// DetectProject searches upward from path for the nearest marker file.
func (d *Detector) DetectProject(path string) (*Project, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}

	startDir := absPath
	if info, err := os.Stat(absPath); err == nil && !info.IsDir() {
		startDir = filepath.Dir(absPath)
	}

	root := d.findRoot(startDir)
	if root == "" {
		root = startDir
	}

	proj := &Project{RootPath: root, Name: filepath.Base(root)}
	gitRoot := d.findGitRoot(startDir)
	if gitRoot != "" {
		proj.HasGit = true
		proj.Origin = extractGitOrigin(gitRoot)
	}
	return proj, nil
}

func (d *Detector) findRoot(startDir string) string {
	dir := startDir
	for {
		for _, marker := range d.markers {
			if _, err := os.Stat(filepath.Join(dir, marker)); err == nil {
				return dir
			}
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return ""
		}
		dir = parent
	}
}

func (d *Detector) findGitRoot(startDir string) string {
	dir := startDir
	for {
		if _, err := os.Stat(filepath.Join(dir, ".git")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return ""
		}
		dir = parent
	}
}

// extractGitOrigin reads the origin remote URL straight out of .git/config,
// exactly as the teacher's detector does (no git binary dependency).
func extractGitOrigin(gitRoot string) string {
	f, err := os.Open(filepath.Join(gitRoot, ".git", "config"))
	if err != nil {
		return ""
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	foundRemote := false
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if strings.Contains(line, `[remote "origin"]`) {
			foundRemote = true
			continue
		}
		if foundRemote && strings.HasPrefix(line, "url = ") {
			return strings.TrimPrefix(line, "url = ")
		}
	}
	return ""
}
