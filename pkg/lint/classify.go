package lint

import (
	"path/filepath"
	"strings"

	"github.com/leapstack-labs/scafflint/pkg/core"
)

// Classify derives a Target from the project root and a file path. The path
// may be absolute or already relative to the root; both are normalized to a
// slash-separated relative path before category matching, so results are
// identical across host path styles.
//
// Files under the project root that match no category directory classify as
// CategoryGeneral. Files outside the root classify as CategoryUnclassified;
// the Runner rejects those.
func Classify(projectRoot, filePath string) Target {
	rel := relativize(projectRoot, filePath)
	target := Target{
		RelPath: rel,
		Base:    baseOf(rel),
	}
	if rel == "" {
		target.Category = core.CategoryUnclassified
		return target
	}
	target.IsTest = IsTestFile(target.Base)

	switch {
	case underDir(rel, APIDir):
		target.Category = core.CategoryAPI
	case underDir(rel, ControllerDir):
		target.Category = core.CategoryController
	case underDir(rel, FunctionDir):
		target.Category = core.CategoryFunction
		target.Kind = FunctionKindOf(target.Base)
	case underDir(rel, DatabaseDir):
		target.Category = core.CategoryDatabase
	case underDir(rel, ComponentDir):
		target.Category = core.CategoryComponent
	default:
		target.Category = core.CategoryGeneral
	}
	return target
}

// relativize returns the slash-separated path of filePath relative to
// projectRoot, or "" when filePath does not live under the root.
func relativize(projectRoot, filePath string) string {
	root := filepath.ToSlash(filepath.Clean(projectRoot))
	path := filepath.ToSlash(filepath.Clean(filePath))

	if !filepath.IsAbs(path) {
		// Already relative to the root by the calling contract.
		if strings.HasPrefix(path, "../") || path == ".." {
			return ""
		}
		if path == "." {
			return ""
		}
		return path
	}

	rel, err := filepath.Rel(root, filepath.FromSlash(path))
	if err != nil {
		return ""
	}
	rel = filepath.ToSlash(rel)
	if rel == "." || rel == ".." || strings.HasPrefix(rel, "../") {
		return ""
	}
	return rel
}

// underDir reports whether rel is dir itself or a descendant of it.
func underDir(rel, dir string) bool {
	return rel == dir || strings.HasPrefix(rel, dir+"/")
}

// baseOf returns the last segment of a slash-separated path.
func baseOf(rel string) string {
	if i := strings.LastIndex(rel, "/"); i >= 0 {
		return rel[i+1:]
	}
	return rel
}
