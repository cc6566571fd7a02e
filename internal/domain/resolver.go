package domain

import (
	"path/filepath"
	"strings"

	m "github.com/docweld/docweld/internal/model"
)

// PathResolver resolves marker target paths against the directory of the
// source file while enforcing a root boundary. Containment is lexical only:
// `.` and `..` segments are normalized, but symlinks are not followed, so
// this is a guard against stray annotations, not a security boundary.
type PathResolver struct {
	root string
}

// NewPathResolver builds a resolver for the given root directory. The root
// should already be absolute and cleaned; the workflow layer guarantees that.
func NewPathResolver(root m.Path) *PathResolver {
	return &PathResolver{root: filepath.Clean(string(root))}
}

// Resolve turns a target path as written in an annotation into an absolute
// path on or under the root. Relative targets are resolved against the
// directory containing the source file.
func (r *PathResolver) Resolve(sourceDir m.Path, target string) (m.Path, bool) {
	p := filepath.FromSlash(target)
	if !filepath.IsAbs(p) {
		p = filepath.Join(string(sourceDir), p)
	}

	p = filepath.Clean(p)

	if !r.contains(p) {
		return "", false
	}

	return m.Path(p), true
}

func (r *PathResolver) contains(p string) bool {
	if p == r.root {
		return true
	}

	prefix := r.root
	if !strings.HasSuffix(prefix, string(filepath.Separator)) {
		prefix += string(filepath.Separator)
	}

	return strings.HasPrefix(p, prefix)
}
