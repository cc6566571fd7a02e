package domain

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/docweld/docweld/internal/adapter"
	m "github.com/docweld/docweld/internal/model"
)

// SyncArgs configures one sync run.
type SyncArgs struct {
	Paths   []m.Path // roots or files, with optional /... recursive suffix
	Root    m.Path   // containment boundary for target paths; "" = common cwd
	Exclude []string // regexes matched against discovered file paths
	Ext     string   // source file extension, e.g. ".rs"
	DryRun  bool     // compute results but never write
	Threads int      // parallel workers across files
	Files   []m.Path // pre-discovered files; when set, Sync skips discovery
}

// Workflow defines the operations the CLI layer drives.
type Workflow interface {
	Discover(args SyncArgs) ([]m.Path, error)
	Sync(ctx context.Context, args SyncArgs) ([]m.FileResult, error)
}

type workflow struct {
	fsAdapter adapter.SourceFSAdapter
	onFile    func(m.FileResult)
	mu        sync.Mutex
}

// NewWorkflow creates a Workflow backed by the provided filesystem adapter.
// onFile, when non-nil, is invoked once per processed file as workers finish;
// calls are serialized but arrive in completion order, not discovery order.
func NewWorkflow(fsAdapter adapter.SourceFSAdapter, onFile func(m.FileResult)) Workflow {
	return &workflow{fsAdapter: fsAdapter, onFile: onFile}
}

func (w *workflow) emit(res m.FileResult) {
	if w.onFile == nil {
		return
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	w.onFile(res)
}

// Discover walks the argument paths and returns the deduplicated, ordered
// list of source files to process.
func (w *workflow) Discover(args SyncArgs) ([]m.Path, error) {
	ext := args.Ext
	if ext == "" {
		ext = ".rs"
	}

	excludes, err := compileExcludes(args.Exclude)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{})

	var files []m.Path

	for _, root := range args.Paths {
		rootStr, recursive := parseRootPath(string(root))

		abs, err := w.fsAdapter.Abs(m.Path(rootStr))
		if err != nil {
			return nil, fmt.Errorf("root path error: %w", err)
		}

		info, err := w.fsAdapter.FileInfo(abs)
		if err != nil {
			return nil, fmt.Errorf("root path error: %w", err)
		}

		if !info.IsDir() {
			addFile(seen, &files, abs, ext, excludes)
			continue
		}

		err = w.fsAdapter.Walk(abs, recursive, func(path string, info os.FileInfo, err error) error {
			if err != nil {
				return err
			}

			if info.IsDir() {
				if isHiddenDir(path, string(abs)) {
					return filepath.SkipDir
				}

				return nil
			}

			addFile(seen, &files, m.Path(path), ext, excludes)

			return nil
		})
		if err != nil {
			return nil, err
		}
	}

	return files, nil
}

// Sync discovers files and processes each one with up to args.Threads
// workers. Results come back in discovery order regardless of completion
// order; writing happens inside the worker, at most once per file, and only
// when the file resolved cleanly.
func (w *workflow) Sync(ctx context.Context, args SyncArgs) ([]m.FileResult, error) {
	files := args.Files
	if files == nil {
		var err error

		files, err = w.Discover(args)
		if err != nil {
			return nil, err
		}
	}

	root, err := w.resolveRoot(args, files)
	if err != nil {
		return nil, err
	}

	resolver := NewPathResolver(root)
	loader := TargetLoaderFunc(func(path m.Path) ([]string, error) {
		data, err := w.fsAdapter.ReadFile(path)
		if err != nil {
			return nil, err
		}

		return SplitLines(string(data)), nil
	})
	engine := NewEngine(resolver, loader)

	threads := args.Threads
	if threads <= 0 {
		threads = 1
	}

	results := make([]m.FileResult, len(files))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(threads)

	for i, file := range files {
		i, file := i, file
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			res, err := w.syncOne(engine, file, args.DryRun)
			if err != nil {
				return err
			}

			results[i] = res
			w.emit(res)

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}

// syncOne processes a single source file and writes it back when allowed.
// I/O errors on the source file itself abort the run; pair-level failures are
// carried in the result.
func (w *workflow) syncOne(engine *Engine, file m.Path, dryRun bool) (m.FileResult, error) {
	data, err := w.fsAdapter.ReadFile(file)
	if err != nil {
		return m.FileResult{}, fmt.Errorf("read %s: %w", file, err)
	}

	src := string(data)

	out, pairs, errs := engine.SyncFile(file, src)

	res := m.FileResult{
		Path:    file,
		Pairs:   pairs,
		Changed: out != src,
		Errors:  errs,
	}

	if res.Changed && res.OK() && !dryRun {
		info, err := w.fsAdapter.FileInfo(file)
		if err != nil {
			return m.FileResult{}, fmt.Errorf("stat %s: %w", file, err)
		}

		if err := w.fsAdapter.WriteFile(file, []byte(out), info.Mode().Perm()); err != nil {
			return m.FileResult{}, fmt.Errorf("write %s: %w", file, err)
		}

		res.Written = true
	}

	return res, nil
}

// resolveRoot picks the containment boundary for target resolution: the
// configured root when given, otherwise the current working directory.
func (w *workflow) resolveRoot(args SyncArgs, _ []m.Path) (m.Path, error) {
	if args.Root != "" {
		return w.fsAdapter.Abs(args.Root)
	}

	return w.fsAdapter.Abs(".")
}

// SplitLines splits file content into lines for range selection. A trailing
// newline does not produce a phantom empty last line, matching how authors
// count lines in an editor.
func SplitLines(s string) []string {
	if s == "" {
		return nil
	}

	s = strings.TrimSuffix(s, "\n")

	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}

	return lines
}

// parseRootPath extracts the root path and recursive flag from a path string.
func parseRootPath(rootStr string) (path string, recursive bool) {
	if len(rootStr) >= 4 && rootStr[len(rootStr)-4:] == "/..." {
		return rootStr[:len(rootStr)-4], true
	}

	return rootStr, false
}

func compileExcludes(patterns []string) ([]*regexp.Regexp, error) {
	res := make([]*regexp.Regexp, 0, len(patterns))

	for _, p := range patterns {
		re, err := regexp.Compile(p)
		if err != nil {
			return nil, fmt.Errorf("invalid exclude pattern %q: %w", p, err)
		}

		res = append(res, re)
	}

	return res, nil
}

func addFile(seen map[string]struct{}, files *[]m.Path, path m.Path, ext string, excludes []*regexp.Regexp) {
	p := string(path)

	if filepath.Ext(p) != ext {
		return
	}

	for _, re := range excludes {
		if re.MatchString(p) {
			return
		}
	}

	if _, ok := seen[p]; ok {
		return
	}

	seen[p] = struct{}{}
	*files = append(*files, path)
}

// isHiddenDir reports whether path is a dot-directory (VCS metadata and the
// like) below the walk root.
func isHiddenDir(path, root string) bool {
	if path == root {
		return false
	}

	base := filepath.Base(path)

	return strings.HasPrefix(base, ".") && base != "." && base != ".."
}
