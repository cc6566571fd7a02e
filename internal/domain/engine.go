package domain

import (
	"path/filepath"
	"sort"
	"strings"

	m "github.com/docweld/docweld/internal/model"
)

// TargetLoader loads a referenced file as a slice of lines. It is the only
// capability the engine needs from the outside world, which keeps the engine
// itself a pure transformation of in-memory text.
type TargetLoader interface {
	Load(path m.Path) ([]string, error)
}

// TargetLoaderFunc adapts a plain function to the TargetLoader interface.
type TargetLoaderFunc func(path m.Path) ([]string, error)

// Load calls f.
func (f TargetLoaderFunc) Load(path m.Path) ([]string, error) {
	return f(path)
}

// Engine orchestrates one file's sync: scan markers, resolve each pair's
// target and range, render, and splice the rendered block between the
// markers. Everything outside the content spans is copied through unchanged.
type Engine struct {
	resolver *PathResolver
	loader   TargetLoader
}

// NewEngine builds an engine from a path resolver and a target loader.
func NewEngine(resolver *PathResolver, loader TargetLoader) *Engine {
	return &Engine{resolver: resolver, loader: loader}
}

// splice is one planned replacement of a content span.
type splice struct {
	start int
	end   int
	text  string
}

// SyncFile computes the synced text for one source file. The returned pair
// count reflects every matched pair, including ones that failed. When any
// error is collected the input text is returned unchanged so callers never
// see a partially-synced file.
func (e *Engine) SyncFile(file m.Path, src string) (out string, pairs int, errs []*m.SyncError) {
	markerPairs, errs := ScanPairs(file, src)
	sourceDir := m.Path(filepath.Dir(string(file)))

	splices := make([]splice, 0, len(markerPairs))

	for _, pair := range markerPairs {
		sp, err := e.resolvePair(sourceDir, pair, src)
		if err != nil {
			err.SourceFile = file
			errs = append(errs, err)

			continue
		}

		splices = append(splices, sp)
	}

	if len(errs) > 0 {
		return src, len(markerPairs), errs
	}

	return applySplices(src, splices), len(markerPairs), nil
}

// resolvePair runs Resolve target → Select range → Render for one pair and
// plans its splice.
func (e *Engine) resolvePair(sourceDir m.Path, pair m.MarkerPair, src string) (splice, *m.SyncError) {
	target, ok := e.resolver.Resolve(sourceDir, pair.TargetPath)
	if !ok {
		return splice{}, &m.SyncError{
			Kind:   m.FailPathEscapesRoot,
			Line:   pair.StartSpan.Line,
			Target: pair.TargetPath,
		}
	}

	lines, err := e.loader.Load(target)
	if err != nil {
		return splice{}, &m.SyncError{
			Kind:   m.FailTargetNotFound,
			Line:   pair.StartSpan.Line,
			Target: pair.TargetPath,
			Detail: err.Error(),
		}
	}

	rng, serr := ResolveRange(pair, lines)
	if serr != nil {
		return splice{}, serr
	}

	rendered := RenderBlock(lines[rng.First-1:rng.Last], pair.Kind)

	return splice{
		start: pair.ContentStart(src),
		end:   pair.ContentEnd(),
		text:  strings.Join(rendered, "\n") + "\n",
	}, nil
}

// applySplices rebuilds the file text with every content span replaced. The
// spans are disjoint because ScanPairs rejects overlapping pairs, so each
// splice copies the untouched bytes before it and substitutes its own.
func applySplices(src string, splices []splice) string {
	sort.SliceStable(splices, func(i, j int) bool {
		return splices[i].start < splices[j].start
	})

	var b strings.Builder

	pos := 0

	for _, sp := range splices {
		b.WriteString(src[pos:sp.start])
		b.WriteString(sp.text)
		pos = sp.end
	}

	b.WriteString(src[pos:])

	return b.String()
}
