package model

// FileResult holds the outcome of syncing a single source file.
type FileResult struct {
	Path    Path
	Pairs   int          // marker pairs found in the file
	Changed bool         // output differs from the on-disk content
	Written bool         // new content was written back
	Errors  []*SyncError // pair-level failures; non-empty blocks writing
}

// OK reports whether every pair in the file resolved.
func (r FileResult) OK() bool {
	return len(r.Errors) == 0
}

// RunSummary aggregates results across all processed files.
type RunSummary struct {
	Files   int
	Pairs   int
	Changed int
	Written int
	Failed  int
}

// Summarize folds per-file results into run totals.
func Summarize(results []FileResult) RunSummary {
	var s RunSummary

	for _, r := range results {
		s.Files++
		s.Pairs += r.Pairs

		if r.Changed {
			s.Changed++
		}

		if r.Written {
			s.Written++
		}

		if !r.OK() {
			s.Failed++
		}
	}

	return s
}
