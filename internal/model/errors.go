package model

import (
	"errors"
	"fmt"
)

// FailureKind classifies everything that can go wrong for one marker pair.
type FailureKind int

const (
	// FailBadMarker is an annotation line that looks like a marker but does
	// not parse.
	FailBadMarker FailureKind = iota
	// FailUnterminatedMarker is a start with no following matching end.
	FailUnterminatedMarker
	// FailDanglingEnd is an end with no pending start for its target.
	FailDanglingEnd
	// FailMismatchedKind is a start/end pair for one target written with
	// different annotation forms.
	FailMismatchedKind
	// FailOverlappingPairs is a pair whose markers fall inside another pair's
	// region; rewriting either region would destroy the other pair's markers.
	FailOverlappingPairs
	// FailPathEscapesRoot is a target path that normalizes outside the root.
	FailPathEscapesRoot
	// FailTargetNotFound is a target file that could not be read.
	FailTargetNotFound
	// FailLineOutOfRange is a line selector outside [1, total lines].
	FailLineOutOfRange
	// FailTextNotFound is a text selector with no matching line.
	FailTextNotFound
	// FailInvertedRange is a resolved range with first > last.
	FailInvertedRange
)

func (k FailureKind) String() string {
	switch k {
	case FailBadMarker:
		return "invalid marker"
	case FailUnterminatedMarker:
		return "unterminated marker"
	case FailDanglingEnd:
		return "dangling end marker"
	case FailMismatchedKind:
		return "mismatched marker kind"
	case FailOverlappingPairs:
		return "overlapping marker pairs"
	case FailPathEscapesRoot:
		return "target path escapes root"
	case FailTargetNotFound:
		return "target file not found"
	case FailLineOutOfRange:
		return "line out of range"
	case FailTextNotFound:
		return "text not found"
	case FailInvertedRange:
		return "inverted range"
	}

	return "unknown failure"
}

// SyncError reports one marker-pair failure with enough context to fix the
// annotation: where the marker is, what it points at, and why it failed.
type SyncError struct {
	Kind       FailureKind
	SourceFile Path
	Line       int    // 1-based marker line in the source file
	Target     string // target path as written in the annotation
	Detail     string // selector or matching context, may be empty
}

func (e *SyncError) Error() string {
	msg := fmt.Sprintf("%s:%d: %s", e.SourceFile, e.Line, e.Kind)
	if e.Target != "" {
		msg += fmt.Sprintf(" (target %q)", e.Target)
	}

	if e.Detail != "" {
		msg += ": " + e.Detail
	}

	return msg
}

// Is lets errors.Is match on the failure kind alone.
func (e *SyncError) Is(target error) bool {
	var se *SyncError
	if errors.As(target, &se) {
		return se.Kind == e.Kind
	}

	return false
}
