package controller

import (
	m "github.com/docweld/docweld/internal/model"
)

// Message types.
type fileDoneMsg struct {
	res m.FileResult
}

type finishedMsg struct {
	results []m.FileResult
}
