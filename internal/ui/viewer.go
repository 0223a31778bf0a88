package ui

import "touca/internal/domain"

// Viewer displays testcase results interactively
type Viewer interface {
	View(results []domain.CaseResult) error
}
