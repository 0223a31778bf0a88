package ui

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"touca/internal/domain"
)

// FailureViewer displays failed testcases in an interactive TUI
type FailureViewer struct{}

// NewFailureViewer creates a new FailureViewer
func NewFailureViewer() *FailureViewer {
	return &FailureViewer{}
}

// View displays the failed testcases among results
func (fv *FailureViewer) View(results []domain.CaseResult) error {
	failures := Failures(results)
	if len(failures) == 0 {
		return nil
	}

	app := tview.NewApplication()

	list := tview.NewList().
		ShowSecondaryText(false).
		SetHighlightFullLine(true)
	for i, failure := range failures {
		list.AddItem(fmt.Sprintf("[yellow]%d.[white] %s", i+1, tview.Escape(failure.Testcase)), "", 0, nil)
	}
	list.SetMainTextColor(tview.Styles.PrimaryTextColor).
		SetSelectedTextColor(tcell.ColorWhite).
		SetSelectedBackgroundColor(tcell.ColorDarkCyan)

	detailsView := tview.NewTextView().
		SetDynamicColors(true).
		SetWrap(true).
		SetWordWrap(true)

	flex := tview.NewFlex().
		SetDirection(tview.FlexColumn).
		AddItem(list, 0, 1, true).
		AddItem(detailsView, 0, 2, false)

	headerView := tview.NewTextView().
		SetTextAlign(tview.AlignCenter).
		SetDynamicColors(true).
		SetText(fmt.Sprintf(" Failed testcases (%d of %d) | Use ↑↓ to navigate, → to view details, ← to go back, q to exit ", len(failures), len(results)))

	updateDetails := func() {
		index := list.GetCurrentItem()
		if index >= 0 && index < len(failures) {
			detailsView.SetText(FormatFailureDetails(failures[index]))
			detailsView.ScrollToBeginning()
		}
	}

	quit := func(event *tcell.EventKey) bool {
		return event.Key() == tcell.KeyCtrlC || (event.Key() == tcell.KeyRune && (event.Rune() == 'q' || event.Rune() == 'Q'))
	}

	list.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch {
		case quit(event):
			app.Stop()
			return nil
		case event.Key() == tcell.KeyEnter, event.Key() == tcell.KeyRight:
			app.SetFocus(detailsView)
			return nil
		}
		return event
	})

	detailsView.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch {
		case quit(event):
			app.Stop()
			return nil
		case event.Key() == tcell.KeyLeft, event.Key() == tcell.KeyEsc:
			app.SetFocus(list)
			return nil
		}
		return event
	})

	list.SetChangedFunc(func(int, string, string, rune) {
		updateDetails()
	})
	updateDetails()

	mainLayout := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(headerView, 1, 0, false).
		AddItem(tview.NewBox(), 1, 0, false).
		AddItem(flex, 0, 1, true)

	if err := app.SetRoot(mainLayout, true).SetFocus(list).Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	return nil
}

// Failures returns the failed results, in order
func Failures(results []domain.CaseResult) []domain.CaseResult {
	var failed []domain.CaseResult
	for _, r := range results {
		if r.Status == domain.StatusFail {
			failed = append(failed, r)
		}
	}
	return failed
}

// FormatFailureDetails formats a failed testcase using tview color tags
func FormatFailureDetails(result domain.CaseResult) string {
	var b strings.Builder
	fmt.Fprintf(&b, "[red]✗ Testcase: %s[white]\n", tview.Escape(result.Testcase))
	fmt.Fprintf(&b, "[cyan]Duration: %d ms[white]\n\n", result.Duration.Milliseconds())

	if len(result.Errors) == 0 {
		b.WriteString("[gray]No error details recorded[white]\n")
		return b.String()
	}
	b.WriteString("[yellow]Errors:[white]\n")
	for _, e := range result.Errors {
		fmt.Fprintf(&b, "  - %s\n", tview.Escape(e))
	}
	return b.String()
}
