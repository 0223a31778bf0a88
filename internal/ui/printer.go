package ui

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/fatih/color"

	"touca/internal/config"
	"touca/internal/domain"
)

// ModuleWorkflows groups the workflows discovered in one module for display
type ModuleWorkflows struct {
	Module    string
	Workflows []string
}

// Printer formats and displays output
type Printer struct {
	out    io.Writer
	cyan   *color.Color
	green  *color.Color
	red    *color.Color
	yellow *color.Color
	gray   *color.Color
	pass   *color.Color
	fail   *color.Color
}

// NewPrinter creates a Printer writing to out. Colors are disabled when
// colored is false.
func NewPrinter(out io.Writer, colored bool) *Printer {
	p := &Printer{
		out:    out,
		cyan:   color.New(color.FgCyan),
		green:  color.New(color.FgGreen),
		red:    color.New(color.FgRed),
		yellow: color.New(color.FgYellow),
		gray:   color.New(color.FgHiBlack),
		pass:   color.New(color.BgGreen, color.FgBlack),
		fail:   color.New(color.BgRed, color.FgBlack),
	}
	if !colored {
		for _, c := range []*color.Color{p.cyan, p.green, p.red, p.yellow, p.gray, p.pass, p.fail} {
			c.DisableColor()
		}
	}
	return p
}

// PrintHeader prints the run banner
func (p *Printer) PrintHeader(version string, workflows, testcases int) {
	if version == "" {
		version = "(unversioned)"
	}
	fmt.Fprintln(p.out)
	p.cyan.Fprintln(p.out, "Touca Test Runner")
	fmt.Fprintf(p.out, "Revision:  %s\n", version)
	fmt.Fprintf(p.out, "Workflows: %d\n", workflows)
	fmt.Fprintf(p.out, "Testcases: %d\n\n", testcases)
}

// PrintResults prints one line per testcase with the errors of failed ones
func (p *Printer) PrintResults(results []domain.CaseResult) {
	width := 0
	for _, r := range results {
		width = max(width, len(r.Testcase))
	}
	pad := int(math.Log10(float64(max(len(results), 1)))) + 1

	for i, r := range results {
		fmt.Fprintf(p.out, " %*d", pad, i+1)
		p.gray.Fprint(p.out, ". ")
		if r.Status == domain.StatusPass {
			p.pass.Fprint(p.out, " PASS ")
		} else {
			p.fail.Fprint(p.out, " FAIL ")
		}
		fmt.Fprintf(p.out, " %-*s", width, r.Testcase)
		p.gray.Fprintf(p.out, "   (%d ms)\n", r.Duration.Milliseconds())

		if len(r.Errors) > 0 {
			p.gray.Fprint(p.out, "\n   Errors:\n")
			for _, e := range r.Errors {
				fmt.Fprintf(p.out, "      - %s\n", e)
			}
			fmt.Fprintln(p.out)
		}
	}
}

// PrintFooter prints totals for the run
func (p *Printer) PrintFooter(stats domain.RunStats) {
	fmt.Fprint(p.out, "\nTestcases: ")
	if stats.Passed > 0 {
		p.green.Fprintf(p.out, "%d passed", stats.Passed)
		fmt.Fprint(p.out, ", ")
	}
	if stats.Failed > 0 {
		p.red.Fprintf(p.out, "%d failed", stats.Failed)
		fmt.Fprint(p.out, ", ")
	}
	fmt.Fprintf(p.out, "%d total\n", stats.Total)
	fmt.Fprintf(p.out, "Time:      %.2f s\n\n", stats.Duration.Seconds())
}

// PrintWorkflowTree prints discovered modules with their workflows
func (p *Printer) PrintWorkflowTree(modules []ModuleWorkflows) {
	if len(modules) == 0 {
		p.yellow.Fprintln(p.out, "No workflows found")
		return
	}

	total := 0
	for _, m := range modules {
		total += len(m.Workflows)
	}
	p.green.Fprintf(p.out, "Found %d workflow(s) in %d module(s):\n\n", total, len(modules))

	for i, m := range modules {
		isLastModule := i == len(modules)-1
		if isLastModule {
			p.cyan.Fprintf(p.out, "└── %s\n", m.Module)
		} else {
			p.cyan.Fprintf(p.out, "├── %s\n", m.Module)
		}

		branch := "│   "
		if isLastModule {
			branch = "    "
		}
		if len(m.Workflows) == 0 {
			fmt.Fprintf(p.out, "%s└── %s\n", branch, p.red.Sprint("(no workflows declared)"))
			continue
		}
		for j, name := range m.Workflows {
			connector := "├── "
			if j == len(m.Workflows)-1 {
				connector = "└── "
			}
			fmt.Fprintf(p.out, "%s%s%s\n", branch, connector, p.yellow.Sprint(name))
		}
	}
}

// PrintConfig prints the effective configuration, one option per line
func (p *Printer) PrintConfig(values config.Values) {
	keys := values.SortedKeys()
	width := 0
	for _, k := range keys {
		width = max(width, len(k))
	}
	for _, k := range keys {
		fmt.Fprintf(p.out, "%s  %s\n", p.cyan.Sprintf("%-*s", width, k), formatValue(values[k]))
	}
}

func formatValue(v any) string {
	if list, ok := v.([]string); ok {
		return strings.Join(list, ", ")
	}
	return fmt.Sprint(v)
}
