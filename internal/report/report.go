// Package report renders run results for the terminal.
package report

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/san-kum/stocksim/internal/analysis"
	"github.com/san-kum/stocksim/internal/experiment"
)

func newTable(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(borderColor)).
		Headers(headers...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})
}

func kv(label string, value any) string {
	return labelStyle.Render(label+":") + " " + valueStyle.Render(fmt.Sprint(value))
}

func num(v float64) string {
	return strconv.FormatFloat(v, 'g', 6, 64)
}

// Run renders the parameters and terminal-value summary of one run.
func Run(res *experiment.Result) string {
	p := res.Params
	steps, samples := res.Paths.Dims()

	var b strings.Builder
	b.WriteString(titleStyle.Render(fmt.Sprintf("%s · %s", res.Scheme, res.Mode)))
	b.WriteString("\n")
	b.WriteString(strings.Join([]string{
		kv("seed", res.Seed),
		kv("samples", samples),
		kv("steps", steps),
		kv("elapsed", res.Elapsed.Round(time.Microsecond)),
	}, "  "))
	b.WriteString("\n")
	b.WriteString(strings.Join([]string{
		kv("dt", num(p.Dt)),
		kv("T", num(p.T)),
		kv("S0", num(p.S0)),
		kv("σ0", num(p.Sigma0)),
		kv("ξ0", num(p.Xi0)),
		kv("μ", num(p.Mu)),
		kv("p", num(p.P)),
		kv("α", num(p.Alpha)),
	}, "  "))
	b.WriteString("\n")
	b.WriteString(Summary(analysis.SummarizePaths(res.Paths)))
	return b.String()
}

// Summary renders one row per series.
func Summary(rows []analysis.Summary) string {
	t := newTable("series", "mean", "std", "min", "p05", "p50", "p95", "max")
	for _, s := range rows {
		t.Row(s.Series, num(s.Mean), num(s.Std), num(s.Min), num(s.P05), num(s.P50), num(s.P95), num(s.Max))
	}
	return t.Render()
}

type CompareRow struct {
	Scheme   string
	Stock    analysis.Summary
	Vol      analysis.Summary
	Elapsed  time.Duration
	RelaxErr float64
	HasRelax bool
	Err      error
}

// Compare renders schemes side by side. The relaxation column is only
// meaningful for frozen-volatility runs.
func Compare(rows []CompareRow) string {
	t := newTable("scheme", "stock mean", "stock std", "vol mean", "vol std", "ξ max err", "time")
	for _, r := range rows {
		if r.Err != nil {
			t.Row(r.Scheme, errStyle.Render(r.Err.Error()), "", "", "", "", "")
			continue
		}
		relax := "-"
		if r.HasRelax {
			relax = strconv.FormatFloat(r.RelaxErr, 'e', 2, 64)
		}
		t.Row(r.Scheme,
			num(r.Stock.Mean), num(r.Stock.Std),
			num(r.Vol.Mean), num(r.Vol.Std),
			relax, r.Elapsed.Round(time.Microsecond).String())
	}
	return t.Render()
}

type BenchRow struct {
	Scheme  string
	Mode    string
	Samples int
	Steps   int
	Elapsed time.Duration
}

func (r BenchRow) StepsPerSec() float64 {
	if r.Elapsed <= 0 {
		return 0
	}
	return float64(r.Samples*r.Steps) / r.Elapsed.Seconds()
}

func Bench(rows []BenchRow) string {
	t := newTable("scheme", "mode", "samples", "steps", "time", "steps/sec")
	for _, r := range rows {
		t.Row(r.Scheme, r.Mode, strconv.Itoa(r.Samples), strconv.Itoa(r.Steps),
			r.Elapsed.Round(time.Microsecond).String(), fmt.Sprintf("%.0f", r.StepsPerSec()))
	}
	return t.Render()
}

// List renders a titled bullet list.
func List(title string, items []string) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(title))
	for _, item := range items {
		b.WriteString("\n  " + valueStyle.Render(item))
	}
	return b.String()
}
