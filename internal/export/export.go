// Package export writes simulation results as CSV or JSON.
package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/san-kum/stocksim/internal/analysis"
	"github.com/san-kum/stocksim/internal/dynamo"
	"github.com/san-kum/stocksim/internal/experiment"
)

var csvHeader = []string{"sample", "step", "t", "stock", "vol", "xi"}

// WriteCSV writes one row per (sample, step), samples in order.
func WriteCSV(w io.Writer, p *dynamo.Paths, dt float64) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}

	steps, samples := p.Dims()
	row := make([]string, len(csvHeader))
	for s := 0; s < samples; s++ {
		for t := 0; t < steps; t++ {
			row[0] = strconv.Itoa(s)
			row[1] = strconv.Itoa(t)
			row[2] = formatFloat(float64(t) * dt)
			row[3] = formatFloat(p.Stock.At(t, s))
			row[4] = formatFloat(p.Vol.At(t, s))
			row[5] = formatFloat(p.Xi.At(t, s))
			if err := cw.Write(row); err != nil {
				return fmt.Errorf("write sample %d step %d: %w", s, t, err)
			}
		}
	}

	cw.Flush()
	return cw.Error()
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

type ParamsData struct {
	Dt      float64 `json:"dt"`
	Sigma0  float64 `json:"sigma0"`
	S0      float64 `json:"s0"`
	Xi0     float64 `json:"xi0"`
	Mu      float64 `json:"mu"`
	P       float64 `json:"p"`
	Alpha   float64 `json:"alpha"`
	Time    float64 `json:"time"`
	Samples int     `json:"samples"`
}

// ExportData is the JSON document for one run. Path slices are indexed
// [sample][step].
type ExportData struct {
	Scheme    string             `json:"scheme"`
	Seed      int64              `json:"seed"`
	Mode      string             `json:"mode"`
	Params    ParamsData         `json:"params"`
	Steps     int                `json:"steps"`
	ElapsedMs float64            `json:"elapsed_ms"`
	Summary   []analysis.Summary `json:"summary"`
	Stock     [][]float64        `json:"stock,omitempty"`
	Vol       [][]float64        `json:"vol,omitempty"`
	Xi        [][]float64        `json:"xi,omitempty"`
}

func NewExportData(res *experiment.Result, withPaths bool) ExportData {
	p := res.Params
	steps, samples := res.Paths.Dims()

	data := ExportData{
		Scheme: res.Scheme,
		Seed:   res.Seed,
		Mode:   res.Mode.String(),
		Params: ParamsData{
			Dt: p.Dt, Sigma0: p.Sigma0, S0: p.S0, Xi0: p.Xi0,
			Mu: p.Mu, P: p.P, Alpha: p.Alpha, Time: p.T, Samples: p.Samples,
		},
		Steps:     steps,
		ElapsedMs: float64(res.Elapsed.Microseconds()) / 1000,
		Summary:   analysis.SummarizePaths(res.Paths),
	}

	if withPaths {
		data.Stock = make([][]float64, samples)
		data.Vol = make([][]float64, samples)
		data.Xi = make([][]float64, samples)
		for s := 0; s < samples; s++ {
			data.Stock[s], data.Vol[s], data.Xi[s] = res.Paths.Sample(s)
		}
	}
	return data
}

func WriteJSON(w io.Writer, res *experiment.Result, withPaths bool) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(NewExportData(res, withPaths))
}
