package analysis

import (
	"math"
	"slices"

	"github.com/san-kum/stocksim/internal/dynamo"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Summary describes the cross-sample distribution of one series.
type Summary struct {
	Series string  `json:"series"`
	N      int     `json:"n"`
	Mean   float64 `json:"mean"`
	Std    float64 `json:"std"`
	Min    float64 `json:"min"`
	P05    float64 `json:"p05"`
	P50    float64 `json:"p50"`
	P95    float64 `json:"p95"`
	Max    float64 `json:"max"`
}

// Summarize computes the statistics of values. Std is zero for a single value.
func Summarize(series string, values []float64) Summary {
	s := Summary{Series: series, N: len(values)}
	if len(values) == 0 {
		return s
	}

	sorted := slices.Clone(values)
	slices.Sort(sorted)

	s.Mean = stat.Mean(sorted, nil)
	if len(sorted) > 1 {
		s.Std = stat.StdDev(sorted, nil)
	}
	s.Min = floats.Min(sorted)
	s.Max = floats.Max(sorted)
	s.P05 = stat.Quantile(0.05, stat.Empirical, sorted, nil)
	s.P50 = stat.Quantile(0.5, stat.Empirical, sorted, nil)
	s.P95 = stat.Quantile(0.95, stat.Empirical, sorted, nil)
	return s
}

// SummarizePaths summarizes the terminal row of each output matrix.
func SummarizePaths(p *dynamo.Paths) []Summary {
	return []Summary{
		Summarize("stock", dynamo.Terminal(p.Stock)),
		Summarize("vol", dynamo.Terminal(p.Vol)),
		Summarize("xi", dynamo.Terminal(p.Xi)),
	}
}

// LogReturns returns ln(S[t]/S[t-1]). Non-positive prices yield NaN.
func LogReturns(stock []float64) []float64 {
	if len(stock) < 2 {
		return nil
	}
	out := make([]float64, len(stock)-1)
	for i := 1; i < len(stock); i++ {
		if stock[i] <= 0 || stock[i-1] <= 0 {
			out[i-1] = math.NaN()
			continue
		}
		out[i-1] = math.Log(stock[i] / stock[i-1])
	}
	return out
}

// RealizedVol estimates σ from one stock path sampled every dt.
func RealizedVol(stock []float64, dt float64) float64 {
	r := LogReturns(stock)
	if len(r) < 2 || dt <= 0 {
		return 0
	}
	return stat.StdDev(r, nil) / math.Sqrt(dt)
}
