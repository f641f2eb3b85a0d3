package stats

import (
	"sort"

	"gonum.org/v1/gonum/floats"
	gonumstat "gonum.org/v1/gonum/stat"
)

type Percentile struct {
	P   float64
	Val float64
}

type AggregatedStatistics struct {
	Count       int
	Mean        float64
	Median      float64
	StdDev      float64
	Min         float64
	Max         float64
	Percentiles []Percentile
}

// StatsForSequence summarizes the samples. Percentiles may be given either as
// fractions (0.95) or as percentages (95).
func StatsForSequence(unsortedSamples []float64, percentiles []float64) *AggregatedStatistics {
	aggStats := &AggregatedStatistics{
		Count:       len(unsortedSamples),
		Percentiles: make([]Percentile, len(percentiles)),
	}
	if len(unsortedSamples) == 0 {
		for i, percentileValue := range percentiles {
			aggStats.Percentiles[i].P = percentileValue
		}
		return aggStats
	}
	sortedSamples := make([]float64, len(unsortedSamples))
	copy(sortedSamples, unsortedSamples)
	sort.Float64s(sortedSamples)

	// Compute aggregates...
	aggStats.Mean, aggStats.StdDev = gonumstat.MeanStdDev(sortedSamples, nil)
	aggStats.Median = gonumstat.Quantile(0.5, gonumstat.Empirical, sortedSamples, nil)
	aggStats.Min = floats.Min(sortedSamples)
	aggStats.Max = floats.Max(sortedSamples)

	for eachPercentileIndex := range percentiles {
		percentileValue := percentiles[eachPercentileIndex]
		quantile := percentileValue
		if quantile > 1.00 {
			quantile = quantile / 100
		}
		aggStats.Percentiles[eachPercentileIndex] = Percentile{
			P: percentileValue,
			Val: gonumstat.Quantile(quantile,
				gonumstat.Empirical,
				sortedSamples,
				nil),
		}
	}
	return aggStats
}
