package app

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"

	"github.com/nbodysim/pointgen/generator"
	"github.com/nbodysim/pointgen/stats"
	"golang.org/x/exp/rand"
)

const (
	WeightMin = 100
	WeightMax = 1000
)

var summaryPercentiles = []float64{50, 95}

// Record is a generated point with its weight attached
type Record struct {
	generator.Point
	Weight int
}

// AppendRecord appends the `x,y,vx,vy,weight\n` line for rec to buf.
func AppendRecord(buf []byte, rec Record) []byte {
	buf = strconv.AppendInt(buf, int64(rec.X), 10)
	buf = append(buf, ',')
	buf = strconv.AppendInt(buf, int64(rec.Y), 10)
	buf = append(buf, ',')
	buf = strconv.AppendFloat(buf, rec.VX, 'g', -1, 64)
	buf = append(buf, ',')
	buf = strconv.AppendFloat(buf, rec.VY, 'g', -1, 64)
	buf = append(buf, ',')
	buf = strconv.AppendInt(buf, int64(rec.Weight), 10)
	return append(buf, '\n')
}

// RunSummary describes a completed run. The column statistics are only
// populated when the logger has debug enabled.
type RunSummary struct {
	Count   int
	Columns map[string]*stats.AggregatedStatistics
}

type columnSamples struct {
	names  []string
	values [][]float64
}

func newColumnSamples(capacity int) *columnSamples {
	cs := &columnSamples{
		names:  []string{"x", "y", "vx", "vy", "weight"},
		values: make([][]float64, 5),
	}
	for i := range cs.values {
		cs.values[i] = make([]float64, 0, capacity)
	}
	return cs
}

func (cs *columnSamples) add(rec Record) {
	row := []float64{float64(rec.X), float64(rec.Y), rec.VX, rec.VY, float64(rec.Weight)}
	for i, val := range row {
		cs.values[i] = append(cs.values[i], val)
	}
}

func (cs *columnSamples) summarize(log *slog.Logger) map[string]*stats.AggregatedStatistics {
	columns := make(map[string]*stats.AggregatedStatistics, len(cs.names))
	for i, name := range cs.names {
		aggStats := stats.StatsForSequence(cs.values[i], summaryPercentiles)
		columns[name] = aggStats
		log.Debug("Column summary",
			"column", name,
			"count", aggStats.Count,
			"mean", aggStats.Mean,
			"stddev", aggStats.StdDev,
			"min", aggStats.Min,
			"max", aggStats.Max,
			"p50", aggStats.Percentiles[0].Val,
			"p95", aggStats.Percentiles[1].Val)
	}
	return columns
}

// WriteRecords drains the pattern, attaches a weight in [WeightMin, WeightMax]
// to every point and writes one line per record.
func WriteRecords(output io.Writer,
	pattern generator.Pattern,
	src rand.Source,
	log *slog.Logger) (*RunSummary, error) {

	iter := pattern.Generate(src)
	weightRand := rand.New(src)

	var samples *columnSamples
	if log.Enabled(context.Background(), slog.LevelDebug) {
		samples = newColumnSamples(iter.Len())
	}
	summary := &RunSummary{}
	buf := make([]byte, 0, 64)
	for iter.Next() {
		rec := Record{
			Point:  iter.Point(),
			Weight: generator.UniformInt(weightRand, WeightMin, WeightMax),
		}
		buf = AppendRecord(buf[:0], rec)
		_, writeErr := output.Write(buf)
		if writeErr != nil {
			return nil, writeErr
		}
		summary.Count++
		if samples != nil {
			samples.add(rec)
		}
	}
	if samples != nil {
		summary.Columns = samples.summarize(log)
	}
	return summary, nil
}

type ApplicationParams struct {
	OutputFile string
	Pattern    generator.Pattern
	Src        rand.Source
}

// GenerateFile creates (or truncates) params.OutputFile and writes the
// pattern's records to it.
func GenerateFile(params *ApplicationParams, log *slog.Logger) (*RunSummary, error) {
	outFile, outFileErr := os.Create(params.OutputFile)
	if outFileErr != nil {
		return nil, fmt.Errorf("failed to create output file %s: %w", params.OutputFile, outFileErr)
	}
	log.Debug("Created output file", "path", params.OutputFile, "pattern", params.Pattern.Name())

	writer := bufio.NewWriter(outFile)
	summary, writeErr := WriteRecords(writer, params.Pattern, params.Src, log)
	if writeErr == nil {
		writeErr = writer.Flush()
	}
	closeErr := outFile.Close()
	if writeErr != nil {
		return nil, fmt.Errorf("failed to write output file %s: %w", params.OutputFile, writeErr)
	}
	if closeErr != nil {
		return nil, fmt.Errorf("failed to close output file %s: %w", params.OutputFile, closeErr)
	}
	return summary, nil
}
