// Package stats analyzes dice-roll distributions and renders reports.
package stats

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/zblake/rollstats/internal/model"
)

const (
	faceCount = 6

	// chiSquareCritical is the 5% significance critical value for the
	// chi-square distribution with 5 degrees of freedom.
	chiSquareCritical = 11.070
)

var (
	// ErrEmptySequence indicates an empty roll sequence.
	ErrEmptySequence = errors.New("roll sequence is empty")
	// ErrInsufficientSample indicates fewer than two rolls, for which the
	// sample standard deviation is undefined.
	ErrInsufficientSample = errors.New("need at least 2 rolls to compute sample standard deviation")
)

// OutOfRangeError reports a roll value outside 1-6.
type OutOfRangeError struct {
	Index int
	Value int
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("roll value %d at position %d is out of range 1-6", e.Value, e.Index)
}

// Analyze computes the distribution report for rolls. The sequence must
// contain at least two values, each in 1-6; it is not modified.
func Analyze(rolls []int) (model.Report, error) {
	if len(rolls) == 0 {
		return model.Report{}, ErrEmptySequence
	}
	for i, r := range rolls {
		if r < 1 || r > faceCount {
			return model.Report{}, &OutOfRangeError{Index: i, Value: r}
		}
	}
	if len(rolls) == 1 {
		return model.Report{}, ErrInsufficientSample
	}

	total := float64(len(rolls))
	var counts [faceCount + 1]int
	for _, r := range rolls {
		counts[r]++
	}

	rep := model.Report{TotalRolls: len(rolls)}
	expected := total / faceCount
	for face := 1; face <= faceCount; face++ {
		count := counts[face]
		deviation := float64(count) - expected
		component := deviation * deviation / expected
		rep.Faces[face-1] = model.FaceStat{
			Face:       face,
			Count:      count,
			Percentage: float64(count) / total * 100,
			Expected:   expected,
			Deviation:  deviation,
			ChiSquare:  component,
		}
		rep.ChiSquare += component
	}
	rep.Fair = rep.ChiSquare < chiSquareCritical

	rep.Mean = mean(rolls)
	rep.Median = median(rolls)
	rep.StdDev = sampleStdDev(rolls, rep.Mean)
	rep.Min, rep.Max = minMax(rolls)
	rep.Buckets = buckets(counts, total)
	rep.Runs = scanRuns(rolls)

	return rep, nil
}

func mean(rolls []int) float64 {
	sum := 0
	for _, r := range rolls {
		sum += r
	}
	return float64(sum) / float64(len(rolls))
}

func median(rolls []int) float64 {
	sorted := make([]int, len(rolls))
	copy(sorted, rolls)
	sort.Ints(sorted)
	n := len(sorted)
	if n%2 == 1 {
		return float64(sorted[n/2])
	}
	return float64(sorted[n/2-1]+sorted[n/2]) / 2
}

// sampleStdDev uses Bessel's correction: the sum of squared deviations is
// divided by N-1. Callers must reject sequences shorter than two rolls.
func sampleStdDev(rolls []int, mean float64) float64 {
	var sumSq float64
	for _, r := range rolls {
		d := float64(r) - mean
		sumSq += d * d
	}
	return math.Sqrt(sumSq / float64(len(rolls)-1))
}

func minMax(rolls []int) (minVal, maxVal int) {
	minVal = rolls[0]
	maxVal = rolls[0]
	for _, r := range rolls[1:] {
		if r < minVal {
			minVal = r
		}
		if r > maxVal {
			maxVal = r
		}
	}
	return minVal, maxVal
}

func buckets(counts [faceCount + 1]int, total float64) [3]model.BucketStat {
	defs := [3]struct {
		label string
		low   int
		high  int
	}{
		{"1-2 (low)", 1, 2},
		{"3-4 (mid)", 3, 4},
		{"5-6 (high)", 5, 6},
	}
	var out [3]model.BucketStat
	for i, def := range defs {
		count := 0
		for face := def.low; face <= def.high; face++ {
			count += counts[face]
		}
		out[i] = model.BucketStat{
			Label:      def.label,
			Low:        def.low,
			High:       def.high,
			Count:      count,
			Percentage: float64(count) / total * 100,
		}
	}
	return out
}

func scanRuns(rolls []int) model.RunStats {
	runs := model.RunStats{MaxRun: 1}
	current := 1
	for i := 1; i < len(rolls); i++ {
		if rolls[i] == rolls[i-1] {
			current++
			if current > runs.MaxRun {
				runs.MaxRun = current
			}
			continue
		}
		if current > 1 {
			runs.RunCount++
		}
		current = 1
	}
	// A streak that reaches the end of input still counts.
	if current > 1 {
		runs.RunCount++
	}
	return runs
}
