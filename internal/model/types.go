// Package model defines shared data structures.
package model

// FaceStat holds observed and expected frequencies for a single die face.
type FaceStat struct {
	Face       int
	Count      int
	Percentage float64
	Expected   float64
	Deviation  float64
	ChiSquare  float64
}

// BucketStat counts rolls falling into one face range.
type BucketStat struct {
	Label      string
	Low        int
	High       int
	Count      int
	Percentage float64
}

// RunStats summarizes consecutive-repeat patterns in roll order.
type RunStats struct {
	// MaxRun is the length of the longest run of equal consecutive rolls.
	MaxRun int
	// RunCount is the number of maximal runs longer than one roll.
	RunCount int
}

// Report bundles every statistic computed for a roll sequence.
type Report struct {
	TotalRolls int
	Faces      [6]FaceStat
	ChiSquare  float64
	Fair       bool
	Mean       float64
	Median     float64
	StdDev     float64
	Min        int
	Max        int
	Buckets    [3]BucketStat
	Runs       RunStats
}
