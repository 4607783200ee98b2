// Package num has the rounding helpers shared by the extractors so reported
// floats stay deterministic across runs.
package num

import "math"

func Round1(v float64) float64 { return math.Round(v*10) / 10 }

func Round2(v float64) float64 { return math.Round(v*100) / 100 }

func Round3(v float64) float64 { return math.Round(v*1000) / 1000 }
