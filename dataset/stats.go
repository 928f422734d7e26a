/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package dataset

import (
	"math"
	"sort"
)

// Stats holds the descriptive statistics of one numeric column.
// Skewness and Kurtosis use the bias-corrected sample estimators and
// are NaN when the sample is too small for them.
type Stats struct {
	Count    int
	Mean     float64
	Median   float64
	Std      float64
	Variance float64
	Min      float64
	P25      float64
	P50      float64
	P75      float64
	Max      float64
	Skewness float64
	Kurtosis float64
}

// Describe computes descriptive statistics over the column's present
// values.
func (c *Column) Describe() (Stats, error) {
	if !c.Numeric {
		return Stats{}, ErrColumnNotNumeric
	}

	values := c.present()
	if len(values) == 0 {
		return Stats{}, ErrNoValues
	}

	sorted := append([]float64(nil), values...)
	sort.Float64s(sorted)

	n := len(values)
	mean := meanOf(values)

	s := Stats{
		Count:    n,
		Mean:     mean,
		Median:   percentile(sorted, 0.5),
		Variance: sampleVariance(values, mean),
		Min:      sorted[0],
		P25:      percentile(sorted, 0.25),
		P50:      percentile(sorted, 0.5),
		P75:      percentile(sorted, 0.75),
		Max:      sorted[n-1],
		Skewness: sampleSkewness(values, mean),
		Kurtosis: sampleKurtosis(values, mean),
	}
	s.Std = math.Sqrt(s.Variance)
	return s, nil
}

// SkewnessLabel classifies a skewness value the way the summary page
// reports it.
func SkewnessLabel(skew float64) string {
	switch {
	case math.Abs(skew) > 1:
		return "highly skewed"
	case math.Abs(skew) > 0.5:
		return "moderately skewed"
	default:
		return "approximately symmetric"
	}
}

func meanOf(values []float64) float64 {
	if len(values) == 0 {
		return math.NaN()
	}
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// percentile interpolates linearly over an already sorted slice.
func percentile(sorted []float64, p float64) float64 {
	if len(sorted) == 0 {
		return math.NaN()
	}
	if len(sorted) == 1 {
		return sorted[0]
	}

	pos := p * float64(len(sorted)-1)
	lo := int(math.Floor(pos))
	hi := int(math.Ceil(pos))
	if lo == hi {
		return sorted[lo]
	}
	frac := pos - float64(lo)
	return sorted[lo] + frac*(sorted[hi]-sorted[lo])
}

// sampleVariance is the unbiased estimator, NaN for fewer than two
// values.
func sampleVariance(values []float64, mean float64) float64 {
	n := len(values)
	if n < 2 {
		return math.NaN()
	}
	sum := 0.0
	for _, v := range values {
		d := v - mean
		sum += d * d
	}
	return sum / float64(n-1)
}

func centralMoment(values []float64, mean float64, k int) float64 {
	sum := 0.0
	for _, v := range values {
		sum += math.Pow(v-mean, float64(k))
	}
	return sum / float64(len(values))
}

// sampleSkewness is the adjusted Fisher-Pearson estimator, NaN for
// fewer than three values or zero spread.
func sampleSkewness(values []float64, mean float64) float64 {
	n := float64(len(values))
	if n < 3 {
		return math.NaN()
	}

	m2 := centralMoment(values, mean, 2)
	if m2 == 0 {
		return math.NaN()
	}
	g1 := centralMoment(values, mean, 3) / math.Pow(m2, 1.5)
	return g1 * math.Sqrt(n*(n-1)) / (n - 2)
}

// sampleKurtosis is the bias-corrected excess kurtosis, NaN for
// fewer than four values or zero spread.
func sampleKurtosis(values []float64, mean float64) float64 {
	n := float64(len(values))
	if n < 4 {
		return math.NaN()
	}

	m2 := centralMoment(values, mean, 2)
	if m2 == 0 {
		return math.NaN()
	}
	g2 := centralMoment(values, mean, 4)/(m2*m2) - 3
	return ((n - 1) / ((n - 2) * (n - 3))) * ((n+1)*g2 + 6)
}

// HistogramBin is one equal-width histogram bucket. The last bucket
// includes its upper bound.
type HistogramBin struct {
	Low   float64
	High  float64
	Count int
}

// Histogram buckets the column's present values into equal-width
// bins.
func (c *Column) Histogram(bins int) ([]HistogramBin, error) {
	if !c.Numeric {
		return nil, ErrColumnNotNumeric
	}
	if bins < 1 {
		bins = 1
	}

	values := c.present()
	if len(values) == 0 {
		return nil, ErrNoValues
	}

	min, max := values[0], values[0]
	for _, v := range values {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}

	if min == max {
		return []HistogramBin{{Low: min, High: max, Count: len(values)}}, nil
	}

	width := (max - min) / float64(bins)
	out := make([]HistogramBin, bins)
	for i := range out {
		out[i].Low = min + float64(i)*width
		out[i].High = min + float64(i+1)*width
	}
	out[bins-1].High = max

	for _, v := range values {
		idx := int((v - min) / width)
		if idx >= bins {
			idx = bins - 1
		}
		out[idx].Count++
	}
	return out, nil
}

// ValueCount is one category frequency.
type ValueCount struct {
	Value string
	Count int
}

// ValueCounts returns category frequencies, most frequent first,
// ties broken by value. Missing cells are skipped. A positive limit
// caps the result length.
func (c *Column) ValueCounts(limit int) []ValueCount {
	counts := make(map[string]int)
	for _, cell := range c.Cells {
		if cell == "" {
			continue
		}
		counts[cell]++
	}

	out := make([]ValueCount, 0, len(counts))
	for value, count := range counts {
		out = append(out, ValueCount{Value: value, Count: count})
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Value < out[j].Value
	})

	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}
