// Package stats computes aggregate mood statistics over a user's check-in
// history. Everything here is pure: no storage, no clock, no logging.
package stats

import "github.com/MKhiriev/go-wellness/models"

// TrendWindow is the number of most recent check-ins averaged on each side
// of the trend comparison.
const TrendWindow = 7

// Compute returns the statistics of checkIns, which must be ordered from the
// most recent to the oldest.
//
// The trend needs at least TrendWindow entries. With fewer than two full
// windows the older average falls back to the recent one, so the trend
// reads "stable".
func Compute(checkIns []models.CheckIn) models.Stats {
	total := len(checkIns)
	if total == 0 {
		return models.Stats{}
	}

	latest := checkIns[0].Mood
	result := models.Stats{
		TotalCheckIns: total,
		AverageMood:   roundedMean(sumMoods(checkIns), total),
		LatestMood:    &latest,
	}

	if total < TrendWindow {
		return result
	}

	recent := sumMoods(checkIns[:TrendWindow])
	older := recent
	if total >= 2*TrendWindow {
		older = sumMoods(checkIns[TrendWindow : 2*TrendWindow])
	}

	// both windows hold the same number of entries, comparing sums is
	// comparing means without float error
	trend := models.TrendStable
	switch {
	case recent > older:
		trend = models.TrendUp
	case recent < older:
		trend = models.TrendDown
	}
	result.Trend = &trend

	return result
}

func sumMoods(checkIns []models.CheckIn) int {
	sum := 0
	for _, c := range checkIns {
		sum += c.Mood
	}
	return sum
}

// roundedMean returns sum/count rounded half away from zero to two decimal
// places. The rounding is done on integers so 2.675 stays 2.68.
func roundedMean(sum, count int) float64 {
	scaled := int64(sum) * 100
	n := int64(count)

	var hundredths int64
	if scaled >= 0 {
		hundredths = (2*scaled + n) / (2 * n)
	} else {
		hundredths = -((-2*scaled + n) / (2 * n))
	}

	return float64(hundredths) / 100
}
