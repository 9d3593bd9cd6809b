package service

import (
	"fmt"
	"math"
	"time"

	"github.com/limbo/fittrack/pkg/entity"
)

const (
	DefaultWindowDays = 7
	DefaultBuckets    = 8
	DefaultBucket     = BucketWeek
)

// ComputeStats derives dashboard figures from logs as of now. Dates are
// compared as UTC calendar days. It does not modify logs.
func ComputeStats(logs []*entity.WorkoutLog, now time.Time, opts StatsOptions) entity.Stats {
	opts = opts.withDefaults(StatsOptions{})
	today := calendarDay(now.UTC())
	windowStart := today.AddDate(0, 0, -opts.WindowDays)

	stats := entity.Stats{
		Total:      len(logs),
		WindowDays: opts.WindowDays,
		Series:     emptySeries(today, opts.Bucket, opts.Buckets),
	}
	for _, l := range logs {
		day := calendarDay(l.WorkoutDate.UTC())
		if !day.Before(windowStart) && !day.After(today) {
			stats.WindowCount++
		}
		if i := bucketIndex(stats.Series, day); i >= 0 {
			stats.Series[i].Count++
		}
		stats.TotalDuration += l.Duration
		stats.TotalVolume += TrainingVolume(l.Exercises)
	}
	if stats.Total > 0 {
		stats.AvgDuration = math.Round(float64(stats.TotalDuration)/float64(stats.Total)*100) / 100
	}
	return stats
}

// TrainingVolume is the sum of sets*reps*weight over results.
func TrainingVolume(results []*entity.ExerciseLog) float64 {
	var v float64
	for _, r := range results {
		v += r.Volume()
	}
	return v
}

func (o StatsOptions) withDefaults(def StatsOptions) StatsOptions {
	if o.WindowDays == 0 {
		o.WindowDays = def.WindowDays
	}
	if o.WindowDays <= 0 {
		o.WindowDays = DefaultWindowDays
	}
	if o.Buckets == 0 {
		o.Buckets = def.Buckets
	}
	if o.Buckets <= 0 {
		o.Buckets = DefaultBuckets
	}
	if o.Bucket == "" {
		o.Bucket = def.Bucket
	}
	if o.Bucket == "" {
		o.Bucket = DefaultBucket
	}
	return o
}

// emptySeries returns n contiguous zero buckets, oldest first, the last one
// containing today.
func emptySeries(today time.Time, kind BucketKind, n int) []entity.StatsBucket {
	series := make([]entity.StatsBucket, n)
	start := bucketStart(today, kind)
	for i := n - 1; i >= 0; i-- {
		next := shiftBucket(start, kind, 1)
		series[i] = entity.StatsBucket{
			Label: bucketLabel(start, kind),
			Start: start,
			End:   next.AddDate(0, 0, -1),
		}
		start = shiftBucket(start, kind, -1)
	}
	return series
}

func bucketIndex(series []entity.StatsBucket, day time.Time) int {
	for i := range series {
		if !day.Before(series[i].Start) && !day.After(series[i].End) {
			return i
		}
	}
	return -1
}

func bucketStart(day time.Time, kind BucketKind) time.Time {
	switch kind {
	case BucketDay:
		return day
	case BucketMonth:
		return time.Date(day.Year(), day.Month(), 1, 0, 0, 0, 0, time.UTC)
	default:
		// ISO weeks start on Monday
		offset := (int(day.Weekday()) + 6) % 7
		return day.AddDate(0, 0, -offset)
	}
}

func shiftBucket(start time.Time, kind BucketKind, n int) time.Time {
	switch kind {
	case BucketDay:
		return start.AddDate(0, 0, n)
	case BucketMonth:
		return start.AddDate(0, n, 0)
	default:
		return start.AddDate(0, 0, 7*n)
	}
}

func bucketLabel(start time.Time, kind BucketKind) string {
	switch kind {
	case BucketDay:
		return start.Format(time.DateOnly)
	case BucketMonth:
		return start.Format("2006-01")
	default:
		year, week := start.ISOWeek()
		return fmt.Sprintf("%04d-W%02d", year, week)
	}
}
