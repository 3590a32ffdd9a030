package stats

import (
	"sort"
	"time"
)

// Granularity selects the time-bucketing resolution of timeline views.
type Granularity string

const (
	GranularityDaily   Granularity = "daily"
	GranularityWeekly  Granularity = "weekly"
	GranularityMonthly Granularity = "monthly"
)

// ParseGranularity maps a request parameter to a Granularity. Anything
// other than daily or weekly falls through to monthly.
func ParseGranularity(s string) Granularity {
	switch Granularity(s) {
	case GranularityDaily:
		return GranularityDaily
	case GranularityWeekly:
		return GranularityWeekly
	default:
		return GranularityMonthly
	}
}

// TimeBucket is one period of a bucketed timeline. Period is the canonical
// label: YYYY-MM-DD for daily, "start/end" of the ISO week (Monday through
// Sunday) for weekly, YYYY-MM for monthly.
type TimeBucket struct {
	Period string `json:"period"`
	Count  int    `json:"count"`

	start time.Time
}

// Start returns the first day of the bucket's period.
func (b TimeBucket) Start() time.Time { return b.start }

// BucketDates counts dates per period at the given granularity. Buckets are
// emitted only for periods present in the input, in chronological order;
// gaps are not zero-filled. The returned slice is never nil.
func BucketDates(dates []time.Time, g Granularity) []TimeBucket {
	byLabel := make(map[string]*TimeBucket)
	for _, d := range dates {
		start, label := periodOf(d, g)
		b, ok := byLabel[label]
		if !ok {
			b = &TimeBucket{Period: label, start: start}
			byLabel[label] = b
		}
		b.Count++
	}

	out := make([]TimeBucket, 0, len(byLabel))
	for _, b := range byLabel {
		out = append(out, *b)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].start.Before(out[j].start)
	})
	return out
}

func periodOf(d time.Time, g Granularity) (start time.Time, label string) {
	day := time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, d.Location())
	switch g {
	case GranularityDaily:
		return day, day.Format("2006-01-02")
	case GranularityWeekly:
		start = weekStart(day)
		end := start.AddDate(0, 0, 6)
		return start, start.Format("2006-01-02") + "/" + end.Format("2006-01-02")
	default:
		start = time.Date(d.Year(), d.Month(), 1, 0, 0, 0, 0, d.Location())
		return start, start.Format("2006-01")
	}
}

// weekStart returns the Monday of the ISO week containing day.
func weekStart(day time.Time) time.Time {
	wd := int(day.Weekday())
	if wd == 0 {
		wd = 7 // Sunday closes the ISO week
	}
	return day.AddDate(0, 0, 1-wd)
}
