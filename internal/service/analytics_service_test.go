package service

import (
	"errors"
	"reflect"
	"testing"

	"github.com/jengzang/acp-backend-go/internal/models"
	"github.com/jengzang/acp-backend-go/internal/store"
)

func TestFilterOptions(t *testing.T) {
	st, key := seedStore(t)
	svc := NewAnalyticsService(st)

	t.Run("unknown key is not found", func(t *testing.T) {
		if _, err := svc.FilterOptions("nope"); !errors.Is(err, store.ErrNotFound) {
			t.Fatalf("expected ErrNotFound, got %v", err)
		}
	})

	opts, err := svc.FilterOptions(key)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(opts.TrainNumbers, []string{"11111", "12301", "22222", "33333"}) {
		t.Fatalf("unexpected train numbers: %v", opts.TrainNumbers)
	}
	if !reflect.DeepEqual(opts.Directions, []string{"DOWN", "UP"}) {
		t.Fatalf("unexpected directions: %v", opts.Directions)
	}
	if opts.DateRange == nil || opts.DateRange.Min == nil || opts.DateRange.Max == nil {
		t.Fatalf("expected a populated date range")
	}
	if *opts.DateRange.Min != "2024-01-05" || *opts.DateRange.Max != "2024-03-20" {
		t.Fatalf("unexpected date range: %s..%s", *opts.DateRange.Min, *opts.DateRange.Max)
	}
}

func TestAnalytics(t *testing.T) {
	st, key := seedStore(t)
	svc := NewAnalyticsService(st)

	t.Run("unfiltered summary", func(t *testing.T) {
		a, err := svc.Analytics(key, models.FilterRequest{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if a.TotalIncidents != 10 {
			t.Fatalf("expected 10 incidents, got %d", a.TotalIncidents)
		}
		if *a.DateRange.From != "2024-01-05" || *a.DateRange.To != "2024-03-20" {
			t.Fatalf("unexpected date range: %v", a.DateRange)
		}
		if len(a.TopCategories) == 0 || a.TopCategories[0].Value != "Genuine" || a.TopCategories[0].Count != 7 {
			t.Fatalf("unexpected top categories: %v", a.TopCategories)
		}
		if len(a.MonthlyTrend) != 3 || a.MonthlyTrend[0].Period != "2024-01" || a.MonthlyTrend[0].Count != 3 {
			t.Fatalf("unexpected monthly trend: %v", a.MonthlyTrend)
		}
	})

	t.Run("empty view degrades to zero values", func(t *testing.T) {
		a, err := svc.Analytics(key, models.FilterRequest{TrainNumbers: []string{"99999"}})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if a.TotalIncidents != 0 {
			t.Fatalf("expected 0 incidents, got %d", a.TotalIncidents)
		}
		if a.DateRange.From != nil || a.DateRange.To != nil {
			t.Fatalf("expected null date range")
		}
		if len(a.TopCategories) != 0 {
			t.Fatalf("expected no distributions, got %v", a.TopCategories)
		}
	})
}

func TestTimeline(t *testing.T) {
	st, key := seedStore(t)
	svc := NewAnalyticsService(st)

	t.Run("monthly example from the register", func(t *testing.T) {
		tl, err := svc.Timeline(key, models.FilterRequest{
			TrainNumbers: []string{"12301"},
			Directions:   []string{"UP"},
		}, "monthly")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(tl.Timeline) != 1 {
			t.Fatalf("expected one bucket, got %v", tl.Timeline)
		}
		e := tl.Timeline[0]
		if e.Period != "2024-01" || e.Count != 3 || e.Date != "2024-01" {
			t.Fatalf("unexpected bucket: %+v", e)
		}
	})

	t.Run("unknown granularity falls back to monthly", func(t *testing.T) {
		tl, err := svc.Timeline(key, models.FilterRequest{}, "hourly")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(tl.Timeline) != 3 {
			t.Fatalf("expected 3 monthly buckets, got %d", len(tl.Timeline))
		}
	})

	t.Run("empty view yields empty timeline", func(t *testing.T) {
		tl, err := svc.Timeline(key, models.FilterRequest{TrainNumbers: []string{}}, "daily")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(tl.Timeline) != 0 {
			t.Fatalf("expected empty timeline, got %v", tl.Timeline)
		}
	})
}

func TestKPI(t *testing.T) {
	st, key := seedStore(t)
	svc := NewAnalyticsService(st)

	t.Run("single-train example", func(t *testing.T) {
		kpi, err := svc.KPI(key, models.FilterRequest{
			TrainNumbers: []string{"12301"},
			Directions:   []string{"UP"},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if kpi.TotalIncidents != 3 {
			t.Fatalf("expected 3 incidents, got %d", kpi.TotalIncidents)
		}
		// 3 incidents over the 15-day span 2024-01-05..2024-01-20.
		if kpi.DailyAvg != 0.2 {
			t.Fatalf("expected daily average 0.2, got %v", kpi.DailyAvg)
		}
		// Trains 11111 (2) and 22222 (1) rank strictly below 12301's 3 of 4 trains.
		if kpi.Percentile == nil || *kpi.Percentile != 50 {
			t.Fatalf("expected percentile 50, got %v", kpi.Percentile)
		}
		if !reflect.DeepEqual(kpi.MonthlyTrend, []int{3}) {
			t.Fatalf("unexpected monthly trend: %v", kpi.MonthlyTrend)
		}
	})

	t.Run("percentile bounds", func(t *testing.T) {
		min, err := svc.KPI(key, models.FilterRequest{TrainNumbers: []string{"22222"}})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if min.Percentile == nil || *min.Percentile != 0 {
			t.Fatalf("least affected train should rank 0, got %v", min.Percentile)
		}

		max, err := svc.KPI(key, models.FilterRequest{TrainNumbers: []string{"33333"}})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if max.Percentile == nil || *max.Percentile != 75 {
			t.Fatalf("most affected train should rank 75, got %v", max.Percentile)
		}
	})

	t.Run("percentile absent without a single-train predicate", func(t *testing.T) {
		kpi, err := svc.KPI(key, models.FilterRequest{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if kpi.Percentile != nil {
			t.Fatalf("expected no percentile, got %v", *kpi.Percentile)
		}

		kpi, err = svc.KPI(key, models.FilterRequest{TrainNumbers: []string{"12301", "11111"}})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if kpi.Percentile != nil {
			t.Fatalf("expected no percentile for multi-train predicate")
		}
	})

	t.Run("empty view has zero average and empty trend", func(t *testing.T) {
		kpi, err := svc.KPI(key, models.FilterRequest{Categories: []string{"Nonexistent"}})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if kpi.TotalIncidents != 0 || kpi.DailyAvg != 0 || len(kpi.MonthlyTrend) != 0 {
			t.Fatalf("unexpected KPI for empty view: %+v", kpi)
		}
	})
}

func TestDayAnalysis(t *testing.T) {
	st, key := seedStore(t)
	svc := NewAnalyticsService(st)

	da, err := svc.DayAnalysis(key, models.FilterRequest{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	sum := 0
	for _, vc := range da.DayAnalysis {
		sum += vc.Count
	}
	if sum != 10 {
		t.Fatalf("full distribution should cover all rows, got %d", sum)
	}
	if da.DayAnalysis[0].Value != "Friday" || da.DayAnalysis[0].Count != 3 {
		t.Fatalf("unexpected top day: %v", da.DayAnalysis[0])
	}
}
