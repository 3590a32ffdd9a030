package service

import (
	"time"

	"github.com/jengzang/acp-backend-go/internal/dataset"
	"github.com/jengzang/acp-backend-go/internal/models"
	"github.com/jengzang/acp-backend-go/internal/stats"
	"github.com/jengzang/acp-backend-go/internal/store"
)

// AnalyticsService computes dashboard summaries over cached datasets.
type AnalyticsService struct {
	store *store.Store
}

// NewAnalyticsService creates a new analytics service.
func NewAnalyticsService(st *store.Store) *AnalyticsService {
	return &AnalyticsService{store: st}
}

// filterableFields maps FilterOptions response keys to canonical fields.
var filterableFields = []struct {
	field string
	set   func(*models.FilterOptions, []string)
}{
	{"train_no", func(o *models.FilterOptions, v []string) { o.TrainNumbers = v }},
	{"direction", func(o *models.FilterOptions, v []string) { o.Directions = v }},
	{"category", func(o *models.FilterOptions, v []string) { o.Categories = v }},
	{"reason", func(o *models.FilterOptions, v []string) { o.Reasons = v }},
	{"type_of_coach", func(o *models.FilterOptions, v []string) { o.CoachTypes = v }},
	{"broad_section", func(o *models.FilterOptions, v []string) { o.Sections = v }},
	{"post_names", func(o *models.FilterOptions, v []string) { o.RPFPosts = v }},
}

// FilterOptions returns the selectable values of every filterable field of
// the unfiltered dataset, plus its date span.
func (s *AnalyticsService) FilterOptions(key string) (*models.FilterOptions, error) {
	cd, err := s.store.Get(key)
	if err != nil {
		return nil, err
	}
	all := cd.Data.All()

	opts := &models.FilterOptions{}
	if _, ok := cd.Data.Column("date"); ok {
		dr := &models.DateRange{}
		if min, max, ok := all.DateRange("date"); ok {
			dr.Min = isoDate(min)
			dr.Max = isoDate(max)
		}
		opts.DateRange = dr
	}
	for _, f := range filterableFields {
		if _, ok := cd.Data.Column(f.field); ok {
			f.set(opts, stats.DistinctSorted(all.Values(f.field)))
		}
	}
	return opts, nil
}

// Analytics summarizes the filtered view: totals, date span, top value
// counts and the monthly trend.
func (s *AnalyticsService) Analytics(key string, req models.FilterRequest) (*models.Analytics, error) {
	cd, err := s.store.Get(key)
	if err != nil {
		return nil, err
	}
	v := cd.Data.All().Apply(req)

	out := &models.Analytics{TotalIncidents: v.Len()}
	if min, max, ok := v.DateRange("date"); ok {
		out.DateRange.From = isoDate(min)
		out.DateRange.To = isoDate(max)
	}
	if v.Len() == 0 {
		return out, nil
	}

	out.TopCategories = countField(v, "category", 5)
	out.TopReasons = countField(v, "reason", 5)
	out.DirectionDistribution = countField(v, "direction", 0)
	out.CoachTypeDistribution = countField(v, "type_of_coach", 0)
	if dates := v.Dates("date"); len(dates) > 0 {
		out.MonthlyTrend = stats.BucketDates(dates, stats.GranularityMonthly)
	}
	return out, nil
}

// Timeline buckets the filtered view at the requested granularity.
func (s *AnalyticsService) Timeline(key string, req models.FilterRequest, granularity string) (*models.Timeline, error) {
	cd, err := s.store.Get(key)
	if err != nil {
		return nil, err
	}
	v := cd.Data.All().Apply(req)
	return bucketTimeline(v, stats.ParseGranularity(granularity)), nil
}

// KPI computes headline figures for the filtered view. The percentile is
// computed only when the predicate selects exactly one train, and ranks that
// train's filtered count against every train of the unfiltered dataset.
func (s *AnalyticsService) KPI(key string, req models.FilterRequest) (*models.KPIData, error) {
	cd, err := s.store.Get(key)
	if err != nil {
		return nil, err
	}
	v := cd.Data.All().Apply(req)

	out := &models.KPIData{
		TotalIncidents: v.Len(),
		MonthlyTrend:   []int{},
	}

	if len(req.TrainNumbers) == 1 {
		if _, ok := cd.Data.Column("train_no"); ok {
			perTrain := stats.CountValues(cd.Data.All().Values("train_no"), 0)
			counts := make([]int, len(perTrain))
			for i, vc := range perTrain {
				counts[i] = vc.Count
			}
			p := stats.PercentileBelow(counts, out.TotalIncidents)
			out.Percentile = &p
		}
	}

	if min, max, ok := v.DateRange("date"); ok {
		if span := max.Sub(min).Hours() / 24; span > 0 {
			out.DailyAvg = stats.Round2(float64(out.TotalIncidents) / span)
		}
	}

	buckets := stats.BucketDates(v.Dates("date"), stats.GranularityMonthly)
	if len(buckets) > 12 {
		buckets = buckets[len(buckets)-12:]
	}
	for _, b := range buckets {
		out.MonthlyTrend = append(out.MonthlyTrend, b.Count)
	}
	return out, nil
}

// DayAnalysis returns the full weekday distribution of the filtered view.
func (s *AnalyticsService) DayAnalysis(key string, req models.FilterRequest) (*models.DayAnalysis, error) {
	cd, err := s.store.Get(key)
	if err != nil {
		return nil, err
	}
	v := cd.Data.All().Apply(req)
	return &models.DayAnalysis{DayAnalysis: countField(v, "day_name", 0)}, nil
}

func countField(v dataset.View, field string, limit int) []stats.ValueCount {
	return stats.CountValues(v.Values(field), limit)
}

func bucketTimeline(v dataset.View, g stats.Granularity) *models.Timeline {
	buckets := stats.BucketDates(v.Dates("date"), g)
	out := &models.Timeline{Timeline: make([]models.TimelineEntry, 0, len(buckets))}
	for _, b := range buckets {
		out.Timeline = append(out.Timeline, models.TimelineEntry{
			Period: b.Period,
			Count:  b.Count,
			Date:   b.Period,
		})
	}
	return out
}

func isoDate(t time.Time) *string {
	s := t.Format(dataset.DateLayout)
	return &s
}
