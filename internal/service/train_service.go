package service

import (
	"strings"

	"github.com/jengzang/acp-backend-go/internal/models"
	"github.com/jengzang/acp-backend-go/internal/stats"
	"github.com/jengzang/acp-backend-go/internal/store"
)

const (
	defaultTrainLimit    = 25
	defaultBreakdownTop  = 10
	timeAnalysisTop      = 12
	trainSearchMaxResult = 20
)

// TrainService computes per-train breakdowns of cached datasets.
type TrainService struct {
	store *store.Store
}

// NewTrainService creates a new train service.
func NewTrainService(st *store.Store) *TrainService {
	return &TrainService{store: st}
}

// Incidents ranks trains of the filtered view by incident count.
func (s *TrainService) Incidents(key string, req models.FilterRequest, limit int) (*models.TrainIncidents, error) {
	cd, err := s.store.Get(key)
	if err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = defaultTrainLimit
	}
	v := cd.Data.All().Apply(req)

	counts := countField(v, "train_no", limit)
	out := &models.TrainIncidents{Trains: make([]models.TrainIncident, 0, len(counts))}
	for _, vc := range counts {
		out.Trains = append(out.Trains, models.TrainIncident{TrainNo: vc.Value, IncidentCount: vc.Count})
	}
	return out, nil
}

// List ranks trains and attaches route and schedule attributes taken from
// each train's first matching row in the filtered view.
func (s *TrainService) List(key string, req models.FilterRequest, limit int) (*models.TrainList, error) {
	cd, err := s.store.Get(key)
	if err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = defaultTrainLimit
	}
	v := cd.Data.All().Apply(req)

	// First view position per train, for representative attributes.
	first := make(map[string]int)
	if col, ok := cd.Data.Column("train_no"); ok {
		for i := 0; i < v.Len(); i++ {
			if t, present := col.Value(v.RowIndex(i)); present {
				if _, seen := first[t]; !seen {
					first[t] = i
				}
			}
		}
	}

	counts := countField(v, "train_no", limit)
	out := &models.TrainList{Trains: make([]models.TrainListEntry, 0, len(counts))}
	for _, vc := range counts {
		entry := models.TrainListEntry{TrainNo: vc.Value, IncidentCount: vc.Count}
		if i, ok := first[vc.Value]; ok {
			entry.TrainFromTo, _ = v.Cell("train_from_to", i)
			entry.Direction, _ = v.Cell("direction", i)
			entry.DailyType, _ = v.Cell("daily_type", i)
		}
		out.Trains = append(out.Trains, entry)
	}
	return out, nil
}

// Analytics breaks the filtered view down by boarding section, coach,
// reason, time slot and mid section, optionally restricted to one train.
// Empty views yield empty distributions for every key.
func (s *TrainService) Analytics(key string, req models.FilterRequest, trainNo string, limit int) (*models.TrainAnalytics, error) {
	cd, err := s.store.Get(key)
	if err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = defaultBreakdownTop
	}
	v := cd.Data.All().Apply(req)
	if trainNo != "" {
		v = v.Restrict("train_no", trainNo)
	}

	return &models.TrainAnalytics{
		Sections:     countField(v, "stn_sec_from", limit),
		Coaches:      countField(v, "coach", limit),
		Reasons:      countField(v, "reason", limit),
		TimeAnalysis: countField(v, "time_analysis", timeAnalysisTop),
		MidSections:  countField(v, "mid_section", limit),
	}, nil
}

// Timeline buckets the filtered view, optionally scoped to one train. A
// single train at the default monthly granularity steps down to weekly;
// sparse per-train incidents read better at the finer resolution.
func (s *TrainService) Timeline(key string, req models.FilterRequest, trainNo, granularity string) (*models.Timeline, error) {
	cd, err := s.store.Get(key)
	if err != nil {
		return nil, err
	}
	v := cd.Data.All().Apply(req)

	g := stats.ParseGranularity(granularity)
	if trainNo != "" {
		v = v.Restrict("train_no", trainNo)
		if g == stats.GranularityMonthly {
			g = stats.GranularityWeekly
		}
	}
	return bucketTimeline(v, g), nil
}

// Search matches query case-insensitively against the distinct train
// numbers of the unfiltered dataset. A non-empty query is capped at 20
// matches; an empty query returns the full sorted list.
func (s *TrainService) Search(key, query string) (*models.TrainSearchResult, error) {
	cd, err := s.store.Get(key)
	if err != nil {
		return nil, err
	}

	trains := stats.DistinctSorted(cd.Data.All().Values("train_no"))
	if query == "" {
		return &models.TrainSearchResult{Trains: trains}, nil
	}

	q := strings.ToLower(query)
	matches := make([]string, 0, trainSearchMaxResult)
	for _, t := range trains {
		if strings.Contains(strings.ToLower(t), q) {
			matches = append(matches, t)
			if len(matches) == trainSearchMaxResult {
				break
			}
		}
	}
	return &models.TrainSearchResult{Trains: matches}, nil
}
