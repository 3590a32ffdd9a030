package models

import "github.com/jengzang/acp-backend-go/internal/stats"

// UploadResult is returned after a successful ingestion.
type UploadResult struct {
	CacheKey     string `json:"cache_key"`
	TotalRecords int    `json:"total_records"`
}

// DateRange bounds the parsable dates of a dataset or filtered view.
// Nil ends mean no parsable dates.
type DateRange struct {
	Min *string `json:"min"`
	Max *string `json:"max"`
}

// FilterOptions lists the selectable values for every filterable field of
// an unfiltered dataset. A field missing from the dataset is omitted.
type FilterOptions struct {
	DateRange    *DateRange `json:"date_range,omitempty"`
	TrainNumbers []string   `json:"train_numbers,omitempty"`
	Directions   []string   `json:"directions,omitempty"`
	Categories   []string   `json:"categories,omitempty"`
	Reasons      []string   `json:"reasons,omitempty"`
	CoachTypes   []string   `json:"coach_types,omitempty"`
	Sections     []string   `json:"sections,omitempty"`
	RPFPosts     []string   `json:"rpf_posts,omitempty"`
}

// ViewDateRange is the from/to span of a filtered view.
type ViewDateRange struct {
	From *string `json:"from"`
	To   *string `json:"to"`
}

// Analytics summarizes a filtered view for the dashboard overview.
// Distributions are ordered count-descending; top lists are truncated.
type Analytics struct {
	TotalIncidents        int                `json:"total_incidents"`
	DateRange             ViewDateRange      `json:"date_range"`
	TopCategories         []stats.ValueCount `json:"top_categories,omitempty"`
	TopReasons            []stats.ValueCount `json:"top_reasons,omitempty"`
	DirectionDistribution []stats.ValueCount `json:"direction_distribution,omitempty"`
	CoachTypeDistribution []stats.ValueCount `json:"coach_type_distribution,omitempty"`
	MonthlyTrend          []stats.TimeBucket `json:"monthly_trend,omitempty"`
}

// TablePage is one 1-indexed page of display rows over a filtered view.
type TablePage struct {
	Data       []map[string]any `json:"data"`
	Total      int              `json:"total"`
	Page       int              `json:"page"`
	PageSize   int              `json:"page_size"`
	TotalPages int              `json:"total_pages"`
}

// TimelineEntry is one bucket of a timeline chart. Date repeats the period
// label for chart axis labeling.
type TimelineEntry struct {
	Period string `json:"period"`
	Count  int    `json:"count"`
	Date   string `json:"date"`
}

// Timeline is the bucketed incident series of a filtered view.
type Timeline struct {
	Timeline []TimelineEntry `json:"timeline"`
}

// TrainIncident is one row of the top-affected-trains table.
type TrainIncident struct {
	TrainNo       string `json:"train_no"`
	IncidentCount int    `json:"incident_count"`
}

// TrainIncidents ranks trains by incident count.
type TrainIncidents struct {
	Trains []TrainIncident `json:"trains"`
}

// TrainListEntry extends TrainIncident with one representative row's
// route and schedule attributes.
type TrainListEntry struct {
	TrainNo       string `json:"train_no"`
	IncidentCount int    `json:"incident_count"`
	TrainFromTo   string `json:"train_from_to"`
	Direction     string `json:"direction"`
	DailyType     string `json:"daily_type"`
}

// TrainList ranks trains with representative details attached.
type TrainList struct {
	Trains []TrainListEntry `json:"trains"`
}

// TrainAnalytics breaks a (possibly single-train) view down by location,
// coach, reason and time slot. Every key is present even for empty views.
type TrainAnalytics struct {
	Sections     []stats.ValueCount `json:"sections"`
	Coaches      []stats.ValueCount `json:"coaches"`
	Reasons      []stats.ValueCount `json:"reasons"`
	TimeAnalysis []stats.ValueCount `json:"time_analysis"`
	MidSections  []stats.ValueCount `json:"mid_sections"`
}

// TrainSearchResult lists matching train numbers.
type TrainSearchResult struct {
	Trains []string `json:"trains"`
}

// KPIData carries the dashboard headline figures. Percentile is set only
// when the predicate selects exactly one train.
type KPIData struct {
	TotalIncidents int      `json:"total_incidents"`
	Percentile     *float64 `json:"percentile"`
	DailyAvg       float64  `json:"daily_avg"`
	MonthlyTrend   []int    `json:"monthly_trend"`
}

// DayAnalysis is the full per-weekday incident distribution.
type DayAnalysis struct {
	DayAnalysis []stats.ValueCount `json:"day_analysis"`
}

// ExportJSON is the JSON export envelope for a filtered dataset.
type ExportJSON struct {
	Data         []map[string]any `json:"data"`
	TotalRecords int              `json:"total_records"`
}
