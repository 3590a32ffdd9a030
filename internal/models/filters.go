package models

// FilterRequest is the conjunctive predicate applied to a cached dataset.
// Every clause is optional; an absent clause never excludes rows. An
// explicitly empty list is a present clause and matches nothing.
type FilterRequest struct {
	DateFrom     string   `json:"date_from"`     // inclusive, YYYY-MM-DD
	DateTo       string   `json:"date_to"`       // inclusive, YYYY-MM-DD
	TrainNumbers []string `json:"train_numbers"` // matches train_no
	Directions   []string `json:"directions"`    // matches direction
	Categories   []string `json:"categories"`    // matches category
	Reasons      []string `json:"reasons"`       // matches reason
	CoachTypes   []string `json:"coach_types"`   // matches type_of_coach
	Sections     []string `json:"sections"`      // matches broad_section
	RPFPosts     []string `json:"rpf_posts"`     // matches post_names
}

// TableRequest wraps a predicate with pagination parameters.
type TableRequest struct {
	Filters  FilterRequest `json:"filters"`
	Page     int           `json:"page"`
	PageSize int           `json:"page_size"`
}
