package dataset

import (
	"time"

	"github.com/jengzang/acp-backend-go/internal/models"
)

// clause evaluates one predicate term against an underlying dataset row.
type clause func(row int) bool

// Apply filters the view by the conjunction of all present clauses in req,
// preserving row order. The source dataset is never mutated; an empty
// predicate returns the receiver unchanged. A clause over a field the
// dataset lacks matches no rows.
func (v View) Apply(req models.FilterRequest) View {
	clauses := buildClauses(v.ds, req)
	if len(clauses) == 0 {
		return v
	}

	keep := make([]bool, v.Len())
	for i := range keep {
		keep[i] = true
	}
	for _, cl := range clauses {
		for i := range keep {
			if keep[i] && !cl(v.RowIndex(i)) {
				keep[i] = false
			}
		}
	}

	idx := make([]int, 0, v.Len())
	for i, ok := range keep {
		if ok {
			idx = append(idx, v.RowIndex(i))
		}
	}
	return View{ds: v.ds, idx: idx}
}

func buildClauses(ds *Dataset, req models.FilterRequest) []clause {
	var clauses []clause

	if from, ok := parseBound(req.DateFrom); ok {
		clauses = append(clauses, dateClause(ds, func(d time.Time) bool { return !d.Before(from) }))
	}
	if to, ok := parseBound(req.DateTo); ok {
		clauses = append(clauses, dateClause(ds, func(d time.Time) bool { return !d.After(to) }))
	}

	sets := []struct {
		field  string
		values []string
	}{
		{"train_no", req.TrainNumbers},
		{"direction", req.Directions},
		{"category", req.Categories},
		{"reason", req.Reasons},
		{"type_of_coach", req.CoachTypes},
		{"broad_section", req.Sections},
		{"post_names", req.RPFPosts},
	}
	for _, s := range sets {
		if s.values != nil {
			clauses = append(clauses, setClause(ds, s.field, s.values))
		}
	}
	return clauses
}

// parseBound reads an ISO date bound; a blank or unparsable bound imposes
// no restriction.
func parseBound(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	d, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, false
	}
	return d, true
}

func dateClause(ds *Dataset, within func(time.Time) bool) clause {
	col, ok := ds.cols["date"]
	if !ok || col.typ != FieldDate {
		return matchNone
	}
	return func(row int) bool {
		d, present := col.Date(row)
		return present && within(d)
	}
}

// setClause builds a membership test over field. Category columns are
// matched on dictionary codes so each row check is a slice lookup.
func setClause(ds *Dataset, field string, values []string) clause {
	col, ok := ds.cols[field]
	if !ok {
		return matchNone
	}

	if col.typ == FieldCategory {
		allowed := make([]bool, len(col.dict))
		for _, val := range values {
			if code, ok := col.index[val]; ok {
				allowed[code] = true
			}
		}
		return func(row int) bool {
			return col.present[row] && allowed[col.codes[row]]
		}
	}

	set := make(map[string]struct{}, len(values))
	for _, val := range values {
		set[val] = struct{}{}
	}
	return func(row int) bool {
		s, present := col.Value(row)
		if !present {
			return false
		}
		_, ok := set[s]
		return ok
	}
}

func matchNone(int) bool { return false }
