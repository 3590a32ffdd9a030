package dataset

import "time"

// View is a read-only row subset of a dataset. The zero-index form (idx nil)
// is the identity view and costs nothing to create. Views never copy or
// mutate the underlying dataset.
type View struct {
	ds  *Dataset
	idx []int
}

// Dataset returns the underlying dataset.
func (v View) Dataset() *Dataset { return v.ds }

// Len returns the number of rows in the view.
func (v View) Len() int {
	if v.idx == nil {
		return v.ds.rows
	}
	return len(v.idx)
}

// RowIndex maps a view position to the underlying dataset row.
func (v View) RowIndex(i int) int {
	if v.idx == nil {
		return i
	}
	return v.idx[i]
}

// Cell returns the display value of field at view position i.
func (v View) Cell(field string, i int) (string, bool) {
	col, ok := v.ds.cols[field]
	if !ok {
		return "", false
	}
	return col.Value(v.RowIndex(i))
}

// Values collects the present display values of field in view order.
func (v View) Values(field string) []string {
	col, ok := v.ds.cols[field]
	if !ok {
		return nil
	}
	out := make([]string, 0, v.Len())
	for i := 0; i < v.Len(); i++ {
		if s, ok := col.Value(v.RowIndex(i)); ok {
			out = append(out, s)
		}
	}
	return out
}

// Dates collects the present parsed dates of field in view order.
func (v View) Dates(field string) []time.Time {
	col, ok := v.ds.cols[field]
	if !ok || col.typ != FieldDate {
		return nil
	}
	out := make([]time.Time, 0, v.Len())
	for i := 0; i < v.Len(); i++ {
		if d, ok := col.Date(v.RowIndex(i)); ok {
			out = append(out, d)
		}
	}
	return out
}

// DateRange returns the min and max present dates of field, ok=false when
// the view has no parsable dates for it.
func (v View) DateRange(field string) (min, max time.Time, ok bool) {
	col, found := v.ds.cols[field]
	if !found || col.typ != FieldDate {
		return time.Time{}, time.Time{}, false
	}
	for i := 0; i < v.Len(); i++ {
		d, present := col.Date(v.RowIndex(i))
		if !present {
			continue
		}
		if !ok || d.Before(min) {
			min = d
		}
		if !ok || d.After(max) {
			max = d
		}
		ok = true
	}
	return min, max, ok
}

// Restrict returns the sub-view of rows whose field equals value.
func (v View) Restrict(field, value string) View {
	col, ok := v.ds.cols[field]
	if !ok {
		return View{ds: v.ds, idx: []int{}}
	}
	idx := make([]int, 0, v.Len())
	for i := 0; i < v.Len(); i++ {
		row := v.RowIndex(i)
		if s, present := col.Value(row); present && s == value {
			idx = append(idx, row)
		}
	}
	return View{ds: v.ds, idx: idx}
}
