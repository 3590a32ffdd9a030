package dataset

import (
	"time"
)

// FieldType is the storage type of a dataset column, resolved once at
// ingestion. Queries never re-infer value types.
type FieldType int

const (
	// FieldString stores raw display strings.
	FieldString FieldType = iota
	// FieldDate stores day-first parsed calendar dates.
	FieldDate
	// FieldCategory stores dictionary-encoded low-cardinality strings.
	FieldCategory
)

func (t FieldType) String() string {
	switch t {
	case FieldString:
		return "string"
	case FieldDate:
		return "date"
	case FieldCategory:
		return "category"
	default:
		return "unknown"
	}
}

// DateLayout is the display form for date cells.
const DateLayout = "2006-01-02"

// Column holds one canonical field for every row of a dataset. A row where
// the source cell was empty, unparsable, or the source column missing is
// marked absent in the presence mask.
type Column struct {
	typ     FieldType
	present []bool

	strs  []string    // FieldString
	dates []time.Time // FieldDate

	codes []int32 // FieldCategory
	dict  []string
	index map[string]int32
}

func newColumn(typ FieldType) *Column {
	c := &Column{typ: typ}
	if typ == FieldCategory {
		c.index = make(map[string]int32)
	}
	return c
}

// Type returns the column's storage type.
func (c *Column) Type() FieldType { return c.typ }

// Len returns the number of rows in the column.
func (c *Column) Len() int { return len(c.present) }

// Present reports whether row i has a value.
func (c *Column) Present(i int) bool { return c.present[i] }

// Value returns the display string for row i. Dates render as YYYY-MM-DD.
// ok is false for absent cells.
func (c *Column) Value(i int) (string, bool) {
	if !c.present[i] {
		return "", false
	}
	switch c.typ {
	case FieldDate:
		return c.dates[i].Format(DateLayout), true
	case FieldCategory:
		return c.dict[c.codes[i]], true
	default:
		return c.strs[i], true
	}
}

// Date returns the parsed date for row i of a FieldDate column.
func (c *Column) Date(i int) (time.Time, bool) {
	if c.typ != FieldDate || !c.present[i] {
		return time.Time{}, false
	}
	return c.dates[i], true
}

// Dict returns the distinct values of a FieldCategory column in
// first-encountered order.
func (c *Column) Dict() []string { return c.dict }

func (c *Column) appendString(v string) {
	c.present = append(c.present, true)
	c.strs = append(c.strs, v)
}

func (c *Column) appendDate(v time.Time) {
	c.present = append(c.present, true)
	c.dates = append(c.dates, v)
}

func (c *Column) appendCategory(v string) {
	code, ok := c.index[v]
	if !ok {
		code = int32(len(c.dict))
		c.dict = append(c.dict, v)
		c.index[v] = code
	}
	c.present = append(c.present, true)
	c.codes = append(c.codes, code)
}

// appendAbsent pads the column with n absent rows, keeping the value
// slices aligned with the presence mask.
func (c *Column) appendAbsent(n int) {
	for i := 0; i < n; i++ {
		c.present = append(c.present, false)
		switch c.typ {
		case FieldDate:
			c.dates = append(c.dates, time.Time{})
		case FieldCategory:
			c.codes = append(c.codes, -1)
		default:
			c.strs = append(c.strs, "")
		}
	}
}

// Dataset is an immutable columnar table of normalized incident records.
// Field order is the first-seen source column order.
type Dataset struct {
	fields []string
	cols   map[string]*Column
	rows   int
}

// Rows returns the row count.
func (d *Dataset) Rows() int { return d.rows }

// Fields returns canonical field names in column order.
func (d *Dataset) Fields() []string { return d.fields }

// Column returns the named column, or ok=false if the dataset never saw a
// source column mapping to it.
func (d *Dataset) Column(name string) (*Column, bool) {
	c, ok := d.cols[name]
	return c, ok
}

// All returns the identity view over the full dataset.
func (d *Dataset) All() View {
	return View{ds: d}
}

// Concat row-concatenates datasets in order, preserving each input's row
// order. The field set is the union in first-appearance order; rows from a
// dataset lacking a field are absent for it. No deduplication is performed.
func Concat(parts []*Dataset) *Dataset {
	out := &Dataset{cols: make(map[string]*Column)}
	for _, p := range parts {
		for _, f := range p.fields {
			src := p.cols[f]
			dst, ok := out.cols[f]
			if !ok {
				dst = newColumn(src.typ)
				dst.appendAbsent(out.rows)
				out.cols[f] = dst
				out.fields = append(out.fields, f)
			}
			appendColumn(dst, src)
		}
		// Pad fields the current part does not carry.
		for _, f := range out.fields {
			if _, ok := p.cols[f]; !ok {
				out.cols[f].appendAbsent(p.rows)
			}
		}
		out.rows += p.rows
	}
	return out
}

func appendColumn(dst, src *Column) {
	for i := 0; i < src.Len(); i++ {
		if !src.present[i] {
			dst.appendAbsent(1)
			continue
		}
		switch src.typ {
		case FieldDate:
			dst.appendDate(src.dates[i])
		case FieldCategory:
			dst.appendCategory(src.dict[src.codes[i]])
		default:
			dst.appendString(src.strs[i])
		}
	}
}
