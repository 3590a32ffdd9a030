package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/jszwec/csvutil"
)

// sourceDateLayout is the day-first format used by the incident registers.
const sourceDateLayout = "02-01-2006"

// rawRecord mirrors one row of an uploaded incident register. The csv tags
// are the exact source headers; csvutil ignores headers with no tag, which
// drops unrecognized columns from the canonical view.
type rawRecord struct {
	Date            string `csv:"DATE_M"`
	DayName         string `csv:"DAY NAME_F"`
	TrainNo         string `csv:"Train No"`
	TrainFromTo     string `csv:"Train From_To"`
	Direction       string `csv:"Direction UP/Down"`
	DailyType       string `csv:"Daily/Non-daily"`
	TimeFrom        string `csv:"FROM"`
	TimeTo          string `csv:"TO"`
	TimeAnalysis    string `csv:"Time Analysis"`
	Duration        string `csv:"Duration"`
	PostNames       string `csv:"POST_Names"`
	SouthNorth      string `csv:"SOUTH/NORTH"`
	StnSecFrom      string `csv:"STN/SEC from"`
	MidSection      string `csv:"Mid section"`
	BroadSection    string `csv:"Broad section"`
	KmNo            string `csv:"K.M.No"`
	KmAnalysis      string `csv:"KM anlysis"`
	Coach           string `csv:"COACH"`
	CoachNo         string `csv:"Coach No."`
	Reason          string `csv:"Reason"`
	Category        string `csv:"CATEGORY"`
	Remarks         string `csv:"Remarks"`
	Escort          string `csv:"ESCORT"`
	Status          string `csv:"STATUS"`
	PunctualityLoss string `csv:"Punctuality loss"`
	TypeOfCoach     string `csv:"Type of coach"`
	PantryCar       string `csv:"Pantry car"`
	OtherReasons    string `csv:"Other reasons"`
	Guard           string `csv:"Guard"`
	LpAlp           string `csv:"LP/ALP"`
	Tte             string `csv:"TTE"`
	RectifiedBy     string `csv:"Rectified by"`
}

// sourceColumn binds a source header to its canonical field, storage type
// and rawRecord accessor.
type sourceColumn struct {
	header    string
	canonical string
	typ       FieldType
	get       func(*rawRecord) string
}

// sourceColumns is the fixed rename table. Fields flagged FieldCategory are
// the designated low-cardinality domains; the tag is a storage hint only.
var sourceColumns = []sourceColumn{
	{"DATE_M", "date", FieldDate, func(r *rawRecord) string { return r.Date }},
	{"DAY NAME_F", "day_name", FieldString, func(r *rawRecord) string { return r.DayName }},
	{"Train No", "train_no", FieldString, func(r *rawRecord) string { return r.TrainNo }},
	{"Train From_To", "train_from_to", FieldString, func(r *rawRecord) string { return r.TrainFromTo }},
	{"Direction UP/Down", "direction", FieldCategory, func(r *rawRecord) string { return r.Direction }},
	{"Daily/Non-daily", "daily_type", FieldCategory, func(r *rawRecord) string { return r.DailyType }},
	{"FROM", "time_from", FieldString, func(r *rawRecord) string { return r.TimeFrom }},
	{"TO", "time_to", FieldString, func(r *rawRecord) string { return r.TimeTo }},
	{"Time Analysis", "time_analysis", FieldString, func(r *rawRecord) string { return r.TimeAnalysis }},
	{"Duration", "duration", FieldString, func(r *rawRecord) string { return r.Duration }},
	{"POST_Names", "post_names", FieldString, func(r *rawRecord) string { return r.PostNames }},
	{"SOUTH/NORTH", "south_north", FieldCategory, func(r *rawRecord) string { return r.SouthNorth }},
	{"STN/SEC from", "stn_sec_from", FieldString, func(r *rawRecord) string { return r.StnSecFrom }},
	{"Mid section", "mid_section", FieldString, func(r *rawRecord) string { return r.MidSection }},
	{"Broad section", "broad_section", FieldString, func(r *rawRecord) string { return r.BroadSection }},
	{"K.M.No", "km_no", FieldString, func(r *rawRecord) string { return r.KmNo }},
	{"KM anlysis", "km_analysis", FieldString, func(r *rawRecord) string { return r.KmAnalysis }},
	{"COACH", "coach", FieldString, func(r *rawRecord) string { return r.Coach }},
	{"Coach No.", "coach_no", FieldString, func(r *rawRecord) string { return r.CoachNo }},
	{"Reason", "reason", FieldCategory, func(r *rawRecord) string { return r.Reason }},
	{"CATEGORY", "category", FieldCategory, func(r *rawRecord) string { return r.Category }},
	{"Remarks", "remarks", FieldString, func(r *rawRecord) string { return r.Remarks }},
	{"ESCORT", "escort", FieldCategory, func(r *rawRecord) string { return r.Escort }},
	{"STATUS", "status", FieldCategory, func(r *rawRecord) string { return r.Status }},
	{"Punctuality loss", "punctuality_loss", FieldString, func(r *rawRecord) string { return r.PunctualityLoss }},
	{"Type of coach", "type_of_coach", FieldCategory, func(r *rawRecord) string { return r.TypeOfCoach }},
	{"Pantry car", "pantry_car", FieldString, func(r *rawRecord) string { return r.PantryCar }},
	{"Other reasons", "other_reasons", FieldString, func(r *rawRecord) string { return r.OtherReasons }},
	{"Guard", "guard", FieldString, func(r *rawRecord) string { return r.Guard }},
	{"LP/ALP", "lp_alp", FieldString, func(r *rawRecord) string { return r.LpAlp }},
	{"TTE", "tte", FieldString, func(r *rawRecord) string { return r.Tte }},
	{"Rectified by", "rectified_by", FieldString, func(r *rawRecord) string { return r.RectifiedBy }},
}

var columnsByHeader = func() map[string]sourceColumn {
	m := make(map[string]sourceColumn, len(sourceColumns))
	for _, sc := range sourceColumns {
		m[sc.header] = sc
	}
	return m
}()

// ParseCSV normalizes one uploaded register into a Dataset. The header row
// selects which canonical fields the dataset carries, in source order.
// Empty cells and unparsable dates become absent values, never errors.
func ParseCSV(r io.Reader) (*Dataset, error) {
	dec, err := csvutil.NewDecoder(csv.NewReader(r))
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV header: %w", err)
	}

	// Recognized source columns, in header order.
	var active []sourceColumn
	ds := &Dataset{cols: make(map[string]*Column)}
	for _, h := range dec.Header() {
		sc, ok := columnsByHeader[h]
		if !ok {
			continue
		}
		if _, dup := ds.cols[sc.canonical]; dup {
			continue
		}
		active = append(active, sc)
		ds.cols[sc.canonical] = newColumn(sc.typ)
		ds.fields = append(ds.fields, sc.canonical)
	}

	for {
		var rec rawRecord
		if err := dec.Decode(&rec); err == io.EOF {
			break
		} else if err != nil {
			return nil, fmt.Errorf("failed to decode CSV record: %w", err)
		}
		for _, sc := range active {
			appendCell(ds.cols[sc.canonical], sc.typ, sc.get(&rec))
		}
		ds.rows++
	}
	return ds, nil
}

func appendCell(col *Column, typ FieldType, raw string) {
	v := strings.TrimSpace(raw)
	if v == "" {
		col.appendAbsent(1)
		return
	}
	switch typ {
	case FieldDate:
		d, err := time.Parse(sourceDateLayout, v)
		if err != nil {
			col.appendAbsent(1)
			return
		}
		col.appendDate(d)
	case FieldCategory:
		col.appendCategory(v)
	default:
		col.appendString(v)
	}
}
