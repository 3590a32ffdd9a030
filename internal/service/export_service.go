package service

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"strings"

	"github.com/jengzang/acp-backend-go/internal/models"
	"github.com/jengzang/acp-backend-go/internal/store"
)

// ErrUnsupportedFormat rejects export formats other than csv and json.
var ErrUnsupportedFormat = errors.New("unsupported format")

// ExportService serializes filtered datasets for download.
type ExportService struct {
	store *store.Store
}

// NewExportService creates a new export service.
func NewExportService(st *store.Store) *ExportService {
	return &ExportService{store: st}
}

// CSV renders the filtered view as CSV over every dataset field: canonical
// headers, absent cells empty, dates as YYYY-MM-DD.
func (s *ExportService) CSV(key string, req models.FilterRequest) ([]byte, error) {
	cd, err := s.store.Get(key)
	if err != nil {
		return nil, err
	}
	v := cd.Data.All().Apply(req)
	fields := cd.Data.Fields()

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(fields); err != nil {
		return nil, fmt.Errorf("failed to write CSV header: %w", err)
	}
	row := make([]string, len(fields))
	for i := 0; i < v.Len(); i++ {
		for j, f := range fields {
			row[j], _ = v.Cell(f, i)
		}
		if err := w.Write(row); err != nil {
			return nil, fmt.Errorf("failed to write CSV row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("failed to flush CSV: %w", err)
	}
	return buf.Bytes(), nil
}

// JSON renders the filtered view as record objects with null absents.
func (s *ExportService) JSON(key string, req models.FilterRequest) (*models.ExportJSON, error) {
	cd, err := s.store.Get(key)
	if err != nil {
		return nil, err
	}
	v := cd.Data.All().Apply(req)
	records := viewRecords(v, 0, v.Len())
	return &models.ExportJSON{Data: records, TotalRecords: len(records)}, nil
}

// ValidateFormat normalizes the requested export format, returning
// ErrUnsupportedFormat for anything but csv or json.
func ValidateFormat(format string) (string, error) {
	f := strings.ToLower(format)
	if f != "csv" && f != "json" {
		return "", fmt.Errorf("%w: %q, use 'csv' or 'json'", ErrUnsupportedFormat, format)
	}
	return f, nil
}
