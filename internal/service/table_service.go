package service

import (
	"github.com/jengzang/acp-backend-go/internal/dataset"
	"github.com/jengzang/acp-backend-go/internal/models"
	"github.com/jengzang/acp-backend-go/internal/store"
)

const defaultPageSize = 50

// TableService serves paginated row records over filtered views.
type TableService struct {
	store *store.Store
}

// NewTableService creates a new table service.
func NewTableService(st *store.Store) *TableService {
	return &TableService{store: st}
}

// Page returns the requested 1-indexed page of the filtered view. Cells are
// display strings with null for absent values; dates render as YYYY-MM-DD.
// An out-of-range page yields an empty data list, and zero filtered rows
// yield zero pages.
func (s *TableService) Page(key string, req models.TableRequest) (*models.TablePage, error) {
	cd, err := s.store.Get(key)
	if err != nil {
		return nil, err
	}

	page := req.Page
	if page < 1 {
		page = 1
	}
	pageSize := req.PageSize
	if pageSize < 1 {
		pageSize = defaultPageSize
	}

	v := cd.Data.All().Apply(req.Filters)
	total := v.Len()

	start := (page - 1) * pageSize
	end := start + pageSize
	if start > total {
		start = total
	}
	if end > total {
		end = total
	}

	return &models.TablePage{
		Data:       viewRecords(v, start, end),
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: (total + pageSize - 1) / pageSize,
	}, nil
}

// viewRecords materializes view positions [from, to) as display records
// over every dataset field.
func viewRecords(v dataset.View, from, to int) []map[string]any {
	fields := v.Dataset().Fields()
	records := make([]map[string]any, 0, to-from)
	for i := from; i < to; i++ {
		rec := make(map[string]any, len(fields))
		for _, f := range fields {
			if s, ok := v.Cell(f, i); ok {
				rec[f] = s
			} else {
				rec[f] = nil
			}
		}
		records = append(records, rec)
	}
	return records
}
