package service

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jengzang/acp-backend-go/internal/dataset"
	"github.com/jengzang/acp-backend-go/internal/models"
	"github.com/jengzang/acp-backend-go/internal/store"
)

var (
	// ErrTooManyFiles rejects upload batches above the configured limit.
	ErrTooManyFiles = errors.New("too many files")
	// ErrNotCSV rejects files without a .csv extension.
	ErrNotCSV = errors.New("only CSV files are allowed")
)

// UploadedFile is one file of an upload batch, in upload order.
type UploadedFile struct {
	Name    string
	Content []byte
}

// UploadService ingests incident registers into the dataset store.
type UploadService struct {
	store    *store.Store
	maxFiles int
}

// NewUploadService creates a new upload service.
func NewUploadService(st *store.Store, maxFiles int) *UploadService {
	return &UploadService{store: st, maxFiles: maxFiles}
}

// Process validates, normalizes and caches an upload batch. All files are
// row-concatenated in upload order under one content-derived cache key; one
// bad file fails the whole batch. Re-uploading identical content yields the
// same key and replaces the equivalent cached entry.
func (s *UploadService) Process(files []UploadedFile) (*models.UploadResult, error) {
	if len(files) > s.maxFiles {
		return nil, fmt.Errorf("%w: maximum %d files allowed", ErrTooManyFiles, s.maxFiles)
	}

	parts := make([]*dataset.Dataset, 0, len(files))
	contents := make([][]byte, 0, len(files))
	for _, f := range files {
		if !strings.HasSuffix(strings.ToLower(f.Name), ".csv") {
			return nil, fmt.Errorf("%w: %s", ErrNotCSV, f.Name)
		}
		ds, err := dataset.ParseCSV(bytes.NewReader(f.Content))
		if err != nil {
			return nil, fmt.Errorf("failed to process %s: %w", f.Name, err)
		}
		parts = append(parts, ds)
		contents = append(contents, f.Content)
	}

	combined := dataset.Concat(parts)
	key := store.Key(contents)
	s.store.Put(&store.CachedDataset{
		Key:        key,
		Data:       combined,
		UploadTime: time.Now(),
		FileCount:  len(files),
	})

	return &models.UploadResult{CacheKey: key, TotalRecords: combined.Rows()}, nil
}
