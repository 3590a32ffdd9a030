package service

import (
	"errors"
	"testing"

	"github.com/jengzang/acp-backend-go/internal/store"
)

func TestUploadService(t *testing.T) {
	t.Run("rejects batches above the file limit before parsing", func(t *testing.T) {
		svc := NewUploadService(store.New(), 3)
		files := make([]UploadedFile, 4)
		for i := range files {
			// Deliberately invalid content: the limit check must come first.
			files[i] = UploadedFile{Name: "a.csv", Content: []byte("\xff\xfe")}
		}
		_, err := svc.Process(files)
		if !errors.Is(err, ErrTooManyFiles) {
			t.Fatalf("expected ErrTooManyFiles, got %v", err)
		}
	})

	t.Run("rejects non-CSV filenames", func(t *testing.T) {
		svc := NewUploadService(store.New(), 3)
		_, err := svc.Process([]UploadedFile{{Name: "register.xlsx", Content: []byte("Train No\n1\n")}})
		if !errors.Is(err, ErrNotCSV) {
			t.Fatalf("expected ErrNotCSV, got %v", err)
		}
	})

	t.Run("one bad file fails the whole batch", func(t *testing.T) {
		st := store.New()
		svc := NewUploadService(st, 3)
		_, err := svc.Process([]UploadedFile{
			{Name: "good.csv", Content: []byte("Train No\n12301\n")},
			{Name: "bad.csv", Content: []byte("Train No,Reason\nonly-one-field\n")},
		})
		if err == nil {
			t.Fatalf("expected batch failure")
		}
		if st.Len() != 0 {
			t.Fatalf("failed batch must not be cached")
		}
	})

	t.Run("identical uploads reuse the same key", func(t *testing.T) {
		st := store.New()
		svc := NewUploadService(st, 3)
		first, err := svc.Process([]UploadedFile{{Name: "r.csv", Content: []byte(incidentsCSV)}})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		second, err := svc.Process([]UploadedFile{{Name: "r.csv", Content: []byte(incidentsCSV)}})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if first.CacheKey != second.CacheKey {
			t.Fatalf("keys differ: %s vs %s", first.CacheKey, second.CacheKey)
		}
		if st.Len() != 1 {
			t.Fatalf("expected a single cache entry, got %d", st.Len())
		}
	})

	t.Run("multiple files concatenate in upload order", func(t *testing.T) {
		st := store.New()
		svc := NewUploadService(st, 3)
		result, err := svc.Process([]UploadedFile{
			{Name: "jan.csv", Content: []byte("Train No\n12301\n12302\n")},
			{Name: "feb.csv", Content: []byte("Train No\n12303\n")},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result.TotalRecords != 3 {
			t.Fatalf("expected 3 rows, got %d", result.TotalRecords)
		}
		cd, err := st.Get(result.CacheKey)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cd.FileCount != 2 {
			t.Fatalf("expected file count 2, got %d", cd.FileCount)
		}
	})
}
