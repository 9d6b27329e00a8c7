package datasets

import (
	"sync"

	"github.com/tabwork/sheetrecon/pkg/errors"
)

// Store is an in-memory registry of normalized datasets keyed by the identity
// of the source file they were extracted from. One file may contribute several
// worksheets. The store is safe for concurrent readers; the reconciliation
// engine only ever reads from it.
type Store struct {
	mu    sync.RWMutex
	files map[string]*file
	order []string // file IDs in insertion order
}

// file groups the worksheets extracted from one source file.
type file struct {
	id     string
	sheets map[string]*Dataset
	order  []string // worksheet names in insertion order
}

// NewStore creates an empty dataset store.
func NewStore() *Store {
	return &Store{
		files: make(map[string]*file),
	}
}

// Add registers a dataset under the given file ID. Re-adding a worksheet
// with the same name replaces the previous instance.
func (s *Store) Add(fileID string, ds *Dataset) error {
	if ds == nil {
		return errors.NewValidationError("dataset", nil, "dataset is nil")
	}
	if err := ds.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	f, ok := s.files[fileID]
	if !ok {
		f = &file{id: fileID, sheets: make(map[string]*Dataset)}
		s.files[fileID] = f
		s.order = append(s.order, fileID)
	}
	if _, exists := f.sheets[ds.Name]; !exists {
		f.order = append(f.order, ds.Name)
	}
	f.sheets[ds.Name] = ds
	return nil
}

// Get resolves a worksheet by exact file ID and worksheet name.
func (s *Store) Get(fileID, worksheet string) (*Dataset, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	f, ok := s.files[fileID]
	if !ok {
		return nil, errors.NewNotFoundError("dataset", fileID)
	}
	ds, ok := f.sheets[worksheet]
	if !ok {
		return nil, errors.NewNotFoundError("worksheet", fileID+"/"+worksheet)
	}
	return ds, nil
}

// Files returns the registered file IDs in insertion order.
func (s *Store) Files() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]string, len(s.order))
	copy(out, s.order)
	return out
}

// Worksheets returns the worksheet names registered under a file ID, in
// insertion order. A missing file yields an empty slice.
func (s *Store) Worksheets(fileID string) []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	f, ok := s.files[fileID]
	if !ok {
		return nil
	}
	out := make([]string, len(f.order))
	copy(out, f.order)
	return out
}

// Len returns the number of registered files.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.files)
}
