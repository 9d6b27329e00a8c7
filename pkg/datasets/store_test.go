package datasets

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tabwork/sheetrecon/pkg/errors"
)

func TestStoreAddAndGet(t *testing.T) {
	store := NewStore()

	ds := New("Sheet1", []string{"ID"})
	ds.Append(Row{"ID": "1"})
	require.NoError(t, store.Add("orders.xlsx", ds))

	got, err := store.Get("orders.xlsx", "Sheet1")
	require.NoError(t, err)
	assert.Equal(t, ds, got)

	assert.Equal(t, []string{"orders.xlsx"}, store.Files())
	assert.Equal(t, []string{"Sheet1"}, store.Worksheets("orders.xlsx"))
	assert.Equal(t, 1, store.Len())
}

func TestStoreGetMissing(t *testing.T) {
	store := NewStore()
	require.NoError(t, store.Add("orders.xlsx", New("Sheet1", nil)))

	_, err := store.Get("ghost.xlsx", "Sheet1")
	assert.True(t, errors.IsNotFound(err))

	_, err = store.Get("orders.xlsx", "NoSuchSheet")
	assert.True(t, errors.IsNotFound(err))
}

func TestStoreReplaceWorksheet(t *testing.T) {
	store := NewStore()
	require.NoError(t, store.Add("f", New("S", []string{"A"})))

	replacement := New("S", []string{"A", "B"})
	require.NoError(t, store.Add("f", replacement))

	got, err := store.Get("f", "S")
	require.NoError(t, err)
	assert.Equal(t, replacement, got)
	// Replacing must not duplicate the worksheet listing.
	assert.Equal(t, []string{"S"}, store.Worksheets("f"))
}

func TestStoreRejectsInvalidDataset(t *testing.T) {
	store := NewStore()

	assert.Error(t, store.Add("f", nil))

	bad := New("S", []string{"A"})
	bad.Append(Row{"B": "1"}) // undeclared header
	assert.Error(t, store.Add("f", bad))
}

func TestDatasetValidate(t *testing.T) {
	tests := []struct {
		name    string
		dataset *Dataset
		wantErr bool
	}{
		{
			name:    "valid",
			dataset: &Dataset{Name: "S", Headers: []string{"A", "B"}, Rows: []Row{{"A": "1"}}},
		},
		{
			name:    "missing name",
			dataset: &Dataset{Headers: []string{"A"}},
			wantErr: true,
		},
		{
			name:    "duplicate header",
			dataset: &Dataset{Name: "S", Headers: []string{"A", "A"}},
			wantErr: true,
		},
		{
			name:    "row with undeclared header",
			dataset: &Dataset{Name: "S", Headers: []string{"A"}, Rows: []Row{{"Z": "1"}}},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.dataset.Validate()
			if tt.wantErr {
				assert.True(t, errors.IsValidationError(err))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestDatasetHelpers(t *testing.T) {
	ds := New("S", []string{"A", "B"})
	assert.True(t, ds.HasHeader("A"))
	assert.False(t, ds.HasHeader("Z"))
	assert.Equal(t, 0, ds.Len())

	ds.Append(Row{"A": "1"})
	assert.Equal(t, 1, ds.Len())
}
