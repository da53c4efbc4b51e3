package measure

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T, types ...*Type) *Store {
	t.Helper()
	store, err := OpenStore(filepath.Join(t.TempDir(), "measure.db"), types...)
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreSaveLoad(t *testing.T) {
	store := newTestStore(t, Distance)

	v := Distance.Of("kilometres", 42.195)
	id, err := store.Save("marathon", v)
	require.NoError(t, err)
	require.NotEmpty(t, id)

	record, err := store.Load(id)
	require.NoError(t, err)
	assert.Equal(t, id, record.ID)
	assert.Equal(t, "distance", record.TypeName)
	assert.Equal(t, "marathon", record.Name)
	assert.False(t, record.CreatedAt.IsZero())
	assert.InDelta(t, v.To("metres"), record.Value.To("metres"), 1e-9)
}

func TestStoreList(t *testing.T) {
	store := newTestStore(t, Distance, Weight)

	_, err := store.Save("a", Distance.Of("metres", 1))
	require.NoError(t, err)
	_, err = store.Save("b", Distance.Of("metres", 2))
	require.NoError(t, err)
	_, err = store.Save("c", Weight.Of("kilograms", 3))
	require.NoError(t, err)

	records, err := store.List("distance")
	require.NoError(t, err)
	require.Len(t, records, 2)
	for _, record := range records {
		assert.Equal(t, "distance", record.TypeName)
	}

	records, err = store.List("frequency")
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestStoreListOrdersSameSecondRecords(t *testing.T) {
	store := newTestStore(t, Distance)

	// Sub-second timestamps whose nanosecond parts would sort wrongly
	// under trailing-zero trimming (".12" > ".125" lexicographically).
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	rows := []struct {
		name string
		at   time.Time
	}{
		{"newer", base.Add(125 * time.Millisecond)},
		{"older", base.Add(120 * time.Millisecond)},
	}
	// Insert newest first so insertion order cannot mask a broken sort.
	for _, row := range rows {
		_, err := store.db.Exec(
			`INSERT INTO measurements (id, type, name, doc, created_at) VALUES (?, ?, ?, ?, ?)`,
			uuid.New().String(), "distance", row.name, `{"metres":1}`,
			row.at.Format(storeTimeLayout))
		require.NoError(t, err)
	}

	records, err := store.List("distance")
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "older", records[0].Name)
	assert.Equal(t, "newer", records[1].Name)
	assert.True(t, records[0].CreatedAt.Before(records[1].CreatedAt))
}

func TestStoreLoadMissing(t *testing.T) {
	store := newTestStore(t, Distance)

	_, err := store.Load("no-such-id")
	require.Error(t, err)
	assert.Equal(t, ErrCodeNotFound, CodeOf(err))
}

func TestStoreRejectsUnregisteredType(t *testing.T) {
	store := newTestStore(t, Distance)

	_, err := store.Save("oops", Weight.Of("grams", 1))
	require.Error(t, err)
	assert.Equal(t, ErrCodeNotFound, CodeOf(err))
}

func TestStoreRejectsZeroValue(t *testing.T) {
	store := newTestStore(t, Distance)

	var v Value
	_, err := store.Save("oops", v)
	require.Error(t, err)
	assert.Equal(t, ErrCodeInvalidValue, CodeOf(err))
}

func TestStoreRejectsUnnamedType(t *testing.T) {
	anon := MustNew(Table{"a": 1}, Options{})
	_, err := OpenStore(filepath.Join(t.TempDir(), "measure.db"), anon)
	require.Error(t, err)
	assert.Equal(t, ErrCodeStore, CodeOf(err))
}
