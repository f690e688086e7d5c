package cart

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"hedonic/internal/model"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	dirtyShirley = model.Product{ID: "p-ds", Name: "Dirty Shirley", Slug: "dirty-shirley", Price: 29.99}
	orangeJulius = model.Product{ID: "p-oj", Name: "Orange Julius", Slug: "orange-julius", Price: 29.99}
)

func newTestCart(t *testing.T) *Cart {
	t.Helper()
	return New(NewMemoryStore(), zerolog.Nop())
}

func TestCart_AddItem_IncrementsExistingLine(t *testing.T) {
	c := newTestCart(t)

	require.NoError(t, c.AddItem(dirtyShirley, 1))
	require.NoError(t, c.AddItem(dirtyShirley, 1))

	lines := c.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, 2, lines[0].Quantity)
	assert.Equal(t, dirtyShirley.ID, lines[0].Product.ID)
}

func TestCart_AddItem_SeparateLinesPerProduct(t *testing.T) {
	c := newTestCart(t)

	require.NoError(t, c.AddItem(dirtyShirley, 2))
	require.NoError(t, c.AddItem(orangeJulius, 1))

	assert.Len(t, c.Lines(), 2)
	assert.Equal(t, 3, c.TotalItems())
}

func TestCart_AddItem_RejectsNonPositiveQuantity(t *testing.T) {
	c := newTestCart(t)

	assert.Error(t, c.AddItem(dirtyShirley, 0))
	assert.Error(t, c.AddItem(dirtyShirley, -1))
	assert.Empty(t, c.Lines())
}

func TestCart_RemoveItem(t *testing.T) {
	c := newTestCart(t)
	require.NoError(t, c.AddItem(dirtyShirley, 2))

	require.NoError(t, c.RemoveItem(dirtyShirley.ID))
	assert.Empty(t, c.Lines())

	// Removing an absent product is a no-op.
	require.NoError(t, c.RemoveItem("missing"))
	assert.Empty(t, c.Lines())
}

func TestCart_UpdateQuantity(t *testing.T) {
	c := newTestCart(t)
	require.NoError(t, c.AddItem(dirtyShirley, 2))

	t.Run("Absolute set, not delta", func(t *testing.T) {
		require.NoError(t, c.UpdateQuantity(dirtyShirley.ID, 5))
		assert.Equal(t, 5, c.Lines()[0].Quantity)
	})

	t.Run("Zero removes the line", func(t *testing.T) {
		require.NoError(t, c.UpdateQuantity(dirtyShirley.ID, 0))
		assert.Empty(t, c.Lines())
	})

	t.Run("Negative removes the line", func(t *testing.T) {
		require.NoError(t, c.AddItem(dirtyShirley, 1))
		require.NoError(t, c.UpdateQuantity(dirtyShirley.ID, -3))
		assert.Empty(t, c.Lines())
	})
}

func TestCart_Clear(t *testing.T) {
	c := newTestCart(t)
	require.NoError(t, c.AddItem(dirtyShirley, 2))
	require.NoError(t, c.AddItem(orangeJulius, 1))

	require.NoError(t, c.Clear())

	assert.Empty(t, c.Lines())
	assert.Equal(t, 0, c.TotalItems())
	assert.Equal(t, 0.0, c.TotalPrice())
}

func TestCart_Totals(t *testing.T) {
	c := newTestCart(t)
	productA := model.Product{ID: "a", Price: 10.00}
	productB := model.Product{ID: "b", Price: 5.50}

	require.NoError(t, c.AddItem(productA, 2))
	require.NoError(t, c.AddItem(productB, 1))

	assert.Equal(t, 3, c.TotalItems())
	assert.InDelta(t, 25.50, c.TotalPrice(), 0.0001)
}

func TestCart_TotalPrice_UsesSnapshotPrice(t *testing.T) {
	c := newTestCart(t)
	p := model.Product{ID: "a", Price: 10.00}
	require.NoError(t, c.AddItem(p, 1))

	// Mutating the caller's product after adding must not affect the cart.
	p.Price = 99.99
	assert.InDelta(t, 10.00, c.TotalPrice(), 0.0001)
}

func TestCart_Subscribe(t *testing.T) {
	c := newTestCart(t)

	var seen [][]Line
	unsubscribe := c.Subscribe(func(lines []Line) {
		seen = append(seen, lines)
	})

	require.NoError(t, c.AddItem(dirtyShirley, 1))
	require.Len(t, seen, 1)
	assert.Equal(t, 1, seen[0][0].Quantity)

	require.NoError(t, c.UpdateQuantity(dirtyShirley.ID, 3))
	require.Len(t, seen, 2)
	assert.Equal(t, 3, seen[1][0].Quantity)

	unsubscribe()
	require.NoError(t, c.Clear())
	assert.Len(t, seen, 2)
}

func TestCart_FileStore_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cart.json")

	c := New(NewFileStore(path), zerolog.Nop())
	require.NoError(t, c.AddItem(dirtyShirley, 2))
	require.NoError(t, c.AddItem(orangeJulius, 1))

	// A second cart over the same store reconstructs the same lines.
	reloaded := New(NewFileStore(path), zerolog.Nop())
	lines := reloaded.Lines()
	require.Len(t, lines, 2)

	quantities := map[string]int{}
	for _, line := range lines {
		quantities[line.Product.ID] = line.Quantity
	}
	assert.Equal(t, map[string]int{"p-ds": 2, "p-oj": 1}, quantities)
}

func TestCart_FileStore_MissingFileIsEmptyCart(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cart.json")
	c := New(NewFileStore(path), zerolog.Nop())
	assert.Empty(t, c.Lines())
}

func TestCart_CorruptStoreDegradesToEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cart.json")
	require.NoError(t, os.WriteFile(path, []byte("{{{not json"), 0o644))

	c := New(NewFileStore(path), zerolog.Nop())
	assert.Empty(t, c.Lines())

	// The cart stays usable after recovery.
	require.NoError(t, c.AddItem(dirtyShirley, 1))
	assert.Equal(t, 1, c.TotalItems())
}

// failingStore rejects every save.
type failingStore struct{}

func (failingStore) Load() ([]Line, error)  { return nil, nil }
func (failingStore) Save(lines []Line) error { return errors.New("disk full") }

func TestCart_FailedPersistLeavesCartUnchanged(t *testing.T) {
	c := New(failingStore{}, zerolog.Nop())

	notified := false
	c.Subscribe(func([]Line) { notified = true })

	err := c.AddItem(dirtyShirley, 1)
	require.Error(t, err)
	assert.Empty(t, c.Lines())
	assert.False(t, notified)
}
