package cart

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chinmay09gowda/e-commerce.website/models"
)

// fakeStore keeps rows in memory and can be told to fail.
type fakeStore struct {
	rows map[string]map[uuid.UUID]int // session -> product -> quantity
	err  error
}

func newFakeStore() *fakeStore {
	return &fakeStore{rows: make(map[string]map[uuid.UUID]int)}
}

func (f *fakeStore) session(sessionID string) map[uuid.UUID]int {
	if f.rows[sessionID] == nil {
		f.rows[sessionID] = make(map[uuid.UUID]int)
	}
	return f.rows[sessionID]
}

func (f *fakeStore) Fetch(_ context.Context, sessionID string) ([]Line, error) {
	if f.err != nil {
		return nil, f.err
	}
	var lines []Line
	for id, qty := range f.session(sessionID) {
		lines = append(lines, Line{Product: models.Product{ID: id}, Quantity: qty})
	}
	return lines, nil
}

func (f *fakeStore) Insert(_ context.Context, sessionID string, productID uuid.UUID, quantity int) error {
	if f.err != nil {
		return f.err
	}
	f.session(sessionID)[productID] = quantity
	return nil
}

func (f *fakeStore) UpdateQuantity(_ context.Context, sessionID string, productID uuid.UUID, quantity int) error {
	if f.err != nil {
		return f.err
	}
	if _, ok := f.session(sessionID)[productID]; ok {
		f.session(sessionID)[productID] = quantity
	}
	return nil
}

func (f *fakeStore) Delete(_ context.Context, sessionID string, productID uuid.UUID) error {
	if f.err != nil {
		return f.err
	}
	delete(f.session(sessionID), productID)
	return nil
}

func (f *fakeStore) Clear(_ context.Context, sessionID string) error {
	if f.err != nil {
		return f.err
	}
	delete(f.rows, sessionID)
	return nil
}

func product(price float64) models.Product {
	return models.Product{ID: uuid.New(), Name: "p", Price: price, Stock: 100}
}

func TestAddAccumulatesQuantity(t *testing.T) {
	store := newFakeStore()
	c := New(store, "s1")
	p := product(10)

	require.NoError(t, c.Add(context.Background(), p, 2))
	require.NoError(t, c.Add(context.Background(), p, 1))
	require.NoError(t, c.Add(context.Background(), p, 4))

	lines := c.Lines()
	require.Len(t, lines, 1, "repeat adds must not grow a second line")
	assert.Equal(t, 7, lines[0].Quantity)
	assert.Equal(t, 7, store.session("s1")[p.ID])
}

func TestAddTwoProducts(t *testing.T) {
	c := New(newFakeStore(), "s1")
	pa, pb := product(10), product(5)

	require.NoError(t, c.Add(context.Background(), pa, 2))
	require.NoError(t, c.Add(context.Background(), pb, 1))

	assert.Equal(t, 25.0, c.Total())
	assert.Equal(t, 3, c.ItemCount())

	// Insertion order is preserved.
	lines := c.Lines()
	require.Len(t, lines, 2)
	assert.Equal(t, pa.ID, lines[0].Product.ID)
	assert.Equal(t, pb.ID, lines[1].Product.ID)
}

func TestSetQuantityZeroRemoves(t *testing.T) {
	store := newFakeStore()
	c := New(store, "s1")
	p := product(10)

	require.NoError(t, c.Add(context.Background(), p, 1))
	require.NoError(t, c.SetQuantity(context.Background(), p.ID, 0))

	assert.Empty(t, c.Lines())
	assert.Empty(t, store.session("s1"))
}

func TestSetQuantityNegativeRemoves(t *testing.T) {
	c := New(newFakeStore(), "s1")
	p := product(10)

	require.NoError(t, c.Add(context.Background(), p, 3))
	require.NoError(t, c.SetQuantity(context.Background(), p.ID, -2))

	assert.Empty(t, c.Lines())
	assert.Zero(t, c.ItemCount())
}

func TestRemoveAbsentProductIsNoop(t *testing.T) {
	c := New(newFakeStore(), "s1")
	p := product(10)
	require.NoError(t, c.Add(context.Background(), p, 2))

	require.NoError(t, c.Remove(context.Background(), uuid.New()))

	lines := c.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, 2, lines[0].Quantity)
}

func TestSetQuantityAbsentProductIsNoop(t *testing.T) {
	c := New(newFakeStore(), "s1")
	require.NoError(t, c.SetQuantity(context.Background(), uuid.New(), 5))
	assert.Empty(t, c.Lines())
}

func TestTotalAndItemCount(t *testing.T) {
	c := New(newFakeStore(), "s1")
	pa := product(10)

	assert.Equal(t, 0.0, c.Total())

	require.NoError(t, c.Add(context.Background(), pa, 2))
	assert.Equal(t, 20.0, c.Total())
	assert.Equal(t, 2, c.ItemCount())

	require.NoError(t, c.SetQuantity(context.Background(), pa.ID, 5))
	assert.Equal(t, 50.0, c.Total())
	assert.Equal(t, 5, c.ItemCount())
}

func TestClear(t *testing.T) {
	store := newFakeStore()
	c := New(store, "s1")

	require.NoError(t, c.Add(context.Background(), product(10), 2))
	require.NoError(t, c.Add(context.Background(), product(5), 1))
	require.NoError(t, c.Clear(context.Background()))

	assert.Empty(t, c.Lines())
	assert.Equal(t, 0.0, c.Total())
	assert.Zero(t, c.ItemCount())
	assert.Empty(t, store.rows["s1"])
}

func TestFailedWriteLeavesLocalStateUntouched(t *testing.T) {
	store := newFakeStore()
	c := New(store, "s1")
	p := product(10)
	require.NoError(t, c.Add(context.Background(), p, 2))

	store.err = errors.New("store down")

	assert.Error(t, c.Add(context.Background(), p, 1))
	assert.Error(t, c.Add(context.Background(), product(1), 1))
	assert.Error(t, c.SetQuantity(context.Background(), p.ID, 9))
	assert.Error(t, c.Remove(context.Background(), p.ID))
	assert.Error(t, c.Clear(context.Background()))

	lines := c.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, 2, lines[0].Quantity)
	assert.Equal(t, 20.0, c.Total())
}

func TestLoadReplacesState(t *testing.T) {
	store := newFakeStore()
	p := product(10)
	store.session("s1")[p.ID] = 3

	c := New(store, "s1")
	require.NoError(t, c.Load(context.Background()))

	require.Len(t, c.Lines(), 1)
	assert.Equal(t, 3, c.ItemCount())

	// A reload after external changes replaces lines wholesale.
	store.session("s1")[p.ID] = 1
	require.NoError(t, c.Load(context.Background()))
	assert.Equal(t, 1, c.ItemCount())
}

func TestLoadErrorSurfaces(t *testing.T) {
	store := newFakeStore()
	store.err = errors.New("store down")

	c := New(store, "s1")
	assert.Error(t, c.Load(context.Background()))
}
