package cart

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	widget = Item{ID: "p1", Name: "Widget", Price: 10}
	gadget = Item{ID: "p2", Name: "Gadget", Price: 5}
)

func TestAddAppendsInOrder(t *testing.T) {
	c := New()
	c = Add(c, widget)
	c = Add(c, gadget)
	c = Add(c, widget)

	require.Len(t, c.Items, 3)
	assert.Equal(t, []Item{widget, gadget, widget}, c.Items)
}

func TestAddDoesNotMergeDuplicates(t *testing.T) {
	c := Add(Add(New(), widget), widget)

	require.Len(t, c.Items, 2)
	assert.Equal(t, widget, c.Items[0])
	assert.Equal(t, widget, c.Items[1])
}

func TestRemoveDropsAllMatchingEntries(t *testing.T) {
	c := Add(Add(Add(New(), widget), gadget), widget)

	c = Remove(c, "p1")

	assert.Equal(t, []Item{gadget}, c.Items)
}

func TestAddTwiceRemoveOnceYieldsEmpty(t *testing.T) {
	c := Add(Add(New(), widget), widget)

	c = Remove(c, widget.ID)

	assert.Empty(t, c.Items)
}

func TestRemoveMissingIsNoop(t *testing.T) {
	c := Add(New(), widget)

	c = Remove(c, "nope")

	assert.Equal(t, []Item{widget}, c.Items)
}

func TestEmptyIsIdempotent(t *testing.T) {
	c := Add(Add(New(), widget), gadget)

	once := Empty(c)
	twice := Empty(once)

	assert.Empty(t, once.Items)
	assert.Equal(t, once, twice)
}

func TestTotalCountsEachEntryOnce(t *testing.T) {
	c := New()
	c = Add(c, Item{ID: "a", Price: 10})
	c = Add(c, Item{ID: "b", Price: 5})
	c = Add(c, Item{ID: "c", Price: 5})

	assert.InDelta(t, 20, Total(c), 1e-9)
}

func TestTotalOfEmptyCartIsZero(t *testing.T) {
	assert.Zero(t, Total(New()))
}

func TestReducersDoNotMutateInput(t *testing.T) {
	orig := Add(Add(New(), widget), gadget)
	snapshot := append([]Item(nil), orig.Items...)

	_ = Add(orig, widget)
	_ = Remove(orig, "p1")
	_ = Empty(orig)

	assert.Equal(t, snapshot, orig.Items)
}

func TestActionSequence(t *testing.T) {
	// add p1, add p2, add p1, remove p2, empty, add p2
	c := New()
	c = Add(c, widget)
	c = Add(c, gadget)
	c = Add(c, widget)
	c = Remove(c, "p2")
	assert.Equal(t, []Item{widget, widget}, c.Items)

	c = Empty(c)
	c = Add(c, gadget)
	assert.Equal(t, []Item{gadget}, c.Items)
	assert.Equal(t, 1, Count(c))
}
