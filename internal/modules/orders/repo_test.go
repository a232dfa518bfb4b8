package orders

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestRepo(t *testing.T) *Repo {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&Order{}, &OrderItem{}))
	return NewRepo(db)
}

func TestCreateAndGetWithItems(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	created, err := repo.Create(ctx, CreateInput{
		Lines: []Line{{ProductID: "p1", Quantity: 2}},
		Total: 19.98,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)

	o, items, err := repo.GetWithItems(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, o.ID)
	assert.InDelta(t, 19.98, o.Total, 1e-9)
	require.Len(t, items, 1)
	assert.Equal(t, "p1", items[0].ProductID)
	assert.Equal(t, 2, items[0].Quantity)
}

func TestCreateStoresTotalAsGiven(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	// Total is never verified against the lines.
	o, err := repo.Create(ctx, CreateInput{
		Lines: []Line{{ProductID: "p1", Quantity: 1}},
		Total: 12345.67,
	})
	require.NoError(t, err)
	assert.InDelta(t, 12345.67, o.Total, 1e-9)
}

func TestCreateKeepsDuplicateLinesSeparate(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	o, err := repo.Create(ctx, CreateInput{
		Lines: []Line{
			{ProductID: "p1", Quantity: 1},
			{ProductID: "p1", Quantity: 1},
		},
		Total: 20,
	})
	require.NoError(t, err)

	_, items, err := repo.GetWithItems(ctx, o.ID)
	require.NoError(t, err)
	assert.Len(t, items, 2)
}

func TestCreateIdempotencyKeyReusesOrder(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	key := "idem-abc"
	first, err := repo.Create(ctx, CreateInput{
		Lines:          []Line{{ProductID: "p1", Quantity: 1}},
		Total:          10,
		IdempotencyKey: &key,
	})
	require.NoError(t, err)

	second, err := repo.Create(ctx, CreateInput{
		Lines:          []Line{{ProductID: "p1", Quantity: 1}},
		Total:          10,
		IdempotencyKey: &key,
	})
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)

	all, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestGetWithItemsMissing(t *testing.T) {
	repo := newTestRepo(t)

	_, _, err := repo.GetWithItems(context.Background(), "missing")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestListNewestFirst(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	a, err := repo.Create(ctx, CreateInput{Lines: []Line{{ProductID: "p1", Quantity: 1}}, Total: 1})
	require.NoError(t, err)
	time.Sleep(2 * time.Millisecond)
	b, err := repo.Create(ctx, CreateInput{Lines: []Line{{ProductID: "p2", Quantity: 1}}, Total: 2})
	require.NoError(t, err)

	all, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, b.ID, all[0].ID)
	assert.Equal(t, a.ID, all[1].ID)
}
