package orders

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/go-sql-driver/mysql"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Repo struct{ db *gorm.DB }

func NewRepo(db *gorm.DB) *Repo { return &Repo{db: db} }

// DB returns the underlying database connection for direct queries.
func (r *Repo) DB() *gorm.DB { return r.db }

type CreateInput struct {
	Lines []Line
	Total float64
	// IdempotencyKey deduplicates retried checkouts. Optional.
	IdempotencyKey *string
}

// Create persists the order header and its items in one transaction. A
// duplicate idempotency key returns the order created by the first attempt.
func (r *Repo) Create(ctx context.Context, in CreateInput) (Order, error) {
	o := Order{
		ID:             uuid.NewString(),
		Total:          in.Total,
		IdempotencyKey: in.IdempotencyKey,
		CreatedAt:      time.Now(),
	}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&o).Error; err != nil {
			return err
		}
		for _, ln := range in.Lines {
			item := OrderItem{
				ID:        uuid.NewString(),
				OrderID:   o.ID,
				ProductID: ln.ProductID,
				Quantity:  ln.Quantity,
				CreatedAt: time.Now(),
			}
			if err := tx.Create(&item).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		if isDuplicate(err) && in.IdempotencyKey != nil {
			log.Printf("Create: duplicate idempotency key %s, returning existing order", *in.IdempotencyKey)
			var existing Order
			if ferr := r.db.WithContext(ctx).
				First(&existing, "idempotency_key = ?", *in.IdempotencyKey).Error; ferr == nil {
				return existing, nil
			}
		}
		return Order{}, err
	}
	return o, nil
}

func (r *Repo) GetWithItems(ctx context.Context, id string) (Order, []OrderItem, error) {
	var o Order
	if err := r.db.WithContext(ctx).First(&o, "id = ?", id).Error; err != nil {
		return Order{}, nil, err
	}
	var items []OrderItem
	if err := r.db.WithContext(ctx).Order("created_at ASC").Find(&items, "order_id = ?", id).Error; err != nil {
		return Order{}, nil, err
	}
	return o, items, nil
}

func (r *Repo) List(ctx context.Context) ([]Order, error) {
	items := make([]Order, 0)
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&items).Error
	return items, err
}

func isDuplicate(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var me *mysql.MySQLError
	return errors.As(err, &me) && me.Number == 1062
}
