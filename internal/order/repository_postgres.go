package order

import (
	"context"
	"encoding/json"

	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Save(ctx context.Context, sessionID string, o *Order) error {
	payload, err := json.Marshal(o)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO orders (id, session_id, payment_method, subtotal, discount, total, scheduled_at, payload)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	_, err = r.db.Exec(ctx, query,
		o.ID, sessionID, o.PaymentMethod, o.Subtotal, o.Discount, o.Total, o.ScheduledAt, payload,
	)
	return err
}
