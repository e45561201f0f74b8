package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/ricardomaia/credo/internal/client"
)

var ErrNotFound = errors.New("client not found")

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

func (s *Store) GetClient(ctx context.Context, id string) (*client.Client, error) {
	query := `
		SELECT id, name, blocked, tier
		FROM clients
		WHERE id = $1
	`

	var c client.Client

	var tierStr string

	err := s.db.QueryRowContext(ctx, query, id).Scan(&c.ID, &c.Name, &c.Blocked, &tierStr)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}

		return nil, fmt.Errorf("getting client: %w", err)
	}

	c.Tier = client.Tier(tierStr)

	return &c, nil
}

// ListTransactions returns the client's bank history dated on or after since,
// oldest first. Callers apply their own window filtering on top.
func (s *Store) ListTransactions(ctx context.Context, clientID string, since time.Time) ([]client.Transaction, error) {
	query := `
		SELECT kind, amount, date
		FROM client_transactions
		WHERE client_id = $1 AND date >= $2
		ORDER BY date ASC
	`

	rows, err := s.db.QueryContext(ctx, query, clientID, since)
	if err != nil {
		return nil, fmt.Errorf("listing transactions: %w", err)
	}
	defer rows.Close()

	txs := []client.Transaction{}

	for rows.Next() {
		var tx client.Transaction

		var kindStr string

		if err := rows.Scan(&kindStr, &tx.Amount, &tx.Date); err != nil {
			return nil, fmt.Errorf("scanning transaction: %w", err)
		}

		tx.Kind = client.Kind(kindStr)
		txs = append(txs, tx)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating transactions: %w", err)
	}

	return txs, nil
}

// CreateTransactions inserts an imported batch of transactions for a client
// in a single database transaction.
func (s *Store) CreateTransactions(ctx context.Context, clientID string, txs []client.Transaction) error {
	if len(txs) == 0 {
		return nil
	}

	dbTx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer dbTx.Rollback()

	query := `
		INSERT INTO client_transactions (client_id, kind, amount, date, created_at)
		VALUES ($1, $2, $3, $4, NOW())
	`

	for _, tx := range txs {
		if _, err := dbTx.ExecContext(ctx, query, clientID, tx.Kind, tx.Amount, tx.Date); err != nil {
			return fmt.Errorf("inserting transaction: %w", err)
		}
	}

	if err := dbTx.Commit(); err != nil {
		return fmt.Errorf("committing transactions: %w", err)
	}

	return nil
}
