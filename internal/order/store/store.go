package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/ricardomaia/credo/internal/order"
)

// Store persists orders in Postgres. Queries are built with squirrel using
// Postgres placeholders.
type Store struct {
	db *sql.DB
	sq squirrel.StatementBuilderType
}

func New(db *sql.DB) *Store {
	return &Store{
		db: db,
		sq: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// Save upserts the order head and replaces its items in one transaction, so
// a re-sync of a known id refreshes it instead of failing.
func (s *Store) Save(ctx context.Context, o *order.Order) error {
	if o == nil {
		return errors.New("cannot save nil order")
	}

	if o.ID == "" {
		return errors.New("order id is required")
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	query, args, err := s.sq.Insert("orders").
		Columns("id", "customer_id", "status", "total").
		Values(o.ID, o.CustomerID, o.Status, o.Total()).
		Suffix("ON CONFLICT (id) DO UPDATE SET customer_id = EXCLUDED.customer_id, status = EXCLUDED.status, total = EXCLUDED.total, updated_at = NOW()").
		ToSql()
	if err != nil {
		return fmt.Errorf("building order upsert: %w", err)
	}

	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("upserting order: %w", err)
	}

	query, args, err = s.sq.Delete("order_items").
		Where(squirrel.Eq{"order_id": o.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("building items delete: %w", err)
	}

	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("deleting items: %w", err)
	}

	// position preserves the stored item order for the validation scan.
	for i, item := range o.Items() {
		query, args, err = s.sq.Insert("order_items").
			Columns("order_id", "id", "name", "price", "quantity", "description", "position").
			Values(o.ID, item.ID, item.Name, item.Price, item.Quantity, item.Description, i).
			ToSql()
		if err != nil {
			return fmt.Errorf("building item insert: %w", err)
		}

		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("inserting item %s: %w", item.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing order: %w", err)
	}

	return nil
}

func (s *Store) GetByID(ctx context.Context, id string) (*order.Order, error) {
	query, args, err := s.sq.Select("id", "customer_id", "status").
		From("orders").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("building order select: %w", err)
	}

	var orderID, customerID, statusStr string

	err = s.db.QueryRowContext(ctx, query, args...).Scan(&orderID, &customerID, &statusStr)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, order.ErrNotFound
		}

		return nil, fmt.Errorf("getting order: %w", err)
	}

	o := order.New(orderID, customerID, order.Status(statusStr))

	items, err := s.loadItems(ctx, orderID)
	if err != nil {
		return nil, err
	}

	o.SetItems(items)

	return o, nil
}

func (s *Store) UpdateStatus(ctx context.Context, id string, status order.Status) error {
	query, args, err := s.sq.Update("orders").
		Set("status", status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("building status update: %w", err)
	}

	res, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("updating status: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("reading affected rows: %w", err)
	}

	if affected == 0 {
		return order.ErrNotFound
	}

	return nil
}

func (s *Store) Delete(ctx context.Context, id string) error {
	// order_items rows go with the order via ON DELETE CASCADE.
	query, args, err := s.sq.Delete("orders").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("building order delete: %w", err)
	}

	res, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("deleting order: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("reading affected rows: %w", err)
	}

	if affected == 0 {
		return order.ErrNotFound
	}

	return nil
}

func (s *Store) ListByStatus(ctx context.Context, status order.Status) ([]*order.Order, error) {
	query, args, err := s.sq.Select("id", "customer_id", "status").
		From("orders").
		Where(squirrel.Eq{"status": status}).
		OrderBy("created_at ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("building order list: %w", err)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing orders: %w", err)
	}
	defer rows.Close()

	orders := []*order.Order{}

	for rows.Next() {
		var orderID, customerID, statusStr string

		if err := rows.Scan(&orderID, &customerID, &statusStr); err != nil {
			return nil, fmt.Errorf("scanning order: %w", err)
		}

		orders = append(orders, order.New(orderID, customerID, order.Status(statusStr)))
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating orders: %w", err)
	}

	for _, o := range orders {
		items, err := s.loadItems(ctx, o.ID)
		if err != nil {
			return nil, err
		}

		o.SetItems(items)
	}

	return orders, nil
}

func (s *Store) loadItems(ctx context.Context, orderID string) ([]order.Item, error) {
	query, args, err := s.sq.Select("id", "name", "price", "quantity", "description").
		From("order_items").
		Where(squirrel.Eq{"order_id": orderID}).
		OrderBy("position ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("building items select: %w", err)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing items: %w", err)
	}
	defer rows.Close()

	items := []order.Item{}

	for rows.Next() {
		var item order.Item

		if err := rows.Scan(&item.ID, &item.Name, &item.Price, &item.Quantity, &item.Description); err != nil {
			return nil, fmt.Errorf("scanning item: %w", err)
		}

		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating items: %w", err)
	}

	return items, nil
}
