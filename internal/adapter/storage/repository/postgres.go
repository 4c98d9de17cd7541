package repository

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/MikeRez0/automarket/internal/adapter/storage"
	"github.com/MikeRez0/automarket/internal/core/domain"
	"github.com/MikeRez0/automarket/internal/core/port"
	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type Repository struct {
	db *storage.DB
}

func NewRepository(db *storage.DB) (*Repository, error) {
	return &Repository{db: db}, nil
}

// querier is satisfied by both the pool and an open transaction, so the
// same load helpers serve reads and the locked update path.
type querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

var orderColumns = []string{
	"id", "listing_id", "buyer_id", "seller_id", "showroom_id",
	"vehicle_make", "vehicle_model", "vehicle_year",
	"vehicle_price", "registration_fee", "dealer_fee", "tax",
	"shipping_cost", "total_price", "deposit_amount",
	"delivery_option", "ship_name", "ship_address", "ship_phone",
	"expected_delivery", "actual_delivery", "created_at",
}

func scanOrder(row pgx.Row) (*domain.Order, error) {
	order := domain.Order{}
	var shipName, shipAddress, shipPhone string

	err := row.Scan(
		&order.ID,
		&order.ListingID,
		&order.BuyerID,
		&order.SellerID,
		&order.ShowroomID,
		&order.VehicleMake,
		&order.VehicleModel,
		&order.VehicleYear,
		&order.VehiclePrice,
		&order.RegistrationFee,
		&order.DealerFee,
		&order.Tax,
		&order.ShippingCost,
		&order.TotalPrice,
		&order.DepositAmount,
		&order.DeliveryOption,
		&shipName,
		&shipAddress,
		&shipPhone,
		&order.ExpectedDeliveryDate,
		&order.ActualDeliveryDate,
		&order.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	if order.DeliveryOption == domain.DeliveryShipping {
		order.ShippingAddress = &domain.ShippingAddress{
			Name:    shipName,
			Address: shipAddress,
			Phone:   shipPhone,
		}
	}

	return &order, nil
}

func (r *Repository) CreateOrder(ctx context.Context, order *domain.Order) (*domain.Order, error) {
	err := pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		var shipName, shipAddress, shipPhone string
		if order.ShippingAddress != nil {
			shipName = order.ShippingAddress.Name
			shipAddress = order.ShippingAddress.Address
			shipPhone = order.ShippingAddress.Phone
		}

		statement := r.db.QueryBuilder.Insert("orders").
			Columns(orderColumns...).
			Values(order.ID, order.ListingID, order.BuyerID, order.SellerID, order.ShowroomID,
				order.VehicleMake, order.VehicleModel, order.VehicleYear,
				order.VehiclePrice, order.RegistrationFee, order.DealerFee, order.Tax,
				order.ShippingCost, order.TotalPrice, order.DepositAmount,
				order.DeliveryOption, shipName, shipAddress, shipPhone,
				order.ExpectedDeliveryDate, order.ActualDeliveryDate, order.CreatedAt)

		sql, args, err := statement.ToSql()
		if err != nil {
			return err
		}

		_, err = tx.Exec(ctx, sql, args...)
		if err != nil {
			return err
		}

		return r.insertHistory(ctx, tx, order.ID, order.StatusHistory)
	})
	if err != nil {
		if pgErr, ok := err.(*pgconn.PgError); ok && pgErr.Code == pgerrcode.UniqueViolation {
			return nil, domain.ErrConflictingData
		}
		return nil, err
	}

	return order, nil
}

func (r *Repository) insertHistory(ctx context.Context, tx pgx.Tx, orderID uuid.UUID, entries []domain.StatusEntry) error {
	for _, e := range entries {
		statement := r.db.QueryBuilder.Insert("order_status_history").
			Columns("order_id", "status", "created_at", "notes").
			Values(orderID, e.Status, e.Timestamp, e.Notes)

		sql, args, err := statement.ToSql()
		if err != nil {
			return err
		}
		if _, err := tx.Exec(ctx, sql, args...); err != nil {
			return err
		}
	}
	return nil
}

func (r *Repository) loadHistory(ctx context.Context, q querier, orderID uuid.UUID) ([]domain.StatusEntry, error) {
	statement := r.db.QueryBuilder.
		Select("status", "created_at", "notes").
		From("order_status_history").
		Where(sq.Eq{"order_id": orderID}).
		OrderBy("id")

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := make([]domain.StatusEntry, 0)
	for rows.Next() {
		e := domain.StatusEntry{}
		if err := rows.Scan(&e.Status, &e.Timestamp, &e.Notes); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}

	return entries, rows.Err()
}

func (r *Repository) loadPayments(ctx context.Context, q querier, order *domain.Order) error {
	statement := r.db.QueryBuilder.
		Select("purpose", "amount", "method", "transaction_id", "paid_at").
		From("order_payments").
		Where(sq.Eq{"order_id": order.ID})

	sql, args, err := statement.ToSql()
	if err != nil {
		return err
	}

	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var purpose domain.PaymentPurpose
		p := domain.Payment{}
		if err := rows.Scan(&purpose, &p.Amount, &p.Method, &p.TransactionID, &p.PaidAt); err != nil {
			return err
		}
		switch purpose {
		case domain.PurposeDeposit:
			order.DepositPayment = &p
		case domain.PurposeFullPayment:
			order.FullPayment = &p
		}
	}

	return rows.Err()
}

func (r *Repository) readOrder(ctx context.Context, q querier, orderID uuid.UUID, forUpdate bool) (*domain.Order, error) {
	statement := r.db.QueryBuilder.
		Select(orderColumns...).
		From("orders").
		Where(sq.Eq{"id": orderID})
	if forUpdate {
		statement = statement.Suffix("FOR UPDATE")
	}

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	order, err := scanOrder(q.QueryRow(ctx, sql, args...))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, domain.ErrDataNotFound
		}
		return nil, err
	}

	order.StatusHistory, err = r.loadHistory(ctx, q, orderID)
	if err != nil {
		return nil, err
	}
	if err := r.loadPayments(ctx, q, order); err != nil {
		return nil, err
	}

	return order, nil
}

func (r *Repository) ReadOrder(ctx context.Context, orderID uuid.UUID) (*domain.Order, error) {
	return r.readOrder(ctx, r.db, orderID, false)
}

// UpdateOrderTx serializes mutations per order: the row is locked for
// the whole transition, so a transition either fully commits or fully
// fails with the aggregate unchanged.
func (r *Repository) UpdateOrderTx(ctx context.Context, orderID uuid.UUID, fn port.UpdateOrderFn) (*domain.Order, error) {
	var order *domain.Order

	err := pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		var err error
		order, err = r.readOrder(ctx, tx, orderID, true)
		if err != nil {
			return err
		}

		historyLen := len(order.StatusHistory)
		hadDeposit := order.DepositPayment != nil
		hadFull := order.FullPayment != nil

		if err := fn(order); err != nil {
			return err
		}

		if err := r.insertHistory(ctx, tx, orderID, order.StatusHistory[historyLen:]); err != nil {
			return err
		}
		if !hadDeposit && order.DepositPayment != nil {
			if err := r.insertPayment(ctx, tx, orderID, domain.PurposeDeposit, order.DepositPayment); err != nil {
				return err
			}
		}
		if !hadFull && order.FullPayment != nil {
			if err := r.insertPayment(ctx, tx, orderID, domain.PurposeFullPayment, order.FullPayment); err != nil {
				return err
			}
		}

		statement := r.db.QueryBuilder.Update("orders").
			Set("expected_delivery", order.ExpectedDeliveryDate).
			Set("actual_delivery", order.ActualDeliveryDate).
			Where(sq.Eq{"id": orderID})

		sql, args, err := statement.ToSql()
		if err != nil {
			return err
		}
		_, err = tx.Exec(ctx, sql, args...)
		return err
	})
	if err != nil {
		if pgErr, ok := err.(*pgconn.PgError); ok && pgErr.Code == pgerrcode.UniqueViolation {
			// the same gateway transaction landed on the other channel first
			return nil, domain.ErrDuplicateConfirmation
		}
		return nil, err
	}

	return order, nil
}

func (r *Repository) insertPayment(ctx context.Context, tx pgx.Tx, orderID uuid.UUID,
	purpose domain.PaymentPurpose, p *domain.Payment) error {
	statement := r.db.QueryBuilder.Insert("order_payments").
		Columns("order_id", "purpose", "amount", "method", "transaction_id", "paid_at").
		Values(orderID, purpose, p.Amount, p.Method, p.TransactionID, p.PaidAt)

	sql, args, err := statement.ToSql()
	if err != nil {
		return err
	}
	_, err = tx.Exec(ctx, sql, args...)
	return err
}

func (r *Repository) ListOrdersByBuyer(ctx context.Context, buyerID uint64) ([]*domain.Order, error) {
	return r.listOrders(ctx, sq.Eq{"buyer_id": buyerID})
}

func (r *Repository) ListOrdersBySeller(ctx context.Context, sellerID uint64) ([]*domain.Order, error) {
	return r.listOrders(ctx, sq.Eq{"seller_id": sellerID})
}

func (r *Repository) listOrders(ctx context.Context, where sq.Eq) ([]*domain.Order, error) {
	statement := r.db.QueryBuilder.
		Select(orderColumns...).
		From("orders").
		Where(where).
		OrderBy("created_at")

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := make([]*domain.Order, 0)
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, order)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for _, order := range list {
		order.StatusHistory, err = r.loadHistory(ctx, r.db, order.ID)
		if err != nil {
			return nil, err
		}
		if err := r.loadPayments(ctx, r.db, order); err != nil {
			return nil, err
		}
	}

	return list, nil
}
