package sales

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/andino-pos/andino-pos/internal/platform/db"
)

// saleSequenceLockID keys the advisory lock serializing saleId allocation.
// Shared by nothing else; taking it outside a transaction is a bug.
const saleSequenceLockID int64 = 730021

// Repository persists sales and applies their stock effects in PostgreSQL.
type Repository interface {
	// WithTx runs fn against a repository bound to a single transaction.
	// Everything a workflow does must go through that bound repository;
	// mixing transactional and pool statements breaks atomicity.
	WithTx(ctx context.Context, fn func(context.Context, Repository) error) error
	LockSaleSequence(ctx context.Context) error
	LastSaleID(ctx context.Context) (string, error)
	Insert(ctx context.Context, sale Sale) (int64, error)
	List(ctx context.Context) ([]Sale, error)
	GetOpenBySaleID(ctx context.Context, saleID string) (*Sale, error)
	MarkAnnulled(ctx context.Context, saleID string) error
	AdjustStock(ctx context.Context, sku string, delta int) error
}

type dbtx interface {
	Exec(context.Context, string, ...interface{}) (pgconn.CommandTag, error)
	Query(context.Context, string, ...interface{}) (pgx.Rows, error)
	QueryRow(context.Context, string, ...interface{}) pgx.Row
}

type repository struct {
	db   dbtx
	pool *pgxpool.Pool
}

// NewRepository constructs the PostgreSQL-backed sales repository.
func NewRepository(pool *pgxpool.Pool) Repository {
	return &repository{db: pool, pool: pool}
}

func (r *repository) WithTx(ctx context.Context, fn func(context.Context, Repository) error) error {
	return db.WithTx(ctx, r.pool, func(tx pgx.Tx) error {
		return fn(ctx, &repository{db: tx, pool: r.pool})
	})
}

// LockSaleSequence serializes saleId allocation across concurrent creations.
// The lock is transaction-scoped and released automatically on commit/rollback.
// The surrounding transaction must run at READ COMMITTED: the LastSaleID read
// that follows has to see the sale committed by the previous lock holder, and
// only statement-level snapshots are taken after the lock wait ends.
func (r *repository) LockSaleSequence(ctx context.Context) error {
	if _, err := r.db.Exec(ctx, `SELECT pg_advisory_xact_lock($1)`, saleSequenceLockID); err != nil {
		return fmt.Errorf("sales: lock sale sequence: %w", err)
	}
	return nil
}

// LastSaleID returns the identifier of the most recently inserted sale,
// ordered by insertion sequence rather than the textual identifier. Returns
// the empty string when no sale exists.
func (r *repository) LastSaleID(ctx context.Context) (string, error) {
	var saleID string
	err := r.db.QueryRow(ctx, `SELECT "saleId" FROM sales ORDER BY id DESC LIMIT 1`).Scan(&saleID)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("sales: last sale id: %w", err)
	}
	return saleID, nil
}

func (r *repository) Insert(ctx context.Context, sale Sale) (int64, error) {
	snapshot, err := encodeSnapshot(sale.Items)
	if err != nil {
		return 0, err
	}

	var id int64
	err = r.db.QueryRow(ctx, `
		INSERT INTO sales ("saleId", "nombreCliente", contacto, "nitCi", "totalVenta", "productosVendidos", estado)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`,
		sale.SaleID, sale.CustomerName, sale.CustomerContact, sale.CustomerTaxID,
		sale.Total, snapshot, string(sale.Status),
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("sales: insert sale: %w", err)
	}
	return id, nil
}

func (r *repository) List(ctx context.Context) ([]Sale, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, "saleId", "fechaVenta", "nombreCliente", contacto, "nitCi", "totalVenta", "productosVendidos", estado
		FROM sales
		ORDER BY "fechaVenta" DESC`)
	if err != nil {
		return nil, fmt.Errorf("sales: list: %w", err)
	}
	defer rows.Close()

	var sales []Sale
	for rows.Next() {
		sale, err := scanSale(rows)
		if err != nil {
			return nil, err
		}
		sales = append(sales, *sale)
	}
	return sales, rows.Err()
}

// GetOpenBySaleID loads a sale that has not been annulled yet, taking a row
// lock. Concurrent annulments of the same sale serialize on that lock; the
// loser re-evaluates the status filter against the committed row, finds no
// open sale, and the stock credit cannot be applied twice.
func (r *repository) GetOpenBySaleID(ctx context.Context, saleID string) (*Sale, error) {
	row := r.db.QueryRow(ctx, `
		SELECT id, "saleId", "fechaVenta", "nombreCliente", contacto, "nitCi", "totalVenta", "productosVendidos", estado
		FROM sales
		WHERE "saleId" = $1 AND estado <> $2
		FOR UPDATE`,
		saleID, string(StatusAnnulled))

	sale, err := scanSale(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFoundOrAnnulled
	}
	if err != nil {
		return nil, err
	}
	return sale, nil
}

func (r *repository) MarkAnnulled(ctx context.Context, saleID string) error {
	tag, err := r.db.Exec(ctx, `UPDATE sales SET estado = $1 WHERE "saleId" = $2`,
		string(StatusAnnulled), saleID)
	if err != nil {
		return fmt.Errorf("sales: mark annulled: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFoundOrAnnulled
	}
	return nil
}

// AdjustStock shifts a product's on-hand quantity by delta, matched by sku.
// Quantities carry no floor; a decrement may drive them negative. A zero-row
// match aborts the surrounding transaction instead of passing silently.
func (r *repository) AdjustStock(ctx context.Context, sku string, delta int) error {
	tag, err := r.db.Exec(ctx, `UPDATE products SET cantidad = cantidad + $1 WHERE sku = $2`, delta, sku)
	if err != nil {
		return fmt.Errorf("sales: adjust stock for %s: %w", sku, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: %s", ErrUnknownSKU, sku)
	}
	return nil
}

func scanSale(row pgx.Row) (*Sale, error) {
	var (
		sale     Sale
		soldAt   pgtype.Timestamptz
		name     pgtype.Text
		contact  pgtype.Text
		taxID    pgtype.Text
		total    pgtype.Numeric
		snapshot []byte
		status   pgtype.Text
	)
	err := row.Scan(&sale.ID, &sale.SaleID, &soldAt, &name, &contact, &taxID, &total, &snapshot, &status)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("sales: scan sale: %w", err)
	}

	if soldAt.Valid {
		sale.SoldAt = soldAt.Time
	}
	sale.CustomerName = name.String
	sale.CustomerContact = contact.String
	sale.CustomerTaxID = taxID.String
	if total.Valid {
		f, _ := total.Float64Value()
		sale.Total = f.Float64
	}
	sale.Status = Status(status.String)

	items, err := decodeSnapshot(snapshot)
	if err != nil {
		return nil, err
	}
	sale.Items = items
	return &sale, nil
}
