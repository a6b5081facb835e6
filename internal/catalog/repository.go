package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repository persists catalog rows in PostgreSQL.
type Repository interface {
	List(ctx context.Context) ([]Product, error)
	Create(ctx context.Context, product Product) error
	UpdateBySKU(ctx context.Context, originalSKU string, product Product) error
}

type repository struct {
	db *pgxpool.Pool
}

// NewRepository constructs the PostgreSQL-backed catalog repository.
func NewRepository(pool *pgxpool.Pool) Repository {
	return &repository{db: pool}
}

func (r *repository) List(ctx context.Context) ([]Product, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, nombre, sku, "precioVenta", "precioCompra", "precioMayoreo", cantidad, "codigoBarras", "urlFoto1"
		FROM products
		ORDER BY nombre ASC`)
	if err != nil {
		return nil, fmt.Errorf("catalog: list: %w", err)
	}
	defer rows.Close()

	var products []Product
	for rows.Next() {
		var (
			p                             Product
			sku, barcode, photo           pgtype.Text
			purchasePrice, wholesalePrice pgtype.Numeric
			salePrice                     pgtype.Numeric
		)
		err := rows.Scan(&p.ID, &p.Name, &sku, &salePrice, &purchasePrice, &wholesalePrice, &p.Quantity, &barcode, &photo)
		if err != nil {
			return nil, fmt.Errorf("catalog: scan product: %w", err)
		}
		p.SKU = sku.String
		p.Barcode = barcode.String
		p.PhotoURL = photo.String
		if salePrice.Valid {
			f, _ := salePrice.Float64Value()
			p.SalePrice = f.Float64
		}
		if purchasePrice.Valid {
			f, _ := purchasePrice.Float64Value()
			p.PurchasePrice = f.Float64
		}
		if wholesalePrice.Valid {
			f, _ := wholesalePrice.Float64Value()
			p.WholesalePrice = f.Float64
		}
		products = append(products, p)
	}
	return products, rows.Err()
}

func (r *repository) Create(ctx context.Context, p Product) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO products (nombre, sku, "precioVenta", "precioCompra", "precioMayoreo", cantidad, "codigoBarras", "urlFoto1")
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		p.Name, p.SKU, p.SalePrice, p.PurchasePrice, p.WholesalePrice, p.Quantity, p.Barcode, p.PhotoURL)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: %s", ErrDuplicate, p.SKU)
		}
		return fmt.Errorf("catalog: create: %w", err)
	}
	return nil
}

// UpdateBySKU rewrites a product addressed by the sku it had before the edit.
// A product stored without a sku is unaddressable here.
func (r *repository) UpdateBySKU(ctx context.Context, originalSKU string, p Product) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE products SET
			nombre = $1, sku = $2, "precioVenta" = $3, "precioCompra" = $4,
			"precioMayoreo" = $5, cantidad = $6, "codigoBarras" = $7, "urlFoto1" = $8
		WHERE sku = $9`,
		p.Name, p.SKU, p.SalePrice, p.PurchasePrice, p.WholesalePrice, p.Quantity, p.Barcode, p.PhotoURL,
		originalSKU)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: %s", ErrDuplicate, p.SKU)
		}
		return fmt.Errorf("catalog: update: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: %s", ErrNotFound, originalSKU)
	}
	return nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgerrUniqueViolation
}

const pgerrUniqueViolation = "23505"
