package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Column names are quoted camelCase because the tables predate this service
// and the stored JSON snapshots reference them.
var migrations = []string{
	`CREATE TABLE IF NOT EXISTS products (
		"id" SERIAL PRIMARY KEY,
		"nombre" VARCHAR(255) NOT NULL,
		"sku" VARCHAR(100) UNIQUE,
		"precioVenta" NUMERIC(10, 2) NOT NULL,
		"precioCompra" NUMERIC(10, 2),
		"precioMayoreo" NUMERIC(10, 2),
		"cantidad" INTEGER NOT NULL,
		"codigoBarras" VARCHAR(255) UNIQUE,
		"urlFoto1" TEXT
	)`,
	`CREATE TABLE IF NOT EXISTS sales (
		"id" SERIAL PRIMARY KEY,
		"saleId" VARCHAR(50) UNIQUE NOT NULL,
		"fechaVenta" TIMESTAMP WITH TIME ZONE DEFAULT CURRENT_TIMESTAMP,
		"nombreCliente" VARCHAR(255),
		"contacto" VARCHAR(100),
		"nitCi" VARCHAR(100),
		"totalVenta" NUMERIC(10, 2) NOT NULL,
		"productosVendidos" JSONB,
		"estado" VARCHAR(50) DEFAULT 'Completada'
	)`,
	`CREATE TABLE IF NOT EXISTS audit_logs (
		id UUID PRIMARY KEY,
		action VARCHAR(100) NOT NULL,
		entity VARCHAR(100) NOT NULL,
		entity_id VARCHAR(100) NOT NULL,
		meta JSONB,
		occurred_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT NOW()
	)`,
}

// Migrate creates the schema when missing. Safe to run on every startup.
func Migrate(ctx context.Context, pool *pgxpool.Pool) error {
	for _, stmt := range migrations {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("platform/db: migrate: %w", err)
		}
	}
	return nil
}
