package sales

import (
	"context"
	"errors"
	"os"
	"sync"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"

	"github.com/andino-pos/andino-pos/internal/platform/db"
)

// These tests need a real server: the identifier-allocation and annulment
// races live in PostgreSQL's locking and snapshot behavior, which no
// in-memory double reproduces. Set PG_DSN to run them.

func newPGPool(t *testing.T) *pgxpool.Pool {
	t.Helper()
	dsn := os.Getenv("PG_DSN")
	if dsn == "" {
		t.Skip("PG_DSN not set")
	}
	ctx := context.Background()

	pool, err := pgxpool.New(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	require.NoError(t, db.Migrate(ctx, pool))
	_, err = pool.Exec(ctx, `TRUNCATE sales, products RESTART IDENTITY`)
	require.NoError(t, err)
	return pool
}

func seedProduct(t *testing.T, pool *pgxpool.Pool, sku string, quantity int) {
	t.Helper()
	_, err := pool.Exec(context.Background(), `
		INSERT INTO products (nombre, sku, "precioVenta", cantidad)
		VALUES ($1, $2, 10, $3)`, "Producto "+sku, sku, quantity)
	require.NoError(t, err)
}

func productQuantity(t *testing.T, pool *pgxpool.Pool, sku string) int {
	t.Helper()
	var qty int
	require.NoError(t, pool.QueryRow(context.Background(), `SELECT cantidad FROM products WHERE sku = $1`, sku).Scan(&qty))
	return qty
}

func TestConcurrentCreatesAllocateDistinctIDs(t *testing.T) {
	pool := newPGPool(t)
	seedProduct(t, pool, "COCA-2L", 100)

	svc := NewService(NewRepository(pool), nil, nil, nil, nil)

	const workers = 8
	ids := make(chan string, workers)
	errs := make(chan error, workers)

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			saleID, err := svc.Create(context.Background(), CreateSaleInput{
				Items: []Item{{SKU: "COCA-2L", Quantity: 1}},
				Total: 10,
			})
			if err != nil {
				errs <- err
				return
			}
			ids <- saleID
		}()
	}
	wg.Wait()
	close(ids)
	close(errs)

	// Every creation must succeed with its own id: the sequence lock plus
	// per-statement snapshots guarantee each allocator sees the id the
	// previous one committed.
	for err := range errs {
		require.NoError(t, err)
	}
	seen := make(map[string]bool, workers)
	for id := range ids {
		require.False(t, seen[id], "saleId %s issued twice", id)
		seen[id] = true
	}
	require.Len(t, seen, workers)
	require.Equal(t, 100-workers, productQuantity(t, pool, "COCA-2L"))
}

func TestConcurrentAnnulmentsRestoreOnce(t *testing.T) {
	pool := newPGPool(t)
	seedProduct(t, pool, "VITAL-2L", 50)

	svc := NewService(NewRepository(pool), nil, nil, nil, nil)

	saleID, err := svc.Create(context.Background(), CreateSaleInput{
		Items: []Item{{SKU: "VITAL-2L", Quantity: 5}},
		Total: 50,
	})
	require.NoError(t, err)
	require.Equal(t, 45, productQuantity(t, pool, "VITAL-2L"))

	const racers = 4
	results := make(chan error, racers)
	var wg sync.WaitGroup
	for i := 0; i < racers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results <- svc.Annul(context.Background(), saleID)
		}()
	}
	wg.Wait()
	close(results)

	succeeded := 0
	for err := range results {
		if err == nil {
			succeeded++
			continue
		}
		require.True(t, errors.Is(err, ErrNotFoundOrAnnulled), "unexpected annul error: %v", err)
	}
	require.Equal(t, 1, succeeded, "exactly one annulment may apply the credit")
	require.Equal(t, 50, productQuantity(t, pool, "VITAL-2L"))
}
