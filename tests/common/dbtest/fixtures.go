//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// CreateTestProduct inserts a catalog row directly, bypassing the API.
func CreateTestProduct(t *testing.T, pool *pgxpool.Pool, name string, priceCents int64, currency string, stock int32, isActive bool) uuid.UUID {
	t.Helper()

	productID := uuid.New()
	ctx := context.Background()

	_, err := pool.Exec(ctx,
		"INSERT INTO products (id, name, description, price_cents, currency, stock, is_active, created_at) VALUES ($1, $2, NULL, $3, $4, $5, $6, now())",
		productID, name, priceCents, currency, stock, isActive)
	require.NoError(t, err)

	return productID
}

// CreateTestProductAt pins created_at so listing order is deterministic.
func CreateTestProductAt(t *testing.T, pool *pgxpool.Pool, name string, priceCents int64, createdAt time.Time) uuid.UUID {
	t.Helper()

	productID := uuid.New()
	ctx := context.Background()

	_, err := pool.Exec(ctx,
		"INSERT INTO products (id, name, description, price_cents, currency, stock, is_active, created_at) VALUES ($1, $2, NULL, $3, 'MXN', 10, true, $4)",
		productID, name, priceCents, createdAt)
	require.NoError(t, err)

	return productID
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables so each subtest starts from a clean catalog
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('schema_migrations')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var tbl string
			if err := rows.Scan(&tbl); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, tbl)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	if _, err := pool.Exec(ctx, sqlAny.(string)); err != nil {
		return err
	}
	return nil
}
