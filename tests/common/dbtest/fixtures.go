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
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

// bcrypt hash of "password123"
const testPasswordHash = "$2a$12$uhAjVE9f92IGYv3E25pJNetg.27lVt0p7jmLWjqjmhOg92ldPS0A."

func CreateTestUser(t *testing.T, db DBLike, username, email, role string) uuid.UUID {
	t.Helper()

	userID := uuid.New()
	ctx := context.Background()

	tag, err := db.Exec(ctx, `
		INSERT INTO users (id, full_name, username, email, password_hash, role, is_active, activation_code)
		VALUES ($1, $2, $3, $4, $5, $6, true, $7)
		ON CONFLICT (email) DO NOTHING`,
		userID, "Test "+username, username, email, testPasswordHash, role, "used-"+userID.String())
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		_ = db.QueryRow(ctx, "SELECT id FROM users WHERE email = $1", email).Scan(&userID)
	}

	return userID
}

func CreateTestEvent(t *testing.T, db DBLike, createdBy uuid.UUID) uuid.UUID {
	t.Helper()

	ctx := context.Background()
	eventID := uuid.New()

	var categoryID uuid.UUID
	err := db.QueryRow(ctx, "SELECT id FROM categories WHERE name = 'General' LIMIT 1").Scan(&categoryID)
	require.NoError(t, err)

	now := time.Now()
	_, err = db.Exec(ctx, `
		INSERT INTO events (id, name, slug, description, banner, category_id, is_published, start_at, end_at, region, address, created_by)
		VALUES ($1, $2, $3, '', '', $4, true, $5, $6, 1, 'Test Venue', $7)`,
		eventID, "Test Event "+eventID.String()[:8], "test-event-"+eventID.String()[:8],
		categoryID, now.Add(24*time.Hour), now.Add(48*time.Hour), createdBy)
	require.NoError(t, err)

	return eventID
}

func CreateTestTicket(t *testing.T, db DBLike, eventID uuid.UUID, price decimal.Decimal, quantity int32) uuid.UUID {
	t.Helper()

	ctx := context.Background()
	ticketID := uuid.New()

	_, err := db.Exec(ctx, `
		INSERT INTO tickets (id, event_id, name, description, price, quantity)
		VALUES ($1, $2, 'Regular', '', $3, $4)`,
		ticketID, eventID, price.String(), quantity)
	require.NoError(t, err)

	return ticketID
}

// inserts basic reference data needed by tests
func SeedReferenceData(pool *pgxpool.Pool) error {
	ctx := context.Background()

	_, err := pool.Exec(ctx, `
		INSERT INTO categories (id, name, description, icon) VALUES
		    (gen_random_uuid(), 'General', 'Default category for tests', ''),
		    (gen_random_uuid(), 'Music', 'Concerts and festivals', '')
		ON CONFLICT (name) DO NOTHING;
	`)
	return err
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables and reseeds reference data
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('schema_migrations', 'atlas_schema_revisions')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
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

	return SeedReferenceData(pool)
}
