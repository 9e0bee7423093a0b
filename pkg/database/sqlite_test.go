package database

import (
	"context"
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/takwin-app/landing-api/pkg/config"
)

func newTestDB(t *testing.T) *sqlx.DB {
	t.Helper()
	db, err := NewSQLite(config.DatabaseConfig{Path: ":memory:", MaxOpenConns: 1, MaxIdleConns: 1})
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestSchemaCreatesTables(t *testing.T) {
	db := newTestDB(t)

	var names []string
	err := db.Select(&names, "SELECT name FROM sqlite_master WHERE type='table' AND name NOT LIKE 'sqlite_%' ORDER BY name")
	require.NoError(t, err)
	assert.Equal(t, []string{"courses", "leads", "testimonials"}, names)

	// Applying the schema again is a no-op.
	_, err = db.Exec(schema)
	require.NoError(t, err)
}

func TestSeedCoursesFirstRunOnly(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	require.NoError(t, SeedCourses(ctx, db))

	var count int
	require.NoError(t, db.Get(&count, "SELECT COUNT(1) FROM courses"))
	assert.Equal(t, 1, count)

	var slug string
	require.NoError(t, db.Get(&slug, "SELECT slug FROM courses"))
	assert.Equal(t, "it-basics", slug)

	var active bool
	require.NoError(t, db.Get(&active, "SELECT active FROM courses"))
	assert.True(t, active, "seed course defaults to visible")

	// Seeding again must not add a second row.
	require.NoError(t, SeedCourses(ctx, db))
	require.NoError(t, db.Get(&count, "SELECT COUNT(1) FROM courses"))
	assert.Equal(t, 1, count)
}

func TestSeedCoursesSkipsNonEmptyTable(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	_, err := db.Exec("INSERT INTO courses (title, slug) VALUES ('Existing', 'existing')")
	require.NoError(t, err)

	require.NoError(t, SeedCourses(ctx, db))

	var count int
	require.NoError(t, db.Get(&count, "SELECT COUNT(1) FROM courses"))
	assert.Equal(t, 1, count)
}

func TestSlugUniqueConstraint(t *testing.T) {
	db := newTestDB(t)

	_, err := db.Exec("INSERT INTO courses (title, slug) VALUES ('A', 'dup')")
	require.NoError(t, err)

	_, err = db.Exec("INSERT INTO courses (title, slug) VALUES ('B', 'dup')")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "UNIQUE constraint")

	var count int
	require.NoError(t, db.Get(&count, "SELECT COUNT(1) FROM courses WHERE slug = 'dup'"))
	assert.Equal(t, 1, count, "exactly one row with the slug survives")
}
