package database

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"github.com/takwin-app/landing-api/pkg/config"
)

const schema = `
CREATE TABLE IF NOT EXISTS courses (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	title TEXT,
	slug TEXT UNIQUE,
	description TEXT,
	duration TEXT,
	price TEXT,
	image TEXT,
	active INTEGER DEFAULT 1
);

CREATE TABLE IF NOT EXISTS testimonials (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	author TEXT,
	content TEXT,
	active INTEGER DEFAULT 1
);

CREATE TABLE IF NOT EXISTS leads (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	name TEXT,
	phone TEXT,
	message TEXT,
	source TEXT,
	created_at DATETIME DEFAULT CURRENT_TIMESTAMP
);
`

// NewSQLite opens the embedded database file and applies the schema.
func NewSQLite(cfg config.DatabaseConfig) (*sqlx.DB, error) {
	db, err := sqlx.Open("sqlite", cfg.Path)
	if err != nil {
		return nil, err
	}

	if cfg.MaxOpenConns > 0 {
		db.SetMaxOpenConns(cfg.MaxOpenConns)
	}
	if cfg.MaxIdleConns > 0 {
		db.SetMaxIdleConns(cfg.MaxIdleConns)
	}

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, err
	}

	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("apply schema: %w", err)
	}

	return db, nil
}

// SeedCourses inserts the first-run sample course when the table is empty.
// The count and insert run in one transaction so a single process never
// seeds twice; concurrent cold starts against the same file may still race.
func SeedCourses(ctx context.Context, db *sqlx.DB) error {
	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin seed tx: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	var count int
	if err := tx.GetContext(ctx, &count, "SELECT COUNT(1) FROM courses"); err != nil {
		return fmt.Errorf("count courses: %w", err)
	}
	if count > 0 {
		return nil
	}

	_, err = tx.ExecContext(ctx,
		`INSERT INTO courses (title, slug, description, duration, price, image) VALUES (?, ?, ?, ?, ?, ?)`,
		"دورة تكوينية في الحاسوب (مبتدئ -> متوسط)",
		"it-basics",
		"تكوين تطبيقي شامل: أساسيات الحاسوب، أنظمة التشغيل، الأوفيس، وصيانة الأجهزة.",
		"6 أسابيع (مرن)",
		"تحقق عبر المنصة",
		"https://via.placeholder.com/800x450?text=Course+Image",
	)
	if err != nil {
		return fmt.Errorf("seed course: %w", err)
	}

	return tx.Commit()
}
