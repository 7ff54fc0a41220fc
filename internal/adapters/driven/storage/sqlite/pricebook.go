package sqlite

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/smj9504/sketchplan/internal/adapters/driven/storage/sqlite/migrations"
	"github.com/smj9504/sketchplan/internal/core/domain"
	"github.com/smj9504/sketchplan/internal/core/ports/driven"
)

// Ensure PriceBook implements the interface.
var _ driven.PriceBook = (*PriceBook)(nil)

// PriceBook is a SQLite-backed implementation of driven.PriceBook.
// Only price overrides are stored; items without a row resolve to the
// built-in defaults.
type PriceBook struct {
	db   *sql.DB
	path string
}

// NewPriceBook opens (or creates) the price book database at the specified
// data directory. If dataDir is empty, defaults to ~/.sketchplan/data/pricebook.db.
func NewPriceBook(dataDir string) (*PriceBook, error) {
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		dataDir = filepath.Join(home, ".sketchplan", "data")
	}

	// Ensure directory exists
	if err := os.MkdirAll(dataDir, 0700); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	return OpenPriceBook(filepath.Join(dataDir, "pricebook.db"))
}

// OpenPriceBook opens (or creates) the price book database at the exact
// file path. The parent directory must already exist.
func OpenPriceBook(dbPath string) (*PriceBook, error) {
	// Open database with WAL mode for better concurrency
	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	b := &PriceBook{
		db:   db,
		path: dbPath,
	}

	// Run migrations
	if err := b.migrate(migrations.FS); err != nil {
		db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return b, nil
}

// Close closes the database connection.
func (b *PriceBook) Close() error {
	return b.db.Close()
}

// Path returns the database file path.
func (b *PriceBook) Path() string {
	return b.path
}

// Get retrieves the unit price for an item in dollars, falling back to the
// built-in default when no override is stored.
func (b *PriceBook) Get(ctx context.Context, item domain.PriceItem) (float64, error) {
	if !item.IsValid() {
		return 0, domain.ErrInvalidInput
	}

	var price float64
	row := b.db.QueryRowContext(ctx, "SELECT price FROM prices WHERE item = ?", item.String())
	if err := row.Scan(&price); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.DefaultPrices()[item], nil
		}
		return 0, fmt.Errorf("scanning price: %w", err)
	}
	return price, nil
}

// Set stores a unit price override.
func (b *PriceBook) Set(ctx context.Context, item domain.PriceItem, price float64) error {
	if !item.IsValid() || price < 0 {
		return domain.ErrInvalidInput
	}

	_, err := b.db.ExecContext(ctx, `
		INSERT INTO prices (item, price, updated_at)
		VALUES (?, ?, ?)
		ON CONFLICT(item) DO UPDATE SET
			price = excluded.price,
			updated_at = excluded.updated_at
	`, item.String(), price, time.Now().UTC())

	if err != nil {
		return fmt.Errorf("saving price: %w", err)
	}
	return nil
}

// All returns the effective price for every known item.
func (b *PriceBook) All(ctx context.Context) (map[domain.PriceItem]float64, error) {
	rows, err := b.db.QueryContext(ctx, "SELECT item, price FROM prices")
	if err != nil {
		return nil, fmt.Errorf("querying prices: %w", err)
	}
	defer rows.Close()

	prices := domain.DefaultPrices()
	for rows.Next() {
		var item string
		var price float64
		if err := rows.Scan(&item, &price); err != nil {
			return nil, fmt.Errorf("scanning price: %w", err)
		}
		// Rows left behind by older versions are ignored.
		if key := domain.PriceItem(item); key.IsValid() {
			prices[key] = price
		}
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating prices: %w", err)
	}

	return prices, nil
}

// migrate runs all pending migrations.
func (b *PriceBook) migrate(fsys embed.FS) error {
	// Ensure schema_migrations table exists
	_, err := b.db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version INTEGER PRIMARY KEY,
			applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return fmt.Errorf("creating schema_migrations table: %w", err)
	}

	// Get current version
	var currentVersion int
	row := b.db.QueryRow("SELECT COALESCE(MAX(version), 0) FROM schema_migrations")
	if err := row.Scan(&currentVersion); err != nil {
		return fmt.Errorf("getting current version: %w", err)
	}

	// Find all up migrations
	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return fmt.Errorf("reading migrations directory: %w", err)
	}

	// Sort and run migrations
	var upFiles []string
	for _, entry := range entries {
		name := entry.Name()
		if strings.HasSuffix(name, ".up.sql") {
			upFiles = append(upFiles, name)
		}
	}
	sort.Strings(upFiles)

	for _, name := range upFiles {
		// Extract version number (e.g., "001_initial.up.sql" -> 1)
		var version int
		if _, err := fmt.Sscanf(name, "%d_", &version); err != nil {
			continue // Skip files that don't match pattern
		}

		if version <= currentVersion {
			continue // Already applied
		}

		// Read and execute migration
		content, err := fs.ReadFile(fsys, name)
		if err != nil {
			return fmt.Errorf("reading migration %s: %w", name, err)
		}

		if _, err := b.db.Exec(string(content)); err != nil {
			return fmt.Errorf("executing migration %s: %w", name, err)
		}

		if _, err := b.db.Exec("INSERT INTO schema_migrations (version) VALUES (?)", version); err != nil {
			return fmt.Errorf("recording migration %s: %w", name, err)
		}
	}

	return nil
}
