package grammar

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"

	"github.com/dhamidi/treebank/ptb"
)

// Store persists rule counts in a SQLite database, so grammars can be
// accumulated over many corpus files across runs.
type Store struct {
	db *sql.DB
}

// OpenStore opens (creating if necessary) the database at path.
func OpenStore(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return store, nil
}

func (s *Store) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS rules (
		lhs   TEXT NOT NULL,
		rhs   TEXT NOT NULL,
		count INTEGER NOT NULL DEFAULT 0,
		PRIMARY KEY (lhs, rhs)
	);

	CREATE INDEX IF NOT EXISTS idx_rules_lhs ON rules(lhs);
	`
	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Save merges the table's counts into the database.
func (s *Store) Save(t *Table) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(
		`INSERT INTO rules (lhs, rhs, count) VALUES (?, ?, ?)
		 ON CONFLICT(lhs, rhs) DO UPDATE SET count = count + excluded.count`,
	)
	if err != nil {
		return fmt.Errorf("prepare: %w", err)
	}
	defer stmt.Close()

	for r, c := range t.counts {
		if _, err := stmt.Exec(r.LHS, r.RHS, c); err != nil {
			return fmt.Errorf("upsert rule %q -> %q: %w", r.LHS, r.RHS, err)
		}
	}
	return tx.Commit()
}

// Load reads every stored rule count back into a table.
func (s *Store) Load() (*Table, error) {
	rows, err := s.db.Query(`SELECT lhs, rhs, count FROM rules`)
	if err != nil {
		return nil, fmt.Errorf("query rules: %w", err)
	}
	defer rows.Close()

	t := NewTable()
	for rows.Next() {
		var lhs, rhs string
		var count int
		if err := rows.Scan(&lhs, &rhs, &count); err != nil {
			return nil, fmt.Errorf("scan rule: %w", err)
		}
		t.addRuleCount(ptb.Rule{LHS: lhs, RHS: rhs}, count)
	}
	return t, rows.Err()
}

// Count returns the stored count for one rule, zero if absent.
func (s *Store) Count(lhs, rhs string) (int, error) {
	var count int
	err := s.db.QueryRow(
		`SELECT count FROM rules WHERE lhs = ? AND rhs = ?`, lhs, rhs,
	).Scan(&count)
	if err == sql.ErrNoRows {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return count, nil
}
