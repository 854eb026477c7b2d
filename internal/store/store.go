// Package store exports built reference data into a single SQLite
// database for downstream consumers that prefer SQL over JSON files.
package store

import (
	"database/sql"
	"encoding/json"
	"fmt"

	_ "modernc.org/sqlite"

	"github.com/gankles/bible-quizzes-christian-2025-sub005/core/geo"
	"github.com/gankles/bible-quizzes-christian-2025-sub005/core/names"
	"github.com/gankles/bible-quizzes-christian-2025-sub005/core/topics"
)

const driverName = "sqlite"

// Open opens (or creates) a SQLite database at path.
func Open(path string) (*sql.DB, error) {
	return sql.Open(driverName, path)
}

const schema = `
CREATE TABLE IF NOT EXISTS places (
	slug             TEXT PRIMARY KEY,
	name             TEXT NOT NULL,
	type             TEXT,
	lat              REAL,
	lon              REAL,
	confidence_score REAL,
	verse_count      INTEGER NOT NULL,
	data             TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS place_books (
	book_slug  TEXT NOT NULL,
	place_slug TEXT NOT NULL REFERENCES places(slug),
	PRIMARY KEY (book_slug, place_slug)
);
CREATE TABLE IF NOT EXISTS place_chapters (
	chapter_key TEXT NOT NULL,
	place_slug  TEXT NOT NULL REFERENCES places(slug),
	PRIMARY KEY (chapter_key, place_slug)
);
CREATE TABLE IF NOT EXISTS topics (
	slug         TEXT PRIMARY KEY,
	subject      TEXT NOT NULL,
	section      TEXT NOT NULL,
	total_verses INTEGER NOT NULL,
	data         TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS names (
	slug         TEXT PRIMARY KEY,
	name         TEXT NOT NULL,
	first_letter TEXT NOT NULL,
	name_prefix  TEXT NOT NULL,
	data         TEXT NOT NULL
);
`

// InitSchema creates all tables.
func InitSchema(db *sql.DB) error {
	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}
	return nil
}

// ExportPlaces writes places plus their book and chapter index rows in
// one transaction. Existing rows with the same slug are replaced.
func ExportPlaces(db *sql.DB, places []geo.Place, bookIndex, chapterIndex map[string][]string) error {
	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(`INSERT OR REPLACE INTO places
		(slug, name, type, lat, lon, confidence_score, verse_count, data)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, p := range places {
		data, err := json.Marshal(p)
		if err != nil {
			return fmt.Errorf("failed to marshal place %s: %w", p.Slug, err)
		}
		if _, err := stmt.Exec(p.Slug, p.Name, p.Type, p.Lat, p.Lon, p.ConfidenceScore, p.VerseCount, string(data)); err != nil {
			return fmt.Errorf("failed to insert place %s: %w", p.Slug, err)
		}
	}

	if err := exportLinks(tx, "place_books", "book_slug", bookIndex); err != nil {
		return err
	}
	if err := exportLinks(tx, "place_chapters", "chapter_key", chapterIndex); err != nil {
		return err
	}
	return tx.Commit()
}

func exportLinks(tx *sql.Tx, table, keyCol string, index map[string][]string) error {
	stmt, err := tx.Prepare(fmt.Sprintf(
		"INSERT OR REPLACE INTO %s (%s, place_slug) VALUES (?, ?)", table, keyCol))
	if err != nil {
		return fmt.Errorf("failed to prepare %s insert: %w", table, err)
	}
	defer stmt.Close()

	for key, slugs := range index {
		for _, slug := range slugs {
			if _, err := stmt.Exec(key, slug); err != nil {
				return fmt.Errorf("failed to insert %s row: %w", table, err)
			}
		}
	}
	return nil
}

// ExportTopics writes all topical entries in one transaction.
func ExportTopics(db *sql.DB, entries []topics.Topic) error {
	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(`INSERT OR REPLACE INTO topics
		(slug, subject, section, total_verses, data) VALUES (?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, t := range entries {
		data, err := json.Marshal(t)
		if err != nil {
			return fmt.Errorf("failed to marshal topic %s: %w", t.Slug, err)
		}
		if _, err := stmt.Exec(t.Slug, t.Subject, t.Section, t.TotalVerses, string(data)); err != nil {
			return fmt.Errorf("failed to insert topic %s: %w", t.Slug, err)
		}
	}
	return tx.Commit()
}

// ExportNames writes all name entries in one transaction.
func ExportNames(db *sql.DB, entries []names.Name) error {
	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(`INSERT OR REPLACE INTO names
		(slug, name, first_letter, name_prefix, data) VALUES (?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, n := range entries {
		data, err := json.Marshal(n)
		if err != nil {
			return fmt.Errorf("failed to marshal name %s: %w", n.Slug, err)
		}
		if _, err := stmt.Exec(n.Slug, n.Name, n.FirstLetter, n.NamePrefix, string(data)); err != nil {
			return fmt.Errorf("failed to insert name %s: %w", n.Slug, err)
		}
	}
	return tx.Commit()
}

// Counts reports row counts per table, for post-export verification.
func Counts(db *sql.DB) (map[string]int, error) {
	out := make(map[string]int)
	for _, table := range []string{"places", "place_books", "place_chapters", "topics", "names"} {
		var n int
		if err := db.QueryRow("SELECT COUNT(*) FROM " + table).Scan(&n); err != nil {
			return nil, fmt.Errorf("failed to count %s: %w", table, err)
		}
		out[table] = n
	}
	return out, nil
}
