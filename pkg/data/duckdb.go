package data

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/marcboeker/go-duckdb/v2"
)

const schema = `
CREATE TABLE IF NOT EXISTS authors (
	pos          INTEGER PRIMARY KEY,
	name         VARCHAR NOT NULL,
	image_url    VARCHAR NOT NULL,
	image_source VARCHAR NOT NULL
);
CREATE TABLE IF NOT EXISTS books (
	author_pos INTEGER NOT NULL,
	pos        INTEGER NOT NULL,
	title      VARCHAR NOT NULL,
	PRIMARY KEY (author_pos, pos)
);`

// InitDuckDB opens a DuckDB database and creates the quiz schema. An empty path
// opens a private in-memory database that disappears with the process.
func InitDuckDB(path string) (*sql.DB, error) {
	if path != "" {
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	db, err := sql.Open("duckdb", path)
	if err != nil {
		return nil, err
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create schema: %w", err)
	}

	return db, nil
}

// DuckDBStore keeps the dataset in DuckDB tables. Positions are assigned on
// insert, so reads come back in insertion order.
type DuckDBStore struct {
	db *sql.DB
}

func NewDuckDBStore(path string) (*DuckDBStore, error) {
	db, err := InitDuckDB(path)
	if err != nil {
		return nil, err
	}
	return &DuckDBStore{db: db}, nil
}

func (s *DuckDBStore) AddAuthor(author *Author) error {
	if author == nil {
		return fmt.Errorf("author cannot be nil")
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var pos int
	if err := tx.QueryRow(`SELECT COALESCE(MAX(pos) + 1, 0) FROM authors`).Scan(&pos); err != nil {
		return fmt.Errorf("failed to allocate author position: %w", err)
	}

	_, err = tx.Exec(
		`INSERT INTO authors (pos, name, image_url, image_source) VALUES (?, ?, ?, ?)`,
		pos, author.Name, author.ImageURL, author.ImageSource,
	)
	if err != nil {
		return fmt.Errorf("failed to insert author: %w", err)
	}

	for i, title := range author.Books {
		_, err := tx.Exec(`INSERT INTO books (author_pos, pos, title) VALUES (?, ?, ?)`, pos, i, title)
		if err != nil {
			return fmt.Errorf("failed to insert book %q: %w", title, err)
		}
	}

	return tx.Commit()
}

func (s *DuckDBStore) Authors() ([]*Author, error) {
	rows, err := s.db.Query(`
		SELECT a.pos, a.name, a.image_url, a.image_source, b.title
		FROM authors a
		LEFT JOIN books b ON b.author_pos = a.pos
		ORDER BY a.pos, b.pos`)
	if err != nil {
		return nil, fmt.Errorf("failed to query authors: %w", err)
	}
	defer rows.Close()

	var authors []*Author
	lastPos := -1
	for rows.Next() {
		var (
			pos   int
			a     Author
			title sql.NullString
		)
		if err := rows.Scan(&pos, &a.Name, &a.ImageURL, &a.ImageSource, &title); err != nil {
			return nil, fmt.Errorf("failed to scan author: %w", err)
		}

		if pos != lastPos {
			authors = append(authors, &a)
			lastPos = pos
		}
		if title.Valid {
			current := authors[len(authors)-1]
			current.Books = append(current.Books, title.String)
		}
	}

	return authors, rows.Err()
}

// Count returns the number of authors and book titles stored.
func (s *DuckDBStore) Count() (authors int, books int, err error) {
	err = s.db.QueryRow(`SELECT (SELECT COUNT(*) FROM authors), (SELECT COUNT(*) FROM books)`).Scan(&authors, &books)
	return authors, books, err
}

func (s *DuckDBStore) Close() error {
	return s.db.Close()
}
