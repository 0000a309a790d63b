//    TechTrendAnalysis
//    Copyright: dayuruozhi333 2024-25
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package db

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"

	_ "modernc.org/sqlite"
)

// the author-resolution side tables live in a small sqlite file produced by
// the ingestion side; this reader is the only author-name path in the system

// AuthorRecord - one author as serialized in the tables' JSON column
type AuthorRecord struct {
	Name        string `json:"name"`
	Affiliation string `json:"affiliation"`
}

// AuthorTables - both side tables loaded into memory; the query layer joins
// document -> paper record -> main record, with a direct main-table match as
// the fallback when the link table is unavailable or empty
type AuthorTables struct {
	PaperLink     map[int]int            // article_id -> main record_id
	MainByRecord  map[int][]AuthorRecord // record_id -> authors
	MainByArticle map[int][]AuthorRecord // article_id -> authors (direct match)
}

func emptyAuthorTables() *AuthorTables {
	return &AuthorTables{
		PaperLink:     make(map[int]int),
		MainByRecord:  make(map[int][]AuthorRecord),
		MainByArticle: make(map[int][]AuthorRecord),
	}
}

// LoadAuthorTables - read both tables; a missing database file is not an
// error, merely an empty result (author queries then return nothing)
func LoadAuthorTables(path string) (*AuthorTables, error) {
	at := emptyAuthorTables()

	if _, err := os.Stat(path); err != nil {
		return at, nil
	}

	conn, err := sql.Open("sqlite", path)
	if err != nil {
		return at, fmt.Errorf("open papers db: %w", err)
	}
	defer conn.Close()

	if err := loadMainRecords(conn, at); err != nil {
		return at, err
	}
	// the link table is optional even when the db exists
	if err := loadPaperRecords(conn, at); err != nil {
		return at, err
	}
	return at, nil
}

func loadMainRecords(conn *sql.DB, at *AuthorTables) error {
	rows, err := conn.Query(`SELECT record_id, article_id, authors FROM main_records`)
	if err != nil {
		return fmt.Errorf("query main_records: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var recid, artid int
		var raw string
		if err := rows.Scan(&recid, &artid, &raw); err != nil {
			return fmt.Errorf("scan main_records: %w", err)
		}
		var authors []AuthorRecord
		if err := json.Unmarshal([]byte(raw), &authors); err != nil {
			// one bad row should not hide the rest of the table
			continue
		}
		at.MainByRecord[recid] = authors
		at.MainByArticle[artid] = authors
	}
	return rows.Err()
}

func loadPaperRecords(conn *sql.DB, at *AuthorTables) error {
	rows, err := conn.Query(`SELECT article_id, record_id FROM paper_records`)
	if err != nil {
		// table absent: the direct-match fallback covers it
		return nil
	}
	defer rows.Close()

	for rows.Next() {
		var artid, recid int
		if err := rows.Scan(&artid, &recid); err != nil {
			return fmt.Errorf("scan paper_records: %w", err)
		}
		at.PaperLink[artid] = recid
	}
	return rows.Err()
}

// Resolve - the author list for one document id, empty when nothing matches
func (at *AuthorTables) Resolve(articleID int) []AuthorRecord {
	if len(at.PaperLink) > 0 {
		if recid, ok := at.PaperLink[articleID]; ok {
			if authors, ok := at.MainByRecord[recid]; ok {
				return authors
			}
		}
	}
	return at.MainByArticle[articleID]
}
