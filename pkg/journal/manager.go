package journal

import (
	"database/sql"
	"log"
	"sync"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

const DbName = "./champstandings-bot.db"

// Run is one journal row: what a report run consumed and produced.
type Run struct {
	Timestamp time.Time
	Fragments int
	Classes   int
	Drivers   int
	Output    string
}

type Manager struct {
	db *sql.DB
	mu sync.Mutex
}

func NewManager(dbName string) (*Manager, error) {
	db, err := sql.Open("sqlite3", dbName)
	if err != nil {
		log.Printf("error opening database: %s\n", err)
		return nil, err
	}

	initTableStmt := buildCreateRunsTable()

	_, err = db.Exec(initTableStmt)
	if err != nil {
		log.Printf("error init database: %s\n", err)
		return nil, err
	}

	return &Manager{
		db: db,
		mu: sync.Mutex{},
	}, nil
}

func (m *Manager) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.db.Close()
}

func (m *Manager) RecordRun(r Run) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	_, err := m.db.Exec(buildInsertRunCommand(r))
	if err != nil {
		log.Printf("error updating database: %s\n", err)
		return err
	}
	return nil
}

func (m *Manager) ListRecentRuns(limit int) ([]Run, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	runs := []Run{}
	sql, read := buildSelectRecentRunsCommand(limit)
	rows, err := m.db.Query(sql)
	if err != nil {
		return runs, err
	}
	return read(rows)
}
