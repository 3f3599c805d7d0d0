package journal

import (
	"database/sql"
	"fmt"
	"time"
)

func buildCreateRunsTable() string {
	return `CREATE TABLE IF NOT EXISTS runs (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		ts TEXT NOT NULL,
		fragments INTEGER NOT NULL,
		classes INTEGER NOT NULL,
		drivers INTEGER NOT NULL,
		output TEXT NOT NULL);`
}

func buildInsertRunCommand(r Run) string {
	fields := "ts, fragments, classes, drivers, output"
	values := fmt.Sprintf(`'%s', %d, %d, %d, '%s'`,
		r.Timestamp.UTC().Format(time.RFC3339), r.Fragments, r.Classes, r.Drivers, r.Output)
	return fmt.Sprintf(`INSERT INTO runs (%s) VALUES (%s)`, fields, values)
}

func buildSelectRecentRunsCommand(limit int) (string, func(*sql.Rows) ([]Run, error)) {
	fields := "ts, fragments, classes, drivers, output"
	return fmt.Sprintf(`SELECT %s FROM runs ORDER BY id DESC LIMIT %d`, fields, limit), processSelectRunsRows
}

func processSelectRunsRows(rows *sql.Rows) ([]Run, error) {
	defer rows.Close()

	runs := make([]Run, 0)
	for rows.Next() {
		var ts string
		var r Run
		err := rows.Scan(&ts, &r.Fragments, &r.Classes, &r.Drivers, &r.Output)
		if err != nil {
			return runs, err
		}
		r.Timestamp, err = time.Parse(time.RFC3339, ts)
		if err != nil {
			return runs, err
		}
		runs = append(runs, r)
	}
	err := rows.Err()
	if err != nil {
		return runs, err
	}
	return runs, err
}
