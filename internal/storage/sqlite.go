package storage

import (
	"database/sql"
	"encoding/json"
	"log"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/droxer/TaskMind/internal/model"
)

// snapshotKey matches the single storage key the app has always used.
const snapshotKey = "taskmind_state_v1"

// SQLiteGateway keeps the snapshot in a one-row key-value table.
type SQLiteGateway struct {
	db     *sql.DB
	logger *log.Logger
}

func NewSQLiteGateway(dbPath string, logger *log.Logger) (*SQLiteGateway, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = log.Default()
	}

	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, err
	}

	g := &SQLiteGateway{db: db, logger: logger}
	if err := g.migrate(); err != nil {
		db.Close()
		return nil, err
	}
	return g, nil
}

func (g *SQLiteGateway) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS snapshots (
			key TEXT PRIMARY KEY,
			version INTEGER NOT NULL,
			body TEXT NOT NULL,
			updated_at DATETIME NOT NULL
		);
	`
	_, err := g.db.Exec(schema)
	return err
}

func (g *SQLiteGateway) Close() error {
	return g.db.Close()
}

func (g *SQLiteGateway) Load() (model.Snapshot, bool) {
	var version int
	var body string
	err := g.db.QueryRow(
		`SELECT version, body FROM snapshots WHERE key = ?`, snapshotKey,
	).Scan(&version, &body)
	if err != nil {
		if err != sql.ErrNoRows {
			g.logger.Printf("[storage] read snapshot row: %v", err)
		}
		return model.Snapshot{}, false
	}
	if version > SchemaVersion {
		g.logger.Printf("[storage] snapshot version %d is newer than supported %d", version, SchemaVersion)
		return model.Snapshot{}, false
	}

	var snap model.Snapshot
	if err := json.Unmarshal([]byte(body), &snap); err != nil {
		g.logger.Printf("[storage] parse snapshot row: %v", err)
		return model.Snapshot{}, false
	}
	snap.Normalize()
	return snap, true
}

func (g *SQLiteGateway) Save(snap model.Snapshot) {
	snap.Normalize()
	body, err := json.Marshal(snap)
	if err != nil {
		g.logger.Printf("[storage] marshal snapshot: %v", err)
		return
	}

	_, err = g.db.Exec(`
		INSERT INTO snapshots (key, version, body, updated_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET
			version = excluded.version,
			body = excluded.body,
			updated_at = excluded.updated_at
	`, snapshotKey, SchemaVersion, string(body), time.Now().UTC())
	if err != nil {
		g.logger.Printf("[storage] write snapshot row: %v", err)
	}
}

func (g *SQLiteGateway) Clear() {
	if _, err := g.db.Exec(`DELETE FROM snapshots WHERE key = ?`, snapshotKey); err != nil {
		g.logger.Printf("[storage] clear snapshot row: %v", err)
	}
}
