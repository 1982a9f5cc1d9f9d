package storage

import (
	"encoding/json"
	"log"
	"os"
	"path/filepath"
	"sync"

	"github.com/droxer/TaskMind/internal/model"
)

const snapshotFileName = "snapshot.json"

// FileGateway keeps the snapshot as a single JSON file under the data
// directory, written atomically via a temp file.
type FileGateway struct {
	mu     sync.Mutex
	path   string
	logger *log.Logger
}

func NewFileGateway(dataDir string, logger *log.Logger) (*FileGateway, error) {
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = log.Default()
	}
	return &FileGateway{
		path:   filepath.Join(dataDir, snapshotFileName),
		logger: logger,
	}, nil
}

func (g *FileGateway) Load() (model.Snapshot, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()

	b, err := os.ReadFile(g.path)
	if err != nil {
		if !os.IsNotExist(err) {
			g.logger.Printf("[storage] read snapshot: %v", err)
		}
		return model.Snapshot{}, false
	}

	var env envelope
	if err := json.Unmarshal(b, &env); err != nil {
		g.logger.Printf("[storage] parse snapshot: %v", err)
		return model.Snapshot{}, false
	}
	if env.Version > SchemaVersion {
		g.logger.Printf("[storage] snapshot version %d is newer than supported %d", env.Version, SchemaVersion)
		return model.Snapshot{}, false
	}

	snap := env.Snapshot
	snap.Normalize()
	return snap, true
}

func (g *FileGateway) Save(snap model.Snapshot) {
	g.mu.Lock()
	defer g.mu.Unlock()

	snap.Normalize()
	b, err := json.MarshalIndent(envelope{Version: SchemaVersion, Snapshot: snap}, "", "  ")
	if err != nil {
		g.logger.Printf("[storage] marshal snapshot: %v", err)
		return
	}

	tmp := g.path + ".tmp"
	if err := os.WriteFile(tmp, b, 0o644); err != nil {
		g.logger.Printf("[storage] write snapshot: %v", err)
		return
	}
	if err := os.Rename(tmp, g.path); err != nil {
		_ = os.Remove(tmp)
		g.logger.Printf("[storage] rename snapshot: %v", err)
	}
}

func (g *FileGateway) Clear() {
	g.mu.Lock()
	defer g.mu.Unlock()

	if err := os.Remove(g.path); err != nil && !os.IsNotExist(err) {
		g.logger.Printf("[storage] clear snapshot: %v", err)
	}
}
