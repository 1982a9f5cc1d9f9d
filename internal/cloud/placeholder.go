package cloud

import (
	"context"
	"log"
	"sync"

	"github.com/droxer/TaskMind/internal/model"
)

// PlaceholderGateway stands in for the real cloud transport, which is
// not implemented yet. Initialization is lazy and gated: when the
// gateway is disabled it initializes trivially, and every push reports
// skipped so the store's sync status stays pending rather than lying
// about a sync that never happened.
type PlaceholderGateway struct {
	mu          sync.Mutex
	initialized bool
	enabled     bool
	logger      *log.Logger
}

func NewPlaceholderGateway(enabled bool, logger *log.Logger) *PlaceholderGateway {
	if logger == nil {
		logger = log.Default()
	}
	return &PlaceholderGateway{enabled: enabled, logger: logger}
}

func (g *PlaceholderGateway) initialize() {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.initialized {
		return
	}
	if g.enabled {
		// TODO: replace with real cloud transport initialization once a
		// backend exists.
		g.logger.Printf("[cloud] transport initialization placeholder called")
	}
	g.initialized = true
}

func (g *PlaceholderGateway) Push(ctx context.Context, _ model.SyncPayload) Result {
	g.initialize()
	if err := ctx.Err(); err != nil {
		return Error(err)
	}
	if !g.enabled {
		return Skipped("cloud sync disabled")
	}
	return Skipped("cloud transport pending implementation")
}

func (g *PlaceholderGateway) Pull(ctx context.Context) (RemoteSnapshot, bool, error) {
	g.initialize()
	if err := ctx.Err(); err != nil {
		return RemoteSnapshot{}, false, err
	}
	return RemoteSnapshot{}, false, nil
}
