package feed

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"github.com/plateful/takeaway/internal/domain/model"
)

// Snapshot is one full-board update pushed to every subscriber.
type Snapshot struct {
	Orders []model.OrderWithItems
}

// OrderSource supplies the current active order list.
type OrderSource interface {
	ActiveOrders(ctx context.Context) ([]model.OrderWithItems, error)
}

// ChangeListener blocks until the order table changed. The dispatcher
// never looks at what changed: every wakeup triggers a full re-fetch
// and a full replace downstream, so last-write-wins is fine.
type ChangeListener interface {
	Wait(ctx context.Context) error
}

// Dispatcher fans order-board snapshots out to staff view subscribers.
type Dispatcher struct {
	source   OrderSource
	listener ChangeListener
	logger   *slog.Logger

	mu     sync.Mutex
	subs   map[int64]chan Snapshot
	nextID int64
	wg     sync.WaitGroup
	cancel context.CancelFunc
}

// NewDispatcher constructs the feed dispatcher.
func NewDispatcher(source OrderSource, listener ChangeListener, logger *slog.Logger) *Dispatcher {
	return &Dispatcher{
		source:   source,
		listener: listener,
		logger:   logger,
		subs:     make(map[int64]chan Snapshot),
	}
}

// Start launches background dispatching.
func (d *Dispatcher) Start(ctx context.Context) {
	d.mu.Lock()
	defer d.mu.Unlock()

	runCtx, cancel := context.WithCancel(ctx)
	d.cancel = cancel

	d.wg.Add(1)
	go d.run(runCtx)
}

// Stop cancels the run loop and waits for it to finish.
func (d *Dispatcher) Stop() {
	d.mu.Lock()
	if d.cancel != nil {
		d.cancel()
		d.cancel = nil
	}
	d.mu.Unlock()

	d.wg.Wait()
}

// Subscribe registers a staff view. The returned channel receives the
// current snapshot immediately followed by one snapshot per change.
func (d *Dispatcher) Subscribe(ctx context.Context) (int64, <-chan Snapshot, error) {
	snap, err := d.fetch(ctx)
	if err != nil {
		return 0, nil, err
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	d.nextID++
	id := d.nextID
	ch := make(chan Snapshot, 1)
	ch <- snap
	d.subs[id] = ch
	return id, ch, nil
}

// Unsubscribe releases the subscription. The channel is closed exactly
// once; a second call with the same id is a no-op, so remount races on
// teardown cannot double-close.
func (d *Dispatcher) Unsubscribe(id int64) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if ch, ok := d.subs[id]; ok {
		delete(d.subs, id)
		close(ch)
	}
}

func (d *Dispatcher) run(ctx context.Context) {
	defer d.wg.Done()
	for {
		if err := d.listener.Wait(ctx); err != nil {
			if errors.Is(err, context.Canceled) || ctx.Err() != nil {
				return
			}
			d.logger.Error("change listener failed", slog.String("error", err.Error()))
			return
		}
		d.broadcast(ctx)
	}
}

func (d *Dispatcher) broadcast(ctx context.Context) {
	snap, err := d.fetch(ctx)
	if err != nil {
		d.logger.Error("re-fetch after change failed", slog.String("error", err.Error()))
		return
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	for _, ch := range d.subs {
		// Replace a pending snapshot instead of blocking: slow
		// consumers only ever see the latest board.
		select {
		case <-ch:
		default:
		}
		ch <- snap
	}
}

func (d *Dispatcher) fetch(ctx context.Context) (Snapshot, error) {
	orders, err := d.source.ActiveOrders(ctx)
	if err != nil {
		return Snapshot{}, err
	}
	return Snapshot{Orders: orders}, nil
}
