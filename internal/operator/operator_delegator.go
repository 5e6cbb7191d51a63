package operator

import (
	"context"
	"errors"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/mercerclayton/banking-system/internal/operator/actions"
	"github.com/mercerclayton/banking-system/internal/storage"
)

// ErrStopped is returned by Process after Stop has been called.
var ErrStopped = errors.New("operator: stopped")

// OperatorDelegator manages the queue, starts/stops Operators (workers), and enqueues items.
// With a single worker every write runs strictly one after another.
type OperatorDelegator struct {
	storage    *storage.Storage
	logger     *logrus.Logger
	queue      chan ActionItem
	numWorkers int
	wg         sync.WaitGroup
	startOnce  sync.Once
	stopOnce   sync.Once

	// mu guards stopped against Process racing with Stop closing the queue.
	mu      sync.RWMutex
	stopped bool
}

func NewOperatorDelegator(s *storage.Storage, logger *logrus.Logger, numWorkers, queueSize int) *OperatorDelegator {
	if numWorkers < 1 {
		numWorkers = 1
	}
	if queueSize < 1 {
		queueSize = 1
	}
	return &OperatorDelegator{
		storage:    s,
		logger:     logger,
		queue:      make(chan ActionItem, queueSize),
		numWorkers: numWorkers,
	}
}

func (d *OperatorDelegator) Start() {
	d.startOnce.Do(func() {
		for i := 0; i < d.numWorkers; i++ {
			d.wg.Add(1)
			op := NewOperator(d.storage, d.queue, d.logger)
			go func() {
				defer d.wg.Done()
				op.Run()
			}()
		}
		d.logger.WithField("workers", d.numWorkers).Debug("OperatorDelegator.Start")
	})
}

// Stop drains queued items and waits for the workers to exit.
func (d *OperatorDelegator) Stop() {
	d.stopOnce.Do(func() {
		d.mu.Lock()
		d.stopped = true
		close(d.queue)
		d.mu.Unlock()
		d.wg.Wait()
		d.logger.Debug("OperatorDelegator.Stop")
	})
}

// Process enqueues action and blocks until a worker has committed or rolled it back.
func (d *OperatorDelegator) Process(ctx context.Context, action actions.IAction) error {
	respCh := make(chan ActionItemResponse, 1)
	item := ActionItem{
		ctx:      ctx,
		action:   action,
		response: respCh,
	}

	d.mu.RLock()
	if d.stopped {
		d.mu.RUnlock()
		return ErrStopped
	}
	select {
	case d.queue <- item:
	case <-ctx.Done():
		d.mu.RUnlock()
		return ctx.Err()
	}
	d.mu.RUnlock()

	// Once queued the item always gets a response, so the caller learns whether it applied.
	resp := <-respCh
	return resp.err
}
