package signals

import (
	"errors"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/lightningnetwork/lnd/queue"
	"go.uber.org/zap"

	"github.com/goodnatureofminers/blockinsight7000-consensus/internal/chain"
	"github.com/goodnatureofminers/blockinsight7000-consensus/internal/metrics"
	"github.com/goodnatureofminers/blockinsight7000-consensus/internal/model"
)

var (
	// ErrNotRunning is returned when work is queued on a dispatcher that is not started or already stopped.
	ErrNotRunning = errors.New("dispatcher not running")
	// ErrDuplicateSubscriber is returned when an id is registered twice.
	ErrDuplicateSubscriber = errors.New("subscriber already registered")
)

// queueBufferSize is the channel buffer of the background queue; items beyond it overflow into
// the queue's internal list, so producers never block on a slow consumer.
const queueBufferSize = 64

type subscriber struct {
	id       string
	handlers Handlers
	removed  atomic.Bool
}

// Dispatcher delivers validation events. Most channels run synchronously on the caller's goroutine in
// registration order. Chain state flushes and queued functions run one at a time on a single background
// worker in enqueue order.
type Dispatcher struct {
	started uint32 // To be used atomically.
	stopped uint32 // To be used atomically.

	// subscribers is replaced, never modified in place, so snapshots stay valid without the lock.
	mu          sync.RWMutex
	subscribers []*subscriber

	// enqueueMu is held shared while a callback is counted and queued, and exclusively while Stop
	// closes the dispatcher, so no count lands after Stop has zeroed it.
	enqueueMu sync.RWMutex
	queue     *queue.ConcurrentQueue
	pending   int64 // To be used atomically.

	logger  *zap.Logger
	metrics *metrics.Dispatcher

	quit chan struct{}
	wg   sync.WaitGroup
}

// NewDispatcher returns a stopped dispatcher. Call Start before queueing work.
func NewDispatcher(logger *zap.Logger) *Dispatcher {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Dispatcher{
		queue:   queue.NewConcurrentQueue(queueBufferSize),
		logger:  logger.With(zap.String("component", "signals")),
		metrics: metrics.NewDispatcher(),
		quit:    make(chan struct{}),
	}
}

// Start launches the background worker.
func (d *Dispatcher) Start() {
	if !atomic.CompareAndSwapUint32(&d.started, 0, 1) {
		return
	}

	d.queue.Start()
	d.wg.Add(1)
	go d.worker()
}

// Stop halts the background worker. Callbacks still queued are dropped.
func (d *Dispatcher) Stop() {
	d.enqueueMu.Lock()
	if !atomic.CompareAndSwapUint32(&d.stopped, 0, 1) {
		d.enqueueMu.Unlock()
		return
	}
	close(d.quit)
	d.enqueueMu.Unlock()

	d.wg.Wait()
	if atomic.LoadUint32(&d.started) == 1 {
		d.queue.Stop()
	}

	if dropped := atomic.SwapInt64(&d.pending, 0); dropped > 0 {
		d.logger.Warn("dropped queued callbacks on stop", zap.Int64("count", dropped))
	}
	d.metrics.SetPending(0)
}

// FlushQueue runs every queued callback and then stops the dispatcher.
func (d *Dispatcher) FlushQueue() {
	if err := d.SyncQueue(); err != nil && !errors.Is(err, ErrNotRunning) {
		d.logger.Warn("flush queue", zap.Error(err))
	}
	d.Stop()
}

func (d *Dispatcher) running() bool {
	return atomic.LoadUint32(&d.started) == 1 && atomic.LoadUint32(&d.stopped) == 0
}

func (d *Dispatcher) worker() {
	defer d.wg.Done()

	for {
		select {
		case <-d.quit:
			return
		default:
		}

		select {
		case item := <-d.queue.ChanOut():
			fn, ok := item.(func())
			if ok {
				fn()
			}
			d.metrics.SetPending(atomic.AddInt64(&d.pending, -1))

		case <-d.quit:
			return
		}
	}
}

// CallFunctionInQueue appends fn to the background queue. Functions run in the order they were queued.
func (d *Dispatcher) CallFunctionInQueue(fn func()) error {
	d.enqueueMu.RLock()
	defer d.enqueueMu.RUnlock()
	if !d.running() {
		return ErrNotRunning
	}

	// The queue keeps accepting until Stop, which cannot run while the read lock is held.
	d.metrics.SetPending(atomic.AddInt64(&d.pending, 1))
	d.queue.ChanIn() <- fn
	return nil
}

// SyncQueue blocks until every callback queued before the call has run. It must not be called from a
// queued callback or while holding a lock a queued callback needs.
func (d *Dispatcher) SyncQueue() error {
	done := make(chan struct{})
	if err := d.CallFunctionInQueue(func() { close(done) }); err != nil {
		return err
	}

	select {
	case <-done:
		return nil
	case <-d.quit:
		return ErrNotRunning
	}
}

// CallbacksPending returns the number of callbacks waiting on the background queue.
func (d *Dispatcher) CallbacksPending() int64 {
	return atomic.LoadInt64(&d.pending)
}

// Register adds a subscriber. Subscribers are notified in registration order.
func (d *Dispatcher) Register(id string, handlers Handlers) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	for _, s := range d.subscribers {
		if s.id == id {
			return fmt.Errorf("%s: %w", id, ErrDuplicateSubscriber)
		}
	}
	next := make([]*subscriber, len(d.subscribers), len(d.subscribers)+1)
	copy(next, d.subscribers)
	d.subscribers = append(next, &subscriber{id: id, handlers: handlers})
	return nil
}

// Unregister removes a subscriber. A notification already being delivered to it completes; queued
// notifications that have not started are not delivered to it. Safe to call from a callback.
func (d *Dispatcher) Unregister(id string) {
	d.mu.Lock()
	defer d.mu.Unlock()

	for i, s := range d.subscribers {
		if s.id == id {
			s.removed.Store(true)
			d.subscribers = append(d.subscribers[:i:i], d.subscribers[i+1:]...)
			return
		}
	}
}

// UnregisterAll removes every subscriber.
func (d *Dispatcher) UnregisterAll() {
	d.mu.Lock()
	defer d.mu.Unlock()

	for _, s := range d.subscribers {
		s.removed.Store(true)
	}
	d.subscribers = nil
}

func (d *Dispatcher) snapshot() []*subscriber {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.subscribers
}

// each calls deliver for every subscriber in registration order. Subscribers registered during the
// delivery are not called; subscribers unregistered during the delivery are skipped if not reached yet.
// deliver reports whether the subscriber had a handler for the channel.
func (d *Dispatcher) each(channel string, deliver func(h *Handlers) bool) {
	for _, s := range d.snapshot() {
		if s.removed.Load() {
			continue
		}
		if deliver(&s.handlers) {
			d.metrics.ObserveDelivered(channel)
		}
	}
}

// UpdatedBlockTip notifies subscribers of a new active tip.
func (d *Dispatcher) UpdatedBlockTip(tip, fork *chain.Node, initialDownload bool) {
	d.each(ChannelUpdatedBlockTip, func(h *Handlers) bool {
		if h.UpdatedBlockTip == nil {
			return false
		}
		h.UpdatedBlockTip(tip, fork, initialDownload)
		return true
	})
}

// TransactionAdded notifies subscribers of a transaction accepted to the pool.
func (d *Dispatcher) TransactionAdded(tx *model.Transaction) {
	d.each(ChannelTransactionAdded, func(h *Handlers) bool {
		if h.TransactionAdded == nil {
			return false
		}
		h.TransactionAdded(tx)
		return true
	})
}

// BlockConnected notifies subscribers of a block connected to the active chain.
func (d *Dispatcher) BlockConnected(block *model.Block, node *chain.Node) {
	d.each(ChannelBlockConnected, func(h *Handlers) bool {
		if h.BlockConnected == nil {
			return false
		}
		h.BlockConnected(block, node)
		return true
	})
}

// BlockDisconnected notifies subscribers of a block removed from the active chain.
func (d *Dispatcher) BlockDisconnected(block *model.Block, node *chain.Node) {
	d.each(ChannelBlockDisconnected, func(h *Handlers) bool {
		if h.BlockDisconnected == nil {
			return false
		}
		h.BlockDisconnected(block, node)
		return true
	})
}

// ChainStateFlushed queues a flush notification. Subscribers registered when the notification is
// delivered receive it.
func (d *Dispatcher) ChainStateFlushed(locator []chainhash.Hash) error {
	return d.CallFunctionInQueue(func() {
		d.each(ChannelChainStateFlushed, func(h *Handlers) bool {
			if h.ChainStateFlushed == nil {
				return false
			}
			h.ChainStateFlushed(locator)
			return true
		})
	})
}

// BlockChecked notifies subscribers of a full block check verdict.
func (d *Dispatcher) BlockChecked(block *model.Block, err error) {
	d.each(ChannelBlockChecked, func(h *Handlers) bool {
		if h.BlockChecked == nil {
			return false
		}
		h.BlockChecked(block, err)
		return true
	})
}

// NewPoWValidBlock notifies subscribers of a block whose header passed the work check.
func (d *Dispatcher) NewPoWValidBlock(node *chain.Node, block *model.Block) {
	d.each(ChannelNewPoWValidBlock, func(h *Handlers) bool {
		if h.NewPoWValidBlock == nil {
			return false
		}
		h.NewPoWValidBlock(node, block)
		return true
	})
}

// AcceptedBlockHeader notifies subscribers of a header added to the index.
func (d *Dispatcher) AcceptedBlockHeader(node *chain.Node) {
	d.each(ChannelAcceptedBlockHeader, func(h *Handlers) bool {
		if h.AcceptedBlockHeader == nil {
			return false
		}
		h.AcceptedBlockHeader(node)
		return true
	})
}

// NotifyHeaderTip notifies subscribers of a new best header.
func (d *Dispatcher) NotifyHeaderTip(node *chain.Node, initialDownload bool) {
	d.each(ChannelNotifyHeaderTip, func(h *Handlers) bool {
		if h.NotifyHeaderTip == nil {
			return false
		}
		h.NotifyHeaderTip(node, initialDownload)
		return true
	})
}

// TransactionLock notifies subscribers of a transaction lock.
func (d *Dispatcher) TransactionLock(tx *model.Transaction) {
	d.each(ChannelTransactionLock, func(h *Handlers) bool {
		if h.TransactionLock == nil {
			return false
		}
		h.TransactionLock(tx)
		return true
	})
}

// ChainLock notifies subscribers of a chain lock on node.
func (d *Dispatcher) ChainLock(node *chain.Node) {
	d.each(ChannelChainLock, func(h *Handlers) bool {
		if h.ChainLock == nil {
			return false
		}
		h.ChainLock(node)
		return true
	})
}

// GovernanceVote notifies subscribers of a governance vote.
func (d *Dispatcher) GovernanceVote(vote chainhash.Hash) {
	d.each(ChannelGovernanceVote, func(h *Handlers) bool {
		if h.GovernanceVote == nil {
			return false
		}
		h.GovernanceVote(vote)
		return true
	})
}

// GovernanceObject notifies subscribers of a governance object.
func (d *Dispatcher) GovernanceObject(object chainhash.Hash) {
	d.each(ChannelGovernanceObject, func(h *Handlers) bool {
		if h.GovernanceObject == nil {
			return false
		}
		h.GovernanceObject(object)
		return true
	})
}

// DoubleSpendAttempt notifies subscribers of two transactions spending the same output.
func (d *Dispatcher) DoubleSpendAttempt(current, conflicting *model.Transaction) {
	d.each(ChannelDoubleSpendAttempt, func(h *Handlers) bool {
		if h.DoubleSpendAttempt == nil {
			return false
		}
		h.DoubleSpendAttempt(current, conflicting)
		return true
	})
}

// MasternodeListChanged notifies subscribers of a masternode list update.
func (d *Dispatcher) MasternodeListChanged(undo bool) {
	d.each(ChannelMasternodeListChanged, func(h *Handlers) bool {
		if h.MasternodeListChanged == nil {
			return false
		}
		h.MasternodeListChanged(undo)
		return true
	})
}
