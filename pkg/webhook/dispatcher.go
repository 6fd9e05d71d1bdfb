package webhook

import (
	"context"
	"log/slog"
	"sync"

	"github.com/google/uuid"
)

// dispatchOverflowError is recorded when the bounded queue is full and a
// delivery goes straight to the dead-letter table.
const dispatchOverflowError = "dispatch_overflow"

// Dispatcher fans events out to subscribed endpoints through a bounded
// queue of delivery jobs. Deliveries are persisted before they are queued,
// so a crash or an overflowing queue never loses the record.
type Dispatcher struct {
	store     Store
	deliverer *Deliverer
	notifier  Notifier
	logger    *slog.Logger

	queue   chan Job
	wg      sync.WaitGroup
	mu      sync.Mutex
	closed  bool
	workers int
}

// NewDispatcher creates a dispatcher with the given queue depth and worker
// count. A nil notifier falls back to logging.
func NewDispatcher(store Store, deliverer *Deliverer, notifier Notifier, queueSize, workers int) *Dispatcher {
	if queueSize <= 0 {
		queueSize = 256
	}
	if workers <= 0 {
		workers = 4
	}
	if notifier == nil {
		notifier = NewLogNotifier()
	}
	return &Dispatcher{
		store:     store,
		deliverer: deliverer,
		notifier:  notifier,
		logger:    slog.Default().With("component", "webhook"),
		queue:     make(chan Job, queueSize),
		workers:   workers,
	}
}

// Start launches the delivery workers and re-queues deliveries left pending
// by a previous process.
func (d *Dispatcher) Start(ctx context.Context) {
	for i := 0; i < d.workers; i++ {
		d.wg.Add(1)
		go d.worker(ctx)
	}
	d.resumePending(ctx)
}

func (d *Dispatcher) worker(ctx context.Context) {
	defer d.wg.Done()
	for job := range d.queue {
		if err := d.deliverer.Deliver(ctx, job); err != nil {
			d.logger.Debug("Delivery finished with error",
				"delivery_id", job.DeliveryID, "error", err)
		}
	}
}

// resumePending reloads deliveries that were queued or mid-retry when the
// process last stopped.
func (d *Dispatcher) resumePending(ctx context.Context) {
	pending, err := d.store.PendingDeliveries(ctx, cap(d.queue))
	if err != nil {
		d.logger.Error("Failed to resume pending deliveries", "error", err)
		return
	}
	resumed := 0
	for _, delivery := range pending {
		endpoint := delivery.Edges.Endpoint
		if endpoint == nil || !endpoint.Active {
			continue
		}
		job := Job{
			Endpoint:   endpoint,
			DeliveryID: delivery.ID,
			EventType:  delivery.EventType,
			Payload:    delivery.Payload,
			Attempt:    delivery.Attempts,
		}
		if !d.enqueue(ctx, job) {
			break
		}
		resumed++
	}
	if resumed > 0 {
		d.logger.Info("Resumed pending webhook deliveries", "count", resumed)
	}
}

// Emit creates and queues one delivery per active endpoint subscribed to
// eventType. Emit never fails the caller: store and queue trouble is
// handled inside.
func (d *Dispatcher) Emit(ctx context.Context, eventType, payload string) {
	endpoints, err := d.store.ListActiveForEvent(ctx, eventType)
	if err != nil {
		d.logger.Error("Failed to list endpoints for event",
			"event_type", eventType, "error", err)
		return
	}

	for _, endpoint := range endpoints {
		deliveryID := uuid.NewString()
		if _, err := d.store.CreateDelivery(ctx, endpoint.ID, deliveryID, eventType, payload); err != nil {
			d.logger.Error("Failed to persist delivery",
				"webhook_id", endpoint.ID, "event_type", eventType, "error", err)
			continue
		}
		d.enqueue(ctx, Job{
			Endpoint:   endpoint,
			DeliveryID: deliveryID,
			EventType:  eventType,
			Payload:    payload,
		})
	}
}

// enqueue offers the job to the bounded queue; overflow dead-letters the
// delivery immediately. Returns false when the dispatcher is closed or the
// queue is full.
func (d *Dispatcher) enqueue(ctx context.Context, job Job) bool {
	d.mu.Lock()
	if d.closed {
		d.mu.Unlock()
		return false
	}
	select {
	case d.queue <- job:
		d.mu.Unlock()
		return true
	default:
		d.mu.Unlock()
	}

	d.logger.Warn("Webhook queue full, dead-lettering delivery",
		"delivery_id", job.DeliveryID, "webhook_id", job.Endpoint.ID)
	if err := d.store.MarkDeliveryFailed(ctx, job.DeliveryID, 0, dispatchOverflowError); err != nil {
		d.logger.Warn("Failed to persist overflow failure",
			"delivery_id", job.DeliveryID, "error", err)
	}
	if err := d.store.RecordDeadLetter(ctx, job.Endpoint.ID, job.DeliveryID, job.Endpoint.URL, job.Payload, dispatchOverflowError); err != nil {
		d.logger.Error("Failed to record overflow dead letter",
			"delivery_id", job.DeliveryID, "error", err)
	}
	d.notifier.NotifyDeadLetter(ctx, job.Endpoint.ID, job.DeliveryID, dispatchOverflowError)
	return false
}

// QueueDepth reports the number of jobs waiting.
func (d *Dispatcher) QueueDepth() int {
	return len(d.queue)
}

// Close stops intake and waits for the workers to drain the queue. Jobs
// still retrying keep their state in the database and are resumed on the
// next start.
func (d *Dispatcher) Close() {
	d.mu.Lock()
	if d.closed {
		d.mu.Unlock()
		return
	}
	d.closed = true
	close(d.queue)
	d.mu.Unlock()
	d.wg.Wait()
}
