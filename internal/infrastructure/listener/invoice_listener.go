package listener

import (
	"context"
	"errors"
	"sync"

	"bitcoinswitch/internal/domain/entities"
	"bitcoinswitch/internal/infrastructure/logging"
	"bitcoinswitch/internal/infrastructure/metrics"
	"bitcoinswitch/internal/usecase"

	"golang.org/x/sync/singleflight"
)

var ErrListenerStopped = errors.New("invoice listener stopped")

// InvoiceListener queues payment confirmations and hands them to settlement.
//
// The queue is unbounded and read by a single goroutine. Each confirmation settles in
// its own goroutine; confirmations for the same attempt are collapsed while one is in flight.
type InvoiceListener struct {
	settle  usecase.ISettlementUseCase
	metrics *metrics.Metrics
	log     logging.Logger

	mu      sync.Mutex
	queue   []entities.PaymentConfirmation
	notify  chan struct{}
	stopped bool

	sf      singleflight.Group
	workers sync.WaitGroup
	cancel  context.CancelFunc
	done    chan struct{}
}

func NewInvoiceListener(settle usecase.ISettlementUseCase, m *metrics.Metrics, log logging.Logger) *InvoiceListener {
	if log == nil {
		log = logging.NewLogger()
	}
	return &InvoiceListener{
		settle:  settle,
		metrics: m,
		log:     log,
		notify:  make(chan struct{}, 1),
		done:    make(chan struct{}),
	}
}

// Enqueue adds a confirmation to the queue. It never blocks.
func (l *InvoiceListener) Enqueue(c entities.PaymentConfirmation) error {
	l.mu.Lock()
	if l.stopped {
		l.mu.Unlock()
		return ErrListenerStopped
	}
	l.queue = append(l.queue, c)
	depth := len(l.queue)
	l.mu.Unlock()

	l.setDepth(depth)
	select {
	case l.notify <- struct{}{}:
	default:
	}
	return nil
}

// Start launches the reader goroutine. Settlements run on a context detached from
// ctx so a shutdown does not abort a half-finished activation.
func (l *InvoiceListener) Start(ctx context.Context) {
	ctx, l.cancel = context.WithCancel(ctx)
	go l.run(ctx)
	l.log.Info("[listener] invoice listener started")
}

// Stop ends the reader and waits for in-flight settlements. Queued confirmations that
// were not picked up yet are logged and discarded.
func (l *InvoiceListener) Stop() {
	l.mu.Lock()
	if l.stopped {
		l.mu.Unlock()
		return
	}
	l.stopped = true
	l.mu.Unlock()

	if l.cancel != nil {
		l.cancel()
		<-l.done
	}
	l.workers.Wait()

	l.mu.Lock()
	left := len(l.queue)
	l.queue = nil
	l.mu.Unlock()
	l.setDepth(0)
	if left > 0 {
		l.log.WithField("discarded", left).Warn("[listener] stopped with queued confirmations")
	}
	l.log.Info("[listener] invoice listener stopped")
}

func (l *InvoiceListener) run(ctx context.Context) {
	defer close(l.done)
	for {
		c, ok := l.pop()
		if !ok {
			select {
			case <-ctx.Done():
				return
			case <-l.notify:
				continue
			}
		}
		if ctx.Err() != nil {
			l.requeueFront(c)
			return
		}

		l.workers.Add(1)
		go func(c entities.PaymentConfirmation) {
			defer l.workers.Done()
			l.process(context.WithoutCancel(ctx), c)
		}(c)
	}
}

func (l *InvoiceListener) process(ctx context.Context, c entities.PaymentConfirmation) {
	// later duplicates arriving while this one runs share its outcome
	_, _, _ = l.sf.Do(c.CorrelationID, func() (interface{}, error) {
		res, err := l.settle.OnPaymentConfirmed(ctx, c)
		l.record(res, err)
		if err != nil && !isDropped(err) {
			l.log.WithFields(logging.Fields{"attempt_id": c.CorrelationID, "state": res.State}).
				WithError(err).Warn("[listener] settlement did not complete")
		}
		return nil, nil
	})
}

func (l *InvoiceListener) pop() (entities.PaymentConfirmation, bool) {
	l.mu.Lock()
	if len(l.queue) == 0 {
		l.mu.Unlock()
		return entities.PaymentConfirmation{}, false
	}
	c := l.queue[0]
	l.queue[0] = entities.PaymentConfirmation{}
	l.queue = l.queue[1:]
	depth := len(l.queue)
	l.mu.Unlock()

	l.setDepth(depth)
	return c, true
}

func (l *InvoiceListener) requeueFront(c entities.PaymentConfirmation) {
	l.mu.Lock()
	l.queue = append([]entities.PaymentConfirmation{c}, l.queue...)
	l.mu.Unlock()
}

// Len returns the number of queued confirmations.
func (l *InvoiceListener) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.queue)
}

func (l *InvoiceListener) setDepth(n int) {
	if l.metrics != nil {
		l.metrics.ConfirmationQueue.Set(float64(n))
	}
}

func (l *InvoiceListener) record(res usecase.SettlementResult, err error) {
	if l.metrics == nil {
		return
	}
	l.metrics.Settlements.WithLabelValues(settlementOutcome(res, err)).Inc()
	if res.State == usecase.SettlementDispatched {
		outcome := "delivered"
		if res.DispatchErr != nil {
			outcome = "failed"
		}
		l.metrics.Dispatches.WithLabelValues(outcome).Inc()
	}
}

func settlementOutcome(res usecase.SettlementResult, err error) string {
	switch {
	case err == nil:
		return "settled"
	case errors.Is(err, usecase.ErrAlreadyProcessed):
		return "duplicate"
	case errors.Is(err, usecase.ErrAttemptNotFound), errors.Is(err, usecase.ErrSwitchNotFound):
		return "dropped"
	case res.State == usecase.SettlementRejected:
		return "rejected"
	default:
		return "error"
	}
}

func isDropped(err error) bool {
	return errors.Is(err, usecase.ErrAlreadyProcessed) ||
		errors.Is(err, usecase.ErrAttemptNotFound) ||
		errors.Is(err, usecase.ErrSwitchNotFound)
}
