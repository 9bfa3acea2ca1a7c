package usecase

import (
	"context"
	"errors"
	"sort"
	"sync"
	"testing"
	"time"

	"bitcoinswitch/internal/domain/entities"
	"bitcoinswitch/internal/usecase/interfaces"
)

type memoryDevices struct {
	mu   sync.Mutex
	byID map[string]entities.Device
}

var _ interfaces.IDeviceRepository = (*memoryDevices)(nil)

func newMemoryDevices() *memoryDevices {
	return &memoryDevices{byID: map[string]entities.Device{}}
}

func (r *memoryDevices) Create(_ context.Context, d entities.Device) (entities.Device, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byID[d.ID]; ok {
		return entities.Device{}, errors.New("duplicate id")
	}
	r.byID[d.ID] = d
	return d, nil
}

func (r *memoryDevices) GetByID(_ context.Context, id string) (entities.Device, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.byID[id], nil
}

func (r *memoryDevices) ListByWallet(_ context.Context, wallet string) ([]entities.Device, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []entities.Device
	for _, d := range r.byID {
		if d.Wallet == wallet {
			out = append(out, d)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *memoryDevices) Update(_ context.Context, d entities.Device) (entities.Device, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byID[d.ID]; !ok {
		return entities.Device{}, nil
	}
	r.byID[d.ID] = d
	return d, nil
}

func (r *memoryDevices) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.byID, id)
	return nil
}

type memoryAttempts struct {
	mu   sync.Mutex
	byID map[string]entities.PaymentAttempt
}

var _ interfaces.IPaymentAttemptRepository = (*memoryAttempts)(nil)

func newMemoryAttempts() *memoryAttempts {
	return &memoryAttempts{byID: map[string]entities.PaymentAttempt{}}
}

func (r *memoryAttempts) Create(_ context.Context, p entities.PaymentAttempt) (entities.PaymentAttempt, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.byID[p.ID] = p
	return p, nil
}

func (r *memoryAttempts) GetByID(_ context.Context, id string) (entities.PaymentAttempt, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.byID[id], nil
}

func (r *memoryAttempts) Update(_ context.Context, p entities.PaymentAttempt) (entities.PaymentAttempt, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byID[p.ID]; !ok {
		return entities.PaymentAttempt{}, nil
	}
	r.byID[p.ID] = p
	return p, nil
}

func (r *memoryAttempts) MarkPaid(_ context.Context, id string) (entities.PaymentAttempt, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.byID[id]
	if !ok || p.IsPaid() {
		return entities.PaymentAttempt{}, nil
	}
	p.Status = entities.PaymentAttemptPaid
	p.UpdatedAt = time.Now().UTC()
	r.byID[id] = p
	return p, nil
}

func (r *memoryAttempts) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.byID, id)
	return nil
}

func (r *memoryAttempts) DeleteByDeviceID(_ context.Context, deviceID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for id, p := range r.byID {
		if p.DeviceID == deviceID {
			delete(r.byID, id)
		}
	}
	return nil
}

type sentPayload struct {
	deviceID string
	payload  string
}

type recordingSink struct {
	mu   sync.Mutex
	sent []sentPayload
}

func (s *recordingSink) Send(_ context.Context, deviceID, payload string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sent = append(s.sent, sentPayload{deviceID: deviceID, payload: payload})
	return nil
}

func (s *recordingSink) Sent() []sentPayload {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]sentPayload(nil), s.sent...)
}

func TestPipeline_QuoteToActivation(t *testing.T) {
	ctx := context.Background()
	logger, _ := newTestLogger(t)
	devices := newMemoryDevices()
	attempts := newMemoryAttempts()
	sink := &recordingSink{}

	deviceUC := NewDeviceUseCase(devices, attempts, sink, "https://switch.example.com", time.Second, logger)
	quoteUC := NewQuoteUseCase(devices, attempts, nil, nil, nil, nil, nil, QuoteOptions{PublicBaseURL: "https://switch.example.com"}, logger)
	settleUC := NewSettlementUseCase(attempts, devices, nil, sink, SettlementOptions{DispatchAttempts: 1}, logger)

	wallet := entities.Wallet{ID: "wal-1", InvoiceKey: "inv"}
	device, err := deviceUC.Create(ctx, wallet, DeviceInput{
		Title:    "Gate",
		Currency: entities.CurrencySat,
		Switches: []entities.Switch{{Pin: 1, Amount: 100, Duration: 3000}},
	})
	if err != nil {
		t.Fatalf("create device: %v", err)
	}

	quote, err := quoteUC.RequestQuote(ctx, QuoteCommand{DeviceID: device.ID, Pin: 1, Amount: 100, Duration: 3000})
	if err != nil {
		t.Fatalf("request quote: %v", err)
	}
	if quote.AttemptID == "" || quote.MinSendable != 100000 || quote.MaxSendable != 100000 {
		t.Fatalf("unexpected quote: %+v", quote)
	}

	confirmation := entities.PaymentConfirmation{CorrelationID: quote.AttemptID, ConfirmedAmountUnits: 100}
	res, err := settleUC.OnPaymentConfirmed(ctx, confirmation)
	if err != nil {
		t.Fatalf("settle: %v", err)
	}
	if !res.MarkedPaid {
		t.Fatalf("expected attempt to be marked paid")
	}

	sent := sink.Sent()
	if len(sent) != 1 || sent[0].deviceID != device.ID || sent[0].payload != "1-3000" {
		t.Fatalf("unexpected sink deliveries: %+v", sent)
	}
	stored, _ := attempts.GetByID(ctx, quote.AttemptID)
	if !stored.IsPaid() {
		t.Fatalf("expected terminal status, got %s", stored.Status)
	}

	if _, err := settleUC.OnPaymentConfirmed(ctx, confirmation); !errors.Is(err, ErrAlreadyProcessed) {
		t.Fatalf("expected replay to be a no-op, got %v", err)
	}
	if len(sink.Sent()) != 1 {
		t.Fatalf("replay must not reach the sink again")
	}
}

func TestPipeline_ConcurrentDuplicatesMarkPaidOnce(t *testing.T) {
	ctx := context.Background()
	logger, _ := newTestLogger(t)
	devices := newMemoryDevices()
	attempts := newMemoryAttempts()
	sink := &recordingSink{}

	d := fixtureDevice()
	_, _ = devices.Create(ctx, d)
	_, _ = attempts.Create(ctx, openAttempt(1, 100))
	settleUC := NewSettlementUseCase(attempts, devices, nil, sink, SettlementOptions{DispatchAttempts: 1}, logger)

	var wg sync.WaitGroup
	var mu sync.Mutex
	marked := 0
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			res, _ := settleUC.OnPaymentConfirmed(ctx, entities.PaymentConfirmation{CorrelationID: "att-1", ConfirmedAmountUnits: 100})
			if res.MarkedPaid {
				mu.Lock()
				marked++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	if marked != 1 {
		t.Fatalf("expected exactly one terminal write, got %d", marked)
	}
	// Called directly, several runs can pass the paid check and dispatch before one wins
	// MarkPaid; the payment listener serializes per attempt so only one reaches the sink there.
	if n := len(sink.Sent()); n < 1 || n > 8 {
		t.Fatalf("expected between 1 and 8 deliveries, got %d", n)
	}
}
