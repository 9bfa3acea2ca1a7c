package usecase

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"bitcoinswitch/internal/domain/entities"
	"bitcoinswitch/internal/infrastructure/logging"
	"bitcoinswitch/internal/usecase/interfaces"
	"bitcoinswitch/pkg/lnurl"

	"github.com/google/uuid"
)

var (
	ErrDeviceNotFound   = errors.New("device not found")
	ErrDeviceDisabled   = errors.New("device disabled")
	ErrInvalidDeviceID  = errors.New("invalid device id")
	ErrInvalidDevice    = errors.New("invalid device")
	ErrInvalidWallet    = errors.New("invalid wallet")
	ErrTriggerFailed    = errors.New("device trigger failed")
	errSinkNotAvailable = errors.New("activation sink not configured")
)

// DeviceInput is the owner-editable part of a Device.
type DeviceInput struct {
	Title      string
	Currency   string
	Switches   []entities.Switch
	Password   *string
	Disabled   bool
	Disposable bool
}

// IDeviceUseCase is the switch registry as seen by wallet owners.
//
// Every operation is scoped to the authenticated wallet; devices of other wallets are
// reported as not found.
type IDeviceUseCase interface {
	Create(ctx context.Context, wallet entities.Wallet, in DeviceInput) (entities.Device, error)
	GetByID(ctx context.Context, wallet entities.Wallet, id string) (entities.Device, error)
	ListByWallet(ctx context.Context, wallet entities.Wallet) ([]entities.Device, error)
	Update(ctx context.Context, wallet entities.Wallet, id string, in DeviceInput) (entities.Device, error)
	Delete(ctx context.Context, wallet entities.Wallet, id string) error
	Trigger(ctx context.Context, wallet entities.Wallet, id string, pin int) (string, error)
}

type DeviceUseCase struct {
	repo          interfaces.IDeviceRepository
	attempts      interfaces.IPaymentAttemptRepository
	sink          interfaces.IActivationSink
	publicBaseURL string
	sinkTimeout   time.Duration
	log           logging.Logger
}

var _ IDeviceUseCase = (*DeviceUseCase)(nil)

func NewDeviceUseCase(
	repo interfaces.IDeviceRepository,
	attempts interfaces.IPaymentAttemptRepository,
	sink interfaces.IActivationSink,
	publicBaseURL string,
	sinkTimeout time.Duration,
	log logging.Logger,
) *DeviceUseCase {
	if sinkTimeout <= 0 {
		sinkTimeout = DefaultCallTimeout
	}
	if log == nil {
		log = logging.NewLogger()
	}
	return &DeviceUseCase{
		repo:          repo,
		attempts:      attempts,
		sink:          sink,
		publicBaseURL: strings.TrimRight(publicBaseURL, "/"),
		sinkTimeout:   sinkTimeout,
		log:           log,
	}
}

func (u *DeviceUseCase) Create(ctx context.Context, wallet entities.Wallet, in DeviceInput) (entities.Device, error) {
	if strings.TrimSpace(wallet.ID) == "" {
		return entities.Device{}, ErrInvalidWallet
	}
	in, err := normalizeDeviceInput(in)
	if err != nil {
		return entities.Device{}, err
	}

	now := time.Now().UTC()
	d := entities.Device{
		ID:         uuid.NewString(),
		Title:      in.Title,
		Wallet:     wallet.ID,
		WalletKey:  wallet.InvoiceKey,
		Currency:   in.Currency,
		Switches:   in.Switches,
		Password:   in.Password,
		Disabled:   in.Disabled,
		Disposable: in.Disposable,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := u.assignLNURLs(&d); err != nil {
		return entities.Device{}, err
	}

	created, err := u.repo.Create(ctx, d)
	if err != nil {
		u.log.WithField("wallet", wallet.ID).WithError(err).Error("[device][usecase] create failed")
		return entities.Device{}, err
	}
	u.log.WithFields(logging.Fields{"device_id": created.ID, "wallet": wallet.ID, "switches": len(created.Switches)}).
		Info("[device][usecase] device created")
	return created, nil
}

func (u *DeviceUseCase) GetByID(ctx context.Context, wallet entities.Wallet, id string) (entities.Device, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Device{}, ErrInvalidDeviceID
	}
	d, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Device{}, err
	}
	if d.ID == "" || d.Wallet != wallet.ID {
		return entities.Device{}, ErrDeviceNotFound
	}
	return d, nil
}

func (u *DeviceUseCase) ListByWallet(ctx context.Context, wallet entities.Wallet) ([]entities.Device, error) {
	if strings.TrimSpace(wallet.ID) == "" {
		return nil, ErrInvalidWallet
	}
	return u.repo.ListByWallet(ctx, wallet.ID)
}

func (u *DeviceUseCase) Update(ctx context.Context, wallet entities.Wallet, id string, in DeviceInput) (entities.Device, error) {
	existing, err := u.GetByID(ctx, wallet, id)
	if err != nil {
		return entities.Device{}, err
	}
	in, err = normalizeDeviceInput(in)
	if err != nil {
		return entities.Device{}, err
	}

	existing.Title = in.Title
	existing.Currency = in.Currency
	existing.Switches = in.Switches
	existing.Password = in.Password
	existing.Disabled = in.Disabled
	existing.Disposable = in.Disposable
	if wallet.InvoiceKey != "" {
		existing.WalletKey = wallet.InvoiceKey
	}
	existing.UpdatedAt = time.Now().UTC()
	if err := u.assignLNURLs(&existing); err != nil {
		return entities.Device{}, err
	}

	updated, err := u.repo.Update(ctx, existing)
	if err != nil {
		return entities.Device{}, err
	}
	if updated.ID == "" {
		return entities.Device{}, ErrDeviceNotFound
	}
	return updated, nil
}

// Delete removes the device and every payment attempt recorded against it.
func (u *DeviceUseCase) Delete(ctx context.Context, wallet entities.Wallet, id string) error {
	d, err := u.GetByID(ctx, wallet, id)
	if err != nil {
		return err
	}
	if err := u.repo.Delete(ctx, d.ID); err != nil {
		return err
	}
	if err := u.attempts.DeleteByDeviceID(ctx, d.ID); err != nil {
		u.log.WithField("device_id", d.ID).WithError(err).Warn("[device][usecase] payment attempt cleanup failed")
	}
	u.log.WithField("device_id", d.ID).Info("[device][usecase] device deleted")
	return nil
}

// Trigger activates a switch without a payment and returns the payload sent.
func (u *DeviceUseCase) Trigger(ctx context.Context, wallet entities.Wallet, id string, pin int) (string, error) {
	d, err := u.GetByID(ctx, wallet, id)
	if err != nil {
		return "", err
	}
	sw, ok := d.FindSwitch(pin)
	if !ok {
		return "", ErrSwitchNotFound
	}
	if u.sink == nil {
		return "", fmt.Errorf("%w: %v", ErrTriggerFailed, errSinkNotAvailable)
	}

	payload := BuildPayload(sw.Pin, sw.Duration, "")
	callCtx, cancel := context.WithTimeout(ctx, u.sinkTimeout)
	defer cancel()
	if err := u.sink.Send(callCtx, d.ID, payload); err != nil {
		u.log.WithFields(logging.Fields{"device_id": d.ID, "pin": pin}).WithError(err).Warn("[device][usecase] manual trigger failed")
		return "", fmt.Errorf("%w: %v", ErrTriggerFailed, err)
	}
	u.log.WithFields(logging.Fields{"device_id": d.ID, "pin": pin, "payload": payload}).Info("[device][usecase] manual trigger sent")
	return payload, nil
}

func (u *DeviceUseCase) assignLNURLs(d *entities.Device) error {
	for i := range d.Switches {
		link, err := lnurl.Encode(SwitchPayURL(u.publicBaseURL, d.ID, d.Switches[i]))
		if err != nil {
			return err
		}
		d.Switches[i].LNURL = link
	}
	return nil
}

// SwitchPayURL is the LNURL-pay endpoint a switch's QR code points at.
func SwitchPayURL(baseURL, deviceID string, sw entities.Switch) string {
	q := url.Values{}
	q.Set("pin", strconv.Itoa(sw.Pin))
	q.Set("amount", strconv.FormatFloat(sw.Amount, 'f', -1, 64))
	q.Set("duration", strconv.FormatInt(sw.Duration, 10))
	q.Set("variable", strconv.FormatBool(sw.Variable))
	q.Set("comment", strconv.FormatBool(sw.Comment))
	q.Set("disabletime", "0")
	return fmt.Sprintf("%s/v1/lnurl/%s?%s", strings.TrimRight(baseURL, "/"), url.PathEscape(deviceID), q.Encode())
}

func normalizeDeviceInput(in DeviceInput) (DeviceInput, error) {
	in.Title = strings.TrimSpace(in.Title)
	if in.Title == "" {
		return in, fmt.Errorf("%w: title is required", ErrInvalidDevice)
	}
	in.Currency = strings.TrimSpace(in.Currency)
	if in.Currency == "" {
		in.Currency = entities.CurrencySat
	}
	if len(in.Switches) == 0 {
		return in, fmt.Errorf("%w: at least one switch must be configured", ErrInvalidDevice)
	}
	if in.Password != nil && strings.TrimSpace(*in.Password) == "" {
		in.Password = nil
	}

	seen := make(map[int]struct{}, len(in.Switches))
	switches := make([]entities.Switch, 0, len(in.Switches))
	for _, sw := range in.Switches {
		if sw.Pin < 0 {
			return in, fmt.Errorf("%w: pin must be positive", ErrInvalidDevice)
		}
		if sw.Amount < 0 {
			return in, fmt.Errorf("%w: amount must be positive", ErrInvalidDevice)
		}
		if sw.Duration < 0 {
			return in, fmt.Errorf("%w: duration must be positive", ErrInvalidDevice)
		}
		if _, dup := seen[sw.Pin]; dup {
			return in, fmt.Errorf("%w: pin %d configured twice", ErrInvalidDevice, sw.Pin)
		}
		seen[sw.Pin] = struct{}{}

		sw.AcceptedAssetIDs = cleanAssetIDs(sw.AcceptedAssetIDs)
		if sw.AcceptsAssets && len(sw.AcceptedAssetIDs) == 0 {
			return in, fmt.Errorf("%w: pin %d accepts assets but lists no asset ids", ErrInvalidDevice, sw.Pin)
		}
		sw.LNURL = ""
		switches = append(switches, sw)
	}
	in.Switches = switches
	return in, nil
}

func cleanAssetIDs(ids []string) []string {
	var out []string
	seen := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		id = strings.TrimSpace(id)
		if id == "" {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
