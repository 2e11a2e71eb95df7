package payment

import (
	"context"
	"fmt"
	"time"

	"fastshift/internal/entities"
)

const defaultCurrency = "usd"

type Payment struct {
	repository    Repository
	parcelService ParcelService
	intentGateway IntentGateway
	notifier      Notifier
	txManager     TxManager
}

func New(repository Repository, parcelService ParcelService, intentGateway IntentGateway, notifier Notifier, txManager TxManager) *Payment {
	return &Payment{
		repository:    repository,
		parcelService: parcelService,
		intentGateway: intentGateway,
		notifier:      notifier,
		txManager:     txManager,
	}
}

// CreateIntent резервирует платеж у внешнего провайдера. Состояние посылки
// не меняется: оплаченной она становится только после RecordPayment.
func (s *Payment) CreateIntent(ctx context.Context, amount float64, currency string) (*entities.PaymentIntent, error) {
	if amount <= 0 {
		return nil, ErrInvalidAmount
	}
	if currency == "" {
		currency = defaultCurrency
	}

	intent, err := s.intentGateway.CreateIntent(ctx, amount, currency)
	if err != nil {
		return nil, fmt.Errorf("create payment intent: %w", err)
	}

	return intent, nil
}

// RecordPayment фиксирует подтвержденный платеж: запись в журнале и
// перевод посылки в paid происходят одной транзакцией.
func (s *Payment) RecordPayment(ctx context.Context, paymentModify entities.PaymentModify) (*entities.Payment, error) {
	if paymentModify.ParcelID == nil ||
		paymentModify.PayerEmail == nil ||
		paymentModify.TransactionID == nil ||
		paymentModify.Amount == nil ||
		paymentModify.Method == nil {
		return nil, ErrMissingRequiredFields
	}

	if *paymentModify.ParcelID <= 0 {
		return nil, ErrInvalidParcelID
	}
	if !isValidEmail(*paymentModify.PayerEmail) {
		return nil, ErrInvalidEmail
	}
	if *paymentModify.Amount <= 0 {
		return nil, ErrInvalidAmount
	}
	if !isValidField(*paymentModify.TransactionID) || !isValidField(*paymentModify.Method) {
		return nil, ErrMissingRequiredFields
	}

	paidAt := time.Now().UTC()
	paymentModify.PaidAt = &paidAt

	var (
		recorded   *entities.Payment
		paidParcel *entities.Parcel
	)
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		var err error
		paidParcel, err = s.parcelService.MarkPaid(ctx, *paymentModify.ParcelID)
		if err != nil {
			return fmt.Errorf("mark parcel paid: %w", err)
		}

		recorded, err = s.repository.Create(ctx, paymentModify)
		if err != nil {
			return fmt.Errorf("create payment record: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	// событие уходит только после фиксации транзакции: откат записи
	// в журнале не должен оставить в топике "оплаченную" посылку
	s.notifier.ParcelStatusChanged(ctx, entities.NewParcelEvent(paidParcel))

	return recorded, nil
}

func (s *Payment) GetPaymentsByParcel(ctx context.Context, parcelID int64) ([]entities.Payment, error) {
	if parcelID <= 0 {
		return nil, ErrInvalidParcelID
	}

	payments, err := s.repository.GetByParcelID(ctx, parcelID)
	if err != nil {
		return nil, fmt.Errorf("failed to get payments: %w", err)
	}

	return payments, nil
}

func (s *Payment) GetPaymentsByPayer(ctx context.Context, payerEmail string) ([]entities.Payment, error) {
	if !isValidEmail(payerEmail) {
		return nil, ErrInvalidEmail
	}

	payments, err := s.repository.GetByPayer(ctx, payerEmail)
	if err != nil {
		return nil, fmt.Errorf("failed to get payments: %w", err)
	}

	return payments, nil
}
