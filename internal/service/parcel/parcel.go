package parcel

import (
	"context"
	"errors"
	"fmt"
	"time"

	"fastshift/internal/entities"
)

type Parcel struct {
	repository  Repository
	costFactory CostFactory
	notifier    Notifier
	txManager   TxManager
}

func New(repository Repository, costFactory CostFactory, notifier Notifier, txManager TxManager) *Parcel {
	return &Parcel{
		repository:  repository,
		costFactory: costFactory,
		notifier:    notifier,
		txManager:   txManager,
	}
}

func (s *Parcel) CreateParcel(ctx context.Context, parcelModify entities.ParcelModify) (*entities.Parcel, error) {
	if parcelModify.Title == nil ||
		parcelModify.Type == nil ||
		parcelModify.CreatedBy == nil ||
		parcelModify.SenderName == nil ||
		parcelModify.SenderContact == nil ||
		parcelModify.SenderRegion == nil ||
		parcelModify.SenderAddress == nil ||
		parcelModify.ReceiverName == nil ||
		parcelModify.ReceiverContact == nil ||
		parcelModify.ReceiverRegion == nil ||
		parcelModify.ReceiverAddress == nil {
		return nil, ErrMissingRequiredFields
	}

	if !isValidTitle(*parcelModify.Title) {
		return nil, ErrMissingRequiredFields
	}
	if !isValidParcelType(parcelModify.Type.String()) {
		return nil, ErrInvalidType
	}
	if !isValidEmail(*parcelModify.CreatedBy) {
		return nil, ErrInvalidEmail
	}
	for _, contact := range []string{
		*parcelModify.SenderName, *parcelModify.SenderContact,
		*parcelModify.SenderRegion, *parcelModify.SenderAddress,
		*parcelModify.ReceiverName, *parcelModify.ReceiverContact,
		*parcelModify.ReceiverRegion, *parcelModify.ReceiverAddress,
	} {
		if !isValidContact(contact) {
			return nil, ErrMissingRequiredFields
		}
	}

	if *parcelModify.Type == entities.ParcelNonDocument {
		if parcelModify.Weight == nil || *parcelModify.Weight <= 0 {
			return nil, ErrInvalidWeight
		}
	} else {
		// вес документа в стоимости не участвует
		parcelModify.Weight = nil
	}

	now := time.Now().UTC()
	cost := s.costFactory.Calculate(*parcelModify.Type, parcelModify.Weight)
	trackingID := NewTrackingID(now)
	paymentStatus := entities.PaymentUnpaid
	deliveryStatus := entities.DeliveryNotCollected

	parcelModify.Cost = &cost
	parcelModify.TrackingID = &trackingID
	parcelModify.PaymentStatus = &paymentStatus
	parcelModify.DeliveryStatus = &deliveryStatus
	parcelModify.CreationDate = &now
	parcelModify.AssignedRider = nil
	parcelModify.PickedAt = nil
	parcelModify.DeliveredAt = nil

	created, err := s.repository.Create(ctx, parcelModify)
	if errors.Is(err, ErrTrackingIDConflict) {
		// одна повторная генерация на случай коллизии трек-номера
		retryID := NewTrackingID(time.Now().UTC())
		parcelModify.TrackingID = &retryID
		created, err = s.repository.Create(ctx, parcelModify)
	}
	if err != nil {
		return nil, fmt.Errorf("create parcel: %w", err)
	}

	return created, nil
}

func (s *Parcel) GetParcel(ctx context.Context, id int64) (*entities.Parcel, error) {
	parcelEntity, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get parcel: %w", err)
	}

	return parcelEntity, nil
}

func (s *Parcel) GetParcelsByCreator(ctx context.Context, email string) ([]entities.Parcel, error) {
	if !isValidEmail(email) {
		return nil, ErrInvalidEmail
	}

	parcels, err := s.repository.GetByCreator(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("failed to get parcels: %w", err)
	}

	return parcels, nil
}

// GetParcelsReadyForAssignment очередь для админа: оплачено, но еще не забрано.
func (s *Parcel) GetParcelsReadyForAssignment(ctx context.Context) ([]entities.Parcel, error) {
	parcels, err := s.repository.GetPaidNotCollected(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get parcels for assignment: %w", err)
	}

	return parcels, nil
}

func (s *Parcel) GetActiveParcelsByRider(ctx context.Context, riderEmail string) ([]entities.Parcel, error) {
	if !isValidEmail(riderEmail) {
		return nil, ErrInvalidEmail
	}

	parcels, err := s.repository.GetActiveByRider(ctx, riderEmail)
	if err != nil {
		return nil, fmt.Errorf("failed to get rider parcels: %w", err)
	}

	return parcels, nil
}

// AssignRider переводит посылку not_collected -> assigned. Право riderEmail
// возить посылки здесь не проверяется: за это отвечает rider-сервис,
// разделение "возможен ли переход" и "валиден ли райдер".
func (s *Parcel) AssignRider(ctx context.Context, parcelID int64, riderEmail string) (*entities.Parcel, error) {
	if parcelID <= 0 {
		return nil, ErrInvalidParcelID
	}
	if !isValidEmail(riderEmail) {
		return nil, ErrInvalidEmail
	}

	var assigned *entities.Parcel
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		parcelEntity, err := s.repository.GetByID(ctx, parcelID)
		if err != nil {
			return fmt.Errorf("get parcel: %w", err)
		}

		step, err := Transition(parcelEntity.DeliveryStatus, entities.DeliveryAssigned)
		if err != nil {
			return err
		}

		parcelModify := entities.ParcelModify{
			ID:             &parcelID,
			DeliveryStatus: &step.Status,
			AssignedRider:  &riderEmail,
		}

		assigned, err = s.repository.Update(ctx, parcelModify)
		if err != nil {
			return fmt.Errorf("update parcel: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.notify(ctx, assigned)
	return assigned, nil
}

// AdvanceStatus движет посылку вперед по конвейеру доставки:
// assigned -> intransit (ставит picked_at), intransit -> delivered
// (ставит delivered_at). Запрос уже достигнутого статуса возвращает NoOp.
func (s *Parcel) AdvanceStatus(ctx context.Context, parcelID int64, requested entities.DeliveryStatusType) (*entities.StatusAdvance, error) {
	if parcelID <= 0 {
		return nil, ErrInvalidParcelID
	}
	if requested != entities.DeliveryInTransit && requested != entities.DeliveryDelivered {
		return nil, fmt.Errorf("%w: advance to %s is not allowed", ErrInvalidTransition, requested)
	}

	var advance entities.StatusAdvance
	var updated *entities.Parcel
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		parcelEntity, err := s.repository.GetByID(ctx, parcelID)
		if err != nil {
			return fmt.Errorf("get parcel: %w", err)
		}

		step, err := Transition(parcelEntity.DeliveryStatus, requested)
		if err != nil {
			return err
		}

		if step.NoOp {
			advance = entities.StatusAdvance{ParcelID: parcelID, Status: step.Status, NoOp: true}
			return nil
		}

		now := time.Now().UTC()
		parcelModify := entities.ParcelModify{
			ID:             &parcelID,
			DeliveryStatus: &step.Status,
		}
		if step.StampPickedAt {
			parcelModify.PickedAt = &now
		}
		if step.StampDeliveredAt {
			parcelModify.DeliveredAt = &now
		}

		updated, err = s.repository.Update(ctx, parcelModify)
		if err != nil {
			return fmt.Errorf("update parcel: %w", err)
		}

		advance = entities.StatusAdvance{ParcelID: parcelID, Status: step.Status}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if updated != nil {
		s.notify(ctx, updated)
	}
	return &advance, nil
}

// MarkPaid вызывается исключительно платежным сервисом после успешного
// захвата платежа и работает в его транзакции. Событие об оплате
// публикует вызывающий, уже после фиксации транзакции.
func (s *Parcel) MarkPaid(ctx context.Context, parcelID int64) (*entities.Parcel, error) {
	if parcelID <= 0 {
		return nil, ErrInvalidParcelID
	}

	parcelEntity, err := s.repository.GetByID(ctx, parcelID)
	if err != nil {
		return nil, fmt.Errorf("get parcel: %w", err)
	}
	if parcelEntity.PaymentStatus == entities.PaymentPaid {
		return nil, ErrAlreadyPaid
	}

	paid := entities.PaymentPaid
	parcelModify := entities.ParcelModify{
		ID:            &parcelID,
		PaymentStatus: &paid,
	}

	updated, err := s.repository.Update(ctx, parcelModify)
	if err != nil {
		return nil, fmt.Errorf("update parcel: %w", err)
	}

	return updated, nil
}

// DeleteParcel необратим и разрешен из любого состояния (только админу,
// это гарантирует цепочка авторизации). Записи журнала платежей не каскадируются.
func (s *Parcel) DeleteParcel(ctx context.Context, parcelID int64) error {
	if parcelID <= 0 {
		return ErrInvalidParcelID
	}

	err := s.repository.Delete(ctx, parcelID)
	if err != nil {
		return fmt.Errorf("delete parcel: %w", err)
	}

	return nil
}

func (s *Parcel) notify(ctx context.Context, parcelEntity *entities.Parcel) {
	if parcelEntity == nil {
		return
	}

	s.notifier.ParcelStatusChanged(ctx, entities.NewParcelEvent(parcelEntity))
}
