package entities

import "time"

// Payment неизменяемая запись журнала платежей. Записи только добавляются,
// удаление посылки существующие записи не трогает.
type Payment struct {
	ID            int64
	ParcelID      int64
	PayerEmail    string
	TransactionID string
	Amount        float64
	Method        string
	PaidAt        time.Time
}

type PaymentModify struct {
	ID            *int64
	ParcelID      *int64
	PayerEmail    *string
	TransactionID *string
	Amount        *float64
	Method        *string
	PaidAt        *time.Time
}

// PaymentIntent хендл на захват платежа у внешнего провайдера.
type PaymentIntent struct {
	ClientSecret string
}

// ParcelEvent событие жизненного цикла посылки для канала уведомлений.
type ParcelEvent struct {
	ParcelID       int64
	TrackingID     string
	DeliveryStatus DeliveryStatusType
	PaymentStatus  PaymentStatusType
	AssignedRider  string
	OccurredAt     time.Time
}

// NewParcelEvent снимок состояния посылки для публикации.
func NewParcelEvent(parcelEntity *Parcel) ParcelEvent {
	event := ParcelEvent{
		ParcelID:       parcelEntity.ID,
		TrackingID:     parcelEntity.TrackingID,
		DeliveryStatus: parcelEntity.DeliveryStatus,
		PaymentStatus:  parcelEntity.PaymentStatus,
		OccurredAt:     time.Now().UTC(),
	}
	if parcelEntity.AssignedRider != nil {
		event.AssignedRider = *parcelEntity.AssignedRider
	}

	return event
}
