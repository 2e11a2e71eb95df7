package entities

import "time"

type Parcel struct {
	ID              int64
	Title           string
	Type            ParcelType
	Weight          *float64
	Cost            float64
	TrackingID      string
	CreatedBy       string
	SenderName      string
	SenderContact   string
	SenderRegion    string
	SenderAddress   string
	ReceiverName    string
	ReceiverContact string
	ReceiverRegion  string
	ReceiverAddress string
	PaymentStatus   PaymentStatusType
	DeliveryStatus  DeliveryStatusType
	AssignedRider   *string
	PickedAt        *time.Time
	DeliveredAt     *time.Time
	CreationDate    time.Time
}

type ParcelType string

const (
	ParcelDocument    ParcelType = "document"
	ParcelNonDocument ParcelType = "non-document"
)

func (t ParcelType) String() string {
	return string(t)
}

type DeliveryStatusType string

const (
	DeliveryNotCollected DeliveryStatusType = "not_collected"
	DeliveryAssigned     DeliveryStatusType = "assigned"
	DeliveryInTransit    DeliveryStatusType = "intransit"
	DeliveryDelivered    DeliveryStatusType = "delivered"
)

func (t DeliveryStatusType) String() string {
	return string(t)
}

type PaymentStatusType string

const (
	PaymentUnpaid PaymentStatusType = "unpaid"
	PaymentPaid   PaymentStatusType = "paid"
)

func (t PaymentStatusType) String() string {
	return string(t)
}

type ParcelModify struct {
	ID              *int64
	Title           *string
	Type            *ParcelType
	Weight          *float64
	Cost            *float64
	TrackingID      *string
	CreatedBy       *string
	SenderName      *string
	SenderContact   *string
	SenderRegion    *string
	SenderAddress   *string
	ReceiverName    *string
	ReceiverContact *string
	ReceiverRegion  *string
	ReceiverAddress *string
	PaymentStatus   *PaymentStatusType
	DeliveryStatus  *DeliveryStatusType
	AssignedRider   *string
	PickedAt        *time.Time
	DeliveredAt     *time.Time
	CreationDate    *time.Time
}

// StatusAdvance описывает результат перехода статуса доставки.
// NoOp = true когда посылка уже находилась в запрошенном статусе
// (повторный запрос клиента после таймаута).
type StatusAdvance struct {
	ParcelID int64
	Status   DeliveryStatusType
	NoOp     bool
}
