package parcel

import "time"

type ParcelDB struct {
	ID              int64
	Title           string
	Type            string
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
	PaymentStatus   string
	DeliveryStatus  string
	AssignedRider   *string
	PickedAt        *time.Time
	DeliveredAt     *time.Time
	CreatedAt       time.Time
}

type ParcelModifyDB struct {
	ID              *int64
	Title           *string
	Type            *string
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
	PaymentStatus   *string
	DeliveryStatus  *string
	AssignedRider   *string
	PickedAt        *time.Time
	DeliveredAt     *time.Time
	CreatedAt       *time.Time
}
