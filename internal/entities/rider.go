package entities

import "time"

type RiderApplication struct {
	ID         int64
	Name       string
	Email      string
	Age        int
	Phone      string
	NationalID string
	Region     string
	District   string
	Address    string
	BikeBrand  string
	BikeNumber string
	Status     ApplicationStatusType
	CreatedAt  time.Time
}

type ApplicationStatusType string

const (
	ApplicationPending   ApplicationStatusType = "pending"
	ApplicationActive    ApplicationStatusType = "active"
	ApplicationCancelled ApplicationStatusType = "cancelled"
)

func (t ApplicationStatusType) String() string {
	return string(t)
}

type RiderApplicationModify struct {
	ID         *int64
	Name       *string
	Email      *string
	Age        *int
	Phone      *string
	NationalID *string
	Region     *string
	District   *string
	Address    *string
	BikeBrand  *string
	BikeNumber *string
	Status     *ApplicationStatusType
}

// RiderEarning производная строка отчета по завершенным доставкам,
// пересчитывается на каждый запрос и нигде не хранится.
type RiderEarning struct {
	ParcelID       int64
	TrackingID     string
	SenderName     string
	ReceiverName   string
	Cost           float64
	Earning        float64
	DeliveryStatus DeliveryStatusType
	AssignedRider  string
	PickedAt       *time.Time
	DeliveredAt    *time.Time
}
