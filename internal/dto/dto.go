// Package dto содержит типы HTTP запросов и ответов. Имена JSON-полей
// закреплены за клиентом и меняться не должны.
package dto

import "time"

type ParcelCreate struct {
	Title           string   `json:"title"`
	Type            string   `json:"type"`
	Weight          *float64 `json:"weight,omitempty"`
	CreatedBy       string   `json:"created_by"`
	SenderName      string   `json:"senderName"`
	SenderContact   string   `json:"senderContact"`
	SenderRegion    string   `json:"senderRegion"`
	SenderAddress   string   `json:"senderAddress"`
	ReceiverName    string   `json:"receiverName"`
	ReceiverContact string   `json:"receiverContact"`
	ReceiverRegion  string   `json:"receiverRegion"`
	ReceiverAddress string   `json:"receiverAddress"`
}

type Parcel struct {
	ID              int64      `json:"id"`
	Title           string     `json:"title"`
	Type            string     `json:"type"`
	Weight          *float64   `json:"weight,omitempty"`
	Cost            float64    `json:"cost"`
	TrackingID      string     `json:"tracking_id"`
	CreatedBy       string     `json:"created_by"`
	SenderName      string     `json:"senderName"`
	SenderContact   string     `json:"senderContact"`
	SenderRegion    string     `json:"senderRegion"`
	SenderAddress   string     `json:"senderAddress"`
	ReceiverName    string     `json:"receiverName"`
	ReceiverContact string     `json:"receiverContact"`
	ReceiverRegion  string     `json:"receiverRegion"`
	ReceiverAddress string     `json:"receiverAddress"`
	PaymentStatus   string     `json:"payment_status"`
	DeliveryStatus  string     `json:"delivery_status"`
	AssignedRider   *string    `json:"assigned_rider,omitempty"`
	PickedAt        *time.Time `json:"picked_at,omitempty"`
	DeliveredAt     *time.Time `json:"delivered_at,omitempty"`
	CreationDate    time.Time  `json:"creation_date"`
}

type ParcelCreateResponse struct {
	ID         int64  `json:"id"`
	TrackingID string `json:"tracking_id"`
	Cost       float64 `json:"cost"`
}

type ParcelAssign struct {
	RiderEmail string `json:"riderEmail"`
}

type ParcelStatusUpdate struct {
	Status string `json:"status"`
}

type ParcelStatusResponse struct {
	Success bool   `json:"success"`
	Status  string `json:"status"`
}

type PaymentIntentCreate struct {
	Amount   float64 `json:"amount"`
	Currency string  `json:"currency,omitempty"`
}

type PaymentIntentResponse struct {
	ClientSecret string `json:"clientSecret"`
}

type PaymentCreate struct {
	ParcelID      int64   `json:"parcelId"`
	Email         string  `json:"email"`
	TransactionID string  `json:"transactionId"`
	Amount        float64 `json:"amount"`
	PaymentMethod string  `json:"paymentMethod"`
}

type Payment struct {
	ID            int64     `json:"id"`
	ParcelID      int64     `json:"parcelId"`
	Email         string    `json:"email"`
	TransactionID string    `json:"transactionId"`
	Amount        float64   `json:"amount"`
	PaymentMethod string    `json:"paymentMethod"`
	PaymentTime   time.Time `json:"paymentTime"`
}

type PaymentCreateResponse struct {
	Message    string `json:"message"`
	InsertedID int64  `json:"insertedId"`
}

type UserCreate struct {
	Email    string `json:"email"`
	Name     string `json:"name"`
	PhotoURL string `json:"photoURL,omitempty"`
}

type User struct {
	ID        int64     `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name,omitempty"`
	PhotoURL  string    `json:"photoURL,omitempty"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}

type UserCreateResponse struct {
	Message string `json:"message"`
	ID      int64  `json:"id,omitempty"`
}

type UserRoleResponse struct {
	Role string `json:"role"`
}

type UserRoleUpdate struct {
	Role string `json:"role"`
}

type RiderApplicationCreate struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	Age        int    `json:"age"`
	Phone      string `json:"phone"`
	NID        string `json:"nid"`
	Region     string `json:"region"`
	District   string `json:"district"`
	Address    string `json:"address"`
	BikeBrand  string `json:"bikeBrand"`
	BikeNumber string `json:"bikeNumber"`
}

type RiderApplication struct {
	ID         int64     `json:"id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Age        int       `json:"age"`
	Phone      string    `json:"phone"`
	NID        string    `json:"nid"`
	Region     string    `json:"region"`
	District   string    `json:"district"`
	Address    string    `json:"address"`
	BikeBrand  string    `json:"bikeBrand"`
	BikeNumber string    `json:"bikeNumber"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"createdAt"`
}

type RiderApplicationCreateResponse struct {
	Message    string `json:"message"`
	InsertedID int64  `json:"insertedId"`
}

type RiderStatusUpdate struct {
	Status string `json:"status"`
}

type RiderEarning struct {
	ParcelID       int64      `json:"id"`
	TrackingID     string     `json:"tracking_id"`
	SenderName     string     `json:"senderName"`
	ReceiverName   string     `json:"receiverName"`
	Cost           float64    `json:"cost"`
	Earning        float64    `json:"earning"`
	DeliveryStatus string     `json:"delivery_status"`
	AssignedRider  string     `json:"assigned_rider"`
	PickedAt       *time.Time `json:"picked_at"`
	DeliveredAt    *time.Time `json:"delivered_at"`
}

type Message struct {
	Message string `json:"message"`
}

type PingResponse struct {
	Message *string `json:"message,omitempty"`
}
