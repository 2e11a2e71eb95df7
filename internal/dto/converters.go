package dto

import "fastshift/internal/entities"

func FromParcel(p *entities.Parcel) Parcel {
	return Parcel{
		ID:              p.ID,
		Title:           p.Title,
		Type:            p.Type.String(),
		Weight:          p.Weight,
		Cost:            p.Cost,
		TrackingID:      p.TrackingID,
		CreatedBy:       p.CreatedBy,
		SenderName:      p.SenderName,
		SenderContact:   p.SenderContact,
		SenderRegion:    p.SenderRegion,
		SenderAddress:   p.SenderAddress,
		ReceiverName:    p.ReceiverName,
		ReceiverContact: p.ReceiverContact,
		ReceiverRegion:  p.ReceiverRegion,
		ReceiverAddress: p.ReceiverAddress,
		PaymentStatus:   p.PaymentStatus.String(),
		DeliveryStatus:  p.DeliveryStatus.String(),
		AssignedRider:   p.AssignedRider,
		PickedAt:        p.PickedAt,
		DeliveredAt:     p.DeliveredAt,
		CreationDate:    p.CreationDate,
	}
}

func FromParcelList(parcels []entities.Parcel) []Parcel {
	result := make([]Parcel, len(parcels))
	for i := range parcels {
		result[i] = FromParcel(&parcels[i])
	}
	return result
}

func FromPayment(p *entities.Payment) Payment {
	return Payment{
		ID:            p.ID,
		ParcelID:      p.ParcelID,
		Email:         p.PayerEmail,
		TransactionID: p.TransactionID,
		Amount:        p.Amount,
		PaymentMethod: p.Method,
		PaymentTime:   p.PaidAt,
	}
}

func FromPaymentList(payments []entities.Payment) []Payment {
	result := make([]Payment, len(payments))
	for i := range payments {
		result[i] = FromPayment(&payments[i])
	}
	return result
}

func FromUser(u *entities.User) User {
	return User{
		ID:        u.ID,
		Email:     u.Email,
		Name:      u.Name,
		PhotoURL:  u.PhotoURL,
		Role:      u.Role.String(),
		CreatedAt: u.CreatedAt,
	}
}

func FromUserList(users []entities.User) []User {
	result := make([]User, len(users))
	for i := range users {
		result[i] = FromUser(&users[i])
	}
	return result
}

func FromRiderApplication(a *entities.RiderApplication) RiderApplication {
	return RiderApplication{
		ID:         a.ID,
		Name:       a.Name,
		Email:      a.Email,
		Age:        a.Age,
		Phone:      a.Phone,
		NID:        a.NationalID,
		Region:     a.Region,
		District:   a.District,
		Address:    a.Address,
		BikeBrand:  a.BikeBrand,
		BikeNumber: a.BikeNumber,
		Status:     a.Status.String(),
		CreatedAt:  a.CreatedAt,
	}
}

func FromRiderApplicationList(applications []entities.RiderApplication) []RiderApplication {
	result := make([]RiderApplication, len(applications))
	for i := range applications {
		result[i] = FromRiderApplication(&applications[i])
	}
	return result
}

func FromRiderEarning(e *entities.RiderEarning) RiderEarning {
	return RiderEarning{
		ParcelID:       e.ParcelID,
		TrackingID:     e.TrackingID,
		SenderName:     e.SenderName,
		ReceiverName:   e.ReceiverName,
		Cost:           e.Cost,
		Earning:        e.Earning,
		DeliveryStatus: e.DeliveryStatus.String(),
		AssignedRider:  e.AssignedRider,
		PickedAt:       e.PickedAt,
		DeliveredAt:    e.DeliveredAt,
	}
}

func FromRiderEarningList(earnings []entities.RiderEarning) []RiderEarning {
	result := make([]RiderEarning, len(earnings))
	for i := range earnings {
		result[i] = FromRiderEarning(&earnings[i])
	}
	return result
}
