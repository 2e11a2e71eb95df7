package parcel

import "fastshift/internal/entities"

func ToDomain(p *ParcelDB) *entities.Parcel {
	if p == nil {
		return nil
	}
	return &entities.Parcel{
		ID:              p.ID,
		Title:           p.Title,
		Type:            entities.ParcelType(p.Type),
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
		PaymentStatus:   entities.PaymentStatusType(p.PaymentStatus),
		DeliveryStatus:  entities.DeliveryStatusType(p.DeliveryStatus),
		AssignedRider:   p.AssignedRider,
		PickedAt:        p.PickedAt,
		DeliveredAt:     p.DeliveredAt,
		CreationDate:    p.CreatedAt,
	}
}

func FromDomainModify(parcelModify *entities.ParcelModify) *ParcelModifyDB {
	if parcelModify == nil {
		return nil
	}
	parcelDB := &ParcelModifyDB{}

	if parcelModify.ID != nil {
		parcelDB.ID = parcelModify.ID
	}
	if parcelModify.Title != nil {
		parcelDB.Title = parcelModify.Title
	}
	if parcelModify.Type != nil {
		parcelType := parcelModify.Type.String()
		parcelDB.Type = &parcelType
	}
	if parcelModify.Weight != nil {
		parcelDB.Weight = parcelModify.Weight
	}
	if parcelModify.Cost != nil {
		parcelDB.Cost = parcelModify.Cost
	}
	if parcelModify.TrackingID != nil {
		parcelDB.TrackingID = parcelModify.TrackingID
	}
	if parcelModify.CreatedBy != nil {
		parcelDB.CreatedBy = parcelModify.CreatedBy
	}
	if parcelModify.SenderName != nil {
		parcelDB.SenderName = parcelModify.SenderName
	}
	if parcelModify.SenderContact != nil {
		parcelDB.SenderContact = parcelModify.SenderContact
	}
	if parcelModify.SenderRegion != nil {
		parcelDB.SenderRegion = parcelModify.SenderRegion
	}
	if parcelModify.SenderAddress != nil {
		parcelDB.SenderAddress = parcelModify.SenderAddress
	}
	if parcelModify.ReceiverName != nil {
		parcelDB.ReceiverName = parcelModify.ReceiverName
	}
	if parcelModify.ReceiverContact != nil {
		parcelDB.ReceiverContact = parcelModify.ReceiverContact
	}
	if parcelModify.ReceiverRegion != nil {
		parcelDB.ReceiverRegion = parcelModify.ReceiverRegion
	}
	if parcelModify.ReceiverAddress != nil {
		parcelDB.ReceiverAddress = parcelModify.ReceiverAddress
	}
	if parcelModify.PaymentStatus != nil {
		paymentStatus := parcelModify.PaymentStatus.String()
		parcelDB.PaymentStatus = &paymentStatus
	}
	if parcelModify.DeliveryStatus != nil {
		deliveryStatus := parcelModify.DeliveryStatus.String()
		parcelDB.DeliveryStatus = &deliveryStatus
	}
	if parcelModify.AssignedRider != nil {
		parcelDB.AssignedRider = parcelModify.AssignedRider
	}
	if parcelModify.PickedAt != nil {
		parcelDB.PickedAt = parcelModify.PickedAt
	}
	if parcelModify.DeliveredAt != nil {
		parcelDB.DeliveredAt = parcelModify.DeliveredAt
	}
	if parcelModify.CreationDate != nil {
		parcelDB.CreatedAt = parcelModify.CreationDate
	}

	return parcelDB
}

func ToDomainList(parcelsDB []ParcelDB) []entities.Parcel {
	if len(parcelsDB) == 0 {
		return []entities.Parcel{}
	}

	result := make([]entities.Parcel, len(parcelsDB))
	for i, parcelDB := range parcelsDB {
		result[i] = *ToDomain(&parcelDB)
	}
	return result
}
