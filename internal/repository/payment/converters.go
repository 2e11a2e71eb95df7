package payment

import "fastshift/internal/entities"

func ToDomain(p *PaymentDB) *entities.Payment {
	if p == nil {
		return nil
	}
	return &entities.Payment{
		ID:            p.ID,
		ParcelID:      p.ParcelID,
		PayerEmail:    p.PayerEmail,
		TransactionID: p.TransactionID,
		Amount:        p.Amount,
		Method:        p.Method,
		PaidAt:        p.PaidAt,
	}
}

func FromDomainModify(paymentModify *entities.PaymentModify) *PaymentModifyDB {
	if paymentModify == nil {
		return nil
	}
	paymentDB := &PaymentModifyDB{}

	if paymentModify.ID != nil {
		paymentDB.ID = paymentModify.ID
	}
	if paymentModify.ParcelID != nil {
		paymentDB.ParcelID = paymentModify.ParcelID
	}
	if paymentModify.PayerEmail != nil {
		paymentDB.PayerEmail = paymentModify.PayerEmail
	}
	if paymentModify.TransactionID != nil {
		paymentDB.TransactionID = paymentModify.TransactionID
	}
	if paymentModify.Amount != nil {
		paymentDB.Amount = paymentModify.Amount
	}
	if paymentModify.Method != nil {
		paymentDB.Method = paymentModify.Method
	}
	if paymentModify.PaidAt != nil {
		paymentDB.PaidAt = paymentModify.PaidAt
	}

	return paymentDB
}

func ToDomainList(paymentsDB []PaymentDB) []entities.Payment {
	if len(paymentsDB) == 0 {
		return []entities.Payment{}
	}

	result := make([]entities.Payment, len(paymentsDB))
	for i, paymentDB := range paymentsDB {
		result[i] = *ToDomain(&paymentDB)
	}
	return result
}
