package parcel_cost

import (
	"math"

	"fastshift/internal/entities"
)

const (
	documentBaseFee    = 50.0
	nonDocumentBaseFee = 100.0
	perKgRate          = 20.0
)

type CostFactory struct{}

func New() *CostFactory {
	return &CostFactory{}
}

// Calculate детерминированная стоимость доставки: документ по плоскому
// тарифу, не-документ базовый тариф плюс ставка за килограмм.
func (f *CostFactory) Calculate(parcelType entities.ParcelType, weight *float64) float64 {
	cost := documentBaseFee
	if parcelType == entities.ParcelNonDocument {
		cost = nonDocumentBaseFee
		if weight != nil {
			cost += *weight * perKgRate
		}
	}

	return math.Round(cost*100) / 100
}
