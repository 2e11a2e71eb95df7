package earnings

import (
	"context"
	"fmt"
	"math"
	"strings"

	"fastshift/internal/entities"
)

// commissionRate доля стоимости доставки, причитающаяся курьеру.
const commissionRate = 0.30

type Earnings struct {
	parcelRepository ParcelRepository
}

func New(parcelRepository ParcelRepository) *Earnings {
	return &Earnings{parcelRepository: parcelRepository}
}

// CompletedDeliveries строит отчет по завершенным доставкам курьера.
// Заработок нигде не хранится и пересчитывается на каждый запрос от
// текущей стоимости посылки.
func (s *Earnings) CompletedDeliveries(ctx context.Context, riderEmail string) ([]entities.RiderEarning, error) {
	if !isValidEmail(riderEmail) {
		return nil, ErrInvalidEmail
	}

	delivered, err := s.parcelRepository.GetDeliveredByRider(ctx, riderEmail)
	if err != nil {
		return nil, fmt.Errorf("failed to get delivered parcels: %w", err)
	}

	report := make([]entities.RiderEarning, 0, len(delivered))
	for _, parcelEntity := range delivered {
		report = append(report, entities.RiderEarning{
			ParcelID:       parcelEntity.ID,
			TrackingID:     parcelEntity.TrackingID,
			SenderName:     parcelEntity.SenderName,
			ReceiverName:   parcelEntity.ReceiverName,
			Cost:           parcelEntity.Cost,
			Earning:        round2(parcelEntity.Cost * commissionRate),
			DeliveryStatus: parcelEntity.DeliveryStatus,
			AssignedRider:  riderEmail,
			PickedAt:       parcelEntity.PickedAt,
			DeliveredAt:    parcelEntity.DeliveredAt,
		})
	}

	return report, nil
}

func round2(value float64) float64 {
	return math.Round(value*100) / 100
}

func isValidEmail(email string) bool {
	email = strings.TrimSpace(email)
	at := strings.Index(email, "@")
	return at > 0 && at < len(email)-1
}
