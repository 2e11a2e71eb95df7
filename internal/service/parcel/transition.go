package parcel

import (
	"fmt"

	"fastshift/internal/entities"
)

// Step результат применения таблицы переходов.
type Step struct {
	Status           entities.DeliveryStatusType
	NoOp             bool
	StampPickedAt    bool
	StampDeliveredAt bool
}

// Transition единственное место где живет граф статусов доставки:
//
//	not_collected -> assigned -> intransit -> delivered
//
// Повторный запрос уже достигнутого intransit/delivered не ошибка, а NoOp,
// чтобы ретрай клиента после таймаута не перетирал отметки времени.
// Повторный assign ретраем не считается и отклоняется.
func Transition(current, requested entities.DeliveryStatusType) (Step, error) {
	if current == requested {
		switch requested {
		case entities.DeliveryInTransit, entities.DeliveryDelivered:
			return Step{Status: current, NoOp: true}, nil
		default:
			return Step{}, fmt.Errorf("%w: %s is already %s", ErrInvalidTransition, requested, current)
		}
	}

	switch {
	case current == entities.DeliveryNotCollected && requested == entities.DeliveryAssigned:
		return Step{Status: entities.DeliveryAssigned}, nil
	case current == entities.DeliveryAssigned && requested == entities.DeliveryInTransit:
		return Step{Status: entities.DeliveryInTransit, StampPickedAt: true}, nil
	case current == entities.DeliveryInTransit && requested == entities.DeliveryDelivered:
		return Step{Status: entities.DeliveryDelivered, StampDeliveredAt: true}, nil
	default:
		return Step{}, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, current, requested)
	}
}
