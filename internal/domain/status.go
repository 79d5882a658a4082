package domain

// DeliveryStatus is the lifecycle status of a delivery.
type DeliveryStatus string

// List of delivery statuses.
const (
	StatusConfirmed        DeliveryStatus = "pedido_confirmado"
	StatusReadyToShip      DeliveryStatus = "pronto_envio"
	StatusShipped          DeliveryStatus = "enviado"
	StatusDelivered        DeliveryStatus = "entrega_realizada"
	StatusDeliveryFailed   DeliveryStatus = "entrega_sem_sucesso"
	StatusReturnedToSender DeliveryStatus = "devolvido_remetente"
	StatusDamaged          DeliveryStatus = "avariado"
	StatusLost             DeliveryStatus = "extravio"
)

var allowedDeliveryStatuses = [...]DeliveryStatus{
	StatusConfirmed, StatusReadyToShip, StatusShipped, StatusDelivered,
	StatusDeliveryFailed, StatusReturnedToSender, StatusDamaged, StatusLost,
}

var problemStatuses = [...]DeliveryStatus{
	StatusDeliveryFailed, StatusReturnedToSender, StatusDamaged, StatusLost,
}

var statusLabels = map[DeliveryStatus]string{
	StatusConfirmed:        "Confirmado",
	StatusReadyToShip:      "Pronto p/ Envio",
	StatusShipped:          "Enviado",
	StatusDelivered:        "Entregue",
	StatusDeliveryFailed:   "Sem Sucesso",
	StatusReturnedToSender: "Devolvido",
	StatusDamaged:          "Avariado",
	StatusLost:             "Extravio",
}

// DeliveryStatuses returns all statuses in lifecycle order.
func DeliveryStatuses() []DeliveryStatus {
	out := make([]DeliveryStatus, len(allowedDeliveryStatuses))
	copy(out, allowedDeliveryStatuses[:])
	return out
}

// Valid checks if the DeliveryStatus is one of the known values.
func (s DeliveryStatus) Valid() bool {
	for _, v := range allowedDeliveryStatuses {
		if s == v {
			return true
		}
	}
	return false
}

// IsProblem reports whether s belongs to the fixed "problem" subset.
func (s DeliveryStatus) IsProblem() bool {
	for _, v := range problemStatuses {
		if s == v {
			return true
		}
	}
	return false
}

// IsPending reports whether the delivery is neither delivered nor in a problem state.
func (s DeliveryStatus) IsPending() bool {
	return s != StatusDelivered && !s.IsProblem()
}

// Label returns a short human readable label.
func (s DeliveryStatus) Label() string {
	if l, ok := statusLabels[s]; ok {
		return l
	}
	return string(s)
}
