package domain

// DeliverySlot represents the delivery window requested by the customer.
type DeliverySlot string

const (
	SlotMorning   DeliverySlot = "MORNING"
	SlotAfternoon DeliverySlot = "AFTERNOON"
	SlotEvening   DeliverySlot = "EVENING"
)

// IsValid checks if the delivery slot is one we actually deliver in.
func (s DeliverySlot) IsValid() bool {
	switch s {
	case SlotMorning, SlotAfternoon, SlotEvening:
		return true
	default:
		return false
	}
}
