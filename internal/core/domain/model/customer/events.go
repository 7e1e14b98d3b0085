package customer

import "workshop/internal/core/domain/model/kernel"

// CustomerRegisteredEventName identifies CustomerRegisteredEvent in logs and
// event sinks.
const CustomerRegisteredEventName = "customer.registered"

// CustomerRegisteredEvent is raised once when a new customer is registered.
type CustomerRegisteredEvent struct {
	kernel.EventBase
	customerID   kernel.UUID
	customerName string
	email        string
}

// NewCustomerRegisteredEvent creates the registration event.
func NewCustomerRegisteredEvent(customerID kernel.UUID, customerName, email string) CustomerRegisteredEvent {
	return CustomerRegisteredEvent{
		EventBase:    kernel.NewEventBase(),
		customerID:   customerID,
		customerName: customerName,
		email:        email,
	}
}

// EventName returns the event kind identifier.
func (e CustomerRegisteredEvent) EventName() string {
	return CustomerRegisteredEventName
}

// CustomerID returns the id of the registered customer.
func (e CustomerRegisteredEvent) CustomerID() kernel.UUID {
	return e.customerID
}

// CustomerName returns the registered customer's full name.
func (e CustomerRegisteredEvent) CustomerName() string {
	return e.customerName
}

// Email returns the registered customer's normalized email.
func (e CustomerRegisteredEvent) Email() string {
	return e.email
}
