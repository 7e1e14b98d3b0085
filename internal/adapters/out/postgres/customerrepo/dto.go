// Package customerrepo provides data transfer objects and mapping functions
// for customer persistence. It implements the repository pattern for the
// customer aggregate, converting between domain entities and database rows.
package customerrepo

import (
	"time"

	"workshop/internal/core/domain/model/customer"
	"workshop/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// CustomerDTO represents the database structure for persisting customer
// aggregates. The vehicle association is stored as child rows so the set of
// owned vehicle ids survives round trips.
type CustomerDTO struct {
	ID                     uuid.UUID            `gorm:"type:uuid;primaryKey"`
	CreatedAt              time.Time            `gorm:"not null"`
	UpdatedAt              time.Time            `gorm:"not null"`
	IsDeleted              bool                 `gorm:"not null"`
	FullName               string               `gorm:"type:varchar(255);not null"`
	Email                  string               `gorm:"type:varchar(255);not null;uniqueIndex"`
	PhoneNumber            string               `gorm:"type:varchar(64);not null"`
	Address                AddressDTO           `gorm:"embedded;embeddedPrefix:address_"`
	DateRegistered         time.Time            `gorm:"not null"`
	IsActive               bool                 `gorm:"not null;index"`
	PreferredContactMethod string               `gorm:"type:varchar(32)"`
	Vehicles               []CustomerVehicleDTO `gorm:"foreignKey:CustomerID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for customer entities.
func (CustomerDTO) TableName() string {
	return "customers"
}

// AddressDTO represents the embedded physical address within the customer
// table.
type AddressDTO struct {
	Street     string `gorm:"type:varchar(255);not null"`
	City       string `gorm:"type:varchar(128);not null"`
	State      string `gorm:"type:varchar(128);not null"`
	PostalCode string `gorm:"type:varchar(32);not null"`
	Country    string `gorm:"type:varchar(128);not null"`
}

// CustomerVehicleDTO links a customer to one of their vehicles.
type CustomerVehicleDTO struct {
	CustomerID uuid.UUID `gorm:"type:uuid;primaryKey"`
	VehicleID  uuid.UUID `gorm:"type:uuid;primaryKey"`
}

// TableName specifies the database table name for the vehicle association.
func (CustomerVehicleDTO) TableName() string {
	return "customer_vehicles"
}

// fromDomain converts a customer domain aggregate to its database
// representation.
func fromDomain(aggregate *customer.Customer) CustomerDTO {
	customerID := aggregate.ID().Bytes()
	contact := aggregate.ContactInformation()
	address := contact.Address()

	vehicleIDs := aggregate.VehicleIDs()
	vehicles := make([]CustomerVehicleDTO, 0, len(vehicleIDs))
	for _, vehicleID := range vehicleIDs {
		vehicles = append(vehicles, CustomerVehicleDTO{
			CustomerID: customerID,
			VehicleID:  vehicleID.Bytes(),
		})
	}

	return CustomerDTO{
		ID:          customerID,
		CreatedAt:   aggregate.CreatedAt(),
		UpdatedAt:   aggregate.UpdatedAt(),
		IsDeleted:   aggregate.IsDeleted(),
		FullName:    contact.FullName(),
		Email:       contact.Email(),
		PhoneNumber: contact.PhoneNumber(),
		Address: AddressDTO{
			Street:     address.Street(),
			City:       address.City(),
			State:      address.State(),
			PostalCode: address.PostalCode(),
			Country:    address.Country(),
		},
		DateRegistered:         aggregate.DateRegistered(),
		IsActive:               aggregate.IsActive(),
		PreferredContactMethod: aggregate.PreferredContactMethod(),
		Vehicles:               vehicles,
	}
}

// toDomain converts a database DTO to a customer domain aggregate using
// RestoreCustomer.
func toDomain(dto CustomerDTO) (*customer.Customer, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	address, err := kernel.NewAddress(
		dto.Address.Street,
		dto.Address.City,
		dto.Address.State,
		dto.Address.PostalCode,
		dto.Address.Country,
	)
	if err != nil {
		return nil, err
	}

	contact, err := kernel.NewContactInformation(dto.FullName, dto.Email, dto.PhoneNumber, address)
	if err != nil {
		return nil, err
	}

	vehicleIDs := make([]kernel.UUID, 0, len(dto.Vehicles))
	for _, link := range dto.Vehicles {
		vehicleID, linkErr := kernel.UUIDFromBytes(link.VehicleID[:])
		if linkErr != nil {
			return nil, linkErr
		}
		vehicleIDs = append(vehicleIDs, vehicleID)
	}

	return customer.RestoreCustomer(
		id,
		dto.CreatedAt,
		dto.UpdatedAt,
		dto.IsDeleted,
		contact,
		dto.DateRegistered,
		dto.IsActive,
		dto.PreferredContactMethod,
		vehicleIDs,
	)
}
