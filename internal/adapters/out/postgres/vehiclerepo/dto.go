// Package vehiclerepo provides data transfer objects and mapping functions
// for vehicle persistence. It implements the repository pattern for the
// vehicle aggregate, converting between domain entities and database rows.
package vehiclerepo

import (
	"time"

	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/core/domain/model/vehicle"

	"github.com/google/uuid"
)

// VehicleDTO represents the database structure for persisting vehicle
// aggregates. The append-only service history is stored as ordered child
// rows.
type VehicleDTO struct {
	ID              uuid.UUID          `gorm:"type:uuid;primaryKey"`
	CreatedAt       time.Time          `gorm:"not null"`
	UpdatedAt       time.Time          `gorm:"not null"`
	IsDeleted       bool               `gorm:"not null"`
	CustomerID      uuid.UUID          `gorm:"type:uuid;not null;index"`
	Vin             string             `gorm:"type:varchar(17);not null;uniqueIndex"`
	LicensePlate    string             `gorm:"type:varchar(16);not null;index"`
	Make            string             `gorm:"type:varchar(64);not null"`
	Model           string             `gorm:"type:varchar(64);not null"`
	Year            int                `gorm:"type:int;not null"`
	Color           string             `gorm:"type:varchar(32);not null"`
	Mileage         int                `gorm:"type:int;not null"`
	LastServiceDate *time.Time         `gorm:"type:timestamptz"`
	Notes           string             `gorm:"type:text"`
	IsActive        bool               `gorm:"not null;index"`
	ServiceRecords  []ServiceRecordDTO `gorm:"foreignKey:VehicleID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for vehicle entities.
func (VehicleDTO) TableName() string {
	return "vehicles"
}

// ServiceRecordDTO represents one formatted service history record.
// Position preserves the append order of the history.
type ServiceRecordDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	VehicleID uuid.UUID `gorm:"type:uuid;not null;index"`
	Position  int       `gorm:"type:int;not null"`
	Record    string    `gorm:"type:text;not null"`
}

// TableName specifies the database table name for service history records.
func (ServiceRecordDTO) TableName() string {
	return "vehicle_service_records"
}

// fromDomain converts a vehicle domain aggregate to its database
// representation. History rows get fresh ids on every save; Update replaces
// them wholesale.
func fromDomain(aggregate *vehicle.Vehicle) VehicleDTO {
	vehicleID := aggregate.ID().Bytes()
	identification := aggregate.Identification()

	history := aggregate.ServiceHistory()
	records := make([]ServiceRecordDTO, 0, len(history))
	for i, record := range history {
		records = append(records, ServiceRecordDTO{
			ID:        uuid.Must(uuid.NewV7()),
			VehicleID: vehicleID,
			Position:  i,
			Record:    record,
		})
	}

	var lastServiceDate *time.Time
	if !aggregate.LastServiceDate().IsZero() {
		date := aggregate.LastServiceDate()
		lastServiceDate = &date
	}

	return VehicleDTO{
		ID:              vehicleID,
		CreatedAt:       aggregate.CreatedAt(),
		UpdatedAt:       aggregate.UpdatedAt(),
		IsDeleted:       aggregate.IsDeleted(),
		CustomerID:      aggregate.CustomerID().Bytes(),
		Vin:             identification.Vin(),
		LicensePlate:    identification.LicensePlate().Value(),
		Make:            identification.Make(),
		Model:           identification.Model(),
		Year:            identification.Year(),
		Color:           identification.Color(),
		Mileage:         aggregate.Mileage(),
		LastServiceDate: lastServiceDate,
		Notes:           aggregate.Notes(),
		IsActive:        aggregate.IsActive(),
		ServiceRecords:  records,
	}
}

// toDomain converts a database DTO to a vehicle domain aggregate using
// RestoreVehicle. Service records must already be ordered by position.
func toDomain(dto VehicleDTO) (*vehicle.Vehicle, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}

	plate, err := vehicle.NewLicensePlate(dto.LicensePlate)
	if err != nil {
		return nil, err
	}

	identification, err := vehicle.NewIdentification(
		dto.Vin, plate, dto.Make, dto.Model, dto.Year, dto.Color)
	if err != nil {
		return nil, err
	}

	history := make([]string, 0, len(dto.ServiceRecords))
	for _, record := range dto.ServiceRecords {
		history = append(history, record.Record)
	}

	var lastServiceDate time.Time
	if dto.LastServiceDate != nil {
		lastServiceDate = *dto.LastServiceDate
	}

	return vehicle.RestoreVehicle(
		id,
		dto.CreatedAt,
		dto.UpdatedAt,
		dto.IsDeleted,
		customerID,
		identification,
		dto.Mileage,
		lastServiceDate,
		history,
		dto.Notes,
		dto.IsActive,
	)
}
