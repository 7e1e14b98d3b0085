// Package workorderrepo provides data transfer objects and mapping
// functions for work order persistence. It implements the repository
// pattern for the work order aggregate, including the owned quote and its
// line items.
package workorderrepo

import (
	"time"

	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/core/domain/model/workorder"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// WorkOrderDTO represents the database structure for persisting work order
// aggregates. Enumerations are stored by name so the rows stay readable and
// the reporting queries can group on them directly.
type WorkOrderDTO struct {
	ID                 uuid.UUID  `gorm:"type:uuid;primaryKey"`
	CreatedAt          time.Time  `gorm:"not null"`
	UpdatedAt          time.Time  `gorm:"not null"`
	IsDeleted          bool       `gorm:"not null"`
	CustomerID         uuid.UUID  `gorm:"type:uuid;not null;index"`
	VehicleID          uuid.UUID  `gorm:"type:uuid;not null;index"`
	ServiceDescription string     `gorm:"type:text;not null"`
	ServiceType        string     `gorm:"type:varchar(32);not null"`
	Priority           string     `gorm:"type:varchar(32);not null"`
	Status             string     `gorm:"type:varchar(32);not null;index"`
	RequestedDate      time.Time  `gorm:"not null"`
	ScheduledDate      *time.Time `gorm:"type:timestamptz"`
	CompletedDate      *time.Time `gorm:"type:timestamptz"`
	CustomerNotes      string     `gorm:"type:text"`
	InternalNotes      string     `gorm:"type:text"`
	CreatedBy          string     `gorm:"type:varchar(255);not null"`
	AssignedTechnician string     `gorm:"type:varchar(255)"`
	Quote              *QuoteDTO  `gorm:"foreignKey:WorkOrderID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for work order entities.
func (WorkOrderDTO) TableName() string {
	return "work_orders"
}

// QuoteDTO represents the database structure for persisting the quote owned
// by a work order. TotalAmount is denormalized so reporting queries can sum
// revenue without reloading line items.
type QuoteDTO struct {
	ID                uuid.UUID       `gorm:"type:uuid;primaryKey"`
	WorkOrderID       uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex"`
	CreatedAt         time.Time       `gorm:"not null"`
	UpdatedAt         time.Time       `gorm:"not null"`
	IsDeleted         bool            `gorm:"not null"`
	EstimatedHours    decimal.Decimal `gorm:"type:numeric;not null"`
	LaborCost         decimal.Decimal `gorm:"type:numeric;not null"`
	TotalAmount       decimal.Decimal `gorm:"type:numeric;not null"`
	Currency          string          `gorm:"type:varchar(3);not null"`
	ExpiresAt         time.Time       `gorm:"not null;index"`
	IsApproved        bool            `gorm:"not null"`
	ApprovedAt        *time.Time      `gorm:"type:timestamptz"`
	CustomerSignature string          `gorm:"type:varchar(255)"`
	Notes             string          `gorm:"type:text"`
	LineItems         []LineItemDTO   `gorm:"foreignKey:QuoteID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for quote entities.
func (QuoteDTO) TableName() string {
	return "quotes"
}

// LineItemDTO represents one priced line of a quote. Position preserves the
// proposal order.
type LineItemDTO struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	QuoteID     uuid.UUID       `gorm:"type:uuid;not null;index"`
	Position    int             `gorm:"type:int;not null"`
	Description string          `gorm:"type:varchar(255);not null"`
	Quantity    int             `gorm:"type:int;not null"`
	UnitPrice   decimal.Decimal `gorm:"type:numeric;not null"`
	Currency    string          `gorm:"type:varchar(3);not null"`
	PartNumber  string          `gorm:"type:varchar(64)"`
	IsLabor     bool            `gorm:"not null"`
}

// TableName specifies the database table name for quote line items.
func (LineItemDTO) TableName() string {
	return "quote_line_items"
}

// fromDomain converts a work order domain aggregate to its database
// representation.
func fromDomain(aggregate *workorder.WorkOrder) WorkOrderDTO {
	workOrderID := aggregate.ID().Bytes()

	return WorkOrderDTO{
		ID:                 workOrderID,
		CreatedAt:          aggregate.CreatedAt(),
		UpdatedAt:          aggregate.UpdatedAt(),
		IsDeleted:          aggregate.IsDeleted(),
		CustomerID:         aggregate.CustomerID().Bytes(),
		VehicleID:          aggregate.VehicleID().Bytes(),
		ServiceDescription: aggregate.ServiceDescription(),
		ServiceType:        aggregate.ServiceType().String(),
		Priority:           aggregate.Priority().String(),
		Status:             aggregate.Status().String(),
		RequestedDate:      aggregate.RequestedDate(),
		ScheduledDate:      aggregate.ScheduledDate(),
		CompletedDate:      aggregate.CompletedDate(),
		CustomerNotes:      aggregate.CustomerNotes(),
		InternalNotes:      aggregate.InternalNotes(),
		CreatedBy:          aggregate.CreatedBy(),
		AssignedTechnician: aggregate.AssignedTechnician(),
		Quote:              quoteFromDomain(workOrderID, aggregate.Quote()),
	}
}

// quoteFromDomain converts the owned quote, or returns nil when the work
// order has none.
func quoteFromDomain(workOrderID uuid.UUID, quote *workorder.Quote) *QuoteDTO {
	if quote == nil {
		return nil
	}

	quoteID := quote.ID().Bytes()
	items := quote.LineItems()
	lineItems := make([]LineItemDTO, 0, len(items))
	for i, item := range items {
		lineItems = append(lineItems, LineItemDTO{
			ID:          item.ID().Bytes(),
			QuoteID:     quoteID,
			Position:    i,
			Description: item.Description(),
			Quantity:    item.Quantity(),
			UnitPrice:   item.UnitPrice().Amount(),
			Currency:    item.UnitPrice().Currency(),
			PartNumber:  item.PartNumber(),
			IsLabor:     item.IsLabor(),
		})
	}

	return &QuoteDTO{
		ID:                quoteID,
		WorkOrderID:       workOrderID,
		CreatedAt:         quote.CreatedAt(),
		UpdatedAt:         quote.UpdatedAt(),
		IsDeleted:         quote.IsDeleted(),
		EstimatedHours:    quote.EstimatedHours(),
		LaborCost:         quote.LaborCost().Amount(),
		TotalAmount:       quote.TotalAmount().Amount(),
		Currency:          quote.LaborCost().Currency(),
		ExpiresAt:         quote.ExpiresAt(),
		IsApproved:        quote.IsApproved(),
		ApprovedAt:        quote.ApprovedAt(),
		CustomerSignature: quote.CustomerSignature(),
		Notes:             quote.Notes(),
		LineItems:         lineItems,
	}
}

// toDomain converts a database DTO to a work order domain aggregate using
// RestoreWorkOrder.
func toDomain(dto WorkOrderDTO) (*workorder.WorkOrder, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}

	vehicleID, err := kernel.UUIDFromBytes(dto.VehicleID[:])
	if err != nil {
		return nil, err
	}

	serviceType, err := workorder.ServiceTypeFromString(dto.ServiceType)
	if err != nil {
		return nil, err
	}

	priority, err := workorder.ServicePriorityFromString(dto.Priority)
	if err != nil {
		return nil, err
	}

	status, err := workorder.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	quote, err := quoteToDomain(dto.Quote)
	if err != nil {
		return nil, err
	}

	return workorder.RestoreWorkOrder(
		id,
		dto.CreatedAt,
		dto.UpdatedAt,
		dto.IsDeleted,
		customerID,
		vehicleID,
		dto.ServiceDescription,
		serviceType,
		priority,
		status,
		dto.RequestedDate,
		dto.ScheduledDate,
		dto.CompletedDate,
		quote,
		dto.CustomerNotes,
		dto.InternalNotes,
		dto.CreatedBy,
		dto.AssignedTechnician,
	)
}

// quoteToDomain converts a quote DTO to its domain entity, or returns nil
// when the work order has no quote. Line items must already be ordered by
// position.
func quoteToDomain(dto *QuoteDTO) (*workorder.Quote, error) {
	if dto == nil {
		return nil, nil
	}

	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	lineItems := make([]workorder.LineItem, 0, len(dto.LineItems))
	for _, itemDto := range dto.LineItems {
		item, itemErr := lineItemToDomain(itemDto)
		if itemErr != nil {
			return nil, itemErr
		}
		lineItems = append(lineItems, item)
	}

	laborCost, err := kernel.NewMoney(dto.LaborCost, dto.Currency)
	if err != nil {
		return nil, err
	}

	return workorder.RestoreQuote(
		id,
		dto.CreatedAt,
		dto.UpdatedAt,
		dto.IsDeleted,
		lineItems,
		dto.EstimatedHours,
		laborCost,
		dto.ExpiresAt,
		dto.IsApproved,
		dto.ApprovedAt,
		dto.CustomerSignature,
		dto.Notes,
	)
}

func lineItemToDomain(dto LineItemDTO) (workorder.LineItem, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return workorder.LineItem{}, err
	}

	unitPrice, err := kernel.NewMoney(dto.UnitPrice, dto.Currency)
	if err != nil {
		return workorder.LineItem{}, err
	}

	return workorder.RestoreLineItem(
		id, dto.Description, dto.Quantity, unitPrice, dto.PartNumber, dto.IsLabor)
}
