package services

import (
	"context"
	"strings"
	"time"

	"workshop/internal/core/domain/model/customer"
	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/core/domain/model/vehicle"
	"workshop/internal/core/domain/model/workorder"
	"workshop/internal/core/ports"
	"workshop/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// LoyaltyLevel ranks customers by how much business they brought in.
type LoyaltyLevel int

const (
	// LoyaltyBronze is the entry level every customer starts at.
	LoyaltyBronze LoyaltyLevel = iota
	// LoyaltySilver requires at least 3 delivered orders and R$ 2000 spent.
	LoyaltySilver
	// LoyaltyGold requires at least 5 delivered orders and R$ 5000 spent.
	LoyaltyGold
	// LoyaltyPlatinum requires at least 10 delivered orders and R$ 10000 spent.
	LoyaltyPlatinum
)

// String returns the loyalty level name.
func (l LoyaltyLevel) String() string {
	switch l {
	case LoyaltySilver:
		return "Silver"
	case LoyaltyGold:
		return "Gold"
	case LoyaltyPlatinum:
		return "Platinum"
	default:
		return "Bronze"
	}
}

// LoyaltyScore summarizes a customer's standing with the shop.
type LoyaltyScore struct {
	Level             LoyaltyLevel
	CompletedServices int
	TotalSpent        kernel.Money
	YearsAsCustomer   float64
	VehicleCount      int
}

// DiscountPercentage returns the discount the level entitles the customer
// to, in percent.
func (s LoyaltyScore) DiscountPercentage() decimal.Decimal {
	switch s.Level {
	case LoyaltyPlatinum:
		return decimal.NewFromInt(15)
	case LoyaltyGold:
		return decimal.NewFromInt(10)
	case LoyaltySilver:
		return decimal.NewFromInt(5)
	default:
		return decimal.Zero
	}
}

// CustomerService is a domain service for customer business logic that
// spans aggregates: registration with uniqueness checks, vehicle transfers
// that keep both customers' associations consistent, and loyalty scoring.
//
// The repositories are expected to be bound to the caller's unit of work so
// that multi-aggregate orchestrations commit atomically.
type CustomerService struct {
	customers ports.CustomerRepository
	vehicles  ports.VehicleRepository
}

// NewCustomerService creates a CustomerService operating on the given
// repositories.
func NewCustomerService(customers ports.CustomerRepository, vehicles ports.VehicleRepository) CustomerService {
	return CustomerService{
		customers: customers,
		vehicles:  vehicles,
	}
}

// CanCreateCustomerWithEmail reports whether no customer is registered with
// the given email yet. Blank emails are never creatable.
func (s CustomerService) CanCreateCustomerWithEmail(ctx context.Context, email string) (bool, error) {
	if strings.TrimSpace(email) == "" {
		return false, nil
	}

	exists, err := s.customers.ExistsWithEmail(ctx, email)
	if err != nil {
		return false, err
	}
	return !exists, nil
}

// RegisterNewCustomer registers a customer, enforcing email uniqueness, and
// optionally registers their first vehicle in the same operation. Fails
// with an ObjectAlreadyExistsError when the email is taken. The returned
// aggregates still carry their buffered domain events.
func (s CustomerService) RegisterNewCustomer(
	ctx context.Context,
	contactInformation kernel.ContactInformation,
	preferredContactMethod string,
	firstVehicle *vehicle.Identification,
) (*customer.Customer, error) {
	exists, err := s.customers.ExistsWithEmail(ctx, contactInformation.Email())
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, errs.NewObjectAlreadyExistsError("email", contactInformation.Email())
	}

	newCustomer, err := customer.NewCustomer(contactInformation, preferredContactMethod)
	if err != nil {
		return nil, err
	}
	if err := s.customers.Add(ctx, newCustomer); err != nil {
		return nil, err
	}

	if firstVehicle != nil {
		newVehicle, err := vehicle.NewVehicle(newCustomer.ID(), *firstVehicle, 0, "")
		if err != nil {
			return nil, err
		}
		if err := s.vehicles.Add(ctx, newVehicle); err != nil {
			return nil, err
		}
		if err := newCustomer.AddVehicle(newVehicle.ID()); err != nil {
			return nil, err
		}
		if err := s.customers.Update(ctx, newCustomer); err != nil {
			return nil, err
		}
	}

	return newCustomer, nil
}

// TransferVehicle moves a vehicle to a new owner and keeps both Customer
// aggregates' vehicle associations consistent. A missing previous owner is
// tolerated; a missing vehicle or new owner fails with an
// ObjectNotFoundError.
func (s CustomerService) TransferVehicle(ctx context.Context, vehicleID, newCustomerID kernel.UUID) error {
	transferred, err := s.vehicles.Get(ctx, vehicleID)
	if err != nil {
		return err
	}

	newOwner, err := s.customers.Get(ctx, newCustomerID)
	if err != nil {
		return err
	}

	if oldOwner, err := s.customers.Get(ctx, transferred.CustomerID()); err == nil {
		oldOwner.RemoveVehicle(vehicleID)
		if err := s.customers.Update(ctx, oldOwner); err != nil {
			return err
		}
	}

	if err := transferred.TransferToCustomer(newCustomerID); err != nil {
		return err
	}
	if err := s.vehicles.Update(ctx, transferred); err != nil {
		return err
	}

	if err := newOwner.AddVehicle(vehicleID); err != nil {
		return err
	}
	return s.customers.Update(ctx, newOwner)
}

// CalculateLoyaltyScore scores a customer from their delivered work order
// history. Only delivered orders with an approved quote count toward the
// total spent.
func (s CustomerService) CalculateLoyaltyScore(
	c *customer.Customer,
	workOrderHistory []*workorder.WorkOrder,
) (LoyaltyScore, error) {
	completed := 0
	totalSpent := decimal.Zero
	for _, w := range workOrderHistory {
		if w.Status() != workorder.StatusDelivered {
			continue
		}
		completed++
		if amount := w.ApprovedAmount(); amount != nil {
			totalSpent = totalSpent.Add(amount.Amount())
		}
	}

	level := LoyaltyBronze
	switch {
	case completed >= 10 && totalSpent.GreaterThanOrEqual(decimal.NewFromInt(10000)):
		level = LoyaltyPlatinum
	case completed >= 5 && totalSpent.GreaterThanOrEqual(decimal.NewFromInt(5000)):
		level = LoyaltyGold
	case completed >= 3 && totalSpent.GreaterThanOrEqual(decimal.NewFromInt(2000)):
		level = LoyaltySilver
	}

	spent, err := kernel.NewMoney(totalSpent, kernel.DefaultCurrency)
	if err != nil {
		return LoyaltyScore{}, err
	}

	return LoyaltyScore{
		Level:             level,
		CompletedServices: completed,
		TotalSpent:        spent,
		YearsAsCustomer:   time.Since(c.DateRegistered()).Hours() / 24 / 365,
		VehicleCount:      c.VehicleCount(),
	}, nil
}

// IsVipCustomer reports whether the loyalty level entitles the customer to
// VIP treatment.
func (s CustomerService) IsVipCustomer(score LoyaltyScore) bool {
	return score.Level == LoyaltyGold || score.Level == LoyaltyPlatinum
}
