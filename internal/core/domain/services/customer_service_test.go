package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"workshop/internal/core/domain/model/customer"
	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/core/domain/model/vehicle"
	"workshop/internal/core/domain/model/workorder"
	"workshop/internal/core/domain/services"
	"workshop/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockCustomerRepository struct{ mock.Mock }

func (m *MockCustomerRepository) Add(ctx context.Context, aggregate *customer.Customer) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockCustomerRepository) Update(ctx context.Context, aggregate *customer.Customer) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockCustomerRepository) Get(ctx context.Context, id kernel.UUID) (*customer.Customer, error) {
	args := m.Called(ctx, id)
	if c, ok := args.Get(0).(*customer.Customer); ok {
		return c, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockCustomerRepository) GetByEmail(_ context.Context, _ string) (*customer.Customer, error) {
	return nil, errors.New("not implemented in mock")
}

func (m *MockCustomerRepository) ExistsWithEmail(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

func (m *MockCustomerRepository) GetAllActive(_ context.Context) ([]*customer.Customer, error) {
	return nil, errors.New("not implemented in mock")
}

type MockVehicleRepository struct{ mock.Mock }

func (m *MockVehicleRepository) Add(ctx context.Context, aggregate *vehicle.Vehicle) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockVehicleRepository) Update(ctx context.Context, aggregate *vehicle.Vehicle) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockVehicleRepository) Get(ctx context.Context, id kernel.UUID) (*vehicle.Vehicle, error) {
	args := m.Called(ctx, id)
	if v, ok := args.Get(0).(*vehicle.Vehicle); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockVehicleRepository) GetByCustomer(_ context.Context, _ kernel.UUID) ([]*vehicle.Vehicle, error) {
	return nil, errors.New("not implemented in mock")
}

func (m *MockVehicleRepository) GetByLicensePlate(_ context.Context, _ vehicle.LicensePlate) (*vehicle.Vehicle, error) {
	return nil, errors.New("not implemented in mock")
}

func (m *MockVehicleRepository) GetByVin(_ context.Context, _ string) (*vehicle.Vehicle, error) {
	return nil, errors.New("not implemented in mock")
}

func testContact(t *testing.T) kernel.ContactInformation {
	t.Helper()
	address, err := kernel.NewAddress("Rua das Oficinas, 100", "São Paulo", "SP", "01310-100", "")
	require.NoError(t, err)
	contact, err := kernel.NewContactInformation("Maria Souza", "maria@example.com", "+55 11 98888-0000", address)
	require.NoError(t, err)
	return contact
}

func newTestCustomer(t *testing.T) *customer.Customer {
	t.Helper()
	c, err := customer.NewCustomer(testContact(t), "email")
	require.NoError(t, err)
	return c
}

func testIdentification(t *testing.T) vehicle.Identification {
	t.Helper()
	plate, err := vehicle.NewLicensePlate("ABC1D23")
	require.NoError(t, err)
	identification, err := vehicle.NewIdentification(
		"9BWZZZ377VT004251", plate, "Fiat", "Argo", 2021, "Prata")
	require.NoError(t, err)
	return identification
}

func newTestVehicle(t *testing.T, customerID kernel.UUID) *vehicle.Vehicle {
	t.Helper()
	v, err := vehicle.NewVehicle(customerID, testIdentification(t), 42000, "")
	require.NoError(t, err)
	return v
}

func mustMoney(t *testing.T, amount int64) kernel.Money {
	t.Helper()
	money, err := kernel.NewMoney(decimal.NewFromInt(amount), kernel.DefaultCurrency)
	require.NoError(t, err)
	return money
}

// deliveredWorkOrder restores a delivered work order whose approved quote
// totals exactly amount.
func deliveredWorkOrder(t *testing.T, customerID, vehicleID kernel.UUID, amount int64) *workorder.WorkOrder {
	t.Helper()

	item, err := workorder.NewLineItem("Full service", 1, mustMoney(t, amount), "", false)
	require.NoError(t, err)

	zeroLabor, err := kernel.ZeroMoney(kernel.DefaultCurrency)
	require.NoError(t, err)

	created := time.Now().UTC().AddDate(0, -1, 0)
	approvedAt := created.AddDate(0, 0, 2)
	completedAt := created.AddDate(0, 0, 7)

	quote, err := workorder.RestoreQuote(
		kernel.NewUUID(), created, approvedAt, false,
		[]workorder.LineItem{item}, decimal.Zero, zeroLabor,
		created.AddDate(0, 0, 30), true, &approvedAt, "Maria Souza", "")
	require.NoError(t, err)

	w, err := workorder.RestoreWorkOrder(
		kernel.NewUUID(), created, completedAt, false,
		customerID, vehicleID,
		"Full service", workorder.ServiceTypeMaintenance, workorder.ServicePriorityNormal,
		workorder.StatusDelivered, created, nil, &completedAt, quote,
		"", "", "front desk", "Carlos")
	require.NoError(t, err)
	return w
}

func TestCustomerService_CanCreateCustomerWithEmail(t *testing.T) {
	ctx := t.Context()

	t.Run("should report creatable when the email is unused", func(t *testing.T) {
		customers := new(MockCustomerRepository)
		customers.On("ExistsWithEmail", ctx, "maria@example.com").Return(false, nil).Once()

		service := services.NewCustomerService(customers, new(MockVehicleRepository))
		ok, err := service.CanCreateCustomerWithEmail(ctx, "maria@example.com")

		require.NoError(t, err)
		assert.True(t, ok)
		customers.AssertExpectations(t)
	})

	t.Run("should report not creatable when the email is taken", func(t *testing.T) {
		customers := new(MockCustomerRepository)
		customers.On("ExistsWithEmail", ctx, "maria@example.com").Return(true, nil).Once()

		service := services.NewCustomerService(customers, new(MockVehicleRepository))
		ok, err := service.CanCreateCustomerWithEmail(ctx, "maria@example.com")

		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("should report not creatable for a blank email without hitting storage", func(t *testing.T) {
		customers := new(MockCustomerRepository)

		service := services.NewCustomerService(customers, new(MockVehicleRepository))
		ok, err := service.CanCreateCustomerWithEmail(ctx, "   ")

		require.NoError(t, err)
		assert.False(t, ok)
		customers.AssertExpectations(t)
	})
}

func TestCustomerService_RegisterNewCustomer(t *testing.T) {
	ctx := t.Context()

	t.Run("should register a customer without a vehicle", func(t *testing.T) {
		customers := new(MockCustomerRepository)
		vehicles := new(MockVehicleRepository)
		mock.InOrder(
			customers.On("ExistsWithEmail", ctx, "maria@example.com").Return(false, nil).Once(),
			customers.On("Add", ctx, mock.AnythingOfType("*customer.Customer")).Return(nil).Once(),
		)

		service := services.NewCustomerService(customers, vehicles)
		registered, err := service.RegisterNewCustomer(ctx, testContact(t), "email", nil)

		require.NoError(t, err)
		require.NotNil(t, registered)
		assert.True(t, registered.IsActive())
		assert.Zero(t, registered.VehicleCount())
		assert.True(t, registered.HasDomainEvents())
		customers.AssertExpectations(t)
		vehicles.AssertExpectations(t)
	})

	t.Run("should register the first vehicle in the same operation", func(t *testing.T) {
		customers := new(MockCustomerRepository)
		vehicles := new(MockVehicleRepository)
		mock.InOrder(
			customers.On("ExistsWithEmail", ctx, "maria@example.com").Return(false, nil).Once(),
			customers.On("Add", ctx, mock.AnythingOfType("*customer.Customer")).Return(nil).Once(),
			vehicles.On("Add", ctx, mock.AnythingOfType("*vehicle.Vehicle")).Return(nil).Once(),
			customers.On("Update", ctx, mock.AnythingOfType("*customer.Customer")).Return(nil).Once(),
		)

		identification := testIdentification(t)
		service := services.NewCustomerService(customers, vehicles)
		registered, err := service.RegisterNewCustomer(ctx, testContact(t), "email", &identification)

		require.NoError(t, err)
		assert.Equal(t, 1, registered.VehicleCount())
		customers.AssertExpectations(t)
		vehicles.AssertExpectations(t)
	})

	t.Run("should fail when the email is already registered", func(t *testing.T) {
		customers := new(MockCustomerRepository)
		customers.On("ExistsWithEmail", ctx, "maria@example.com").Return(true, nil).Once()

		service := services.NewCustomerService(customers, new(MockVehicleRepository))
		registered, err := service.RegisterNewCustomer(ctx, testContact(t), "email", nil)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrObjectAlreadyExists)
		assert.Nil(t, registered)
	})

	t.Run("should propagate storage failures", func(t *testing.T) {
		customers := new(MockCustomerRepository)
		mock.InOrder(
			customers.On("ExistsWithEmail", ctx, "maria@example.com").Return(false, nil).Once(),
			customers.On("Add", ctx, mock.AnythingOfType("*customer.Customer")).
				Return(errors.New("add error")).Once(),
		)

		service := services.NewCustomerService(customers, new(MockVehicleRepository))
		_, err := service.RegisterNewCustomer(ctx, testContact(t), "email", nil)

		require.Error(t, err)
	})
}

func TestCustomerService_TransferVehicle(t *testing.T) {
	ctx := t.Context()

	t.Run("should move the vehicle and keep both owners consistent", func(t *testing.T) {
		oldOwner := newTestCustomer(t)
		newOwner := newTestCustomer(t)
		transferred := newTestVehicle(t, oldOwner.ID())
		require.NoError(t, oldOwner.AddVehicle(transferred.ID()))

		customers := new(MockCustomerRepository)
		vehicles := new(MockVehicleRepository)
		vehicles.On("Get", ctx, transferred.ID()).Return(transferred, nil).Once()
		customers.On("Get", ctx, newOwner.ID()).Return(newOwner, nil).Once()
		customers.On("Get", ctx, oldOwner.ID()).Return(oldOwner, nil).Once()
		customers.On("Update", ctx, oldOwner).Return(nil).Once()
		vehicles.On("Update", ctx, transferred).Return(nil).Once()
		customers.On("Update", ctx, newOwner).Return(nil).Once()

		service := services.NewCustomerService(customers, vehicles)
		err := service.TransferVehicle(ctx, transferred.ID(), newOwner.ID())

		require.NoError(t, err)
		assert.True(t, transferred.CustomerID().IsEqual(newOwner.ID()))
		assert.False(t, oldOwner.OwnsVehicle(transferred.ID()))
		assert.True(t, newOwner.OwnsVehicle(transferred.ID()))
		customers.AssertExpectations(t)
		vehicles.AssertExpectations(t)
	})

	t.Run("should tolerate a missing previous owner", func(t *testing.T) {
		oldOwnerID := kernel.NewUUID()
		newOwner := newTestCustomer(t)
		transferred := newTestVehicle(t, oldOwnerID)

		customers := new(MockCustomerRepository)
		vehicles := new(MockVehicleRepository)
		vehicles.On("Get", ctx, transferred.ID()).Return(transferred, nil).Once()
		customers.On("Get", ctx, newOwner.ID()).Return(newOwner, nil).Once()
		customers.On("Get", ctx, oldOwnerID).
			Return(nil, errs.NewObjectNotFoundError("customer", oldOwnerID.String())).Once()
		vehicles.On("Update", ctx, transferred).Return(nil).Once()
		customers.On("Update", ctx, newOwner).Return(nil).Once()

		service := services.NewCustomerService(customers, vehicles)
		err := service.TransferVehicle(ctx, transferred.ID(), newOwner.ID())

		require.NoError(t, err)
		assert.True(t, newOwner.OwnsVehicle(transferred.ID()))
	})

	t.Run("should fail when the vehicle does not exist", func(t *testing.T) {
		vehicleID := kernel.NewUUID()
		vehicles := new(MockVehicleRepository)
		vehicles.On("Get", ctx, vehicleID).
			Return(nil, errs.NewObjectNotFoundError("vehicle", vehicleID.String())).Once()

		service := services.NewCustomerService(new(MockCustomerRepository), vehicles)
		err := service.TransferVehicle(ctx, vehicleID, kernel.NewUUID())

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})

	t.Run("should fail when the new owner does not exist", func(t *testing.T) {
		owner := newTestCustomer(t)
		transferred := newTestVehicle(t, owner.ID())
		newOwnerID := kernel.NewUUID()

		customers := new(MockCustomerRepository)
		vehicles := new(MockVehicleRepository)
		vehicles.On("Get", ctx, transferred.ID()).Return(transferred, nil).Once()
		customers.On("Get", ctx, newOwnerID).
			Return(nil, errs.NewObjectNotFoundError("customer", newOwnerID.String())).Once()

		service := services.NewCustomerService(customers, vehicles)
		err := service.TransferVehicle(ctx, transferred.ID(), newOwnerID)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})
}

func TestCustomerService_CalculateLoyaltyScore(t *testing.T) {
	service := services.NewCustomerService(new(MockCustomerRepository), new(MockVehicleRepository))

	history := func(t *testing.T, c *customer.Customer, count int, amountEach int64) []*workorder.WorkOrder {
		t.Helper()
		vehicleID := kernel.NewUUID()
		orders := make([]*workorder.WorkOrder, 0, count)
		for range count {
			orders = append(orders, deliveredWorkOrder(t, c.ID(), vehicleID, amountEach))
		}
		return orders
	}

	t.Run("should score platinum at ten delivered orders and R$ 10000 spent", func(t *testing.T) {
		c := newTestCustomer(t)

		score, err := service.CalculateLoyaltyScore(c, history(t, c, 10, 1000))

		require.NoError(t, err)
		assert.Equal(t, services.LoyaltyPlatinum, score.Level)
		assert.Equal(t, 10, score.CompletedServices)
		assert.True(t, score.TotalSpent.Amount().Equal(decimal.NewFromInt(10000)))
		assert.True(t, score.DiscountPercentage().Equal(decimal.NewFromInt(15)))
	})

	t.Run("should score gold at five delivered orders and R$ 5000 spent", func(t *testing.T) {
		c := newTestCustomer(t)

		score, err := service.CalculateLoyaltyScore(c, history(t, c, 5, 1000))

		require.NoError(t, err)
		assert.Equal(t, services.LoyaltyGold, score.Level)
		assert.True(t, score.DiscountPercentage().Equal(decimal.NewFromInt(10)))
	})

	t.Run("should score silver at three delivered orders and R$ 2000 spent", func(t *testing.T) {
		c := newTestCustomer(t)

		score, err := service.CalculateLoyaltyScore(c, history(t, c, 3, 700))

		require.NoError(t, err)
		assert.Equal(t, services.LoyaltySilver, score.Level)
		assert.True(t, score.DiscountPercentage().Equal(decimal.NewFromInt(5)))
	})

	t.Run("should score bronze when the order count is below the silver threshold", func(t *testing.T) {
		c := newTestCustomer(t)

		score, err := service.CalculateLoyaltyScore(c, history(t, c, 2, 5000))

		require.NoError(t, err)
		assert.Equal(t, services.LoyaltyBronze, score.Level)
		assert.True(t, score.DiscountPercentage().IsZero())
	})

	t.Run("should score bronze when spending is below the silver threshold", func(t *testing.T) {
		c := newTestCustomer(t)

		score, err := service.CalculateLoyaltyScore(c, history(t, c, 4, 100))

		require.NoError(t, err)
		assert.Equal(t, services.LoyaltyBronze, score.Level)
	})

	t.Run("should ignore orders that were not delivered", func(t *testing.T) {
		c := newTestCustomer(t)
		open, err := workorder.NewWorkOrder(
			c.ID(), kernel.NewUUID(), "Oil change",
			workorder.ServiceTypeMaintenance, workorder.ServicePriorityNormal,
			time.Now().UTC(), "front desk", "")
		require.NoError(t, err)

		score, err := service.CalculateLoyaltyScore(c, []*workorder.WorkOrder{open})

		require.NoError(t, err)
		assert.Zero(t, score.CompletedServices)
		assert.True(t, score.TotalSpent.IsZero())
	})

	t.Run("should count vehicles on the customer", func(t *testing.T) {
		c := newTestCustomer(t)
		require.NoError(t, c.AddVehicle(kernel.NewUUID()))
		require.NoError(t, c.AddVehicle(kernel.NewUUID()))

		score, err := service.CalculateLoyaltyScore(c, nil)

		require.NoError(t, err)
		assert.Equal(t, 2, score.VehicleCount)
	})
}

func TestCustomerService_IsVipCustomer(t *testing.T) {
	service := services.NewCustomerService(new(MockCustomerRepository), new(MockVehicleRepository))

	assert.True(t, service.IsVipCustomer(services.LoyaltyScore{Level: services.LoyaltyPlatinum}))
	assert.True(t, service.IsVipCustomer(services.LoyaltyScore{Level: services.LoyaltyGold}))
	assert.False(t, service.IsVipCustomer(services.LoyaltyScore{Level: services.LoyaltySilver}))
	assert.False(t, service.IsVipCustomer(services.LoyaltyScore{Level: services.LoyaltyBronze}))
}
