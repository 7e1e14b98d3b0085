// Package http exposes the workshop use cases over a JSON REST API.
// It coordinates between echo handlers and the application's command and
// query handlers; no business rules live here.
package http

import (
	"errors"
	"net/http"
	"time"

	"workshop/internal/core/application/usecases/commands"
	"workshop/internal/core/application/usecases/queries"
	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/core/domain/model/vehicle"
	"workshop/internal/core/domain/model/workorder"
	"workshop/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

// Server wires HTTP endpoints to application use cases.
type Server struct {
	// Command handlers
	registerCustomerHandler commands.RegisterCustomerCommandHandler
	transferVehicleHandler  commands.TransferVehicleCommandHandler
	createWorkOrderHandler  commands.CreateWorkOrderCommandHandler
	proposeQuoteHandler     commands.ProposeQuoteCommandHandler
	approveQuoteHandler     commands.ApproveQuoteCommandHandler
	rejectQuoteHandler      commands.RejectQuoteCommandHandler

	// Query handlers
	activeCustomersHandler     queries.GetActiveCustomersQueryHandler
	activeWorkOrdersHandler    queries.GetActiveWorkOrdersQueryHandler
	workOrderStatisticsHandler queries.GetWorkOrderStatisticsQueryHandler
}

// NewServer creates a new HTTP server with the required command and query
// handlers.
func NewServer(
	registerCustomerHandler commands.RegisterCustomerCommandHandler,
	transferVehicleHandler commands.TransferVehicleCommandHandler,
	createWorkOrderHandler commands.CreateWorkOrderCommandHandler,
	proposeQuoteHandler commands.ProposeQuoteCommandHandler,
	approveQuoteHandler commands.ApproveQuoteCommandHandler,
	rejectQuoteHandler commands.RejectQuoteCommandHandler,
	activeCustomersHandler queries.GetActiveCustomersQueryHandler,
	activeWorkOrdersHandler queries.GetActiveWorkOrdersQueryHandler,
	workOrderStatisticsHandler queries.GetWorkOrderStatisticsQueryHandler,
) *Server {
	return &Server{
		registerCustomerHandler:    registerCustomerHandler,
		transferVehicleHandler:     transferVehicleHandler,
		createWorkOrderHandler:     createWorkOrderHandler,
		proposeQuoteHandler:        proposeQuoteHandler,
		approveQuoteHandler:        approveQuoteHandler,
		rejectQuoteHandler:         rejectQuoteHandler,
		activeCustomersHandler:     activeCustomersHandler,
		activeWorkOrdersHandler:    activeWorkOrdersHandler,
		workOrderStatisticsHandler: workOrderStatisticsHandler,
	}
}

// RegisterRoutes attaches every endpoint to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/customers", s.RegisterCustomer)
	api.GET("/customers", s.GetActiveCustomers)
	api.POST("/vehicles/:id/transfer", s.TransferVehicle)
	api.POST("/work-orders", s.CreateWorkOrder)
	api.POST("/work-orders/:id/quote", s.ProposeQuote)
	api.POST("/work-orders/:id/quote/approve", s.ApproveQuote)
	api.POST("/work-orders/:id/quote/reject", s.RejectQuote)
	api.GET("/work-orders/board", s.GetWorkOrderBoard)
	api.GET("/work-orders/statistics", s.GetWorkOrderStatistics)
}

// ErrorResponse is the JSON body returned for every failed request.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// AddressRequest carries a physical address.
type AddressRequest struct {
	Street     string `json:"street"`
	City       string `json:"city"`
	State      string `json:"state"`
	PostalCode string `json:"postalCode"`
	Country    string `json:"country"`
}

// VehicleRequest carries the identification of a vehicle to register.
type VehicleRequest struct {
	Vin          string `json:"vin"`
	LicensePlate string `json:"licensePlate"`
	Make         string `json:"make"`
	Model        string `json:"model"`
	Year         int    `json:"year"`
	Color        string `json:"color"`
}

// RegisterCustomerRequest is the body of POST /api/v1/customers.
type RegisterCustomerRequest struct {
	FullName               string          `json:"fullName"`
	Email                  string          `json:"email"`
	PhoneNumber            string          `json:"phoneNumber"`
	Address                AddressRequest  `json:"address"`
	PreferredContactMethod string          `json:"preferredContactMethod"`
	FirstVehicle           *VehicleRequest `json:"firstVehicle,omitempty"`
}

// RegisterCustomer handles POST /api/v1/customers - registers a new
// customer, optionally together with their first vehicle.
func (s *Server) RegisterCustomer(ctx echo.Context) error {
	var request RegisterCustomerRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	address, err := kernel.NewAddress(
		request.Address.Street, request.Address.City, request.Address.State,
		request.Address.PostalCode, request.Address.Country)
	if err != nil {
		return badRequest(ctx, "Invalid address: "+err.Error())
	}

	contact, err := kernel.NewContactInformation(
		request.FullName, request.Email, request.PhoneNumber, address)
	if err != nil {
		return badRequest(ctx, "Invalid contact information: "+err.Error())
	}

	var firstVehicle *vehicle.Identification
	if request.FirstVehicle != nil {
		identification, idErr := identificationFromRequest(*request.FirstVehicle)
		if idErr != nil {
			return badRequest(ctx, "Invalid vehicle: "+idErr.Error())
		}
		firstVehicle = &identification
	}

	cmd, err := commands.NewRegisterCustomerCommand(contact, request.PreferredContactMethod, firstVehicle)
	if err != nil {
		return badRequest(ctx, "Invalid customer data: "+err.Error())
	}

	if handleErr := s.registerCustomerHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return commandError(ctx, handleErr, "Failed to register customer")
	}

	return ctx.NoContent(http.StatusCreated)
}

// CustomerRow is one row of GET /api/v1/customers.
type CustomerRow struct {
	ID                     string    `json:"id"`
	FullName               string    `json:"fullName"`
	Email                  string    `json:"email"`
	PhoneNumber            string    `json:"phoneNumber"`
	PreferredContactMethod string    `json:"preferredContactMethod"`
	DateRegistered         time.Time `json:"dateRegistered"`
	VehicleCount           int       `json:"vehicleCount"`
}

// GetActiveCustomers handles GET /api/v1/customers - lists the active
// customer directory.
func (s *Server) GetActiveCustomers(ctx echo.Context) error {
	query := queries.NewGetActiveCustomersQuery()

	directory, err := s.activeCustomersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, ErrorResponse{
			Code:    http.StatusInternalServerError,
			Message: "Failed to retrieve customers",
		})
	}

	response := make([]CustomerRow, len(directory))
	for i, row := range directory {
		response[i] = CustomerRow{
			ID:                     row.ID.String(),
			FullName:               row.FullName,
			Email:                  row.Email,
			PhoneNumber:            row.PhoneNumber,
			PreferredContactMethod: row.PreferredContactMethod,
			DateRegistered:         row.DateRegistered,
			VehicleCount:           row.VehicleCount,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// TransferVehicleRequest is the body of POST /api/v1/vehicles/:id/transfer.
type TransferVehicleRequest struct {
	NewCustomerID string `json:"newCustomerId"`
}

// TransferVehicle handles POST /api/v1/vehicles/:id/transfer - moves a
// vehicle to a different owner.
func (s *Server) TransferVehicle(ctx echo.Context) error {
	vehicleID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid vehicle id")
	}

	var request TransferVehicleRequest
	if err = ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	newCustomerID, err := kernel.UUIDFromString(request.NewCustomerID)
	if err != nil {
		return badRequest(ctx, "Invalid customer id")
	}

	cmd, err := commands.NewTransferVehicleCommand(vehicleID, newCustomerID)
	if err != nil {
		return badRequest(ctx, "Invalid transfer data: "+err.Error())
	}

	if handleErr := s.transferVehicleHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return commandError(ctx, handleErr, "Failed to transfer vehicle")
	}

	return ctx.NoContent(http.StatusOK)
}

// CreateWorkOrderRequest is the body of POST /api/v1/work-orders.
type CreateWorkOrderRequest struct {
	CustomerID         string    `json:"customerId"`
	VehicleID          string    `json:"vehicleId"`
	ServiceDescription string    `json:"serviceDescription"`
	ServiceType        string    `json:"serviceType"`
	Priority           string    `json:"priority"`
	RequestedDate      time.Time `json:"requestedDate"`
	CreatedBy          string    `json:"createdBy"`
	CustomerNotes      string    `json:"customerNotes"`
}

// CreateWorkOrder handles POST /api/v1/work-orders - opens a Draft work
// order for a customer's vehicle.
func (s *Server) CreateWorkOrder(ctx echo.Context) error {
	var request CreateWorkOrderRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	customerID, err := kernel.UUIDFromString(request.CustomerID)
	if err != nil {
		return badRequest(ctx, "Invalid customer id")
	}
	vehicleID, err := kernel.UUIDFromString(request.VehicleID)
	if err != nil {
		return badRequest(ctx, "Invalid vehicle id")
	}

	serviceType, err := workorder.ServiceTypeFromString(request.ServiceType)
	if err != nil {
		return badRequest(ctx, "Invalid service type: "+err.Error())
	}
	priority, err := workorder.ServicePriorityFromString(request.Priority)
	if err != nil {
		return badRequest(ctx, "Invalid priority: "+err.Error())
	}

	cmd, err := commands.NewCreateWorkOrderCommand(
		customerID, vehicleID, request.ServiceDescription,
		serviceType, priority, request.RequestedDate,
		request.CreatedBy, request.CustomerNotes)
	if err != nil {
		return badRequest(ctx, "Invalid work order data: "+err.Error())
	}

	if handleErr := s.createWorkOrderHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return commandError(ctx, handleErr, "Failed to create work order")
	}

	return ctx.NoContent(http.StatusCreated)
}

// LineItemRequest carries one priced quote line.
type LineItemRequest struct {
	Description string          `json:"description"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
	PartNumber  string          `json:"partNumber"`
	IsLabor     bool            `json:"isLabor"`
}

// ProposeQuoteRequest is the body of POST /api/v1/work-orders/:id/quote.
type ProposeQuoteRequest struct {
	LineItems        []LineItemRequest `json:"lineItems"`
	EstimatedHours   decimal.Decimal   `json:"estimatedHours"`
	LaborRatePerHour decimal.Decimal   `json:"laborRatePerHour"`
	Currency         string            `json:"currency"`
	ValidityDays     int               `json:"validityDays"`
	Notes            string            `json:"notes"`
}

// ProposeQuote handles POST /api/v1/work-orders/:id/quote - proposes a
// quote and moves the work order to AwaitingApproval.
func (s *Server) ProposeQuote(ctx echo.Context) error {
	workOrderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid work order id")
	}

	var request ProposeQuoteRequest
	if err = ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	laborRate, err := kernel.NewMoney(request.LaborRatePerHour, request.Currency)
	if err != nil {
		return badRequest(ctx, "Invalid labor rate: "+err.Error())
	}

	lineItems := make([]workorder.LineItem, 0, len(request.LineItems))
	for _, itemRequest := range request.LineItems {
		unitPrice, priceErr := kernel.NewMoney(itemRequest.UnitPrice, request.Currency)
		if priceErr != nil {
			return badRequest(ctx, "Invalid unit price: "+priceErr.Error())
		}

		item, itemErr := workorder.NewLineItem(
			itemRequest.Description, itemRequest.Quantity, unitPrice,
			itemRequest.PartNumber, itemRequest.IsLabor)
		if itemErr != nil {
			return badRequest(ctx, "Invalid line item: "+itemErr.Error())
		}
		lineItems = append(lineItems, item)
	}

	validityDays := request.ValidityDays
	if validityDays == 0 {
		validityDays = workorder.DefaultValidityDays
	}

	cmd, err := commands.NewProposeQuoteCommand(
		workOrderID, lineItems, request.EstimatedHours, laborRate, validityDays, request.Notes)
	if err != nil {
		return badRequest(ctx, "Invalid quote data: "+err.Error())
	}

	if handleErr := s.proposeQuoteHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return commandError(ctx, handleErr, "Failed to propose quote")
	}

	return ctx.NoContent(http.StatusCreated)
}

// ApproveQuoteRequest is the body of POST /api/v1/work-orders/:id/quote/approve.
type ApproveQuoteRequest struct {
	CustomerSignature string `json:"customerSignature"`
}

// ApproveQuote handles POST /api/v1/work-orders/:id/quote/approve - records
// the customer's approval of the proposed quote.
func (s *Server) ApproveQuote(ctx echo.Context) error {
	workOrderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid work order id")
	}

	var request ApproveQuoteRequest
	if err = ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewApproveQuoteCommand(workOrderID, request.CustomerSignature)
	if err != nil {
		return badRequest(ctx, "Invalid approval data: "+err.Error())
	}

	if handleErr := s.approveQuoteHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return commandError(ctx, handleErr, "Failed to approve quote")
	}

	return ctx.NoContent(http.StatusOK)
}

// RejectQuoteRequest is the body of POST /api/v1/work-orders/:id/quote/reject.
type RejectQuoteRequest struct {
	RejectionReason string `json:"rejectionReason"`
}

// RejectQuote handles POST /api/v1/work-orders/:id/quote/reject - records
// the customer's rejection of the proposed quote.
func (s *Server) RejectQuote(ctx echo.Context) error {
	workOrderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid work order id")
	}

	var request RejectQuoteRequest
	if err = ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewRejectQuoteCommand(workOrderID, request.RejectionReason)
	if err != nil {
		return badRequest(ctx, "Invalid rejection data: "+err.Error())
	}

	if handleErr := s.rejectQuoteHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return commandError(ctx, handleErr, "Failed to reject quote")
	}

	return ctx.NoContent(http.StatusOK)
}

// WorkOrderBoardRow is one row of GET /api/v1/work-orders/board.
type WorkOrderBoardRow struct {
	ID                 string    `json:"id"`
	Status             string    `json:"status"`
	ServiceType        string    `json:"serviceType"`
	Priority           string    `json:"priority"`
	ServiceDescription string    `json:"serviceDescription"`
	CustomerName       string    `json:"customerName"`
	LicensePlate       string    `json:"licensePlate"`
	RequestedDate      time.Time `json:"requestedDate"`
	AssignedTechnician string    `json:"assignedTechnician,omitempty"`
}

// GetWorkOrderBoard handles GET /api/v1/work-orders/board - retrieves the
// active work orders, most urgent first.
func (s *Server) GetWorkOrderBoard(ctx echo.Context) error {
	query := queries.NewGetActiveWorkOrdersQuery()

	board, err := s.activeWorkOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, ErrorResponse{
			Code:    http.StatusInternalServerError,
			Message: "Failed to retrieve the work order board",
		})
	}

	response := make([]WorkOrderBoardRow, len(board))
	for i, row := range board {
		response[i] = WorkOrderBoardRow{
			ID:                 row.ID.String(),
			Status:             row.Status,
			ServiceType:        row.ServiceType,
			Priority:           row.Priority,
			ServiceDescription: row.ServiceDescription,
			CustomerName:       row.CustomerName,
			LicensePlate:       row.LicensePlate,
			RequestedDate:      row.RequestedDate,
			AssignedTechnician: row.AssignedTechnician,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// WorkOrderStatisticsResponse is the body of GET /api/v1/work-orders/statistics.
type WorkOrderStatisticsResponse struct {
	TotalWorkOrders     int             `json:"totalWorkOrders"`
	ActiveWorkOrders    int             `json:"activeWorkOrders"`
	DeliveredWorkOrders int             `json:"deliveredWorkOrders"`
	StatusCounts        map[string]int  `json:"statusCounts"`
	ServiceTypeCounts   map[string]int  `json:"serviceTypeCounts"`
	PriorityCounts      map[string]int  `json:"priorityCounts"`
	TotalRevenue        decimal.Decimal `json:"totalRevenue"`
}

// GetWorkOrderStatistics handles GET /api/v1/work-orders/statistics.
// Optional from/to query parameters (RFC 3339) bound the creation range.
func (s *Server) GetWorkOrderStatistics(ctx echo.Context) error {
	from, err := parseTimeParam(ctx.QueryParam("from"))
	if err != nil {
		return badRequest(ctx, "Invalid from parameter")
	}
	to, err := parseTimeParam(ctx.QueryParam("to"))
	if err != nil {
		return badRequest(ctx, "Invalid to parameter")
	}

	query, err := queries.NewGetWorkOrderStatisticsQuery(from, to)
	if err != nil {
		return badRequest(ctx, "Invalid range: "+err.Error())
	}

	stats, err := s.workOrderStatisticsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, ErrorResponse{
			Code:    http.StatusInternalServerError,
			Message: "Failed to retrieve statistics",
		})
	}

	return ctx.JSON(http.StatusOK, WorkOrderStatisticsResponse{
		TotalWorkOrders:     stats.TotalWorkOrders,
		ActiveWorkOrders:    stats.ActiveWorkOrders,
		DeliveredWorkOrders: stats.DeliveredWorkOrders,
		StatusCounts:        stats.StatusCounts,
		ServiceTypeCounts:   stats.ServiceTypeCounts,
		PriorityCounts:      stats.PriorityCounts,
		TotalRevenue:        stats.TotalRevenue,
	})
}

func identificationFromRequest(request VehicleRequest) (vehicle.Identification, error) {
	plate, err := vehicle.NewLicensePlate(request.LicensePlate)
	if err != nil {
		return vehicle.Identification{}, err
	}

	return vehicle.NewIdentification(
		request.Vin, plate, request.Make, request.Model, request.Year, request.Color)
}

func parseTimeParam(raw string) (time.Time, error) {
	if raw == "" {
		return time.Time{}, nil
	}
	return time.Parse(time.RFC3339, raw)
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, ErrorResponse{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

// commandError maps domain errors to HTTP statuses: missing objects to 404,
// duplicates and state conflicts to 409, validation failures to 400,
// everything else to 500.
func commandError(ctx echo.Context, err error, fallback string) error {
	status := http.StatusInternalServerError
	message := fallback

	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		status = http.StatusNotFound
		message = err.Error()
	case errors.Is(err, errs.ErrObjectAlreadyExists), errors.Is(err, errs.ErrInvalidState):
		status = http.StatusConflict
		message = err.Error()
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		status = http.StatusBadRequest
		message = err.Error()
	}

	return ctx.JSON(status, ErrorResponse{Code: status, Message: message})
}
