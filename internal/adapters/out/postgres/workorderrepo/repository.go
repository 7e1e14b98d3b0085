package workorderrepo

import (
	"context"
	"errors"
	"time"

	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/core/domain/model/workorder"
	"workshop/internal/core/ports"
	"workshop/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GormWorkOrderRepository implements WorkOrderRepository using GORM.
type GormWorkOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormWorkOrderRepository creates a new GORM work order repository.
func NewGormWorkOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormWorkOrderRepository {
	return &GormWorkOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new work order to the database, including the owned quote
// when one was already proposed.
func (r *GormWorkOrderRepository) Add(ctx context.Context, aggregate *workorder.WorkOrder) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing work order to the database. Re-proposing
// replaces the quote entity, so the previous quote rows are removed first
// and the current quote is inserted fresh.
func (r *GormWorkOrderRepository) Update(ctx context.Context, aggregate *workorder.WorkOrder) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)

	if err := r.db.WithContext(ctx).
		Where("quote_id IN (SELECT id FROM quotes WHERE work_order_id = ?)", dto.ID).
		Delete(&LineItemDTO{}).Error; err != nil {
		return err
	}
	if err := r.db.WithContext(ctx).
		Where("work_order_id = ?", dto.ID).
		Delete(&QuoteDTO{}).Error; err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Session(&gorm.Session{FullSaveAssociations: true}).Save(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a work order by ID.
func (r *GormWorkOrderRepository) Get(ctx context.Context, id kernel.UUID) (*workorder.WorkOrder, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto WorkOrderDTO
	if err := r.preloaded(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("workOrder", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByCustomer retrieves all work orders opened for a customer.
func (r *GormWorkOrderRepository) GetByCustomer(ctx context.Context, customerID kernel.UUID) ([]*workorder.WorkOrder, error) {
	if err := customerID.Validate(); err != nil {
		return nil, err
	}

	var dtos []WorkOrderDTO
	if err := r.preloaded(ctx).
		Where("customer_id = ?", customerID.Bytes()).
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

// GetByVehicle retrieves all work orders opened for a vehicle.
func (r *GormWorkOrderRepository) GetByVehicle(ctx context.Context, vehicleID kernel.UUID) ([]*workorder.WorkOrder, error) {
	if err := vehicleID.Validate(); err != nil {
		return nil, err
	}

	var dtos []WorkOrderDTO
	if err := r.preloaded(ctx).
		Where("vehicle_id = ?", vehicleID.Bytes()).
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

// GetByStatuses retrieves all work orders currently in any of the given
// statuses.
func (r *GormWorkOrderRepository) GetByStatuses(ctx context.Context, statuses []workorder.Status) ([]*workorder.WorkOrder, error) {
	names := make([]string, 0, len(statuses))
	for _, status := range statuses {
		if err := status.Validate(); err != nil {
			return nil, err
		}
		names = append(names, status.String())
	}

	var dtos []WorkOrderDTO
	if err := r.preloaded(ctx).
		Where("status IN ?", names).
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

// GetAllActive retrieves work orders that are not completed, delivered, or
// cancelled.
func (r *GormWorkOrderRepository) GetAllActive(ctx context.Context) ([]*workorder.WorkOrder, error) {
	var dtos []WorkOrderDTO
	if err := r.preloaded(ctx).
		Where("status NOT IN ?", finalStatusNames()).
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

// GetWithExpiredQuotes retrieves work orders awaiting approval whose quote
// expired before the given moment.
func (r *GormWorkOrderRepository) GetWithExpiredQuotes(ctx context.Context, now time.Time) ([]*workorder.WorkOrder, error) {
	var dtos []WorkOrderDTO
	if err := r.preloaded(ctx).
		Where("status = ?", workorder.StatusAwaitingApproval.String()).
		Where("id IN (SELECT work_order_id FROM quotes WHERE NOT is_approved AND expires_at < ?)", now).
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

// GetStatusCounts returns the number of work orders per status.
func (r *GormWorkOrderRepository) GetStatusCounts(ctx context.Context) (map[workorder.Status]int, error) {
	rows, err := r.db.WithContext(ctx).
		Model(&WorkOrderDTO{}).
		Select("status, COUNT(*)").
		Group("status").
		Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make(map[workorder.Status]int)
	for rows.Next() {
		var name string
		var count int

		if err = rows.Scan(&name, &count); err != nil {
			return nil, err
		}

		status, statusErr := workorder.StatusFromString(name)
		if statusErr != nil {
			return nil, statusErr
		}
		counts[status] = count
	}

	return counts, rows.Err()
}

// GetStatistics aggregates reporting statistics for work orders created
// within [from, to). Zero times mean an unbounded range. Revenue sums the
// approved quote totals of delivered work orders; completion days average
// the span from creation to completion.
func (r *GormWorkOrderRepository) GetStatistics(ctx context.Context, from, to time.Time) (ports.WorkOrderStatistics, error) {
	rangeFilter := `
		AND (CAST(? AS timestamptz) IS NULL OR w.created_at >= ?)
		AND (CAST(? AS timestamptz) IS NULL OR w.created_at < ?)
	`
	fromArg := nullableTime(from)
	toArg := nullableTime(to)

	var stats ports.WorkOrderStatistics
	var revenue, avgDays decimal.NullDecimal

	err := r.db.WithContext(ctx).Raw(`
		SELECT
			COUNT(*),
			COUNT(*) FILTER (WHERE w.status IN (?, ?)),
			COUNT(*) FILTER (WHERE w.status NOT IN (?, ?, ?)),
			COUNT(*) FILTER (WHERE w.status NOT IN (?, ?, ?) AND w.requested_date < ?),
			AVG(EXTRACT(EPOCH FROM (w.completed_date - w.created_at)) / 86400)
				FILTER (WHERE w.completed_date IS NOT NULL)
		FROM work_orders w
		WHERE 1=1`+rangeFilter,
		workorder.StatusCompleted.String(), workorder.StatusDelivered.String(),
		workorder.StatusCompleted.String(), workorder.StatusDelivered.String(), workorder.StatusCancelled.String(),
		workorder.StatusCompleted.String(), workorder.StatusDelivered.String(), workorder.StatusCancelled.String(),
		time.Now().UTC().Truncate(24*time.Hour),
		fromArg, fromArg, toArg, toArg,
	).Row().Scan(
		&stats.TotalWorkOrders,
		&stats.CompletedWorkOrders,
		&stats.ActiveWorkOrders,
		&stats.OverdueWorkOrders,
		&avgDays,
	)
	if err != nil {
		return ports.WorkOrderStatistics{}, err
	}

	err = r.db.WithContext(ctx).Raw(`
		SELECT SUM(q.total_amount)
		FROM work_orders w
		JOIN quotes q ON q.work_order_id = w.id
		WHERE w.status = ?
		AND q.is_approved`+rangeFilter,
		workorder.StatusDelivered.String(),
		fromArg, fromArg, toArg, toArg,
	).Row().Scan(&revenue)
	if err != nil {
		return ports.WorkOrderStatistics{}, err
	}

	stats.TotalRevenue = decimal.Zero
	if revenue.Valid {
		stats.TotalRevenue = revenue.Decimal
	}
	stats.AverageCompletionDays = decimal.Zero
	if avgDays.Valid {
		stats.AverageCompletionDays = avgDays.Decimal
	}

	return stats, nil
}

func (r *GormWorkOrderRepository) preloaded(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Preload("Quote").
		Preload("Quote.LineItems", func(db *gorm.DB) *gorm.DB {
			return db.Order("position")
		})
}

func toDomainSlice(dtos []WorkOrderDTO) ([]*workorder.WorkOrder, error) {
	workOrders := make([]*workorder.WorkOrder, 0, len(dtos))
	for _, dto := range dtos {
		w, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		workOrders = append(workOrders, w)
	}

	return workOrders, nil
}

func finalStatusNames() []string {
	return []string{
		workorder.StatusCompleted.String(),
		workorder.StatusDelivered.String(),
		workorder.StatusCancelled.String(),
	}
}

func nullableTime(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}
