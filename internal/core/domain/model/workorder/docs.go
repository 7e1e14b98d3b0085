// Package workorder contains the WorkOrder aggregate, the central business
// transaction of the repair shop. A work order references a customer and a
// vehicle by id, walks a fixed status state machine from Draft to Delivered,
// and exclusively owns the Quote proposed for the job.
package workorder
