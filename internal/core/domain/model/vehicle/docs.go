// Package vehicle contains the Vehicle aggregate and its identification value
// objects. A vehicle belongs to a customer (referenced by id only), records a
// monotonically non-decreasing odometer, and keeps an append-only service
// history.
package vehicle
