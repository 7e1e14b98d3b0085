// Package services contains domain services: business logic that spans
// aggregates (customer registration, vehicle transfer, loyalty scoring) or
// encodes shop-wide policy (labor rates, part markups, quote generation)
// and therefore does not belong to any single aggregate.
package services
