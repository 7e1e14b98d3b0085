// Package customer contains the Customer aggregate: contact information,
// account activation lifecycle, and the id-only association to the vehicles
// the customer owns.
package customer
