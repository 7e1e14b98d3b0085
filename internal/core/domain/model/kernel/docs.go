// Package kernel provides core domain primitives shared by every aggregate in
// the workshop front office: identifiers, monetary values, contact data, and
// the entity/aggregate-root base types.
//
// The package includes:
//   - UUID: a time-ordered unique identifier with validation and comparison
//   - Money: a two-decimal, single-currency monetary value
//   - Address and ContactInformation: normalized customer contact data
//   - Entity and AggregateRoot: identity, timestamps, soft delete, and the
//     domain-event buffer
//
// These primitives enforce domain invariants and validation rules, ensuring
// that domain objects are always in a valid state. They are immutable where
// value semantics apply and must be created through their constructors; zero
// values fail validation.
package kernel
