// Package kernel contains shared value objects used across the domain model.
//
// The kernel holds concepts that do not belong to a single aggregate:
// entity identifiers (UUID), order tracking barcodes (Barcode), and monetary
// amounts (Money). All value objects are immutable, validate themselves on
// construction, and must be created through their factory functions; zero
// values are invalid and rejected by Validate.
package kernel
