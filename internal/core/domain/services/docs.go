// Package services provides domain services that work across more than one
// aggregate of the kitchen model.
//
// The package includes:
//   - StationRouter: resolves the station an incoming order line is cooked at
package services
