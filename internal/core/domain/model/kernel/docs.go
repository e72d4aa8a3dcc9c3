// Package kernel holds the shared primitives of the kitchen domain model.
//
// UUID identifies every entity in the system: hubs (the store or location a
// record belongs to), orders, order items, stations and audit entries. It wraps
// github.com/google/uuid so that the zero value is detectable and rejected by
// Validate, which every aggregate constructor calls on the identifiers it receives.
package kernel
