// Package settings holds the per-hub configuration of the kitchen display.
//
// There is exactly one Settings per hub. It is created with defaults on first
// access and only changes through explicit saves: a partial Patch, a single
// boolean toggle, a single number, or a reset to defaults. The settable fields
// form a closed set (BoolField and NumberField); unknown names are rejected
// with a validation error instead of being silently ignored.
package settings
