// Package check contains the individual style rules for commitkit.
// Each type implements the checker interface defined in linter.go.
// These types can be used directly, but the recommended approach is
// to use the fluent builder API from the github.com/optimode/commitkit package.
package check
