// Package services provides domain services that orchestrate business
// operations across multiple aggregates.
//
// The package includes:
//   - EarningsLedger: credits courier earnings when a delivery completes
//
// Domain services hold the rules that span the Order and Account aggregates
// and therefore belong to neither of them alone.
package services
