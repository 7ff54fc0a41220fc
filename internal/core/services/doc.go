// Package services implements the driving port interfaces.
// Services contain the core measurement logic - wall topology, boundary
// tracing, area and material calculation, validation - and orchestrate
// calls to driven ports (price book, config store).
//
// Services are pure Go with no CGO dependencies.
package services
