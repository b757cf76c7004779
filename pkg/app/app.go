// Package app defines the runtime contract shared by cmd/* entrypoints
// (API server, migration runner) so they can start application components
// without depending on their concrete implementations.
package app

// Runner represents a runnable application component.
type Runner interface {
	Run() error
}
