// Package app defines the contract between cmd/* binaries and the process
// they start. Subpackages hold the runners and the shared HTTP plumbing.
package app

// Runner is a long-running process. Run blocks until the process is asked
// to stop or fails.
type Runner interface {
	Run() error
}
