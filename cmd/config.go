package cmd

// Config carries the process configuration read from the environment.
// ExchangeDir is optional: when empty the file-exchange transport is not
// started and the service is reachable over HTTP only.
type Config struct {
	HTTPPort    string
	ExchangeDir string
}
