package core

import "fmt"

type RetryMode int

const (
	None RetryMode = iota // specifies that no retries will be made
	// Specifies that exponential backoff will be used for transient API
	// failures. vCenter drops or resets connections while it is busy or
	// restarting its services, so round trips that only poll state can be
	// retried until the deadline. Task faults are terminal and never retried.
	Backoff
)

// ParseRetryMode maps the wire spelling of a retry mode to its value.
// An empty string selects Backoff.
func ParseRetryMode(s string) (RetryMode, error) {
	switch s {
	case "", "backoff":
		return Backoff, nil
	case "none":
		return None, nil
	default:
		return None, fmt.Errorf("unknown retry mode %q, expected none or backoff", s)
	}
}

const (
	// Managed object type names as the API spells them in references.
	VirtualMachineKind = "VirtualMachine"
	HostSystemKind     = "HostSystem"

	DefaultHTTPSPort = 443
)
