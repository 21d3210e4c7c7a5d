package core

import (
	"errors"
	"fmt"
)

// MissingParameterError reports a required connection or lookup parameter
// that was left empty. Each missing parameter raises its own error so the
// caller knows exactly which one to set.
type MissingParameterError struct {
	Parameter string
	EnvVar    string
}

func NewMissingParameterError(parameter, envVar string) *MissingParameterError {
	return &MissingParameterError{Parameter: parameter, EnvVar: envVar}
}

func (e *MissingParameterError) Error() string {
	if e.EnvVar == "" {
		return fmt.Sprintf("required parameter %q is not set", e.Parameter)
	}
	return fmt.Sprintf("required parameter %q is not set, specify it or export %s", e.Parameter, e.EnvVar)
}

func IsMissingParameterError(err error) bool {
	var target *MissingParameterError
	return errors.As(err, &target)
}

// ApiAccessError covers everything that keeps us from talking to the API:
// unreachable endpoint, certificate verification failure, rejected login,
// or a surface the server does not offer.
type ApiAccessError struct {
	Endpoint string
	Reason   string
	Err      error
}

func NewApiAccessError(endpoint, reason string, err error) *ApiAccessError {
	return &ApiAccessError{Endpoint: endpoint, Reason: reason, Err: err}
}

func (e *ApiAccessError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Reason, e.Err)
	}
	return e.Reason
}

func (e *ApiAccessError) Unwrap() error { return e.Err }

func IsApiAccessError(err error) bool {
	var target *ApiAccessError
	return errors.As(err, &target)
}

// SnapshotNotFoundError is raised when a snapshot selector resolves to
// anything other than exactly one snapshot. Zero matches and several
// matches land here together: a duplicated name cannot identify a
// snapshot any better than a name that does not exist. Selector is the
// name or id the caller asked for, rendered as text.
type SnapshotNotFoundError struct {
	Selector string
	VM       string
	Matches  int
}

func NewSnapshotNotFoundError(selector, vm string) *SnapshotNotFoundError {
	return &SnapshotNotFoundError{Selector: selector, VM: vm}
}

func NewAmbiguousSnapshotError(selector, vm string, matches int) *SnapshotNotFoundError {
	return &SnapshotNotFoundError{Selector: selector, VM: vm, Matches: matches}
}

func (e *SnapshotNotFoundError) Error() string {
	if e.Matches > 1 {
		return fmt.Sprintf("couldn't find any snapshots with specified name: %s on VM: %s (%d snapshots share this name)", e.Selector, e.VM, e.Matches)
	}
	return fmt.Sprintf("couldn't find any snapshots with specified name: %s on VM: %s", e.Selector, e.VM)
}

func IsSnapshotNotFoundError(err error) bool {
	var target *SnapshotNotFoundError
	return errors.As(err, &target)
}

// TaskError reports a vSphere task that reached a terminal failure state.
// Msg carries the fault message from the task result verbatim.
type TaskError struct {
	Task string
	Msg  string
	Err  error
}

func NewTaskError(task, msg string, err error) *TaskError {
	return &TaskError{Task: task, Msg: msg, Err: err}
}

func (e *TaskError) Error() string {
	if e.Task == "" {
		return e.Msg
	}
	return fmt.Sprintf("task %s failed: %s", e.Task, e.Msg)
}

func (e *TaskError) Unwrap() error { return e.Err }

func IsTaskError(err error) bool {
	var target *TaskError
	return errors.As(err, &target)
}

// VMNotFoundError is raised when a virtual machine lookup by name, UUID
// or managed object ID finds nothing.
type VMNotFoundError struct {
	Selector string
}

func NewVMNotFoundError(selector string) *VMNotFoundError {
	return &VMNotFoundError{Selector: selector}
}

func (e *VMNotFoundError) Error() string {
	return fmt.Sprintf("unable to find virtual machine %s", e.Selector)
}

func IsVMNotFoundError(err error) bool {
	var target *VMNotFoundError
	return errors.As(err, &target)
}
