/*
Library is the registry contract: one interface per vSphere object type,
each implemented by a service under pkg/services and wired together by
the vsphere package. The interface contract is enough to use a service;
mocks are generated from the same files for callers that test against
the SDK.
*/
package library

import "context"

type Library interface {
	VM() VM
	Snapshot() Snapshot
	Task() Task
	Tag() Tag
	ContentLibrary() ContentLibrary
	// Logout ends the API sessions. The services are unusable afterwards.
	Logout(ctx context.Context) error
}
