package library

import (
	"context"

	"github.com/virtwire/vsphere-go-sdk/pkg/payloads"
)

//go:generate mockgen --build_flags=--mod=mod --destination mock/tag.go . Tag

type Tag interface {
	// TagsForVM lists the tags attached to the virtual machine with the
	// given managed object id.
	TagsForVM(ctx context.Context, moid string) ([]payloads.Tag, error)
	// TagsForHost lists the tags attached to the host system with the
	// given managed object id.
	TagsForHost(ctx context.Context, moid string) ([]payloads.Tag, error)
}
