package library

import (
	"context"

	"github.com/virtwire/vsphere-go-sdk/pkg/payloads"
)

//go:generate mockgen --build_flags=--mod=mod --destination mock/contentlibrary.go . ContentLibrary

type ContentLibrary interface {
	List(ctx context.Context) ([]payloads.ContentLibrary, error)
	ListItems(ctx context.Context, lib payloads.ContentLibrary) ([]payloads.ContentLibraryItem, error)
}
