package contentlibrary

import (
	"context"
	"fmt"

	vapilibrary "github.com/vmware/govmomi/vapi/library"
	"go.uber.org/zap"

	"github.com/virtwire/vsphere-go-sdk/client"
	"github.com/virtwire/vsphere-go-sdk/internal/common/core"
	"github.com/virtwire/vsphere-go-sdk/internal/common/logger"
	"github.com/virtwire/vsphere-go-sdk/pkg/payloads"
	"github.com/virtwire/vsphere-go-sdk/pkg/services/library"
)

// Service enumerates content libraries and their items through the
// vSphere Automation REST API.
type Service struct {
	client *client.Client
	log    *logger.Logger
}

func New(client *client.Client, log *logger.Logger) library.ContentLibrary {
	return &Service{client: client, log: log}
}

func (s *Service) List(ctx context.Context) ([]payloads.ContentLibrary, error) {
	rc, err := s.client.Rest(ctx)
	if err != nil {
		return nil, err
	}

	libraries, err := vapilibrary.NewManager(rc).GetLibraries(ctx)
	if err != nil {
		s.log.Error("failed to list content libraries", zap.Error(err))
		return nil, core.NewApiAccessError(s.client.Endpoint(),
			"failed to list content libraries", err)
	}

	s.log.Debug("listed content libraries", zap.Int("count", len(libraries)))
	return toLibraries(libraries), nil
}

func (s *Service) ListItems(ctx context.Context, lib payloads.ContentLibrary) ([]payloads.ContentLibraryItem, error) {
	rc, err := s.client.Rest(ctx)
	if err != nil {
		return nil, err
	}

	items, err := vapilibrary.NewManager(rc).GetLibraryItems(ctx, lib.ID)
	if err != nil {
		s.log.Error("failed to list content library items",
			zap.String("library", lib.Name), zap.Error(err))
		return nil, core.NewApiAccessError(s.client.Endpoint(),
			fmt.Sprintf("failed to list items of content library %s", lib.Name), err)
	}

	s.log.Debug("listed content library items",
		zap.String("library", lib.Name), zap.Int("count", len(items)))
	return toItems(items), nil
}

func toLibraries(libraries []vapilibrary.Library) []payloads.ContentLibrary {
	result := make([]payloads.ContentLibrary, 0, len(libraries))
	for _, l := range libraries {
		result = append(result, payloads.ContentLibrary{
			ID:   l.ID,
			Name: l.Name,
			Type: l.Type,
		})
	}
	return result
}

func toItems(items []vapilibrary.Item) []payloads.ContentLibraryItem {
	result := make([]payloads.ContentLibraryItem, 0, len(items))
	for _, item := range items {
		result = append(result, payloads.ContentLibraryItem{
			ID:        item.ID,
			Name:      item.Name,
			Type:      item.Type,
			LibraryID: item.LibraryID,
		})
	}
	return result
}
