package tag

import (
	"context"
	"fmt"

	"github.com/vmware/govmomi/vapi/tags"
	"github.com/vmware/govmomi/vim25/types"
	"go.uber.org/zap"

	"github.com/virtwire/vsphere-go-sdk/client"
	"github.com/virtwire/vsphere-go-sdk/internal/common/core"
	"github.com/virtwire/vsphere-go-sdk/internal/common/logger"
	"github.com/virtwire/vsphere-go-sdk/pkg/payloads"
	"github.com/virtwire/vsphere-go-sdk/pkg/services/library"
)

// Service reads tag attachments through the vSphere Automation REST
// API. The REST session is established lazily on first use.
type Service struct {
	client *client.Client
	log    *logger.Logger
}

func New(client *client.Client, log *logger.Logger) library.Tag {
	return &Service{client: client, log: log}
}

func (s *Service) TagsForVM(ctx context.Context, moid string) ([]payloads.Tag, error) {
	return s.attachedTags(ctx, types.ManagedObjectReference{Type: core.VirtualMachineKind, Value: moid})
}

func (s *Service) TagsForHost(ctx context.Context, moid string) ([]payloads.Tag, error) {
	return s.attachedTags(ctx, types.ManagedObjectReference{Type: core.HostSystemKind, Value: moid})
}

func (s *Service) attachedTags(ctx context.Context, ref types.ManagedObjectReference) ([]payloads.Tag, error) {
	rc, err := s.client.Rest(ctx)
	if err != nil {
		return nil, err
	}

	attached, err := tags.NewManager(rc).GetAttachedTags(ctx, ref)
	if err != nil {
		s.log.Error("failed to list attached tags",
			zap.String("object", ref.Value), zap.Error(err))
		return nil, core.NewApiAccessError(s.client.Endpoint(),
			fmt.Sprintf("failed to list tags attached to %s", ref.Value), err)
	}

	s.log.Debug("listed attached tags",
		zap.String("object", ref.Value), zap.Int("count", len(attached)))
	return toTags(attached), nil
}

// toTags maps the vendor tag model onto the wire payload.
func toTags(attached []tags.Tag) []payloads.Tag {
	result := make([]payloads.Tag, 0, len(attached))
	for _, t := range attached {
		result = append(result, payloads.Tag{
			ID:          t.ID,
			Name:        t.Name,
			Description: t.Description,
			CategoryID:  t.CategoryID,
		})
	}
	return result
}
