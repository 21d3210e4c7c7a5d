/*
Package vsphere wires the services together behind the library.Library
contract: one call validates the configuration, dials the endpoint and
logs in, and the accessors hand out the typed services sharing that
session.
*/
package vsphere

import (
	"context"

	"github.com/subosito/gotenv"

	"github.com/virtwire/vsphere-go-sdk/client"
	"github.com/virtwire/vsphere-go-sdk/internal/common/logger"
	"github.com/virtwire/vsphere-go-sdk/pkg/config"
	"github.com/virtwire/vsphere-go-sdk/pkg/services/contentlibrary"
	"github.com/virtwire/vsphere-go-sdk/pkg/services/library"
	"github.com/virtwire/vsphere-go-sdk/pkg/services/snapshot"
	"github.com/virtwire/vsphere-go-sdk/pkg/services/tag"
	"github.com/virtwire/vsphere-go-sdk/pkg/services/task"
	"github.com/virtwire/vsphere-go-sdk/pkg/services/vm"
)

type Client struct {
	client *client.Client
	log    *logger.Logger

	vmService             library.VM
	snapshotService       library.Snapshot
	taskService           library.Task
	tagService            library.Tag
	contentLibraryService library.ContentLibrary
}

// Loads a .env file when one is present, so the SDK can be tried out
// without exporting the connection variables by hand.
func init() {
	_ = gotenv.Load()
}

func New(ctx context.Context, cfg *config.Config) (library.Library, error) {
	log, err := logger.New(cfg.Development)
	if err != nil {
		return nil, err
	}

	c, err := client.New(ctx, cfg, log)
	if err != nil {
		return nil, err
	}

	vmService := vm.New(c, log)
	taskService := task.New(c, log)
	operator := snapshot.NewOperator(c, log)

	return &Client{
		client:                c,
		log:                   log,
		vmService:             vmService,
		snapshotService:       snapshot.New(vmService, taskService, operator, log),
		taskService:           taskService,
		tagService:            tag.New(c, log),
		contentLibraryService: contentlibrary.New(c, log),
	}, nil
}

func (c *Client) VM() library.VM {
	return c.vmService
}

func (c *Client) Snapshot() library.Snapshot {
	return c.snapshotService
}

func (c *Client) Task() library.Task {
	return c.taskService
}

func (c *Client) Tag() library.Tag {
	return c.tagService
}

func (c *Client) ContentLibrary() library.ContentLibrary {
	return c.contentLibraryService
}

func (c *Client) Logout(ctx context.Context) error {
	return c.client.Logout(ctx)
}
