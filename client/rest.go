package client

import (
	"context"
	"fmt"
	"net/url"

	"github.com/hashicorp/go-version"
	"github.com/vmware/govmomi/vapi/rest"
	"go.uber.org/zap"

	"github.com/virtwire/vsphere-go-sdk/internal/common/core"
)

// The vSphere Automation REST API shipped with vCenter 6.5; anything
// older only speaks SOAP.
var minRestVersion = version.Must(version.NewVersion("6.5"))

// Rest returns the vAPI REST client, logging in on first use. A failed
// login is not cached, so a vCenter that was mid-restart does not poison
// every later call.
func (c *Client) Rest(ctx context.Context) (*rest.Client, error) {
	c.restMu.Lock()
	defer c.restMu.Unlock()

	if c.rest != nil {
		return c.rest, nil
	}

	if err := c.restSupported(); err != nil {
		return nil, err
	}

	rc := rest.NewClient(c.vim)
	if err := rc.Login(ctx, url.UserPassword(c.cfg.Username, c.cfg.Password)); err != nil {
		endpoint := c.cfg.Endpoint()
		return nil, core.NewApiAccessError(endpoint,
			fmt.Sprintf("failed to log in to %s", endpoint), err)
	}

	c.log.Debug("REST session established", zap.String("endpoint", c.cfg.Endpoint()))
	c.rest = rc
	return rc, nil
}

// restSupported gates REST use on the endpoint actually offering it.
func (c *Client) restSupported() error {
	about := c.vim.ServiceContent.About
	endpoint := c.cfg.Endpoint()

	if about.ApiType != "VirtualCenter" {
		return core.NewApiAccessError(endpoint,
			fmt.Sprintf("the vSphere Automation REST API requires vCenter, connected to %s", about.ApiType), nil)
	}

	apiVersion, err := version.NewVersion(about.ApiVersion)
	if err != nil {
		return core.NewApiAccessError(endpoint,
			fmt.Sprintf("cannot parse API version %q reported by %s", about.ApiVersion, endpoint), err)
	}
	if apiVersion.Core().Compare(minRestVersion) < 0 {
		return core.NewApiAccessError(endpoint,
			fmt.Sprintf("the vSphere Automation REST API requires vCenter 6.5 or later, %s reports %s",
				endpoint, about.ApiVersion), nil)
	}
	return nil
}
