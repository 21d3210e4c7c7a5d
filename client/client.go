package client

import (
	"context"
	"crypto/tls"
	"crypto/x509"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"sync"
	"time"

	"github.com/vmware/govmomi/session"
	"github.com/vmware/govmomi/vapi/rest"
	"github.com/vmware/govmomi/vim25"
	"github.com/vmware/govmomi/vim25/soap"
	"github.com/vmware/govmomi/vim25/types"
	"go.uber.org/zap"

	"github.com/virtwire/vsphere-go-sdk/internal/common/core"
	"github.com/virtwire/vsphere-go-sdk/internal/common/logger"
	"github.com/virtwire/vsphere-go-sdk/pkg/config"
)

// Client owns the authenticated vim25 (SOAP) session and, once a service
// asks for it, the vAPI REST session. The REST login is deferred because
// plenty of callers only ever touch the SOAP API, and hosts below vCenter
// 6.5 do not offer the REST endpoint at all.
type Client struct {
	cfg *config.Config
	log *logger.Logger

	vim     *vim25.Client
	session *session.Manager

	restMu sync.Mutex
	rest   *rest.Client
}

// New validates the connection parameters, dials the endpoint and logs
// in. Connection and login failures map to distinct messages so the
// caller can tell an unreachable endpoint, a certificate problem and a
// bad credential apart.
func New(ctx context.Context, cfg *config.Config, log *logger.Logger) (*Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	endpoint := cfg.Endpoint()
	u, err := soap.ParseURL(endpoint)
	if err != nil {
		return nil, core.NewApiAccessError(endpoint,
			fmt.Sprintf("failed to parse vCenter or ESXi API address %s", endpoint), err)
	}
	u.User = url.UserPassword(cfg.Username, cfg.Password)

	sc := soap.NewClient(u, !cfg.ValidateCerts)
	if !cfg.ValidateCerts {
		log.Warn("TLS certificate verification is disabled", zap.String("endpoint", endpoint))
	}

	proxy, err := cfg.ProxyURL()
	if err != nil {
		return nil, err
	}
	if proxy != nil {
		if transport, ok := sc.Transport.(*http.Transport); ok {
			transport.Proxy = http.ProxyURL(proxy)
		}
		log.Debug("using HTTP proxy", zap.String("proxy", proxy.String()))
	}

	vc, err := vim25.NewClient(ctx, sc)
	if err != nil {
		reason := fmt.Sprintf("failed to connect to vCenter or ESXi API at %s", endpoint)
		if isCertificateError(err) {
			reason += " due to SSL/TLS verification failure"
		}
		return nil, core.NewApiAccessError(endpoint, reason, err)
	}

	sm := session.NewManager(vc)
	if err := sm.Login(ctx, u.User); err != nil {
		return nil, core.NewApiAccessError(endpoint,
			fmt.Sprintf("failed to log in to %s", endpoint), err)
	}

	log.Info("connected to vSphere API",
		zap.String("endpoint", endpoint),
		zap.String("version", vc.ServiceContent.About.Version),
		zap.String("apiType", vc.ServiceContent.About.ApiType))

	return &Client{cfg: cfg, log: log, vim: vc, session: sm}, nil
}

// VimClient exposes the underlying SOAP client for the object services.
func (c *Client) VimClient() *vim25.Client {
	return c.vim
}

// About describes the endpoint we are logged in to.
func (c *Client) About() types.AboutInfo {
	return c.vim.ServiceContent.About
}

// Endpoint returns the host:port the client was built for.
func (c *Client) Endpoint() string {
	return c.cfg.Endpoint()
}

// Datacenter returns the configured default datacenter name, which may
// be empty.
func (c *Client) Datacenter() string {
	return c.cfg.Datacenter
}

// RetryMode returns how transient API failures should be retried.
func (c *Client) RetryMode() core.RetryMode {
	return c.cfg.RetryMode
}

// RetryMaxTime caps the total time spent retrying a transient failure.
func (c *Client) RetryMaxTime() time.Duration {
	return c.cfg.RetryMaxTime
}

// Valid reports whether the SOAP session is still authenticated.
func (c *Client) Valid(ctx context.Context) bool {
	if c == nil || c.vim == nil {
		return false
	}
	userSession, err := c.session.UserSession(ctx)
	return err == nil && userSession != nil
}

// Logout terminates the REST session when one was opened, then the SOAP
// session.
func (c *Client) Logout(ctx context.Context) error {
	c.restMu.Lock()
	if c.rest != nil {
		if err := c.rest.Logout(ctx); err != nil {
			c.log.Warn("REST logout failed", zap.Error(err))
		}
		c.rest = nil
	}
	c.restMu.Unlock()

	return c.session.Logout(ctx)
}

// isCertificateError reports whether the error chain was caused by TLS
// certificate verification, as opposed to the endpoint being plain
// unreachable. Both end up as API access failures, but the messages must
// stay distinguishable.
func isCertificateError(err error) bool {
	var unknownAuthority x509.UnknownAuthorityError
	var hostname x509.HostnameError
	var invalid x509.CertificateInvalidError
	var verification *tls.CertificateVerificationError
	return errors.As(err, &unknownAuthority) ||
		errors.As(err, &hostname) ||
		errors.As(err, &invalid) ||
		errors.As(err, &verification)
}
