// Package sharepoint implements the connector and the remote operations
// sitewright performs against a SharePoint site: resolving libraries and
// reading, creating, and updating choice fields and views. Built on gosip
// with app-only certificate authentication.
package sharepoint

import (
	"context"
	"encoding/base64"
	"fmt"
	"os"

	"github.com/koltyakov/gosip"
	"github.com/koltyakov/gosip/api"
	"github.com/koltyakov/gosip/auth/azurecert"
	"github.com/rs/zerolog/log"

	"github.com/mesh-intelligence/sitewright/pkg/types"
)

// Client is an authenticated session against one site. All remote
// operations go through it; Close releases what Connect acquired.
type Client struct {
	sp       *api.SP
	http     *api.HTTPClient
	siteURL  string
	tempCert string // path of the decoded certificate blob, empty when CertPath was used
}

// Connect validates cfg, materializes the certificate, and establishes an
// app-only session against the site. The handshake is verified with a
// single web read so credential problems surface here rather than in the
// middle of a run. Credential loading failures wrap types.ErrAuth; a
// failed handshake wraps types.ErrConnection.
func Connect(ctx context.Context, cfg types.Config) (*Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	certPath, tempCert, err := materializeCert(cfg)
	if err != nil {
		return nil, err
	}

	authCnfg := &azurecert.AuthCnfg{
		SiteURL:  cfg.SiteURL,
		TenantID: cfg.TenantID,
		ClientID: cfg.ClientID,
		CertPath: certPath,
		CertPass: cfg.CertPassword,
	}
	spClient := &gosip.SPClient{AuthCnfg: authCnfg}

	c := &Client{
		sp:       api.NewSP(spClient),
		http:     api.NewHTTPClient(spClient),
		siteURL:  cfg.SiteURL,
		tempCert: tempCert,
	}

	if _, err := c.sp.Conf(&api.RequestConfig{Context: ctx}).Web().Select("Title").Get(); err != nil {
		c.Close()
		return nil, fmt.Errorf("%w: %v", types.ErrConnection, err)
	}

	log.Debug().Str("site", cfg.SiteURL).Msg("connected")
	return c, nil
}

// materializeCert resolves the certificate source to a file path. The
// path variant is used as-is; the base64 variant is decoded into a temp
// file that Close removes.
func materializeCert(cfg types.Config) (certPath, tempCert string, err error) {
	if cfg.CertPath != "" {
		if _, err := os.Stat(cfg.CertPath); err != nil {
			return "", "", fmt.Errorf("%w: certificate file: %v", types.ErrAuth, err)
		}
		return cfg.CertPath, "", nil
	}

	blob, err := base64.StdEncoding.DecodeString(cfg.CertBase64)
	if err != nil {
		return "", "", fmt.Errorf("%w: decoding certificate blob: %v", types.ErrAuth, err)
	}

	f, err := os.CreateTemp("", "sitewright-cert-*.pfx")
	if err != nil {
		return "", "", fmt.Errorf("%w: staging certificate: %v", types.ErrAuth, err)
	}
	if err := os.Chmod(f.Name(), 0o600); err != nil {
		f.Close()
		os.Remove(f.Name())
		return "", "", fmt.Errorf("%w: staging certificate: %v", types.ErrAuth, err)
	}
	if _, err := f.Write(blob); err != nil {
		f.Close()
		os.Remove(f.Name())
		return "", "", fmt.Errorf("%w: staging certificate: %v", types.ErrAuth, err)
	}
	if err := f.Close(); err != nil {
		os.Remove(f.Name())
		return "", "", fmt.Errorf("%w: staging certificate: %v", types.ErrAuth, err)
	}
	return f.Name(), f.Name(), nil
}

// Close releases the session. Best effort: failures are logged and never
// escalate above whatever error ended the run.
func (c *Client) Close() {
	if c.tempCert == "" {
		return
	}
	if err := os.Remove(c.tempCert); err != nil && !os.IsNotExist(err) {
		log.Warn().Err(err).Str("path", c.tempCert).Msg("leaving staged certificate behind")
	}
	c.tempCert = ""
}
