// Connection configuration loading for the sitewright CLI.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mesh-intelligence/sitewright/pkg/types"
)

// Connection flags. Certificate secrets are deliberately env-only so they
// never land in shell history or process listings.
var (
	flagSiteURL  string
	flagTenantID string
	flagClientID string
	flagCertPath string
)

// Environment variables recognized for the connection, matching the names
// the deployment pipelines already export.
const (
	envSiteURL      = "SITE_URL"
	envTenantID     = "TENANT_ID"
	envClientID     = "CLIENT_ID"
	envCertPath     = "CERT_PATH"
	envCertBase64   = "CERT_BASE64"
	envCertPassword = "CERT_PASSWORD"
)

// registerConnectionFlags adds the connection flags to commands that open
// a session. Flags override the corresponding environment variables.
func registerConnectionFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagSiteURL, "site-url", "", "target site collection URL (env SITE_URL)")
	cmd.Flags().StringVar(&flagTenantID, "tenant-id", "", "Azure AD tenant ID (env TENANT_ID)")
	cmd.Flags().StringVar(&flagClientID, "client-id", "", "service principal client ID (env CLIENT_ID)")
	cmd.Flags().StringVar(&flagCertPath, "cert-path", "", "PKCS#12 certificate file (env CERT_PATH)")
}

// loadConnectionConfig resolves the connection Config from flags and the
// environment (flags win) and validates it before any network call.
func loadConnectionConfig() (types.Config, error) {
	v := viper.New()
	for _, env := range []string{envSiteURL, envTenantID, envClientID, envCertPath, envCertBase64, envCertPassword} {
		if err := v.BindEnv(env, env); err != nil {
			return types.Config{}, fmt.Errorf("binding %s: %w", env, err)
		}
	}

	cfg := types.Config{
		SiteURL:      firstNonEmpty(flagSiteURL, v.GetString(envSiteURL)),
		TenantID:     firstNonEmpty(flagTenantID, v.GetString(envTenantID)),
		ClientID:     firstNonEmpty(flagClientID, v.GetString(envClientID)),
		CertPath:     firstNonEmpty(flagCertPath, v.GetString(envCertPath)),
		CertBase64:   v.GetString(envCertBase64),
		CertPassword: v.GetString(envCertPassword),
	}
	if err := cfg.Validate(); err != nil {
		return types.Config{}, err
	}
	return cfg, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

// loadManifest returns the effective manifest and a source label for
// logging and the journal: "builtin" or the manifest path.
func loadManifest() (types.Manifest, string, error) {
	if flagManifest == "" {
		return types.DefaultManifest(), "builtin", nil
	}
	m, err := types.LoadManifest(flagManifest)
	if err != nil {
		return types.Manifest{}, "", err
	}
	return m, flagManifest, nil
}
