package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/sitewright/pkg/types"
)

func setConnectionEnv(t *testing.T) {
	t.Helper()
	t.Setenv(envSiteURL, "https://contoso.sharepoint.com/sites/engineering")
	t.Setenv(envTenantID, "f8a1c1d0-0000-0000-0000-000000000000")
	t.Setenv(envClientID, "7b2e9c40-0000-0000-0000-000000000000")
	t.Setenv(envCertPath, "/etc/sitewright/app.pfx")
	t.Setenv(envCertBase64, "")
	t.Setenv(envCertPassword, "secret")
}

func resetConnectionFlags(t *testing.T) {
	t.Helper()
	orig := []struct {
		p   *string
		val string
	}{
		{&flagSiteURL, flagSiteURL},
		{&flagTenantID, flagTenantID},
		{&flagClientID, flagClientID},
		{&flagCertPath, flagCertPath},
	}
	for _, o := range orig {
		*o.p = ""
	}
	t.Cleanup(func() {
		for _, o := range orig {
			*o.p = o.val
		}
	})
}

func TestLoadConnectionConfigFromEnv(t *testing.T) {
	resetConnectionFlags(t)
	setConnectionEnv(t)

	cfg, err := loadConnectionConfig()
	require.NoError(t, err)
	assert.Equal(t, "https://contoso.sharepoint.com/sites/engineering", cfg.SiteURL)
	assert.Equal(t, "/etc/sitewright/app.pfx", cfg.CertPath)
	assert.Equal(t, "secret", cfg.CertPassword)
}

func TestLoadConnectionConfigFlagWins(t *testing.T) {
	resetConnectionFlags(t)
	setConnectionEnv(t)
	flagSiteURL = "https://contoso.sharepoint.com/sites/other"

	cfg, err := loadConnectionConfig()
	require.NoError(t, err)
	assert.Equal(t, "https://contoso.sharepoint.com/sites/other", cfg.SiteURL)
}

func TestLoadConnectionConfigMissingInputFailsFast(t *testing.T) {
	tests := []struct {
		name    string
		unset   string
		wantErr error
	}{
		{"site URL", envSiteURL, types.ErrSiteURLEmpty},
		{"tenant ID", envTenantID, types.ErrTenantIDEmpty},
		{"client ID", envClientID, types.ErrClientIDEmpty},
		{"cert source", envCertPath, types.ErrCertSourceEmpty},
		{"cert password", envCertPassword, types.ErrCertPasswordEmpty},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resetConnectionFlags(t)
			setConnectionEnv(t)
			t.Setenv(tt.unset, "")

			_, err := loadConnectionConfig()
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestLoadManifestBuiltin(t *testing.T) {
	flagManifest = ""
	m, source, err := loadManifest()
	require.NoError(t, err)
	assert.Equal(t, "builtin", source)
	assert.Len(t, m.Fields, 4)
	assert.Len(t, m.Views, 10)
}
