package types

// Config holds the connection target and service principal identity for
// Connect. Certificate material comes from exactly one of two sources: a
// PKCS#12 file on disk (CertPath) or a base64-encoded PKCS#12 blob
// (CertBase64), typically injected through the environment in CI.
type Config struct {
	SiteURL      string `json:"site_url" yaml:"site_url"`
	TenantID     string `json:"tenant_id" yaml:"tenant_id"`
	ClientID     string `json:"client_id" yaml:"client_id"`
	CertPath     string `json:"cert_path" yaml:"cert_path"`
	CertBase64   string `json:"cert_base64" yaml:"cert_base64"`
	CertPassword string `json:"cert_password" yaml:"cert_password"`
}

// Validate checks that the Config is complete and unambiguous. It returns
// a sentinel error from this package on failure, before any network call
// is made.
func (c Config) Validate() error {
	if c.SiteURL == "" {
		return ErrSiteURLEmpty
	}
	if c.TenantID == "" {
		return ErrTenantIDEmpty
	}
	if c.ClientID == "" {
		return ErrClientIDEmpty
	}
	if c.CertPath == "" && c.CertBase64 == "" {
		return ErrCertSourceEmpty
	}
	if c.CertPath != "" && c.CertBase64 != "" {
		return ErrCertSourceConflict
	}
	if c.CertPassword == "" {
		return ErrCertPasswordEmpty
	}
	return nil
}
