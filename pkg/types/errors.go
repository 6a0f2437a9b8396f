package types

import "errors"

// Config validation errors. Validate returns these before any network
// call is attempted.
var (
	ErrSiteURLEmpty       = errors.New("site URL must not be empty")
	ErrTenantIDEmpty      = errors.New("tenant ID must not be empty")
	ErrClientIDEmpty      = errors.New("client ID must not be empty")
	ErrCertSourceEmpty    = errors.New("certificate path or base64 blob must be provided")
	ErrCertSourceConflict = errors.New("certificate path and base64 blob are mutually exclusive")
	ErrCertPasswordEmpty  = errors.New("certificate password must not be empty")
)

// Remote operation errors. These classify failures from the platform;
// callers wrap them with context and never retry.
var (
	// ErrAuth marks credential material that cannot be loaded or is
	// rejected during token acquisition.
	ErrAuth = errors.New("authentication failed")

	// ErrConnection marks a failed handshake with the remote site.
	ErrConnection = errors.New("connection failed")

	// ErrNotFound marks a library (or other object required to exist)
	// that is missing remotely. Fatal: provisioning never creates
	// libraries.
	ErrNotFound = errors.New("not found")

	// ErrRemoteWrite marks a create or update call rejected by the
	// platform.
	ErrRemoteWrite = errors.New("remote write rejected")
)

// Manifest validation errors.
var (
	ErrLibraryEmpty      = errors.New("library title must not be empty")
	ErrInternalNameEmpty = errors.New("field internal name must not be empty")
	ErrDisplayNameEmpty  = errors.New("field display name must not be empty")
	ErrChoicesEmpty      = errors.New("field must declare at least one choice")
	ErrViewTitleEmpty    = errors.New("view title must not be empty")
	ErrViewFieldsEmpty   = errors.New("view must declare at least one displayed field")
)
