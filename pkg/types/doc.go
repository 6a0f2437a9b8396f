// Package types defines the connection Config, the desired-state entities
// (choice field and view specifications, the provisioning manifest), and
// the standard errors shared across sitewright.
package types
