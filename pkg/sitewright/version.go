// Package sitewright holds module-level metadata.
package sitewright

// Version is the sitewright release version.
const Version = "0.2.0"
