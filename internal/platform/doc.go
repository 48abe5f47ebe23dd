// Package platform contains OS/platform integration: bundled-resource lookup,
// filesystem helpers, and OS reveal of written files.
package platform
