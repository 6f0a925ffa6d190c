// Package utils contains the small shared plumbing consumed by the provider
// adapters: a generic JSON POST helper, MIME detection, base64 image loading,
// and string helpers for log output.
package utils
