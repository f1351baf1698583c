// Package loaders provides implementations of the Loader interface for the
// file formats textdesk can open. Each loader extracts readable text from a
// specific MIME type.
//
// Loaders are registered with the Registry at startup.
package loaders
