// Package engine ties input loading, caching and registration together. It
// is internal; external consumers should use the stable facade in pkg/core.
package engine
