// Package registry provides a generic, thread-safe, name-keyed registry.
// Items keep the order they were registered in, which lets callers expose
// stable listings without sorting.
package registry
