// Package ports declares the driven-side interfaces of the engine:
// population storage for genome corpora and the bulk-load visitor callback.
// Adapters under pkg/adapters and internal/adapters implement them.
package ports
