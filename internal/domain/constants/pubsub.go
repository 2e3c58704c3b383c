// Package constants holds shared domain constants.
package constants

// Pub/Sub provider identifiers accepted in configuration.
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)
