package publisher

// Publisher delivers the built report snapshot to downstream consumers
// (renderers, notifiers) outside this process.
type Publisher interface {
	// Publish publishes one report snapshot
	Publish(message []byte) error

	// TrimStream trims the stream to the configured maximum length
	TrimStream() error

	// Close closes the publisher connection
	Close() error
}
