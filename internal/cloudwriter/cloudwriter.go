// Package cloudwriter abstracts object-store uploads so output sinks can
// publish pipeline artifacts to a bucket instead of the local filesystem.
package cloudwriter

// CloudWriter buffers writes for a single object and uploads on Close.
type CloudWriter interface {
	Write(data []byte) (int, error)
	Close() error
}

// CloudWriterFactory creates writers bound to one storage backend.
type CloudWriterFactory interface {
	NewWriter(bucket, objectPath string) (CloudWriter, error)
}
