package bind_group_provider

// BufferWrite describes one staged write into a provider's buffer. Writes
// are collected by the scene each frame and flushed in a single batch so the
// GPU queue is touched once per frame rather than once per population.
type BufferWrite struct {
	// Provider owns the destination buffer.
	Provider BindGroupProvider

	// Binding is the @binding index of the destination buffer.
	Binding int

	// Offset is the destination byte offset within the buffer.
	Offset uint64

	// Data is the raw bytes to upload. The slice may be reused by the
	// staging population after the flush completes.
	Data []byte
}
