package domain

const (
	// SpanSnapshot names the span wrapping the snapshot of one file.
	SpanSnapshot = "snapshot"

	// SpanHash names the span wrapping the hashing of one file's content.
	SpanHash = "hash"

	// AttrPath is the span attribute holding the snapshotted file path.
	AttrPath = "path"
)
