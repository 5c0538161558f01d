package strip

// Request represents a strip-header request
type Request struct {
	InputPath  string
	OutputPath string
}

// Response reports the result of stripping a header
type Response struct {
	// PayloadBytes is the number of bytes written after the header was removed
	PayloadBytes int64
}
