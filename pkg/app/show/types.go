package show

import (
	"github.com/godwinstewart/lifheader/internal/services"
)

// Request represents a show-header request
type Request struct {
	// InputPath is the LIF file to inspect; "" or "-" reads standard input
	InputPath string
}

// Response contains the decoded header of one file
type Response struct {
	Source string                 `json:"source" yaml:"source"`
	Header *services.HeaderReport `json:"header" yaml:"header"`
}
