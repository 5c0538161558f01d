package typelist

// Request represents a file type listing request
type Request struct {
	// All lists every registered type instead of one entry per mnemonic
	All bool
}

// TypeEntry describes one listed file type
type TypeEntry struct {
	Mnemonic    string `json:"mnemonic,omitempty" yaml:"mnemonic,omitempty"`
	Type        uint16 `json:"type" yaml:"type"`
	Description string `json:"description" yaml:"description"`
	Encoding    string `json:"length_encoding" yaml:"length_encoding"`
	Writable    bool   `json:"writable" yaml:"writable"`
}

// Response contains the listed file types in registry order
type Response struct {
	Types []TypeEntry `json:"types" yaml:"types"`
}
