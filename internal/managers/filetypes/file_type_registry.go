package filetypes

import (
	"strings"

	"github.com/godwinstewart/lifheader/internal/parsers/lengths"
	"github.com/godwinstewart/lifheader/internal/types"
)

// FileTypeInfo contains the registry entry for a LIF file type
type FileTypeInfo struct {
	// Numeric type identifier
	Type uint16 `json:"type" yaml:"type"`

	// Command-line mnemonic used when adding a header. Empty for
	// describe-only entries.
	Mnemonic string `json:"mnemonic,omitempty" yaml:"mnemonic,omitempty"`

	// Human-readable description
	Description string `json:"description" yaml:"description"`

	// Length encoding used by this type
	Family lengths.Family `json:"-" yaml:"-"`
}

// StaticFileTypeRegistry is the fixed table of known LIF file types.
// Entries sharing a mnemonic resolve to the first one listed.
type StaticFileTypeRegistry struct {
	registry []FileTypeInfo
}

var fileTypeTable = []FileTypeInfo{
	{Type: types.FileTypeBin71, Mnemonic: "bin71", Description: "HP-71B BIN file"},
	{Type: types.FileTypeBin71Secure, Mnemonic: "bin71", Description: "HP-71B BIN file, secure"},
	{Type: types.FileTypeBin71Private, Mnemonic: "bin71", Description: "HP-71B BIN file, private"},
	{Type: types.FileTypeBin71SecurePrivate, Mnemonic: "bin71", Description: "HP-71B BIN file, secure, private"},
	{Type: types.FileTypeLex71, Mnemonic: "lex71", Description: "HP-71B LEX file"},
	{Type: types.FileTypeLex71Secure, Mnemonic: "lex71", Description: "HP-71B LEX file, secure"},
	{Type: types.FileTypeLex71Private, Mnemonic: "lex71", Description: "HP-71B LEX file, private"},
	{Type: types.FileTypeLex71SecurePrivate, Mnemonic: "lex71", Description: "HP-71B LEX file, secure, private"},
	{Type: types.FileTypeBasic71, Mnemonic: "bas71", Description: "HP-71B BASIC file"},
	{Type: types.FileTypeBasic71Secure, Mnemonic: "bas71", Description: "HP-71B BASIC file, secure"},
	{Type: types.FileTypeBasic71Private, Mnemonic: "bas71", Description: "HP-71B BASIC file, private"},
	{Type: types.FileTypeBasic71SecPrivate, Mnemonic: "bas71", Description: "HP-71B BASIC file, secure, private"},
	{Type: types.FileTypeRom71, Mnemonic: "rom71", Description: "HP-71B ROM file"},
	{Type: types.FileTypeKey71, Mnemonic: "key71", Description: "HP-71B key assignments"},
	{Type: types.FileTypeKey71Secure, Mnemonic: "key71", Description: "HP-71B key assignments, secure"},
	{Type: types.FileTypeText71, Mnemonic: "txt71", Description: "HP-71B text file"},
	{Type: types.FileTypeText71Secure, Mnemonic: "txt71", Description: "HP-71B text file, secure"},
	{Type: types.FileTypeProgram41, Mnemonic: "prg41", Description: "HP-41C program"},
	{Type: types.FileTypeSData, Mnemonic: "sdata", Description: "HP-71B SDATA/HP-41C data file"},
	{Type: types.FileTypeKeys41, Mnemonic: "key41", Description: "HP-41C key assignments"},
	{Type: types.FileTypeStatus41, Mnemonic: "sta41", Description: "HP-41C status file"},
	{Type: types.FileTypeWall41, Mnemonic: "all41", Description: `HP-41C "WALL" file`},
	{Type: types.FileTypeData71, Description: "HP-71B DATA file"},
	{Type: types.FileTypeData71Secure, Description: "HP-71B DATA file, secure"},
	{Type: types.FileTypeFram71, Mnemonic: "frm71", Description: "HP-71B FRAM file"},
	{Type: types.FileTypeFram71Secure, Mnemonic: "frm71", Description: "HP-71B FRAM file, secure"},
	{Type: types.FileTypeFram71Private, Mnemonic: "frm71", Description: "HP-71B FRAM file, private"},
	{Type: types.FileTypeFram71SecPrivate, Mnemonic: "frm71", Description: "HP-71B FRAM file, secure, private"},
	{Type: types.FileTypeGraphics71, Mnemonic: "gra71", Description: "HP-71B graphics file"},
	{Type: types.FileTypeRomDump41, Mnemonic: "rom41", Description: "HP-41C ROM/MLDL dump"},
}

// NewStaticFileTypeRegistry initializes the hardcoded LIF file type registry
func NewStaticFileTypeRegistry() *StaticFileTypeRegistry {
	registry := make([]FileTypeInfo, len(fileTypeTable))
	for i, info := range fileTypeTable {
		info.Family, _ = lengths.FamilyOf(info.Type)
		registry[i] = info
	}
	return &StaticFileTypeRegistry{registry: registry}
}

// LookupType returns the registry entry for a file type
func (r *StaticFileTypeRegistry) LookupType(fileType uint16) (FileTypeInfo, bool) {
	for _, info := range r.registry {
		if info.Type == fileType {
			return info, true
		}
	}
	return FileTypeInfo{}, false
}

// Describe returns the description of a file type
func (r *StaticFileTypeRegistry) Describe(fileType uint16) (string, bool) {
	info, ok := r.LookupType(fileType)
	if !ok {
		return "", false
	}
	return info.Description, true
}

// Resolve returns the first file type whose mnemonic matches, ignoring case
func (r *StaticFileTypeRegistry) Resolve(mnemonic string) (uint16, bool) {
	if mnemonic == "" {
		return types.FileTypeUnknown, false
	}
	for _, info := range r.registry {
		if strings.EqualFold(info.Mnemonic, mnemonic) {
			return info.Type, true
		}
	}
	return types.FileTypeUnknown, false
}

// ListFileTypes returns every registered file type in table order
func (r *StaticFileTypeRegistry) ListFileTypes() []FileTypeInfo {
	list := make([]FileTypeInfo, len(r.registry))
	copy(list, r.registry)
	return list
}

// ListMnemonics returns the canonical entry for each mnemonic in table order
func (r *StaticFileTypeRegistry) ListMnemonics() []FileTypeInfo {
	seen := make(map[string]bool)
	var list []FileTypeInfo
	for _, info := range r.registry {
		key := strings.ToLower(info.Mnemonic)
		if key == "" || seen[key] {
			continue
		}
		seen[key] = true
		list = append(list, info)
	}
	return list
}
