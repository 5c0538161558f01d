package types

// LIF file type identifiers (HP-71B and HP-41C)
const (
	FileTypeText71       uint16 = 0x0001
	FileTypeLexDisabled  uint16 = 0x00ff
	FileTypeWallXMem41A  uint16 = 0xe020
	FileTypeWallXMem41B  uint16 = 0xe030
	FileTypeWall41       uint16 = 0xe040
	FileTypeKeys41       uint16 = 0xe050
	FileTypeStatus41     uint16 = 0xe060
	FileTypeRomDump41    uint16 = 0xe070
	FileTypeProgram41    uint16 = 0xe080
	FileTypeSData        uint16 = 0xe0d0
	FileTypeText71Secure uint16 = 0xe0d1
	FileTypeData71       uint16 = 0xe0f0
	FileTypeData71Secure uint16 = 0xe0f1

	FileTypeBin71              uint16 = 0xe204
	FileTypeBin71Secure        uint16 = 0xe205
	FileTypeBin71Private       uint16 = 0xe206
	FileTypeBin71SecurePrivate uint16 = 0xe207
	FileTypeLex71              uint16 = 0xe208
	FileTypeLex71Secure        uint16 = 0xe209
	FileTypeLex71Private       uint16 = 0xe20a
	FileTypeLex71SecurePrivate uint16 = 0xe20b
	FileTypeKey71              uint16 = 0xe20c
	FileTypeKey71Secure        uint16 = 0xe20d
	FileTypeBasic71            uint16 = 0xe214
	FileTypeBasic71Secure      uint16 = 0xe215
	FileTypeBasic71Private     uint16 = 0xe216
	FileTypeBasic71SecPrivate  uint16 = 0xe217
	FileTypeFram71             uint16 = 0xe218
	FileTypeFram71Secure       uint16 = 0xe219
	FileTypeFram71Private      uint16 = 0xe21a
	FileTypeFram71SecPrivate   uint16 = 0xe21b
	FileTypeRom71              uint16 = 0xe21c
	FileTypeGraphics71         uint16 = 0xe222
	FileTypeAddress71          uint16 = 0xe224
	FileTypeSymbol71           uint16 = 0xe22e
)

// FileTypeUnknown is returned when a mnemonic matches no file type.
const FileTypeUnknown uint16 = 0x0000
