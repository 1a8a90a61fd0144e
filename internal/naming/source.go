package naming

import "github.com/mesh-intelligence/backup-extractor/pkg/types"

// UnknownSource labels entries whose memory type has no known label.
const UnknownSource = "unknown source"

// Extension is appended to every contact file name.
const Extension = ".vcf"

var sourceLabels = map[types.MemoryType]string{
	types.MemoryPhone: "phone",
	types.MemorySIM:   "SIM",
}

// SourceLabel returns the human-readable source for a memory type.
func SourceLabel(m types.MemoryType) string {
	if label, ok := sourceLabels[m]; ok {
		return label
	}
	return UnknownSource
}

// FileName returns the contact file base name for a display name read from
// memory m. Name and source are separated by two spaces before sanitizing,
// so "Anna Schmidt" from phone memory becomes "Anna_Schmidt__phone.vcf".
func FileName(name string, m types.MemoryType) string {
	return Sanitize(name+"  "+SourceLabel(m)) + Extension
}
