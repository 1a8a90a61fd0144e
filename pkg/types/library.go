package types

// Versions holds the version strings reported by a phonebook library.
type Versions struct {
	Runtime string // library runtime version
	Binding string // version of the binding in use
	Build   string // library version the binding was built against
}

// Library reads backup files and encodes entries as contact cards.
// The extractor depends only on this interface.
type Library interface {
	// ReadBackup loads the phonebooks stored in the backup file at path.
	ReadBackup(path string) (*Backup, error)

	// EncodeEntry renders one entry as a textual contact card.
	EncodeEntry(e Entry) (string, error)
}
