package types

// MemoryType identifies the store a phonebook entry was read from.
// Values follow the Gammu memory tags.
type MemoryType string

// Memory types found in a backup.
const (
	MemoryPhone MemoryType = "ME" // phone memory
	MemorySIM   MemoryType = "SM" // SIM memory
)

// FieldType is the Gammu phonebook field vocabulary.
type FieldType string

// Field types. Only the name fields drive file naming; the rest are carried
// through to the contact card.
const (
	FieldFirstName  FieldType = "Text_FirstName"
	FieldLastName   FieldType = "Text_LastName"
	FieldFormalName FieldType = "Text_FormalName"
	FieldName       FieldType = "Text_Name"
	FieldNickName   FieldType = "Text_NickName"

	FieldNumberGeneral   FieldType = "Number_General"
	FieldNumberMobile    FieldType = "Number_Mobile"
	FieldNumberWork      FieldType = "Number_Work"
	FieldNumberFax       FieldType = "Number_Fax"
	FieldNumberHome      FieldType = "Number_Home"
	FieldNumberPager     FieldType = "Number_Pager"
	FieldNumberOther     FieldType = "Number_Other"
	FieldNumberMessaging FieldType = "Number_Messaging"

	FieldEmail    FieldType = "Text_Email"
	FieldEmail2   FieldType = "Text_Email2"
	FieldURL      FieldType = "Text_URL"
	FieldNote     FieldType = "Text_Note"
	FieldCompany  FieldType = "Text_Company"
	FieldJobTitle FieldType = "Text_JobTitle"
	FieldPostal   FieldType = "Text_Postal"
	FieldStreet   FieldType = "Text_StreetAddress"
	FieldCity     FieldType = "Text_City"
	FieldState    FieldType = "Text_State"
	FieldZip      FieldType = "Text_Zip"
	FieldCountry  FieldType = "Text_Country"
	FieldCategory FieldType = "Category"
	FieldDate     FieldType = "Date"
)

// Field is a single typed value inside a phonebook entry.
type Field struct {
	Type  FieldType `yaml:"type"`
	Value string    `yaml:"value"`
}

// Entry is one phonebook record.
type Entry struct {
	MemoryType MemoryType `yaml:"memory_type"`
	Location   int        `yaml:"location"`
	Fields     []Field    `yaml:"entries"`
}

// Value returns the value of the first field of type t. The boolean reports
// whether such a field exists; an existing field may still hold "".
func (e Entry) Value(t FieldType) (string, bool) {
	return FieldValue(e.Fields, t)
}

// FieldValue returns the value of the first field of type t in fields.
func FieldValue(fields []Field, t FieldType) (string, bool) {
	for _, f := range fields {
		if f.Type == t {
			return f.Value, true
		}
	}
	return "", false
}

// Backup is the phonebook content of one backup file.
type Backup struct {
	PhonePhonebook []Entry
	SIMPhonebook   []Entry
}

// Collections returns the phonebook collections in processing order:
// phone memory first, then SIM memory.
func (b *Backup) Collections() [][]Entry {
	return [][]Entry{b.PhonePhonebook, b.SIMPhonebook}
}

// Len returns the total number of entries across both collections.
func (b *Backup) Len() int {
	return len(b.PhonePhonebook) + len(b.SIMPhonebook)
}
