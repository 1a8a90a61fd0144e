package gammu

import (
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
	"gopkg.in/ini.v1"

	"github.com/mesh-intelligence/backup-extractor/pkg/types"
)

// Section name prefixes of phonebook entries, followed by a three digit index.
const (
	phoneSectionPrefix = "PhonePBK"
	simSectionPrefix   = "SIMPBK"
)

const (
	keyLocation      = "Location"
	entryKeyPrefix   = "Entry"
	typeKeySuffix    = "Type"
	textKeySuffix    = "Text"
	numberKeySuffix  = "Number"
	unicodeKeySuffix = "Unicode"
)

// backupFieldTypes maps the type names used in backup files to field types.
var backupFieldTypes = map[string]types.FieldType{
	"FirstName":       types.FieldFirstName,
	"LastName":        types.FieldLastName,
	"FormalName":      types.FieldFormalName,
	"Name":            types.FieldName,
	"NickName":        types.FieldNickName,
	"NumberGeneral":   types.FieldNumberGeneral,
	"NumberMobile":    types.FieldNumberMobile,
	"NumberWork":      types.FieldNumberWork,
	"NumberFax":       types.FieldNumberFax,
	"NumberHome":      types.FieldNumberHome,
	"NumberPager":     types.FieldNumberPager,
	"NumberOther":     types.FieldNumberOther,
	"NumberMessaging": types.FieldNumberMessaging,
	"Email":           types.FieldEmail,
	"Email2":          types.FieldEmail2,
	"URL":             types.FieldURL,
	"Note":            types.FieldNote,
	"Company":         types.FieldCompany,
	"JobTitle":        types.FieldJobTitle,
	"Postal":          types.FieldPostal,
	"Address":         types.FieldStreet,
	"City":            types.FieldCity,
	"State":           types.FieldState,
	"Zip":             types.FieldZip,
	"Country":         types.FieldCountry,
	"Category":        types.FieldCategory,
	"Date":            types.FieldDate,
}

// numericFieldTypes store their value under EntryNNNumber instead of EntryNNText.
var numericFieldTypes = map[types.FieldType]bool{
	types.FieldCategory: true,
}

var loadOptions = ini.LoadOptions{
	IgnoreInlineComment:     true,
	SkipUnrecognizableLines: true,
}

// ReadBackup loads the phone and SIM phonebooks of the backup at path.
// UTF-16 backups (with byte order mark) and UTF-8 or ASCII backups are
// accepted.
func (l *Library) ReadBackup(path string) (*types.Backup, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return ParseBackup(f)
}

// ParseBackup decodes a backup from r.
func ParseBackup(r io.Reader) (*types.Backup, error) {
	decoded := transform.NewReader(r, unicode.BOMOverride(unicode.UTF8.NewDecoder()))
	data, err := io.ReadAll(decoded)
	if err != nil {
		return nil, fmt.Errorf("decode backup: %w", err)
	}

	cfg, err := ini.LoadSources(loadOptions, data)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", types.ErrBackupFormat, err)
	}

	b := &types.Backup{}
	for _, sec := range cfg.Sections() {
		var mem types.MemoryType
		switch {
		case strings.HasPrefix(sec.Name(), phoneSectionPrefix):
			mem = types.MemoryPhone
		case strings.HasPrefix(sec.Name(), simSectionPrefix):
			mem = types.MemorySIM
		default:
			continue
		}

		e, err := parseEntry(sec, mem)
		if err != nil {
			return nil, fmt.Errorf("%w: section %s: %v", types.ErrBackupFormat, sec.Name(), err)
		}
		if mem == types.MemoryPhone {
			b.PhonePhonebook = append(b.PhonePhonebook, e)
		} else {
			b.SIMPhonebook = append(b.SIMPhonebook, e)
		}
	}
	return b, nil
}

// parseEntry reads one phonebook section. Fields keep the order of their
// EntryNNType keys.
func parseEntry(sec *ini.Section, mem types.MemoryType) (types.Entry, error) {
	e := types.Entry{MemoryType: mem}
	if sec.HasKey(keyLocation) {
		loc, err := sec.Key(keyLocation).Int()
		if err != nil {
			return e, fmt.Errorf("location: %w", err)
		}
		e.Location = loc
	}

	for _, key := range sec.Keys() {
		name := key.Name()
		if !strings.HasPrefix(name, entryKeyPrefix) || !strings.HasSuffix(name, typeKeySuffix) {
			continue
		}
		prefix := strings.TrimSuffix(name, typeKeySuffix)

		ft, ok := backupFieldTypes[key.String()]
		if !ok {
			ft = types.FieldType(key.String())
		}

		suffix := textKeySuffix
		if numericFieldTypes[ft] {
			suffix = numberKeySuffix
		}
		value, err := readText(sec, prefix+suffix)
		if err != nil {
			return e, fmt.Errorf("%s: %w", name, err)
		}
		e.Fields = append(e.Fields, types.Field{Type: ft, Value: value})
	}
	return e, nil
}

// readText returns the value stored under key. The hex encoded UCS-2 form
// under key+"Unicode" takes precedence over the plain form.
func readText(sec *ini.Section, key string) (string, error) {
	if sec.HasKey(key + unicodeKeySuffix) {
		return decodeUnicodeHex(sec.Key(key + unicodeKeySuffix).String())
	}
	if !sec.HasKey(key) {
		return "", nil
	}
	return sec.Key(key).String(), nil
}

var ucs2Decoder = unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM)

// decodeUnicodeHex decodes hex encoded big endian UCS-2 text.
func decodeUnicodeHex(s string) (string, error) {
	raw, err := hex.DecodeString(strings.TrimSpace(s))
	if err != nil {
		return "", err
	}
	out, err := ucs2Decoder.NewDecoder().Bytes(raw)
	if err != nil {
		return "", err
	}
	return string(out), nil
}
