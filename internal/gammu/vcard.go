package gammu

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/emersion/go-vcard"
	"github.com/google/uuid"

	"github.com/mesh-intelligence/backup-extractor/pkg/types"
)

// uidNamespace scopes the name-based UUIDs generated for contact cards.
var uidNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("urn:gammu:phonebook"))

// telephoneTypes maps number fields to vCard TYPE parameters. Numbers
// without an entry are written without a type.
var telephoneTypes = map[types.FieldType][]string{
	types.FieldNumberMobile:    {vcard.TypeCell},
	types.FieldNumberWork:      {vcard.TypeWork, vcard.TypeVoice},
	types.FieldNumberFax:       {vcard.TypeFax},
	types.FieldNumberHome:      {vcard.TypeHome, vcard.TypeVoice},
	types.FieldNumberPager:     {vcard.TypePager},
	types.FieldNumberMessaging: {"msg"},
	types.FieldNumberGeneral:   nil,
	types.FieldNumberOther:     nil,
}

// plainProperties maps fields copied verbatim to a vCard property.
var plainProperties = map[types.FieldType]string{
	types.FieldNickName: vcard.FieldNickname,
	types.FieldEmail:    vcard.FieldEmail,
	types.FieldEmail2:   vcard.FieldEmail,
	types.FieldURL:      vcard.FieldURL,
	types.FieldNote:     vcard.FieldNote,
	types.FieldCompany:  vcard.FieldOrganization,
	types.FieldJobTitle: vcard.FieldTitle,
	types.FieldDate:     vcard.FieldBirthday,
	types.FieldCategory: vcard.FieldCategories,
}

// EncodeEntry renders e as a vCard. Fields with an unknown type are dropped.
func (l *Library) EncodeEntry(e types.Entry) (string, error) {
	if len(e.Fields) == 0 {
		return "", types.ErrEmptyEntry
	}

	card := l.buildCard(e)

	var sb strings.Builder
	if err := vcard.NewEncoder(&sb).Encode(card); err != nil {
		return "", fmt.Errorf("encode vcard: %w", err)
	}
	return sb.String(), nil
}

func (l *Library) buildCard(e types.Entry) vcard.Card {
	card := make(vcard.Card)
	card.SetValue(vcard.FieldVersion, DefaultVCardVersion)

	first, _ := e.Value(types.FieldFirstName)
	last, _ := e.Value(types.FieldLastName)
	card.SetName(&vcard.Name{GivenName: first, FamilyName: last})
	card.SetValue(vcard.FieldFormattedName, formattedName(e))

	var addr vcard.Address
	for _, f := range e.Fields {
		if f.Value == "" {
			continue
		}
		if params, ok := telephoneTypes[f.Type]; ok {
			tel := &vcard.Field{Value: f.Value}
			if len(params) > 0 {
				tel.Params = vcard.Params{vcard.ParamType: append([]string(nil), params...)}
			}
			card.Add(vcard.FieldTelephone, tel)
			continue
		}
		if prop, ok := plainProperties[f.Type]; ok {
			card.AddValue(prop, f.Value)
			continue
		}
		switch f.Type {
		case types.FieldPostal:
			card.AddAddress(&vcard.Address{StreetAddress: f.Value})
		case types.FieldStreet:
			addr.StreetAddress = f.Value
		case types.FieldCity:
			addr.Locality = f.Value
		case types.FieldState:
			addr.Region = f.Value
		case types.FieldZip:
			addr.PostalCode = f.Value
		case types.FieldCountry:
			addr.Country = f.Value
		}
	}
	if addr != (vcard.Address{}) {
		card.AddAddress(&addr)
	}

	card.SetValue(vcard.FieldUID, entryUID(e).String())

	switch l.VCardVersion {
	case DefaultVCardVersion:
	case "4.0":
		vcard.ToV4(card)
	default:
		card.SetValue(vcard.FieldVersion, l.VCardVersion)
	}
	return card
}

// formattedName picks the FN value. Unlike file naming it prefers the
// formal name, and falls back to the first number so that FN is never empty
// for a non-empty entry.
func formattedName(e types.Entry) string {
	if v, _ := e.Value(types.FieldFormalName); v != "" {
		return v
	}
	first, _ := e.Value(types.FieldFirstName)
	last, _ := e.Value(types.FieldLastName)
	if full := strings.TrimSpace(first + " " + last); full != "" {
		return full
	}
	if v, _ := e.Value(types.FieldName); v != "" {
		return v
	}
	for _, f := range e.Fields {
		if _, ok := telephoneTypes[f.Type]; ok && f.Value != "" {
			return f.Value
		}
	}
	return ""
}

// entryUID derives a stable identifier from the entry's memory, location
// and field contents.
func entryUID(e types.Entry) uuid.UUID {
	var sb strings.Builder
	sb.WriteString(string(e.MemoryType))
	sb.WriteByte(':')
	sb.WriteString(strconv.Itoa(e.Location))
	for _, f := range e.Fields {
		sb.WriteByte('\n')
		sb.WriteString(string(f.Type))
		sb.WriteByte('=')
		sb.WriteString(f.Value)
	}
	return uuid.NewSHA1(uidNamespace, []byte(sb.String()))
}
