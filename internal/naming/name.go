package naming

import "github.com/mesh-intelligence/backup-extractor/pkg/types"

// ResolveName picks the display name for an entry's fields. The first rule
// that matches wins:
//
//  1. first and last name: "first last"
//  2. formal name
//  3. plain name
//  4. last name
//  5. first name
//
// Only the first field of each type is consulted and empty values count as
// absent. The boolean is false when no rule matches.
func ResolveName(fields []types.Field) (string, bool) {
	first, _ := types.FieldValue(fields, types.FieldFirstName)
	last, _ := types.FieldValue(fields, types.FieldLastName)
	formal, _ := types.FieldValue(fields, types.FieldFormalName)
	plain, _ := types.FieldValue(fields, types.FieldName)

	switch {
	case first != "" && last != "":
		return first + " " + last, true
	case formal != "":
		return formal, true
	case plain != "":
		return plain, true
	case last != "":
		return last, true
	case first != "":
		return first, true
	default:
		return "", false
	}
}
