// Package naming derives contact file names from phonebook entries: it picks a
// display name from an entry's fields, maps the entry's memory type to a
// source label, and reduces the result to a filesystem-safe base name.
package naming
