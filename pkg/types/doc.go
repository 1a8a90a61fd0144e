// Package types defines the phonebook data model (Backup, Entry, Field), the
// Library interface the extractor consumes, and the standard errors shared by
// Library implementations.
package types
