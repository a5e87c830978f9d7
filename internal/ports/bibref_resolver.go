package ports

import "context"

// Contract for resolving an author to its bibliographic reference string.
// Lookup is a case-insensitive substring match; an empty string is the valid
// "no bibref known" result, not an error.
type BibrefResolver interface {
	Bibref(ctx context.Context, author string) (string, error)
}
