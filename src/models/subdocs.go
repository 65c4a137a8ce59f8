package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Entry is implemented by the embedded sub-document types. WithEntryID
// returns a copy so list operations never mutate the caller's value.
type Entry[T any] interface {
	EntryID() primitive.ObjectID
	WithEntryID(id primitive.ObjectID) T
}

// AddEntry assigns a fresh identifier to e and inserts it at the head of the
// list, keeping existing entries in their relative order.
func AddEntry[T Entry[T]](list []T, e T) []T {
	e = e.WithEntryID(primitive.NewObjectID())
	out := make([]T, 0, len(list)+1)
	out = append(out, e)
	return append(out, list...)
}

// UpdateEntryByID applies patch to the entry whose identifier equals id and
// reports whether a match was found. Other entries are untouched.
func UpdateEntryByID[T Entry[T]](list []T, id primitive.ObjectID, patch func(T) T) ([]T, bool) {
	for i, e := range list {
		if e.EntryID() == id {
			updated := patch(e).WithEntryID(id)
			list[i] = updated
			return list, true
		}
	}
	return list, false
}

// RemoveEntryByID returns the list without the entry matching id. Removing an
// identifier that is not present is a no-op, not an error.
func RemoveEntryByID[T Entry[T]](list []T, id primitive.ObjectID) []T {
	out := make([]T, 0, len(list))
	for _, e := range list {
		if e.EntryID() != id {
			out = append(out, e)
		}
	}
	return out
}
