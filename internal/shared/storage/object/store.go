package object

import (
	"context"
	"io"
)

// ObjectStore defines the contract for saving and retrieving binary objects.
//
// Storage keys are relative, slash-separated paths of the form
// <ownerKey>/<uniqueName>. A key held by a metadata record is a hint, not a
// guarantee: callers that need the bytes must re-check existence first and may
// rebuild a candidate key via CanonicalKey when the recorded one has drifted.
type ObjectStore interface {
	Save(ctx context.Context, userId string, fileName string, r io.Reader) (storageKey string, sizeBytes int64, mimeType string, err error)
	Open(ctx context.Context, storageKey string) (io.ReadCloser, error)
	Exists(ctx context.Context, storageKey string) (bool, error)
	Delete(ctx context.Context, storageKey string) error
	// CanonicalKey rebuilds the key an object with the given base name would
	// have under the store's canonical layout for this user.
	CanonicalKey(userId string, baseName string) string
}
