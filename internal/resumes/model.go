package resumes

import "time"

// Resume is the metadata record for an uploaded resume document.
//
// StorageKey is a best-effort pointer into the object store, not a guarantee:
// physical presence must be re-verified (see Locator) before the bytes are
// used. Records are immutable after creation except for deletion.
type Resume struct {
	ID         string
	UserID     string
	FileName   string
	StorageKey string
	MimeType   string
	SizeBytes  int64
	UploadedAt time.Time
}
