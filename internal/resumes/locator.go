package resumes

import (
	"context"
	"fmt"
	"path"

	"careerpilot-backend/internal/shared/storage/object"
	"careerpilot-backend/internal/shared/telemetry"
)

// Locator reconciles a resume record against the object store.
//
// A record's StorageKey can drift: the store root may move between deploys
// while the unique base name of the object stays valid. Resolve treats the
// recorded key as a hint and falls back to the canonical key built from the
// base name before declaring the bytes gone.
type Locator struct {
	Store object.ObjectStore
}

// Resolve returns a storage key whose object is confirmed present at call
// time. It checks the recorded key first, then the canonical key for the
// record's base name, and returns ErrFileMissing when both checks fail.
// No retries: existence is a point-in-time local check.
func (l *Locator) Resolve(ctx context.Context, rec Resume) (string, error) {
	if l == nil || l.Store == nil {
		return "", fmt.Errorf("locator store not configured")
	}

	if rec.StorageKey != "" {
		ok, err := l.Store.Exists(ctx, rec.StorageKey)
		if err != nil {
			return "", fmt.Errorf("check stored key: %w", err)
		}
		if ok {
			return rec.StorageKey, nil
		}
	}

	recovered := l.Store.CanonicalKey(rec.UserID, path.Base(rec.StorageKey))
	if recovered != rec.StorageKey && path.Base(rec.StorageKey) != "." {
		ok, err := l.Store.Exists(ctx, recovered)
		if err != nil {
			return "", fmt.Errorf("check recovered key: %w", err)
		}
		if ok {
			telemetry.Info("resume.recovered_path", map[string]any{
				"resume_id":     rec.ID,
				"stored_key":    rec.StorageKey,
				"recovered_key": recovered,
			})
			return recovered, nil
		}
	}

	return "", fmt.Errorf("resume %s: searched %q and %q: %w", rec.ID, rec.StorageKey, recovered, ErrFileMissing)
}
