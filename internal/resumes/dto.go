package resumes

import "time"

// ResumeResponse is the outward-facing representation of a resume record.
type ResumeResponse struct {
	ResumeID   string    `json:"resumeId"`
	FileName   string    `json:"fileName"`
	MimeType   string    `json:"mimeType"`
	SizeBytes  int64     `json:"sizeBytes"`
	UploadedAt time.Time `json:"uploadedAt"`
}

func toResponse(rec Resume) ResumeResponse {
	return ResumeResponse{
		ResumeID:   rec.ID,
		FileName:   rec.FileName,
		MimeType:   rec.MimeType,
		SizeBytes:  rec.SizeBytes,
		UploadedAt: rec.UploadedAt,
	}
}
