package analysis

import (
	"fmt"
	"strings"

	"careerpilot-backend/internal/llm"
)

const roleSuggestionPrompt = "Analyze the resume and return ONLY the top 5 suitable job roles " +
	"as a comma-separated list. Do not add numbering or bullet points."

const atsScoringPrompt = `Act as a strict Applicant Tracking System (ATS) and professional resume writer.
Analyze the attached resume.
Return a RAW JSON object (do not wrap in markdown or code blocks) with the following structure:
{
  "score": number (0-100),
  "summary": "A 2 sentence professional summary of the candidate",
  "strengths": ["string", "string", "string"],
  "weaknesses": ["string", "string", "string"],
  "suggestions": ["string", "string", "string"]
}`

// buildRoleSuggestionRequest builds the role-suggestion payload. The document
// bytes travel as an opaque inline attachment; they are never rewritten.
func buildRoleSuggestionRequest(doc []byte, mimeType string) llm.Request {
	return llm.Request{
		Instructions: []string{roleSuggestionPrompt},
		Document:     &llm.InlineDocument{Data: doc, MIMEType: mimeType},
	}
}

// buildATSScoringRequest builds the ATS-scoring payload.
func buildATSScoringRequest(doc []byte, mimeType string) llm.Request {
	return llm.Request{
		Instructions: []string{atsScoringPrompt},
		Document:     &llm.InlineDocument{Data: doc, MIMEType: mimeType},
	}
}

// buildCoverLetterRequest builds the cover-letter payload for a specific
// position. The job description is optional.
func buildCoverLetterRequest(doc []byte, mimeType, jobTitle, company, jobDescription string) llm.Request {
	var b strings.Builder
	fmt.Fprintf(&b, "Act as a professional candidate. Write a concise, compelling cover letter for the position of %q at %q.\n", jobTitle, company)
	if trimmed := strings.TrimSpace(jobDescription); trimmed != "" {
		fmt.Fprintf(&b, "\nRefer to these job requirements: %s\n", trimmed)
	}
	b.WriteString("\nUse the attached resume to highlight my relevant skills and experience that match this specific role.\n")
	b.WriteString("Keep the tone professional, enthusiastic, and confident.\n")
	b.WriteString(`Do not include placeholders like "[Your Name]" or "[Address]" at the top; start directly with "Dear Hiring Manager,".`)

	return llm.Request{
		Instructions: []string{b.String()},
		Document:     &llm.InlineDocument{Data: doc, MIMEType: mimeType},
	}
}
