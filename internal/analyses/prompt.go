package analyses

import (
	"fmt"
	"strings"
)

const systemPromptFormat = `You are an expert career coach and professional resume writer with 15 years of experience helping candidates tailor their applications to specific job descriptions. You have deep knowledge of ATS (Applicant Tracking Systems) and what hiring managers look for.

Your task is to analyze a candidate's resume%s against a job description and produce:
1. A bullet-point list of specific, actionable changes you made and why
2. A fully rewritten resume that is highly tailored to the job description
%s

Guidelines for rewriting:
- Mirror the exact language and keywords from the job description where truthful
- Quantify achievements wherever possible (use placeholders like [X%%] if numbers are not provided)
- Reorder bullet points to lead with the most relevant experience for this specific role
- Adjust the professional summary/objective to directly address this role
- Keep the same overall structure and factual information - do not invent credentials
- For the cover letter: make it compelling, specific to the company and role, and under 400 words

IMPORTANT: Format your response EXACTLY as follows with these XML tags:

<bullet_points>
- [Change 1]: Brief explanation of why this change improves the application
- [Change 2]: Brief explanation
... (8-12 bullet points total)
</bullet_points>

<revised_resume>
[Full revised resume text here, preserving the original format as much as possible]
</revised_resume>
%s

Do not include any text outside of these XML tags. Do not add preamble or postamble.`

const (
	coverLetterStep    = "3. A fully rewritten cover letter tailored to the job description"
	coverLetterSection = "\n<revised_cover_letter>\n[Full revised cover letter text here]\n</revised_cover_letter>\n"
)

const userPromptFormat = `Here is the job description:

---JOB DESCRIPTION---
%s
---END JOB DESCRIPTION---

Here is the candidate's current resume:

---RESUME---
%s
---END RESUME---

%sPlease analyze and rewrite the resume%s to be maximally tailored to this job description.`

const coverLetterBlockFormat = `Here is the candidate's current cover letter:

---COVER LETTER---
%s
---END COVER LETTER---

`

// HasCoverLetter reports whether the request carries cover-letter text.
func (r Request) HasCoverLetter() bool {
	return strings.TrimSpace(r.CoverLetterText) != ""
}

// BuildPrompt renders the prompt pair. Output depends only on req.
func BuildPrompt(req Request) PromptPair {
	var andCover, step, section, coverBlock string
	if req.HasCoverLetter() {
		andCover = " and cover letter"
		step = coverLetterStep
		section = coverLetterSection
		coverBlock = fmt.Sprintf(coverLetterBlockFormat, strings.TrimSpace(req.CoverLetterText))
	}

	return PromptPair{
		System: fmt.Sprintf(systemPromptFormat, andCover, step, section),
		User: fmt.Sprintf(userPromptFormat,
			strings.TrimSpace(req.JobDescription),
			strings.TrimSpace(req.ResumeText),
			coverBlock,
			andCover,
		),
	}
}
