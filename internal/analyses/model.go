package analyses

// Request is the analyze payload. Length thresholds count characters after trimming.
type Request struct {
	JobDescription  string `json:"jobDescription" validate:"mintrim=50"`
	ResumeText      string `json:"resumeText" validate:"mintrim=100"`
	CoverLetterText string `json:"coverLetterText"`
}

// PromptPair is the system instruction and user message derived from a Request.
type PromptPair struct {
	System string
	User   string
}

// Result holds the sections recovered from a model reply.
type Result struct {
	BulletPoints       []string `json:"bulletPoints"`
	RevisedResume      string   `json:"revisedResume"`
	RevisedCoverLetter string   `json:"revisedCoverLetter"`
}

// Usage carries provider token counters.
type Usage struct {
	InputTokens  int64 `json:"inputTokens"`
	OutputTokens int64 `json:"outputTokens"`
}

// Outcome is a completed analysis.
type Outcome struct {
	Result
	Usage Usage `json:"usage"`
}
