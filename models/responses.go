package models

// EmotionalAnalysisResponse is the body returned by
// POST /api/analysis/emotions: one record per calendar day that has entries
// and could be analyzed. Days whose regeneration failed and had no prior
// cache are absent; callers must tolerate sparse results.
type EmotionalAnalysisResponse struct {
	Analyses []DailyEmotionRecord `json:"analyses"`
}

// EntryWriteResponse is returned by entry create and update. The crisis
// assessment is included so the UI can surface support resources without a
// second round trip; it is nil when screening was skipped.
type EntryWriteResponse struct {
	Entry  JournalEntry      `json:"entry"`
	Crisis *CrisisAssessment `json:"crisis,omitempty"`
}

// DailyPromptResponse is returned by GET /api/prompts/daily.
type DailyPromptResponse struct {
	Question string `json:"question"`
}
