package models

import "time"

// DailyEmotionRecord is the cached emotional analysis of one user's entries
// for one UTC calendar day.
//
// EntryCount and LastEntryAt form the freshness fingerprint: a record is
// usable without regeneration only while EntryCount equals the current number
// of entries on that date and LastEntryAt is not older than the newest
// entry's creation timestamp. Records are upserted in place, never appended.
type DailyEmotionRecord struct {
	// UserID is the owning user. Not exposed via JSON.
	UserID int64 `json:"-"`

	// Date is the UTC calendar day the record covers, serialized as
	// "YYYY-MM-DD".
	Date string `json:"date"`

	// EmotionalScore is the day's emotional score, bounded to [1,10]
	// (1 = very negative, 10 = very positive).
	EmotionalScore int `json:"emotional_score"`

	// DominantEmotions lists the 1-3 dominant emotion labels, strongest first.
	DominantEmotions []string `json:"dominant_emotions"`

	// Summary is a short free-text description of the day's emotional state.
	Summary string `json:"summary"`

	// EntryCount is the number of entries folded into this record.
	EntryCount int `json:"entry_count"`

	// LastEntryAt is the creation timestamp of the newest contributing entry.
	LastEntryAt time.Time `json:"last_entry_at"`
}

// TableName returns the name of the database table
// associated with the DailyEmotionRecord model.
func (r DailyEmotionRecord) TableName() string {
	return "emotional_analysis_cache"
}
