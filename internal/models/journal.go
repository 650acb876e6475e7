package models

// JournalEntry is an LLM-written astronaut diary entry. Fallback
// entries (produced when the text provider is unavailable) are marked
// so callers can tell them apart in logs.
type JournalEntry struct {
	Title       string `json:"title"`
	Entry       string `json:"entry"`
	Fallback    bool   `json:"fallback,omitempty"`
	GeneratedAt string `json:"generated_at"`
}
