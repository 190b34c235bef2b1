package api

import (
	"github.com/phrazzld/vocab-drill/internal/domain"
	"github.com/phrazzld/vocab-drill/internal/store"
)

// SwitchModeRequest defines the payload for the mode switch endpoint.
type SwitchModeRequest struct {
	Mode string `json:"mode" validate:"required,oneof=revision mistakes"`
}

// AnswerRequest defines the payload for the answer endpoint.
type AnswerRequest struct {
	Response string `json:"response" validate:"required,oneof=known unknown"`
}

// CardView is the current card as shown to the learner. Meaning and
// sentence are only present once revealed.
type CardView struct {
	ID       int    `json:"id"`
	Word     string `json:"word"`
	Meaning  string `json:"meaning,omitempty"`
	Sentence string `json:"sentence,omitempty"`
}

// SessionResponse is the client-facing view of a drill session.
type SessionResponse struct {
	ID       string `json:"id"`
	Mode     string `json:"mode"`
	Position int    `json:"position"`
	Total    int    `json:"total"`
	Revealed bool   `json:"revealed"`

	// MistakeCount drives the "Vocabs Missed" counter
	MistakeCount int `json:"mistake_count"`

	// AllCleared is set once every mistake was answered correctly in mistakes mode
	AllCleared bool `json:"all_cleared"`

	CanReviseRandomly bool `json:"can_revise_randomly"`
	CanReviseMistakes bool `json:"can_revise_mistakes"`

	Card *CardView `json:"card,omitempty"`
}

// StatsResponse reports process-wide drill counters.
type StatsResponse struct {
	ActiveSessions int              `json:"active_sessions"`
	Events         map[string]int64 `json:"events"`
}

// sessionToResponse converts a stored session into its client view.
func sessionToResponse(rec *store.SessionRecord) SessionResponse {
	s := rec.State
	position, total := s.Position()

	resp := SessionResponse{
		ID:                rec.ID.String(),
		Mode:              string(s.Mode),
		Position:          position,
		Total:             total,
		Revealed:          s.Revealed,
		MistakeCount:      s.MistakeCount(),
		AllCleared:        s.AllCleared(),
		CanReviseRandomly: s.CanSwitchTo(domain.ModeRevision),
		CanReviseMistakes: s.CanSwitchTo(domain.ModeMistakes),
	}

	if card, ok := s.Current(); ok {
		view := &CardView{ID: card.ID, Word: card.Word}
		if s.Revealed {
			view.Meaning = card.Meaning
			view.Sentence = card.Sentence
		}
		resp.Card = view
	}

	return resp
}
