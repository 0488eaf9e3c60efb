// Package memory holds short-term conversation state: a rolling window
// of recent utterances plus the last resolved topic, per session.
// Durability of resolved facts lives in the corpus write-back, not here.
package memory

import "strings"

const defaultWindow = 5

// State is the per-session rolling window. It is mutated strictly
// sequentially within a session and discarded at session end.
type State struct {
	Utterances []string `json:"utterances"`
	LastTopic  string   `json:"last_topic"`
	Capacity   int      `json:"capacity"`
}

func NewState(capacity int) *State {
	if capacity <= 0 {
		capacity = defaultWindow
	}
	return &State{Capacity: capacity}
}

// Add appends an utterance, evicting the oldest beyond capacity.
func (s *State) Add(utterance string) {
	s.Utterances = append(s.Utterances, utterance)
	if len(s.Utterances) > s.Capacity {
		s.Utterances = s.Utterances[len(s.Utterances)-s.Capacity:]
	}
}

// Context joins the window into one string used to bias retrieval.
func (s *State) Context() string {
	return strings.Join(s.Utterances, " ")
}

// Reset clears the window and topic at session end.
func (s *State) Reset() {
	s.Utterances = nil
	s.LastTopic = ""
}
