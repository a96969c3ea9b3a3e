package models

// ChatRequest is the payload sent to POST /chat.
type ChatRequest struct {
	SessionID string `json:"session_id"`
	Question  string `json:"question"`
	Answer    string `json:"answer"`
}

// Exchange is one question/answer/reply entry in a session transcript.
type Exchange struct {
	User string `json:"user"` // "Q: <cleaned question>\nA: <answer>"
	AI   string `json:"ai"`
}

// ChatResponse is the tutor reply plus the session transcript, oldest first.
type ChatResponse struct {
	Reply      string     `json:"reply"`
	Difficulty *string    `json:"difficulty"`
	History    []Exchange `json:"history"`
}
