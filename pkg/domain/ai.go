package domain

// AiSession is one assistant conversation.
type AiSession struct {
	Entity
	Title string `json:"title,omitempty"`
}

// AiMessage is one turn in an assistant conversation. Unlike other records
// its creation timestamp is supplied by the caller (the moment the message
// was sent), not stamped at insert.
type AiMessage struct {
	Entity
	SessionID string `json:"sessionId"`
	Role      AiRole `json:"role"`
	Content   string `json:"content"`
}
