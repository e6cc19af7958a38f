package cqrs

// ---------- Account queries ----------

// LoginQuery looks up an account by exact username and password.
type LoginQuery struct {
	Username string
	Password string
}

// ---------- Message queries ----------

// GetMessageQuery fetches a single message by id.
type GetMessageQuery struct {
	MessageID int
}

// ListMessagesQuery fetches every message.
type ListMessagesQuery struct{}

// ListAccountMessagesQuery fetches all messages posted by one account.
type ListAccountMessagesQuery struct {
	AccountID int
}
