package cqrs

type RegisterAccountCommand struct {
	Username string
	Password string
}

type CreateMessageCommand struct {
	PostedBy        int
	MessageText     string
	TimePostedEpoch int64
}

type UpdateMessageCommand struct {
	MessageID   int
	MessageText string
}

type DeleteMessageCommand struct {
	MessageID int
}
