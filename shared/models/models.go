package models

// Account is a registered user. AccountID is assigned by the store on insert.
type Account struct {
	AccountID int    `json:"account_id" db:"account_id"`
	Username  string `json:"username" db:"username" validate:"required"`
	Password  string `json:"password" db:"password" validate:"min=4"`
}

// Message is a short text post authored by an Account.
// TimePostedEpoch is epoch milliseconds as supplied by the client.
type Message struct {
	MessageID       int    `json:"message_id" db:"message_id"`
	PostedBy        int    `json:"posted_by" db:"posted_by"`
	MessageText     string `json:"message_text" db:"message_text" validate:"notblank,max=255"`
	TimePostedEpoch int64  `json:"time_posted_epoch" db:"time_posted_epoch"`
}
