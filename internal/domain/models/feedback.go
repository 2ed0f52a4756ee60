package models

type Feedback struct {
	FeedbackID    int64   `json:"feedback_id"`
	Comment       string  `json:"comment"`
	Response      string  `json:"response"`
	TripID        int     `json:"trip_id"`
	SupportEmail  *string `json:"support,omitempty"`
	CustomerEmail string  `json:"customer"`
}

// FeedbackPerson is the trimmed user identity embedded in feedback listings.
type FeedbackPerson struct {
	Email string `json:"email"`
	Name  string `json:"name"`
	Sname string `json:"sname"`
}

type FeedbackView struct {
	FeedbackID int64           `json:"feedback_id"`
	Comment    string          `json:"comment"`
	Response   string          `json:"response"`
	TripID     int             `json:"trip_id"`
	Support    *FeedbackPerson `json:"support"`
	Customer   *FeedbackPerson `json:"customer"`
}
