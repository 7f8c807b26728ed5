package model

import "time"

// Quiz is one submitted quiz response. Rows are append-only; no update or
// delete is exposed.
type Quiz struct {
	ID         int       `json:"id"`
	Question1  int       `json:"question1"`
	Question2  int       `json:"question2"`
	Question3  int       `json:"question3"`
	Question4  int       `json:"question4"`
	PlaylistID string    `json:"playlist_id"`
	IPAddress  *string   `json:"ip_address,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

// CreateQuizRequest is the payload for submitting a quiz. Answers are
// pointers so a missing field is distinguishable from a zero value; range
// checking happens in the handler so the error can name the question.
type CreateQuizRequest struct {
	Question1  *int   `json:"question1" binding:"required"`
	Question2  *int   `json:"question2" binding:"required"`
	Question3  *int   `json:"question3" binding:"required"`
	Question4  *int   `json:"question4" binding:"required"`
	PlaylistID string `json:"playlist_id" binding:"required"`
}

// Answers returns the four answers in question order.
func (r *CreateQuizRequest) Answers() [4]int {
	return [4]int{*r.Question1, *r.Question2, *r.Question3, *r.Question4}
}
