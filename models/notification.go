package models

import "time"

// ReminderPayload is the asynq task payload for a seminar reminder.
type ReminderPayload struct {
	SeminarID string `json:"seminarId"`
	Hall      string `json:"hall"`
	Title     string `json:"title"`
	Email     string `json:"email"`
	Date      string `json:"date"`
	StartTime string `json:"startTime"`
}

// Notification is a stored notification record, read by the portal's
// pending-requests and reminder views.
type Notification struct {
	ID        string    `bson:"id" json:"id"`
	SeminarID string    `bson:"seminarId" json:"seminarId"`
	Email     string    `bson:"email" json:"email"`
	Title     string    `bson:"title" json:"title"`
	Body      string    `bson:"body" json:"body"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
}
