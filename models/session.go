package models

import "fmt"

// Attachment references a single Drive file linked to a session slot.
type Attachment struct {
	FileID   string `json:"file_id"`
	FileName string `json:"file_name"`
	MimeType string `json:"mime_type"`
}

// StudySession is one scheduled study block. A slot holds at most one
// attachment; re-attaching replaces the previous reference.
type StudySession struct {
	Day        string      `json:"day"`
	Time       string      `json:"time"`
	Subject    string      `json:"subject"`
	Instructor string      `json:"instructor,omitempty"`
	Attachment *Attachment `json:"attachment,omitempty"`
}

// DaySchedule groups the sessions of a single weekday.
type DaySchedule struct {
	Day      string         `json:"day"`
	Sessions []StudySession `json:"sessions"`
}

// SessionRef identifies a session in an export request.
type SessionRef struct {
	Day        string `json:"day"`
	Time       string `json:"time"`
	Subject    string `json:"subject"`
	Instructor string `json:"instructor,omitempty"`
}

// SlotKey is the composite key addressing a session slot.
func SlotKey(day string, index int, subject string) string {
	return fmt.Sprintf("%s__%d__%s", day, index, subject)
}

// DriveFile is a read-only projection of Drive file metadata. The
// application never owns this state, only point-in-time list results.
type DriveFile struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	MimeType string   `json:"mime_type"`
	Parents  []string `json:"parents,omitempty"`
}
