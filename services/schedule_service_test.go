package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AnthonySaastify/Dr.Viva-v2/models"
)

func TestGetScheduleSeedsFullWeek(t *testing.T) {
	service := NewScheduleService()

	schedule := service.GetSchedule()
	require.Len(t, schedule, 5)
	assert.Equal(t, "Monday", schedule[0].Day)
	assert.Equal(t, "Friday", schedule[4].Day)

	require.Len(t, schedule[0].Sessions, 2)
	assert.Equal(t, "Anatomy & Histology", schedule[0].Sessions[0].Subject)
	assert.Equal(t, "9:00 AM - 11:00 AM", schedule[0].Sessions[0].Time)
}

func TestGetScheduleReturnsCopies(t *testing.T) {
	service := NewScheduleService()

	first := service.GetSchedule()
	first[0].Sessions[0].Subject = "Astronomy"
	first[0].Day = "Someday"

	second := service.GetSchedule()
	assert.Equal(t, "Monday", second[0].Day)
	assert.Equal(t, "Anatomy & Histology", second[0].Sessions[0].Subject)
}

func TestAddSessionToExistingDay(t *testing.T) {
	service := NewScheduleService()

	day, err := service.AddSession("Monday", models.StudySession{
		Time:    "5:00 PM - 6:00 PM",
		Subject: "Biochemistry",
	})
	require.NoError(t, err)
	require.Len(t, day.Sessions, 3)
	assert.Equal(t, "Monday", day.Sessions[2].Day)
	assert.Equal(t, "Biochemistry", day.Sessions[2].Subject)
}

func TestAddSessionCreatesNewDay(t *testing.T) {
	service := NewScheduleService()

	day, err := service.AddSession("Saturday", models.StudySession{
		Time:    "10:00 AM - 12:00 PM",
		Subject: "Medical Ethics",
	})
	require.NoError(t, err)
	assert.Equal(t, "Saturday", day.Day)
	require.Len(t, day.Sessions, 1)

	schedule := service.GetSchedule()
	assert.Len(t, schedule, 6)
}

func TestAddSessionValidation(t *testing.T) {
	service := NewScheduleService()

	_, err := service.AddSession("Monday", models.StudySession{Subject: "Physiology"})
	assert.ErrorIs(t, err, ErrValidation)

	_, err = service.AddSession("Monday", models.StudySession{Time: "9:00 AM"})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestAttachFileReplacesPreviousAttachment(t *testing.T) {
	service := NewScheduleService()

	first := models.Attachment{FileID: "f1", FileName: "v1.pdf", MimeType: "application/pdf"}
	session, err := service.AttachFile("Monday", 0, "Anatomy & Histology", first)
	require.NoError(t, err)
	require.NotNil(t, session.Attachment)
	assert.Equal(t, "f1", session.Attachment.FileID)

	second := models.Attachment{FileID: "f2", FileName: "v2.pdf", MimeType: "application/pdf"}
	session, err = service.AttachFile("Monday", 0, "Anatomy & Histology", second)
	require.NoError(t, err)
	assert.Equal(t, "f2", session.Attachment.FileID)

	schedule := service.GetSchedule()
	require.NotNil(t, schedule[0].Sessions[0].Attachment)
	assert.Equal(t, "f2", schedule[0].Sessions[0].Attachment.FileID)
}

func TestAttachFileUnknownSlot(t *testing.T) {
	service := NewScheduleService()
	att := models.Attachment{FileID: "f1", FileName: "notes.pdf"}

	_, err := service.AttachFile("Someday", 0, "Physiology", att)
	assert.ErrorIs(t, err, ErrSessionNotFound)

	_, err = service.AttachFile("Monday", 9, "Physiology", att)
	assert.ErrorIs(t, err, ErrSessionNotFound)

	// Subject must match the slot it addresses.
	_, err = service.AttachFile("Monday", 0, "Physiology", att)
	assert.ErrorIs(t, err, ErrSessionNotFound)
	assert.Contains(t, err.Error(), "Monday__0__Physiology")
}
