package services

import (
	"fmt"
	"sync"

	"github.com/AnthonySaastify/Dr.Viva-v2/models"
)

type ScheduleServiceInterface interface {
	GetSchedule() []models.DaySchedule
	AddSession(day string, session models.StudySession) (models.DaySchedule, error)
	AttachFile(day string, index int, subject string, att models.Attachment) (models.StudySession, error)
}

// ScheduleService holds the weekly study plan in process memory. This is
// deliberate demo state: it is seeded at startup, shared by all requests
// and lost on restart. Last writer wins, no history is kept.
type ScheduleService struct {
	mu       sync.Mutex
	schedule []models.DaySchedule
}

func NewScheduleService() *ScheduleService {
	return &ScheduleService{schedule: defaultSchedule()}
}

func defaultSchedule() []models.DaySchedule {
	return []models.DaySchedule{
		{Day: "Monday", Sessions: []models.StudySession{
			{Day: "Monday", Time: "9:00 AM - 11:00 AM", Subject: "Anatomy & Histology"},
			{Day: "Monday", Time: "1:00 PM - 3:00 PM", Subject: "Physiology"},
		}},
		{Day: "Tuesday", Sessions: []models.StudySession{
			{Day: "Tuesday", Time: "10:00 AM - 12:00 PM", Subject: "Biochemistry"},
			{Day: "Tuesday", Time: "2:00 PM - 4:00 PM", Subject: "Medical Ethics"},
		}},
		{Day: "Wednesday", Sessions: []models.StudySession{
			{Day: "Wednesday", Time: "9:00 AM - 11:00 AM", Subject: "Physiology"},
			{Day: "Wednesday", Time: "1:00 PM - 3:00 PM", Subject: "Anatomy & Histology"},
		}},
		{Day: "Thursday", Sessions: []models.StudySession{
			{Day: "Thursday", Time: "10:00 AM - 12:00 PM", Subject: "Medical Ethics"},
			{Day: "Thursday", Time: "2:00 PM - 4:00 PM", Subject: "Biochemistry"},
		}},
		{Day: "Friday", Sessions: []models.StudySession{
			{Day: "Friday", Time: "9:00 AM - 12:00 PM", Subject: "Anatomy & Histology"},
			{Day: "Friday", Time: "2:00 PM - 4:00 PM", Subject: "Physiology"},
		}},
	}
}

func (s *ScheduleService) GetSchedule() []models.DaySchedule {
	s.mu.Lock()
	defer s.mu.Unlock()

	// Copy so callers never alias the guarded slices.
	out := make([]models.DaySchedule, len(s.schedule))
	for i, day := range s.schedule {
		sessions := make([]models.StudySession, len(day.Sessions))
		copy(sessions, day.Sessions)
		out[i] = models.DaySchedule{Day: day.Day, Sessions: sessions}
	}
	return out
}

// AddSession appends a session to the given day, creating the day entry
// when it does not exist yet.
func (s *ScheduleService) AddSession(day string, session models.StudySession) (models.DaySchedule, error) {
	if session.Time == "" || session.Subject == "" {
		return models.DaySchedule{}, fmt.Errorf("%w: time and subject are required", ErrValidation)
	}
	session.Day = day

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.schedule {
		if s.schedule[i].Day == day {
			s.schedule[i].Sessions = append(s.schedule[i].Sessions, session)
			return s.schedule[i], nil
		}
	}

	entry := models.DaySchedule{Day: day, Sessions: []models.StudySession{session}}
	s.schedule = append(s.schedule, entry)
	return entry, nil
}

// AttachFile links a Drive file to the session slot addressed by
// day/index/subject. A slot holds at most one attachment; re-attaching
// replaces the previous reference without keeping history.
func (s *ScheduleService) AttachFile(day string, index int, subject string, att models.Attachment) (models.StudySession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.schedule {
		if s.schedule[i].Day != day {
			continue
		}
		sessions := s.schedule[i].Sessions
		if index < 0 || index >= len(sessions) {
			return models.StudySession{}, fmt.Errorf("%w: %s", ErrSessionNotFound, models.SlotKey(day, index, subject))
		}
		if sessions[index].Subject != subject {
			return models.StudySession{}, fmt.Errorf("%w: %s", ErrSessionNotFound, models.SlotKey(day, index, subject))
		}
		sessions[index].Attachment = &att
		return sessions[index], nil
	}
	return models.StudySession{}, fmt.Errorf("%w: %s", ErrSessionNotFound, models.SlotKey(day, index, subject))
}

var ScheduleServiceInstance ScheduleServiceInterface
