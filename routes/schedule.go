package routes

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/AnthonySaastify/Dr.Viva-v2/models"
	"github.com/AnthonySaastify/Dr.Viva-v2/services"
)

func RegisterScheduleRoutes(group *gin.RouterGroup, scheduleService services.ScheduleServiceInterface) {
	group.GET("/schedule", func(c *gin.Context) { GetSchedule(c, scheduleService) })
	group.POST("/schedule/:day/sessions", func(c *gin.Context) { AddSession(c, scheduleService) })
	group.PUT("/schedule/:day/sessions/:index/attachment", func(c *gin.Context) { AttachSessionFile(c, scheduleService) })
}

func GetSchedule(c *gin.Context, scheduleService services.ScheduleServiceInterface) {
	c.JSON(http.StatusOK, gin.H{"success": true, "schedule": scheduleService.GetSchedule()})
}

func AddSession(c *gin.Context, scheduleService services.ScheduleServiceInterface) {
	day := c.Param("day")

	var session models.StudySession
	if err := c.ShouldBindJSON(&session); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}

	daySchedule, err := scheduleService.AddSession(day, session)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "day": daySchedule})
}

func AttachSessionFile(c *gin.Context, scheduleService services.ScheduleServiceInterface) {
	day := c.Param("day")
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "session index must be a number"})
		return
	}

	var body struct {
		Subject    string            `json:"subject"`
		Attachment models.Attachment `json:"attachment"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}

	session, err := scheduleService.AttachFile(day, index, body.Subject, body.Attachment)
	if err != nil {
		if errors.Is(err, services.ErrSessionNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Session not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "session": session})
}
