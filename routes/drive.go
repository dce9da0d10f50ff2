package routes

import (
	"context"
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/AnthonySaastify/Dr.Viva-v2/drivestore"
	"github.com/AnthonySaastify/Dr.Viva-v2/models"
)

// DriveBrowser is the slice of the Drive client these handlers need.
type DriveBrowser interface {
	ListFolders(ctx context.Context) ([]models.DriveFile, error)
	FolderForSubject(subject string) (string, error)
	EnsureSubjectFolder(ctx context.Context, subject, parentID string) (string, error)
	Upload(ctx context.Context, folderID, name, mimeType string, r io.Reader) (models.DriveFile, error)
}

func RegisterDriveRoutes(group *gin.RouterGroup, drive DriveBrowser) {
	group.GET("/drive/folders", func(c *gin.Context) { ListDriveFolders(c, drive) })
	group.POST("/drive/subjects/:subject/folder", func(c *gin.Context) { EnsureSubjectFolder(c, drive) })
	group.POST("/drive/folders/:folderId/files", func(c *gin.Context) { UploadDriveFile(c, drive) })
}

func ListDriveFolders(c *gin.Context, drive DriveBrowser) {
	folders, err := drive.ListFolders(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "folders": folders})
}

// EnsureSubjectFolder finds or creates the Drive folder for a subject.
// The optional parent comes from the request body.
func EnsureSubjectFolder(c *gin.Context, drive DriveBrowser) {
	subject := c.Param("subject")

	var body struct {
		ParentID string `json:"parent_id"`
	}
	// An empty body is fine, the parent is optional.
	_ = c.ShouldBindJSON(&body)

	folderID, err := drive.EnsureSubjectFolder(c.Request.Context(), subject, body.ParentID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "folder_id": folderID})
}

func UploadDriveFile(c *gin.Context, drive DriveBrowser) {
	folderID := c.Param("folderId")

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "file is required"})
		return
	}

	f, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}
	defer f.Close()

	uploaded, err := drive.Upload(c.Request.Context(), folderID, fileHeader.Filename, fileHeader.Header.Get("Content-Type"), f)
	if err != nil {
		if errors.Is(err, drivestore.ErrMissingCredentials) {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Upload failed"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "file": uploaded})
}
