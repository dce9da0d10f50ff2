package drivestore

import (
	"context"
	"fmt"
	"io"
	"strings"

	drive "google.golang.org/api/drive/v3"

	"github.com/AnthonySaastify/Dr.Viva-v2/models"
)

const folderMimeType = "application/vnd.google-apps.folder"

// SessionFile is one attachment resolved for a session. Either Body (a
// stream the consumer must close) or Data (an in-memory buffer) is set.
type SessionFile struct {
	Name string
	Data []byte
	Body io.ReadCloser
}

// FolderForSubject looks up the configured folder for a subject.
func (c *Client) FolderForSubject(subject string) (string, error) {
	id, ok := c.subjectFolders[subject]
	if !ok || id == "" {
		return "", fmt.Errorf("%w: %s", ErrSubjectNotMapped, subject)
	}
	return id, nil
}

// ListFiles runs a Drive file query and projects the results.
func (c *Client) ListFiles(ctx context.Context, query string) ([]models.DriveFile, error) {
	srv, err := c.service(ctx)
	if err != nil {
		return nil, err
	}

	call := srv.Files.List().PageSize(c.pageSize).Fields("files(id, name, mimeType, parents)")
	if query != "" {
		call = call.Q(query)
	}
	list, err := call.Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("list Drive files: %w", err)
	}

	files := make([]models.DriveFile, 0, len(list.Files))
	for _, f := range list.Files {
		files = append(files, projectFile(f))
	}
	return files, nil
}

// ListFolders lists folders only.
func (c *Client) ListFolders(ctx context.Context) ([]models.DriveFile, error) {
	return c.ListFiles(ctx, fmt.Sprintf("mimeType = '%s'", folderMimeType))
}

// EnsureSubjectFolder returns the ID of the folder named after the
// subject, creating it when absent.
func (c *Client) EnsureSubjectFolder(ctx context.Context, subject, parentID string) (string, error) {
	query := fmt.Sprintf("mimeType = '%s' and name = '%s'", folderMimeType, escapeQueryTerm(subject))
	if parentID != "" {
		query += fmt.Sprintf(" and '%s' in parents", parentID)
	}

	folders, err := c.ListFiles(ctx, query)
	if err != nil {
		return "", err
	}
	if len(folders) > 0 {
		return folders[0].ID, nil
	}

	srv, err := c.service(ctx)
	if err != nil {
		return "", err
	}

	meta := &drive.File{Name: subject, MimeType: folderMimeType}
	if parentID != "" {
		meta.Parents = []string{parentID}
	}
	created, err := srv.Files.Create(meta).Fields("id").Context(ctx).Do()
	if err != nil {
		return "", fmt.Errorf("create folder for subject %s: %w", subject, err)
	}
	return created.Id, nil
}

// FilesForSession resolves the attachments stored under the session's
// subject folder. A subject with no mapping or an empty mapping yields
// zero files rather than an error, so exports never fail on unmapped
// subjects.
func (c *Client) FilesForSession(ctx context.Context, ref models.SessionRef) ([]SessionFile, error) {
	folderID, ok := c.subjectFolders[ref.Subject]
	if !ok || folderID == "" {
		return nil, nil
	}

	srv, err := c.service(ctx)
	if err != nil {
		return nil, err
	}

	list, err := srv.Files.List().
		Q(fmt.Sprintf("'%s' in parents", folderID)).
		PageSize(c.pageSize).
		Fields("files(id, name, mimeType, parents)").
		Context(ctx).
		Do()
	if err != nil {
		return nil, fmt.Errorf("list files for subject %s: %w", ref.Subject, err)
	}

	// Sequential fetch, one file at a time.
	var files []SessionFile
	for _, f := range list.Files {
		resp, err := srv.Files.Get(f.Id).Context(ctx).Download()
		if err != nil {
			closeAll(files)
			return nil, fmt.Errorf("download %s: %w", f.Name, err)
		}
		files = append(files, SessionFile{Name: f.Name, Body: resp.Body})
	}
	return files, nil
}

// Upload stores a file under the given folder and returns its metadata.
func (c *Client) Upload(ctx context.Context, folderID, name, mimeType string, r io.Reader) (models.DriveFile, error) {
	srv, err := c.service(ctx)
	if err != nil {
		return models.DriveFile{}, err
	}

	meta := &drive.File{
		Name:     name,
		MimeType: mimeType,
		Parents:  []string{folderID},
	}
	created, err := srv.Files.Create(meta).Media(r).Fields("id, name, mimeType, parents").Context(ctx).Do()
	if err != nil {
		return models.DriveFile{}, fmt.Errorf("upload %s: %w", name, err)
	}
	return projectFile(created), nil
}

// escapeQueryTerm makes a value safe inside a single-quoted Drive query
// string.
func escapeQueryTerm(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	return strings.ReplaceAll(s, `'`, `\'`)
}

func projectFile(f *drive.File) models.DriveFile {
	return models.DriveFile{
		ID:       f.Id,
		Name:     f.Name,
		MimeType: f.MimeType,
		Parents:  f.Parents,
	}
}

func closeAll(files []SessionFile) {
	for _, f := range files {
		if f.Body != nil {
			f.Body.Close()
		}
	}
}
