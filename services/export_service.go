package services

import (
	"archive/zip"
	"bytes"
	"compress/flate"
	"context"
	"fmt"
	"io"

	"github.com/AnthonySaastify/Dr.Viva-v2/drivestore"
	"github.com/AnthonySaastify/Dr.Viva-v2/models"
)

// SessionFileResolver fetches the attachments stored for a session.
type SessionFileResolver interface {
	FilesForSession(ctx context.Context, ref models.SessionRef) ([]drivestore.SessionFile, error)
}

type ExportServiceInterface interface {
	ExportSessions(ctx context.Context, refs []models.SessionRef) ([]byte, error)
}

// ExportService bundles the attachments of selected sessions into a ZIP
// archive. The archive is fully materialized before it is handed back, so
// a late fetch failure maps to a clean error instead of truncating a
// stream that already sent headers.
type ExportService struct {
	drive SessionFileResolver
}

func NewExportService(drive SessionFileResolver) *ExportService {
	return &ExportService{drive: drive}
}

func (s *ExportService) ExportSessions(ctx context.Context, refs []models.SessionRef) ([]byte, error) {
	if len(refs) == 0 {
		return nil, ErrNoSessions
	}

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	zw.RegisterCompressor(zip.Deflate, func(out io.Writer) (io.WriteCloser, error) {
		return flate.NewWriter(out, flate.BestCompression)
	})

	// Sessions and their files are appended one at a time, in request
	// order.
	for _, ref := range refs {
		files, err := s.drive.FilesForSession(ctx, ref)
		if err != nil {
			zw.Close()
			return nil, fmt.Errorf("resolve files for %s %s: %w", ref.Day, ref.Time, err)
		}
		for i, f := range files {
			if err := appendEntry(zw, entryName(ref, f.Name), f); err != nil {
				closeBodies(files[i+1:])
				zw.Close()
				return nil, err
			}
		}
	}

	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("finalize archive: %w", err)
	}
	return buf.Bytes(), nil
}

func entryName(ref models.SessionRef, fileName string) string {
	return fmt.Sprintf("%s_%s_%s", ref.Day, ref.Time, fileName)
}

// closeBodies releases the streams of files that never made it into the
// archive.
func closeBodies(files []drivestore.SessionFile) {
	for _, f := range files {
		if f.Body != nil {
			f.Body.Close()
		}
	}
}

func appendEntry(zw *zip.Writer, name string, f drivestore.SessionFile) error {
	w, err := zw.Create(name)
	if err != nil {
		return fmt.Errorf("create archive entry %s: %w", name, err)
	}
	if f.Body != nil {
		defer f.Body.Close()
		if _, err := io.Copy(w, f.Body); err != nil {
			return fmt.Errorf("write archive entry %s: %w", name, err)
		}
		return nil
	}
	if _, err := w.Write(f.Data); err != nil {
		return fmt.Errorf("write archive entry %s: %w", name, err)
	}
	return nil
}

var ExportServiceInstance ExportServiceInterface
