package attachment

import (
	"context"
	"fmt"
	"mime/multipart"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jiu45/JobPortal/internal/messaging/model"
	"github.com/jiu45/JobPortal/pkg/errors"
	"github.com/jiu45/JobPortal/pkg/logger"
)

const (
	MaxFiles    = 5
	MaxFileSize = 10 << 20 // 10 MB per file
)

// Ingestor turns the file parts of a single multipart request into
// attachment descriptors. Limits are enforced before the first byte is
// stored, so an oversized request leaves nothing behind.
type Ingestor struct {
	store       BlobStore
	maxFiles    int
	maxFileSize int64
	logger      logger.Logger
}

func NewIngestor(store BlobStore, maxFiles int, maxFileSize int64, logger logger.Logger) *Ingestor {
	if maxFiles <= 0 {
		maxFiles = MaxFiles
	}
	if maxFileSize <= 0 {
		maxFileSize = MaxFileSize
	}
	return &Ingestor{store: store, maxFiles: maxFiles, maxFileSize: maxFileSize, logger: logger}
}

func (in *Ingestor) Ingest(ctx context.Context, files []*multipart.FileHeader) ([]model.Attachment, error) {
	if len(files) == 0 {
		return nil, nil
	}
	if len(files) > in.maxFiles {
		return nil, errors.ErrTooManyAttachments
	}
	for _, fh := range files {
		if fh.Size > in.maxFileSize {
			return nil, errors.ErrAttachmentTooLarge
		}
	}

	out := make([]model.Attachment, 0, len(files))
	for _, fh := range files {
		f, err := fh.Open()
		if err != nil {
			return nil, errors.Wrap(errors.CodeInvalidArgument, "failed to read uploaded file", err)
		}

		locator, err := in.store.Save(ctx, storageName(fh.Filename), f)
		f.Close()
		if err != nil {
			in.logger.Error("failed to store attachment", "filename", fh.Filename, "err", err)
			return nil, errors.Wrap(errors.CodeInternal, "failed to store attachment", err)
		}

		mimetype := fh.Header.Get("Content-Type")
		out = append(out, model.Attachment{
			URL:      locator,
			Filename: fh.Filename,
			Mimetype: mimetype,
			Size:     fh.Size,
			Kind:     model.KindForMimetype(mimetype),
		})
	}
	return out, nil
}

// storageName builds a collision-free name: timestamp + random suffix,
// keeping only the original extension. The client-supplied filename never
// reaches the filesystem.
func storageName(original string) string {
	ext := filepath.Ext(original)
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:12]
	return fmt.Sprintf("%d-%s%s", time.Now().UnixNano(), suffix, ext)
}
