package attachment

import (
	"bytes"
	"context"
	"mime/multipart"
	"net/http/httptest"
	"net/textproto"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jiu45/JobPortal/internal/messaging/model"
	appErrors "github.com/jiu45/JobPortal/pkg/errors"
	"github.com/jiu45/JobPortal/pkg/logger"
)

type filePart struct {
	filename string
	mimetype string
	content  []byte
}

// multipartFiles builds a real multipart request and returns its parsed
// file headers, the same shape the HTTP layer hands the ingestor.
func multipartFiles(t *testing.T, parts []filePart) []*multipart.FileHeader {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for _, p := range parts {
		h := make(textproto.MIMEHeader)
		h.Set("Content-Disposition", `form-data; name="attachments"; filename="`+p.filename+`"`)
		h.Set("Content-Type", p.mimetype)
		fw, err := w.CreatePart(h)
		require.NoError(t, err)
		_, err = fw.Write(p.content)
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())

	req := httptest.NewRequest("POST", "/api/messages", &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	require.NoError(t, req.ParseMultipartForm(32<<20))

	return req.MultipartForm.File["attachments"]
}

func newTestIngestor(t *testing.T) (*Ingestor, string) {
	t.Helper()
	dir := t.TempDir()
	store, err := NewDiskStore(dir, "/uploads/messages")
	require.NoError(t, err)
	return NewIngestor(store, MaxFiles, MaxFileSize, logger.Logger{}), dir
}

func Test_Ingest(t *testing.T) {
	t.Run("happy path - classification and metadata", func(t *testing.T) {
		ingestor, dir := newTestIngestor(t)

		files := multipartFiles(t, []filePart{
			{filename: "photo.png", mimetype: "image/png", content: []byte("png-bytes")},
			{filename: "resume.pdf", mimetype: "application/pdf", content: []byte("pdf-bytes")},
		})

		descriptors, err := ingestor.Ingest(context.Background(), files)
		require.NoError(t, err)
		require.Len(t, descriptors, 2)

		assert.Equal(t, "photo.png", descriptors[0].Filename)
		assert.Equal(t, model.AttachmentKindImage, descriptors[0].Kind)
		assert.Equal(t, int64(len("png-bytes")), descriptors[0].Size)
		assert.True(t, strings.HasPrefix(descriptors[0].URL, "/uploads/messages/"))
		assert.True(t, strings.HasSuffix(descriptors[0].URL, ".png"))

		assert.Equal(t, model.AttachmentKindFile, descriptors[1].Kind)
		assert.Equal(t, "application/pdf", descriptors[1].Mimetype)

		// bytes landed on disk under the generated names
		entries, err := os.ReadDir(dir)
		require.NoError(t, err)
		assert.Len(t, entries, 2)
	})

	t.Run("generated names never collide with the client name", func(t *testing.T) {
		ingestor, dir := newTestIngestor(t)

		files := multipartFiles(t, []filePart{
			{filename: "../evil.sh", mimetype: "text/plain", content: []byte("x")},
		})

		descriptors, err := ingestor.Ingest(context.Background(), files)
		require.NoError(t, err)
		require.Len(t, descriptors, 1)

		// original name survives in metadata only
		assert.Equal(t, "../evil.sh", descriptors[0].Filename)
		assert.NotContains(t, descriptors[0].URL, "evil")

		entries, err := os.ReadDir(dir)
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.NotContains(t, entries[0].Name(), "..")
	})

	t.Run("exactly five files accepted", func(t *testing.T) {
		ingestor, _ := newTestIngestor(t)

		parts := make([]filePart, 5)
		for i := range parts {
			parts[i] = filePart{filename: "f.txt", mimetype: "text/plain", content: []byte("x")}
		}

		descriptors, err := ingestor.Ingest(context.Background(), multipartFiles(t, parts))
		require.NoError(t, err)
		assert.Len(t, descriptors, 5)
	})

	t.Run("sad path - six files rejected before any write", func(t *testing.T) {
		ingestor, dir := newTestIngestor(t)

		parts := make([]filePart, 6)
		for i := range parts {
			parts[i] = filePart{filename: "f.txt", mimetype: "text/plain", content: []byte("x")}
		}

		_, err := ingestor.Ingest(context.Background(), multipartFiles(t, parts))
		assert.Equal(t, appErrors.ErrTooManyAttachments, err)

		entries, readErr := os.ReadDir(dir)
		require.NoError(t, readErr)
		assert.Empty(t, entries, "no partial saves on rejection")
	})

	t.Run("sad path - oversized file rejected before any write", func(t *testing.T) {
		store, err := NewDiskStore(t.TempDir(), "/uploads/messages")
		require.NoError(t, err)
		ingestor := NewIngestor(store, MaxFiles, 8, logger.Logger{}) // 8 byte cap

		files := multipartFiles(t, []filePart{
			{filename: "small.txt", mimetype: "text/plain", content: []byte("ok")},
			{filename: "big.txt", mimetype: "text/plain", content: []byte("way too large")},
		})

		_, err = ingestor.Ingest(context.Background(), files)
		assert.Equal(t, appErrors.ErrAttachmentTooLarge, err)
	})

	t.Run("no files is a no-op", func(t *testing.T) {
		ingestor, _ := newTestIngestor(t)

		descriptors, err := ingestor.Ingest(context.Background(), nil)
		require.NoError(t, err)
		assert.Nil(t, descriptors)
	})
}

func Test_DiskStore_Save(t *testing.T) {
	dir := t.TempDir()
	store, err := NewDiskStore(dir, "/uploads/messages")
	require.NoError(t, err)

	locator, err := store.Save(context.Background(), "123-abc.png", bytes.NewReader([]byte("data")))
	require.NoError(t, err)
	assert.Equal(t, "/uploads/messages/123-abc.png", locator)

	data, err := os.ReadFile(filepath.Join(dir, "123-abc.png"))
	require.NoError(t, err)
	assert.Equal(t, []byte("data"), data)
}
