package attachment

import (
	"context"
	"io"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

// BlobStore places attachment bytes in durable storage and hands back a
// locator a client can later retrieve the bytes with.
type BlobStore interface {
	Save(ctx context.Context, name string, r io.Reader) (locator string, err error)
}

// DiskStore writes blobs under a local directory served statically at
// publicPrefix.
type DiskStore struct {
	dir          string
	publicPrefix string
}

func NewDiskStore(dir, publicPrefix string) (*DiskStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, errors.Wrap(err, "diskStore.MkdirAll: ")
	}
	return &DiskStore{dir: dir, publicPrefix: publicPrefix}, nil
}

func (s *DiskStore) Save(ctx context.Context, name string, r io.Reader) (string, error) {
	f, err := os.Create(filepath.Join(s.dir, name))
	if err != nil {
		return "", errors.Wrap(err, "diskStore.Save.Create: ")
	}
	defer f.Close()

	if _, err := io.Copy(f, r); err != nil {
		return "", errors.Wrap(err, "diskStore.Save.Copy: ")
	}

	return s.publicPrefix + "/" + name, nil
}
