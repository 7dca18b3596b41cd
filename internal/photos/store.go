package photos

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/2beens/movimentai/internal/telemetry/tracing"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

const MaxPhotoSize = 5 << 20

var (
	ErrPhotoNotFound   = errors.New("photo not found")
	ErrInvalidName     = errors.New("invalid photo name")
	ErrUnsupportedType = errors.New("unsupported photo type")
	ErrPhotoTooBig     = errors.New("photo too big")
	ErrEmptyPhoto      = errors.New("photo empty")
)

var supportedExtensions = map[string]string{
	"image/jpeg": "jpg",
	"image/png":  "png",
}

// DiskStore keeps profile photos as flat files under one root directory.
type DiskStore struct {
	rootPath string
	now      func() time.Time
}

func NewDiskStore(rootPath string) (*DiskStore, error) {
	if rootPath == "" {
		return nil, errors.New("root path cannot be empty")
	}
	if err := os.MkdirAll(rootPath, 0o755); err != nil {
		return nil, fmt.Errorf("create photos root: %w", err)
	}
	return &DiskStore{
		rootPath: rootPath,
		now:      time.Now,
	}, nil
}

// Save writes the photo and returns the stored file name. The type is sniffed
// from the content, the client supplied content type is not trusted.
func (ds *DiskStore) Save(ctx context.Context, userID string, src io.Reader) (_ string, err error) {
	_, span := tracing.GlobalTracer.Start(ctx, "photos.disk.save")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if userID == "" || strings.ContainsAny(userID, `/\.`) {
		return "", ErrInvalidName
	}

	data, err := io.ReadAll(io.LimitReader(src, MaxPhotoSize+1))
	if err != nil {
		return "", fmt.Errorf("read photo: %w", err)
	}
	if len(data) == 0 {
		return "", ErrEmptyPhoto
	}
	if len(data) > MaxPhotoSize {
		return "", ErrPhotoTooBig
	}

	ext, ok := supportedExtensions[http.DetectContentType(data)]
	if !ok {
		return "", ErrUnsupportedType
	}

	name := fmt.Sprintf("%s-%d.%s", userID, ds.now().UnixNano(), ext)
	span.SetAttributes(attribute.String("photo.name", name))
	span.SetAttributes(attribute.Int("photo.size", len(data)))

	dst, err := os.OpenFile(filepath.Join(ds.rootPath, name), os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return "", err
	}
	defer func() {
		if closeErr := dst.Close(); closeErr != nil && err == nil {
			err = closeErr
		}
	}()

	if _, err := io.Copy(dst, bytes.NewReader(data)); err != nil {
		return "", err
	}

	log.Debugf("photos: saved %s (%d bytes)", name, len(data))
	return name, nil
}

// Open returns the stored photo. Callers close it.
func (ds *DiskStore) Open(ctx context.Context, name string) (_ *os.File, err error) {
	_, span := tracing.GlobalTracer.Start(ctx, "photos.disk.open")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if err := validName(name); err != nil {
		return nil, err
	}

	f, err := os.Open(filepath.Join(ds.rootPath, name))
	if errors.Is(err, os.ErrNotExist) {
		return nil, ErrPhotoNotFound
	}
	return f, err
}

func (ds *DiskStore) Delete(ctx context.Context, name string) (err error) {
	_, span := tracing.GlobalTracer.Start(ctx, "photos.disk.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if err := validName(name); err != nil {
		return err
	}

	err = os.Remove(filepath.Join(ds.rootPath, name))
	if errors.Is(err, os.ErrNotExist) {
		return ErrPhotoNotFound
	}
	return err
}

// ContentType maps a stored photo name back to its mime type.
func ContentType(name string) string {
	switch filepath.Ext(name) {
	case ".png":
		return "image/png"
	default:
		return "image/jpeg"
	}
}

func validName(name string) error {
	if name == "" || name != filepath.Base(name) || strings.ContainsAny(name, `/\`) || strings.HasPrefix(name, ".") {
		return ErrInvalidName
	}
	return nil
}
