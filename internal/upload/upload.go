package upload

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/alimikegami/e-bazaar/pkg/errs"
	"github.com/gabriel-vasile/mimetype"
	"github.com/rs/zerolog/log"
)

const (
	PublicPath = "/public/uploads"
	MaxGallery = 10
)

var allowedTypes = map[string]string{
	"image/png":  "png",
	"image/jpeg": "jpeg",
	"image/jpg":  "jpg",
}

type Store interface {
	Save(ctx context.Context, baseURL string, file *multipart.FileHeader) (url string, err error)
	SaveAll(ctx context.Context, baseURL string, files []*multipart.FileHeader) (urls []string, err error)
}

type DiskStore struct {
	dir string
	now func() time.Time
}

func CreateDiskStore(dir string) (*DiskStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating upload dir: %w", err)
	}

	return &DiskStore{dir: dir, now: time.Now}, nil
}

// Extension returns the stored extension for file. The declared content type
// must be allowed and the content itself must sniff as a png or jpeg image.
func Extension(file *multipart.FileHeader) (string, error) {
	ext, ok := allowedTypes[file.Header.Get("Content-Type")]
	if !ok {
		return "", errs.ErrInvalidFileType
	}

	f, err := file.Open()
	if err != nil {
		return "", err
	}
	defer f.Close()

	detected, err := mimetype.DetectReader(f)
	if err != nil {
		return "", err
	}

	if !detected.Is("image/png") && !detected.Is("image/jpeg") {
		return "", errs.ErrInvalidFileType
	}

	return ext, nil
}

func (s *DiskStore) Save(ctx context.Context, baseURL string, file *multipart.FileHeader) (url string, err error) {
	urls, err := s.SaveAll(ctx, baseURL, []*multipart.FileHeader{file})
	if err != nil {
		return "", err
	}

	return urls[0], nil
}

// SaveAll checks every file before the first one is written, so a rejected
// batch leaves nothing on disk.
func (s *DiskStore) SaveAll(ctx context.Context, baseURL string, files []*multipart.FileHeader) (urls []string, err error) {
	exts := make([]string, len(files))
	for i, file := range files {
		exts[i], err = Extension(file)
		if err != nil {
			log.Ctx(ctx).Error().Err(err).Str("component", "SaveAll").Str("file", file.Filename).Msg("")
			return nil, err
		}
	}

	urls = make([]string, 0, len(files))
	for i, file := range files {
		name, err := s.write(file, exts[i])
		if err != nil {
			log.Ctx(ctx).Error().Err(err).Str("component", "SaveAll").Str("file", file.Filename).Msg("")
			return nil, err
		}

		urls = append(urls, PublicURL(baseURL, name))
	}

	return urls, nil
}

func (s *DiskStore) write(file *multipart.FileHeader, ext string) (string, error) {
	src, err := file.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	stamp := s.now().UnixMilli()
	for {
		name := FileName(file.Filename, stamp, ext)
		dst, err := os.OpenFile(filepath.Join(s.dir, name), os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
		if errors.Is(err, os.ErrExist) {
			stamp++
			continue
		}
		if err != nil {
			return "", err
		}

		_, err = io.Copy(dst, src)
		if closeErr := dst.Close(); err == nil {
			err = closeErr
		}
		if err != nil {
			return "", err
		}

		return name, nil
	}
}

// FileName builds the stored name: the base of the original name with spaces
// turned into dashes, the millisecond timestamp and the extension.
func FileName(original string, stamp int64, ext string) string {
	base := strings.ReplaceAll(filepath.Base(original), " ", "-")
	return fmt.Sprintf("%s-%d.%s", base, stamp, ext)
}

func PublicURL(baseURL, name string) string {
	return strings.TrimSuffix(baseURL, "/") + PublicPath + "/" + name
}
