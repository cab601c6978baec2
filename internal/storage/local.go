package storage

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"mime/multipart"
	"os"
	"path"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "golang.org/x/image/webp"
)

var (
	ErrEmptyFile       = errors.New("the submitted file is empty")
	ErrFileTooLarge    = errors.New("the submitted file is too large")
	ErrUnsupportedType = errors.New("the submitted file type is not supported")
	ErrInvalidImage    = errors.New("upload a valid image; the file was either not an image or corrupted")
)

var (
	folderPattern   = regexp.MustCompile(`[^a-z0-9_-]+`)
	imageExtensions = map[string]string{
		"jpeg": ".jpg",
		"png":  ".png",
		"gif":  ".gif",
		"webp": ".webp",
	}
	documentExtensions = map[string]struct{}{
		".pdf":  {},
		".doc":  {},
		".docx": {},
	}
)

// Local stores uploaded media below a directory and serves it under a URL
// path. Stored paths are relative, slash separated, e.g. "team/2025/01/x.jpg".
type Local struct {
	root     string
	urlPath  string
	maxBytes int64
	now      func() time.Time
}

// NewLocal creates a Local store rooted at dir.
func NewLocal(dir, urlPath string, maxBytes int64) *Local {
	urlPath = "/" + strings.Trim(strings.TrimSpace(urlPath), "/")
	if urlPath == "/" {
		urlPath = "/media"
	}
	return &Local{root: dir, urlPath: urlPath, maxBytes: maxBytes, now: time.Now}
}

// Root returns the directory files are written below.
func (l *Local) Root() string { return l.root }

// URLPath returns the URL prefix media is served under.
func (l *Local) URLPath() string { return l.urlPath }

// URL returns the site-relative URL of a stored path.
func (l *Local) URL(stored string) string {
	stored = strings.TrimSpace(stored)
	if stored == "" {
		return ""
	}
	if strings.HasPrefix(stored, "http://") || strings.HasPrefix(stored, "https://") {
		return stored
	}
	return l.urlPath + "/" + strings.TrimLeft(stored, "/")
}

// SaveImage validates that the upload decodes as an image and stores it.
func (l *Local) SaveImage(fh *multipart.FileHeader, folder string) (string, error) {
	data, err := l.read(fh)
	if err != nil {
		return "", err
	}
	_, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return "", ErrInvalidImage
	}
	ext, ok := imageExtensions[format]
	if !ok {
		return "", ErrUnsupportedType
	}
	return l.write(data, folder, ext)
}

// SaveDocument stores a PDF or Word document.
func (l *Local) SaveDocument(fh *multipart.FileHeader, folder string) (string, error) {
	ext := strings.ToLower(filepath.Ext(fh.Filename))
	if _, ok := documentExtensions[ext]; !ok {
		return "", ErrUnsupportedType
	}
	data, err := l.read(fh)
	if err != nil {
		return "", err
	}
	return l.write(data, folder, ext)
}

// Remove deletes a stored file. Missing files are ignored.
func (l *Local) Remove(stored string) error {
	if stored == "" || strings.Contains(stored, "..") {
		return nil
	}
	err := os.Remove(filepath.Join(l.root, filepath.FromSlash(stored)))
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

func (l *Local) read(fh *multipart.FileHeader) ([]byte, error) {
	if fh == nil || fh.Size == 0 {
		return nil, ErrEmptyFile
	}
	if l.maxBytes > 0 && fh.Size > l.maxBytes {
		return nil, ErrFileTooLarge
	}

	f, err := fh.Open()
	if err != nil {
		return nil, fmt.Errorf("open upload: %w", err)
	}
	defer f.Close()

	limit := fh.Size + 1
	if l.maxBytes > 0 {
		limit = l.maxBytes + 1
	}
	data, err := io.ReadAll(io.LimitReader(f, limit))
	if err != nil {
		return nil, fmt.Errorf("read upload: %w", err)
	}
	if len(data) == 0 {
		return nil, ErrEmptyFile
	}
	if l.maxBytes > 0 && int64(len(data)) > l.maxBytes {
		return nil, ErrFileTooLarge
	}
	return data, nil
}

func (l *Local) write(data []byte, folder, ext string) (string, error) {
	now := l.now()
	rel := path.Join(cleanFolder(folder), now.Format("2006"), now.Format("01"), uuid.NewString()+ext)

	target := filepath.Join(l.root, filepath.FromSlash(rel))
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return "", fmt.Errorf("create media directory: %w", err)
	}
	if err := os.WriteFile(target, data, 0o644); err != nil {
		return "", fmt.Errorf("write media file: %w", err)
	}
	return rel, nil
}

func cleanFolder(folder string) string {
	folder = folderPattern.ReplaceAllString(strings.ToLower(strings.TrimSpace(folder)), "")
	if folder == "" {
		return "uploads"
	}
	return folder
}
