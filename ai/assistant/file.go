package assistant

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"path"
	"path/filepath"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/sashabaranov/go-openai"
)

var ErrFileIdNotSet = errors.New("file id not set")

// File is a document attached to an assistant.
type File interface {
	GetID(ctx context.Context) (string, error)
}

// FileAPI uploads files; *openai.Client satisfies it.
type FileAPI interface {
	CreateFile(ctx context.Context, request openai.FileRequest) (openai.File, error)
	CreateFileBytes(ctx context.Context, request openai.FileBytesRequest) (openai.File, error)
}

// RemoteFile is a file that is already uploaded.
type RemoteFile struct {
	ID string `json:"id"`
}

func (f RemoteFile) GetID(_ context.Context) (string, error) {
	if f.ID == "" {
		return "", ErrFileIdNotSet
	}
	return f.ID, nil
}

// LocalFile is uploaded from disk the first time its id is requested.
type LocalFile struct {
	Path string `json:"path"`
	ID   string `json:"id,omitempty"`

	api FileAPI
}

func NewLocalFile(api FileAPI, path string) *LocalFile {
	return &LocalFile{Path: path, api: api}
}

func (f *LocalFile) GetID(ctx context.Context) (string, error) {
	if f.ID != "" {
		return f.ID, nil
	}
	if f.api == nil {
		return "", fmt.Errorf("upload %s: %w", f.Path, ErrFileIdNotSet)
	}
	file, err := f.api.CreateFile(ctx, openai.FileRequest{
		FileName: filepath.Base(f.Path),
		FilePath: f.Path,
		Purpose:  string(openai.PurposeAssistants),
	})
	if err != nil {
		return "", fmt.Errorf("upload %s: %w", f.Path, err)
	}
	f.ID = file.ID
	return f.ID, nil
}

// URLFile is downloaded and uploaded the first time its id is requested.
type URLFile struct {
	URL  string `json:"url"`
	Name string `json:"name,omitempty"`
	ID   string `json:"id,omitempty"`

	api  FileAPI
	http *resty.Client
}

func NewURLFile(api FileAPI, fileURL string) *URLFile {
	return &URLFile{
		URL:  fileURL,
		api:  api,
		http: resty.New().SetTimeout(2 * time.Minute),
	}
}

func (f *URLFile) GetID(ctx context.Context) (string, error) {
	if f.ID != "" {
		return f.ID, nil
	}
	if f.api == nil || f.http == nil {
		return "", fmt.Errorf("upload %s: %w", f.URL, ErrFileIdNotSet)
	}

	resp, err := f.http.R().SetContext(ctx).Get(f.URL)
	if err != nil {
		return "", fmt.Errorf("download %s: %w", f.URL, err)
	}
	if resp.IsError() {
		return "", fmt.Errorf("download %s: status %d", f.URL, resp.StatusCode())
	}

	file, err := f.api.CreateFileBytes(ctx, openai.FileBytesRequest{
		Name:    f.fileName(),
		Bytes:   resp.Body(),
		Purpose: openai.PurposeAssistants,
	})
	if err != nil {
		return "", fmt.Errorf("upload %s: %w", f.URL, err)
	}
	f.ID = file.ID
	return f.ID, nil
}

func (f *URLFile) fileName() string {
	if f.Name != "" {
		return f.Name
	}
	u, err := url.Parse(f.URL)
	if err != nil || path.Base(u.Path) == "/" || path.Base(u.Path) == "." {
		return "file"
	}
	return path.Base(u.Path)
}
