// Package imagery resolves the image references of FAQ entries to bytes for
// display, generating a placeholder when the referenced file is missing.
package imagery

import (
	"encoding/base64"
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
)

var (
	// ErrInvalidColor indicates a colour that is not "#rrggbb".
	ErrInvalidColor = errors.New("invalid colour")
)

// Image is a resolved entry image.
type Image struct {
	Path        string // Reference as stored on the entry
	Data        []byte // PNG or the file's own encoding
	Placeholder bool   // Data was generated because the file is missing
}

// Base64 returns the standard base64 encoding of the image bytes.
func (img *Image) Base64() string {
	return base64.StdEncoding.EncodeToString(img.Data)
}

// Resolver turns an image reference into image bytes.
type Resolver interface {
	Resolve(ref string, topics []string) (*Image, error)
}

// FileResolver reads image references relative to a root directory.
type FileResolver struct {
	root   string
	logger *slog.Logger
}

var _ Resolver = (*FileResolver)(nil)

// Option configures a FileResolver.
type Option func(*FileResolver)

// WithLogger sets the resolver logger.
func WithLogger(logger *slog.Logger) Option {
	return func(r *FileResolver) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// NewFileResolver creates a resolver rooted at root.
func NewFileResolver(root string, opts ...Option) *FileResolver {
	r := &FileResolver{root: root, logger: slog.Default()}
	for _, opt := range opts {
		opt(r)
	}
	r.logger = r.logger.With("component", "image-resolver")
	return r
}

// Resolve returns nil for an empty reference. A reference to a missing file
// yields a placeholder labelled with the first topic. References cannot
// escape the root directory.
func (r *FileResolver) Resolve(ref string, topics []string) (*Image, error) {
	if ref == "" {
		return nil, nil
	}

	path := filepath.Join(r.root, filepath.Clean(string(filepath.Separator)+ref))
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		r.logger.Debug("image missing, generating placeholder", "ref", ref)
		data, err = Placeholder(topics)
		if err != nil {
			return nil, err
		}
		return &Image{Path: ref, Data: data, Placeholder: true}, nil
	}
	if err != nil {
		return nil, err
	}
	return &Image{Path: ref, Data: data}, nil
}
