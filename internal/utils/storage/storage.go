// Package storage uploads images submitted as base64 data URLs and returns
// the public URL to store in their place.
package storage

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"path"
	"slices"
	"strings"

	"github.com/google/uuid"
)

var AllowImage = []string{
	"image/jpeg",
	"image/jpg",
	"image/png",
	"image/webp",
	"image/gif",
}

var (
	ErrNotDataURL      = errors.New("storage: not a data URL")
	ErrUnsupportedType = errors.New("storage: unsupported content type")
	ErrEmptyImage      = errors.New("storage: empty image")
)

type ImageStore interface {
	// UploadImage stores img under folder and returns its public URL.
	UploadImage(ctx context.Context, img *Image, folder string) (string, error)
}

type Image struct {
	ContentType string
	Data        []byte
}

func IsDataURL(s string) bool {
	return strings.HasPrefix(s, "data:")
}

// ParseDataURL decodes "data:<type>;base64,<payload>" and rejects content
// types outside allowed.
func ParseDataURL(s string, allowed ...string) (*Image, error) {
	if !IsDataURL(s) {
		return nil, ErrNotDataURL
	}
	meta, payload, ok := strings.Cut(strings.TrimPrefix(s, "data:"), ",")
	if !ok {
		return nil, ErrNotDataURL
	}
	contentType, encoding, _ := strings.Cut(meta, ";")
	if encoding != "base64" {
		return nil, fmt.Errorf("%w: only base64 payloads are accepted", ErrNotDataURL)
	}
	contentType = strings.ToLower(contentType)
	if len(allowed) > 0 && !slices.Contains(allowed, contentType) {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedType, contentType)
	}

	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}
	if len(data) == 0 {
		return nil, ErrEmptyImage
	}
	return &Image{ContentType: contentType, Data: data}, nil
}

func objectKey(folder, contentType string) string {
	ext := strings.TrimPrefix(contentType, "image/")
	if ext == "jpeg" {
		ext = "jpg"
	}
	return path.Join(folder, uuid.NewString()+"."+ext)
}
