// Package storage abstracts where uploaded profile pictures end up.
// Keys are relative paths like static/uploads/avatar.png, so the same
// value can be stored in the user record no matter the backend.
package storage

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/viper"
)

type Store interface {
	Save(ctx context.Context, key string, r io.Reader, size int64, contentType string) error
	Delete(ctx context.Context, key string) error
}

// New picks the backend from storage.type. Local disk is the default.
func New() (Store, error) {
	switch viper.GetString("storage.type") {
	case "s3":
		s, err := NewS3()
		if err != nil {
			return nil, fmt.Errorf("failed to initialize S3 storage, %w", err)
		}
		return s, nil
	default:
		return &Local{}, nil
	}
}
