// Package storage uploads applicant attachments to a public object bucket.
package storage

import (
	"context"
	"errors"
	"fmt"
	"path"
	"strings"
	"time"
)

// ObjectStore writes an object and reports the URL it is publicly served from.
type ObjectStore interface {
	Upload(ctx context.Context, bucket, key, contentType string, data []byte) error
	PublicURL(bucket, key string) string
}

const (
	PrefixResumes      = "resumes"
	PrefixCoverLetters = "cover_letters"
)

var ErrEmptyObject = errors.New("empty object")

// ObjectKey is "{prefix}/{millis}_{filename}". Only the base name of filename is kept.
func ObjectKey(prefix string, now time.Time, filename string) string {
	name := path.Base(strings.ReplaceAll(filename, "\\", "/"))
	if name == "." || name == "/" {
		name = "file"
	}
	return fmt.Sprintf("%s/%d_%s", prefix, now.UnixMilli(), name)
}
