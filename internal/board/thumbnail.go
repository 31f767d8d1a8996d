package board

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"

	"github.com/SangWon7242/next-board/internal/gateway"
)

const (
	// StorageBucket is the storage namespace holding post assets.
	StorageBucket = "posts"
	// thumbnailPrefix is the directory prefix for thumbnail objects within
	// the bucket.
	thumbnailPrefix = "thumbnails/"
	// MaxThumbnailBytes caps thumbnail payloads at 5 MiB, matching the
	// client-side check; the storage-side limit stays authoritative.
	MaxThumbnailBytes = 5 << 20

	thumbnailCacheControl = "3600"
)

type thumbnailKind int

const (
	thumbnailNone thumbnailKind = iota
	thumbnailRaw
	thumbnailURL
)

// ThumbnailInput is the tagged upload intent for a post's thumbnail: leave
// it untouched, upload a raw payload, or reuse an already-stored URL. Build
// values with the constructors; the zero value means no change.
type ThumbnailInput struct {
	kind        thumbnailKind
	data        []byte
	contentType string
	filename    string
	url         string
}

// NoThumbnail leaves any existing thumbnail untouched.
func NoThumbnail() ThumbnailInput {
	return ThumbnailInput{kind: thumbnailNone}
}

// ThumbnailUpload carries a raw binary payload to be stored. contentType is
// the declared type from the uploader; the payload bytes are sniffed and win
// over the declaration.
func ThumbnailUpload(data []byte, contentType, filename string) ThumbnailInput {
	return ThumbnailInput{kind: thumbnailRaw, data: data, contentType: contentType, filename: filename}
}

// ThumbnailFromURL reuses an object that already lives in storage.
func ThumbnailFromURL(url string) ThumbnailInput {
	return ThumbnailInput{kind: thumbnailURL, url: url}
}

// ingestThumbnail turns an upload intent into a stored-object URL. It returns
// the resolved URL (empty for no-change) and, for fresh uploads, the storage
// key so a failed record insert can clean the object up. A resolution
// failure after a successful upload does not roll the upload back.
func (s *Service) ingestThumbnail(ctx context.Context, in ThumbnailInput) (url, uploadedKey string, err error) {
	switch in.kind {
	case thumbnailNone:
		return "", "", nil
	case thumbnailURL:
		return in.url, "", nil
	}

	if len(in.data) > MaxThumbnailBytes {
		return "", "", newError(KindSizeLimitExceeded, "thumbnail must be 5MB or smaller", nil)
	}

	detected := mimetype.Detect(in.data)
	if !strings.HasPrefix(detected.String(), "image/") {
		return "", "", newError(KindInvalidMediaType, "thumbnail must be an image file", nil)
	}

	ext := strings.ToLower(filepath.Ext(in.filename))
	if ext == "" {
		ext = detected.Extension()
	}
	key := fmt.Sprintf("%s%s%s", thumbnailPrefix, uuid.NewString(), ext)

	err = s.blobs.Upload(ctx, StorageBucket, key, bytes.NewReader(in.data), gateway.UploadOptions{
		ContentType:  detected.String(),
		CacheControl: thumbnailCacheControl,
		Upsert:       false,
	})
	if err != nil {
		if errors.Is(err, gateway.ErrTimeout) {
			return "", "", newError(KindTimeout, "thumbnail upload timed out", err)
		}
		// ErrConflict lands here too: the random key scheme makes a
		// collision unreachable in practice, but a conflicting write must
		// fail rather than overwrite.
		return "", "", newError(KindUploadFailed, "failed to upload thumbnail", err)
	}

	publicURL, err := s.blobs.PublicURL(StorageBucket, key)
	if err != nil {
		return "", "", newError(KindURLResolutionFailed, "failed to resolve thumbnail URL", err)
	}

	return publicURL, key, nil
}
