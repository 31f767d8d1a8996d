// Package board implements the post lifecycle: validation, thumbnail
// ingestion, and the create/read/update/delete operations against the remote
// record store, plus the staleness signals consumers need after a mutation.
package board

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/sirupsen/logrus"

	"github.com/SangWon7242/next-board/internal/gateway"
	"github.com/SangWon7242/next-board/internal/views"
	"github.com/SangWon7242/next-board/models"
)

const postsTable = "posts"

// Service orchestrates post mutations. It holds no state of its own; the
// record store owns all concurrency control. Two concurrent updates of the
// same post are last-writer-wins with no conflict detection.
type Service struct {
	records gateway.RecordStore
	blobs   gateway.BlobStore
	inval   views.Invalidator
	log     *logrus.Logger
}

// NewService wires the lifecycle manager to its collaborators.
func NewService(records gateway.RecordStore, blobs gateway.BlobStore, inval views.Invalidator, log *logrus.Logger) *Service {
	return &Service{records: records, blobs: blobs, inval: inval, log: log}
}

// Create validates the input, ingests the thumbnail if one was supplied, and
// inserts the post. A thumbnail failure aborts before any record write, so
// no orphan rows exist; conversely, if the insert fails after a fresh upload
// the uploaded object is deleted again.
func (s *Service) Create(ctx context.Context, title, content string, thumb ThumbnailInput) (*models.Post, error) {
	if err := ValidatePostInput(title, content); err != nil {
		return nil, err
	}

	thumbnailURL, uploadedKey, err := s.ingestThumbnail(ctx, thumb)
	if err != nil {
		return nil, err
	}

	record := map[string]interface{}{
		"title":   title,
		"content": content,
	}
	if thumbnailURL != "" {
		record["thumbnail_url"] = thumbnailURL
	}

	var inserted []models.Post
	if err := s.records.Insert(ctx, postsTable, record, &inserted); err != nil {
		if uploadedKey != "" {
			if rmErr := s.blobs.Remove(ctx, StorageBucket, []string{uploadedKey}); rmErr != nil {
				s.log.WithError(rmErr).WithField("key", uploadedKey).
					Warn("failed to clean up thumbnail after insert failure")
			}
		}
		return nil, s.gatewayError("failed to create post", err)
	}
	if len(inserted) == 0 {
		return nil, newError(KindTransport, "failed to create post", fmt.Errorf("insert returned no rows"))
	}

	s.inval.Invalidate(views.PostList)
	return &inserted[0], nil
}

// Get fetches one post by id, always from the store.
func (s *Service) Get(ctx context.Context, id int64) (*models.Post, error) {
	var post models.Post
	err := s.records.SelectOne(ctx, postsTable, "id", strconv.FormatInt(id, 10), &post)
	if err != nil {
		if errors.Is(err, gateway.ErrNotFound) {
			return nil, newError(KindNotFound, fmt.Sprintf("post %d not found", id), err)
		}
		return nil, s.gatewayError("failed to fetch post", err)
	}
	return &post, nil
}

// List fetches every post, newest first. Posts created in the same instant
// keep a stable order by falling back to descending id. An empty board is an
// empty slice, not an error.
func (s *Service) List(ctx context.Context) ([]models.Post, error) {
	posts := []models.Post{}
	err := s.records.SelectAll(ctx, postsTable, &posts,
		gateway.Order{Column: "created_at", Ascending: false},
		gateway.Order{Column: "id", Ascending: false},
	)
	if err != nil {
		return nil, s.gatewayError("failed to list posts", err)
	}
	return posts, nil
}

// Update rewrites title and content of the post matching id. The thumbnail
// is deliberately untouched; the edit path has no upload step. Zero affected
// rows means the post does not exist.
func (s *Service) Update(ctx context.Context, id int64, title, content string) (*models.Post, error) {
	if err := ValidatePostInput(title, content); err != nil {
		return nil, err
	}

	fields := map[string]interface{}{
		"title":   title,
		"content": content,
	}

	var updated []models.Post
	count, err := s.records.Update(ctx, postsTable, "id", strconv.FormatInt(id, 10), fields, &updated)
	if err != nil {
		return nil, s.gatewayError("failed to update post", err)
	}
	if count == 0 || len(updated) == 0 {
		return nil, newError(KindNotFound, fmt.Sprintf("post %d not found", id), nil)
	}

	s.inval.Invalidate(views.PostList, views.PostDetail(id))
	return &updated[0], nil
}

// Delete removes the post matching id. Deleting an id that no longer exists
// succeeds; the store reports no error for zero-row deletes, so a delete
// never confirms prior existence.
func (s *Service) Delete(ctx context.Context, id int64) error {
	if err := s.records.Delete(ctx, postsTable, "id", strconv.FormatInt(id, 10)); err != nil {
		return s.gatewayError("failed to delete post", err)
	}

	s.inval.Invalidate(views.PostList, views.PostDetail(id))
	return nil
}

// gatewayError normalizes unexpected gateway faults. The detail goes to the
// log, not to the user.
func (s *Service) gatewayError(message string, err error) error {
	if errors.Is(err, gateway.ErrTimeout) {
		s.log.WithError(err).Warn(message)
		return newError(KindTimeout, message+": the request timed out", err)
	}
	s.log.WithError(err).Error(message)
	return newError(KindTransport, message, err)
}
