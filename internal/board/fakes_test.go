package board

import (
	"context"
	"fmt"
	"io"
	"sort"
	"strconv"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/SangWon7242/next-board/internal/gateway"
	"github.com/SangWon7242/next-board/models"
)

// fakeRecords is an in-memory RecordStore holding posts only.
type fakeRecords struct {
	posts     []models.Post
	nextID    int64
	calls     []string
	insertErr error
}

func (f *fakeRecords) Insert(_ context.Context, table string, record interface{}, out interface{}) error {
	f.calls = append(f.calls, "insert "+table)
	if f.insertErr != nil {
		return f.insertErr
	}

	fields := record.(map[string]interface{})
	f.nextID++
	post := models.Post{
		ID:        f.nextID,
		Title:     fields["title"].(string),
		Content:   fields["content"].(string),
		CreatedAt: time.Now(),
	}
	if u, ok := fields["thumbnail_url"].(string); ok {
		post.ThumbnailURL = &u
	}
	f.posts = append(f.posts, post)

	*(out.(*[]models.Post)) = []models.Post{post}
	return nil
}

func (f *fakeRecords) SelectOne(_ context.Context, table, column, value string, out interface{}) error {
	f.calls = append(f.calls, "select-one "+table)
	id, _ := strconv.ParseInt(value, 10, 64)
	for _, p := range f.posts {
		if p.ID == id {
			*(out.(*models.Post)) = p
			return nil
		}
	}
	return gateway.ErrNotFound
}

func (f *fakeRecords) SelectAll(_ context.Context, table string, out interface{}, _ ...gateway.Order) error {
	f.calls = append(f.calls, "select-all "+table)
	rows := append([]models.Post{}, f.posts...)
	sort.Slice(rows, func(i, j int) bool {
		if !rows[i].CreatedAt.Equal(rows[j].CreatedAt) {
			return rows[i].CreatedAt.After(rows[j].CreatedAt)
		}
		return rows[i].ID > rows[j].ID
	})
	*(out.(*[]models.Post)) = rows
	return nil
}

func (f *fakeRecords) Update(_ context.Context, table, column, value string, fields map[string]interface{}, out interface{}) (int64, error) {
	f.calls = append(f.calls, "update "+table)
	id, _ := strconv.ParseInt(value, 10, 64)
	for i := range f.posts {
		if f.posts[i].ID == id {
			if title, ok := fields["title"].(string); ok {
				f.posts[i].Title = title
			}
			if content, ok := fields["content"].(string); ok {
				f.posts[i].Content = content
			}
			if out != nil {
				*(out.(*[]models.Post)) = []models.Post{f.posts[i]}
			}
			return 1, nil
		}
	}
	if out != nil {
		*(out.(*[]models.Post)) = nil
	}
	return 0, nil
}

func (f *fakeRecords) Delete(_ context.Context, table, column, value string) error {
	f.calls = append(f.calls, "delete "+table)
	id, _ := strconv.ParseInt(value, 10, 64)
	for i := range f.posts {
		if f.posts[i].ID == id {
			f.posts = append(f.posts[:i], f.posts[i+1:]...)
			return nil
		}
	}
	// Zero-row deletes do not fail.
	return nil
}

// fakeBlobs is an in-memory BlobStore recording uploads and removals.
type fakeBlobs struct {
	uploads   map[string][]byte
	removed   []string
	uploadErr error
	urlErr    bool
}

func (f *fakeBlobs) Upload(_ context.Context, bucket, key string, data io.Reader, opts gateway.UploadOptions) error {
	if f.uploadErr != nil {
		return f.uploadErr
	}
	if f.uploads == nil {
		f.uploads = make(map[string][]byte)
	}
	if _, exists := f.uploads[key]; exists && !opts.Upsert {
		return gateway.ErrConflict
	}
	payload, err := io.ReadAll(data)
	if err != nil {
		return err
	}
	f.uploads[key] = payload
	return nil
}

func (f *fakeBlobs) PublicURL(bucket, key string) (string, error) {
	if f.urlErr {
		return "", fmt.Errorf("url resolution unavailable")
	}
	return fmt.Sprintf("https://example.supabase.co/storage/v1/object/public/%s/%s", bucket, key), nil
}

func (f *fakeBlobs) Remove(_ context.Context, bucket string, keys []string) error {
	f.removed = append(f.removed, keys...)
	for _, key := range keys {
		delete(f.uploads, key)
	}
	return nil
}

type fakeInvalidator struct {
	names []string
}

func (f *fakeInvalidator) Invalidate(names ...string) {
	f.names = append(f.names, names...)
}

func newTestService() (*Service, *fakeRecords, *fakeBlobs, *fakeInvalidator) {
	records := &fakeRecords{}
	blobs := &fakeBlobs{}
	inval := &fakeInvalidator{}
	log := logrus.New()
	log.SetOutput(io.Discard)
	return NewService(records, blobs, inval, log), records, blobs, inval
}
