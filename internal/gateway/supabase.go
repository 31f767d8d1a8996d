package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/supabase-community/postgrest-go"
	storage_go "github.com/supabase-community/storage-go"
	supa "github.com/supabase-community/supabase-go"
)

// DefaultTimeout bounds every remote call. A hung Supabase request must not
// leave the triggering operation pending forever.
const DefaultTimeout = 10 * time.Second

// Supabase implements RecordStore and BlobStore on top of the Supabase
// PostgREST and Storage APIs.
type Supabase struct {
	client  *supa.Client
	timeout time.Duration
}

var (
	_ RecordStore = (*Supabase)(nil)
	_ BlobStore   = (*Supabase)(nil)
)

// NewSupabase wraps an initialized Supabase client. A non-positive timeout
// falls back to DefaultTimeout.
func NewSupabase(client *supa.Client, timeout time.Duration) *Supabase {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Supabase{client: client, timeout: timeout}
}

// do runs fn under the gateway deadline. The underlying clients do not take
// a context, so the call itself is left to finish in the background once the
// deadline fires and the caller gets ErrTimeout.
func (s *Supabase) do(ctx context.Context, fn func() error) error {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	done := make(chan error, 1)
	go func() { done <- fn() }()

	select {
	case err := <-done:
		return err
	case <-ctx.Done():
		if ctx.Err() == context.DeadlineExceeded {
			return ErrTimeout
		}
		return ctx.Err()
	}
}

func (s *Supabase) Insert(ctx context.Context, table string, record interface{}, out interface{}) error {
	var body []byte
	err := s.do(ctx, func() error {
		b, _, err := s.client.From(table).
			Insert(record, false, "", "representation", "").
			Execute()
		body = b
		return err
	})
	if err != nil {
		return fmt.Errorf("insert into %s: %w", table, err)
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("decoding %s insert response: %w", table, err)
	}
	return nil
}

func (s *Supabase) SelectOne(ctx context.Context, table, column, value string, out interface{}) error {
	var body []byte
	err := s.do(ctx, func() error {
		b, _, err := s.client.From(table).
			Select("*", "", false).
			Eq(column, value).
			Limit(1, "").
			Execute()
		body = b
		return err
	})
	if err != nil {
		return fmt.Errorf("select from %s: %w", table, err)
	}

	var rows []json.RawMessage
	if err := json.Unmarshal(body, &rows); err != nil {
		return fmt.Errorf("decoding %s select response: %w", table, err)
	}
	if len(rows) == 0 {
		return ErrNotFound
	}
	if err := json.Unmarshal(rows[0], out); err != nil {
		return fmt.Errorf("decoding %s row: %w", table, err)
	}
	return nil
}

func (s *Supabase) SelectAll(ctx context.Context, table string, out interface{}, orders ...Order) error {
	var body []byte
	err := s.do(ctx, func() error {
		query := s.client.From(table).Select("*", "", false)
		for _, o := range orders {
			query = query.Order(o.Column, &postgrest.OrderOpts{Ascending: o.Ascending})
		}
		b, _, err := query.Execute()
		body = b
		return err
	})
	if err != nil {
		return fmt.Errorf("select from %s: %w", table, err)
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("decoding %s rows: %w", table, err)
	}
	return nil
}

func (s *Supabase) Update(ctx context.Context, table, column, value string, fields map[string]interface{}, out interface{}) (int64, error) {
	var (
		body  []byte
		count int64
	)
	err := s.do(ctx, func() error {
		b, c, err := s.client.From(table).
			Update(fields, "representation", "exact").
			Eq(column, value).
			Execute()
		body, count = b, c
		return err
	})
	if err != nil {
		return 0, fmt.Errorf("update %s: %w", table, err)
	}
	if out != nil {
		if err := json.Unmarshal(body, out); err != nil {
			return count, fmt.Errorf("decoding %s update response: %w", table, err)
		}
	}
	return count, nil
}

func (s *Supabase) Delete(ctx context.Context, table, column, value string) error {
	err := s.do(ctx, func() error {
		_, _, err := s.client.From(table).
			Delete("", "").
			Eq(column, value).
			Execute()
		return err
	})
	if err != nil {
		return fmt.Errorf("delete from %s: %w", table, err)
	}
	return nil
}

func (s *Supabase) Upload(ctx context.Context, bucket, key string, data io.Reader, opts UploadOptions) error {
	err := s.do(ctx, func() error {
		_, err := s.client.Storage.UploadFile(bucket, key, data, storage_go.FileOptions{
			ContentType:  &opts.ContentType,
			CacheControl: &opts.CacheControl,
			Upsert:       &opts.Upsert,
		})
		return err
	})
	if err != nil {
		if isDuplicateObject(err) {
			return ErrConflict
		}
		return fmt.Errorf("uploading %s/%s: %w", bucket, key, err)
	}
	return nil
}

func (s *Supabase) PublicURL(bucket, key string) (string, error) {
	resp := s.client.Storage.GetPublicUrl(bucket, key)
	if resp.SignedURL == "" {
		return "", fmt.Errorf("no public URL for %s/%s", bucket, key)
	}
	return resp.SignedURL, nil
}

func (s *Supabase) Remove(ctx context.Context, bucket string, keys []string) error {
	err := s.do(ctx, func() error {
		_, err := s.client.Storage.RemoveFile(bucket, keys)
		return err
	})
	if err != nil {
		return fmt.Errorf("removing objects from %s: %w", bucket, err)
	}
	return nil
}

// isDuplicateObject matches the storage API's duplicate-key rejection. The
// client surfaces it as a message, not a typed error.
func isDuplicateObject(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "duplicate") || strings.Contains(msg, "already exists")
}
