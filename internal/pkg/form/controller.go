package form

import (
	"bytes"
	"context"
	"path"
	"strings"
	"sync"

	"github.com/rs/zerolog"

	"github.com/yigit/transferdesk/internal/pkg/apperrors"
	"github.com/yigit/transferdesk/internal/pkg/filestorage"
)

// Submission is what an acceptor receives: the validated draft and the
// blob path each attached file was uploaded to.
type Submission struct {
	Draft     *Draft
	BlobPaths map[string]string
}

// Acceptor takes ownership of a validated submission.
type Acceptor func(ctx context.Context, sub Submission) error

// Controller validates drafts against a schema, uploads their files and
// hands them to an acceptor.
type Controller struct {
	schema Schema
	blobs  filestorage.BlobStore
	prefix string
	logger zerolog.Logger

	mu       sync.Mutex
	inflight map[string]struct{}
}

// NewController creates a controller. prefix is the blob path prefix for
// uploaded files.
func NewController(schema Schema, blobs filestorage.BlobStore, prefix string, lgr zerolog.Logger) *Controller {
	return &Controller{
		schema:   schema,
		blobs:    blobs,
		prefix:   strings.Trim(prefix, "/"),
		logger:   lgr.With().Str("form", schema.Name).Logger(),
		inflight: map[string]struct{}{},
	}
}

// Schema returns the controller's field definitions.
func (c *Controller) Schema() Schema {
	return c.schema
}

func baseName(filename string) string {
	return path.Base(strings.ReplaceAll(filename, `\`, "/"))
}

// ValidFileName reports whether filename has a base name a blob can be
// stored under. Empty names and ".", ".." or "/" are refused.
func ValidFileName(filename string) bool {
	switch baseName(filename) {
	case ".", "..", "/":
		return false
	}
	return true
}

// BlobPath is where a file named filename is uploaded: the prefix followed
// by the base of the original name. Uploads of the same name overwrite.
func BlobPath(prefix, filename string) string {
	return strings.Trim(prefix, "/") + "/" + baseName(filename)
}

func (c *Controller) acquire(key string) bool {
	if key == "" {
		return true
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, busy := c.inflight[key]; busy {
		return false
	}
	c.inflight[key] = struct{}{}
	return true
}

func (c *Controller) release(key string) {
	if key == "" {
		return
	}
	c.mu.Lock()
	delete(c.inflight, key)
	c.mu.Unlock()
}

// Submit validates d, then uploads each attached file, then calls accept.
// Validation failures, including unusable file names, return a
// *ValidationError before any remote call. A
// failed upload is logged and returned as a remote-call error; accept is
// not called. While a submission with the same non-empty key is running,
// another one is refused with ErrSubmissionInProgress.
func (c *Controller) Submit(ctx context.Context, key string, d *Draft, accept Acceptor) error {
	if err := c.schema.Validate(d); err != nil {
		return err
	}
	for _, field := range c.schema.FileFields() {
		if f := d.File(field); f != nil && !ValidFileName(f.Name) {
			return NewFieldError(field, "Invalid file name")
		}
	}

	if !c.acquire(key) {
		c.logger.Warn().Str("key", key).Msg("Duplicate submission refused while one is pending")
		return apperrors.ErrSubmissionInProgress
	}
	defer c.release(key)

	sub := Submission{Draft: d, BlobPaths: map[string]string{}}
	for _, field := range c.schema.FileFields() {
		f := d.File(field)
		if f == nil {
			continue
		}
		blobPath := BlobPath(c.prefix, f.Name)
		if err := c.blobs.Upload(ctx, blobPath, bytes.NewReader(f.Content)); err != nil {
			c.logger.Error().Err(err).Str("field", field).Str("path", blobPath).Msg("Error uploading attachment")
			return apperrors.NewRemoteCallError("upload", err)
		}
		sub.BlobPaths[field] = blobPath
	}

	return accept(ctx, sub)
}
