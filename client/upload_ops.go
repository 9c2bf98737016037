package client

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strconv"

	"github.com/rs/zerolog/log"

	"github.com/Jinansh2608/ledger-backend/client/internal/api"
)

// --------------------------------------------------------------------
// Synchronous uploads
// --------------------------------------------------------------------

// UploadPO uploads one spreadsheet for vendor. Only Authorization is sent
// besides the multipart body; failures read "Upload failed" unless the
// server gave a detail.
func (c *Client) UploadPO(ctx context.Context, vendor Vendor, file UploadFile, clientID, projectID int64) (*POParseResponse, error) {
	return api.UploadPO(ctx, c.caller, vendor, file, clientID, projectID)
}

// BulkUploadPO uploads several spreadsheets for vendor in one request. An
// empty files returns ErrNoFiles without contacting the server.
func (c *Client) BulkUploadPO(ctx context.Context, vendor Vendor, files []UploadFile, clientID, projectID int64) (*BulkUploadResponse, error) {
	if len(files) == 0 {
		return nil, ErrNoFiles
	}
	return api.BulkUploadPO(ctx, c.caller, vendor, files, clientID, projectID)
}

func (c *Client) UploadBajajPO(ctx context.Context, file UploadFile, clientID, projectID int64) (*POParseResponse, error) {
	return c.UploadPO(ctx, VendorBajaj, file, clientID, projectID)
}

func (c *Client) BulkUploadBajajPO(ctx context.Context, files []UploadFile, clientID, projectID int64) (*BulkUploadResponse, error) {
	return c.BulkUploadPO(ctx, VendorBajaj, files, clientID, projectID)
}

func (c *Client) UploadDavaIndiaPO(ctx context.Context, file UploadFile, clientID, projectID int64) (*POParseResponse, error) {
	return c.UploadPO(ctx, VendorDavaIndia, file, clientID, projectID)
}

func (c *Client) BulkUploadDavaIndiaPO(ctx context.Context, files []UploadFile, clientID, projectID int64) (*BulkUploadResponse, error) {
	return c.BulkUploadPO(ctx, VendorDavaIndia, files, clientID, projectID)
}

// --------------------------------------------------------------------
// Queued uploads (requires WithUploadQueue)
// --------------------------------------------------------------------

// UploadResult is the outcome of a queued upload.
type UploadResult struct {
	Vendor    Vendor
	Filename  string
	ClientID  int64
	ProjectID int64
	Response  *POParseResponse // nil when Err != nil
	Err       error
}

// SubmitUpload queues a single-file upload and returns once it is accepted.
// Uploads for the same project run in submission order; recoverable failures
// are retried. done, if non-nil, is called once with the final result from
// the queue's worker goroutine.
//
// The file content is read before SubmitUpload returns. ctx bounds only the
// wait for a queue slot: an accepted upload keeps running after ctx is
// cancelled, until it completes or Close abandons its retries.
func (c *Client) SubmitUpload(ctx context.Context, vendor Vendor, file UploadFile, clientID, projectID int64, done func(UploadResult)) error {
	if c.uploads == nil {
		return ErrUploadQueueDisabled
	}
	if c.closed.Load() {
		return ErrClosed
	}
	if file.Content == nil {
		return fmt.Errorf("submit upload %q: no content", file.Name)
	}
	content, err := io.ReadAll(file.Content)
	if err != nil {
		return fmt.Errorf("submit upload %q: %w", file.Name, err)
	}

	job := &uploadJob{
		caller:  c.caller,
		content: content,
		result:  UploadResult{Vendor: vendor, Filename: file.Name, ClientID: clientID, ProjectID: projectID},
		done:    done,
	}
	if err := c.uploads.SubmitDetached(ctx, projectKey(projectID), job); err != nil {
		return err
	}
	uploadsSubmittedTotal.WithLabelValues(string(vendor)).Inc()
	return nil
}

// AwaitUploads blocks until every upload submitted for projectID before the
// call has finished (successfully or not).
func (c *Client) AwaitUploads(ctx context.Context, projectID int64) error {
	if c.uploads == nil {
		return ErrUploadQueueDisabled
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	return c.uploads.Barrier(ctx, projectKey(projectID))
}

// projectKey partitions queued uploads; unassigned uploads share one key.
func projectKey(projectID int64) string {
	if projectID == 0 {
		return "project:none"
	}
	return "project:" + strconv.FormatInt(projectID, 10)
}

// uploadJob re-reads content on every attempt and reports once via Finish.
type uploadJob struct {
	caller  *api.Caller
	content []byte
	result  UploadResult
	done    func(UploadResult)
}

func (j *uploadJob) Run(ctx context.Context) error {
	file := UploadFile{Name: j.result.Filename, Content: bytes.NewReader(j.content)}
	resp, err := api.UploadPO(ctx, j.caller, j.result.Vendor, file, j.result.ClientID, j.result.ProjectID)
	if err != nil {
		return err
	}
	j.result.Response = resp
	return nil
}

func (j *uploadJob) Finish(err error) {
	j.result.Err = err
	if err != nil {
		j.result.Response = nil
		uploadsFailedTotal.WithLabelValues(string(j.result.Vendor)).Inc()
		log.Warn().Err(err).
			Str("vendor", string(j.result.Vendor)).
			Str("file", j.result.Filename).
			Int64("project_id", j.result.ProjectID).
			Msg("queued upload failed")
	}
	if j.done != nil {
		j.done(j.result)
	}
}
