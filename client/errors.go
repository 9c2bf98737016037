package client

import (
	"errors"

	poerrors "github.com/Jinansh2608/ledger-backend/client/internal/errors"
	"github.com/Jinansh2608/ledger-backend/client/internal/uploadqueue"
)

// APIError is returned for every non-2xx response and transport failure.
// Its Error() is the server's detail, else its message, else "API Error"
// ("Upload failed" / "Bulk upload failed" for uploads).
type APIError = poerrors.APIError

var (
	// ErrBackPressure is returned by SubmitUpload when the project's queue is full.
	ErrBackPressure = uploadqueue.ErrQueueFull

	// ErrClosed is returned by SubmitUpload after Close.
	ErrClosed = uploadqueue.ErrQueueClosed

	// ErrUploadQueueDisabled is returned by SubmitUpload and AwaitUploads on
	// a client built without WithUploadQueue.
	ErrUploadQueueDisabled = errors.New("upload queue not enabled (use WithUploadQueue)")

	// ErrNoFiles is returned by the bulk upload methods for an empty file list.
	ErrNoFiles = errors.New("bulk upload: no files")
)

// IsBackPressure reports whether err is a back-pressure error.
func IsBackPressure(err error) bool { return errors.Is(err, ErrBackPressure) }

// IsNotFound reports whether err is a 404 from the API.
func IsNotFound(err error) bool { return poerrors.StatusCode(err) == 404 }

// IsRecoverable reports whether retrying the failed call may succeed.
func IsRecoverable(err error) bool { return poerrors.IsRecoverable(err) }

// StatusCode returns the HTTP status behind err, or 0 if there was none.
func StatusCode(err error) int { return poerrors.StatusCode(err) }
