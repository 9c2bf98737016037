package client

import (
	"context"

	"github.com/Jinansh2608/ledger-backend/client/internal/uploadqueue"
)

// uploadExecutor abstracts the background runner behind SubmitUpload.
type uploadExecutor interface {
	SubmitDetached(context.Context, string, uploadqueue.Job) error
	Barrier(context.Context, string) error
	Stop()
}
