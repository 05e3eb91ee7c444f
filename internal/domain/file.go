package domain

import (
	"context"
	"io"
)

// File is a document picked by the user. Open is only called once the name
// has passed validation, so implementations may defer downloads until then.
type File interface {
	Name() string
	Open(ctx context.Context) (io.ReadCloser, error)
}
