package export

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"tableflip.dev/agenda/pkg/controller"
	"tableflip.dev/agenda/pkg/store"
)

// Export writes the full collection to a JSON file. With no --out the
// file lands in the working directory under the blob's dated name.
type Export struct {
	Out   string
	Store *store.Store
}

func (n *Export) Do(ctx context.Context) error {
	if n.Store == nil {
		return errors.New("can not export, no store")
	}

	blob, err := controller.New(n.Store).ExportEvents()
	if err != nil {
		return err
	}

	out := n.Out
	if out == "" {
		out = blob.Filename
	} else if info, err := os.Stat(out); err == nil && info.IsDir() {
		out = filepath.Join(out, blob.Filename)
	}

	if err := os.WriteFile(out, blob.Data, 0o644); err != nil {
		return err
	}
	fmt.Printf("wrote %d events to %s\n", n.Store.Len(), out)
	return nil
}
