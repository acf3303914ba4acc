package importer

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"tableflip.dev/agenda/pkg/controller"
	"tableflip.dev/agenda/pkg/store"
)

// Import reads a JSON export and appends its events to the collection.
// "-" reads from stdin. A malformed payload leaves the store untouched.
type Import struct {
	File  string
	Store *store.Store
}

func (n *Import) Do(ctx context.Context) error {
	if n.Store == nil {
		return errors.New("can not import, no store")
	}

	payload, err := n.read()
	if err != nil {
		return err
	}

	count, err := controller.New(n.Store).ImportEvents(payload)
	if err != nil {
		return err
	}
	fmt.Printf("imported %d events\n", count)
	return nil
}

func (n *Import) read() ([]byte, error) {
	if n.File == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(n.File)
}
