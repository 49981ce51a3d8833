package monitoring

import (
	"fmt"
	"io"

	"github.com/syifan/goseth"
)

// DumpState writes a JSON representation of v, following references up to
// maxDepth levels.
func DumpState(w io.Writer, v any, maxDepth int) error {
	serializer := goseth.NewSerializer()
	serializer.SetRoot(v)
	serializer.SetMaxDepth(maxDepth)

	if err := serializer.Serialize(w); err != nil {
		return fmt.Errorf("monitoring: serialize state: %w", err)
	}

	return nil
}
