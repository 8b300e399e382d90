package scene

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/zeusync/scenegraph/internal/core/observability/log"
	"github.com/zeusync/scenegraph/pkg/concurrent"
	"github.com/zeusync/scenegraph/pkg/encoding"
)

// Document is one persisted tree awaiting decode.
type Document struct {
	Name   string
	Format encoding.Format
	Data   []byte
}

// ReadDocument loads a file and picks its format from the extension.
func ReadDocument(path string) (Document, error) {
	f, err := encoding.FormatFromPath(path)
	if err != nil {
		return Document{}, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Document{}, err
	}
	return Document{Name: path, Format: f, Data: data}, nil
}

// Loaded is the outcome of decoding one Document.
type Loaded struct {
	Name    string
	Root    Node
	Skipped []Skipped
}

// LoadAll decodes independent documents in parallel, each into its own tree,
// using at most workers goroutines (<= 0 means one per document). In strict
// mode the first failure cancels the rest; in lenient mode every document is
// attempted and failures are joined. Results keep the input order; failed
// documents have a nil Root.
func (r *Registry) LoadAll(ctx context.Context, docs []Document, workers int, opts ...DecodeOption) ([]Loaded, error) {
	mode := concurrent.StopAllOnError
	if r.NewDecoder(opts...).Mode() == ModeLenient {
		mode = concurrent.CollectErrors
	}
	return concurrent.Map(ctx, docs, workers, mode, func(ctx context.Context, doc Document) (Loaded, error) {
		if err := ctx.Err(); err != nil {
			return Loaded{Name: doc.Name}, err
		}
		start := time.Now()
		d := r.NewDecoder(opts...)
		root, err := d.Unmarshal(doc.Format, doc.Data)
		if err != nil {
			return Loaded{Name: doc.Name}, fmt.Errorf("%s: %w", doc.Name, err)
		}
		r.log().Debug("document loaded",
			log.String("document", doc.Name),
			log.Int("nodes", root.Base().Count()),
			log.Int("skipped", len(d.Skipped())),
			log.Duration("took", time.Since(start)))
		return Loaded{Name: doc.Name, Root: root, Skipped: d.Skipped()}, nil
	})
}
