package boxfile

import (
	"context"
	"fmt"
	"os"

	"github.com/guiguan/caster"
	"github.com/npillmayer/rstar"
)

// DefaultProgressEvery is the default number of records between two
// progress messages.
const DefaultProgressEvery = 1000

// Progress is the message type broadcast to subscribers of a Loader.
type Progress struct {
	Records int   // number of records inserted so far
	Done    bool  // loading has finished, successfully or not
	Err     error // set if loading failed; valid if Done
}

// Loader loads a box file into a tree. A Loader is good for a single load.
type Loader struct {
	// ProgressEvery is the number of records between two progress messages.
	ProgressEvery int
	path          string
	cast          *caster.Caster // broadcaster for progress messages
}

// NewLoader creates a loader for the file at path. The file is not opened
// before LoadInto is called.
func NewLoader(path string) *Loader {
	return &Loader{
		ProgressEvery: DefaultProgressEvery,
		path:          path,
		cast:          caster.New(nil), // we will broadcast messages while records are loaded
	}
}

// Subscribe returns a channel receiving Progress messages. The channel is
// closed when loading has finished. Subscribers have to drain their channel,
// otherwise loading will block.
func (l *Loader) Subscribe(ctx context.Context, capacity uint) (<-chan interface{}, bool) {
	return l.cast.Sub(ctx, capacity)
}

// Load reads the file at path into a new tree with configuration cfg.
func Load(ctx context.Context, path string, cfg rstar.Config[string]) (*rstar.Tree[string], error) {
	tree, err := rstar.New(cfg)
	if err != nil {
		return nil, err
	}
	if _, err := NewLoader(path).LoadInto(ctx, tree); err != nil {
		return nil, err
	}
	return tree, nil
}

// LoadInto reads all records of the loader's file and inserts them into tree,
// with the record labels as items. It returns the number of records inserted.
//
// On error, records read before the failing line remain in the tree.
func (l *Loader) LoadInto(ctx context.Context, tree *rstar.Tree[string]) (int, error) {
	defer l.cast.Close()
	file, err := openFile(l.path)
	if err != nil {
		l.cast.Pub(Progress{Done: true, Err: err})
		return 0, err
	}
	defer file.Close()
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	records, errch := readRecordsAsync(ctx, file)
	every := l.ProgressEvery
	if every <= 0 {
		every = DefaultProgressEvery
	}
	count := 0
	for rec := range records {
		if err = tree.Insert(rec.Box, rec.Label); err != nil {
			err = fmt.Errorf("line %d: %w", rec.Line, err)
			cancel() // stop the reader
			break
		}
		count++
		if count%every == 0 {
			tracer().Debugf("boxfile: %d records loaded from %s", count, l.path)
			l.cast.Pub(Progress{Records: count})
		}
	}
	for range records { // drain after cancellation
	}
	if rerr := <-errch; err == nil {
		err = rerr
	}
	if err != nil {
		tracer().Errorf("boxfile: loading %s: %v", l.path, err)
	} else {
		tracer().Infof("boxfile: loaded %d records from %s", count, l.path)
	}
	l.cast.Pub(Progress{Records: count, Done: true, Err: err})
	return count, err
}

// openFile opens an OS file for reading, checking that it is a regular file.
func openFile(name string) (*os.File, error) {
	fi, err := os.Stat(name)
	if err != nil {
		return nil, err
	} else if !fi.Mode().IsRegular() {
		return nil, fmt.Errorf("boxfile: %s is not a regular file", name)
	}
	return os.Open(name) // just open for read access
}

// --- File reading goroutine ------------------------------------------------

// readRecordsAsync parses file in a goroutine. Records are delivered on the
// first channel, which is closed at end of input; the second channel then
// receives exactly one value, the parse error or nil.
func readRecordsAsync(ctx context.Context, file *os.File) (<-chan Record, <-chan error) {
	records := make(chan Record, 64)
	errch := make(chan error, 1)
	go func() {
		defer close(records)
		errch <- Parse(file, func(rec Record) error {
			select {
			case records <- rec:
				return nil
			case <-ctx.Done():
				return ctx.Err()
			}
		})
	}()
	return records, errch
}
