package textfile

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"github.com/edsrzf/mmap-go"
	"github.com/npillmayer/wordtree"
)

// ErrNotRegular is flagged when a batch file name does not denote a regular file.
var ErrNotRegular = errors.New("textfile: not a regular file")

// File is a batch file opened for reading. Its content is memory-mapped.
type File struct {
	path string      // file name
	info os.FileInfo // result from Stat(path)
	file *os.File    // file handle, nil for empty files
	data mmap.MMap   // mapped content, nil for empty files
}

// Open opens a batch file and maps it into memory. Clients must call Close when
// done with the file.
func Open(name string) (*File, error) {
	fi, err := os.Stat(name)
	if err != nil {
		return nil, err
	} else if !fi.Mode().IsRegular() {
		return nil, fmt.Errorf("%w: %s", ErrNotRegular, name)
	}
	tf := &File{path: name, info: fi}
	if fi.Size() == 0 { // empty files cannot be mapped
		tracer().Debugf("textfile: %s is empty", name)
		return tf, nil
	}
	if tf.file, err = os.Open(name); err != nil { // just open for read access
		return nil, err
	}
	if tf.data, err = mmap.Map(tf.file, mmap.RDONLY, 0); err != nil {
		tf.file.Close()
		return nil, fmt.Errorf("textfile: cannot map %s: %w", name, err)
	}
	tracer().Debugf("textfile: mapped %d bytes of %s", len(tf.data), name)
	return tf, nil
}

// Path returns the file name f has been opened with.
func (f *File) Path() string {
	return f.path
}

// Size returns the size of f in bytes.
func (f *File) Size() int64 {
	return f.info.Size()
}

// Bytes returns the mapped content of f. The slice is read-only and becomes
// invalid after Close.
func (f *File) Bytes() []byte {
	return f.data
}

// Batch parses the content of f as a batch.
func (f *File) Batch() (*wordtree.Batch, error) {
	b, err := wordtree.ParseBatch(bytes.NewReader(f.data))
	if err != nil {
		tracer().Errorf("textfile: %s: %v", f.path, err)
		return nil, fmt.Errorf("%s: %w", f.path, err)
	}
	return b, nil
}

// Close unmaps and closes f.
func (f *File) Close() error {
	var err error
	if f.data != nil {
		err = f.data.Unmap()
		f.data = nil
	}
	if f.file != nil {
		if cerr := f.file.Close(); err == nil {
			err = cerr
		}
		f.file = nil
	}
	return err
}

// Load reads a batch file and parses it. A malformed file yields an error
// wrapping wordtree.ErrMalformedBatchLine and no batch.
func Load(name string) (*wordtree.Batch, error) {
	f, err := Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return f.Batch()
}

// LoadAll loads a sequence of batch files, stopping at the first error.
// Either all files are returned as batches, or none.
func LoadAll(names ...string) ([]*wordtree.Batch, error) {
	batches := make([]*wordtree.Batch, 0, len(names))
	for _, name := range names {
		b, err := Load(name)
		if err != nil {
			return nil, err
		}
		batches = append(batches, b)
	}
	return batches, nil
}
