package ssdeep

import (
	"errors"
	"io"
	"os"
	"syscall"

	"golang.org/x/sys/unix"
)

type ioOptions struct {
	chunkSize int
	cleanup   bool
}

// Option configures File/Stream.
type Option interface {
	apply(*ioOptions)
}

type chunkSizeOption int

func (o chunkSizeOption) apply(opts *ioOptions) {
	if o > 0 {
		opts.chunkSize = int(o)
	}
}

// WithChunkSize overrides the number of bytes read per iteration from a
// Reader (default 1024).
func WithChunkSize(size int) Option {
	return chunkSizeOption(size)
}

type cleanupOption bool

func (o cleanupOption) apply(opts *ioOptions) {
	opts.cleanup = bool(o)
}

// WithCleanup asks File to drop the kernel's page cache for the file once
// it has been hashed, useful when hashing many large files in sequence and
// avoiding cache pollution matters more than a possible re-read.
func WithCleanup() Option {
	return cleanupOption(true)
}

// Bytes computes the fuzzy hash of a byte slice.
func Bytes(data []byte) (string, error) {
	h := New()
	defer h.Close()
	h.Update(data)
	return h.Digest(ModeNone), nil
}

// File computes the fuzzy hash of the file at path, reading it in chunks.
func File(path string, options ...Option) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	opts := ioOptions{chunkSize: defaultChunkSize}
	for _, o := range options {
		o.apply(&opts)
	}

	hash, err := readChunks(f, opts.chunkSize)
	if err != nil {
		return "", err
	}

	if opts.cleanup {
		fd := int(f.Fd())
		syscall.Fdatasync(fd)
		unix.Fadvise(fd, 0, 0, unix.FADV_DONTNEED)
	}

	return hash, nil
}

// Stream computes the fuzzy hash from an arbitrary io.Reader, reading it in
// chunks. Because the ladder picks its reported block size adaptively as
// bytes arrive (see Hasher.Digest), Stream never needs to know the reader's
// length in advance and makes a single pass over it.
func Stream(r io.Reader, options ...Option) (string, error) {
	opts := ioOptions{chunkSize: defaultChunkSize}
	for _, o := range options {
		o.apply(&opts)
	}
	return readChunks(r, opts.chunkSize)
}

func readChunks(r io.Reader, chunkSize int) (string, error) {
	h := New()
	defer h.Close()

	buf := make([]byte, chunkSize)
	for {
		n, err := r.Read(buf)
		if n > 0 {
			h.Update(buf[:n])
		}
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return "", err
		}
	}

	return h.Digest(ModeNone), nil
}
