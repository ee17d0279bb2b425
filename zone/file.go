package zone

import (
	"io"
	"os"
	"path/filepath"
)

// File is one open input source, forming a stack via includer back-links
// for $INCLUDE (spec §3 "File", §9 "File stack for $INCLUDE"). Unlike the
// C source's manually linked list of malloc'd nodes, the stack here is a
// Go slice of *File owned by the Parser (see Parser.pushInclude/popInclude);
// includer is still set by pushInclude as a back-link to the including
// file, though nothing in the engine reads it.
type File struct {
	name     FileRef
	path     string // canonicalized, used for $INCLUDE cycle detection
	handle   io.ReadCloser
	lexer    *Lexer
	includer *File

	origin Name

	// master-file inheritance state (spec §4.4, §9 "per-file, not global").
	lastOwner Name
	lastTTL   uint32
	lastClass Class
	lastType  Type // 0 == undefined
	haveOwner bool
	haveType  bool
}

func (f *File) close() error {
	if f.handle != nil {
		return f.handle.Close()
	}
	return nil
}

// openFile opens path (relative to dir when not absolute), selects the
// indexer kernel the dispatcher chose, and builds the Lexer over it —
// original_source/zone.c's open_file, generalized to Go's io.Reader. origin
// and opt seed the file's inheritance state fresh, per spec §9
// "each $INCLUDE gets fresh values (class and TTL default to the option
// block's values on entry)".
func openFile(dir, path string, kernel indexKernel, origin Name, opt *Options) (*File, error) {
	full := path
	if !filepath.IsAbs(path) && dir != "" {
		full = filepath.Join(dir, path)
	}
	h, err := os.Open(full)
	if err != nil {
		return nil, Error{Code: ErrIO, Message: err.Error()}
	}
	canon, err := filepath.Abs(full)
	if err != nil {
		canon = full
	}
	lx, err := newLexer(FileRef(full), newFileWindow(h), kernel)
	if err != nil {
		h.Close()
		return nil, err
	}
	return &File{
		name: FileRef(full), path: canon, handle: h, lexer: lx,
		origin: origin, lastTTL: opt.DefaultTTL, lastClass: opt.DefaultClass,
	}, nil
}

// openString wraps an in-memory zone file, the way original_source/zone.c's
// not_a_file sources behave (no handle, never refilled).
func openString(s string, kernel indexKernel, origin Name, opt *Options) (*File, error) {
	lx, err := newLexer(stringSourceName, newStringWindow(s), kernel)
	if err != nil {
		return nil, err
	}
	return &File{name: stringSourceName, lexer: lx, origin: origin, lastTTL: opt.DefaultTTL, lastClass: opt.DefaultClass}, nil
}
