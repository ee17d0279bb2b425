package zone

// Parser is the root state spec §3 describes: the option block, the file
// stack, the cache, and the active RDATA slot. One Parser serves exactly
// one Parse/ParseString call (spec §5 "owned by one caller for the
// duration of a parse call").
type Parser struct {
	opt         Options
	kernel      indexKernel
	files       []*File
	includePath map[string]bool
}

// Parse parses the zone file at path (spec §4.1, §6). The initial origin
// comes from opt.Origin.
func Parse(path string, opt Options) error {
	return newParser(opt).runFile(path)
}

// ParseString parses an in-memory zone file, the in-process equivalent of
// original_source/zone.c's not_a_file sources.
func ParseString(s string, opt Options) error {
	return newParser(opt).runString(s)
}

func newParser(opt Options) *Parser {
	t := selectTarget()
	opt.logf(LogDispatch, Pos{}, "selected indexer target %q", t.name)
	return &Parser{opt: opt, kernel: t.kernel, includePath: map[string]bool{}}
}

func (p *Parser) run(entry func(origin Name) (*File, error)) (err error) {
	if cerr := checkOptions(&p.opt); cerr != nil {
		return cerr
	}

	origin, err := compileName(p.opt.Origin, nil, Pos{})
	if err != nil {
		return err
	}

	first, err := entry(origin)
	if err != nil {
		return err
	}
	p.includePath[first.path] = true
	p.files = append(p.files, first)

	defer func() {
		for len(p.files) > 0 {
			p.popInclude()
		}
	}()

	slot := 0
	for {
		f := p.top()
		if f == nil {
			return nil
		}

		owner, rdata := p.cacheSlot(slot)
		if owner == nil {
			return Error{Code: ErrBadParameter, Message: "cache exhausted"}
		}

		rr, perr := p.parseRecord(f, rdata)
		if perr == errEndOfFile {
			if len(p.files) == 1 {
				return nil
			}
			p.popInclude()
			continue
		}
		if perr != nil {
			p.logParseError(perr)
			return perr
		}
		if rr == nil {
			continue // blank line or directive
		}
		copy(owner, rr.owner)

		next, aerr := p.opt.Accept(rr.owner, rr.typ, rr.class, rr.ttl, rr.rdata, p.opt.User)
		if aerr != nil {
			return Error{Code: ErrReadFromSink, Message: aerr.Error()}
		}
		if next < 0 {
			return Error{Code: ErrorCode(next), Message: "sink aborted the parse"}
		}
		slot = next
	}
}

func (p *Parser) runFile(path string) error {
	return p.run(func(origin Name) (*File, error) {
		return openFile("", path, p.kernel, origin, &p.opt)
	})
}

func (p *Parser) runString(s string) error {
	return p.run(func(origin Name) (*File, error) {
		return openString(s, p.kernel, origin, &p.opt)
	})
}

func (p *Parser) top() *File {
	if len(p.files) == 0 {
		return nil
	}
	return p.files[len(p.files)-1]
}

// logParseError reports a terminal parse failure through the configured
// Log sink, routed to LogSyntax or LogSemantic by the error's taxonomy code
// (spec §7); any other code (bad parameter, I/O, sink) isn't one this
// engine itself raises mid-parse, so it's logged under whichever category
// happens to be broadest rather than invented a third bucket for it.
func (p *Parser) logParseError(err error) {
	ze, ok := err.(Error)
	if !ok {
		return
	}
	switch ze.Code {
	case ErrSyntax:
		p.opt.logf(LogSyntax, ze.Pos, "syntax error: %s", ze.Message)
	case ErrSemantic:
		p.opt.logf(LogSemantic, ze.Pos, "semantic error: %s", ze.Message)
	default:
		p.opt.logf(LogAll, ze.Pos, "%s: %s", ze.Code, ze.Message)
	}
}

func (p *Parser) cacheSlot(n int) (owner, rdata []byte) {
	o, r, err := p.opt.Cache.slotFor(n, Pos{})
	if err != nil {
		return nil, nil
	}
	return o, r
}
