package zone

import "strings"

// handleDirective dispatches $ORIGIN/$TTL/$INCLUDE (spec §4.7), generalized
// from sqlparser/pragma.go's `--sqlcode:` directive-recognition/parse loop:
// both read one leading keyword token off the stream, then a fixed number
// of argument tokens. Any further tokens on the line are discarded by
// drainEndOfLine, not rejected.
func (p *Parser) handleDirective(f *File, name string, pos Pos) error {
	fr := &fieldReader{lx: f.lexer}

	switch name {
	case "$ORIGIN":
		arg, err := fr.requireField("$ORIGIN argument")
		if err != nil {
			return err
		}
		origin, err := compileName(arg.Value, f.origin, arg.Start)
		if err != nil {
			return err
		}
		f.origin = origin
		return fr.drainEndOfLine()

	case "$TTL":
		arg, err := fr.requireField("$TTL argument")
		if err != nil {
			return err
		}
		ttl, err := parseTTL(arg.Value, arg.Start)
		if err != nil {
			return err
		}
		f.lastTTL = ttl
		return fr.drainEndOfLine()

	case "$INCLUDE":
		pathTok, err := fr.requireField("$INCLUDE path")
		if err != nil {
			return err
		}
		originArg := f.origin
		if tok, ok, err := fr.next(); err != nil {
			return err
		} else if ok {
			originArg, err = compileName(tok.Value, f.origin, tok.Start)
			if err != nil {
				return err
			}
		}
		if err := fr.drainEndOfLine(); err != nil {
			return err
		}
		return p.pushInclude(pathTok.Value, originArg, pos)
	}
	return semanticErrorf(pos, "unhandled directive %q", name)
}

// pushInclude opens path (relative to the current file's directory) and
// pushes it onto the file stack, detecting cycles by canonicalized path —
// the DFS visiting/visited idiom from sqlparser/sqldocument/
// topological_sort.go, repurposed here from dependency-cycle detection to
// include-cycle detection: p.includePath tracks the set of canonical paths
// currently open (the "visiting" set); a path already in it is a cycle.
func (p *Parser) pushInclude(path string, origin Name, pos Pos) error {
	current := p.top()
	dir := ""
	if current != nil && current.name != stringSourceName {
		dir = dirOf(string(current.name))
	}

	child, err := openFile(dir, path, p.kernel, origin, &p.opt)
	if err != nil {
		return err
	}

	if p.includePath[child.path] {
		child.close()
		return semanticErrorf(pos, "$INCLUDE cycle detected at %q", child.path)
	}
	p.includePath[child.path] = true
	child.includer = current
	p.files = append(p.files, child)
	p.opt.logf(LogInclude, pos, "entering $INCLUDE %q", child.path)
	return nil
}

// popInclude closes the top file and restores the includer's position in
// the stack. Per spec.md's own resolution of the open question, the outer
// file's origin is untouched by whatever the nested file did to its own
// origin — origin lives on the File, not shared state, so simply popping
// the stack already implements this.
func (p *Parser) popInclude() {
	top := p.top()
	if top == nil {
		return
	}
	p.opt.logf(LogInclude, Pos{File: top.name}, "leaving $INCLUDE %q", top.path)
	delete(p.includePath, top.path)
	top.close()
	p.files = p.files[:len(p.files)-1]
}

func dirOf(path string) string {
	if i := strings.LastIndexByte(path, '/'); i >= 0 {
		return path[:i]
	}
	return "."
}
