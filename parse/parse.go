package parse

import (
	"errors"
	"iter"
	"strings"

	"github.com/mschwehl/jenkins-k8sagent-lib-lb/debug"
	"github.com/mschwehl/jenkins-k8sagent-lib-lb/ir"
	"github.com/mschwehl/jenkins-k8sagent-lib-lb/token"
)

// Parse parses a fragment into a tree whose root is a mapping.
func Parse(d []byte, opts ...ParseOption) (*ir.Node, error) {
	pOpts := &parseOpts{}
	for _, f := range opts {
		f(pOpts)
	}
	res, err := parseLines(token.Lines(d), pOpts)
	if err != nil {
		var fe *token.FormatError
		if pOpts.filename != "" && errors.As(err, &fe) {
			fe.File = pOpts.filename
		}
		return nil, err
	}
	return res, nil
}

func ParseString(s string, opts ...ParseOption) (*ir.Node, error) {
	return Parse([]byte(s), opts...)
}

type parser struct {
	opts *parseOpts
	src  *lineSource
	// stack[i] holds the open node whose content is indented 2*i.
	stack []*ir.Node
}

func parseLines(lines iter.Seq2[token.Line, error], opts *parseOpts) (*ir.Node, error) {
	next, stop := iter.Pull2(lines)
	defer stop()
	p := &parser{
		opts:  opts,
		src:   &lineSource{next: next},
		stack: []*ir.Node{ir.Mapping()},
	}
	for {
		ln, ok, err := p.src.read()
		if err != nil {
			return nil, err
		}
		if !ok {
			break
		}
		if debug.Parse() {
			debug.Logf("parse line %d indent=%d item=%t %q\n", ln.Pos.Line, ln.Indent, ln.Item, ln.Text)
		}
		if err := p.line(&ln); err != nil {
			return nil, err
		}
	}
	return p.stack[0], nil
}

func (p *parser) line(ln *token.Line) error {
	if ln.Item && ln.Indent == 2 && len(p.stack) == 1 {
		return formatErr(token.ErrListItem, ln)
	}
	for len(p.stack) > 1 && p.depth() > ln.Indent {
		p.stack = p.stack[:len(p.stack)-1]
	}
	if p.depth() != ln.Indent {
		return formatErr(token.ErrIndent, ln)
	}
	top := p.stack[len(p.stack)-1]
	if ln.Item {
		return p.item(top, ln)
	}
	target := top
	if top.Type == ir.SequenceType {
		n := len(top.Values)
		if n == 0 || top.Values[n-1].Type != ir.MappingType {
			return formatErr(token.ErrIndent, ln)
		}
		target = top.Values[n-1]
	}
	key, val, ok := strings.Cut(ln.Text, ":")
	if !ok {
		return formatErr(token.ErrNoColon, ln)
	}
	return p.field(target, key, val, ln)
}

func (p *parser) item(top *ir.Node, ln *token.Line) error {
	switch {
	case top.Type == ir.SequenceType:
	case top.Type == ir.MappingType && len(top.Values) == 0 && len(p.stack) > 1:
		top.Type = ir.SequenceType
	default:
		return formatErr(token.ErrListItem, ln)
	}
	if ln.Text == "" {
		top.Append(ir.Mapping())
		return nil
	}
	key, val, ok := strings.Cut(ln.Text, ":")
	if !ok {
		v, err := p.scalar(ln.Text, ln)
		if err != nil {
			return err
		}
		top.Append(ir.FromString(v))
		return nil
	}
	item := ir.Mapping()
	top.Append(item)
	return p.field(item, key, val, ln)
}

func (p *parser) field(target *ir.Node, key, val string, ln *token.Line) error {
	key = strings.TrimSpace(key)
	if key == "" {
		return formatErr(token.ErrEmptyKey, ln)
	}
	val = strings.TrimSpace(val)
	if val != "" {
		v, err := p.scalar(val, ln)
		if err != nil {
			return err
		}
		target.Set(key, ir.FromString(v))
		return nil
	}
	child := ir.Mapping()
	next, ok, err := p.src.peek()
	if err != nil {
		return err
	}
	// the child's content sits one level below the current stack top
	if ok && next.Item && next.Indent == 2*len(p.stack) {
		child = ir.Sequence()
	}
	target.Set(key, child)
	p.stack = append(p.stack, child)
	return nil
}

func (p *parser) scalar(v string, ln *token.Line) (string, error) {
	switch v[0] {
	case '#', '&':
		return "", formatErr(token.ErrMarker, ln)
	}
	return p.opts.subst.Apply(v), nil
}

func (p *parser) depth() int {
	return 2 * (len(p.stack) - 1)
}

type lineSource struct {
	next func() (token.Line, error, bool)
	buf  *token.Line
}

func (s *lineSource) read() (token.Line, bool, error) {
	if s.buf != nil {
		ln := *s.buf
		s.buf = nil
		return ln, true, nil
	}
	ln, err, ok := s.next()
	if !ok {
		return token.Line{}, false, nil
	}
	if err != nil {
		return token.Line{}, false, err
	}
	return ln, true, nil
}

func (s *lineSource) peek() (token.Line, bool, error) {
	if s.buf != nil {
		return *s.buf, true, nil
	}
	ln, ok, err := s.read()
	if err != nil || !ok {
		return ln, ok, err
	}
	s.buf = &ln
	return ln, true, nil
}
