package svgcurve

import (
	"fmt"

	"github.com/tdewolff/parse/v2/strconv"
)

// token is either a command letter (cmd != 0) or a numeric literal.
type token struct {
	cmd byte
	num float64
}

func isCommand(c byte) bool {
	switch c {
	case 'M', 'm', 'L', 'l', 'H', 'h', 'V', 'v', 'C', 'c', 'Z', 'z':
		return true
	}
	return false
}

// arity is the fixed argument count per command, consumed greedily in groups.
func arity(cmd byte) int {
	switch cmd {
	case 'M', 'm', 'L', 'l':
		return 2
	case 'H', 'h', 'V', 'v':
		return 1
	case 'C', 'c':
		return 6
	}
	return 0 // Z, z
}

// tokenize splits path data into command letters and numeric literals. This
// is a lexical pass only; argument counts are checked by the interpreter. A
// byte that starts neither a command nor a number is skipped, or rejected
// when strict.
func tokenize(d string, strict bool) ([]token, error) {
	data := []byte(d)
	var tokens []token
	i := 0
	for i < len(data) {
		c := data[i]
		if c == ' ' || c == ',' || c == '\n' || c == '\r' || c == '\t' {
			i++
			continue
		}
		if isCommand(c) {
			tokens = append(tokens, token{cmd: c})
			i++
			continue
		}
		if f, n := strconv.ParseFloat(data[i:]); 0 < n {
			tokens = append(tokens, token{num: f})
			i += n
			continue
		}
		if strict {
			return tokens, fmt.Errorf("position %d: %q: %w", i, c, ErrUnknownToken)
		}
		i++
	}
	return tokens, nil
}

func pt3(p Point) Point3 {
	return Point3{p.X, p.Y, 0.0}
}

// pathParser is the interpreter state threaded through one path-data scan.
// It is a plain value per call, so independent path elements can be parsed
// concurrently.
type pathParser struct {
	pos   Point // current point
	start Point // subpath start
	cmd   byte  // active command, persists across argument groups
	cur   []CurvePoint
	out   []Subpath
}

func (p *pathParser) flush(closed bool) {
	if 0 < len(p.cur) {
		p.out = append(p.out, Subpath{Points: p.cur, Closed: closed})
	}
	p.cur = nil
}

// ensure opens a subpath at the current point when a drawing command arrives
// before any MoveTo.
func (p *pathParser) ensure() {
	if len(p.cur) == 0 {
		p.start = p.pos
		p.cur = append(p.cur, corner(pt3(p.pos)))
	}
}

func (p *pathParser) moveTo(q Point) {
	p.flush(false)
	p.pos, p.start = q, q
	p.cur = append(p.cur, corner(pt3(q)))
}

func (p *pathParser) lineTo(q Point) {
	p.ensure()
	p.cur = append(p.cur, corner(pt3(q)))
	p.pos = q
}

func (p *pathParser) cubeTo(cp1, cp2, end Point) {
	p.ensure()

	// Handle propagation: the outgoing handle of the previous point is only
	// known now that its following segment is parsed.
	prev := &p.cur[len(p.cur)-1]
	prev.Out = pt3(cp1)
	prev.Kind = Free

	// The outgoing handle of the new point is a placeholder until a further
	// curve segment overwrites it.
	p.cur = append(p.cur, CurvePoint{Pos: pt3(end), In: pt3(cp2), Out: pt3(end), Kind: Free})
	p.pos = end
}

func (p *pathParser) close() {
	if 1 < len(p.cur) {
		first, last := p.cur[0], p.cur[len(p.cur)-1]
		if last.Pos.Equals(first.Pos) {
			// The closing point coincides with the start: merge instead of
			// emitting a duplicate.
			p.cur[0].In = last.In
			if last.Kind == Free {
				p.cur[0].Kind = Free
			}
			p.cur = p.cur[:len(p.cur)-1]
		}
	}
	p.flush(true)
	p.pos = p.start
}

func takeArgs(tokens []token, i, n int) ([]float64, bool) {
	if len(tokens) < i+n {
		return nil, false
	}
	args := make([]float64, n)
	for j := 0; j < n; j++ {
		if tokens[i+j].cmd != 0 {
			return nil, false
		}
		args[j] = tokens[i+j].num
	}
	return args, true
}

func (p *pathParser) interpret(tokens []token, strict bool) ([]Subpath, error) {
	i := 0
	for i < len(tokens) {
		cmd := p.cmd
		if tokens[i].cmd != 0 {
			cmd = tokens[i].cmd
			i++
		} else if cmd == 'M' {
			// An implicit repeat of MoveTo draws lines, per the path grammar.
			cmd = 'L'
		} else if cmd == 'm' {
			cmd = 'l'
		} else if cmd == 'Z' || cmd == 'z' {
			// Numbers after a close and before a new MoveTo are a no-op
			// continuation at the subpath start.
			if strict {
				return p.out, fmt.Errorf("number after close: %w", ErrUnknownToken)
			}
			i++
			continue
		} else if cmd == 0 {
			// numbers before any command
			if strict {
				return p.out, fmt.Errorf("number before command: %w", ErrUnknownToken)
			}
			i++
			continue
		}

		args, ok := takeArgs(tokens, i, arity(cmd))
		if !ok {
			// A truncated trailing group is discarded; points appended so
			// far are kept.
			p.flush(false)
			if strict {
				return p.out, fmt.Errorf("command %q: %w", cmd, ErrTruncatedPathData)
			}
			return p.out, nil
		}
		i += arity(cmd)

		switch cmd {
		case 'M', 'm':
			q := Point{args[0], args[1]}
			if cmd == 'm' {
				q = q.Add(p.pos)
			}
			p.moveTo(q)
		case 'L', 'l':
			q := Point{args[0], args[1]}
			if cmd == 'l' {
				q = q.Add(p.pos)
			}
			p.lineTo(q)
		case 'H':
			p.lineTo(Point{args[0], p.pos.Y})
		case 'h':
			p.lineTo(Point{p.pos.X + args[0], p.pos.Y})
		case 'V':
			p.lineTo(Point{p.pos.X, args[0]})
		case 'v':
			p.lineTo(Point{p.pos.X, p.pos.Y + args[0]})
		case 'C', 'c':
			cp1 := Point{args[0], args[1]}
			cp2 := Point{args[2], args[3]}
			end := Point{args[4], args[5]}
			if cmd == 'c' {
				cp1 = cp1.Add(p.pos)
				cp2 = cp2.Add(p.pos)
				end = end.Add(p.pos)
			}
			p.cubeTo(cp1, cp2, end)
		case 'Z', 'z':
			p.close()
		}
		p.cmd = cmd
	}
	p.flush(false)
	return p.out, nil
}

// ParsePath interprets SVG path data into subpaths with absolute coordinates
// and resolved Bezier handles. Coordinates are kept in the source frame
// (vertical axis growing downward); Load flips the vertical axis when
// mapping into the output frame. Malformed input degrades to a partial
// result unless Strict is set.
func ParsePath(d string, opts ...Option) ([]Subpath, error) {
	return parsePath(d, makeOptions(opts))
}

func parsePath(d string, o options) ([]Subpath, error) {
	tokens, err := tokenize(d, o.strict)
	if err != nil {
		return nil, err
	}
	var p pathParser
	return p.interpret(tokens, o.strict)
}
