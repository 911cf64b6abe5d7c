package svgcurve

import (
	"fmt"
	"strconv"
	"strings"
)

// parseNumbers splits a transform argument list on commas and whitespace,
// mixed freely.
func parseNumbers(v string) ([]float64, error) {
	v = strings.ReplaceAll(v, "\n", ",")
	v = strings.ReplaceAll(v, "\t", ",")
	v = strings.ReplaceAll(v, " ", ",")

	var vals []float64
	for _, item := range strings.Split(v, ",") {
		if 0 < len(item) {
			val, err := strconv.ParseFloat(item, 64)
			if err != nil {
				return nil, fmt.Errorf("bad number %q: %w", item, ErrUnsupportedTransform)
			}
			vals = append(vals, val)
		}
	}
	return vals, nil
}

// ParseTransform parses a transform attribute into an affine matrix. The
// supported functions are translate(tx[,ty]) and matrix(a,b,c,d,e,f);
// multiple functions resolve left to right. An absent or unrecognized
// attribute resolves to the identity, or to ErrUnsupportedTransform when
// strict.
func ParseTransform(v string, opts ...Option) (Matrix, error) {
	return parseTransform(v, makeOptions(opts))
}

func parseTransform(v string, o options) (Matrix, error) {
	m := Identity

	i, j := 0, 0
	var fun string
	for i < len(v) {
		if v[i] == '(' {
			fun = strings.ToLower(strings.TrimSpace(v[j:i]))
			j = i + 1
		} else if v[i] == ')' {
			d, err := parseNumbers(v[j:i])
			if err != nil {
				if o.strict {
					return Identity, err
				}
				return Identity, nil
			}
			switch fun {
			case "translate":
				if len(d) == 1 {
					m = m.Translate(d[0], 0.0)
				} else if len(d) == 2 {
					m = m.Translate(d[0], d[1])
				} else {
					if o.strict {
						return Identity, fmt.Errorf("translate takes 1 or 2 numbers: %w", ErrUnsupportedTransform)
					}
					return Identity, nil
				}
			case "matrix":
				if len(d) != 6 {
					if o.strict {
						return Identity, fmt.Errorf("matrix takes 6 numbers: %w", ErrUnsupportedTransform)
					}
					return Identity, nil
				}
				m = m.Mul(Matrix{{d[0], d[2], d[4]}, {d[1], d[3], d[5]}})
			default:
				if o.strict {
					return Identity, fmt.Errorf("function %q: %w", fun, ErrUnsupportedTransform)
				}
				return Identity, nil
			}
			fun = ""
			j = i + 1
		}
		i++
	}
	if strings.TrimSpace(v[j:]) != "" || fun != "" {
		// trailing junk or an unclosed function
		if o.strict {
			return Identity, fmt.Errorf("bad syntax %q: %w", v, ErrUnsupportedTransform)
		}
		return Identity, nil
	}
	return m, nil
}
