package eval

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/mschwehl/jenkins-k8sagent-lib-lb/debug"

	"github.com/expr-lang/expr"
)

// Env holds the variables visible to expansions and conditions.
type Env = map[string]any

// ExpandString replaces each $[expr] in v with the result of evaluating
// expr against env. Inside an expression, \] and \\ escape. An
// unterminated $[ is kept literally.
func ExpandString(v string, env Env) (string, error) {
	var out strings.Builder
	i := 0
	for i < len(v) {
		start := strings.Index(v[i:], "$[")
		if start < 0 {
			out.WriteString(v[i:])
			break
		}
		start += i
		out.WriteString(v[i:start])
		key, end, ok := scanExpr(v, start+2)
		if !ok {
			out.WriteString(v[start:])
			break
		}
		x, err := evalExpr(strings.TrimSpace(key), env)
		if err != nil {
			return "", err
		}
		s, err := anyToString(x)
		if err != nil {
			return "", fmt.Errorf("could not render result of %q: %w", key, err)
		}
		out.WriteString(s)
		i = end
	}
	return out.String(), nil
}

// scanExpr reads an expression body starting at i up to the closing ].
// It returns the unescaped body and the offset after the ].
func scanExpr(v string, i int) (string, int, bool) {
	var key []byte
	for i < len(v) {
		c := v[i]
		switch c {
		case '\\':
			if i+1 < len(v) {
				key = append(key, v[i+1])
				i += 2
				continue
			}
			return "", 0, false
		case ']':
			return string(key), i + 1, true
		}
		key = append(key, c)
		i++
	}
	return "", 0, false
}

func evalExpr(key string, env Env) (any, error) {
	if key == "" {
		return nil, fmt.Errorf("%w: empty expression", ErrExpr)
	}
	if env == nil {
		env = Env{}
	}
	prg, err := expr.Compile(key, expr.Env(env))
	if err != nil {
		return nil, fmt.Errorf("%w: compiling %q: %w", ErrExpr, key, err)
	}
	x, err := expr.Run(prg, env)
	if err != nil {
		return nil, fmt.Errorf("%w: evaluating %q: %w", ErrExpr, key, err)
	}
	if debug.Subst() {
		debug.Logf("eval %q gave %#v\n", key, x)
	}
	return x, nil
}

func anyToString(v any) (string, error) {
	switch x := v.(type) {
	case string:
		return x, nil
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64), nil
	case int:
		return strconv.Itoa(x), nil
	case bool:
		return strconv.FormatBool(x), nil
	case nil:
		return "", nil
	case map[string]any, []any:
		return "", fmt.Errorf("%w: %T is not a scalar", ErrExpr, v)
	default:
		return fmt.Sprint(x), nil
	}
}
