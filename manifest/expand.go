package manifest

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
	"github.com/goccy/go-yaml"

	"github.com/signadot/usda/debug"
	"github.com/signadot/usda/value"
)

// ExpandAny evaluates the $[...] expressions found in the string leaves of
// a decoded document. A string consisting of a single expression is
// replaced by the result itself, so "$[size * 2]" may yield a number.
// Otherwise each expression is replaced by its text.
func ExpandAny(v any, env map[string]any) (any, error) {
	if env == nil {
		env = map[string]any{}
	}
	switch x := v.(type) {
	case map[string]any:
		for k := range x {
			vv, err := ExpandAny(x[k], env)
			if err != nil {
				return nil, err
			}
			x[k] = vv
		}
		return x, nil
	case []any:
		for i := range x {
			vv, err := ExpandAny(x[i], env)
			if err != nil {
				return nil, err
			}
			x[i] = vv
		}
		return x, nil
	case string:
		if raw, ok := rawExpr(x); ok {
			return eval(raw, env)
		}
		return ExpandString(x, env)
	default:
		return x, nil
	}
}

// ExpandString replaces each $[...] in v by the text of its value.
//
// Within expressions, backslash escaping is supported:
//   - \] → literal ] (does not close the expression)
//   - \\ → literal \
//   - \x → x (for any character x)
//
// An expression that is not closed with an unescaped ] is kept literally.
func ExpandString(v string, env map[string]any) (string, error) {
	var out strings.Builder
	for {
		i := strings.Index(v, "$[")
		if i < 0 {
			out.WriteString(v)
			return out.String(), nil
		}
		key, rest, ok := scanExpr(v[i+2:])
		if !ok {
			out.WriteString(v)
			return out.String(), nil
		}
		out.WriteString(v[:i])
		x, err := eval(key, env)
		if err != nil {
			return "", err
		}
		s, err := anyToString(x)
		if err != nil {
			return "", fmt.Errorf("could not format evaluation result for %s: %w", key, err)
		}
		out.WriteString(s)
		v = rest
	}
}

func rawExpr(v string) (string, bool) {
	if !strings.HasPrefix(v, "$[") {
		return "", false
	}
	key, rest, ok := scanExpr(v[2:])
	if !ok || rest != "" {
		return "", false
	}
	return key, true
}

// scanExpr reads up to the first unescaped ']'.
func scanExpr(s string) (key, rest string, ok bool) {
	var buf []byte
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c == '\\' && i+1 < len(s):
			i++
			buf = append(buf, s[i])
		case c == ']':
			return strings.TrimSpace(string(buf)), s[i+1:], true
		default:
			buf = append(buf, c)
		}
	}
	return "", "", false
}

func eval(key string, env map[string]any) (any, error) {
	program, err := expr.Compile(key)
	if err != nil {
		return nil, fmt.Errorf("error compiling %q: %w", key, err)
	}
	x, err := vm.Run(program, env)
	if err != nil {
		return nil, fmt.Errorf("error evaluating %q: %w", key, err)
	}
	if debug.Eval() {
		debug.Logf("eval %q gave %#v\n", key, x)
	}
	return x, nil
}

func anyToString(v any) (string, error) {
	switch x := v.(type) {
	case nil:
		return "", nil
	case string:
		return x, nil
	case bool:
		return strconv.FormatBool(x), nil
	case float64:
		return value.FormatFloat(x), nil
	case int:
		return strconv.Itoa(x), nil
	case int64:
		return strconv.FormatInt(x, 10), nil
	case uint64:
		return strconv.FormatUint(x, 10), nil
	default:
		d, err := yaml.MarshalWithOptions(x, yaml.Flow(true))
		if err != nil {
			return "", err
		}
		return strings.TrimSpace(string(d)), nil
	}
}
