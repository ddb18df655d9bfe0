package eval

import (
	"fmt"

	"github.com/expr-lang/expr"
)

// Cond evaluates a boolean condition against env. The empty condition is
// true.
func Cond(cond string, env Env) (bool, error) {
	if cond == "" {
		return true, nil
	}
	if env == nil {
		env = Env{}
	}
	prg, err := expr.Compile(cond, expr.Env(env), expr.AsBool())
	if err != nil {
		return false, fmt.Errorf("%w: compiling condition %q: %w", ErrExpr, cond, err)
	}
	x, err := expr.Run(prg, env)
	if err != nil {
		return false, fmt.Errorf("%w: evaluating condition %q: %w", ErrExpr, cond, err)
	}
	b, ok := x.(bool)
	if !ok {
		return false, fmt.Errorf("%w: condition %q gave %T", ErrExpr, cond, x)
	}
	return b, nil
}
