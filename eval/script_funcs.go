package eval

import (
	"fmt"
	"os"
	"strings"

	"github.com/expr-lang/expr"
)

func exprOpts() []expr.Option {
	return []expr.Option{
		expr.Env(Env{}),
		expr.AsBool(),
		expr.Function("getenv", func(params ...any) (any, error) {
			if len(params) != 1 {
				return nil, fmt.Errorf("getenv takes 1 argument, got %d", len(params))
			}
			name, ok := params[0].(string)
			if !ok {
				return nil, fmt.Errorf("getenv: %v is not a string", params[0])
			}
			return os.Getenv(name), nil
		}, new(func(string) string)),
		// minor("4.8.1") is "4.8"; names without a dot give "".
		expr.Function("minor", func(params ...any) (any, error) {
			s, ok := params[0].(string)
			if !ok {
				return nil, fmt.Errorf("minor: %v is not a string", params[0])
			}
			parts := strings.SplitN(s, ".", 3)
			if len(parts) < 2 {
				return "", nil
			}
			return parts[0] + "." + parts[1], nil
		}, new(func(string) string)),
	}
}
