package cli

import (
	"fmt"
	"time"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

// whereEnv is the environment an inspect --where expression is evaluated
// against. extension is -1 when the identifier has none.
func whereEnv(r InspectOutput, t time.Time) map[string]any {
	ext := -1
	if r.Extension != nil {
		ext = int(*r.Extension)
	}
	return map[string]any{
		"id":           r.ID,
		"timestamp":    int(r.Timestamp),
		"time":         t,
		"hasExtension": r.Extension != nil,
		"extension":    ext,
		"extLen":       int(r.ExtLen),
		"payload":      int(r.Payload),
		"randomHigh":   int(r.RandomHigh),
		"randomLow":    int(r.RandomLow),
		"checksum":     int(r.Checksum),
		"hex":          r.Hex,
		"uuid":         r.UUID,
	}
}

// compileWhere compiles a boolean filter expression.
func compileWhere(expression string) (*vm.Program, error) {
	program, err := expr.Compile(expression, expr.Env(whereEnv(InspectOutput{}, time.Time{})), expr.AsBool())
	if err != nil {
		return nil, fmt.Errorf("compile --where %q: %w", expression, err)
	}
	return program, nil
}

func matchWhere(program *vm.Program, env map[string]any) (bool, error) {
	result, err := expr.Run(program, env)
	if err != nil {
		return false, fmt.Errorf("eval --where: %w", err)
	}
	ok, _ := result.(bool)
	return ok, nil
}
