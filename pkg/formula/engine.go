// Package formula evaluates configurable nutrition expressions. The
// defaults implement Mifflin-St Jeor, but deployments can override any
// expression to tune how targets are derived from a profile.
package formula

import (
	"fmt"
	"sync"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

// Expression names understood by the engine
const (
	ExprBMRMale      = "bmr_male"
	ExprBMRFemale    = "bmr_female"
	ExprGoalCalories = "goal_calories"
)

// defaultExpressions hold the built-in formula set.
// Available variables: weight (kg), height (cm), age, tdee, goal_factor.
var defaultExpressions = map[string]string{
	ExprBMRMale:      "10 * weight + 6.25 * height - 5 * age + 5",
	ExprBMRFemale:    "10 * weight + 6.25 * height - 5 * age - 161",
	ExprGoalCalories: "tdee * goal_factor",
}

// Engine compiles and evaluates named formula expressions with caching
type Engine struct {
	mu       sync.RWMutex
	sources  map[string]string
	compiled map[string]*vm.Program
}

// NewEngine creates an engine with the default expression set
func NewEngine() *Engine {
	sources := make(map[string]string, len(defaultExpressions))
	for name, src := range defaultExpressions {
		sources[name] = src
	}
	return &Engine{
		sources:  sources,
		compiled: make(map[string]*vm.Program),
	}
}

// Override replaces a named expression, validating it compiles first
func (e *Engine) Override(name, source string) error {
	if _, ok := defaultExpressions[name]; !ok {
		return fmt.Errorf("unknown formula %q", name)
	}
	if _, err := expr.Compile(source); err != nil {
		return fmt.Errorf("invalid formula %q: %w", name, err)
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	e.sources[name] = source
	delete(e.compiled, name)
	return nil
}

// Evaluate runs a named expression against the given environment and
// returns the numeric result
func (e *Engine) Evaluate(name string, env map[string]interface{}) (float64, error) {
	program, err := e.program(name)
	if err != nil {
		return 0, err
	}

	out, err := expr.Run(program, env)
	if err != nil {
		return 0, fmt.Errorf("evaluate %q: %w", name, err)
	}

	switch v := out.(type) {
	case float64:
		return v, nil
	case int:
		return float64(v), nil
	default:
		return 0, fmt.Errorf("formula %q returned non-numeric value %T", name, out)
	}
}

func (e *Engine) program(name string) (*vm.Program, error) {
	e.mu.RLock()
	if p, ok := e.compiled[name]; ok {
		e.mu.RUnlock()
		return p, nil
	}
	source, ok := e.sources[name]
	e.mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("unknown formula %q", name)
	}

	program, err := expr.Compile(source)
	if err != nil {
		return nil, fmt.Errorf("compile %q: %w", name, err)
	}

	e.mu.Lock()
	e.compiled[name] = program
	e.mu.Unlock()
	return program, nil
}
