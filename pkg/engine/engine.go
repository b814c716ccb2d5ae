// Package engine provides the Lisp evaluation engine for the shape DSL.
// It wraps zygomys in a sandboxed environment and produces the list of
// parts a program declares:
//
//	(sphere :center (vec3 1 2 3) :radius 2 :name "ball")
//	(cylinder :origin (vec3 0 0 0) :extremity (vec3 0 0 5) :radius 1 :facets 16)
package engine

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/chazu/meshprim/internal/logger"
	"github.com/chazu/meshprim/pkg/tessellate"
	zygo "github.com/glycerine/zygomys/zygo"
	"go.uber.org/zap"
)

// EvalError represents a non-fatal error encountered during evaluation,
// such as a parse error or a runtime error in user code.
type EvalError struct {
	Line    int    `json:"line,omitempty"`
	Col     int    `json:"col,omitempty"`
	Message string `json:"message"`
}

func (e EvalError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("line %d: %s", e.Line, e.Message)
	}
	return e.Message
}

// Option configures an Engine.
type Option func(*Engine)

// WithTimeout overrides EvalTimeout. Non-positive values are ignored.
func WithTimeout(d time.Duration) Option {
	return func(e *Engine) {
		if d > 0 {
			e.timeout = d
		}
	}
}

// Engine wraps the zygomys interpreter for shape evaluation.
// It is safe for concurrent use; each call to Evaluate creates a fresh
// sandboxed environment for determinism.
type Engine struct {
	mu         sync.Mutex
	generation uint64
	timeout    time.Duration
}

// NewEngine creates a new Engine instance.
func NewEngine(opts ...Option) *Engine {
	e := &Engine{timeout: EvalTimeout}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Evaluate runs DSL source code and returns the parts it declares, in call
// order. Each call creates a fresh zygomys sandbox for deterministic
// evaluation.
//
// Return semantics:
//   - On success: returns parts (non-nil, possibly empty) + nil errors + nil error
//   - On parse/eval failure: returns nil parts + eval errors + nil error
//   - On fatal failure (timeout, panic, superseded): returns nil + nil + error
func (e *Engine) Evaluate(source string) ([]tessellate.Part, []EvalError, error) {
	e.mu.Lock()
	e.generation++
	gen := e.generation
	e.mu.Unlock()

	log := logger.Named("engine").With(zap.Uint64("generation", gen))
	start := time.Now()

	ch := make(chan evalResult, 1)

	go func() {
		defer func() {
			if r := recover(); r != nil {
				ch <- evalResult{err: fmt.Errorf("panic during evaluation: %v", r)}
			}
		}()

		parts, evalErrs, err := evaluate(source)
		ch <- evalResult{parts: parts, errors: evalErrs, err: err}
	}()

	parts, evalErrs, err := waitWithTimeout(ch, gen, &e.mu, &e.generation, e.timeout)
	log.Debug("evaluated",
		zap.Int("parts", len(parts)),
		zap.Int("errors", len(evalErrs)),
		zap.Duration("elapsed", time.Since(start)),
		zap.Error(err),
	)
	return parts, evalErrs, err
}

// evaluate performs the actual zygomys evaluation in a fresh sandbox.
func evaluate(source string) ([]tessellate.Part, []EvalError, error) {
	// Empty source is a valid program that declares nothing.
	if strings.TrimSpace(source) == "" {
		return []tessellate.Part{}, nil, nil
	}

	// Sandbox mode prevents user code from accessing the filesystem or syscalls.
	env := zygo.NewZlispSandbox()
	defer env.Stop()

	parts := &partList{parts: []tessellate.Part{}}
	registerBuiltins(env, parts)

	if err := env.LoadString(preprocessSource(source)); err != nil {
		return nil, parseZygomysError(err), nil
	}
	if _, err := env.Run(); err != nil {
		return nil, parseZygomysError(err), nil
	}
	return parts.parts, nil, nil
}

// linePattern matches zygomys error messages that include "Error on line N: ..."
var linePattern = regexp.MustCompile(`(?is)(?:error )?on line (\d+):\s*(.*)`)

// linePatternShort matches simpler "line N: ..." patterns.
var linePatternShort = regexp.MustCompile(`(?is)^line (\d+):\s*(.*)`)

// parseZygomysError converts a zygomys error into one or more EvalError values.
// It attempts to extract line number information from the error message.
func parseZygomysError(err error) []EvalError {
	msg := err.Error()

	for _, re := range []*regexp.Regexp{linePattern, linePatternShort} {
		if m := re.FindStringSubmatch(msg); m != nil {
			line, _ := strconv.Atoi(m[1])
			return []EvalError{{Line: line, Message: strings.TrimSpace(m[2])}}
		}
	}

	// Fallback: no line info available.
	return []EvalError{{Message: strings.TrimSpace(msg)}}
}
