package engine

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/chazu/meshprim/pkg/primitive"
	"github.com/chazu/meshprim/pkg/tessellate"
	v2 "github.com/deadsy/sdfx/vec/v2"
	v3 "github.com/deadsy/sdfx/vec/v3"
	zygo "github.com/glycerine/zygomys/zygo"
)

// ---------------------------------------------------------------------------
// Source preprocessing
// ---------------------------------------------------------------------------

// preprocessSource transforms shape DSL source before passing it to
// zygomys. It performs three transformations:
//
//  1. Keyword conversion: :radius -> "__kw_radius" (string literal), so
//     keywords never collide with user-defined variables.
//
//  2. Kebab-case to underscore: unit-ball -> unit_ball, since zygomys reads
//     a hyphen as the subtraction operator.
//
//  3. Comments: ; and ;; line comments become // comments.
//
// String literals are left untouched.
func preprocessSource(source string) string {
	result := make([]byte, 0, len(source)+len(source)/4)
	b := []byte(source)
	i := 0
	for i < len(b) {
		switch {
		case b[i] == '"':
			j := skipQuoted(b, i)
			result = append(result, b[i:j]...)
			i = j

		case b[i] == '`':
			j := i + 1
			for j < len(b) && b[j] != '`' {
				j++
			}
			if j < len(b) {
				j++
			}
			result = append(result, b[i:j]...)
			i = j

		case b[i] == ';':
			result = append(result, '/', '/')
			i++
			for i < len(b) && b[i] == ';' {
				i++
			}
			for i < len(b) && b[i] != '\n' {
				result = append(result, b[i])
				i++
			}

		case b[i] == ':' && i+1 < len(b) && b[i+1] == '=':
			result = append(result, ':', '=')
			i += 2

		case b[i] == ':' && i+1 < len(b) && isLetter(b[i+1]):
			j := i + 1
			for j < len(b) && isKWChar(b[j]) {
				j++
			}
			result = append(result, '"')
			result = append(result, kwPrefix...)
			result = append(result, b[i+1:j]...)
			result = append(result, '"')
			i = j

		case b[i] == '-' && i > 0 && i+1 < len(b) && isIdentChar(b[i-1]) && isLetter(b[i+1]):
			result = append(result, '_')
			i++

		default:
			result = append(result, b[i])
			i++
		}
	}
	return string(result)
}

// skipQuoted returns the index just past the double-quoted literal starting
// at b[i], honoring backslash escapes.
func skipQuoted(b []byte, i int) int {
	j := i + 1
	for j < len(b) && b[j] != '"' {
		if b[j] == '\\' && j+1 < len(b) {
			j += 2
			continue
		}
		j++
	}
	if j < len(b) {
		j++
	}
	return j
}

func isLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isKWChar(c byte) bool {
	return isLetter(c) || (c >= '0' && c <= '9') || c == '-' || c == '_'
}

func isIdentChar(c byte) bool {
	return isLetter(c) || (c >= '0' && c <= '9') || c == '_'
}

// ---------------------------------------------------------------------------
// Custom Sexp types for passing Go values through the zygomys environment
// ---------------------------------------------------------------------------

type sexpVec2 struct {
	vec v2.Vec
}

func (v *sexpVec2) SexpString(ps *zygo.PrintState) string {
	return fmt.Sprintf("(vec2 %g %g)", v.vec.X, v.vec.Y)
}
func (v *sexpVec2) Type() *zygo.RegisteredType { return nil }

type sexpVec3 struct {
	vec v3.Vec
}

func (v *sexpVec3) SexpString(ps *zygo.PrintState) string {
	return fmt.Sprintf("(vec3 %g %g %g)", v.vec.X, v.vec.Y, v.vec.Z)
}
func (v *sexpVec3) Type() *zygo.RegisteredType { return nil }

// sexpShape is what every shape builtin returns. The part has already been
// recorded by the time user code sees it.
type sexpShape struct {
	part tessellate.Part
}

func (s *sexpShape) SexpString(ps *zygo.PrintState) string {
	if s.part.Name != "" {
		return fmt.Sprintf("(%s %q)", s.part.Shape.Kind(), s.part.Name)
	}
	return fmt.Sprintf("(%s)", s.part.Shape.Kind())
}
func (s *sexpShape) Type() *zygo.RegisteredType { return nil }

// ---------------------------------------------------------------------------
// Keyword argument parsing
// ---------------------------------------------------------------------------

// kwPrefix is the marker prepended to keyword names by preprocessSource.
const kwPrefix = "__kw_"

// isKW checks if a Sexp is a preprocessed keyword string.
// Returns the keyword name (without prefix) and true if it is.
func isKW(s zygo.Sexp) (string, bool) {
	str, ok := s.(*zygo.SexpStr)
	if !ok {
		return "", false
	}
	if strings.HasPrefix(str.S, kwPrefix) {
		return str.S[len(kwPrefix):], true
	}
	return "", false
}

// kwArgs holds the result of parsing a mixed positional+keyword argument list.
type kwArgs struct {
	kw         map[string]zygo.Sexp
	positional []zygo.Sexp
}

// parseArgs separates args into keyword and positional arguments.
// A trailing keyword with no value maps to SexpNull.
func parseArgs(args []zygo.Sexp) kwArgs {
	result := kwArgs{kw: make(map[string]zygo.Sexp)}
	for i := 0; i < len(args); i++ {
		name, ok := isKW(args[i])
		if !ok {
			result.positional = append(result.positional, args[i])
			continue
		}
		if i+1 < len(args) {
			result.kw[name] = args[i+1]
			i++
		} else {
			result.kw[name] = zygo.SexpNull
		}
	}
	return result
}

// ---------------------------------------------------------------------------
// Value extraction helpers
// ---------------------------------------------------------------------------

func describe(s zygo.Sexp) string {
	if s == nil {
		return "nil"
	}
	return fmt.Sprintf("%T (%s)", s, s.SexpString(nil))
}

// toFloat64 extracts a float64 from a Sexp (SexpInt or SexpFloat).
func toFloat64(s zygo.Sexp) (float64, error) {
	switch v := s.(type) {
	case *zygo.SexpInt:
		return float64(v.Val), nil
	case *zygo.SexpFloat:
		return v.Val, nil
	}
	return 0, fmt.Errorf("expected number, got %s", describe(s))
}

// toInt extracts an integer. Floats are accepted when they are whole.
func toInt(s zygo.Sexp) (int, error) {
	switch v := s.(type) {
	case *zygo.SexpInt:
		return int(v.Val), nil
	case *zygo.SexpFloat:
		if v.Val == math.Trunc(v.Val) {
			return int(v.Val), nil
		}
	}
	return 0, fmt.Errorf("expected integer, got %s", describe(s))
}

// toString extracts a string from a Sexp.
func toString(s zygo.Sexp) (string, error) {
	if str, ok := s.(*zygo.SexpStr); ok {
		return str.S, nil
	}
	return "", fmt.Errorf("expected string, got %s", describe(s))
}

func toVec2(s zygo.Sexp) (v2.Vec, error) {
	if v, ok := s.(*sexpVec2); ok {
		return v.vec, nil
	}
	return v2.Vec{}, fmt.Errorf("expected vec2, got %s", describe(s))
}

// toVec3 extracts a v3.Vec from a sexpVec3.
func toVec3(s zygo.Sexp) (v3.Vec, error) {
	if v, ok := s.(*sexpVec3); ok {
		return v.vec, nil
	}
	return v3.Vec{}, fmt.Errorf("expected vec3, got %s", describe(s))
}

// numbers converts every arg to a float64 for the vector constructors.
func numbers(fn string, args []zygo.Sexp, want int) ([]float64, error) {
	if len(args) != want {
		return nil, fmt.Errorf("%s requires exactly %d arguments, got %d", fn, want, len(args))
	}
	out := make([]float64, len(args))
	for i, a := range args {
		f, err := toFloat64(a)
		if err != nil {
			return nil, fmt.Errorf("%s: argument %d: %w", fn, i+1, err)
		}
		out[i] = f
	}
	return out, nil
}

// ---------------------------------------------------------------------------
// Shape arguments
// ---------------------------------------------------------------------------

// commonKeys are accepted by every shape builtin.
var commonKeys = []string{"name", "resolution"}

// shapeArgs reads the keyword arguments of one shape call. The first
// conversion error sticks and later reads return their defaults.
type shapeArgs struct {
	fn  string
	kw  map[string]zygo.Sexp
	err error
}

func newShapeArgs(fn string, args []zygo.Sexp, keys []string) *shapeArgs {
	pa := parseArgs(args)
	a := &shapeArgs{fn: fn, kw: pa.kw}
	if len(pa.positional) > 0 {
		a.err = fmt.Errorf("%s: unexpected positional argument %s; use keywords", fn, describe(pa.positional[0]))
		return a
	}
	allowed := make(map[string]bool, len(keys)+len(commonKeys))
	for _, k := range append(keys, commonKeys...) {
		allowed[k] = true
	}
	var unknown []string
	for k := range pa.kw {
		if !allowed[k] {
			unknown = append(unknown, ":"+k)
		}
	}
	if len(unknown) > 0 {
		sort.Strings(unknown)
		a.err = fmt.Errorf("%s: unknown keyword %s", fn, strings.Join(unknown, ", "))
	}
	return a
}

func (a *shapeArgs) fail(key string, err error) {
	if a.err == nil {
		a.err = fmt.Errorf("%s: %s: %w", a.fn, key, err)
	}
}

func (a *shapeArgs) num(key string, def float64) float64 {
	v, ok := a.kw[key]
	if !ok || a.err != nil {
		return def
	}
	f, err := toFloat64(v)
	if err != nil {
		a.fail(key, err)
	}
	return f
}

func (a *shapeArgs) integer(key string, def int) int {
	v, ok := a.kw[key]
	if !ok || a.err != nil {
		return def
	}
	n, err := toInt(v)
	if err != nil {
		a.fail(key, err)
	}
	return n
}

func (a *shapeArgs) str(key string) string {
	v, ok := a.kw[key]
	if !ok || a.err != nil {
		return ""
	}
	s, err := toString(v)
	if err != nil {
		a.fail(key, err)
	}
	return s
}

func (a *shapeArgs) vec2(key string, def v2.Vec) v2.Vec {
	v, ok := a.kw[key]
	if !ok || a.err != nil {
		return def
	}
	vec, err := toVec2(v)
	if err != nil {
		a.fail(key, err)
	}
	return vec
}

func (a *shapeArgs) vec3(key string, def v3.Vec) v3.Vec {
	v, ok := a.kw[key]
	if !ok || a.err != nil {
		return def
	}
	vec, err := toVec3(v)
	if err != nil {
		a.fail(key, err)
	}
	return vec
}

// ---------------------------------------------------------------------------
// Builtin registration
// ---------------------------------------------------------------------------

// shapeBuilder reads a shape's keywords and returns the validated primitive.
type shapeBuilder func(a *shapeArgs) (primitive.Primitive, error)

// shapeDef describes one shape builtin.
type shapeDef struct {
	name  string
	keys  []string
	build shapeBuilder
}

// Unit defaults for shape keywords that are left out.
var (
	origin3 = v3.Vec{}
	origin2 = v2.Vec{}
	unitZ   = v3.Vec{Z: 1}
	unitY2  = v2.Vec{Y: 1}
	ones2   = v2.Vec{X: 1, Y: 1}
	ones3   = v3.Vec{X: 1, Y: 1, Z: 1}
)

var shapeDefs = []shapeDef{
	// (sphere :center (vec3 0 0 0) :radius 1)
	{"sphere", []string{"center", "radius"}, func(a *shapeArgs) (primitive.Primitive, error) {
		return primitive.NewSphere(a.vec3("center", origin3), a.num("radius", 1))
	}},
	// (circle :center (vec2 0 0) :radius 1)
	{"circle", []string{"center", "radius"}, func(a *shapeArgs) (primitive.Primitive, error) {
		return primitive.NewCircle(a.vec2("center", origin2), a.num("radius", 1))
	}},
	// (cylinder :origin (vec3 0 0 0) :extremity (vec3 0 0 1) :radius 1 :facets 30)
	{"cylinder", []string{"origin", "extremity", "radius", "facets"}, func(a *shapeArgs) (primitive.Primitive, error) {
		return primitive.NewCylinder(a.vec3("origin", origin3), a.vec3("extremity", unitZ), a.num("radius", 1))
	}},
	// (cylinder2 :origin (vec2 0 0) :extremity (vec2 0 1) :radius 1)
	{"cylinder2", []string{"origin", "extremity", "radius"}, func(a *shapeArgs) (primitive.Primitive, error) {
		return primitive.NewCylinder2(a.vec2("origin", origin2), a.vec2("extremity", unitY2), a.num("radius", 1))
	}},
	// (quad :corner (vec3 0 0 0) :width (vec3 1 0 0) :height (vec3 0 1 0))
	{"quad", []string{"corner", "width", "height"}, func(a *shapeArgs) (primitive.Primitive, error) {
		return primitive.NewQuad(a.vec3("corner", origin3), a.vec3("width", v3.Vec{X: 1}), a.vec3("height", v3.Vec{Y: 1}))
	}},
	// (pyramid :middle (vec3 0 0 0) :length 1 :width 1)
	{"pyramid", []string{"middle", "length", "width"}, func(a *shapeArgs) (primitive.Primitive, error) {
		return primitive.NewPyramid(a.vec3("middle", origin3), a.num("length", 1), a.num("width", 1))
	}},
	// (particle :position (vec3 0 0 0) :velocity (vec3 0 0 0))
	{"particle", []string{"position", "velocity"}, func(a *shapeArgs) (primitive.Primitive, error) {
		return primitive.NewParticle(a.vec3("position", origin3), a.vec3("velocity", origin3))
	}},
	// (rect :origin (vec2 0 0) :widths (vec2 1 1))
	{"rect", []string{"origin", "widths"}, func(a *shapeArgs) (primitive.Primitive, error) {
		return primitive.NewRect(a.vec2("origin", origin2), a.vec2("widths", ones2))
	}},
	// (box :origin (vec3 0 0 0) :widths (vec3 1 1 1))
	{"box", []string{"origin", "widths"}, func(a *shapeArgs) (primitive.Primitive, error) {
		return primitive.NewBox(a.vec3("origin", origin3), a.vec3("widths", ones3))
	}},
}

// partList collects the parts created during one evaluation, in call order.
type partList struct {
	parts []tessellate.Part
}

func (l *partList) add(p tessellate.Part) {
	l.parts = append(l.parts, p)
}

// registerBuiltins installs the shape DSL builtins into a zygomys
// environment. Every shape call appends a part to parts.
//
// Source code must be preprocessed with preprocessSource() before evaluation so
// that :keyword tokens are converted to recognizable string literals.
func registerBuiltins(env *zygo.Zlisp, parts *partList) {

	// (vec2 1 2)
	env.AddFunction("vec2", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		xs, err := numbers(name, args, 2)
		if err != nil {
			return zygo.SexpNull, err
		}
		return &sexpVec2{vec: v2.Vec{X: xs[0], Y: xs[1]}}, nil
	})

	// (vec3 1 2 3)
	env.AddFunction("vec3", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		xs, err := numbers(name, args, 3)
		if err != nil {
			return zygo.SexpNull, err
		}
		return &sexpVec3{vec: v3.Vec{X: xs[0], Y: xs[1], Z: xs[2]}}, nil
	})

	for _, def := range shapeDefs {
		env.AddFunction(def.name, func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
			a := newShapeArgs(def.name, args, def.keys)
			partName := a.str("name")
			res := a.integer("resolution", 0)
			res = a.integer("facets", res)
			shape, err := def.build(a)
			if a.err != nil {
				return zygo.SexpNull, a.err
			}
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("%s: %w", def.name, err)
			}
			if res < 0 {
				return zygo.SexpNull, fmt.Errorf("%s: resolution must not be negative, got %d", def.name, res)
			}
			part := tessellate.Part{Name: partName, Shape: shape, Resolution: res}
			parts.add(part)
			return &sexpShape{part: part}, nil
		})
	}
}
