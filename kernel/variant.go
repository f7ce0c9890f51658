package kernel

import (
	"errors"
	"fmt"
	"slices"

	"github.com/samber/lo"
)

// ErrUnknownVariant is returned by Lookup for names that were never registered.
var ErrUnknownVariant = errors.New("unknown kernel variant")

// Func computes the kernel for x and flags into r. r's vectors have already
// been sized to len(x).
type Func func(x []float64, flags []int, r *Result)

// Variant is one named implementation idiom of the kernel.
type Variant struct {
	Name        string
	Description string
	fn          Func
}

// Compute runs the variant and returns a freshly allocated Result.
// It panics if x and flags have different lengths.
func (v Variant) Compute(x []float64, flags []int) Result {
	var r Result
	v.ComputeInto(x, flags, &r)
	return r
}

// ComputeInto runs the variant, reusing r's vectors when they are large
// enough. Every field of r is overwritten.
func (v Variant) ComputeInto(x []float64, flags []int, r *Result) {
	checkLengths(x, flags)
	r.resize(len(x))
	v.fn(x, flags, r)
}

// DefaultVariant names the variant used when none is requested. Its
// reductions run in a fixed left-to-right order.
const DefaultVariant = "loop"

var registry = map[string]Variant{}

// Register adds a variant to the registry. It panics on an empty or
// duplicate name.
func Register(name, description string, fn Func) {
	if name == "" || fn == nil {
		panic("kernel: Register requires a name and a function")
	}
	if _, dup := registry[name]; dup {
		panic("kernel: variant " + name + " registered twice")
	}
	registry[name] = Variant{Name: name, Description: description, fn: fn}
}

// Lookup returns the variant registered under name.
func Lookup(name string) (Variant, error) {
	v, ok := registry[name]
	if !ok {
		return Variant{}, fmt.Errorf("%w %q (have %v)", ErrUnknownVariant, name, Names())
	}
	return v, nil
}

// Default returns the default variant.
func Default() Variant {
	return registry[DefaultVariant]
}

// Names returns the registered variant names, sorted.
func Names() []string {
	names := lo.Keys(registry)
	slices.Sort(names)
	return names
}

// Variants returns all registered variants ordered by name.
func Variants() []Variant {
	return lo.Map(Names(), func(name string, _ int) Variant { return registry[name] })
}
