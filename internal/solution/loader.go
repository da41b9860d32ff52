// Package solution loads a day's solution file through the yaegi interpreter
// and exposes its three-function contract: ParseInput, PartOne, PartTwo.
//
// Every Load builds a fresh interpreter keyed to the exact resolved file
// path, so same-named day files in different partitions can never alias or
// shadow one another. Nothing is executed at load time; the harness drives
// the three calls.
package solution

import (
	"fmt"
	"os"
	"reflect"

	"github.com/traefik/yaegi/interp"
	"github.com/traefik/yaegi/stdlib"

	"adventcli/internal/domain"
	"adventcli/internal/layout"
)

// Generated solution files declare this package; symbols are looked up
// qualified to avoid picking up anything else the interpreter knows about.
const solutionPackage = "solutions"

type Loader struct {
	layout *layout.Resolver
}

func NewLoader(resolver *layout.Resolver) *Loader {
	return &Loader{layout: resolver}
}

// Unit is one loaded, executable solution. Data and results flow through as
// opaque values; calls go through reflection so the solution file is free to
// use whatever concrete types it wants.
type Unit struct {
	path    string
	parse   reflect.Value
	partOne reflect.Value
	partTwo reflect.Value
}

func (l *Loader) Load(day domain.Day, p domain.Partition) (*Unit, error) {
	path := l.layout.Resolve(day, p, domain.KindSolution)

	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", domain.ErrSolutionNotFound, path)
		}
		return nil, fmt.Errorf("stat solution file %s: %w", path, err)
	}

	i := interp.New(interp.Options{})
	if err := i.Use(stdlib.Symbols); err != nil {
		return nil, fmt.Errorf("load interpreter stdlib: %w", err)
	}

	if _, err := i.EvalPath(path); err != nil {
		return nil, fmt.Errorf("interpret %s: %w", path, err)
	}

	unit := &Unit{path: path}
	for _, symbol := range []struct {
		name string
		dst  *reflect.Value
	}{
		{"ParseInput", &unit.parse},
		{"PartOne", &unit.partOne},
		{"PartTwo", &unit.partTwo},
	} {
		fn, err := lookupContractFunc(i, symbol.name)
		if err != nil {
			return nil, fmt.Errorf("%w in %s: %v", domain.ErrContractViolation, path, err)
		}
		*symbol.dst = fn
	}

	return unit, nil
}

func lookupContractFunc(i *interp.Interpreter, name string) (reflect.Value, error) {
	v, err := i.Eval(solutionPackage + "." + name)
	if err != nil {
		return reflect.Value{}, fmt.Errorf("missing %s", name)
	}
	if !v.IsValid() || v.Kind() != reflect.Func {
		return reflect.Value{}, fmt.Errorf("%s is not a function", name)
	}

	t := v.Type()
	if t.NumIn() != 1 || t.NumOut() < 1 || t.NumOut() > 2 {
		return reflect.Value{}, fmt.Errorf("%s must take one argument and return a value", name)
	}

	return v, nil
}

func (u *Unit) Path() string {
	return u.path
}

func (u *Unit) ParseInput(input string) (any, error) {
	return call(u.parse, reflect.ValueOf(input))
}

func (u *Unit) PartOne(data any) (any, error) {
	return call(u.partOne, argValue(u.partOne, data))
}

func (u *Unit) PartTwo(data any) (any, error) {
	return call(u.partTwo, argValue(u.partTwo, data))
}

func argValue(fn reflect.Value, data any) reflect.Value {
	if data == nil {
		return reflect.Zero(fn.Type().In(0))
	}
	return reflect.ValueOf(data)
}

// call invokes a contract function, converting panics raised inside the
// interpreted code (or by an argument type mismatch) into plain errors so a
// broken day cannot take down a batch run.
func call(fn reflect.Value, arg reflect.Value) (result any, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%v", r)
		}
	}()

	out := fn.Call([]reflect.Value{arg})
	if len(out) == 2 {
		if e, ok := out[1].Interface().(error); ok && e != nil {
			return nil, e
		}
	}

	return out[0].Interface(), nil
}
