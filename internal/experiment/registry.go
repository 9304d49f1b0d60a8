package experiment

import (
	"fmt"
	"sort"

	"github.com/san-kum/stocksim/internal/dynamo"
	"github.com/san-kum/stocksim/internal/integrators"
)

// Registry maps scheme tokens to stepper pairs.
type Registry struct {
	schemes map[string]func() dynamo.Scheme
	xi      func() dynamo.XiIntegrator
}

func NewRegistry() *Registry {
	r := &Registry{
		schemes: make(map[string]func() dynamo.Scheme),
		xi:      func() dynamo.XiIntegrator { return integrators.NewXiRK4() },
	}

	r.schemes["euler"] = func() dynamo.Scheme { return integrators.NewEuler() }
	r.schemes["milstein"] = func() dynamo.Scheme { return integrators.NewMilstein() }
	r.schemes["rk"] = func() dynamo.Scheme { return integrators.NewRK() }

	return r
}

// Scheme resolves an exact, case-sensitive scheme token.
func (r *Registry) Scheme(name string) (dynamo.Scheme, error) {
	fn, ok := r.schemes[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q (available: %v)", dynamo.ErrUnsupportedScheme, name, r.ListSchemes())
	}
	return fn(), nil
}

func (r *Registry) XiIntegrator() dynamo.XiIntegrator {
	return r.xi()
}

func (r *Registry) ListSchemes() []string {
	names := make([]string, 0, len(r.schemes))
	for name := range r.schemes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
