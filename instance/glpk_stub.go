//go:build !glpk

package instance

import "github.com/bamreyes/Project-Green/model"

// GLPKAvailable reports whether the binary was built with glpk support.
const GLPKAvailable = false

func WriteMPS(m *model.Model, filename string) error {
	return ErrNoGLPK
}

func SolveGLPK(m *model.Model) (float64, []float64, error) {
	return 0, nil, ErrNoGLPK
}
