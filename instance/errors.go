package instance

import "github.com/pkg/errors"

var (
	ErrNoGLPK     = errors.New("instance: built without glpk, rebuild with -tags glpk")
	ErrInfeasible = errors.New("instance: glpk found no feasible solution")
)
