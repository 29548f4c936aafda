//go:build glpk

package instance

import (
	"runtime"

	"github.com/lukpank/go-glpk/glpk"
	"github.com/pkg/errors"

	"github.com/bamreyes/Project-Green/model"
)

// GLPKAvailable reports whether the binary was built with glpk support.
const GLPKAvailable = true

// newProb loads the primal of m into a glpk problem. Callers must Delete it.
func newProb(m *model.Model) *glpk.Prob {
	lp := glpk.New()
	lp.SetProbName("emission-projects")
	lp.SetObjDir(glpk.MIN)

	lp.AddRows(m.NumPollutants)
	for k, t := range m.Targets.Pollutants {
		lp.SetRowName(k+1, t.Key)
		lp.SetRowBnds(k+1, glpk.LO, t.Minimum, 0)
	}

	lp.AddCols(m.NumProjects)
	for j, p := range m.Projects {
		lp.SetColName(j+1, p.Name)
		lp.SetColBnds(j+1, glpk.DB, 0, m.Targets.UnitCap)
		lp.SetObjCoef(j+1, p.Cost)
	}

	//glpk indices start at 1; index 0 is ignored
	for k, t := range m.Targets.Pollutants {
		ind := []int32{0}
		val := []float64{0}
		for j, p := range m.Projects {
			if f := p.Factor(t.Key); f != 0 {
				ind = append(ind, int32(j+1))
				val = append(val, f)
			}
		}
		lp.SetMatRow(k+1, ind, val)
	}

	return lp
}

// WriteMPS writes the primal of m to filename in fixed MPS format.
func WriteMPS(m *model.Model, filename string) error {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()
	lp := newProb(m)
	defer lp.Delete()

	if err := lp.WriteMPS(glpk.MPS_FILE, nil, filename); err != nil {
		return errors.Wrapf(err, "writing %s", filename)
	}
	return nil
}

// SolveGLPK solves the primal of m with glpk's simplex and returns the
// optimal cost and the units per project.
func SolveGLPK(m *model.Model) (float64, []float64, error) {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()
	lp := newProb(m)
	defer lp.Delete()

	parm := glpk.NewSmcp()
	parm.SetMsgLev(glpk.MSG_OFF)
	if err := lp.Simplex(parm); err != nil {
		return 0, nil, errors.Wrap(err, "glpk simplex")
	}

	switch lp.Status() {
	case glpk.OPT:
	case glpk.NOFEAS, glpk.INFEAS:
		return 0, nil, ErrInfeasible
	default:
		return 0, nil, errors.Errorf("glpk: unexpected status %v", lp.Status())
	}

	units := make([]float64, m.NumProjects)
	for j := range units {
		units[j] = lp.ColPrim(j + 1)
	}
	return lp.ObjVal(), units, nil
}
