package optimizer

import (
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/optimize/convex/lp"
)

// relaxationBound solves the linear relaxation of the model with the
// simplex method and returns a lower bound on the integer optimum.
// Coverage rows become equalities with a surplus variable so the
// program has the equality block the standard-form conversion expects;
// every other constraint and the variable bounds go into the
// inequality block. An infeasible relaxation proves the integer model
// infeasible.
func relaxationBound(m *ConstraintModel) (float64, error) {
	var eq []Constraint
	var ineq []Constraint
	for _, c := range m.Constraints {
		if c.Kind == KindCoverage {
			eq = append(eq, c)
		} else {
			ineq = append(ineq, c)
		}
	}

	n := len(m.Vars) + len(eq) // one surplus column per coverage row
	c := make([]float64, n)
	for i, v := range m.Vars {
		c[i] = v.Cost
	}

	// Inequality block: canonical rows, then x <= upper and -x <= -lower
	// for the model variables, then -s <= 0 for the surplus columns.
	rows := len(ineq) + 2*len(m.Vars) + len(eq)
	g := mat.NewDense(rows, n, nil)
	h := make([]float64, rows)
	r := 0
	for _, con := range ineq {
		for _, t := range con.Terms {
			g.Set(r, t.Var, float64(t.Coeff))
		}
		h[r] = float64(con.RHS)
		r++
	}
	for i, v := range m.Vars {
		g.Set(r, i, 1)
		h[r] = float64(v.Upper)
		r++
		g.Set(r, i, -1)
		h[r] = -float64(v.Lower)
		r++
	}
	for j := range eq {
		g.Set(r, len(m.Vars)+j, -1)
		h[r] = 0
		r++
	}

	// Equality block: coverage rows are -sum(x) <= -required, restated
	// as sum(x) - s = required.
	A := mat.NewDense(len(eq), n, nil)
	b := make([]float64, len(eq))
	for j, con := range eq {
		for _, t := range con.Terms {
			A.Set(j, t.Var, -float64(t.Coeff))
		}
		A.Set(j, len(m.Vars)+j, -1)
		b[j] = -float64(con.RHS)
	}

	cStd, AStd, bStd := lp.Convert(c, g, h, A, b)
	opt, _, err := lp.Simplex(cStd, AStd, bStd, 1e-7, nil)
	if err != nil {
		return 0, err
	}
	return opt, nil
}
