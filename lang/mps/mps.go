// Package mps implements a pragmatic subset of the fixed/free MPS
// format: ROWS, COLUMNS, RHS, BOUNDS and ENDATA sections, row types
// N/L/G/E and bound types UP/LO/FR/MI/BV/FX.
package mps

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/cnvxlabs/cnvx"
)

// Language parses the MPS subset described in the package doc.
type Language struct{}

// New returns a ready-to-use Language parser.
func New() Language {
	return Language{}
}

// Parse implements lang.Parser.
func (Language) Parse(src string) (*cnvx.Model, error) {
	model := cnvx.NewModel()
	section := ""

	rows := map[string]byte{}
	rowOrder := []string{}
	colExprs := map[string]cnvx.LinExpr{}
	rhsMap := map[string]float64{}
	varMap := map[string]cnvx.VarId{}

	varOf := func(name string) cnvx.VarId {
		if id, ok := varMap[name]; ok {
			return id
		}
		id := model.AddVar().Finish()
		varMap[name] = id
		return id
	}

	for _, raw := range strings.Split(src, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}

		switch {
		case strings.EqualFold(line, "ROWS"):
			section = "ROWS"
			continue
		case strings.EqualFold(line, "COLUMNS"):
			section = "COLUMNS"
			continue
		case strings.EqualFold(line, "RHS"):
			section = "RHS"
			continue
		case strings.EqualFold(line, "BOUNDS"):
			section = "BOUNDS"
			continue
		case strings.EqualFold(line, "ENDATA"):
			section = ""
			goto done
		}

		parts := strings.Fields(line)

		switch section {
		case "ROWS":
			if len(parts) < 2 {
				continue
			}
			idx := 0
			if strings.HasSuffix(parts[0], ".") && len(parts) >= 3 {
				idx = 1
			}
			rtype := parts[idx][0]
			name := parts[idx+1]
			if _, seen := rows[name]; !seen {
				rowOrder = append(rowOrder, name)
			}
			rows[name] = rtype

		case "COLUMNS":
			if len(parts) < 2 {
				continue
			}
			idx := 0
			if strings.HasSuffix(parts[0], ".") {
				idx = 1
			}
			if idx >= len(parts) {
				continue
			}
			col := parts[idx]
			varid := varOf(col)

			i := idx + 1
			for i+1 < len(parts) {
				row := parts[i]
				val, err := strconv.ParseFloat(parts[i+1], 64)
				if err != nil {
					return nil, fmt.Errorf("mps: invalid number in COLUMNS: %q", parts[i+1])
				}
				entry, ok := colExprs[row]
				if !ok {
					entry = cnvx.Constant(0)
				}
				colExprs[row] = entry.AddTerm(varid, val)
				i += 2
			}

		case "RHS":
			if len(parts) < 3 {
				continue
			}
			idx := 0
			if strings.HasSuffix(parts[0], ".") {
				idx = 1
			}
			i := idx + 1
			for i+1 < len(parts) {
				row := parts[i]
				val, err := strconv.ParseFloat(parts[i+1], 64)
				if err != nil {
					return nil, fmt.Errorf("mps: invalid number in RHS: %q", parts[i+1])
				}
				rhsMap[row] = val
				i += 2
			}

		case "BOUNDS":
			if len(parts) < 3 {
				continue
			}
			idx := 0
			if strings.HasSuffix(parts[0], ".") {
				idx = 1
			}
			btype := parts[idx]
			if len(parts) <= idx+2 {
				continue
			}
			varname := parts[idx+2]
			varid := varOf(varname)

			switch btype {
			case "UP":
				if len(parts) >= idx+4 {
					if v, err := strconv.ParseFloat(parts[idx+3], 64); err == nil {
						model.Vars[varid].UB = &v
					}
				}
			case "LO":
				if len(parts) >= idx+4 {
					if v, err := strconv.ParseFloat(parts[idx+3], 64); err == nil {
						model.Vars[varid].LB = &v
					}
				}
			case "FR":
				model.Vars[varid].LB = nil
				model.Vars[varid].UB = nil
			case "MI":
				model.Vars[varid].LB = nil
			case "BV":
				model.Vars[varid].IsInteger = true
				zero, one := 0.0, 1.0
				model.Vars[varid].LB = &zero
				model.Vars[varid].UB = &one
			case "FX":
				if len(parts) >= idx+4 {
					if v, err := strconv.ParseFloat(parts[idx+3], 64); err == nil {
						model.Vars[varid].LB = &v
						model.Vars[varid].UB = &v
					}
				}
			}
		}
	}

done:
	for _, rname := range rowOrder {
		rtype := rows[rname]
		expr, ok := colExprs[rname]
		if !ok {
			expr = cnvx.Constant(0)
		}
		rhs := rhsMap[rname]

		switch rtype {
		case 'N':
			model.SetObjective(cnvx.Minimize(expr).Name("Z"))
		case 'L':
			model.AddConstraint(expr.Leq(rhs))
		case 'G':
			model.AddConstraint(expr.Geq(rhs))
		case 'E':
			model.AddConstraint(expr.Eq(rhs))
		}
	}

	return model, nil
}
