// Package gmpl implements a small subset of GNU MathProg (GMPL): var
// declarations, a single maximize objective and a block of "subject
// to" constraints, one per line.
package gmpl

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/cnvxlabs/cnvx"
)

// Language parses the GMPL subset described in the package doc.
type Language struct{}

// New returns a ready-to-use Language parser.
func New() Language {
	return Language{}
}

// Parse implements lang.Parser.
func (Language) Parse(src string) (*cnvx.Model, error) {
	model := cnvx.NewModel()
	var vars []cnvx.VarId

	for _, raw := range strings.Split(src, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		switch {
		case strings.HasPrefix(line, "var "):
			parts := strings.Fields(line)
			if len(parts) >= 2 {
				vars = append(vars, model.AddVar().Finish())
			}

		case strings.HasPrefix(strings.ToLower(line), "maximize"):
			expr, err := parseExpression(afterColon(line), vars)
			if err != nil {
				return nil, err
			}
			model.SetObjective(cnvx.Maximize(expr).Name("Z"))

		case strings.HasPrefix(strings.ToLower(line), "subject to"):
			lhs, rhs, cmp, err := parseConstraint(afterColon(line), vars)
			if err != nil {
				return nil, err
			}
			switch cmp {
			case "<=":
				model.AddConstraint(lhs.Leq(rhs))
			case ">=":
				model.AddConstraint(lhs.Geq(rhs))
			case "=":
				model.AddConstraint(lhs.Eq(rhs))
			default:
				return nil, fmt.Errorf("gmpl: unknown constraint type %q", cmp)
			}
		}
	}

	return model, nil
}

func afterColon(line string) string {
	idx := strings.Index(line, ":")
	if idx < 0 {
		return ""
	}
	return strings.TrimSpace(line[idx+1:])
}

func parseExpression(expr string, vars []cnvx.VarId) (cnvx.LinExpr, error) {
	le := cnvx.Constant(0)

	for _, tok := range strings.Split(expr, "+") {
		tok = strings.TrimSpace(tok)
		if tok == "" {
			continue
		}

		var coef float64
		var varname string

		switch {
		case strings.Contains(tok, "*"):
			parts := strings.SplitN(tok, "*", 2)
			v, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
			if err != nil {
				return cnvx.LinExpr{}, fmt.Errorf("gmpl: invalid coefficient %q", parts[0])
			}
			coef = v
			varname = parts[1]
		case strings.HasPrefix(tok, "-"):
			coef = -1
			varname = tok[1:]
		default:
			coef = 1
			varname = tok
		}

		varname = strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(varname), ";"))
		if len(varname) < 2 {
			return cnvx.LinExpr{}, fmt.Errorf("gmpl: invalid variable %q", varname)
		}

		idx, err := strconv.Atoi(varname[1:])
		if err != nil || idx == 0 || idx > len(vars) {
			return cnvx.LinExpr{}, fmt.Errorf("gmpl: unknown variable %q", varname)
		}

		le = le.AddTerm(vars[idx-1], coef)
	}

	return le, nil
}

func parseConstraint(line string, vars []cnvx.VarId) (cnvx.LinExpr, float64, string, error) {
	var cmp string
	switch {
	case strings.Contains(line, "<="):
		cmp = "<="
	case strings.Contains(line, ">="):
		cmp = ">="
	case strings.Contains(line, "="):
		cmp = "="
	default:
		return cnvx.LinExpr{}, 0, "", fmt.Errorf("gmpl: invalid constraint %q", line)
	}

	parts := strings.SplitN(line, cmp, 2)
	if len(parts) != 2 {
		return cnvx.LinExpr{}, 0, "", fmt.Errorf("gmpl: invalid constraint format %q", line)
	}

	lhs, err := parseExpression(strings.TrimSpace(parts[0]), vars)
	if err != nil {
		return cnvx.LinExpr{}, 0, "", err
	}

	rhsStr := strings.TrimSuffix(strings.TrimSpace(parts[1]), ";")
	rhs, err := strconv.ParseFloat(rhsStr, 64)
	if err != nil {
		return cnvx.LinExpr{}, 0, "", fmt.Errorf("gmpl: invalid right-hand side %q", rhsStr)
	}

	return lhs, rhs, cmp, nil
}
