package app

import (
	"strconv"
	"strings"

	"go.trai.ch/steady/internal/core/domain"
)

// ParamRow is one parameter definition prepared for display.
type ParamRow struct {
	Name    string
	Kind    string
	Range   string
	Default string
	Hidden  bool
	Label   string
}

// Params lists the parameter definitions in host presentation order.
func (a *App) Params() []ParamRow {
	defs := domain.Definitions()
	rows := make([]ParamRow, 0, len(defs))
	for _, def := range defs {
		row := ParamRow{
			Name:   def.Param.String(),
			Kind:   def.Kind.String(),
			Hidden: def.Hidden,
			Label:  def.Label,
		}
		switch def.Kind {
		case domain.KindFloat:
			row.Range = formatFloat(def.Min) + ".." + formatFloat(def.Max)
			row.Default = formatFloat(def.Float)
		case domain.KindBool:
			row.Default = strconv.FormatBool(def.Bool)
		case domain.KindInt:
			row.Range = strings.Join(def.Options, ", ")
			if int(def.Int) < len(def.Options) {
				row.Default = def.Options[def.Int]
			}
		case domain.KindString:
			row.Default = def.String
		}
		rows = append(rows, row)
	}
	return rows
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}
