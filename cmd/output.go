package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/goccy/go-json"

	"github.com/irfansharif/foldlock/internal/app"
	"github.com/irfansharif/foldlock/internal/mesh"
	"github.com/irfansharif/foldlock/internal/pattern"
	"github.com/irfansharif/foldlock/internal/style"
	"github.com/irfansharif/foldlock/internal/validate"
)

type output interface {
	write(w io.Writer, designs []*app.Design) error
}

type jsonOutput struct{}

type jsonDesign struct {
	Name    string          `json:"name"`
	Config  pattern.Config  `json:"config"`
	Folds   map[string]int  `json:"folds"`
	Faces   int             `json:"faces"`
	Report  validate.Report `json:"report"`
	Strokes []style.Entry   `json:"strokes"`
}

func (jsonOutput) write(w io.Writer, designs []*app.Design) error {
	out := make([]jsonDesign, len(designs))
	for i, d := range designs {
		out[i] = jsonDesign{
			Name:   d.Name,
			Config: d.Config,
			Folds: map[string]int{
				pattern.Mountain.String(): d.Pattern.Count(pattern.Mountain),
				pattern.Valley.String():   d.Pattern.Count(pattern.Valley),
				pattern.Cut.String():      d.Pattern.Count(pattern.Cut),
			},
			Faces:   len(d.Pattern.Faces),
			Report:  d.Report,
			Strokes: style.Legend(),
		}
	}
	b, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(b))
	return err
}

type textOutput struct {
	verbose bool
}

func (o textOutput) write(w io.Writer, designs []*app.Design) error {
	var sb strings.Builder
	for _, d := range designs {
		p, r := d.Pattern, d.Report
		verdict := "PASS"
		if !r.Overall {
			verdict = "FAIL"
		}
		fmt.Fprintf(&sb, "%s  %s (%s)\n", verdict, d.Name, d.Config)
		fmt.Fprintf(&sb, "  %d vertices, %d faces, %d mountain, %d valley, %d cut\n",
			len(p.Vertices), len(p.Faces), p.Count(pattern.Mountain), p.Count(pattern.Valley), p.Count(pattern.Cut))
		if o.verbose {
			if err := writeMesh(&sb, p); err != nil {
				return err
			}
		}
		for _, res := range r.Results() {
			fmt.Fprintf(&sb, "  %-18s %-9s %d errors, %d warnings\n", res.Name, res.Status, len(res.Errors), len(res.Warnings))
			for _, e := range res.Errors {
				fmt.Fprintf(&sb, "    error: %s\n", e)
			}
			if o.verbose {
				for _, warn := range res.Warnings {
					fmt.Fprintf(&sb, "    warning: %s\n", warn)
				}
			}
		}
	}
	if o.verbose {
		sb.WriteString("legend:\n")
		for _, e := range style.Legend() {
			dash := "solid"
			if e.Stroke.Dashed() {
				dash = fmt.Sprintf("dash %v", e.Stroke.Dash)
			}
			fmt.Fprintf(&sb, "  %-8s %s %s\n", e.Type, e.Stroke.Hex, dash)
		}
	}
	_, err := io.WriteString(w, sb.String())
	return err
}

func writeMesh(sb *strings.Builder, p *pattern.Pattern) error {
	faces, err := mesh.Triangulate(p)
	if err != nil {
		return err
	}
	tris, area := 0, 0.0
	for i, f := range faces {
		tris += len(f)
		area += mesh.FaceArea(p, i)
	}
	b := mesh.Bounds(p)
	fmt.Fprintf(sb, "  %d triangles, face area %.2f cm², sheet %.2f × %.2f cm\n",
		tris, area, b.Max.X()-b.Min.X(), b.Max.Y()-b.Min.Y())
	return nil
}
