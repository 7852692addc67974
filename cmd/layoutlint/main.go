package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/milk9111/toolgrid/layout"
)

// layoutlint validates saved layout files without starting a window:
// decodability, grid settings in range, panel ids present and unique, and
// sane geometry.

func main() {
	dir := flag.String("dir", "layouts", "layouts directory")
	flag.Parse()

	store := layout.NewStore(*dir)
	names := flag.Args()
	if len(names) == 0 {
		var err error
		names, err = store.List()
		if err != nil {
			fmt.Fprintf(os.Stderr, "list %s: %v\n", *dir, err)
			os.Exit(1)
		}
	}
	if len(names) == 0 {
		fmt.Println("no layouts found")
		return
	}

	findings := 0
	for _, name := range names {
		rec, err := store.Load(name)
		if err != nil {
			fmt.Printf("%s: unreadable: %v\n", name, err)
			findings++
			continue
		}
		for _, problem := range lint(rec) {
			fmt.Printf("%s: %s\n", name, problem)
			findings++
		}
	}
	if findings > 0 {
		fmt.Printf("%d problem(s)\n", findings)
		os.Exit(1)
	}
	fmt.Printf("%d layout(s) ok\n", len(names))
}

func lint(rec layout.Record) []string {
	var problems []string

	g := rec.Grid
	if g.AutoAdjust {
		if g.Multiplier < 1 {
			problems = append(problems, fmt.Sprintf("auto grid multiplier %d out of range", g.Multiplier))
		}
	} else {
		if g.Columns < 1 || g.Columns > 100 {
			problems = append(problems, fmt.Sprintf("columns %d out of range [1,100]", g.Columns))
		}
		if g.Rows < 1 || g.Rows > 100 {
			problems = append(problems, fmt.Sprintf("rows %d out of range [1,100]", g.Rows))
		}
	}
	if g.Subdivisions < 1 {
		problems = append(problems, fmt.Sprintf("subdivisions %d out of range", g.Subdivisions))
	}
	if g.PaddingPx < 0 {
		problems = append(problems, fmt.Sprintf("negative padding %f", g.PaddingPx))
	}

	seen := make(map[string]bool, len(rec.Panels))
	for i, p := range rec.Panels {
		where := fmt.Sprintf("panel %d (%q)", i, p.Title)
		if p.Id == "" {
			problems = append(problems, where+": empty id")
		} else if seen[p.Id] {
			problems = append(problems, where+": duplicate id "+p.Id)
		}
		seen[p.Id] = true
		if p.TypeTag == "" {
			problems = append(problems, where+": empty type tag")
		}
		if p.Size.W < 0 || p.Size.H < 0 {
			problems = append(problems, where+": negative size")
		}
		if p.HasGridCoords && (p.GridColSpan < 0 || p.GridRowSpan < 0) {
			problems = append(problems, where+": negative grid span")
		}
	}
	return problems
}
