// cmd/tools/registry-validator/main.go

// registry-validator checks a KPI registry document before it ships:
// schema shape, bounds, weight sums, duplicate ids, family references.
package main

import (
	"flag"
	"fmt"
	"os"

	"aso-engine/pkg/registry"
)

func main() {
	path := flag.String("registry", "", "path to the registry JSON document (defaults to the embedded registry)")
	flag.Parse()

	var (
		reg *registry.KpiRegistry
		err error
	)
	if *path == "" {
		reg, err = registry.LoadDefault()
	} else {
		reg, err = registry.LoadRegistry(*path)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "registry invalid: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("registry %s is valid: %d families, %d KPIs\n",
		reg.Version, len(reg.Families), reg.Size())
	for _, fam := range reg.Families {
		fmt.Printf("  family %-24s weight %.2f\n", fam.ID, fam.Weight)
	}
	for _, def := range reg.Kpis {
		fmt.Printf("  kpi %-28s family %-24s direction %-16s weight %.2f\n",
			def.ID, def.FamilyID, def.Direction, def.WeightWithinFamily)
	}
}
