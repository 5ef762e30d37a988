package analytics

import (
	"sort"

	"github.com/Mikanister/baloon-calc-sub001/pkg/material"
	"github.com/Mikanister/baloon-calc-sub001/pkg/solver"
)

// MaterialResult is the balloon state built from one catalogue material.
type MaterialResult struct {
	Material material.Material `json:"material"`
	State    *solver.State     `json:"state"`
}

// CompareMaterials evaluates in once per catalogue material and orders the
// results by payload, best first. Ties keep catalogue order.
func CompareMaterials(in solver.Input) ([]MaterialResult, error) {
	all := material.All()
	results := make([]MaterialResult, 0, len(all))
	for _, m := range all {
		in.Material = m.Name
		st, err := solver.StateAt(in)
		if err != nil {
			return nil, err
		}
		results = append(results, MaterialResult{Material: m, State: st})
	}
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].State.PayloadKg > results[j].State.PayloadKg
	})
	return results, nil
}
