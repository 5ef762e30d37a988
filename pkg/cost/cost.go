// Package cost estimates the material and gas cost of a solved balloon.
package cost

import (
	"github.com/shopspring/decimal"

	"github.com/Mikanister/baloon-calc-sub001/pkg/gas"
	"github.com/Mikanister/baloon-calc-sub001/pkg/material"
	"github.com/Mikanister/baloon-calc-sub001/pkg/solver"
)

// Prices overrides the reference prices. Zero fields keep the catalogue
// price for the material and the reference price for the gas.
type Prices struct {
	MaterialPerKg float64 `json:"material_per_kg" yaml:"material_per_kg" mapstructure:"material_per_kg"`
	GasPerM3      float64 `json:"gas_per_m3" yaml:"gas_per_m3" mapstructure:"gas_per_m3"`
}

// Merge returns p with zero fields filled from fallback.
func (p Prices) Merge(fallback Prices) Prices {
	if p.MaterialPerKg <= 0 {
		p.MaterialPerKg = fallback.MaterialPerKg
	}
	if p.GasPerM3 <= 0 {
		p.GasPerM3 = fallback.GasPerM3
	}
	return p
}

// GasPrice returns the reference price per m³ for the gas.
func GasPrice(k gas.Kind) (float64, error) {
	p, ok := gasPricePerM3[k]
	if !ok {
		return 0, &gas.UnsupportedKindError{Kind: string(k)}
	}
	return p, nil
}

// Breakdown itemizes the cost of one balloon.
type Breakdown struct {
	Material         string          `json:"material"`
	Gas              gas.Kind        `json:"gas"`
	ShellMassKg      float64         `json:"shell_mass_kg"`
	GasVolumeM3      float64         `json:"gas_volume_m3"`
	MaterialPerKg    decimal.Decimal `json:"material_price_per_kg"`
	GasPerM3         decimal.Decimal `json:"gas_price_per_m3"`
	MaterialCost     decimal.Decimal `json:"material_cost"`
	GasCost          decimal.Decimal `json:"gas_cost"`
	Total            decimal.Decimal `json:"total_cost"`
	CostPerKgPayload decimal.Decimal `json:"cost_per_kg_payload"`
}

// Estimate prices a solved state. The per-kg figure divides the total by
// the lift left after the shell, floored at 1 g.
func Estimate(st *solver.State, prices Prices) (*Breakdown, error) {
	m, err := material.Lookup(st.Material)
	if err != nil {
		return nil, err
	}
	gasPrice, err := GasPrice(st.Gas)
	if err != nil {
		return nil, err
	}
	prices = prices.Merge(Prices{MaterialPerKg: m.PricePerKg, GasPerM3: gasPrice})

	perKg := decimal.NewFromFloat(prices.MaterialPerKg)
	perM3 := decimal.NewFromFloat(prices.GasPerM3)
	materialCost := perKg.Mul(decimal.NewFromFloat(st.ShellMassKg))
	gasCost := perM3.Mul(decimal.NewFromFloat(st.GasVolumeM3))
	total := materialCost.Add(gasCost)

	useful := st.LiftKg - st.ShellMassKg
	if useful < minUsefulLiftKg {
		useful = minUsefulLiftKg
	}

	return &Breakdown{
		Material:         m.Name,
		Gas:              st.Gas,
		ShellMassKg:      st.ShellMassKg,
		GasVolumeM3:      st.GasVolumeM3,
		MaterialPerKg:    perKg,
		GasPerM3:         perM3,
		MaterialCost:     materialCost.Round(currencyPlaces),
		GasCost:          gasCost.Round(currencyPlaces),
		Total:            total.Round(currencyPlaces),
		CostPerKgPayload: total.Div(decimal.NewFromFloat(useful)).Round(currencyPlaces),
	}, nil
}
