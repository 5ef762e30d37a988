package material

import (
	"errors"
	"testing"

	"github.com/Mikanister/baloon-calc-sub001/pkg/gas"
)

func TestLookup(t *testing.T) {
	m, err := Lookup("tpu")
	if err != nil {
		t.Fatal(err)
	}
	if m.Name != "TPU" || m.Density != 1200 {
		t.Errorf("got %+v, want TPU with density 1200", m)
	}

	_, err = Lookup("kevlar")
	var ue *UnknownError
	if !errors.As(err, &ue) {
		t.Fatalf("err = %v, want UnknownError", err)
	}
}

func TestNamesSorted(t *testing.T) {
	names := Names()
	if len(names) != 5 {
		t.Fatalf("got %d materials, want 5", len(names))
	}
	for i := 1; i < len(names); i++ {
		if names[i-1] > names[i] {
			t.Errorf("names not sorted: %v", names)
		}
	}
}

func TestPermeability(t *testing.T) {
	m, _ := Lookup("HDPE")
	he, ok := m.Permeability(gas.Helium)
	if !ok || he <= 0 {
		t.Fatalf("helium permeability = %v, %v", he, ok)
	}
	h2, _ := m.Permeability(gas.Hydrogen)
	if h2 <= he {
		t.Errorf("hydrogen permeability %v should exceed helium %v", h2, he)
	}
	if _, ok := m.Permeability(gas.HotAir); ok {
		t.Error("hot air should not report a permeability")
	}
}

func TestHoopStress(t *testing.T) {
	if got := HoopStress(1000, 2, 0.001); got != 1e6 {
		t.Errorf("stress = %v, want 1e6", got)
	}
	if got := HoopStress(-50, 2, 0.001); got != 0 {
		t.Errorf("negative ΔP stress = %v, want 0", got)
	}
	if got := HoopStress(1000, 2, 0); got != 0 {
		t.Errorf("zero thickness stress = %v, want 0", got)
	}
}
