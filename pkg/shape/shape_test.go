package shape

import (
	"errors"
	"math"
	"testing"

	"github.com/Mikanister/baloon-calc-sub001/pkg/profile"
)

func approxEqual(a, b, tol float64) bool {
	return math.Abs(a-b) < tol
}

func relErr(got, want float64) float64 {
	return math.Abs(got-want) / math.Abs(want)
}

func TestParseKind(t *testing.T) {
	for _, k := range Kinds() {
		got, err := ParseKind(" " + string(k) + " ")
		if err != nil || got != k {
			t.Errorf("ParseKind(%q) = %v, %v", k, got, err)
		}
	}
	if got, err := ParseKind("Sphere"); err != nil || got != Sphere {
		t.Errorf("ParseKind(Sphere) = %v, %v", got, err)
	}

	_, err := ParseKind("torus")
	var uk *UnsupportedKindError
	if !errors.As(err, &uk) || uk.Kind != "torus" {
		t.Fatalf("ParseKind(torus) error = %v, want UnsupportedKindError", err)
	}
}

func TestSphereProfile(t *testing.T) {
	p, err := NewProfile(SphereParams{Radius: 2})
	if err != nil {
		t.Fatal(err)
	}
	if p.ZMin != 0 || p.ZMax != 4 {
		t.Errorf("range = [%v, %v], want [0, 4]", p.ZMin, p.ZMax)
	}
	if !approxEqual(p.RadiusAt(2), 2, 1e-12) {
		t.Errorf("equator radius = %v, want 2", p.RadiusAt(2))
	}
	if !p.PoleAtTop() || !p.PoleAtBottom() {
		t.Error("sphere should close at both ends")
	}
}

func TestDegenerateParams(t *testing.T) {
	cases := []struct {
		name  string
		p     Params
		field string
	}{
		{"sphere zero radius", SphereParams{}, "radius"},
		{"pillow negative width", PillowParams{Length: 1, Width: -1, Thickness: 1}, "width"},
		{"pear zero height", PearParams{TopRadius: 1}, "height"},
		{"cigar too fat", CigarParams{Length: 1, Radius: 0.6}, "radius"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewProfile(tc.p)
			var de *DegenerateProfileError
			if !errors.As(err, &de) {
				t.Fatalf("error = %v, want DegenerateProfileError", err)
			}
			if de.Field != tc.field || de.Kind != tc.p.Kind() {
				t.Errorf("got %s.%s, want %s.%s", de.Kind, de.Field, tc.p.Kind(), tc.field)
			}
		})
	}
}

func TestCigarCapsuleAllowed(t *testing.T) {
	p, err := NewProfile(CigarParams{Length: 2, Radius: 1})
	if err != nil {
		t.Fatalf("capsule rejected: %v", err)
	}
	v, _ := Volume(CigarParams{Length: 2, Radius: 1})
	if !approxEqual(v, 4.0/3.0*math.Pi, 1e-12) {
		t.Errorf("capsule volume = %v, want 4π/3", v)
	}
	if got := p.RadiusAt(1); !approxEqual(got, 1, 1e-12) {
		t.Errorf("capsule waist = %v, want 1", got)
	}
}

func TestCigarIntegratorMatchesClosedForm(t *testing.T) {
	cp := CigarParams{Length: 5, Radius: 1}
	p, err := NewProfile(cp)
	if err != nil {
		t.Fatal(err)
	}
	in := profile.NewIntegrator(p)
	wantV, _ := Volume(cp)
	wantA, _ := SurfaceArea(cp)
	if e := relErr(in.Volume(2000), wantV); e > 1e-3 {
		t.Errorf("volume rel err %v", e)
	}
	if e := relErr(in.SurfaceArea(2000), wantA); e > 1e-3 {
		t.Errorf("area rel err %v", e)
	}
}

func TestPearProfileShape(t *testing.T) {
	for _, pp := range []PearParams{
		{Height: 6, TopRadius: 2, BottomRadius: 1},     // crown fits
		{Height: 2, TopRadius: 1.5, BottomRadius: 0.5}, // crown overshoots
		{Height: 3, TopRadius: 1.2, BottomRadius: 0},   // exact hemisphere
	} {
		p, err := NewProfile(pp)
		if err != nil {
			t.Fatalf("%+v: %v", pp, err)
		}
		if got := p.RadiusAt(pp.Height); got > 1e-9 {
			t.Errorf("%+v: apex radius = %v, want 0", pp, got)
		}
		if got := p.RadiusAt(0); !approxEqual(got, pp.BottomRadius, 1e-12) {
			t.Errorf("%+v: base radius = %v, want %v", pp, got, pp.BottomRadius)
		}
		if got := p.RadiusAt(0.6 * pp.Height); !approxEqual(got, pp.TopRadius, 1e-12) {
			t.Errorf("%+v: shoulder radius = %v, want %v", pp, got, pp.TopRadius)
		}
		// No jumps anywhere along the axis.
		prev := p.RadiusAt(0)
		n := 4000
		for i := 1; i <= n; i++ {
			r := p.RadiusAt(pp.Height * float64(i) / float64(n))
			if math.Abs(r-prev) > 0.05*pp.TopRadius {
				t.Fatalf("%+v: jump of %v at step %d", pp, r-prev, i)
			}
			prev = r
		}
	}
}

func TestSphereDimensionsFromVolume(t *testing.T) {
	d, err := DimensionsFromVolume(Sphere, 4.0/3.0*math.Pi*8, nil)
	if err != nil {
		t.Fatal(err)
	}
	r := d.Params.(SphereParams).Radius
	if !approxEqual(r, 2, 1e-9) {
		t.Errorf("radius = %v, want 2", r)
	}
	if !approxEqual(d.SurfaceArea, 16*math.Pi, 1e-9) || d.CharacteristicRadius != r {
		t.Errorf("area = %v, char radius = %v", d.SurfaceArea, d.CharacteristicRadius)
	}
}

func TestZeroAndNegativeVolume(t *testing.T) {
	d, err := DimensionsFromVolume(Sphere, 0, SphereParams{})
	if err != nil {
		t.Fatalf("zero volume: %v", err)
	}
	if r := d.Params.(SphereParams).Radius; r != 0 || math.IsNaN(r) {
		t.Errorf("radius = %v, want 0", r)
	}

	_, err = DimensionsFromVolume(Cigar, -1, nil)
	var de *DegenerateProfileError
	if !errors.As(err, &de) || de.Field != "volume" {
		t.Errorf("negative volume error = %v", err)
	}
}

func TestDimensionsMatchVolume(t *testing.T) {
	cases := []struct {
		name string
		kind Kind
		hint Params
	}{
		{"sphere", Sphere, nil},
		{"pillow auto", Pillow, nil},
		{"pillow length", Pillow, PillowParams{Length: 6}},
		{"pillow width", Pillow, PillowParams{Width: 2}},
		{"pillow thickness", Pillow, PillowParams{Thickness: 0.5}},
		{"pillow length+width", Pillow, PillowParams{Length: 4, Width: 3}},
		{"pear auto", Pear, nil},
		{"pear height", Pear, PearParams{Height: 4}},
		{"pear top", Pear, PearParams{TopRadius: 1.5}},
		{"pear bottom", Pear, PearParams{BottomRadius: 0.4}},
		{"pear height+top", Pear, PearParams{Height: 4, TopRadius: 1.2}},
		{"cigar auto", Cigar, nil},
		{"cigar length", Cigar, CigarParams{Length: 8}},
		{"cigar radius", Cigar, CigarParams{Radius: 0.8}},
		{"cigar short length", Cigar, CigarParams{Length: 1}},
		{"cigar wide radius", Cigar, CigarParams{Radius: 5}},
	}
	const want = 10.0
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			d, err := DimensionsFromVolume(tc.kind, want, tc.hint)
			if err != nil {
				t.Fatal(err)
			}
			if e := relErr(d.Volume, want); e > 1e-6 {
				t.Errorf("volume = %v, want %v (params %+v)", d.Volume, want, d.Params)
			}
			if d.SurfaceArea <= 0 || d.CharacteristicRadius <= 0 {
				t.Errorf("area = %v, radius = %v", d.SurfaceArea, d.CharacteristicRadius)
			}
			if err := d.Params.Validate(); err != nil {
				t.Errorf("resolved params invalid: %v", err)
			}
		})
	}
}

func TestDimensionsKeepHints(t *testing.T) {
	d, err := DimensionsFromVolume(Cigar, 10, CigarParams{Length: 8})
	if err != nil {
		t.Fatal(err)
	}
	if got := d.Params.(CigarParams).Length; got != 8 {
		t.Errorf("length = %v, want 8", got)
	}

	d, err = DimensionsFromVolume(Pillow, 12, PillowParams{Length: 6})
	if err != nil {
		t.Fatal(err)
	}
	pp := d.Params.(PillowParams)
	if pp.Length != 6 || !approxEqual(pp.Width, 4, 1e-12) || !approxEqual(pp.Thickness, 0.5, 1e-12) {
		t.Errorf("pillow = %+v, want 6×4×0.5", pp)
	}

	d, err = DimensionsFromVolume(Pillow, 6, nil)
	if err != nil {
		t.Fatal(err)
	}
	pp = d.Params.(PillowParams)
	if !approxEqual(pp.Length, 3, 1e-12) || !approxEqual(pp.Width, 2, 1e-12) || !approxEqual(pp.Thickness, 1, 1e-12) {
		t.Errorf("pillow = %+v, want 3×2×1", pp)
	}
}

func TestDimensionsKindMismatch(t *testing.T) {
	_, err := DimensionsFromVolume(Sphere, 1, CigarParams{})
	var me *ParamsKindError
	if !errors.As(err, &me) {
		t.Errorf("error = %v, want ParamsKindError", err)
	}
	_, err = DimensionsFromVolume(Kind("blimp"), 1, nil)
	var uk *UnsupportedKindError
	if !errors.As(err, &uk) {
		t.Errorf("error = %v, want UnsupportedKindError", err)
	}
}

func TestFieldsRoundTrip(t *testing.T) {
	f := Fields{Height: 3, TopRadius: 1, BottomRadius: 0.5}
	p, err := NewParams(Pear, f)
	if err != nil {
		t.Fatal(err)
	}
	if got := ToFields(p); got != f {
		t.Errorf("ToFields = %+v, want %+v", got, f)
	}
	if len(Describe()) != len(Kinds()) {
		t.Errorf("Describe lists %d shapes, want %d", len(Describe()), len(Kinds()))
	}
}

func TestPearVolumeBelowGivenDimensions(t *testing.T) {
	// A crown this large tapers to the apex without error.
	if _, err := NewProfile(PearParams{Height: 10, TopRadius: 5}); err != nil {
		t.Fatalf("oversized crown: %v", err)
	}

	_, err := DimensionsFromVolume(Pear, 1, PearParams{Height: 10, TopRadius: 5})
	var de *DegenerateProfileError
	if !errors.As(err, &de) {
		t.Fatalf("error = %v, want DegenerateProfileError", err)
	}
	if de.Field != "volume" || de.Value != 1 {
		t.Errorf("error fields = %q/%v, want volume/1", de.Field, de.Value)
	}
}
