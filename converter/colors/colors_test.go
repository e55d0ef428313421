package colors

import "testing"

func TestNewColorFromHex(t *testing.T) {
	t.Parallel()

	c, err := NewColorFromHex("#1a1a1a")
	if err != nil {
		t.Fatal(err)
	}
	if c.R8 != 26 || c.G8 != 26 || c.B8 != 26 {
		t.Errorf("8-bit channels = %d %d %d", c.R8, c.G8, c.B8)
	}
	if c.Hex() != "#1a1a1a" {
		t.Errorf("Hex() = %s", c.Hex())
	}

	for _, bad := range []string{"", "#fff", "zzzzzz", "#12345g"} {
		if _, err := NewColorFromHex(bad); err == nil {
			t.Errorf("NewColorFromHex(%q) accepted invalid input", bad)
		}
	}
}

func TestNewColorFromRGB(t *testing.T) {
	t.Parallel()

	c := NewColorFromRGB(0.15, 0.15, 0.20)
	if c.R != 0.15 || c.G != 0.15 || c.B != 0.20 {
		t.Errorf("normalized channels = %v %v %v", c.R, c.G, c.B)
	}
	if c.R8 != 38 || c.B8 != 51 {
		t.Errorf("8-bit channels = %d %d %d", c.R8, c.G8, c.B8)
	}
}

func TestScale(t *testing.T) {
	t.Parallel()

	c := NewColorFromRGB(0.5, 1.0, 0.0).Scale(0.5)
	if c.R != 0.25 || c.G != 0.5 || c.B != 0 {
		t.Errorf("Scale(0.5) = %v %v %v", c.R, c.G, c.B)
	}

	// Scaling never leaves [0,1].
	c = NewColorFromRGB(0.8, 0.8, 0.8).Scale(2)
	if c.R != 1 || c.G != 1 || c.B != 1 {
		t.Errorf("Scale(2) not clamped: %v %v %v", c.R, c.G, c.B)
	}
}

func TestGetScheme(t *testing.T) {
	t.Parallel()

	s, err := GetScheme("Nord")
	if err != nil {
		t.Fatal(err)
	}
	if s.Name != "nord" {
		t.Errorf("Name = %s", s.Name)
	}

	if _, err := GetScheme("unknown"); err == nil {
		t.Error("GetScheme accepted an unknown name")
	}

	if got := len(ListSchemes()); got != len(AvailableSchemes) {
		t.Errorf("ListSchemes returned %d names", got)
	}
}
