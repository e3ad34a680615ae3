package curve

import "testing"

func toyEdwards() *EdwardsCurve {
	return &EdwardsCurve{
		C: bi(1),
		D: bi(2),
		M: bi(97),
	}
}

func TestEdwardsCheck(t *testing.T) {
	c := toyEdwards()

	if !c.Check(NewPoint(bi(48), bi(27))) {
		t.Fatal("(48, 27) should be on curve")
	}
	if c.Check(NewPoint(bi(0), bi(0))) {
		t.Fatal("(0, 0) should not be on curve")
	}
	if !c.Check(c.Zero()) {
		t.Fatal("zero should always check true")
	}
	if c.Check(NewPoint(bi(48), bi(28))) {
		t.Fatal("(48, 28) should not be on curve")
	}
}

func TestEdwardsAdd(t *testing.T) {
	c := toyEdwards()

	if got := c.Add(NewPoint(bi(5), bi(40)), NewPoint(bi(48), bi(27))); !got.Equal(NewPoint(bi(27), bi(48))) {
		t.Fatalf("add = %s, want (27, 48)", got)
	}
	if got := c.Add(NewPoint(bi(5), bi(40)), c.Zero()); !got.Equal(NewPoint(bi(5), bi(40))) {
		t.Fatalf("add(P, zero) = %s, want P", got)
	}
	if got := c.Add(c.Zero(), NewPoint(bi(5), bi(40))); !got.Equal(NewPoint(bi(5), bi(40))) {
		t.Fatalf("add(zero, P) = %s, want P", got)
	}
	if got := c.Add(c.Zero(), c.Zero()); !got.Equal(c.Zero()) {
		t.Fatalf("add(zero, zero) = %s, want zero", got)
	}
	if got := c.Add(NewPoint(bi(5), bi(40)), NewPoint(bi(92), bi(40))); !got.Equal(c.Zero()) {
		t.Fatalf("add(P, inv(P)) = %s, want zero", got)
	}
}

func TestEdwardsDouble(t *testing.T) {
	c := toyEdwards()

	if got := c.Double(NewPoint(bi(5), bi(40))); !got.Equal(NewPoint(bi(48), bi(27))) {
		t.Fatalf("double = %s, want (48, 27)", got)
	}
	if got := c.Double(c.Zero()); !got.Equal(c.Zero()) {
		t.Fatalf("double(zero) = %s, want zero", got)
	}
	if got := c.Double(NewPoint(bi(0), bi(96))); !got.Equal(c.Zero()) {
		t.Fatalf("double of order-2 point = %s, want zero", got)
	}
}

func TestEdwardsMul(t *testing.T) {
	c := toyEdwards()
	p := NewPoint(bi(5), bi(40))

	cases := []struct {
		k    int64
		want Point
	}{
		{0, c.Zero()},
		{1, p},
		{2, NewPoint(bi(48), bi(27))},
		{3, NewPoint(bi(27), bi(48))},
		{20, c.Zero()},
	}
	for _, tc := range cases {
		got := c.Mul(p, bi(tc.k))
		if !got.Equal(tc.want) {
			t.Errorf("mul(P, %d) = %s, want %s", tc.k, got, tc.want)
		}
	}
}
