//nolint:testpackage // using package name 'pool' to access unexported fields for testing
package pool

import "testing"

func TestPoolGetPut(t *testing.T) {
	p := NewPool(func() *int {
		v := 7
		return &v
	})

	obj := p.Get()
	if *obj != 7 {
		t.Errorf("factory value = %d, expected 7", *obj)
	}
	*obj = 42
	p.Put(obj)

	// Nil puts are ignored.
	p.Put(nil)
}

func TestPoolReset(t *testing.T) {
	p := NewPoolWithReset(
		func() *[]int { s := make([]int, 0, 4); return &s },
		func(s *[]int) { *s = (*s)[:0] },
	)

	s := p.Get()
	*s = append(*s, 1, 2, 3)
	p.Put(s)

	reused := p.Get()
	if len(*reused) != 0 {
		t.Errorf("reused slice not reset, length %d", len(*reused))
	}
}

func TestStringSlicePool(t *testing.T) {
	s := GetStrings()
	if len(*s) != 0 {
		t.Fatalf("fresh scratch slice has length %d", len(*s))
	}
	*s = append(*s, "-a", "-b")
	PutStrings(s)

	again := GetStrings()
	defer PutStrings(again)
	if len(*again) != 0 {
		t.Errorf("scratch slice not reset, length %d", len(*again))
	}
}
