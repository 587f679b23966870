package ndarray

import "testing"

func mustFromSlice(t *testing.T, data []float64, shape Shape) *Array[float64] {
	t.Helper()
	a, err := FromSlice(data, shape)
	if err != nil {
		t.Fatalf("FromSlice(%v, %v) failed: %v", data, shape, err)
	}
	return a
}

func TestFromSliceLengthMismatch(t *testing.T) {
	if _, err := FromSlice([]float64{1, 2, 3}, Shape{2, 2}); err == nil {
		t.Error("FromSlice with 3 elements for a 2x2 shape should fail")
	}
}

func TestFromSliceCopiesData(t *testing.T) {
	data := []float64{1, 2, 3, 4}
	a := mustFromSlice(t, data, Shape{2, 2})
	data[0] = 99
	if a.At(0, 0) != 1 {
		t.Error("FromSlice should copy the input slice")
	}
}

func TestArrayAt(t *testing.T) {
	a := mustFromSlice(t, []float64{1, 2, 3, 4, 5, 6}, Shape{2, 3})

	if got := a.At(1, 2); got != 6 {
		t.Errorf("At(1, 2) = %v, want 6", got)
	}
	a.SetAt(42, 0, 1)
	if got := a.At(0, 1); got != 42 {
		t.Errorf("At(0, 1) after SetAt = %v, want 42", got)
	}
}

func TestArrayAtOutOfRange(t *testing.T) {
	a := mustFromSlice(t, []float64{1, 2}, Shape{2})
	defer func() {
		if recover() == nil {
			t.Error("At with out-of-range index should panic")
		}
	}()
	a.At(2)
}

func TestTransposeView(t *testing.T) {
	a := mustFromSlice(t, []float64{1, 2, 3, 4, 5, 6}, Shape{2, 3})
	tr := a.Transpose()

	if !tr.Shape().Equal(Shape{3, 2}) {
		t.Errorf("transpose shape = %v, want [3 2]", tr.Shape())
	}
	if s := tr.Strides(); s[0] != 1 || s[1] != 3 {
		t.Errorf("transpose strides = %v, want [1 3]", s)
	}
	if tr.Owned() {
		t.Error("transpose should be a borrowed view")
	}
	if got := tr.At(2, 1); got != 6 {
		t.Errorf("transpose At(2, 1) = %v, want 6", got)
	}

	// Views share storage: writes through the view are visible in the base.
	tr.SetAt(-1, 0, 1)
	if a.At(1, 0) != -1 {
		t.Error("transpose view should share storage with the base array")
	}
}

func TestSliceAxisView(t *testing.T) {
	// 3x4 row-major, take every other column.
	a := mustFromSlice(t, []float64{
		0, 1, 2, 3,
		4, 5, 6, 7,
		8, 9, 10, 11,
	}, Shape{3, 4})

	s, err := a.SliceAxis(1, 1, 4, 2)
	if err != nil {
		t.Fatalf("SliceAxis failed: %v", err)
	}
	if !s.Shape().Equal(Shape{3, 2}) {
		t.Errorf("slice shape = %v, want [3 2]", s.Shape())
	}
	if st := s.Strides(); st[0] != 4 || st[1] != 2 {
		t.Errorf("slice strides = %v, want [4 2]", st)
	}
	if s.Owned() {
		t.Error("slice should be a borrowed view")
	}
	want := []float64{1, 3, 5, 7, 9, 11}
	got := s.Flatten()
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("slice Flatten() = %v, want %v", got, want)
			break
		}
	}
}

func TestSliceAxisErrors(t *testing.T) {
	a := mustFromSlice(t, []float64{1, 2, 3, 4}, Shape{2, 2})

	if _, err := a.SliceAxis(2, 0, 1, 1); err == nil {
		t.Error("SliceAxis with bad axis should fail")
	}
	if _, err := a.SliceAxis(0, 0, 3, 1); err == nil {
		t.Error("SliceAxis past axis length should fail")
	}
	if _, err := a.SliceAxis(0, 0, 2, 0); err == nil {
		t.Error("SliceAxis with step 0 should fail")
	}
}

func TestFlattenLogicalOrder(t *testing.T) {
	a := mustFromSlice(t, []float64{1, 2, 3, 4, 5, 6}, Shape{2, 3})
	tr := a.Transpose()

	want := []float64{1, 4, 2, 5, 3, 6}
	got := tr.Flatten()
	if len(got) != len(want) {
		t.Fatalf("Flatten() length = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Flatten() = %v, want %v", got, want)
			break
		}
	}
}

func TestFlattenScalar(t *testing.T) {
	a := mustFromSlice(t, []float64{7}, Shape{})
	got := a.Flatten()
	if len(got) != 1 || got[0] != 7 {
		t.Errorf("scalar Flatten() = %v, want [7]", got)
	}
}

func TestCloneIsOwnedAndIndependent(t *testing.T) {
	a := mustFromSlice(t, []float64{1, 2, 3, 4, 5, 6}, Shape{2, 3})
	tr := a.Transpose()
	c := tr.Clone()

	if !c.Owned() {
		t.Error("Clone should be owned")
	}
	if !c.Shape().Equal(tr.Shape()) {
		t.Errorf("Clone shape = %v, want %v", c.Shape(), tr.Shape())
	}
	if c.Strides()[0] != tr.Strides()[0] || c.Strides()[1] != tr.Strides()[1] {
		t.Errorf("Clone strides = %v, want %v", c.Strides(), tr.Strides())
	}

	c.SetAt(99, 0, 0)
	if a.At(0, 0) == 99 {
		t.Error("Clone should not share storage with the original")
	}
}

func TestIsStandardLayout(t *testing.T) {
	a := mustFromSlice(t, []float64{1, 2, 3, 4, 5, 6}, Shape{2, 3})
	if !a.IsStandardLayout() {
		t.Error("freshly created array should be standard layout")
	}
	if a.Transpose().IsStandardLayout() {
		t.Error("transposed view should not be standard layout")
	}

	// A leading-axis slice keeps canonical strides.
	row, err := a.SliceAxis(0, 1, 2, 1)
	if err != nil {
		t.Fatalf("SliceAxis failed: %v", err)
	}
	if !row.IsStandardLayout() {
		t.Error("row slice with canonical strides should be standard layout")
	}
	if got := row.Base()[0]; got != 4 {
		t.Errorf("row slice Base()[0] = %v, want 4", got)
	}
}

func TestSetStorage(t *testing.T) {
	a := mustFromSlice(t, []float64{1, 2, 3, 4, 5, 6}, Shape{2, 3})

	if err := a.SetStorage([]float64{9, 8, 7, 6, 5, 4}, Shape{2, 3}); err != nil {
		t.Fatalf("SetStorage failed: %v", err)
	}
	if a.At(0, 0) != 9 {
		t.Error("SetStorage should install the new buffer")
	}
	if !a.IsStandardLayout() {
		t.Error("SetStorage should install canonical strides")
	}

	if err := a.SetStorage([]float64{1}, Shape{2, 3}); err == nil {
		t.Error("SetStorage with mismatched length should fail")
	}
	if err := a.Transpose().SetStorage([]float64{1, 2, 3, 4, 5, 6}, Shape{3, 2}); err == nil {
		t.Error("SetStorage on a borrowed view should fail")
	}
}

func TestAsStrided(t *testing.T) {
	data := []float64{0, 1, 2, 3, 4, 5}

	// Column view of a 3x2 row-major buffer.
	v, err := AsStrided(data, Shape{3}, []int{2})
	if err != nil {
		t.Fatalf("AsStrided failed: %v", err)
	}
	if v.Owned() {
		t.Error("AsStrided view should be borrowed")
	}
	if got := v.At(2); got != 4 {
		t.Errorf("At(2) = %v, want 4", got)
	}

	// Out-of-bounds extent is rejected.
	if _, err := AsStrided(data, Shape{4}, []int{2}); err == nil {
		t.Error("AsStrided addressing past the buffer should fail")
	}
	if _, err := AsStrided(data, Shape{2}, []int{-1}); err == nil {
		t.Error("AsStrided addressing before the buffer should fail")
	}

	// Degenerate axes place no constraint on their stride.
	if _, err := AsStrided(data, Shape{1, 6}, []int{1 << 40, 1}); err != nil {
		t.Errorf("length-1 axis with a huge stride should be constructible: %v", err)
	}
	if _, err := AsStrided(data, Shape{1 << 40}, []int{0}); err != nil {
		t.Errorf("zero-stride axis should be constructible: %v", err)
	}
}

func TestZerosZeroLengthAxis(t *testing.T) {
	a, err := Zeros[float32](Shape{0, 3})
	if err != nil {
		t.Fatalf("Zeros with zero-length axis failed: %v", err)
	}
	if a.NumElements() != 0 {
		t.Errorf("NumElements() = %d, want 0", a.NumElements())
	}
	if got := a.Flatten(); len(got) != 0 {
		t.Errorf("Flatten() length = %d, want 0", len(got))
	}
}
