package ndarray

import "testing"

func TestShapeNumElements(t *testing.T) {
	tests := []struct {
		shape Shape
		want  int
	}{
		{Shape{}, 1},
		{Shape{4}, 4},
		{Shape{2, 3}, 6},
		{Shape{2, 0, 3}, 0},
		{Shape{1, 1, 1}, 1},
	}

	for _, tt := range tests {
		if got := tt.shape.NumElements(); got != tt.want {
			t.Errorf("%v.NumElements() = %d, want %d", tt.shape, got, tt.want)
		}
	}
}

func TestShapeValidate(t *testing.T) {
	if err := (Shape{2, 0, 3}).Validate(); err != nil {
		t.Errorf("zero-length axes should be valid, got %v", err)
	}
	if err := (Shape{2, -1}).Validate(); err == nil {
		t.Error("negative dimension should be invalid")
	}
}

func TestShapeComputeStrides(t *testing.T) {
	tests := []struct {
		shape Shape
		want  []int
	}{
		{Shape{}, []int{}},
		{Shape{5}, []int{1}},
		{Shape{2, 3}, []int{3, 1}},
		{Shape{2, 3, 4}, []int{12, 4, 1}},
	}

	for _, tt := range tests {
		got := tt.shape.ComputeStrides()
		if len(got) != len(tt.want) {
			t.Errorf("%v.ComputeStrides() = %v, want %v", tt.shape, got, tt.want)
			continue
		}
		for i := range got {
			if got[i] != tt.want[i] {
				t.Errorf("%v.ComputeStrides() = %v, want %v", tt.shape, got, tt.want)
				break
			}
		}
	}
}

func TestShapeIsStandardStrides(t *testing.T) {
	if !(Shape{2, 3}).IsStandardStrides([]int{3, 1}) {
		t.Error("canonical strides should be standard")
	}
	if (Shape{2, 3}).IsStandardStrides([]int{1, 2}) {
		t.Error("transposed strides should not be standard")
	}
	if (Shape{2, 3}).IsStandardStrides([]int{1}) {
		t.Error("rank mismatch should not be standard")
	}
}

func TestShapeCloneIndependent(t *testing.T) {
	s := Shape{2, 3}
	c := s.Clone()
	c[0] = 9
	if s[0] != 2 {
		t.Error("Clone should not share backing storage")
	}
	if !s.Equal(Shape{2, 3}) {
		t.Error("original shape modified")
	}
}
