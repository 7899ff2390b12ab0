package mac

import (
	"testing"

	"gonum.org/v1/gonum/mat"
)

func TestNewModeSet_ColumnMajorLayout(t *testing.T) {
	// Two modes of length 3, column-major.
	s, err := NewModeSet(3, 2, []float64{1, 2, 3, 4, 5, 6})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.Len() != 3 || s.Count() != 2 {
		t.Fatalf("expected 3x2 set, got %dx%d", s.Len(), s.Count())
	}
	mode1 := s.Mode(1)
	want := []float64{4, 5, 6}
	for i := range want {
		if mode1[i] != want[i] {
			t.Errorf("Mode(1)[%d] = %v, expected %v", i, mode1[i], want[i])
		}
	}
}

func TestNewModeSet_Invalid(t *testing.T) {
	if _, err := NewModeSet(0, 2, nil); err == nil {
		t.Error("expected error for zero length, got nil")
	}
	if _, err := NewModeSet(3, 0, nil); err == nil {
		t.Error("expected error for zero count, got nil")
	}
	if _, err := NewModeSet(3, 2, []float64{1, 2, 3}); err == nil {
		t.Error("expected error for short data, got nil")
	}
}

func TestNewModeSet_CopiesData(t *testing.T) {
	data := []float64{1, 2, 3, 4}
	s, err := NewModeSet(2, 2, data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	data[0] = 99
	if s.Mode(0)[0] != 1 {
		t.Error("ModeSet aliases caller data; constructor must copy")
	}
}

func TestModeSetFromColumns_RaggedColumns(t *testing.T) {
	_, err := ModeSetFromColumns([][]float64{{1, 2, 3}, {4, 5}})
	if err == nil {
		t.Fatal("expected error for ragged columns, got nil")
	}
}

func TestModeSetFromColumns_Empty(t *testing.T) {
	if _, err := ModeSetFromColumns(nil); err == nil {
		t.Error("expected error for no columns, got nil")
	}
	if _, err := ModeSetFromColumns([][]float64{{}}); err == nil {
		t.Error("expected error for empty column, got nil")
	}
}

func TestModeSetFromDense_RoundTrip(t *testing.T) {
	// 3x2 matrix: columns (1,2,3) and (4,5,6).
	d := mat.NewDense(3, 2, []float64{
		1, 4,
		2, 5,
		3, 6,
	})
	s, err := ModeSetFromDense(d)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.Len() != 3 || s.Count() != 2 {
		t.Fatalf("expected 3x2 set, got %dx%d", s.Len(), s.Count())
	}
	if s.Mode(1)[0] != 4 || s.Mode(1)[2] != 6 {
		t.Errorf("Mode(1) = %v, expected [4 5 6]", s.Mode(1))
	}

	back := s.Dense()
	if !mat.Equal(d, back) {
		t.Errorf("Dense round trip mismatch:\ngot\n%v\nwant\n%v",
			mat.Formatted(back), mat.Formatted(d))
	}
}

func TestModeSetFromDense_Nil(t *testing.T) {
	if _, err := ModeSetFromDense(nil); err == nil {
		t.Error("expected error for nil matrix, got nil")
	}
}

func TestModeSet_ModeOutOfRange_Panics(t *testing.T) {
	s, err := NewModeSet(2, 2, []float64{1, 2, 3, 4})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer func() {
		if recover() == nil {
			t.Error("expected panic for out-of-range mode index")
		}
	}()
	s.Mode(2)
}
