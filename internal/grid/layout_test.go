package grid

import "testing"

func TestColumns(t *testing.T) {
	tests := []struct {
		width    float32
		expected int
	}{
		{0, 3},
		{320, 3},
		{600, 3},
		{601, 8},
		{1024, 8},
		{1200, 8},
		{1201, 14},
		{1920, 14},
		{3840, 14},
	}

	for _, test := range tests {
		if got := Columns(test.width); got != test.expected {
			t.Errorf("Columns(%v) = %d, expected %d", test.width, got, test.expected)
		}
	}
}

func TestComputeLayout(t *testing.T) {
	// 1200 wide -> 8 columns, 150 wide cells, 225 tall cells.
	// 800 tall / 225 = 3.55... -> 4 rows + 1 overscan = 5.
	l := ComputeLayout(1200, 800)

	if l.Columns != 8 {
		t.Errorf("Expected 8 columns, got %d", l.Columns)
	}
	if l.Rows != 5 {
		t.Errorf("Expected 5 rows (4 visible + overscan), got %d", l.Rows)
	}
	if l.CellWidth != 150 {
		t.Errorf("Expected cell width 150, got %v", l.CellWidth)
	}
	if l.CellHeight != 225 {
		t.Errorf("Expected cell height 225, got %v", l.CellHeight)
	}
	if l.CellCount() != 40 {
		t.Errorf("Expected 40 cells, got %d", l.CellCount())
	}
}

func TestComputeLayout_ExactRowFit(t *testing.T) {
	// 600 wide -> 3 columns, 200 wide, 300 tall. 900 tall is exactly 3
	// rows; the overscan row still applies.
	l := ComputeLayout(600, 900)

	if l.Rows != 4 {
		t.Errorf("Expected 4 rows for an exact fit plus overscan, got %d", l.Rows)
	}
	if l.CellCount() != 12 {
		t.Errorf("Expected 12 cells, got %d", l.CellCount())
	}
}

func TestCellCount(t *testing.T) {
	if got, want := CellCount(1200, 800), 40; got != want {
		t.Errorf("CellCount(1200, 800) = %d, expected %d", got, want)
	}
}
