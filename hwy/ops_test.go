package hwy

import (
	"math"
	"testing"
)

func TestLoad(t *testing.T) {
	data := []float64{0.1, 0.2, 0.3, 0.4, 0.5, 0.6, 0.7, 0.8}
	v := Load(data)

	if v.NumLanes() != min(len(data), MaxLanes[float64]()) {
		t.Fatalf("Load: got %d lanes, want %d", v.NumLanes(), MaxLanes[float64]())
	}
	for i := 0; i < v.NumLanes(); i++ {
		if v.data[i] != data[i] {
			t.Errorf("Load: lane %d: got %v, want %v", i, v.data[i], data[i])
		}
	}

	// Load copies; mutating the source must not change the vector.
	data[0] = 42
	if v.data[0] != 0.1 {
		t.Errorf("Load aliases its source: lane 0 = %v", v.data[0])
	}
}

func TestLoadShort(t *testing.T) {
	v := Load([]float64{3})
	if v.NumLanes() != 1 {
		t.Errorf("Load of 1 element: got %d lanes", v.NumLanes())
	}
}

func TestLoadN(t *testing.T) {
	v := LoadN([]float64{1, 2, 3}, 1)
	if v.NumLanes() != 1 || v.data[0] != 1 {
		t.Errorf("LoadN: got %v", v.data)
	}

	defer func() {
		if recover() == nil {
			t.Error("LoadN beyond vector width should panic")
		}
	}()
	LoadN(make([]float64, 128), MaxLanes[float64]()+1)
}

func TestStore(t *testing.T) {
	v := Set(7.5)
	dst := make([]float64, v.NumLanes()+2)
	Store(v, dst)
	for i := 0; i < v.NumLanes(); i++ {
		if dst[i] != 7.5 {
			t.Errorf("Store: index %d: got %v, want 7.5", i, dst[i])
		}
	}
	for i := v.NumLanes(); i < len(dst); i++ {
		if dst[i] != 0 {
			t.Errorf("Store wrote past the vector: index %d = %v", i, dst[i])
		}
	}

	// Truncated destination.
	short := make([]float64, 1)
	v.Store(short)
	if short[0] != 7.5 {
		t.Errorf("Store into short slice: got %v", short[0])
	}
}

func TestZero(t *testing.T) {
	v := Zero[int]()
	if v.NumLanes() == 0 {
		t.Fatal("Zero created empty vector")
	}
	for i := 0; i < v.NumLanes(); i++ {
		if v.data[i] != 0 {
			t.Errorf("Zero: lane %d: got %v, want 0", i, v.data[i])
		}
	}
}

func TestArithmetic(t *testing.T) {
	a := Set(10.0)
	b := Set(4.0)

	tests := []struct {
		name string
		got  Vec[float64]
		want float64
	}{
		{"Add", Add(a, b), 14},
		{"Mul", Mul(a, b), 40},
		{"Div", Div(a, b), 2.5},
		{"Neg", Neg(a), -10},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got.NumLanes() != MaxLanes[float64]() {
				t.Fatalf("%s: got %d lanes", tt.name, tt.got.NumLanes())
			}
			for i, x := range tt.got.Data() {
				if x != tt.want {
					t.Errorf("%s: lane %d: got %v, want %v", tt.name, i, x, tt.want)
				}
			}
		})
	}
}

func TestMixedWidth(t *testing.T) {
	// A tail vector combined with a full one yields the shorter width.
	full := Set(1.0)
	tail := LoadN([]float64{2}, 1)
	if got := Add(full, tail).NumLanes(); got != 1 {
		t.Errorf("Add(full, tail): got %d lanes, want 1", got)
	}
}

func TestDivIEEE(t *testing.T) {
	r := Div(Load([]float64{1, -1}), Load([]float64{0, 0}))
	if !math.IsInf(r.data[0], 1) {
		t.Errorf("1/0: got %v, want +Inf", r.data[0])
	}
	if r.NumLanes() > 1 && !math.IsInf(r.data[1], -1) {
		t.Errorf("-1/0: got %v, want -Inf", r.data[1])
	}
}

func TestReduceSum(t *testing.T) {
	v := Load([]float64{1, 2, 3, 4, 5, 6, 7, 8})
	want := 0.0
	for i := 0; i < v.NumLanes(); i++ {
		want += float64(i + 1)
	}
	if got := ReduceSum(v); got != want {
		t.Errorf("ReduceSum: got %v, want %v", got, want)
	}

	if got := ReduceSum(Set(3)); got != 3*MaxLanes[int]() {
		t.Errorf("ReduceSum[int]: got %v", got)
	}
}

func TestProcessWithTail(t *testing.T) {
	for _, size := range []int{0, 1, 7, 8, 9, 17} {
		var full, tail, covered int
		ProcessWithTail[float64](size,
			func(offset int) {
				full++
				covered += MaxLanes[float64]()
			},
			func(offset, count int) {
				tail++
				if offset+count != size {
					t.Errorf("size %d: tail [%d,+%d) does not end at size", size, offset, count)
				}
				covered += count
			},
		)
		if covered != size {
			t.Errorf("size %d: covered %d elements", size, covered)
		}
		if tail > 1 {
			t.Errorf("size %d: tail called %d times", size, tail)
		}
		if want := size / MaxLanes[float64](); full != want {
			t.Errorf("size %d: full called %d times, want %d", size, full, want)
		}
	}
}
