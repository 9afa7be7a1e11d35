// Copyright 2026 libgeodecomp-go Authors. SPDX-License-Identifier: Apache-2.0

package vec

import "testing"

func TestLoadStore(t *testing.T) {
	src := []float64{1, 2, 3, 4}
	v := Load(src)
	if v.NumLanes() != 4 {
		t.Fatalf("NumLanes: got %d, want 4", v.NumLanes())
	}

	dst := make([]float64, 4)
	Store(v, dst)
	for i := range src {
		if dst[i] != src[i] {
			t.Errorf("lane %d: got %v, want %v", i, dst[i], src[i])
		}
	}
}

func TestMulAdd(t *testing.T) {
	a := Load([]float64{1, 2, 3, 4})
	b := Load([]float64{10, 20, 30, 40})
	acc := Splat(5.0, 4)

	got := MulAdd(a, b, acc)
	want := []float64{15, 45, 95, 165}
	for i := range want {
		if got.Data()[i] != want[i] {
			t.Errorf("lane %d: got %v, want %v", i, got.Data()[i], want[i])
		}
	}
}

func TestReduceSum(t *testing.T) {
	v := Load([]float32{1.5, 2.5, 3, 4})
	if sum := ReduceSum(v); sum != 11 {
		t.Errorf("ReduceSum: got %v, want 11", sum)
	}
}

func TestGather(t *testing.T) {
	src := []float64{10, 20, 30, 40, 50}
	cols := []int32{4, 0, 2, 2}

	got := Gather(src, cols)
	want := []float64{50, 10, 30, 30}
	for i := range want {
		if got.Data()[i] != want[i] {
			t.Errorf("lane %d: got %v, want %v", i, got.Data()[i], want[i])
		}
	}
}

func TestGatherOutOfRangeLanesAreZero(t *testing.T) {
	src := []float64{10, 20}
	got := Gather(src, []int32{-1, 5, 1})
	want := []float64{0, 0, 20}
	for i := range want {
		if got.Data()[i] != want[i] {
			t.Errorf("lane %d: got %v, want %v", i, got.Data()[i], want[i])
		}
	}
}

func TestMaxLanesMatchesWidth(t *testing.T) {
	w := RegisterWidth()
	if got := MaxLanes[float64](); got != w/8 {
		t.Errorf("MaxLanes[float64]: got %d, want %d", got, w/8)
	}
	if got := MaxLanes[float32](); got != w/4 {
		t.Errorf("MaxLanes[float32]: got %d, want %d", got, w/4)
	}
}
