package world

import "testing"

func TestPosInDir_FailsOnTopAndLeftEdges(t *testing.T) {
	if _, ok := NewPos(3, 0).InDir(North); ok {
		t.Error("(3,0).InDir(North) ok = true, want false")
	}
	if _, ok := NewPos(0, 3).InDir(West); ok {
		t.Error("(0,3).InDir(West) ok = true, want false")
	}
	got, ok := NewPos(3, 3).InDir(East)
	if !ok || got != NewPos(4, 3) {
		t.Errorf("(3,3).InDir(East) = %v, %v, want 4,3, true", got, ok)
	}
}

func TestDimInDir_FailsOnAllEdges(t *testing.T) {
	d := NewDim(5, 4)
	tests := []struct {
		p   Pos
		dir Direction
	}{
		{NewPos(2, 0), North},
		{NewPos(4, 1), East},
		{NewPos(2, 3), South},
		{NewPos(0, 1), West},
	}
	for _, tt := range tests {
		t.Run(tt.dir.String(), func(t *testing.T) {
			if q, ok := d.InDir(tt.p, tt.dir); ok {
				t.Errorf("InDir(%v, %v) = %v, true, want false", tt.p, tt.dir, q)
			}
		})
	}
}

func TestDirTo(t *testing.T) {
	p := NewPos(5, 5)
	tests := []struct {
		q    Pos
		want Direction
		ok   bool
	}{
		{NewPos(5, 1), North, true},
		{NewPos(9, 5), East, true},
		{NewPos(5, 6), South, true},
		{NewPos(0, 5), West, true},
		{NewPos(6, 6), North, false},
		{p, North, false},
	}
	for _, tt := range tests {
		got, ok := p.DirTo(tt.q)
		if ok != tt.ok || (ok && got != tt.want) {
			t.Errorf("DirTo(%v) = %v, %v, want %v, %v", tt.q, got, ok, tt.want, tt.ok)
		}
	}
	if _, ok := p.StepDirTo(NewPos(5, 3)); ok {
		t.Error("StepDirTo of a non adjacent cell succeeded")
	}
}

func TestDistances(t *testing.T) {
	a, b := NewPos(1, 2), NewPos(4, 6)
	if got := ManhattanDistance(a, b); got != 7 {
		t.Errorf("ManhattanDistance = %d, want 7", got)
	}
	if got := SqEuclideanDistance(a, b); got != 25 {
		t.Errorf("SqEuclideanDistance = %d, want 25", got)
	}
	if got := EuclideanDistance(a, b); got != 5 {
		t.Errorf("EuclideanDistance = %v, want 5", got)
	}
	if !Sides(a, NewPos(1, 3)) || Sides(a, NewPos(2, 3)) {
		t.Error("Sides must only accept orthogonal neighbours")
	}
}

func TestVerticalize(t *testing.T) {
	d := NewDim(30, 20)
	d.Verticalize(7)
	if d != NewDim(10, 50) {
		t.Errorf("Verticalize(30x20) = %v, want 10x50", d)
	}
	d = NewDim(30, 8)
	d.Verticalize(7)
	if d.W != 7 {
		t.Errorf("Verticalize(30x8).W = %d, want the minimum 7", d.W)
	}
}

func TestPosMap_DefaultAndRemove(t *testing.T) {
	m := NewPosMap(NewDim(4, 3), -1)
	p := NewPos(3, 2)
	if got := m.Get(p); got != -1 {
		t.Fatalf("Get on fresh map = %d, want -1", got)
	}
	m.Set(p, 7)
	if got := m.Remove(p); got != 7 {
		t.Errorf("Remove = %d, want 7", got)
	}
	if got := m.Get(p); got != -1 {
		t.Errorf("Get after Remove = %d, want -1", got)
	}
}

func TestPosSet_CountAndClear(t *testing.T) {
	s := NewPosSet(NewDim(6, 6))
	if !s.IsEmpty() {
		t.Fatal("new set is not empty")
	}
	s.Set(NewPos(1, 1), true)
	s.Set(NewPos(5, 5), true)
	s.Set(NewPos(5, 5), true)
	if got := s.Count(); got != 2 {
		t.Errorf("Count = %d, want 2", got)
	}
	if !s.IsNotEmpty() {
		t.Error("IsNotEmpty = false after Set")
	}
	s.Clear()
	if s.IsNotEmpty() {
		t.Error("set not empty after Clear")
	}
}
