package bitutil

import "testing"

func TestBitArrayGetSet(t *testing.T) {
	ba := NewBitArray(33)
	for i := 0; i < 33; i++ {
		if ba.Get(i) {
			t.Errorf("bit %d should not be set", i)
		}
	}
	ba.Set(0)
	ba.Set(31)
	ba.Set(32)
	if !ba.Get(0) || !ba.Get(31) || !ba.Get(32) {
		t.Error("bits should be set")
	}
	if ba.Get(1) || ba.Get(30) {
		t.Error("bits should not be set")
	}
}

func TestBitArrayAppendBits(t *testing.T) {
	ba := &BitArray{}
	ba.AppendBits(0x5, 3)
	ba.AppendBits(0, 2)
	ba.AppendBits(0xFFF, 12)
	if ba.Size() != 17 {
		t.Fatalf("Size = %d, want 17", ba.Size())
	}
	if got, want := ba.String(), "10100111111111111"; got != want {
		t.Errorf("String = %q, want %q", got, want)
	}
}

func TestBitArrayAppendAcrossWords(t *testing.T) {
	ba := &BitArray{}
	for i := 0; i < 10; i++ {
		ba.AppendBits(0x2AB, 10)
	}
	if ba.Size() != 100 {
		t.Fatalf("Size = %d, want 100", ba.Size())
	}
	for i := 0; i < 10; i++ {
		if got := ba.Extract(i*10, 10); got != 0x2AB {
			t.Errorf("Extract(%d, 10) = %#x, want 0x2ab", i*10, got)
		}
	}
}

func TestBitArrayExtract(t *testing.T) {
	ba := ParseBitArray("0000 1100 0111 1")
	tests := []struct {
		from, n, want int
	}{
		{0, 4, 0},
		{4, 4, 12},
		{8, 5, 15},
		{11, 4, 0xC},
		{0, 13, 0x18F},
	}
	for _, tt := range tests {
		if got := ba.Extract(tt.from, tt.n); got != tt.want {
			t.Errorf("Extract(%d, %d) = %d, want %d", tt.from, tt.n, got, tt.want)
		}
	}
}

func TestBitArrayAppendBitArray(t *testing.T) {
	a := ParseBitArray("101")
	b := ParseBitArray("0011")
	a.AppendBitArray(b)
	if got := a.String(); got != "1010011" {
		t.Errorf("String = %q, want 1010011", got)
	}
}

func TestBitArrayClone(t *testing.T) {
	a := ParseBitArray("1001")
	c := a.Clone()
	c.AppendBit(true)
	if a.Size() != 4 || c.Size() != 5 {
		t.Fatalf("sizes = %d, %d", a.Size(), c.Size())
	}
	if c.String() != "10011" {
		t.Errorf("clone = %q", c.String())
	}
}
