package handler

import "testing"

func TestAmountToCents(t *testing.T) {
	tests := []struct {
		name   string
		amount float64
		want   int64
	}{
		{"whole", 10, 1000},
		{"two decimals", 10.55, 1055},
		{"float noise rounds up", 19.99, 1999},
		{"half cent rounds", 0.005, 1},
		{"zero", 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := amountToCents(tt.amount); got != tt.want {
				t.Fatalf("got=%d want=%d", got, tt.want)
			}
		})
	}
}

func TestCentsToAmount(t *testing.T) {
	if got := centsToAmount(1055); got != 10.55 {
		t.Fatalf("got=%v", got)
	}
}
