package domain

import "testing"

func TestStockStatusLabel(t *testing.T) {
	testCases := []struct {
		status   StockStatus
		expected string
	}{
		{StatusCriticalUnderstocked, "Critical understock"},
		{StatusNormal, "Normal"},
		{StockStatus("BOGUS"), "Unknown"},
	}

	for _, tc := range testCases {
		if got := tc.status.Label(); got != tc.expected {
			t.Errorf("Label(%s) = %s, expected %s", tc.status, got, tc.expected)
		}
	}
}

func TestParseStockStatus(t *testing.T) {
	status, ok := ParseStockStatus("critical_overstocked")
	if !ok || status != StatusCriticalOverstocked {
		t.Errorf("ParseStockStatus(critical_overstocked) = %s, %v", status, ok)
	}

	if _, ok := ParseStockStatus("nonsense"); ok {
		t.Error("ParseStockStatus(nonsense) should not match")
	}
}
