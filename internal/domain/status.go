package domain

import "strings"

// StockStatus classifies an inventory level against adjusted demand.
type StockStatus string

const (
	StatusCriticalUnderstocked StockStatus = "CRITICAL_UNDERSTOCKED"
	StatusUnderstocked         StockStatus = "UNDERSTOCKED"
	StatusNormal               StockStatus = "NORMAL"
	StatusOverstocked          StockStatus = "OVERSTOCKED"
	StatusCriticalOverstocked  StockStatus = "CRITICAL_OVERSTOCKED"
)

var stockStatusLabels = map[StockStatus]string{
	StatusCriticalUnderstocked: "Critical understock",
	StatusUnderstocked:         "Understocked",
	StatusNormal:               "Normal",
	StatusOverstocked:          "Overstocked",
	StatusCriticalOverstocked:  "Critical overstock",
}

// Label returns a human-readable label for a stock status.
func (s StockStatus) Label() string {
	if label, ok := stockStatusLabels[s]; ok {
		return label
	}

	return "Unknown"
}

// ParseStockStatus returns the status for a given label (case-insensitive).
func ParseStockStatus(value string) (StockStatus, bool) {
	status := StockStatus(strings.ToUpper(strings.TrimSpace(value)))
	_, ok := stockStatusLabels[status]

	return status, ok
}
