package models

import "testing"

func TestIsValidOrderStatus(t *testing.T) {
	valid := []string{"pending", "confirmed", "preparing", "out_for_delivery", "delivered", "cancelled"}
	for _, status := range valid {
		if !IsValidOrderStatus(status) {
			t.Errorf("expected %q to be valid", status)
		}
	}

	invalid := []string{"", "shipped", "PENDING", "canceled", "done"}
	for _, status := range invalid {
		if IsValidOrderStatus(status) {
			t.Errorf("expected %q to be rejected", status)
		}
	}
}
