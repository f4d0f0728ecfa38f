package models

// CartEntry lives in the session store, never in postgres. Price, name and
// image are snapshotted at add-time so later menu edits do not alter an
// already-added entry.
type CartEntry struct {
	MenuItemID uint    `json:"menu_item_id"`
	Name       string  `json:"name"`
	UnitPrice  float64 `json:"unit_price"`
	ImageURL   string  `json:"image_url"`
	Quantity   int     `json:"quantity"`
}

type CartTotals struct {
	Subtotal    float64 `json:"subtotal"`
	DeliveryFee float64 `json:"delivery_fee"`
	Total       float64 `json:"total"`
}

// Flash is a one-shot message queued in the session and drained on the
// next page render.
type Flash struct {
	Level   string `json:"level"`
	Message string `json:"message"`
}
