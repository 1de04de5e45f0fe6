// internal/config/defaults.go
package config

// DefaultIntervalMs is the poll delay used by every marketplace badge.
const DefaultIntervalMs = 10000

const (
	DefaultTimeoutMs  = 5000
	DefaultRefreshMs  = 1000
	DefaultCookieName = "sessionid"
	DefaultBaseURL    = "http://localhost:8000"
)

// Default returns the marketplace badge set.
func Default() *Config {
	return &Config{
		Badgewatch: BadgewatchConfig{
			BaseURL:   DefaultBaseURL,
			TimeoutMs: DefaultTimeoutMs,
			Session: SessionConfig{
				CookieName: DefaultCookieName,
			},
			View: ViewConfig{
				RefreshMs: DefaultRefreshMs,
			},
			Badges: []BadgeConfig{
				{
					Name:           "buyer_waiting_orders",
					Endpoint:       "/warehouse/dashboard/buyer_order_counts/",
					RequireSuccess: true,
					Poll:           PollConfig{IntervalMs: DefaultIntervalMs},
					Targets: []TargetConfig{
						{
							ElementID:     "buyer-waiting-orders-badge",
							Mode:          "badge_text",
							Field:         "waiting_orders",
							TextElementID: "buyer-waiting-orders-count",
						},
					},
				},
				{
					Name:           "seller_order_counts",
					Endpoint:       "/warehouse/dashboard/order_counts/",
					RequireSuccess: true,
					Poll:           PollConfig{IntervalMs: DefaultIntervalMs},
					Targets: []TargetConfig{
						{ElementID: "seller-new-orders-count", Mode: "text", Field: "new_orders"},
						{ElementID: "seller-total-sales-count", Mode: "text", Field: "total_sales"},
					},
				},
				{
					Name:       "seller_notifications",
					Endpoint:   "/warehouse/api/seller/order-notifications/",
					SellerOnly: true,
					Poll:       PollConfig{IntervalMs: DefaultIntervalMs},
					Targets: []TargetConfig{
						{ElementID: "notif-counter", Mode: "badge", Field: "count"},
					},
				},
				{
					Name:           "sidebar_buyer_cart",
					Endpoint:       "/warehouse/dashboard/buyer_cart_count/",
					RequireSuccess: true,
					Gated:          true,
					Poll:           PollConfig{IntervalMs: DefaultIntervalMs},
					Targets: []TargetConfig{
						{ElementID: "sidebar-buyer-cart-badge", Mode: "badge", Field: "cart_count"},
					},
				},
				{
					Name:           "sidebar_orders",
					Endpoint:       "/warehouse/dashboard/order_counts/",
					RequireSuccess: true,
					Gated:          true,
					Poll:           PollConfig{IntervalMs: DefaultIntervalMs},
					Targets: []TargetConfig{
						{ElementID: "sidebar-seller-orders-badge", Mode: "badge", Field: "new_orders"},
					},
				},
			},
		},
	}
}
