package dto

import "github.com/shopspring/decimal"

// StatsResponse is shaped by the caller's role: only the fields relevant to
// that role are populated, the rest are omitted.
type StatsResponse struct {
	// ADMIN
	PendingApprovals *int64           `json:"pending_approvals,omitempty"`
	TotalAnimals     *int64           `json:"total_animals,omitempty"`
	PlatformRevenue  *decimal.Decimal `json:"platform_revenue,omitempty"`

	// RESCUE
	ActiveListings   *int64 `json:"active_listings,omitempty"`
	PendingInquiries *int64 `json:"pending_inquiries,omitempty"`

	// USER / DONOR / VET
	MyApplications   *int64           `json:"my_applications,omitempty"`
	Favorites        *int64           `json:"favorites,omitempty"`
	TotalContributed *decimal.Decimal `json:"total_contributed,omitempty"`
	ImpactCount      *int64           `json:"impact_count,omitempty"`
}
