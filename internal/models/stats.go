package models

// SiteStats totals are derived from collection sizes at read time;
// MonthlyVisitors is the only independently stored counter.
type SiteStats struct {
	MonthlyVisitors int64 `json:"monthlyVisitors"`
	TotalUsers      int64 `json:"totalUsers"`
	TotalReviews    int64 `json:"totalReviews"`
	TotalInquiries  int64 `json:"totalInquiries"`
}
