package dashboard

// DashboardResponse is the landing page summary for the caller's scope.
type DashboardResponse struct {
	TotalEmployees  int64  `json:"total_employees"`
	AttendanceToday int64  `json:"attendance_today"`
	SiteCount       int64  `json:"site_count"`
	ScopeLabel      string `json:"scope_label"`
	Role            string `json:"role"`
	Date            string `json:"date"` // Format: "YYYY-MM-DD"
}
