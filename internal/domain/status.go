package domain

import "time"

// SiteStatus is the admin dashboard summary.
type SiteStatus struct {
	TotalMessages    int       `json:"total_messages"`
	NewMessages      int       `json:"new_messages"`
	TotalProjects    int       `json:"total_projects"`
	FeaturedProjects int       `json:"featured_projects"`
	TotalServices    int       `json:"total_services"`
	FeaturedServices int       `json:"featured_services"`
	OpenJobs         int       `json:"open_jobs"`
	NewApplications  int       `json:"new_applications"`
	DatabaseHealthy  bool      `json:"database_healthy"`
	CacheHealthy     bool      `json:"cache_healthy"`
	ConnectedAdmins  int       `json:"connected_admins"`
	ServerTime       time.Time `json:"server_time"`
}
