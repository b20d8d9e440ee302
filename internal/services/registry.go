package services

// ServiceContainer holds every service the application wires at startup.
type ServiceContainer struct {
	UserService           UserService
	OrganizationService   OrganizationService
	JobService            JobService
	VendorService         VendorService
	ApplicationService    ApplicationService
	ScoringService        ScoringService
	SearchService         SearchService
	RecommendationService RecommendationService
	NotificationService   NotificationService
	AlertService          AlertService
}
