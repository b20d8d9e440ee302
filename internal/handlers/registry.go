package handlers

// AppHandlers holds every HTTP handler the router mounts.
type AppHandlers struct {
	UserHandler         *UserHandler
	OrganizationHandler *OrganizationHandler
	JobHandler          *JobHandler
	VendorHandler       *VendorHandler
	ApplicationHandler  *ApplicationHandler
	ScoringHandler      *ScoringHandler
	SearchHandler       *SearchHandler
	NotificationHandler *NotificationHandler
	AlertHandler        *AlertHandler
}
