package services

// ServiceContainer bundles every service facade handed to the HTTP layer.
type ServiceContainer struct {
	Token       TokenSvcFacade
	GoogleOAuth GoogleOAuthSvcFacade
	User        UserSvcFacade
	Admin       AdminSvcFacade
	Content     ContentSvcFacade
	Roadmap     RoadmapSvcFacade
	Engagement  EngagementSvcFacade
}
