// Package router contains routing setup for the HTTP delivery.
package router

import (
	"marketplace/internal/delivery/http/middleware"
	"marketplace/internal/delivery/http/router/handler"
	"marketplace/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// RouterParams collects every handler and middleware the router registers.
type RouterParams struct {
	fx.In

	UserHandler         *handler.UserHandler
	StoreHandler        *handler.StoreHandler
	ProductHandler      *handler.ProductHandler
	CampaignHandler     *handler.CampaignHandler
	InfluencerHandler   *handler.InfluencerHandler
	MessageHandler      *handler.MessageHandler
	NotificationHandler *handler.NotificationHandler
	ReviewHandler       *handler.ReviewHandler
	MediaHandler        *handler.MediaHandler
	AuthMiddleware      *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	params RouterParams
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{params: params}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	p := r.params
	authed := p.AuthMiddleware.Authenticate

	e.GET("/health", handler.HealthCheck)

	// Account and session routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", p.UserHandler.Register)
		authGroup.POST("/login", p.UserHandler.Login)
		authGroup.POST("/refresh", p.UserHandler.Refresh)
		authGroup.POST("/logout", p.UserHandler.Logout)
	}

	// Routes scoped to the authenticated caller
	meGroup := e.Group("/me", authed)
	{
		meGroup.GET("", p.UserHandler.GetProfile)
		meGroup.PUT("", p.UserHandler.UpdateProfile)
		meGroup.GET("/stores", p.StoreHandler.ListOwnStores)
		meGroup.GET("/conversations", p.MessageHandler.ListConversations)
		meGroup.GET("/applications", p.CampaignHandler.ListOwnApplications)
		meGroup.GET("/influencer", p.InfluencerHandler.GetOwnProfile)
		meGroup.PUT("/influencer", p.InfluencerHandler.UpdateProfile)
		meGroup.DELETE("/influencer", p.InfluencerHandler.ResetProfile)
		meGroup.GET("/notifications", p.NotificationHandler.ListNotifications)
		meGroup.POST("/notifications/read", p.NotificationHandler.MarkAllRead)
		meGroup.POST("/notifications/:id/read", p.NotificationHandler.MarkRead)
	}

	// Store and brand routes
	storeGroup := e.Group("/stores")
	{
		storeGroup.GET("", p.StoreHandler.ListStores)
		storeGroup.GET("/:id", p.StoreHandler.GetStore)
		storeGroup.GET("/:id/qrcode", p.StoreHandler.GetStoreShareQR)
		storeGroup.GET("/:id/reviews", p.ReviewHandler.ListStoreReviews)

		storeGroup.POST("", p.StoreHandler.CreateStore, authed)
		storeGroup.PUT("/:id", p.StoreHandler.UpdateStore, authed)
		storeGroup.DELETE("/:id", p.StoreHandler.DeleteStore, authed)
		storeGroup.POST("/:id/reviews", p.ReviewHandler.CreateReview, authed)
		storeGroup.POST("/:id/messages", p.MessageHandler.SendMessage, authed)
		storeGroup.GET("/:id/conversations", p.MessageHandler.ListStoreConversations, authed)
	}

	// Product and service listings share one surface; /services is an alias
	// so service-oriented clients get natural paths.
	for _, prefix := range []string{"/products", "/services"} {
		listingGroup := e.Group(prefix)
		listingGroup.GET("", p.ProductHandler.ListProducts)
		listingGroup.GET("/:id", p.ProductHandler.GetProduct)

		listingGroup.POST("", p.ProductHandler.CreateProduct, authed)
		listingGroup.PUT("/:id", p.ProductHandler.UpdateProduct, authed)
		listingGroup.DELETE("/:id", p.ProductHandler.DeleteProduct, authed)
		listingGroup.POST("/:id/media", p.MediaHandler.UploadProductMedia, authed)
	}

	// Review routes addressed by review ID
	reviewGroup := e.Group("/reviews", authed)
	{
		reviewGroup.PUT("/:id", p.ReviewHandler.UpdateReview)
		reviewGroup.DELETE("/:id", p.ReviewHandler.DeleteReview)
	}

	// Conversation routes
	conversationGroup := e.Group("/conversations", authed)
	{
		conversationGroup.GET("/:id", p.MessageHandler.GetConversation)
		conversationGroup.POST("/:id/messages", p.MessageHandler.ReplyAsStore)
	}

	// Campaign routes
	campaignGroup := e.Group("/campaigns")
	{
		campaignGroup.GET("", p.CampaignHandler.ListCampaigns)
		campaignGroup.GET("/:id", p.CampaignHandler.GetCampaign)

		campaignGroup.POST("", p.CampaignHandler.CreateCampaign, authed)
		campaignGroup.PUT("/:id", p.CampaignHandler.UpdateCampaign, authed)
		campaignGroup.POST("/:id/publish", p.CampaignHandler.PublishCampaign, authed)
		campaignGroup.DELETE("/:id", p.CampaignHandler.DeleteCampaign, authed)
		campaignGroup.GET("/:id/applications", p.CampaignHandler.ListApplications, authed)
		campaignGroup.POST("/:id/applications", p.CampaignHandler.ApplyToCampaign,
			authed, p.AuthMiddleware.RequireRole(entity.RoleInfluencer.String()))
		campaignGroup.POST("/:id/applications/:applicationId/select", p.CampaignHandler.SelectInfluencer, authed)
	}

	// Influencer profile routes
	influencerGroup := e.Group("/influencers")
	{
		influencerGroup.GET("", p.InfluencerHandler.ListInfluencers)
		influencerGroup.GET("/:id", p.InfluencerHandler.GetInfluencer)

		influencerGroup.POST("", p.InfluencerHandler.RegisterInfluencer, authed)
		influencerGroup.POST("/:id/approve", p.InfluencerHandler.ApproveInfluencer,
			authed, p.AuthMiddleware.RequireRole(entity.RoleAdmin.String()))
	}
}
