package adminapi

// InitRouter registers all admin API routes. The webserver must be
// initialized first.
func InitRouter() {
	registerAuthRoutes()
	registerProductRoutes()
	registerImageRoutes()
	registerRecommendRoutes()
	registerTransferRoutes()
	registerSystemRoutes()
}
