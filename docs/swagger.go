package docs

// @title NGO Discovery API
// @version 1.0
// @description Catalog browsing, favorites, event registration, reviews, news and rule-based recommendations for an NGO discovery platform.
// @termsOfService http://swagger.io/terms/

// @contact.name API Support
// @contact.url http://www.swagger.io/support
// @contact.email support@swagger.io

// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080
// @BasePath /
// @schemes http https
