package main

// @title Storefront Service API
// @version 1.0
// @description This is the Storefront Service API with full observability (logging, tracing, metrics)
// @termsOfService http://swagger.io/terms/

// @contact.name API Support
// @contact.url http://github.com/tair/storefront
// @contact.email support@example.com

// @license.name MIT
// @license.url https://github.com/tair/storefront/blob/main/LICENSE

// @host localhost:8080
// @BasePath /

// @tag.name Products
// @tag.description Product catalog browsing endpoints

// @tag.name Cart
// @tag.description Shopping cart endpoints

// @tag.name Favorites
// @tag.description Favorites management endpoints

// @tag.name Health
// @tag.description Health check endpoints

// @tag.name Swagger
// @tag.description Swagger documentation endpoints
