package handlers

// @title Lead Management API
// @version 1.0
// @description CRUD backend for leads and their interests with a public lead-capture form

// @host localhost:8081
// @BasePath /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

// @tag.name lead
// @tag.description Lead management operations

// @tag.name interest
// @tag.description Interest management operations

// @tag.name forms
// @tag.description Public lead-capture form
