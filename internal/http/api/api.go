// Package api registers the HTTP routing surface over the store layer.
package api

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rtservizi/fieldtrack/internal/config"
	"github.com/rtservizi/fieldtrack/internal/http/api/handlers"
	"github.com/rtservizi/fieldtrack/internal/security"
	"github.com/rtservizi/fieldtrack/internal/store"
)

// RegisterRoutes registers all routes, middleware, and handlers.
func RegisterRoutes(r *gin.Engine, st *store.Store, jwtCfg config.JWTConfig) {
	if r == nil || st == nil {
		return
	}

	healthHandler := handlers.NewHealthHandler(st)
	r.GET("/healthz", healthHandler.Healthz)

	v1 := r.Group("/api/v1")

	authHandler := handlers.NewAuthHandler(st, jwtCfg)
	v1.POST("/login", authHandler.Login)

	authed := v1.Group("")
	authed.Use(authMiddleware(st, jwtCfg))

	userHandler := handlers.NewUserHandler(st)
	authed.POST("/users", userHandler.Create)
	authed.GET("/users", userHandler.List)
	authed.GET("/users/:id", userHandler.Get)
	authed.DELETE("/users/:id", userHandler.Delete)

	clientHandler := handlers.NewClientHandler(st)
	authed.POST("/clients", clientHandler.Create)
	authed.GET("/clients", clientHandler.List)
	authed.DELETE("/clients/:id", clientHandler.Delete)

	plantHandler := handlers.NewPlantHandler(st)
	authed.GET("/clients/:id/plants", plantHandler.ListForClient)
	authed.POST("/plants", plantHandler.Create)
	authed.DELETE("/plants/:id", plantHandler.Delete)

	machineHandler := handlers.NewMachineHandler(st)
	authed.GET("/plants/:id/machines", machineHandler.ListForPlant)
	authed.GET("/machines", machineHandler.List)
	authed.POST("/machines", machineHandler.Create)
	authed.DELETE("/machines/:id", machineHandler.Delete)

	commissionHandler := handlers.NewCommissionHandler(st)
	authed.POST("/commissions", commissionHandler.Create)
	authed.GET("/commissions", commissionHandler.List)
	authed.DELETE("/commissions/:id", commissionHandler.Delete)

	reportHandler := handlers.NewReportHandler(st)
	authed.POST("/reports", reportHandler.Create)
	authed.GET("/reports", reportHandler.List)
	authed.GET("/reports/months", reportHandler.Months)
	authed.GET("/reports/month", reportHandler.ListByMonth)
	authed.GET("/reports/interval", reportHandler.ListInInterval)
	authed.GET("/reports/:id", reportHandler.Get)
	authed.PUT("/reports/:id", reportHandler.Edit)
	authed.DELETE("/reports/:id", reportHandler.Delete)
}

// authMiddleware validates login JWTs and loads the acting user into the
// request context.
func authMiddleware(st *store.Store, jwtCfg config.JWTConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing authorization header"})
			return
		}

		token := strings.TrimPrefix(authHeader, "Bearer ")
		if token == authHeader {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid authorization format"})
			return
		}
		token = strings.TrimSpace(token)
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "empty token"})
			return
		}

		claims, errJWT := security.ParseUserToken(jwtCfg.Secret, token)
		if errJWT != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}

		user, errFind := st.GetUser(c.Request.Context(), claims.UserID)
		if errFind != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "user not found"})
			return
		}

		c.Set(handlers.ContextUserKey, user)
		c.Next()
	}
}
