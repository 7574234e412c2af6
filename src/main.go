package main

import (
	"io"
	"log"
	"net/http"
	"os"
	"path"
	"strings"

	"hrms/src/boot"
	"hrms/src/config"
	"hrms/src/controllers"
	"hrms/src/db"
	"hrms/src/middlewares"
	"hrms/src/utils"

	"github.com/covalenthq/lumberjack"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	_ "github.com/joho/godotenv/autoload"
	"gorm.io/gorm"
)

const (
	apiPrefix string = "/api"
)

var notblank validator.Func = func(fl validator.FieldLevel) bool {
	value, ok := fl.Field().Interface().(string)
	if !ok {
		return false
	}
	return strings.TrimSpace(value) != ""
}

func registerValidations() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterValidation("notblank", notblank)
	}
}

func setupRouter() *gin.Engine {
	router := gin.Default()
	router.Use(requestIDMiddleware)
	router.GET("/", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"success": true, "message": "HRMS API is running"})
	})
	router.NoRoute(func(ctx *gin.Context) {
		ctx.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Route not found"})
	})
	return router
}

func requestIDMiddleware(ctx *gin.Context) {
	rid := ctx.GetHeader("X-Request-ID")
	if rid == "" {
		rid = uuid.NewString()
	}
	ctx.Set("request_id", rid)
	ctx.Header("X-Request-ID", rid)
}

func apiGroup(g *gin.Engine) *gin.RouterGroup {
	return g.Group(apiPrefix)
}

func authRoutes(g *gin.Engine, d *gorm.DB) *gin.RouterGroup {
	api := apiGroup(g)
	auth := api.Group("/auth")
	auth.
		POST("/register", func(ctx *gin.Context) {
			result, err := controllers.AuthRegister(d, ctx)
			if err != nil {
				utils.RespondError(ctx, err)
				return
			}
			ctx.JSON(http.StatusCreated, gin.H{
				"success": true,
				"message": "Organisation registered successfully",
				"token":   result.Token,
				"user":    result.User,
			})
		}).
		POST("/login", func(ctx *gin.Context) {
			result, err := controllers.AuthLogin(d, ctx)
			if err != nil {
				utils.RespondError(ctx, err)
				return
			}
			ctx.JSON(http.StatusOK, gin.H{
				"success": true,
				"message": "Login successful",
				"token":   result.Token,
				"user":    result.User,
			})
		})
	return auth
}

func protectedRoutes(g *gin.Engine, d *gorm.DB) *gin.RouterGroup {
	authorized := apiGroup(g)
	authorized.Use(middlewares.AuthMiddleware(config.JWTSecret()))
	employeeHandlers(authorized, d)
	teamHandlers(authorized, d)
	return authorized
}

func setupCors(router *gin.Engine) {
	apiEnv := os.Getenv("API_ENV")
	if apiEnv == "local" || apiEnv == "" {
		router.Use(cors.Default())
		return
	}
	appHost := os.Getenv("APP_HOST")
	cc := cors.DefaultConfig()
	cc.AllowMethods = append(cc.AllowMethods, "PUT", "DELETE")
	cc.AllowHeaders = append(cc.AllowHeaders, "Origin", "Authorization")
	cc.AllowCredentials = true
	cc.AllowAllOrigins = false
	cc.AllowOrigins = []string{appHost}
	router.Use(cors.New(cc))
}

func initLogger() {
	cwd, _ := os.Getwd()
	serverLogs := path.Join(cwd, "logs", "server.log")
	apiLogs := path.Join(cwd, "logs", "api.log")

	f, _ := os.Create(apiLogs)
	gin.DefaultWriter = io.MultiWriter(f, os.Stdout)
	log.SetOutput(&lumberjack.Logger{
		Filename:   serverLogs,
		MaxSize:    500,
		MaxBackups: 3,
		MaxAge:     30,
		Compress:   true,
	})
}

func main() {
	initLogger()

	d, err := db.Connect(config.GetDSN())
	if err != nil {
		log.Fatalf("Error connecting to database: %s\n", err.Error())
	}
	defer func() {
		if err := db.Close(d); err != nil {
			log.Printf("Error closing database: %s\n", err.Error())
		}
	}()

	if err := boot.InitDb(d); err != nil {
		log.Fatalf("error migration: %s\n", err.Error())
	}

	registerValidations()

	router := setupRouter()
	setupCors(router)
	authRoutes(router, d)
	protectedRoutes(router, d)

	if err := router.Run(":" + config.Port()); err != nil {
		log.Fatalf("Error starting server: %s\n", err.Error())
	}
}
