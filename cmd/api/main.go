package main

import (
	"fmt"
	"net/http"

	"github.com/intempo-hq/timesheet-backend-go/internal/config"
	appHTTP "github.com/intempo-hq/timesheet-backend-go/internal/handler/http"
	"github.com/intempo-hq/timesheet-backend-go/internal/pkg/database"
	"github.com/intempo-hq/timesheet-backend-go/internal/pkg/jwt"
	"github.com/intempo-hq/timesheet-backend-go/internal/pkg/oauth"
	"github.com/intempo-hq/timesheet-backend-go/internal/pkg/usercache"
	"github.com/intempo-hq/timesheet-backend-go/internal/repository/postgresql"
	authService "github.com/intempo-hq/timesheet-backend-go/internal/service/auth"
	"github.com/intempo-hq/timesheet-backend-go/internal/service/companyhours"
	jobService "github.com/intempo-hq/timesheet-backend-go/internal/service/job"
	timesheetService "github.com/intempo-hq/timesheet-backend-go/internal/service/timesheet"
	userService "github.com/intempo-hq/timesheet-backend-go/internal/service/user"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	dsn := cfg.DatabaseURL()
	db, err := database.NewPostgreSQLDB(dsn)
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	userRepo := postgresql.NewUserRepository(db)
	jobRepo := postgresql.NewJobRepository(db)
	workItemRepo := postgresql.NewWorkItemRepository(db)
	dailyExpenseRepo := postgresql.NewDailyExpenseRepository(db)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)
	GoogleService := oauth.NewGoogleService(cfg.OAuth2Google.ClientID, cfg.OAuth2Google.ClientSecret, cfg.OAuth2Google.RedirectURL, cfg.OAuth2Google.Scopes)
	userCache := usercache.New(userRepo, cfg.UsersCache.TTL, nil)

	authSvc := authService.NewService(userRepo, JWTService)
	userSvc := userService.NewService(userRepo, userCache)
	jobSvc := jobService.NewService(jobRepo)
	timesheetSvc := timesheetService.NewService(db, userCache, workItemRepo, dailyExpenseRepo, jobRepo)
	companyHoursSvc := companyhours.NewService(userCache, workItemRepo, dailyExpenseRepo)

	authHandler := appHTTP.NewAuthHandler(JWTService, authSvc, GoogleService, cfg.App.FrontendURL)
	userHandler := appHTTP.NewUserHandler(userSvc)
	jobHandler := appHTTP.NewJobHandler(jobSvc)
	timesheetHandler := appHTTP.NewTimesheetHandler(timesheetSvc)
	companyHoursHandler := appHTTP.NewCompanyHoursHandler(companyHoursSvc)

	router := appHTTP.NewRouter(
		cfg,
		JWTService,
		authHandler,
		userHandler,
		jobHandler,
		timesheetHandler,
		companyHoursHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
