package main

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/sgarcianetcol/Recargos-Nocturnos/internal/config"
	appHTTP "github.com/sgarcianetcol/Recargos-Nocturnos/internal/handler/http"
	"github.com/sgarcianetcol/Recargos-Nocturnos/internal/pkg/cron"
	"github.com/sgarcianetcol/Recargos-Nocturnos/internal/pkg/database"
	"github.com/sgarcianetcol/Recargos-Nocturnos/internal/pkg/jwt"
	"github.com/sgarcianetcol/Recargos-Nocturnos/internal/pkg/oauth"
	"github.com/sgarcianetcol/Recargos-Nocturnos/internal/pkg/workerpool"
	"github.com/sgarcianetcol/Recargos-Nocturnos/internal/repository/postgresql"
	authService "github.com/sgarcianetcol/Recargos-Nocturnos/internal/service/auth"
	employeeService "github.com/sgarcianetcol/Recargos-Nocturnos/internal/service/employee"
	holidayService "github.com/sgarcianetcol/Recargos-Nocturnos/internal/service/holiday"
	payconfigService "github.com/sgarcianetcol/Recargos-Nocturnos/internal/service/payconfig"
	payrollService "github.com/sgarcianetcol/Recargos-Nocturnos/internal/service/payroll"
	shiftService "github.com/sgarcianetcol/Recargos-Nocturnos/internal/service/shift"
	workdayService "github.com/sgarcianetcol/Recargos-Nocturnos/internal/service/workday"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}
	defer db.Close()

	userRepo := postgresql.NewUserRepository(db)
	jwtRepo := postgresql.NewJWTRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	shiftRepo := postgresql.NewShiftRepository(db)
	holidayRepo := postgresql.NewHolidayRepository(db)
	payConfigRepo := postgresql.NewPayConfigRepository(db)
	workdayRepo := postgresql.NewWorkdayRepository(db)

	jwtSvc := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)
	googleSvc := oauth.NewGoogleService(cfg.OAuth2Google.ClientID, cfg.OAuth2Google.ClientSecret, cfg.OAuth2Google.RedirectURL, cfg.OAuth2Google.Scopes)

	bulkPool := workerpool.NewWorkerPool(cfg.App.BulkWorkers, cfg.App.BulkWorkers*4)
	defer bulkPool.Close()

	authSvc := authService.NewAuthService(db, userRepo, jwtSvc, jwtRepo)
	employeeSvc := employeeService.NewEmployeeService(employeeRepo)
	shiftSvc := shiftService.NewShiftService(shiftRepo)
	holidaySvc := holidayService.NewHolidayService(holidayRepo)
	payConfigSvc := payconfigService.NewPayConfigService(payConfigRepo)
	workdaySvc := workdayService.NewWorkdayService(postgresql.NewTxRunner(db), workdayRepo, employeeRepo, shiftSvc, payConfigSvc, holidaySvc, bulkPool)
	payrollSvc := payrollService.NewPayrollService(workdayRepo, employeeRepo, slog.Default())

	scheduler := cron.NewScheduler()
	cron.NewHolidayJobs(holidaySvc).RegisterJobs(scheduler)
	scheduler.Start()
	defer scheduler.Stop()

	router := appHTTP.NewRouter(jwtSvc, cfg.App.FrontendURL, cfg.App.Env, appHTTP.Handlers{
		Auth:      appHTTP.NewAuthHandler(jwtSvc, authSvc, googleSvc, cfg.App.FrontendURL),
		Employee:  appHTTP.NewEmployeeHandler(employeeSvc),
		Shift:     appHTTP.NewShiftHandler(shiftSvc),
		Holiday:   appHTTP.NewHolidayHandler(holidaySvc),
		PayConfig: appHTTP.NewPayConfigHandler(payConfigSvc),
		Workday:   appHTTP.NewWorkdayHandler(workdaySvc),
		Payroll:   appHTTP.NewPayrollHandler(payrollSvc),
	})

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
