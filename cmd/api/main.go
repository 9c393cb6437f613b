package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/acctfirm/backoffice-go/internal/config"
	appHTTP "github.com/acctfirm/backoffice-go/internal/handler/http"
	"github.com/acctfirm/backoffice-go/internal/pkg/database"
	"github.com/acctfirm/backoffice-go/internal/pkg/jwt"
	"github.com/acctfirm/backoffice-go/internal/repository/postgresql"
	payrollService "github.com/acctfirm/backoffice-go/internal/service/payroll"
	snapshotService "github.com/acctfirm/backoffice-go/internal/service/snapshot"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil)).With(
		slog.String("app", "backoffice-payroll"),
		slog.String("env", cfg.App.Env),
	)

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	employeeRepo := postgresql.NewEmployeeRepository(db)
	recordSource := postgresql.NewRecordSource(db)
	settingsProvider := postgresql.NewSettingsProvider(db, logger)
	snapshotRepo := postgresql.NewSnapshotRepository(db)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret)
	payrollSvc := payrollService.NewService(employeeRepo, recordSource, settingsProvider)
	snapshotSvc := snapshotService.NewService(employeeRepo, payrollSvc, snapshotRepo, logger)

	payrollHandler := appHTTP.NewPayrollHandler(payrollSvc)
	snapshotHandler := appHTTP.NewSnapshotHandler(snapshotSvc, JWTService)
	settingsHandler := appHTTP.NewSettingsHandler(settingsProvider)

	router := appHTTP.NewRouter(
		cfg.App.Env,
		JWTService,
		payrollHandler,
		snapshotHandler,
		settingsHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
