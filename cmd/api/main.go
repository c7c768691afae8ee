package main

import (
	"fmt"
	"net/http"

	"github.com/studiopaghe/comporto-backend-go/internal/config"
	"github.com/studiopaghe/comporto-backend-go/internal/domain/absence"
	"github.com/studiopaghe/comporto-backend-go/internal/domain/agreement"
	"github.com/studiopaghe/comporto-backend-go/internal/domain/employee"
	"github.com/studiopaghe/comporto-backend-go/internal/domain/user"
	appHTTP "github.com/studiopaghe/comporto-backend-go/internal/handler/http"
	"github.com/studiopaghe/comporto-backend-go/internal/pkg/database"
	"github.com/studiopaghe/comporto-backend-go/internal/pkg/jwt"
	"github.com/studiopaghe/comporto-backend-go/internal/repository/memory"
	"github.com/studiopaghe/comporto-backend-go/internal/repository/postgresql"
	absenceService "github.com/studiopaghe/comporto-backend-go/internal/service/absence"
	agreementService "github.com/studiopaghe/comporto-backend-go/internal/service/agreement"
	serviceAuth "github.com/studiopaghe/comporto-backend-go/internal/service/auth"
	employeeService "github.com/studiopaghe/comporto-backend-go/internal/service/employee"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	var (
		db            *database.DB
		userRepo      user.UserRepository
		agreementRepo agreement.AgreementRepository
		employeeRepo  employee.EmployeeRepository
		absenceRepo   absence.AbsenceRepository
	)

	switch cfg.Store.Driver {
	case "postgres":
		db, err = database.NewPostgreSQLDB(cfg.DatabaseURL())
		if err != nil {
			fmt.Println("Error connecting to database:", err)
			return
		}
		userRepo = postgresql.NewUserRepository(db)
		agreementRepo = postgresql.NewAgreementRepository(db)
		employeeRepo = postgresql.NewEmployeeRepository(db)
		absenceRepo = postgresql.NewAbsenceRepository(db)
	case "memory":
		store := memory.NewStore()
		userRepo = store.Users()
		agreementRepo = store.Agreements()
		employeeRepo = store.Employees()
		absenceRepo = store.Absences()
	}

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)

	authSvc := serviceAuth.NewAuthService(userRepo, JWTService)
	agreementSvc := agreementService.NewAgreementService(db, agreementRepo)
	employeeSvc := employeeService.NewEmployeeService(employeeRepo, agreementRepo)
	absenceSvc := absenceService.NewAbsenceService(absenceRepo, employeeRepo)

	authHandler := appHTTP.NewAuthHandler(JWTService, authSvc)
	agreementHandler := appHTTP.NewAgreementHandler(agreementSvc)
	employeeHandler := appHTTP.NewEmployeeHandler(employeeSvc)
	absenceHandler := appHTTP.NewAbsenceHandler(absenceSvc)

	router := appHTTP.NewRouter(cfg, JWTService, authHandler, agreementHandler, employeeHandler, absenceHandler)

	addr := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Println("Server running on port", cfg.App.Port)
	if err := http.ListenAndServe(addr, router); err != nil {
		fmt.Println("Error starting server:", err)
	}
}
