package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/sailshr/hrms-backend-go/internal/config"
	"github.com/sailshr/hrms-backend-go/internal/fixtures"
	appHTTP "github.com/sailshr/hrms-backend-go/internal/handler/http"
	"github.com/sailshr/hrms-backend-go/internal/pkg/jwt"
	"github.com/sailshr/hrms-backend-go/internal/repository/memory"
	attendanceService "github.com/sailshr/hrms-backend-go/internal/service/attendance"
	serviceAuth "github.com/sailshr/hrms-backend-go/internal/service/auth"
	dashboardService "github.com/sailshr/hrms-backend-go/internal/service/dashboard"
	employeeService "github.com/sailshr/hrms-backend-go/internal/service/employee"
	"github.com/sailshr/hrms-backend-go/internal/service/leave"
	"github.com/sailshr/hrms-backend-go/internal/service/master"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Error loading config: ", err)
	}

	userRepo := memory.NewUserRepository(fixtures.AuthUsers())
	departmentRepo := memory.NewDepartmentRepository(fixtures.Departments())
	employeeRepo := memory.NewEmployeeRepository(fixtures.Employees())
	attendanceRepo := memory.NewAttendanceRepository(fixtures.Attendance())
	leaveRequestRepo := memory.NewLeaveRequestRepository(fixtures.LeaveRequests())
	leaveBalanceRepo := memory.NewLeaveBalanceRepository(fixtures.LeaveBalances())

	jwtService, err := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)
	if err != nil {
		log.Fatal("Error initializing JWT service: ", err)
	}

	authSvc := serviceAuth.NewAuthService(userRepo, jwtService)
	employeeSvc := employeeService.NewEmployeeService(employeeRepo, departmentRepo)
	attendanceSvc := attendanceService.NewAttendanceService(attendanceRepo, employeeRepo, userRepo)
	leaveSvc := leave.NewLeaveService(leaveRequestRepo, leaveBalanceRepo, employeeRepo, userRepo)
	masterSvc := master.NewMasterService(departmentRepo, employeeRepo, leaveRequestRepo)
	dashboardSvc := dashboardService.NewDashboardService(employeeRepo, attendanceRepo, leaveRequestRepo)

	authHandler := appHTTP.NewAuthHandler(authSvc)
	employeeHandler := appHTTP.NewEmployeeHandler(employeeSvc)
	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc)
	leaveHandler := appHTTP.NewLeaveHandler(leaveSvc)
	masterHandler := appHTTP.NewMasterHandler(masterSvc)
	dashboardHandler := appHTTP.NewDashboardHandler(dashboardSvc)

	router := appHTTP.NewRouter(
		jwtService,
		authHandler,
		employeeHandler,
		attendanceHandler,
		leaveHandler,
		masterHandler,
		dashboardHandler,
		cfg.CORS.AllowedOrigins,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		log.Fatal("Server error: ", err)
	}
}
