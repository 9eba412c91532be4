package router

import (
	"net/http"

	"github.com/evhammar/staffdir/internal/api/http/handler"
	"github.com/evhammar/staffdir/internal/api/http/middleware"
	"github.com/evhammar/staffdir/internal/logger"
)

// Router wires the employee directory handlers into an HTTP mux.
type Router struct {
	employeeService handler.EmployeeService
	logger          *logger.Logger
	frontendDir     string
}

// New creates a new Router instance. frontendDir is the directory of
// built web assets to serve from the process root; empty disables it.
func New(employeeService handler.EmployeeService, logger *logger.Logger, frontendDir string) *Router {
	return &Router{
		employeeService: employeeService,
		logger:          logger,
		frontendDir:     frontendDir,
	}
}

// Register builds the route table and wraps it with request logging.
func (r *Router) Register() http.Handler {
	mux := http.NewServeMux()

	employeeHandler := handler.NewEmployee(r.employeeService, r.logger)
	mux.HandleFunc("POST /api/employees", employeeHandler.Create)
	mux.HandleFunc("GET /api/employees", employeeHandler.List)
	mux.HandleFunc("DELETE /api/employees/{id}", employeeHandler.Delete)

	if r.frontendDir != "" {
		mux.Handle("/", http.FileServer(http.Dir(r.frontendDir)))
	}

	logging := middleware.NewLogging(r.logger)

	return logging.Handle(mux)
}
