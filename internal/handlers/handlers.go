package handlers

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/vcarvalho/fiado/docs"
	authhandlers "github.com/vcarvalho/fiado/internal/handlers/auth"
	ledgerhandlers "github.com/vcarvalho/fiado/internal/handlers/ledger"
	statementhandlers "github.com/vcarvalho/fiado/internal/handlers/statement"
	"github.com/vcarvalho/fiado/internal/service"
	"github.com/vcarvalho/fiado/pkg/auth"
	"github.com/vcarvalho/fiado/pkg/utils"
)

type AuthHandler interface {
	LoginPage(w http.ResponseWriter, r *http.Request)
	Login(w http.ResponseWriter, r *http.Request)
	Logout(w http.ResponseWriter, r *http.Request)
}

type LedgerHandler interface {
	Dashboard(w http.ResponseWriter, r *http.Request)
	CustomerForm(w http.ResponseWriter, r *http.Request)
	CreateCustomer(w http.ResponseWriter, r *http.Request)
	History(w http.ResponseWriter, r *http.Request)
	ChargeForm(w http.ResponseWriter, r *http.Request)
	RecordCharge(w http.ResponseWriter, r *http.Request)
	RecordPayment(w http.ResponseWriter, r *http.Request)
	DeleteCustomer(w http.ResponseWriter, r *http.Request)
	Undo(w http.ResponseWriter, r *http.Request)
	RenameForm(w http.ResponseWriter, r *http.Request)
	RenameCustomer(w http.ResponseWriter, r *http.Request)
}

type StatementHandler interface {
	Download(w http.ResponseWriter, r *http.Request)
	Backup(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	AuthHandler      AuthHandler
	LedgerHandler    LedgerHandler
	StatementHandler StatementHandler

	sessions auth.SessionGetter
}

func New(s *service.Services, sessions auth.SessionGetter, databasePath string, sessionTTL time.Duration) *Handlers {
	return &Handlers{
		AuthHandler:      authhandlers.New(s.AuthService, sessionTTL),
		LedgerHandler:    ledgerhandlers.New(s.LedgerService, s.UndoService),
		StatementHandler: statementhandlers.New(s.StatementService, databasePath),
		sessions:         sessions,
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
	)
	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		utils.RespondWithError(w, http.StatusNotFound, "Página não encontrada")
	})
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))

	r.Get("/login", h.AuthHandler.LoginPage)
	r.Post("/login", h.AuthHandler.Login)

	r.Group(func(r chi.Router) {
		r.Use(auth.RequireSession(h.sessions))

		r.Get("/logout", h.AuthHandler.Logout)
		r.Get("/", h.LedgerHandler.Dashboard)

		r.Get("/cliente", h.LedgerHandler.CustomerForm)
		r.Post("/cliente", h.LedgerHandler.CreateCustomer)
		r.Get("/cliente/{id}", h.LedgerHandler.History)

		r.Get("/lancar/{id}", h.LedgerHandler.ChargeForm)
		r.Post("/lancar/{id}", h.LedgerHandler.RecordCharge)
		r.Post("/pagamento/{id}", h.LedgerHandler.RecordPayment)
		r.Get("/excluir/{id}", h.LedgerHandler.DeleteCustomer)
		r.Post("/desfazer", h.LedgerHandler.Undo)

		r.Get("/editar/{id}", h.LedgerHandler.RenameForm)
		r.Post("/editar/{id}", h.LedgerHandler.RenameCustomer)

		r.Get("/baixar/{id}", h.StatementHandler.Download)
		r.Get("/backup", h.StatementHandler.Backup)

		// Routes kept from an earlier incarnation of the app.
		r.Get("/adicionar", redirectTo("/cliente"))
		r.Get("/historico/{id}", func(w http.ResponseWriter, r *http.Request) {
			http.Redirect(w, r, "/cliente/"+chi.URLParam(r, "id"), http.StatusMovedPermanently)
		})
	})

	return r
}

func redirectTo(target string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, target, http.StatusMovedPermanently)
	}
}
