package auth

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/vcarvalho/fiado/internal/domain"
	"github.com/vcarvalho/fiado/internal/dto"
	"github.com/vcarvalho/fiado/internal/service/authservice"
	"github.com/vcarvalho/fiado/pkg/auth"
	"github.com/vcarvalho/fiado/pkg/utils"
)

type Service interface {
	Authenticate(ctx context.Context, login, password string) (*domain.Account, error)
	CreateSession(ctx context.Context, accountID int64) (string, error)
	Logout(ctx context.Context, sessionID string) error
}

type AuthHandler struct {
	authService Service
	validator   *validator.Validate
	sessionTTL  time.Duration
}

func New(authService Service, sessionTTL time.Duration) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		validator:   validator.New(),
		sessionTTL:  sessionTTL,
	}
}

// LoginPage godoc
//
//	@Summary		Login form
//	@Description	Inform how to authenticate against the ledger
//	@Tags			Auth
//	@Produce		json
//	@Success		200	{object}	utils.Response
//	@Router			/login [get]
func (h *AuthHandler) LoginPage(w http.ResponseWriter, r *http.Request) {
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{
		Message: "Envie login e senha via POST para entrar",
	})
}

// Login godoc
//
//	@Summary		Authenticate operator
//	@Description	Check credentials and start a session via HttpOnly cookie
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.LoginRequestDTO	true	"Login request body"
//	@Success		200		{object}	dto.LoginResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		401		{object}	utils.Response	"Invalid credentials"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/login [post]
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := h.validator.Struct(req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Login e senha são obrigatórios")
		return
	}

	account, err := h.authService.Authenticate(r.Context(), req.Login, req.Password)
	if err != nil {
		if errors.Is(err, authservice.ErrInvalidCredentials) {
			utils.RespondWithError(w, http.StatusUnauthorized, "Usuário ou senha inválidos")
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	token, err := h.authService.CreateSession(r.Context(), account.ID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Error creating session")
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     auth.CookieName,
		Value:    token,
		Path:     "/",
		Expires:  time.Now().Add(h.sessionTTL),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	utils.RespondWithJSON(w, http.StatusOK, dto.LoginResponseDTO{
		Message: "Login efetuado com sucesso",
	})
}

// Logout godoc
//
//	@Summary		End session
//	@Description	Drop the server-side session, clear the cookie and go back to login
//	@Tags			Auth
//	@Success		303
//	@Router			/logout [get]
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if sess := auth.SessionFromContext(r.Context()); sess != nil {
		if err := h.authService.Logout(r.Context(), sess.ID); err != nil {
			utils.RespondWithError(w, http.StatusInternalServerError, "Error ending session")
			return
		}
	}

	http.SetCookie(w, &http.Cookie{
		Name:     auth.CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}
