package http

import (
	"net/http"
	"time"

	"github.com/AlibekovAA/notes-api/internal/auth/service"
	commonerrors "github.com/AlibekovAA/notes-api/internal/common/errors"
	commonhttp "github.com/AlibekovAA/notes-api/internal/common/http"
	"github.com/AlibekovAA/notes-api/internal/common/logger"
)

type credentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type tokenResponse struct {
	Token string `json:"token"`
}

type Handler struct {
	auth *service.AuthService
	log  *logger.Logger
}

func NewHandler(auth *service.AuthService, requestTimeout time.Duration, log *logger.Logger) http.Handler {
	h := &Handler{auth: auth, log: log}
	timeout := commonhttp.WithTimeout(requestTimeout)

	mux := http.NewServeMux()
	mux.HandleFunc("/api/auth/register", commonhttp.RequireMethod(http.MethodPost)(timeout(h.register)))
	mux.HandleFunc("/api/auth/login", commonhttp.RequireMethod(http.MethodPost)(timeout(h.login)))
	return mux
}

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := commonhttp.DecodeJSON(r, &req); err != nil {
		h.log.WithFields(r.Context(), logger.Fields{
			"action": "register_invalid_json",
		}).Warnf("register failed: invalid json: %v", err)
		commonhttp.HandleError(w, r, commonerrors.ErrInvalidPayload.WithCause(err), h.log)
		return
	}

	err := h.auth.Register(r.Context(), service.RegisterInput{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		commonhttp.HandleError(w, r, err, h.log)
		return
	}

	commonhttp.WriteMessage(w, http.StatusCreated, "User registered successfully")
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := commonhttp.DecodeJSON(r, &req); err != nil {
		h.log.WithFields(r.Context(), logger.Fields{
			"action": "login_invalid_json",
		}).Warnf("login failed: invalid json: %v", err)
		commonhttp.HandleError(w, r, commonerrors.ErrInvalidPayload.WithCause(err), h.log)
		return
	}

	result, err := h.auth.Login(r.Context(), service.LoginInput{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		commonhttp.HandleError(w, r, err, h.log)
		return
	}

	commonhttp.WriteJSON(w, http.StatusOK, tokenResponse{Token: result.Token})
}
