package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/brightsmile/clinic-api/internal/application"
	repo "github.com/brightsmile/clinic-api/internal/domain/repository"
	"github.com/brightsmile/clinic-api/pkg/response"
	"github.com/brightsmile/clinic-api/pkg/validation"
)

type AccountHandler struct {
	Svc    *application.AccountService
	Logger *logrus.Logger
}

func NewAccountHandler(svc *application.AccountService, logger *logrus.Logger) *AccountHandler {
	return &AccountHandler{Svc: svc, Logger: logger}
}

type registerRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,pwd"`
}

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Register POST /user
func (h *AccountHandler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Logger.WithField("details", validation.ToDetails(err)).Debug("invalid register payload")
		response.Error(c, http.StatusBadRequest, "invalid payload")
		return
	}
	res, err := h.Svc.Register(c.Request.Context(), req.Email, req.Password)
	if errors.Is(err, repo.ErrDuplicateEmail) {
		response.Error(c, http.StatusConflict, "email already registered")
		return
	}
	if err != nil {
		h.Logger.WithError(err).Error("register failed")
		response.Error(c, http.StatusInternalServerError, "internal server error")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"result": res, "message": "New user account"})
}

// Login POST /login
func (h *AccountHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Logger.WithField("details", validation.ToDetails(err)).Debug("invalid login payload")
		response.Error(c, http.StatusBadRequest, "invalid payload")
		return
	}
	token, err := h.Svc.Login(c.Request.Context(), req.Email, req.Password)
	if errors.Is(err, application.ErrUserNotFound) {
		response.Error(c, http.StatusNotFound, "Invalid login credentials")
		return
	}
	if errors.Is(err, application.ErrInvalidCredentials) {
		response.Error(c, http.StatusUnauthorized, "Invalid login credentials")
		return
	}
	if err != nil {
		h.Logger.WithError(err).Error("login failed")
		response.Error(c, http.StatusInternalServerError, "internal server error")
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": token})
}
