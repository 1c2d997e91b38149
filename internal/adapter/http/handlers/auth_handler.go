package handlers

import (
	"log"
	"net/http"
	"os"
	"strings"

	request "rids_ngo/internal/adapter/http/dto/request"
	response "rids_ngo/internal/adapter/http/dto/response"
	"rids_ngo/internal/infrastructure/auth"
	"rids_ngo/pkg"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

// AuthHandler issues bearer tokens for the single env-configured admin.

type AuthHandler struct{}

func NewAuthHandler() *AuthHandler {
	return &AuthHandler{}
}

// Login checks the admin credentials against ADMIN_EMAIL and the bcrypt
// ADMIN_PASSWORD_HASH and returns a 24h bearer token.
func (h *AuthHandler) Login(c *gin.Context) {
	var payload request.LoginRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	adminEmail := strings.TrimSpace(os.Getenv("ADMIN_EMAIL"))
	adminHash := strings.TrimSpace(os.Getenv("ADMIN_PASSWORD_HASH"))
	if adminEmail == "" || adminHash == "" {
		log.Printf("[auth][handler] admin credentials not configured")
		appErr := pkg.NewDomainErrorSimple("AUTH_NOT_CONFIGURED", "Admin login not configured", http.StatusServiceUnavailable)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	if !strings.EqualFold(payload.Email, adminEmail) ||
		bcrypt.CompareHashAndPassword([]byte(adminHash), []byte(payload.Password)) != nil {
		log.Printf("[auth][handler] login rejected email=%s", payload.Email)
		appErr := pkg.NewDomainErrorSimple("INVALID_CREDENTIALS", "Incorrect email or password", http.StatusUnauthorized)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	token, err := auth.IssueAdminToken(adminEmail)
	if err != nil {
		log.Printf("[auth][handler] token issue failed err=%v", err)
		appErr := pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[auth][handler] login success email=%s", adminEmail)

	c.JSON(http.StatusOK, response.TokenResponse{AccessToken: token, TokenType: "bearer"})
}
