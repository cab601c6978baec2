package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/tejashvi-kumawat/mr-advocates---associates/internal/db"
	"github.com/tejashvi-kumawat/mr-advocates---associates/internal/service"
)

const (
	msgNoCredentials = "Authentication credentials were not provided."
	msgInvalidToken  = "Given token not valid for any token type"
	msgForbidden     = "You do not have permission to perform this action."

	currentUserKey = "current_user"
)

type loginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type refreshRequest struct {
	Refresh string `json:"refresh" binding:"required"`
}

// Login exchanges username and password for an access/refresh token pair.
func (a *API) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidation(c, fieldErrors(err))
		return
	}

	user, err := a.users.Authenticate(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			respondError(c, http.StatusUnauthorized, "No active account found with the given credentials")
			return
		}
		a.handleServiceError(c, err)
		return
	}

	pair, err := a.tokens.IssuePair(user.ID)
	if err != nil {
		a.handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, pair)
}

// Refresh issues a new access token from a valid refresh token.
func (a *API) Refresh(c *gin.Context) {
	var req refreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidation(c, fieldErrors(err))
		return
	}

	access, _, err := a.tokens.Refresh(req.Refresh)
	if err != nil {
		respondError(c, http.StatusUnauthorized, "Token is invalid or expired")
		return
	}
	c.JSON(http.StatusOK, gin.H{"access": access})
}

// AuthRequired admits requests carrying an access token of an active staff
// user. Missing or invalid credentials get 401, non-staff accounts get 403.
func (a *API) AuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := bearerToken(c.GetHeader("Authorization"))
		if !ok {
			respondError(c, http.StatusUnauthorized, msgNoCredentials)
			return
		}

		claims, err := a.tokens.ParseAccess(token)
		if err != nil {
			respondError(c, http.StatusUnauthorized, msgInvalidToken)
			return
		}
		userID, err := claims.UserID()
		if err != nil {
			respondError(c, http.StatusUnauthorized, msgInvalidToken)
			return
		}

		user, err := a.users.Get(c.Request.Context(), userID)
		if err != nil {
			if errors.Is(err, service.ErrNotFound) {
				respondError(c, http.StatusUnauthorized, "User not found")
				return
			}
			a.handleServiceError(c, err)
			return
		}
		if !user.IsActive {
			respondError(c, http.StatusUnauthorized, "User is inactive")
			return
		}
		if !user.IsStaff {
			respondError(c, http.StatusForbidden, msgForbidden)
			return
		}

		c.Set(currentUserKey, user)
		c.Next()
	}
}

func bearerToken(header string) (string, bool) {
	scheme, token, found := strings.Cut(strings.TrimSpace(header), " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}

// currentUser returns the authenticated user, or nil on public routes.
func currentUser(c *gin.Context) *db.User {
	value, ok := c.Get(currentUserKey)
	if !ok {
		return nil
	}
	user, _ := value.(*db.User)
	return user
}
