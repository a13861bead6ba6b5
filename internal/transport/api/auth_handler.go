package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fsdevblog/salesboard/internal/domain"
	"github.com/fsdevblog/salesboard/internal/service"
)

type AuthHandler struct {
	userService UserServicer
}

func NewAuthHandler(userService UserServicer) *AuthHandler {
	return &AuthHandler{
		userService: userService,
	}
}

type UserRegisterParams struct {
	Email    string `binding:"required,email,max=255"      json:"email"`
	Password string `binding:"required,min=6,max_bytes=72" json:"password"`
	Name     string `binding:"required,min=1,max=50"       json:"name"`
}

type AuthResponse struct {
	User  UserResponse `json:"user"`
	Token string       `json:"token"`
}

// Register POST RouteGroup + SignupRoute. Регистрирует пользователя и аутентифицирует его.
func (h *AuthHandler) Register(c *gin.Context) {
	var params UserRegisterParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		abortWithBindError(c, bindErr)
		return
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	user, jwtToken, createErr := h.userService.Register(ctx, service.RegisterUserArgs{
		Email:    params.Email,
		Password: params.Password,
		Name:     params.Name,
	})
	if createErr != nil {
		if errors.Is(createErr, domain.ErrDuplicateKey) {
			abortPublic(c, http.StatusConflict, "Email already registered")
			return
		}
		abortInternal(c, createErr)
		return
	}

	c.Header("Authorization", "Bearer "+jwtToken)
	c.JSON(http.StatusOK, AuthResponse{User: newUserResponse(user), Token: jwtToken})
}

type UserLoginParams struct {
	Email    string `binding:"required,email"        json:"email"`
	Password string `binding:"required,max_bytes=72" json:"password"`
}

// Login POST RouteGroup + LoginRoute. Аутентификация по паре email/пароль.
func (h *AuthHandler) Login(c *gin.Context) {
	var params UserLoginParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		abortWithBindError(c, bindErr)
		return
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	user, token, err := h.userService.Login(ctx, service.LoginUserArgs{
		Email:    params.Email,
		Password: params.Password,
	})
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) || errors.Is(err, domain.ErrPasswordMissMatch) {
			abortPublic(c, http.StatusUnauthorized, "Invalid email or password")
			return
		}
		abortInternal(c, err)
		return
	}

	c.Header("Authorization", "Bearer "+token)
	c.JSON(http.StatusOK, AuthResponse{User: newUserResponse(user), Token: token})
}

// Me GET RouteGroup + MeRoute. Текущий пользователь по токену.
func (h *AuthHandler) Me(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	user, err := h.userService.GetByID(ctx, getUserIDFromContext(c))
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			abortPublic(c, http.StatusUnauthorized, "User not found")
			return
		}
		abortInternal(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": newUserResponse(user)})
}
