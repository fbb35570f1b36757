package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"shopper/apperr"
	"shopper/auth"
	"shopper/logger"
	"shopper/models"
	"shopper/repository"
)

type AuthController struct {
	users  repository.UserRepository
	secret []byte
}

func NewAuthController(users repository.UserRepository, secret []byte) *AuthController {
	return &AuthController{users: users, secret: secret}
}

// Signup registers a user, hashes the password, seeds the all-zero cart and
// returns a signed token. The email uniqueness check is a pre-insert lookup,
// not an atomic constraint.
func (ac *AuthController) Signup(c *gin.Context) {
	var input struct {
		Name     string `json:"name" binding:"required"`
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		apperr.Respond(c, apperr.Wrap(apperr.ErrValidation, err))
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	existing, err := ac.users.FindByEmail(ctx, input.Email)
	if err != nil {
		apperr.Respond(c, apperr.Wrap(apperr.ErrPersistence, err))
		return
	}
	if existing != nil {
		apperr.Respond(c, apperr.ErrDuplicateEmail)
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		apperr.Respond(c, apperr.Wrap(apperr.ErrPersistence, err))
		return
	}

	user := models.User{
		Name:     input.Name,
		Email:    input.Email,
		Password: string(hashed),
		CartData: models.NewCart(),
		Date:     time.Now(),
	}

	id, err := ac.users.Insert(ctx, &user)
	if err != nil {
		logger.Log.Error("user insert failed", zap.Error(err))
		apperr.Respond(c, apperr.Wrap(apperr.ErrPersistence, err))
		return
	}

	token, err := auth.Mint(ac.secret, id.Hex())
	if err != nil {
		apperr.Respond(c, apperr.Wrap(apperr.ErrPersistence, err))
		return
	}

	logger.Log.Info("user registered", zap.String("email", user.Email))

	c.JSON(http.StatusOK, gin.H{"success": true, "token": token})
}

// Login verifies credentials and mints a token. Unknown email and wrong
// password return the same generic error.
func (ac *AuthController) Login(c *gin.Context) {
	var input struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		apperr.Respond(c, apperr.Wrap(apperr.ErrValidation, err))
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	user, err := ac.users.FindByEmail(ctx, input.Email)
	if err != nil {
		apperr.Respond(c, apperr.Wrap(apperr.ErrPersistence, err))
		return
	}
	if user == nil {
		apperr.Respond(c, apperr.ErrInvalidCredentials)
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(input.Password)); err != nil {
		apperr.Respond(c, apperr.ErrInvalidCredentials)
		return
	}

	token, err := auth.Mint(ac.secret, user.ID.Hex())
	if err != nil {
		apperr.Respond(c, apperr.Wrap(apperr.ErrPersistence, err))
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "token": token})
}
