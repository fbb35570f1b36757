package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"shopper/apperr"
	"shopper/middleware"
	"shopper/models"
	"shopper/repository"
)

type CartController struct {
	users repository.UserRepository
}

func NewCartController(users repository.UserRepository) *CartController {
	return &CartController{users: users}
}

// AddToCart increments the slot for itemId by one. Quantities have no upper
// bound.
func (cc *CartController) AddToCart(c *gin.Context) {
	cc.mutateCart(c, "Added", func(cart map[string]int, key string) {
		cart[key]++
	})
}

// RemoveFromCart decrements the slot for itemId by one, floored at zero.
func (cc *CartController) RemoveFromCart(c *gin.Context) {
	cc.mutateCart(c, "Removed", func(cart map[string]int, key string) {
		if cart[key] > 0 {
			cart[key]--
		}
	})
}

// mutateCart is the shared read-modify-write sequence behind both cart
// mutations. Concurrent mutations on the same user can lose updates; that
// model is deliberate, see DESIGN.md.
func (cc *CartController) mutateCart(c *gin.Context, reply string, mutate func(cart map[string]int, key string)) {
	var input struct {
		ItemID *int `json:"itemId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		apperr.Respond(c, apperr.Wrap(apperr.ErrValidation, err))
		return
	}
	if !models.ValidCartItem(*input.ItemID) {
		apperr.Respond(c, apperr.ErrInvalidItem)
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	user, err := cc.currentUser(ctx, c)
	if err != nil {
		apperr.Respond(c, err)
		return
	}

	mutate(user.CartData, models.CartKey(*input.ItemID))

	if err := cc.users.UpdateCart(ctx, user.ID, user.CartData); err != nil {
		apperr.Respond(c, apperr.Wrap(apperr.ErrPersistence, err))
		return
	}

	c.String(http.StatusOK, reply)
}

// GetCart returns the full cart mapping for the authenticated user.
func (cc *CartController) GetCart(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	user, err := cc.currentUser(ctx, c)
	if err != nil {
		apperr.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, user.CartData)
}

func (cc *CartController) currentUser(ctx context.Context, c *gin.Context) (*models.User, error) {
	idHex := c.GetString(middleware.UserIDKey)
	id, err := primitive.ObjectIDFromHex(idHex)
	if err != nil {
		return nil, apperr.Wrap(apperr.ErrInvalidToken, err)
	}

	user, err := cc.users.FindByID(ctx, id)
	if err != nil {
		return nil, apperr.Wrap(apperr.ErrPersistence, err)
	}
	if user == nil {
		return nil, apperr.ErrInvalidToken
	}
	return user, nil
}
