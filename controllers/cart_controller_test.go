package controllers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"shopper/middleware"
	"shopper/models"
)

// cartRouter seeds one user and runs the cart handlers behind a stub guard
// that injects that user's id.
func cartRouter(t *testing.T) (*gin.Engine, *memUserRepo, primitive.ObjectID) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	repo := newMemUserRepo()
	id, err := repo.Insert(nil, &models.User{
		Name:     "A",
		Email:    "a@x.com",
		CartData: models.NewCart(),
	})
	assert.NoError(t, err)

	cc := NewCartController(repo)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set(middleware.UserIDKey, id.Hex())
	})
	r.POST("/addtocart", cc.AddToCart)
	r.POST("/removefromcart", cc.RemoveFromCart)
	r.POST("/getcart", cc.GetCart)
	return r, repo, id
}

func cartOf(t *testing.T, r *gin.Engine) map[string]int {
	t.Helper()
	recorder := postJSON(r, "/getcart", `{}`)
	assert.Equal(t, http.StatusOK, recorder.Code)
	cart := map[string]int{}
	assert.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &cart))
	return cart
}

func TestGetCartAfterSignupIsAllZero(t *testing.T) {
	r, _, _ := cartRouter(t)

	cart := cartOf(t, r)
	assert.Len(t, cart, models.CartSlots)
	for key, qty := range cart {
		assert.Zero(t, qty, "slot %s", key)
	}
}

func TestAddToCartIncrements(t *testing.T) {
	r, _, _ := cartRouter(t)

	for i := 0; i < 3; i++ {
		recorder := postJSON(r, "/addtocart", `{"itemId":5}`)
		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Equal(t, "Added", recorder.Body.String())
	}

	assert.Equal(t, 3, cartOf(t, r)["5"])
}

func TestRemoveFromCartFloorsAtZero(t *testing.T) {
	r, _, _ := cartRouter(t)

	for i := 0; i < 3; i++ {
		postJSON(r, "/addtocart", `{"itemId":5}`)
	}
	for i := 0; i < 5; i++ {
		recorder := postJSON(r, "/removefromcart", `{"itemId":5}`)
		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Equal(t, "Removed", recorder.Body.String())
	}

	cart := cartOf(t, r)
	assert.Equal(t, 0, cart["5"])
	for key, qty := range cart {
		assert.GreaterOrEqual(t, qty, 0, "slot %s", key)
	}
}

func TestCartRejectsOutOfRangeItem(t *testing.T) {
	r, _, _ := cartRouter(t)

	for _, payload := range []string{`{"itemId":300}`, `{"itemId":-1}`, `{"itemId":1000}`} {
		recorder := postJSON(r, "/addtocart", payload)
		assert.Equal(t, http.StatusBadRequest, recorder.Code, payload)
		assert.Contains(t, recorder.Body.String(), "out of range")

		recorder = postJSON(r, "/removefromcart", payload)
		assert.Equal(t, http.StatusBadRequest, recorder.Code, payload)
	}
}

func TestCartRejectsMissingItem(t *testing.T) {
	r, _, _ := cartRouter(t)

	recorder := postJSON(r, "/addtocart", `{}`)
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestCartBoundarySlots(t *testing.T) {
	r, _, _ := cartRouter(t)

	assert.Equal(t, http.StatusOK, postJSON(r, "/addtocart", `{"itemId":0}`).Code)
	assert.Equal(t, http.StatusOK, postJSON(r, "/addtocart", `{"itemId":299}`).Code)

	cart := cartOf(t, r)
	assert.Equal(t, 1, cart["0"])
	assert.Equal(t, 1, cart["299"])
}

func TestCartUnknownUser(t *testing.T) {
	gin.SetMode(gin.TestMode)
	repo := newMemUserRepo()
	cc := NewCartController(repo)

	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set(middleware.UserIDKey, primitive.NewObjectID().Hex())
	})
	r.POST("/getcart", cc.GetCart)

	recorder := postJSON(r, "/getcart", `{}`)
	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
}
