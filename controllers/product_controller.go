package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"shopper/apperr"
	"shopper/cache"
	"shopper/logger"
	"shopper/models"
	"shopper/repository"
)

const (
	newCollectionSize = 8
	popularSize       = 4

	cacheKeyAllProducts = "products:all"
)

type ProductController struct {
	products repository.ProductRepository
	cache    *cache.ProductCache
}

// NewProductController wires the catalog handlers. cache may be nil.
func NewProductController(products repository.ProductRepository, productCache *cache.ProductCache) *ProductController {
	return &ProductController{products: products, cache: productCache}
}

// AddProduct assigns the next id (current max + 1, starting at 1) and
// inserts the product. Two concurrent adds can read the same max; that race
// is accepted, see DESIGN.md.
func (pc *ProductController) AddProduct(c *gin.Context) {
	var input struct {
		Name     string  `json:"name" binding:"required"`
		Image    string  `json:"image"`
		Category string  `json:"category"`
		NewPrice float64 `json:"new_price"`
		OldPrice float64 `json:"old_price"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		apperr.Respond(c, apperr.Wrap(apperr.ErrValidation, err))
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	maxID, err := pc.products.MaxID(ctx)
	if err != nil {
		logger.Log.Error("max id lookup failed", zap.Error(err))
		apperr.Respond(c, apperr.Wrap(apperr.ErrPersistence, err))
		return
	}

	product := models.Product{
		ID:        maxID + 1,
		Name:      input.Name,
		Image:     input.Image,
		Category:  input.Category,
		NewPrice:  input.NewPrice,
		OldPrice:  input.OldPrice,
		Date:      time.Now(),
		Available: true,
	}

	if err := pc.products.Insert(ctx, &product); err != nil {
		logger.Log.Error("product insert failed", zap.Error(err))
		apperr.Respond(c, apperr.Wrap(apperr.ErrPersistence, err))
		return
	}

	pc.cache.Invalidate(ctx, cacheKeyAllProducts)
	logger.Log.Info("product added", zap.Int64("id", product.ID), zap.String("name", product.Name))

	c.JSON(http.StatusOK, gin.H{"success": true, "name": product.Name})
}

// RemoveProduct deletes by id. Removal is idempotent: a missing id still
// reports success.
func (pc *ProductController) RemoveProduct(c *gin.Context) {
	var input struct {
		ID   int64  `json:"id"`
		Name string `json:"name"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		apperr.Respond(c, apperr.Wrap(apperr.ErrValidation, err))
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	if _, err := pc.products.DeleteByID(ctx, input.ID); err != nil {
		logger.Log.Error("product delete failed", zap.Int64("id", input.ID), zap.Error(err))
		apperr.Respond(c, apperr.Wrap(apperr.ErrPersistence, err))
		return
	}

	pc.cache.Invalidate(ctx, cacheKeyAllProducts)

	c.JSON(http.StatusOK, gin.H{"success": true, "name": input.Name})
}

// AllProducts returns the whole catalog in insertion order.
func (pc *ProductController) AllProducts(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	if products, ok := pc.cache.Get(ctx, cacheKeyAllProducts); ok {
		c.JSON(http.StatusOK, products)
		return
	}

	products, err := pc.products.FindAll(ctx)
	if err != nil {
		apperr.Respond(c, apperr.Wrap(apperr.ErrPersistence, err))
		return
	}

	pc.cache.Set(ctx, cacheKeyAllProducts, products)

	c.JSON(http.StatusOK, products)
}

// NewCollections returns the last 8 products in insertion order.
func (pc *ProductController) NewCollections(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	products, err := pc.products.FindAll(ctx)
	if err != nil {
		apperr.Respond(c, apperr.Wrap(apperr.ErrPersistence, err))
		return
	}

	if len(products) > newCollectionSize {
		products = products[len(products)-newCollectionSize:]
	}

	c.JSON(http.StatusOK, products)
}

// PopularInCategory returns the first 4 products of a category in insertion
// order.
func (pc *ProductController) PopularInCategory(category string) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		products, err := pc.products.FindByCategory(ctx, category, popularSize)
		if err != nil {
			apperr.Respond(c, apperr.Wrap(apperr.ErrPersistence, err))
			return
		}

		c.JSON(http.StatusOK, products)
	}
}
