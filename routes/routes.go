package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"shopper/controllers"
	"shopper/middleware"
)

// Deps is everything route registration needs, built in main.
type Deps struct {
	Products  *controllers.ProductController
	Auth      *controllers.AuthController
	Cart      *controllers.CartController
	Upload    *controllers.UploadController
	JWTSecret []byte
	UploadDir string
}

// Register wires the full HTTP surface. Paths match the storefront and
// admin panel clients, so they stay flat and unversioned.
func Register(r *gin.Engine, d Deps) {
	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "Shopper API is running")
	})

	r.POST("/upload", d.Upload.Upload)
	r.Static("/images", d.UploadDir)

	r.POST("/addproduct", d.Products.AddProduct)
	r.POST("/removeproduct", d.Products.RemoveProduct)
	r.GET("/allproducts", d.Products.AllProducts)
	r.GET("/newcollections", d.Products.NewCollections)
	r.GET("/popularinwomen", d.Products.PopularInCategory("women"))

	r.POST("/signup", d.Auth.Signup)
	r.POST("/login", d.Auth.Login)

	guarded := r.Group("/")
	guarded.Use(middleware.AuthGuard(d.JWTSecret))
	{
		guarded.POST("/addtocart", d.Cart.AddToCart)
		guarded.POST("/removefromcart", d.Cart.RemoveFromCart)
		guarded.POST("/getcart", d.Cart.GetCart)
	}
}
