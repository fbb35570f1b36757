package models

import (
	"strconv"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CartSlots is the size of the slot-indexed cart every user carries. It
// matches the storefront catalog size; item ids outside [0, CartSlots) are
// rejected at the API boundary.
const CartSlots = 300

type User struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name     string             `bson:"name" json:"name"`
	Email    string             `bson:"email" json:"email"`
	Password string             `bson:"password" json:"-"`
	CartData map[string]int     `bson:"cartData" json:"cartData"`
	Date     time.Time          `bson:"date" json:"date"`
}

// NewCart builds the all-zero cart a user starts with. Keys are decimal
// strings because BSON maps only take string keys.
func NewCart() map[string]int {
	cart := make(map[string]int, CartSlots)
	for i := 0; i < CartSlots; i++ {
		cart[strconv.Itoa(i)] = 0
	}
	return cart
}

// ValidCartItem reports whether an item id falls inside the cart range.
func ValidCartItem(itemID int) bool {
	return itemID >= 0 && itemID < CartSlots
}

// CartKey converts an item id to its map key.
func CartKey(itemID int) string {
	return strconv.Itoa(itemID)
}
