package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/food-order-app/models"
	"github.com/yeremiapane/food-order-app/services"
	"github.com/yeremiapane/food-order-app/utils"
)

type CartController struct {
	service *services.CartService
}

func NewCartController(service *services.CartService) *CartController {
	return &CartController{service: service}
}

type addCartRequest struct {
	DishID      *uint `json:"dish_id"`
	ComboMealID *uint `json:"combo_meal_id"`
}

// toRef decides the product variant exactly once at the boundary. Both-set
// and neither-set are rejected here, so the service never sees an
// ambiguous reference.
func (r *addCartRequest) toRef() (models.CartRef, error) {
	switch {
	case r.DishID != nil && r.ComboMealID != nil:
		return models.CartRef{}, utils.ValidationError("set either dish_id or combo_meal_id, not both")
	case r.DishID != nil:
		return models.DishRef(*r.DishID), nil
	case r.ComboMealID != nil:
		return models.ComboRef(*r.ComboMealID), nil
	default:
		return models.CartRef{}, utils.ValidationError("one of dish_id or combo_meal_id is required")
	}
}

// AddToCart handles POST /user/cart. The acting user always comes from the
// auth context, never from the request body.
func (cc *CartController) AddToCart(c *gin.Context) {
	userID := c.GetUint("userID")
	if userID == 0 {
		utils.RespondErrorWithStatus(c, http.StatusUnauthorized, errors.New("not authenticated"))
		return
	}

	var req addCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondErrorWithStatus(c, http.StatusBadRequest, err)
		return
	}

	ref, err := req.toRef()
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	item, err := cc.service.Add(c.Request.Context(), userID, ref)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.InfoLogger.Printf("cart add: user=%d %s=%d qty=%d", userID, item.ItemType, item.ItemID, item.Quantity)
	utils.RespondJSON(c, http.StatusOK, "Added to cart", item)
}

// ListCart handles GET /user/cart.
func (cc *CartController) ListCart(c *gin.Context) {
	userID := c.GetUint("userID")
	if userID == 0 {
		utils.RespondErrorWithStatus(c, http.StatusUnauthorized, errors.New("not authenticated"))
		return
	}

	items, err := cc.service.List(c.Request.Context(), userID)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Cart items", items)
}
