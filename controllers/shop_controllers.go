package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/food-order-app/services"
	"github.com/yeremiapane/food-order-app/utils"
)

type ShopController struct {
	service *services.ShopStatusService
}

func NewShopController(service *services.ShopStatusService) *ShopController {
	return &ShopController{service: service}
}

// SetStatus handles PUT /admin/shop/:status.
func (sc *ShopController) SetStatus(c *gin.Context) {
	status, err := strconv.Atoi(c.Param("status"))
	if err != nil {
		utils.RespondErrorWithStatus(c, http.StatusBadRequest, errors.New("invalid shop status"))
		return
	}

	if err := sc.service.SetStatus(c.Request.Context(), status); err != nil {
		utils.RespondError(c, err)
		return
	}

	if status == services.ShopOpen {
		utils.InfoLogger.Println("shop is now open")
	} else {
		utils.InfoLogger.Println("shop is now closed")
	}
	utils.RespondJSON(c, http.StatusOK, "Shop status updated", gin.H{"status": status})
}

// GetStatus handles GET /admin/shop/status and GET /user/shop/status.
func (sc *ShopController) GetStatus(c *gin.Context) {
	status, err := sc.service.GetStatus(c.Request.Context())
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Shop status", gin.H{"status": status})
}
