package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/food-order-app/models"
	"github.com/yeremiapane/food-order-app/services"
	"github.com/yeremiapane/food-order-app/utils"
)

type DishController struct {
	service *services.DishService
	cache   *services.CatalogCache
}

func NewDishController(service *services.DishService, cache *services.CatalogCache) *DishController {
	return &DishController{service: service, cache: cache}
}

type dishFlavorRequest struct {
	Name    string   `json:"name" binding:"required"`
	Options []string `json:"options"`
}

type dishRequest struct {
	Name        string              `json:"name" binding:"required"`
	CategoryID  uint                `json:"category_id" binding:"required"`
	Price       float64             `json:"price" binding:"required,gt=0"`
	Image       string              `json:"image"`
	Description string              `json:"description"`
	Status      *int                `json:"status"`
	Flavors     []dishFlavorRequest `json:"flavors"`
}

func (r *dishRequest) toModel() (*models.Dish, error) {
	dish := &models.Dish{
		Name:        r.Name,
		CategoryID:  r.CategoryID,
		Price:       r.Price,
		Image:       r.Image,
		Description: r.Description,
		Status:      models.StatusEnable,
	}
	if r.Status != nil {
		dish.Status = *r.Status
	}
	for _, f := range r.Flavors {
		flavor := models.DishFlavor{Name: f.Name}
		if err := flavor.SetOptions(f.Options); err != nil {
			return nil, err
		}
		dish.Flavors = append(dish.Flavors, flavor)
	}
	return dish, nil
}

// CreateDish handles POST /admin/dishes.
func (dc *DishController) CreateDish(c *gin.Context) {
	var req dishRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondErrorWithStatus(c, http.StatusBadRequest, err)
		return
	}

	dish, err := req.toModel()
	if err != nil {
		utils.RespondErrorWithStatus(c, http.StatusBadRequest, err)
		return
	}

	if err := dc.service.Create(c.Request.Context(), dish); err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.InfoLogger.Printf("dish created: id=%d name=%s", dish.ID, dish.Name)
	utils.RespondJSON(c, http.StatusCreated, "Dish created", dish)
}

// GetDish handles GET /admin/dishes/:dish_id.
func (dc *DishController) GetDish(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("dish_id"), 10, 32)
	if err != nil {
		utils.RespondErrorWithStatus(c, http.StatusBadRequest, errors.New("invalid dish id"))
		return
	}

	dish, err := dc.service.GetByID(c.Request.Context(), uint(id))
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Dish detail", dish)
}

// PageDishes handles GET /admin/dishes.
func (dc *DishController) PageDishes(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "10"))
	categoryID, _ := strconv.ParseUint(c.Query("category"), 10, 32)

	query := services.DishPageQuery{
		Name:       c.Query("name"),
		CategoryID: uint(categoryID),
		Page:       page,
		PageSize:   pageSize,
	}
	if raw := c.Query("status"); raw != "" {
		status, err := strconv.Atoi(raw)
		if err != nil {
			utils.RespondErrorWithStatus(c, http.StatusBadRequest, errors.New("invalid status"))
			return
		}
		query.Status = &status
	}

	dishes, total, err := dc.service.Page(c.Request.Context(), query)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Dish page", gin.H{
		"total":   total,
		"records": dishes,
	})
}

// UpdateDish handles PUT /admin/dishes/:dish_id.
func (dc *DishController) UpdateDish(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("dish_id"), 10, 32)
	if err != nil {
		utils.RespondErrorWithStatus(c, http.StatusBadRequest, errors.New("invalid dish id"))
		return
	}

	var req dishRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondErrorWithStatus(c, http.StatusBadRequest, err)
		return
	}

	dish, err := req.toModel()
	if err != nil {
		utils.RespondErrorWithStatus(c, http.StatusBadRequest, err)
		return
	}
	dish.ID = uint(id)

	if err := dc.service.Update(c.Request.Context(), dish); err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.InfoLogger.Printf("dish updated: id=%d", dish.ID)
	utils.RespondJSON(c, http.StatusOK, "Dish updated", dish)
}

// DeleteDishes handles DELETE /admin/dishes?ids=1,2,3.
func (dc *DishController) DeleteDishes(c *gin.Context) {
	raw := c.Query("ids")
	if raw == "" {
		utils.RespondErrorWithStatus(c, http.StatusBadRequest, errors.New("query parameter 'ids' is required"))
		return
	}

	var ids []uint
	for _, part := range strings.Split(raw, ",") {
		id, err := strconv.ParseUint(strings.TrimSpace(part), 10, 32)
		if err != nil {
			utils.RespondErrorWithStatus(c, http.StatusBadRequest, errors.New("invalid dish id: "+part))
			return
		}
		ids = append(ids, uint(id))
	}

	if err := dc.service.DeleteBatch(c.Request.Context(), ids); err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.InfoLogger.Printf("dishes deleted: %v", ids)
	utils.RespondJSON(c, http.StatusOK, "Dishes deleted", gin.H{"ids": ids})
}

// SetDishStatus handles POST /admin/dishes/status/:status?id=.
func (dc *DishController) SetDishStatus(c *gin.Context) {
	status, err := strconv.Atoi(c.Param("status"))
	if err != nil {
		utils.RespondErrorWithStatus(c, http.StatusBadRequest, errors.New("invalid status"))
		return
	}
	id, err := strconv.ParseUint(c.Query("id"), 10, 32)
	if err != nil {
		utils.RespondErrorWithStatus(c, http.StatusBadRequest, errors.New("invalid dish id"))
		return
	}

	if err := dc.service.SetStatus(c.Request.Context(), uint(id), status); err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Dish status updated", gin.H{"id": id, "status": status})
}

// ListByCategory handles GET /user/dishes?category=. This is the only read
// path that populates the catalog cache.
func (dc *DishController) ListByCategory(c *gin.Context) {
	raw := c.Query("category")
	if raw == "" {
		utils.RespondErrorWithStatus(c, http.StatusBadRequest, errors.New("query parameter 'category' is required"))
		return
	}
	categoryID, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		utils.RespondErrorWithStatus(c, http.StatusBadRequest, errors.New("invalid category id"))
		return
	}

	dishes, err := dc.cache.GetByCategory(c.Request.Context(), uint(categoryID))
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Dishes", dishes)
}
