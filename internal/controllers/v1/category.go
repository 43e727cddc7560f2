package v1

import (
	"net/http"

	"github.com/familybiz/backend/internal/categories"
	"github.com/familybiz/backend/internal/httputil"
	"github.com/familybiz/backend/internal/models"
	"github.com/gin-gonic/gin"
	"golang.org/x/exp/slices"
)

type CategoryEditable struct {
	Name string                 `json:"name" example:"Workshops"` // Display name
	Icon string                 `json:"icon" example:"🎓"`        // Display icon
	Type models.TransactionType `json:"type" example:"income"`   // income or expense
}

// model returns the database resource for the API representation of the editable fields
func (editable CategoryEditable) model() models.Category {
	return models.Category{
		Name: editable.Name,
		Icon: editable.Icon,
		Type: editable.Type,
	}
}

type CategoryResponse struct {
	Data  *categories.Category `json:"data"`  // The resolved category
	Error *string              `json:"error"` // The error, if any occurred
}

type CategoryListResponse struct {
	Data  []categories.Category `json:"data"`  // Built-in categories followed by user-defined ones
	Error *string               `json:"error"` // The error, if any occurred
}

func RegisterCategoryRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("", OptionsCategories)
		r.GET("", GetCategories)
		r.POST("", CreateCategory)
	}
	{
		r.OPTIONS("/:id", OptionsCategoryDetail)
		r.GET("/:id", GetCategory)
		r.DELETE("/:id", DeleteCategory)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Categories
// @Success		204
// @Router			/v1/categories [options]
func OptionsCategories(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Categories
// @Success		204
// @Param			id	path	string	true	"ID of the category"
// @Router			/v1/categories/{id} [options]
func OptionsCategoryDetail(c *gin.Context) {
	httputil.OptionsGetDelete(c)
}

// bindType reads and validates the type query parameter.
func bindType(c *gin.Context) (models.TransactionType, bool) {
	transactionType := models.TransactionType(c.Query("type"))

	valid := []models.TransactionType{models.TransactionIncome, models.TransactionExpense}
	if !slices.Contains(valid, transactionType) {
		e := models.ErrCategoryTypeInvalid.Error()
		c.JSON(http.StatusBadRequest, CategoryListResponse{Error: &e})
		return "", false
	}

	return transactionType, true
}

// @Summary		Get categories
// @Description	Returns the built-in categories for the type followed by the user-defined ones
// @Tags			Categories
// @Produce		json
// @Success		200		{object}	CategoryListResponse
// @Failure		400		{object}	CategoryListResponse
// @Failure		500		{object}	CategoryListResponse
// @Param			type	query		string	true	"income or expense"
// @Router			/v1/categories [get]
func GetCategories(c *gin.Context) {
	transactionType, ok := bindType(c)
	if !ok {
		return
	}

	custom, err := models.Categories(models.DB)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), CategoryListResponse{Error: &e})
		return
	}

	c.JSON(http.StatusOK, CategoryListResponse{Data: categories.List(transactionType, custom)})
}

// @Summary		Get category
// @Description	Resolves a category id for the type, searching built-in categories first
// @Tags			Categories
// @Produce		json
// @Success		200		{object}	CategoryResponse
// @Failure		400		{object}	CategoryResponse
// @Failure		404		{object}	CategoryResponse
// @Failure		500		{object}	CategoryResponse
// @Param			id		path		string	true	"ID of the category"
// @Param			type	query		string	true	"income or expense"
// @Router			/v1/categories/{id} [get]
func GetCategory(c *gin.Context) {
	transactionType, ok := bindType(c)
	if !ok {
		return
	}

	custom, err := models.Categories(models.DB)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), CategoryResponse{Error: &e})
		return
	}

	category, found := categories.Lookup(transactionType, c.Param("id"), custom)
	if !found {
		e := models.ErrResourceNotFound.Error() + " category matching your query"
		c.JSON(http.StatusNotFound, CategoryResponse{Error: &e})
		return
	}

	c.JSON(http.StatusOK, CategoryResponse{Data: &category})
}

// @Summary		Create category
// @Description	Creates a new user-defined category
// @Tags			Categories
// @Produce		json
// @Success		201			{object}	CategoryResponse
// @Failure		400			{object}	CategoryResponse
// @Failure		500			{object}	CategoryResponse
// @Param			category	body		CategoryEditable	true	"Category"
// @Router			/v1/categories [post]
func CreateCategory(c *gin.Context) {
	var editable CategoryEditable

	if err := httputil.BindData(c, &editable); err != nil {
		e := err.Error()
		c.JSON(status(err), CategoryResponse{Error: &e})
		return
	}

	category := editable.model()
	if err := models.DB.Create(&category).Error; err != nil {
		e := err.Error()
		c.JSON(status(err), CategoryResponse{Error: &e})
		return
	}

	sync.Schedule()

	resolved := categories.Category{ID: category.ID, Name: category.Name, Icon: category.Icon, Type: category.Type}
	c.JSON(http.StatusCreated, CategoryResponse{Data: &resolved})
}

// @Summary		Delete category
// @Description	Deletes a user-defined category. Built-in categories cannot be deleted; deleting an unknown ID is a no-op.
// @Tags			Categories
// @Success		204
// @Failure		500	{object}	httpError
// @Param			id	path		string	true	"ID of the category"
// @Router			/v1/categories/{id} [delete]
func DeleteCategory(c *gin.Context) {
	err := models.DB.Delete(&models.Category{}, "id = ?", c.Param("id")).Error
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	sync.Schedule()
	c.JSON(http.StatusNoContent, nil)
}
