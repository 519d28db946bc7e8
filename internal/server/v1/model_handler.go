package v1

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/nulzo/provider-gateway/internal/catalog"
	"github.com/nulzo/provider-gateway/pkg/api"
)

type ModelHandler struct{}

func NewModelHandler() *ModelHandler {
	return &ModelHandler{}
}

func (h *ModelHandler) ListModels(c *gin.Context) {
	var filter api.ModelFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		_ = c.Error(api.BadRequestError("Invalid query parameters"))
		return
	}

	models := catalog.All()

	if filter.Provider != "" {
		models = catalog.ByProvider(catalog.Provider(filter.Provider))
	}
	if filter.Tier != "" {
		filtered := models[:0:0]
		for _, def := range models {
			if def.Tier == catalog.Tier(filter.Tier) {
				filtered = append(filtered, def)
			}
		}
		models = filtered
	}

	c.JSON(http.StatusOK, gin.H{
		"object": "list",
		"data":   models,
	})
}

func (h *ModelHandler) GetModel(c *gin.Context) {
	id := c.Param("id")

	def, err := catalog.ByID(id)
	if err != nil {
		_ = c.Error(api.NotFoundError(fmt.Sprintf("Model %q is not in the catalog", id)))
		return
	}

	c.JSON(http.StatusOK, def)
}

func (h *ModelHandler) ListTiers(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"object": "list",
		"data":   catalog.ByTier(),
	})
}
