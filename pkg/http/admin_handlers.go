package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"liyu1981.xyz/haccp-alert-service/pkg/models"
)

// upsertHandler binds a JSON body into T and hands it to upsert along with
// the acting user.
func upsertHandler[T any](rs *RestfulServer, upsert func(input *T, actor *models.User) error) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input T
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		if err := upsert(&input, rs.actor(c)); err != nil {
			respondError(c, err)
			return
		}

		c.JSON(http.StatusOK, input)
	}
}

func listHandler[T any](list func() ([]T, error)) gin.HandlerFunc {
	return func(c *gin.Context) {
		items, err := list()
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, items)
	}
}

func (rs *RestfulServer) GetUsers(c *gin.Context) {
	listHandler(rs.Haccp.Directory.ListUsers)(c)
}

func (rs *RestfulServer) PostUser(c *gin.Context) {
	upsertHandler(rs, rs.Haccp.Directory.UpsertUser)(c)
}

func (rs *RestfulServer) GetFacilities(c *gin.Context) {
	listHandler(rs.Haccp.Directory.ListFacilities)(c)
}

func (rs *RestfulServer) PostFacility(c *gin.Context) {
	upsertHandler(rs, rs.Haccp.Directory.UpsertFacility)(c)
}

func (rs *RestfulServer) GetRefrigerators(c *gin.Context) {
	refrigerators, err := rs.Haccp.Directory.ListRefrigerators(c.Query("facility_id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, refrigerators)
}

func (rs *RestfulServer) PostRefrigerator(c *gin.Context) {
	upsertHandler(rs, rs.Haccp.Directory.UpsertRefrigerator)(c)
}

func (rs *RestfulServer) GetMenus(c *gin.Context) {
	listHandler(rs.Haccp.Directory.ListMenus)(c)
}

func (rs *RestfulServer) PostMenu(c *gin.Context) {
	upsertHandler(rs, rs.Haccp.Directory.UpsertMenu)(c)
}

func (rs *RestfulServer) GetRefrigeratorTypes(c *gin.Context) {
	listHandler(rs.Haccp.Catalog.ListRefrigeratorTypes)(c)
}

func (rs *RestfulServer) PostRefrigeratorType(c *gin.Context) {
	upsertHandler(rs, rs.Haccp.Catalog.UpsertRefrigeratorType)(c)
}

func (rs *RestfulServer) GetCookingMethods(c *gin.Context) {
	listHandler(rs.Haccp.Catalog.ListCookingMethods)(c)
}

func (rs *RestfulServer) PostCookingMethod(c *gin.Context) {
	upsertHandler(rs, rs.Haccp.Catalog.UpsertCookingMethod)(c)
}
