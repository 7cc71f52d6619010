package controller

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/jvk36/cafes-with-wifi/model"
	"github.com/jvk36/cafes-with-wifi/store"
)

// CafeController holds the handlers for the cafe endpoints. It talks to the
// database only through the CafeStore interface.
type CafeController struct {
	store store.CafeStore
}

func NewCafeController(s store.CafeStore) *CafeController {
	return &CafeController{store: s}
}

func (cc *CafeController) GetCafes(c *gin.Context) {
	cafes, err := cc.store.ListAll(c.Request.Context())
	if err != nil {
		log.Printf("list cafes: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"description": "Error: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, cafes)
}

func (cc *CafeController) GetCafeByName(c *gin.Context) {
	name := c.Param("name")

	cafe, found, err := cc.store.FindByName(c.Request.Context(), name)
	if err != nil {
		log.Printf("find cafe %q: %v", name, err)
		c.JSON(http.StatusBadRequest, gin.H{"description": "Error: " + err.Error()})
		return
	}
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"description": "Cafe not found"})
		return
	}

	c.JSON(http.StatusOK, cafe)
}

func (cc *CafeController) AddCafe(c *gin.Context) {
	// Every required field is a pointer so `required` rejects an absent or
	// null key but accepts explicit false and "".
	type Request struct {
		Name         *string `json:"name" binding:"required"`
		MapURL       *string `json:"map_url" binding:"required"`
		ImgURL       *string `json:"img_url" binding:"required"`
		Location     *string `json:"location" binding:"required"`
		HasSockets   *bool   `json:"has_sockets" binding:"required"`
		HasToilet    *bool   `json:"has_toilet" binding:"required"`
		HasWifi      *bool   `json:"has_wifi" binding:"required"`
		CanTakeCalls *bool   `json:"can_take_calls" binding:"required"`
		Seats        *string `json:"seats"`
		CoffeePrice  *string `json:"coffee_price"`
	}

	var req Request
	if err := c.ShouldBindJSON(&req); err != nil {
		var verr validator.ValidationErrors
		if errors.As(err, &verr) {
			c.JSON(http.StatusBadRequest, gin.H{"description": "Missing required fields"})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"description": "Invalid JSON body"})
		return
	}

	cafe := model.Cafe{
		Name:         *req.Name,
		MapURL:       *req.MapURL,
		ImgURL:       *req.ImgURL,
		Location:     *req.Location,
		HasSockets:   *req.HasSockets,
		HasToilet:    *req.HasToilet,
		HasWifi:      *req.HasWifi,
		CanTakeCalls: *req.CanTakeCalls,
		Seats:        req.Seats,
		CoffeePrice:  req.CoffeePrice,
	}

	created, err := cc.store.Insert(c.Request.Context(), cafe)
	if err != nil {
		if errors.Is(err, store.ErrDuplicateName) {
			c.JSON(http.StatusBadRequest, gin.H{"description": "Cafe with this name already exists"})
			return
		}
		log.Printf("insert cafe: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"description": "Error: " + err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Cafe added successfully",
		"id":      created.ID,
	})
}
