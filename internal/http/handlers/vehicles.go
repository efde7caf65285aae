package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"fleetops/internal/domain/models"
	"fleetops/internal/repositories"

	"github.com/gin-gonic/gin"
)

// GET /api/vehicles?q=LX21&page=1&limit=50
func GetVehicles(c *gin.Context) {
	q := strings.TrimSpace(c.Query("q"))
	limit, offset := pageParams(c)

	repo := repositories.VehicleRepository{}
	list, err := repo.List(q, limit, offset)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "failed to fetch vehicles", err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// GET /api/vehicles/:id
func GetVehicleByID(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	repo := repositories.VehicleRepository{}
	v, err := repo.GetByID(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, v)
}

// POST /api/vehicles
func CreateVehicle(c *gin.Context) {
	var payload models.VehiclePayload
	if !BindJSONOrError(c, &payload) {
		return
	}
	if strings.TrimSpace(payload.Registration) == "" {
		RespondError(c, http.StatusBadRequest, "registration is required", nil)
		return
	}

	repo := repositories.VehicleRepository{}
	id, err := repo.Create(payload)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "vehicle created", "id": id})
}

// PUT /api/vehicles/:id
func UpdateVehicle(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var payload models.VehiclePayload
	if !BindJSONOrError(c, &payload) {
		return
	}

	repo := repositories.VehicleRepository{}
	if err := repo.Update(id, payload); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "vehicle updated"})
}

// DELETE /api/vehicles/:id
func DeleteVehicle(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	repo := repositories.VehicleRepository{}
	if err := repo.Delete(id); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "vehicle deleted"})
}

func pathID(c *gin.Context) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		RespondError(c, http.StatusBadRequest, "invalid id", err)
		return 0, false
	}
	return id, true
}

func pageParams(c *gin.Context) (limit, offset int) {
	pageStr := strings.TrimSpace(c.Query("page"))
	limitStr := strings.TrimSpace(c.Query("limit"))
	if pageStr == "" || limitStr == "" {
		return 0, 0
	}
	page, _ := strconv.Atoi(pageStr)
	limit, _ = strconv.Atoi(limitStr)
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 50
	}
	if limit > 200 {
		limit = 200
	}
	return limit, (page - 1) * limit
}
