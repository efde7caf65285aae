package handlers

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"fleetops/internal/domain/models"
	"fleetops/internal/http/middleware"
	"fleetops/internal/repositories"
	"fleetops/internal/services"
	"fleetops/internal/utils"

	"github.com/gin-gonic/gin"
)

type rentalPayload struct {
	VehicleID uint64 `json:"vehicleId" binding:"required"`
	Kind      string `json:"kind" binding:"required"`
	Start     string `json:"start" binding:"required"`
	End       string `json:"end"`
	WeekCount int    `json:"weekCount"`
}

func (p rentalPayload) toRequest(c *gin.Context) (models.RentalRequest, bool) {
	start, err := parseWhen(p.Start)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "start must be YYYY-MM-DD or 'YYYY-MM-DD HH:MM:SS'", err)
		return models.RentalRequest{}, false
	}
	req := models.RentalRequest{
		VehicleID: p.VehicleID,
		Kind:      strings.ToLower(strings.TrimSpace(p.Kind)),
		Start:     start,
		WeekCount: p.WeekCount,
	}
	if req.Kind != models.KindWeekly {
		if strings.TrimSpace(p.End) == "" {
			RespondError(c, http.StatusBadRequest, "end is required for daily/claim rentals", nil)
			return models.RentalRequest{}, false
		}
		end, err := parseWhen(p.End)
		if err != nil {
			RespondError(c, http.StatusBadRequest, "end must be YYYY-MM-DD or 'YYYY-MM-DD HH:MM:SS'", err)
			return models.RentalRequest{}, false
		}
		req.End = end
	}
	return req, true
}

// POST /api/rentals/quote
func QuoteRental(c *gin.Context) {
	var payload rentalPayload
	if !BindJSONOrError(c, &payload) {
		return
	}
	req, ok := payload.toRequest(c)
	if !ok {
		return
	}

	svc := rentalService(c)
	q, err := svc.Quote(req)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, q)
}

// POST /api/rentals
func CreateRental(c *gin.Context) {
	var payload rentalPayload
	if !BindJSONOrError(c, &payload) {
		return
	}
	req, ok := payload.toRequest(c)
	if !ok {
		return
	}

	svc := rentalService(c)
	rental, err := svc.CreateRental(req)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, rental)
}

// GET /api/rentals?vehicleId=3&page=1&limit=50
func GetRentals(c *gin.Context) {
	vehicleID, _ := strconv.ParseUint(strings.TrimSpace(c.Query("vehicleId")), 10, 64)
	limit, offset := pageParams(c)

	repo := repositories.RentalRepository{}
	list, err := repo.List(vehicleID, limit, offset)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "failed to fetch rentals", err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// GET /api/rentals/:id/agreement?delivery=50&collection=50&insurancePerDay=10&storage=80
func GetRentalAgreementPDF(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		RespondError(c, http.StatusBadRequest, "invalid id", err)
		return
	}

	extras := services.ClaimExtras{
		DeliveryCharge:   queryFloat(c, "delivery"),
		CollectionCharge: queryFloat(c, "collection"),
		InsurancePerDay:  queryFloat(c, "insurancePerDay"),
		StorageTotal:     queryFloat(c, "storage"),
	}

	svc := services.DocsService{
		Config:    engineConfig(),
		RequestID: middleware.GetRequestID(c),
	}
	pdf, filename, err := svc.GenerateHireAgreement(id, extras)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", pdf)
}

func rentalService(c *gin.Context) services.RentalService {
	return services.RentalService{
		VehicleRepo: repositories.VehicleRepository{},
		RentalRepo:  repositories.RentalRepository{},
		Config:      engineConfig(),
		RequestID:   middleware.GetRequestID(c),
	}
}

func queryFloat(c *gin.Context, key string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(c.Query(key)), 64)
	if err != nil || v < 0 {
		return 0
	}
	return v
}

// parseWhen accepts a date or datetime; dates land at local midnight, the
// convention the billing alignment expects.
func parseWhen(s string) (time.Time, error) {
	if t, err := utils.ParseDate(s); err == nil {
		return t, nil
	}
	return utils.ParseDateTime(s)
}
