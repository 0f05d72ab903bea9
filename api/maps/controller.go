package mapapi

import (
	"net/http"
	"strconv"

	"github.com/Inteligencia-Artificial-UTalca/unidad-4-rule-based-pcg-teamrc/mapgen"
	"github.com/Inteligencia-Artificial-UTalca/unidad-4-rule-based-pcg-teamrc/service/i"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	defaultListLimit = 10
	maxListLimit     = 100
)

// MapController manages map generation and retrieval over HTTP.
type MapController struct {
	mapService i.MapService
}

// NewMapController initializes a MapController.
func NewMapController(s i.MapService) (*MapController, error) {
	return &MapController{
		mapService: s,
	}, nil
}

// RegisterPublic registers public routes.
func (mc *MapController) RegisterPublic(route *gin.RouterGroup) {
	maps := route.Group("/maps")
	{
		maps.GET("/", mc.list)
		maps.GET("/:ID", mc.byID)
		maps.GET("/:ID/ascii", mc.ascii)
	}
}

// RegisterProtected registers privileged routes.
func (mc *MapController) RegisterProtected(route *gin.RouterGroup) {
	maps := route.Group("/maps")
	{
		maps.POST("/", mc.generate)
		maps.POST("/:ID/regenerate", mc.regenerate)
		maps.DELETE("/:ID", mc.remove)
	}
}

// generate handles map generation requests.
func (mc *MapController) generate(ctx *gin.Context) {
	var request GenerateRequest
	if err := ctx.ShouldBind(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	record, err := mc.mapService.Generate(request.Name, request.Params())
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusCreated, newMapResponse(record))
}

// list retrieves the most recent maps.
func (mc *MapController) list(ctx *gin.Context) {
	limit, err := strconv.ParseInt(ctx.DefaultQuery("limit", strconv.Itoa(defaultListLimit)), 10, 64)
	if err != nil || limit <= 0 {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "limit must be a positive integer"})
		return
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}

	records, err := mc.mapService.Latest(limit)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "error while listing maps"})
		return
	}

	responses := make([]*MapResponse, 0, len(records))
	for _, record := range records {
		responses = append(responses, newMapResponse(record))
	}
	ctx.JSON(http.StatusOK, responses)
}

// byID retrieves a single map.
func (mc *MapController) byID(ctx *gin.Context) {
	id, ok := mc.parseID(ctx)
	if !ok {
		return
	}

	record, err := mc.mapService.ByID(id)
	if err != nil {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "map not found"})
		return
	}

	ctx.JSON(http.StatusOK, newMapResponse(record))
}

// ascii renders a map as plain text, '#' for occupied cells and '.' for
// empty ones.
func (mc *MapController) ascii(ctx *gin.Context) {
	id, ok := mc.parseID(ctx)
	if !ok {
		return
	}

	record, err := mc.mapService.ByID(id)
	if err != nil {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "map not found"})
		return
	}

	ctx.String(http.StatusOK, mapgen.FromCells(record.Cells).String())
}

// regenerate reruns a map's parameters under a fresh seed.
func (mc *MapController) regenerate(ctx *gin.Context) {
	id, ok := mc.parseID(ctx)
	if !ok {
		return
	}

	record, err := mc.mapService.Regenerate(id)
	if err != nil {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "map not found"})
		return
	}

	ctx.JSON(http.StatusOK, newMapResponse(record))
}

// remove deletes a map.
func (mc *MapController) remove(ctx *gin.Context) {
	id, ok := mc.parseID(ctx)
	if !ok {
		return
	}

	if err := mc.mapService.Delete(id); err != nil {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "map not found"})
		return
	}

	ctx.Status(http.StatusNoContent)
}

// parseID reads the ID path parameter, replying 400 on malformed input.
func (mc *MapController) parseID(ctx *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(ctx.Params.ByName("ID"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "malformed map ID"})
		return uuid.Nil, false
	}
	return id, true
}
