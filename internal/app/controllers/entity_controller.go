package controllers

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/oguzhan/uniregistry/internal/app/services"
	"github.com/oguzhan/uniregistry/internal/pkg/respond"
)

// EntityController adapts HTTP requests onto one entity service. The same
// controller type serves all six entities; only the service instance and
// display names differ.
type EntityController[T any] struct {
	service  *services.EntityService[T]
	resource string // singular display name, e.g. "Department"
	plural   string // plural display name, e.g. "Departments"
}

// NewEntityController creates a controller for one entity service.
func NewEntityController[T any](service *services.EntityService[T], plural string) *EntityController[T] {
	return &EntityController[T]{
		service:  service,
		resource: service.Resource(),
		plural:   plural,
	}
}

// Register mounts the five CRUD routes on the given group.
func (c *EntityController[T]) Register(rg *gin.RouterGroup) {
	rg.GET("", c.List)
	rg.GET("/:id", c.GetByID)
	rg.POST("", c.Create)
	rg.PUT("/:id", c.Update)
	rg.DELETE("/:id", c.Delete)
}

func (c *EntityController[T]) parseID(ctx *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		respond.BadRequest(ctx, err, "Invalid "+strings.ToLower(c.resource)+" ID")
		return 0, false
	}
	return id, true
}

// List returns all records, ordered by primary key.
func (c *EntityController[T]) List(ctx *gin.Context) {
	records, err := c.service.List(ctx)
	if err != nil {
		respond.Error(ctx, err, "Failed to retrieve "+strings.ToLower(c.plural))
		return
	}
	respond.Success(ctx, records, c.plural+" retrieved successfully")
}

// GetByID returns one record or 404.
func (c *EntityController[T]) GetByID(ctx *gin.Context) {
	id, ok := c.parseID(ctx)
	if !ok {
		return
	}

	record, err := c.service.GetByID(ctx, id)
	if err != nil {
		respond.HandleError(ctx, err, c.resource, "Failed to retrieve "+strings.ToLower(c.resource))
		return
	}
	respond.Success(ctx, record, c.resource+" retrieved successfully")
}

// Create inserts the posted record and returns it as stored.
func (c *EntityController[T]) Create(ctx *gin.Context) {
	var record T
	if err := ctx.ShouldBindJSON(&record); err != nil {
		respond.BadRequest(ctx, err, "Invalid "+strings.ToLower(c.resource)+" data")
		return
	}

	created, err := c.service.Create(ctx, &record)
	if err != nil {
		respond.Error(ctx, err, "Failed to create "+strings.ToLower(c.resource))
		return
	}
	respond.Created(ctx, created, c.resource+" created successfully")
}

// Update replaces the record's fields and returns the updated row or 404.
func (c *EntityController[T]) Update(ctx *gin.Context) {
	id, ok := c.parseID(ctx)
	if !ok {
		return
	}

	var record T
	if err := ctx.ShouldBindJSON(&record); err != nil {
		respond.BadRequest(ctx, err, "Invalid "+strings.ToLower(c.resource)+" data")
		return
	}

	updated, err := c.service.Update(ctx, id, &record)
	if err != nil {
		respond.HandleError(ctx, err, c.resource, "Failed to update "+strings.ToLower(c.resource))
		return
	}
	respond.Success(ctx, updated, c.resource+" updated successfully")
}

// Delete removes the record and returns its prior contents or 404.
func (c *EntityController[T]) Delete(ctx *gin.Context) {
	id, ok := c.parseID(ctx)
	if !ok {
		return
	}

	deleted, err := c.service.Delete(ctx, id)
	if err != nil {
		respond.HandleError(ctx, err, c.resource, "Failed to delete "+strings.ToLower(c.resource))
		return
	}
	respond.Success(ctx, deleted, c.resource+" deleted successfully")
}
