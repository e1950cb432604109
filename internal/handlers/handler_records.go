package handlers

import (
	"net/http"

	"github.com/SscSPs/sales_crm_backend/internal/core/domain"
	portssvc "github.com/SscSPs/sales_crm_backend/internal/core/ports/services"
	"github.com/SscSPs/sales_crm_backend/internal/dto"
	"github.com/SscSPs/sales_crm_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// listQuery is implemented by the per-entity list parameter DTOs.
type listQuery interface {
	ToListQuery() (domain.ListQuery, error)
}

// recordEndpoints holds the CRUD plumbing shared by the record handlers.
// name is the singular noun used in log lines and error messages.
type recordEndpoints[T any] struct {
	svc  portssvc.RecordSvcFacade[T]
	name string
}

func (e recordEndpoints[T]) list(c *gin.Context, params listQuery) {
	if !bindQuery(c, params) {
		return
	}
	q, err := params.ToListQuery()
	if err != nil {
		respondError(c, err, "list "+e.name+"s")
		return
	}
	page, err := e.svc.List(c.Request.Context(), q)
	if err != nil {
		respondError(c, err, "list "+e.name+"s")
		return
	}
	middleware.GetLoggerFromCtx(c.Request.Context()).Debug().
		Int("count", len(page.Items)).Int("total", page.Total).Msgf("Listed %ss", e.name)
	c.JSON(http.StatusOK, dto.NewListResponse(page))
}

func (e recordEndpoints[T]) get(c *gin.Context) {
	rec, err := e.svc.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, "get "+e.name)
		return
	}
	c.JSON(http.StatusOK, rec)
}

func (e recordEndpoints[T]) create(c *gin.Context, rec T) {
	actorID, ok := actorFrom(c)
	if !ok {
		return
	}
	created, err := e.svc.Create(c.Request.Context(), actorID, rec)
	if err != nil {
		respondError(c, err, "create "+e.name)
		return
	}
	middleware.GetLoggerFromCtx(c.Request.Context()).Info().Msgf("Created %s", e.name)
	c.JSON(http.StatusCreated, created)
}

func (e recordEndpoints[T]) update(c *gin.Context, patch domain.Patch[T]) {
	actorID, ok := actorFrom(c)
	if !ok {
		return
	}
	id := c.Param("id")
	updated, err := e.svc.Update(c.Request.Context(), actorID, id, patch)
	if err != nil {
		respondError(c, err, "update "+e.name)
		return
	}
	middleware.GetLoggerFromCtx(c.Request.Context()).Info().Str("id", id).Msgf("Updated %s", e.name)
	c.JSON(http.StatusOK, updated)
}

func (e recordEndpoints[T]) delete(c *gin.Context) {
	actorID, ok := actorFrom(c)
	if !ok {
		return
	}
	id := c.Param("id")
	if err := e.svc.Delete(c.Request.Context(), actorID, id); err != nil {
		respondError(c, err, "delete "+e.name)
		return
	}
	middleware.GetLoggerFromCtx(c.Request.Context()).Info().Str("id", id).Msgf("Deleted %s", e.name)
	c.Status(http.StatusNoContent)
}
