package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/fortistravel/fortis-tourism-backend/internal/domain"
	"github.com/fortistravel/fortis-tourism-backend/internal/service"
	"github.com/fortistravel/fortis-tourism-backend/internal/util"
)

type DestinationHandler struct {
	destinations *service.DestinationService
}

func RegisterDestinations(e *echo.Echo, auth *service.AuthService, destinations *service.DestinationService) {
	handler := &DestinationHandler{destinations: destinations}

	public := e.Group("/api/v1/destinations")
	public.GET("", handler.list)
	public.GET("/:id", handler.get)
	e.POST("/api/v1/search", handler.search)

	admin := e.Group("/api/v1/admin/destinations", RequireAuth(auth), RequireAdmin())
	admin.POST("", handler.create)
	admin.PUT("/:id", handler.update)
	admin.DELETE("/:id", handler.remove)
	admin.POST("/:id/images", handler.uploadImage)
}

// list serves the catalog, optionally narrowed by ?category= or
// ?popular=true, mirroring the public browse views.
func (h *DestinationHandler) list(c echo.Context) error {
	ctx := c.Request().Context()

	if category := strings.TrimSpace(c.QueryParam("category")); category != "" {
		destinations, err := h.destinations.ListByCategory(ctx, domain.DestinationCategory(category))
		if err != nil {
			if errors.Is(err, service.ErrValidation) {
				return c.JSON(http.StatusBadRequest, util.Error(err.Error()))
			}
			return c.JSON(http.StatusInternalServerError, util.Error("unable to load destinations"))
		}
		return c.JSON(http.StatusOK, util.Envelope{"destinations": destinations})
	}

	if c.QueryParam("popular") == "true" {
		destinations, err := h.destinations.ListPopular(ctx)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, util.Error("unable to load destinations"))
		}
		return c.JSON(http.StatusOK, util.Envelope{"destinations": destinations})
	}

	destinations, err := h.destinations.List(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, util.Error("unable to load destinations"))
	}
	return c.JSON(http.StatusOK, util.Envelope{"destinations": destinations})
}

func (h *DestinationHandler) get(c echo.Context) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Param("id")))
	if err != nil {
		return c.JSON(http.StatusBadRequest, util.Error("id must be a valid UUID"))
	}

	dest, err := h.destinations.Get(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrDestinationNotFound) {
			return c.JSON(http.StatusNotFound, util.Error("destination not found"))
		}
		return c.JSON(http.StatusInternalServerError, util.Error("unable to load destination"))
	}
	return c.JSON(http.StatusOK, util.Envelope{"destination": dest})
}

func (h *DestinationHandler) search(c echo.Context) error {
	var req struct {
		Query string `json:"query"`
	}
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, util.Error("invalid request body"))
	}

	destinations, err := h.destinations.Search(c.Request().Context(), req.Query)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, util.Error("search failed"))
	}
	return c.JSON(http.StatusOK, util.Envelope{"destinations": destinations})
}

func (h *DestinationHandler) create(c echo.Context) error {
	var fields domain.DestinationFields
	if err := c.Bind(&fields); err != nil {
		return c.JSON(http.StatusBadRequest, util.Error("invalid request body"))
	}

	dest, err := h.destinations.Create(c.Request().Context(), fields)
	if err != nil {
		if errors.Is(err, service.ErrValidation) {
			return c.JSON(http.StatusBadRequest, util.Error(err.Error()))
		}
		return c.JSON(http.StatusInternalServerError, util.Error("unable to create destination"))
	}
	return c.JSON(http.StatusCreated, util.Envelope{"destination": dest})
}

func (h *DestinationHandler) update(c echo.Context) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Param("id")))
	if err != nil {
		return c.JSON(http.StatusBadRequest, util.Error("id must be a valid UUID"))
	}

	var fields domain.DestinationFields
	if err := c.Bind(&fields); err != nil {
		return c.JSON(http.StatusBadRequest, util.Error("invalid request body"))
	}

	dest, err := h.destinations.Update(c.Request().Context(), id, fields)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrDestinationNotFound):
			return c.JSON(http.StatusNotFound, util.Error("destination not found"))
		case errors.Is(err, service.ErrValidation):
			return c.JSON(http.StatusBadRequest, util.Error(err.Error()))
		default:
			return c.JSON(http.StatusInternalServerError, util.Error("unable to update destination"))
		}
	}
	return c.JSON(http.StatusOK, util.Envelope{"destination": dest})
}

func (h *DestinationHandler) remove(c echo.Context) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Param("id")))
	if err != nil {
		return c.JSON(http.StatusBadRequest, util.Error("id must be a valid UUID"))
	}

	if err := h.destinations.Delete(c.Request().Context(), id); err != nil {
		return c.JSON(http.StatusInternalServerError, util.Error("unable to delete destination"))
	}
	return c.JSON(http.StatusOK, util.Envelope{"success": true})
}

func (h *DestinationHandler) uploadImage(c echo.Context) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Param("id")))
	if err != nil {
		return c.JSON(http.StatusBadRequest, util.Error("id must be a valid UUID"))
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		return c.JSON(http.StatusBadRequest, util.Error("image file is required"))
	}
	file, err := fileHeader.Open()
	if err != nil {
		return c.JSON(http.StatusBadRequest, util.Error("unable to read image file"))
	}
	defer file.Close()

	dest, err := h.destinations.UploadImage(c.Request().Context(), id, service.DestinationImageUpload{
		Reader:      file,
		Size:        fileHeader.Size,
		FileName:    fileHeader.Filename,
		ContentType: fileHeader.Header.Get(echo.HeaderContentType),
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrDestinationNotFound):
			return c.JSON(http.StatusNotFound, util.Error("destination not found"))
		case errors.Is(err, service.ErrValidation):
			return c.JSON(http.StatusBadRequest, util.Error(err.Error()))
		default:
			return c.JSON(http.StatusInternalServerError, util.Error("unable to store image"))
		}
	}
	return c.JSON(http.StatusCreated, util.Envelope{"destination": dest})
}
