package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/fortistravel/fortis-tourism-backend/internal/service"
	"github.com/fortistravel/fortis-tourism-backend/internal/util"
)

type WishlistHandler struct {
	wishlist *service.WishlistService
}

func RegisterWishlist(e *echo.Echo, auth *service.AuthService, wishlist *service.WishlistService) {
	handler := &WishlistHandler{wishlist: wishlist}

	group := e.Group("/api/v1/wishlist", RequireAuth(auth))
	group.GET("", handler.list)
	group.POST("/:destinationId", handler.save)
	group.DELETE("/:destinationId", handler.remove)
}

func (h *WishlistHandler) list(c echo.Context) error {
	user, ok := CurrentUser(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, util.Error("authentication required"))
	}
	items, err := h.wishlist.List(c.Request().Context(), user.ID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, util.Error("unable to load wishlist"))
	}
	return c.JSON(http.StatusOK, util.Envelope{"wishlist": items})
}

func (h *WishlistHandler) save(c echo.Context) error {
	user, ok := CurrentUser(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, util.Error("authentication required"))
	}
	destinationID, err := uuid.Parse(strings.TrimSpace(c.Param("destinationId")))
	if err != nil {
		return c.JSON(http.StatusBadRequest, util.Error("destinationId must be a valid UUID"))
	}

	item, err := h.wishlist.Save(c.Request().Context(), user.ID, destinationID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrDestinationNotFound):
			return c.JSON(http.StatusNotFound, util.Error("destination not found"))
		case errors.Is(err, service.ErrWishlistDuplicate):
			return c.JSON(http.StatusConflict, util.Error("destination already saved"))
		default:
			return c.JSON(http.StatusInternalServerError, util.Error("unable to save destination"))
		}
	}
	return c.JSON(http.StatusCreated, util.Envelope{"item": item})
}

// remove is idempotent toward the client: deleting an absent entry
// still answers 200 so retried removals do not surface as failures.
func (h *WishlistHandler) remove(c echo.Context) error {
	user, ok := CurrentUser(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, util.Error("authentication required"))
	}
	destinationID, err := uuid.Parse(strings.TrimSpace(c.Param("destinationId")))
	if err != nil {
		return c.JSON(http.StatusBadRequest, util.Error("destinationId must be a valid UUID"))
	}

	if err := h.wishlist.Remove(c.Request().Context(), user.ID, destinationID); err != nil {
		if errors.Is(err, service.ErrWishlistNotFound) {
			return c.JSON(http.StatusOK, util.Envelope{"success": true})
		}
		return c.JSON(http.StatusInternalServerError, util.Error("unable to remove destination"))
	}
	return c.JSON(http.StatusOK, util.Envelope{"success": true})
}
