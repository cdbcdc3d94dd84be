package recorder

import (
	"errors"

	"github.com/gofiber/fiber/v2"
)

func RegisterRoutes(r fiber.Router, rec *Recorder, authMiddleware fiber.Handler) {
	r.Post("/start", authMiddleware, func(c *fiber.Ctx) error {
		var body struct {
			VehicleID string `json:"vehicle_id"`
		}
		if err := c.BodyParser(&body); err != nil || body.VehicleID == "" {
			return fiber.NewError(fiber.StatusBadRequest, "vehicle_id required")
		}
		trip, err := rec.Start(c.Context(), body.VehicleID)
		if errors.Is(err, ErrAlreadyTracking) {
			return fiber.NewError(fiber.StatusConflict, err.Error())
		}
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
		return c.Status(fiber.StatusCreated).JSON(trip)
	})

	r.Post("/stop", authMiddleware, func(c *fiber.Ctx) error {
		trip, err := rec.Stop(c.Context())
		if errors.Is(err, ErrNotTracking) {
			return fiber.NewError(fiber.StatusConflict, err.Error())
		}
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
		return c.JSON(trip)
	})

	r.Post("/fixes", func(c *fiber.Ctx) error {
		var fix Fix
		if err := c.BodyParser(&fix); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		if err := rec.OfferFix(c.Context(), fix); err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
		return c.SendStatus(fiber.StatusAccepted)
	})

	r.Post("/authorization", func(c *fiber.Ctx) error {
		var body struct {
			State AuthorizationState `json:"state"`
		}
		if err := c.BodyParser(&body); err != nil || body.State == "" {
			return fiber.NewError(fiber.StatusBadRequest, "state required")
		}
		if err := rec.SetAuthorization(c.Context(), body.State); err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
		return c.SendStatus(fiber.StatusNoContent)
	})

	r.Get("/snapshot", func(c *fiber.Ctx) error {
		snapshot, err := rec.Snapshot(c.Context())
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
		return c.JSON(snapshot)
	})

	r.Get("/route", func(c *fiber.Ctx) error {
		points, err := rec.Route(c.Context(), c.QueryBool("interpolate"))
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
		return c.JSON(points)
	})

	r.Get("/region", func(c *fiber.Ctx) error {
		points, err := rec.Route(c.Context(), false)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
		region, ok := RouteRegion(points)
		if !ok {
			return fiber.NewError(fiber.StatusNotFound, "no route points recorded")
		}
		return c.JSON(region)
	})
}
