package vehicle

import "github.com/gofiber/fiber/v2"

func RegisterRoutes(r fiber.Router, svc *Service, authMiddleware fiber.Handler) {
	r.Post("/", authMiddleware, func(c *fiber.Ctx) error {
		var req Vehicle
		if err := c.BodyParser(&req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		if req.Name == "" || req.OwnerID == "" {
			return fiber.NewError(fiber.StatusBadRequest, "name and owner_id required")
		}
		v, err := svc.CreateVehicle(c.Context(), req)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
		return c.Status(fiber.StatusCreated).JSON(v)
	})

	r.Get("/:id", func(c *fiber.Ctx) error {
		v, err := svc.GetVehicle(c.Context(), c.Params("id"))
		if err != nil {
			return fiber.NewError(fiber.StatusNotFound, "vehicle not found")
		}
		return c.JSON(v)
	})

	r.Get("/", func(c *fiber.Ctx) error {
		ownerID := c.Query("owner_id")
		if ownerID == "" {
			return fiber.NewError(fiber.StatusBadRequest, "owner_id required")
		}
		vehicles, err := svc.Vehicles(c.Context(), ownerID)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
		return c.JSON(vehicles)
	})

	r.Put("/:id", authMiddleware, func(c *fiber.Ctx) error {
		var req Vehicle
		if err := c.BodyParser(&req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		v, err := svc.UpdateVehicle(c.Context(), c.Params("id"), req)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
		return c.JSON(v)
	})

	r.Put("/:id/odometer", authMiddleware, func(c *fiber.Ctx) error {
		var body struct {
			Odometer float64 `json:"odometer"`
		}
		if err := c.BodyParser(&body); err != nil || body.Odometer < 0 {
			return fiber.NewError(fiber.StatusBadRequest, "odometer required")
		}
		if err := svc.UpdateOdometer(c.Context(), c.Params("id"), body.Odometer); err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
		return c.SendStatus(fiber.StatusNoContent)
	})

	r.Delete("/:id", authMiddleware, func(c *fiber.Ctx) error {
		if err := svc.DeleteVehicle(c.Context(), c.Params("id")); err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
		return c.SendStatus(fiber.StatusNoContent)
	})
}
