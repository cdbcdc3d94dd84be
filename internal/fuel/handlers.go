package fuel

import "github.com/gofiber/fiber/v2"

func RegisterRoutes(r fiber.Router, svc *Service, authMiddleware fiber.Handler) {
	r.Post("/", authMiddleware, func(c *fiber.Ctx) error {
		var req FillUp
		if err := c.BodyParser(&req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		if req.VehicleID == "" || req.Volume <= 0 {
			return fiber.NewError(fiber.StatusBadRequest, "vehicle_id and volume_l required")
		}
		fillUp, err := svc.AddFillUp(c.Context(), req)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
		return c.Status(fiber.StatusCreated).JSON(fillUp)
	})

	r.Get("/", func(c *fiber.Ctx) error {
		vehicleID := c.Query("vehicle_id")
		if vehicleID == "" {
			return fiber.NewError(fiber.StatusBadRequest, "vehicle_id required")
		}
		fillUps, err := svc.FillUps(c.Context(), vehicleID)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
		return c.JSON(fillUps)
	})

	r.Get("/economy", func(c *fiber.Ctx) error {
		vehicleID := c.Query("vehicle_id")
		if vehicleID == "" {
			return fiber.NewError(fiber.StatusBadRequest, "vehicle_id required")
		}
		report, err := svc.EconomyReport(c.Context(), vehicleID)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
		return c.JSON(report)
	})

	r.Delete("/:id", authMiddleware, func(c *fiber.Ctx) error {
		if err := svc.DeleteFillUp(c.Context(), c.Params("id")); err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
		return c.SendStatus(fiber.StatusNoContent)
	})
}
