package maintenance

import "github.com/gofiber/fiber/v2"

func RegisterRoutes(r fiber.Router, svc *Service, authMiddleware fiber.Handler) {
	r.Post("/", authMiddleware, func(c *fiber.Ctx) error {
		var req Record
		if err := c.BodyParser(&req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		if req.VehicleID == "" || req.ServiceType == "" {
			return fiber.NewError(fiber.StatusBadRequest, "vehicle_id and service_type required")
		}
		record, err := svc.AddRecord(c.Context(), req)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
		return c.Status(fiber.StatusCreated).JSON(record)
	})

	r.Get("/", func(c *fiber.Ctx) error {
		vehicleID := c.Query("vehicle_id")
		if vehicleID == "" {
			return fiber.NewError(fiber.StatusBadRequest, "vehicle_id required")
		}
		records, err := svc.Records(c.Context(), vehicleID)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
		return c.JSON(records)
	})

	r.Get("/:id", func(c *fiber.Ctx) error {
		record, err := svc.GetRecord(c.Context(), c.Params("id"))
		if err != nil {
			return fiber.NewError(fiber.StatusNotFound, "record not found")
		}
		return c.JSON(record)
	})

	r.Delete("/:id", authMiddleware, func(c *fiber.Ctx) error {
		if err := svc.DeleteRecord(c.Context(), c.Params("id")); err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
		return c.SendStatus(fiber.StatusNoContent)
	})
}
