package handler

import (
	"strconv"

	"go-warehouse-api/internal/repository"
	"go-warehouse-api/pkg/apperr"

	"github.com/gofiber/fiber/v2"
)

// handleError maps service errors onto wire responses via the apperr taxonomy.
func handleError(c *fiber.Ctx, err error) error {
	ae := apperr.From(err)
	return c.Status(ae.HTTPStatus).JSON(fiber.Map{
		"code":  ae.Code,
		"error": ae.Message,
	})
}

// parseID reads the :id route param as an unsigned integer.
func parseID(c *fiber.Ctx) (uint, error) {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}

func queryUint(c *fiber.Ctx, key string) uint {
	v, err := strconv.ParseUint(c.Query(key), 10, 32)
	if err != nil {
		return 0
	}
	return uint(v)
}

// parseSort reads sort_by / sort_dir query params. The repository layer only
// honors whitelisted fields, so this never needs to reject anything.
func parseSort(c *fiber.Ctx) repository.Sort {
	return repository.Sort{
		Field: c.Query("sort_by", "id"),
		Desc:  c.Query("sort_dir") == "desc",
	}
}
