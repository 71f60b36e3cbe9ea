package routes

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
)

const defaultPageSize = 25
const maxPageSize = 200

func parsePagination(c *fiber.Ctx) (int, int, error) {
	page, err := strconv.Atoi(c.Query("page", "1"))
	if err != nil || page < 1 {
		return 0, 0, errBadPagination
	}

	pageSize, err := strconv.Atoi(c.Query("page_size", strconv.Itoa(defaultPageSize)))
	if err != nil || pageSize < 1 {
		return 0, 0, errBadPagination
	}

	if pageSize > maxPageSize {
		pageSize = maxPageSize
	}

	return page, pageSize, nil
}

var errBadPagination = fiber.NewError(fiber.StatusBadRequest, "Parameters page and page_size should be positive integers")

func badRequest(c *fiber.Ctx, message string) error {
	c.SendStatus(fiber.StatusBadRequest)
	return c.JSON(fiber.Map{
		"error": message,
	})
}

func currentTimestamp() string {
	return time.Now().Format(time.RFC3339)
}
