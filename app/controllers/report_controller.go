package controllers

import (
	"io"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/EcoGuardHQ/EcoGuard/internal/pkg/reporting"
	"github.com/EcoGuardHQ/EcoGuard/internal/pkg/upload"
	"github.com/EcoGuardHQ/EcoGuard/internal/pkg/usercontext"
)

type createReportRequest struct {
	Latitude    *float64 `json:"latitude"`
	Longitude   *float64 `json:"longitude"`
	Address     string   `json:"address"`
	Description string   `json:"description"`
}

// HandleCreateReport submits a waste report. Accepts JSON or multipart
// form data; the multipart form may carry an optional photo whose EXIF
// position can stand in for missing coordinates.
func HandleCreateReport(c *fiber.Ctx) error {
	input, err := parseCreateReport(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   "invalid_input",
			"message": "malformed request body",
		})
	}

	if len(input.Photo) > 0 {
		if _, err := upload.ValidatePhotoBySniff(input.PhotoName, input.Photo); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error":   "invalid_input",
				"message": err.Error(),
			})
		}
	}

	report, err := reportService.CreateReport(c.Context(), usercontext.GetSession(c), *input, c.IP())
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"report": report,
	})
}

// HandleListReports returns a page of all reports (dashboard, map, admin).
func HandleListReports(c *fiber.Ctx) error {
	offset := c.QueryInt("offset", 0)
	limit := c.QueryInt("limit", 50)
	if limit < 1 || limit > 200 {
		limit = 50
	}

	reports, err := reportService.ListReports(offset, limit)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(fiber.Map{
		"reports": reports,
	})
}

// HandleMyReports returns the authenticated user's own reports.
func HandleMyReports(c *fiber.Ctx) error {
	reports, err := reportService.ListByUser(usercontext.GetSession(c))
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(fiber.Map{
		"reports": reports,
	})
}

// HandleUpdateReportStatus transitions a report; admin only (enforced by
// the route's middleware).
func HandleUpdateReportStatus(c *fiber.Ctx) error {
	reportID, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   "invalid_input",
			"message": "invalid report id",
		})
	}

	var req struct {
		Status string `json:"status"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   "invalid_input",
			"message": "malformed request body",
		})
	}

	report, err := reportService.UpdateReportStatus(usercontext.GetSession(c), uint(reportID), req.Status, c.IP())
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(fiber.Map{
		"report": report,
	})
}

func parseCreateReport(c *fiber.Ctx) (*reporting.CreateReportInput, error) {
	input := &reporting.CreateReportInput{}

	if file, err := c.FormFile("photo"); err == nil && file != nil {
		f, err := file.Open()
		if err != nil {
			return nil, err
		}
		defer f.Close()
		data, err := io.ReadAll(f)
		if err != nil {
			return nil, err
		}
		input.Photo = data
		input.PhotoName = file.Filename

		input.Description = c.FormValue("description")
		input.Address = c.FormValue("address")
		if lat, err1 := strconv.ParseFloat(c.FormValue("latitude"), 64); err1 == nil {
			if lng, err2 := strconv.ParseFloat(c.FormValue("longitude"), 64); err2 == nil {
				input.Latitude = lat
				input.Longitude = lng
				input.HasLocation = true
			}
		}
		return input, nil
	}

	var req createReportRequest
	if err := c.BodyParser(&req); err != nil {
		return nil, err
	}

	input.Description = req.Description
	input.Address = req.Address
	if req.Latitude != nil && req.Longitude != nil {
		input.Latitude = *req.Latitude
		input.Longitude = *req.Longitude
		input.HasLocation = true
	}

	return input, nil
}
