package controllers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/EcoGuardHQ/EcoGuard/internal/pkg/usercontext"
)

// HandleListRewards returns the reward catalog.
func HandleListRewards(c *fiber.Ctx) error {
	catalog, err := rewardService.Catalog()
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(fiber.Map{
		"rewards": catalog,
	})
}

// HandleRedeemReward exchanges the user's points for a catalog reward.
func HandleRedeemReward(c *fiber.Ctx) error {
	rewardID, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   "invalid_input",
			"message": "invalid reward id",
		})
	}

	sess := usercontext.GetSession(c)
	redemption, err := rewardService.Redeem(sess, uint(rewardID), c.IP())
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"redemption": redemption,
		"points":     sess.User.Points,
	})
}

// HandleMyRewards returns the authenticated user's redemption history.
func HandleMyRewards(c *fiber.Ctx) error {
	redemptions, err := rewardService.RedemptionsFor(usercontext.GetSession(c))
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(fiber.Map{
		"redemptions": redemptions,
	})
}
