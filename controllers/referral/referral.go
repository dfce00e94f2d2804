package referral

import (
	"github.com/hidogang/chipkuold-sub000/helpers"
	"github.com/hidogang/chipkuold-sub000/models"
	"github.com/hidogang/chipkuold-sub000/services"

	"github.com/gofiber/fiber/v2"
)

func Earnings(c *fiber.Ctx) error {
	account, ok := c.Locals("account").(models.Account)
	if !ok {
		return helpers.JSONError(c, "INVALID_SESSION")
	}

	earnings, err := services.ListReferralEarnings(account.ID, c.QueryBool("unclaimed", false))
	if err != nil {
		return helpers.JSONEngineError(c, err)
	}

	return helpers.JSONSuccess(c, "Referral earnings retrieved", fiber.Map{
		"total_referral_earnings": helpers.FormatFloat(account.TotalReferralEarnings, 2),
		"total_team_earnings":     helpers.FormatFloat(account.TotalTeamEarnings, 2),
		"earnings":                earnings,
	})
}

type ClaimEarningRequest struct {
	EarningID uint `json:"earning_id"`
}

func ClaimEarning(c *fiber.Ctx) error {
	var req ClaimEarningRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.JSONError(c, "INVALID_JSON")
	}

	account, ok := c.Locals("account").(models.Account)
	if !ok {
		return helpers.JSONError(c, "INVALID_SESSION")
	}

	amount, err := services.ClaimReferralEarning(account.ID, req.EarningID)
	if err != nil {
		return helpers.JSONEngineError(c, err)
	}

	return helpers.JSONSuccess(c, "Earning claimed", fiber.Map{
		"earning_id": req.EarningID,
		"amount":     helpers.FormatFloat(amount, 2),
	})
}

func Milestones(c *fiber.Ctx) error {
	account, ok := c.Locals("account").(models.Account)
	if !ok {
		return helpers.JSONError(c, "INVALID_SESSION")
	}

	rewards, err := services.ListMilestoneRewards(account.ID)
	if err != nil {
		return helpers.JSONEngineError(c, err)
	}

	return helpers.JSONSuccess(c, "Milestones retrieved", rewards)
}

type ClaimMilestoneRequest struct {
	RewardID uint `json:"reward_id"`
}

func ClaimMilestone(c *fiber.Ctx) error {
	var req ClaimMilestoneRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.JSONError(c, "INVALID_JSON")
	}

	account, ok := c.Locals("account").(models.Account)
	if !ok {
		return helpers.JSONError(c, "INVALID_SESSION")
	}

	amount, err := services.ClaimMilestoneReward(account.ID, req.RewardID)
	if err != nil {
		return helpers.JSONEngineError(c, err)
	}

	return helpers.JSONSuccess(c, "Milestone claimed", fiber.Map{
		"reward_id": req.RewardID,
		"amount":    helpers.FormatFloat(amount, 2),
	})
}

// Team lists direct referrals and the salary history.
func Team(c *fiber.Ctx) error {
	account, ok := c.Locals("account").(models.Account)
	if !ok {
		return helpers.JSONError(c, "INVALID_SESSION")
	}

	referrals, err := services.ListDirectReferrals(account.ID)
	if err != nil {
		return helpers.JSONEngineError(c, err)
	}
	salaries, err := services.ListSalaryPayments(account.ID)
	if err != nil {
		return helpers.JSONEngineError(c, err)
	}

	type memberView struct {
		Username string `json:"username"`
		JoinedAt string `json:"joined_at"`
	}
	members := make([]memberView, 0, len(referrals))
	for _, r := range referrals {
		members = append(members, memberView{
			Username: r.Username,
			JoinedAt: r.CreatedAt.Format("2006-01-02"),
		})
	}

	return helpers.JSONSuccess(c, "Team retrieved", fiber.Map{
		"referral_code":   account.ReferralCode,
		"direct_referrals": members,
		"salary_payments": salaries,
	})
}
