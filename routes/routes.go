package routes

import (
	"github.com/hidogang/chipkuold-sub000/controllers/admin"
	"github.com/hidogang/chipkuold-sub000/controllers/auth"
	"github.com/hidogang/chipkuold-sub000/controllers/farm"
	"github.com/hidogang/chipkuold-sub000/controllers/referral"
	"github.com/hidogang/chipkuold-sub000/controllers/rewards"
	"github.com/hidogang/chipkuold-sub000/controllers/wallet"
	"github.com/hidogang/chipkuold-sub000/middlewares"

	"github.com/gofiber/fiber/v2"
)

func Setup(app *fiber.App) {
	app.Post("/auth/register", auth.Register)
	app.Post("/auth/login", auth.Login)

	farmroutes := app.Group("/farm", middlewares.SessionAuth)
	farmroutes.Get("/state", farm.FarmState)
	farmroutes.Get("/chickens", farm.ListChickens)
	farmroutes.Post("/chickens/buy", farm.BuyChicken)
	farmroutes.Post("/chickens/hatch", farm.HatchChicken)
	farmroutes.Post("/chickens/sell", farm.SellChicken)
	farmroutes.Post("/resources/buy", farm.BuyResource)
	farmroutes.Post("/eggs/sell", farm.SellEggs)

	walletroutes := app.Group("/wallet", middlewares.SessionAuth)
	walletroutes.Post("/deposit", wallet.Deposit)
	walletroutes.Post("/withdraw", wallet.Withdraw)
	walletroutes.Get("/transactions", wallet.Transactions)

	refroutes := app.Group("/referral", middlewares.SessionAuth)
	refroutes.Get("/earnings", referral.Earnings)
	refroutes.Post("/earnings/claim", referral.ClaimEarning)
	refroutes.Get("/milestones", referral.Milestones)
	refroutes.Post("/milestones/claim", referral.ClaimMilestone)
	refroutes.Get("/team", referral.Team)

	rewardroutes := app.Group("/rewards", middlewares.SessionAuth)
	rewardroutes.Get("/daily", rewards.GetDaily)
	rewardroutes.Post("/daily/claim", rewards.ClaimDaily)
	rewardroutes.Post("/spin/daily", rewards.SpinDaily)
	rewardroutes.Post("/spin/super", rewards.SpinSuper)
	rewardroutes.Get("/spin/history", rewards.SpinHistory)
	rewardroutes.Post("/box/buy", rewards.BuyBox)
	rewardroutes.Post("/box/open", rewards.OpenBox)
	rewardroutes.Post("/box/claim", rewards.ClaimBox)
	rewardroutes.Get("/box", rewards.ListBoxRewards)

	adminroutes := app.Group("/admin", middlewares.AdminAuth())
	adminroutes.Post("/deposits/confirm", admin.ConfirmDeposit)
	adminroutes.Post("/deposits/reject", admin.RejectDeposit)
	adminroutes.Post("/withdrawals/approve", admin.ApproveWithdrawal)
	adminroutes.Post("/withdrawals/reject", admin.RejectWithdrawal)
	adminroutes.Post("/prices", admin.SetPrice)
}
