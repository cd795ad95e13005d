package routes

import (
	"plate2share/internal/api/handlers"
	"plate2share/internal/middleware"
	"plate2share/pkg/jwt"

	"github.com/gofiber/fiber/v2"
)

type Config struct {
	App                 *fiber.App
	UserHandler         handlers.UserHandler
	DonationHandler     handlers.DonationHandler
	NotificationHandler handlers.NotificationHandler
	Middleware          middleware.Middleware
	JWTService          jwt.JWTService
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.Auth()
	c.Donations()
	c.Notifications()
	c.Users()
	c.GuestRoute()
}

func (c *Config) Auth() {
	auth := c.App.Group("/api/auth")
	{
		auth.Post("/register", c.UserHandler.Register)
		auth.Post("/login", c.UserHandler.Login)
		auth.Get("/me", c.Middleware.AuthMiddleware(c.JWTService), c.UserHandler.Me)
		auth.Post("/forgot-password", c.UserHandler.ForgotPassword)
		auth.Post("/reset-password", c.UserHandler.ResetPassword)
	}
}

func (c *Config) Donations() {
	donations := c.App.Group("/api/donations", c.Middleware.AuthMiddleware(c.JWTService))

	donations.Post("", c.DonationHandler.CreateDonation)
	donations.Get("", c.DonationHandler.GetDonations)
	donations.Get("/:id", c.DonationHandler.GetDonationByID)
	donations.Post("/:id/images", c.DonationHandler.UploadDonationImage)

	// admin only
	donations.Patch("/:id/status", c.Middleware.AdminMiddleware(), c.DonationHandler.UpdateDonationStatus)
	donations.Delete("/:id", c.Middleware.AdminMiddleware(), c.DonationHandler.DeleteDonation)
}

func (c *Config) Notifications() {
	notifications := c.App.Group("/api/notifications", c.Middleware.AuthMiddleware(c.JWTService))

	notifications.Get("", c.NotificationHandler.GetNotifications)
	// read-all is registered before :id so the static segment wins
	notifications.Patch("/read-all", c.NotificationHandler.MarkAllAsRead)
	notifications.Patch("/:id/read", c.NotificationHandler.MarkAsRead)
	notifications.Delete("/:id", c.NotificationHandler.DeleteNotification)
}

func (c *Config) Users() {
	users := c.App.Group(
		"/api/users",
		c.Middleware.AuthMiddleware(c.JWTService),
		c.Middleware.AdminMiddleware(),
	)

	users.Get("", c.UserHandler.GetUsers)
	users.Get("/stats/overview", c.UserHandler.GetUserStats)
	users.Get("/:id", c.UserHandler.GetUserByID)
	users.Patch("/:id", c.UserHandler.UpdateUser)
	users.Delete("/:id", c.UserHandler.DeleteUser)
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong"})
	})
}
