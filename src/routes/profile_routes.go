package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/theleywin/Backend-Dev-Connect/src/controllers"
)

// ProfileRoutes sets up profile routes: the aggregate, its experience and
// education entries, account deletion, and the GitHub repo lookup
func ProfileRoutes(app *fiber.App, pc *controllers.ProfileController, protect fiber.Handler) {
	profile := app.Group("/api/profile")

	profile.Get("/me", protect, pc.GetMyProfile)
	profile.Post("/", protect, pc.UpsertProfile)
	profile.Get("/", pc.GetAllProfiles)
	profile.Get("/user/:user_id", pc.GetProfileByUserID)
	profile.Delete("/", protect, pc.DeleteAccount)

	profile.Put("/experience", protect, pc.AddExperience)
	profile.Put("/experience/:exp_id", protect, pc.UpdateExperience)
	profile.Delete("/experience/:exp_id", protect, pc.DeleteExperience)

	profile.Put("/education", protect, pc.AddEducation)
	profile.Put("/education/:edu_id", protect, pc.UpdateEducation)
	profile.Delete("/education/:edu_id", protect, pc.DeleteEducation)

	profile.Get("/github/:username", pc.GetGithubRepos)
}
