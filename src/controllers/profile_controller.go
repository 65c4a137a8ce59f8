package controllers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/theleywin/Backend-Dev-Connect/src/github"
	"github.com/theleywin/Backend-Dev-Connect/src/lib"
	"github.com/theleywin/Backend-Dev-Connect/src/profiles"
)

type ProfileController struct {
	svc *profiles.Service
	gh  *github.Client
	log lib.Logger
}

func NewProfileController(svc *profiles.Service, gh *github.Client, log lib.Logger) *ProfileController {
	return &ProfileController{svc: svc, gh: gh, log: log}
}

// GetMyProfile returns the authenticated user's own profile
func (pc *ProfileController) GetMyProfile(c *fiber.Ctx) error {
	profile, err := pc.svc.GetByUser(c.Context(), currentUserID(c))
	if err != nil {
		if errors.Is(err, lib.ErrNotFound) {
			return c.Status(fiber.StatusBadRequest).JSON(lib.MessageResponse("There is no profile for this user"))
		}
		return pc.renderError(c, err)
	}
	return c.JSON(profile)
}

// UpsertProfile creates the authenticated user's profile or replaces its fields
func (pc *ProfileController) UpsertProfile(c *fiber.Ctx) error {
	var input profiles.ProfileInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(lib.MessageResponse("Invalid request body"))
	}

	profile, err := pc.svc.Upsert(c.Context(), currentUserID(c), input)
	if err != nil {
		return pc.renderError(c, err)
	}
	return c.JSON(profile)
}

// GetAllProfiles returns every profile
func (pc *ProfileController) GetAllProfiles(c *fiber.Ctx) error {
	all, err := pc.svc.GetAll(c.Context())
	if err != nil {
		return pc.renderError(c, err)
	}
	return c.JSON(all)
}

// GetProfileByUserID returns a profile by the owner's public id. A malformed
// id is rejected before any lookup, distinct from a missing profile
func (pc *ProfileController) GetProfileByUserID(c *fiber.Ctx) error {
	profile, err := pc.svc.GetByUserID(c.Context(), c.Params("user_id"))
	if err != nil {
		return pc.renderError(c, err)
	}
	return c.JSON(profile)
}

// DeleteAccount removes the authenticated user's posts, profile, and account
func (pc *ProfileController) DeleteAccount(c *fiber.Ctx) error {
	if err := pc.svc.DeleteOwner(c.Context(), currentUserID(c)); err != nil {
		return pc.renderError(c, err)
	}
	return c.JSON(lib.MessageResponse("User deleted"))
}

// AddExperience prepends a new experience entry to the user's profile
func (pc *ProfileController) AddExperience(c *fiber.Ctx) error {
	var input profiles.ExperienceInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(lib.MessageResponse("Invalid request body"))
	}

	profile, err := pc.svc.AddExperience(c.Context(), currentUserID(c), input)
	if err != nil {
		return pc.renderError(c, err)
	}
	return c.JSON(profile)
}

// UpdateExperience updates an experience entry by its id. The entry is located
// across all profiles, not only the caller's own (see DESIGN.md)
func (pc *ProfileController) UpdateExperience(c *fiber.Ctx) error {
	var input profiles.ExperienceInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(lib.MessageResponse("Invalid request body"))
	}

	profile, err := pc.svc.UpdateExperience(c.Context(), c.Params("exp_id"), input)
	if err != nil {
		return pc.renderError(c, err)
	}
	return c.JSON(profile)
}

// DeleteExperience removes an experience entry from the user's own profile
func (pc *ProfileController) DeleteExperience(c *fiber.Ctx) error {
	profile, err := pc.svc.RemoveExperience(c.Context(), currentUserID(c), c.Params("exp_id"))
	if err != nil {
		return pc.renderError(c, err)
	}
	return c.JSON(profile)
}

// AddEducation prepends a new education entry to the user's profile
func (pc *ProfileController) AddEducation(c *fiber.Ctx) error {
	var input profiles.EducationInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(lib.MessageResponse("Invalid request body"))
	}

	profile, err := pc.svc.AddEducation(c.Context(), currentUserID(c), input)
	if err != nil {
		return pc.renderError(c, err)
	}
	return c.JSON(profile)
}

// UpdateEducation updates an education entry by its id
func (pc *ProfileController) UpdateEducation(c *fiber.Ctx) error {
	var input profiles.EducationInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(lib.MessageResponse("Invalid request body"))
	}

	profile, err := pc.svc.UpdateEducation(c.Context(), c.Params("edu_id"), input)
	if err != nil {
		return pc.renderError(c, err)
	}
	return c.JSON(profile)
}

// DeleteEducation removes an education entry from the user's own profile
func (pc *ProfileController) DeleteEducation(c *fiber.Ctx) error {
	profile, err := pc.svc.RemoveEducation(c.Context(), currentUserID(c), c.Params("edu_id"))
	if err != nil {
		return pc.renderError(c, err)
	}
	return c.JSON(profile)
}

// GetGithubRepos returns the five oldest public repos for a GitHub handle
func (pc *ProfileController) GetGithubRepos(c *fiber.Ctx) error {
	repos, err := pc.gh.FetchPublicRepos(c.Context(), c.Params("username"))
	if err != nil {
		return pc.renderError(c, err)
	}
	return c.JSON(repos)
}

func (pc *ProfileController) renderError(c *fiber.Ctx, err error) error {
	var verr *lib.ValidationError
	if errors.As(err, &verr) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": verr.Fields})
	}

	status := lib.ToHTTPStatus(err)
	switch {
	case errors.Is(err, lib.ErrInvalidID):
		return c.Status(status).JSON(lib.MessageResponse("Invalid identifier"))
	case errors.Is(err, lib.ErrNotFound):
		return c.Status(status).JSON(lib.MessageResponse("Profile not found"))
	case errors.Is(err, lib.ErrEnrichmentUnavailable):
		return c.Status(status).JSON(lib.MessageResponse("No Github profile found"))
	default:
		pc.log.Error("unexpected failure", err)
		return c.Status(status).JSON(lib.MessageResponse("Server error"))
	}
}

func currentUserID(c *fiber.Ctx) primitive.ObjectID {
	return c.Locals("userID").(primitive.ObjectID)
}
