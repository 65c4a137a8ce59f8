package profiles

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/theleywin/Backend-Dev-Connect/src/models"
)

// SkillList accepts either a JSON array of strings or a single comma-delimited
// string. Clients of the original API sent both shapes; they are folded into
// one canonical slice here, before anything reaches the store.
type SkillList []string

func (s *SkillList) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		*s = nil
		return nil
	}

	var arr []string
	if err := json.Unmarshal(b, &arr); err == nil {
		*s = arr
		return nil
	}

	var str string
	if err := json.Unmarshal(b, &str); err == nil {
		*s = strings.Split(str, ",")
		return nil
	}

	return fmt.Errorf("skills must be a string or an array of strings")
}

// Date accepts YYYY-MM-DD or RFC3339 timestamps on the wire.
type Date struct {
	time.Time
}

func (d *Date) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		d.Time = time.Time{}
		return nil
	}

	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	if s == "" {
		d.Time = time.Time{}
		return nil
	}

	for _, layout := range []string{time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, s); err == nil {
			d.Time = t.UTC()
			return nil
		}
	}
	return fmt.Errorf("cannot parse %q as a date", s)
}

func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.Time)
}

type ProfileInput struct {
	Company        string    `json:"company"`
	Website        string    `json:"website"`
	Location       string    `json:"location"`
	Status         string    `json:"status" validate:"required"`
	Skills         SkillList `json:"skills"`
	Bio            string    `json:"bio"`
	GithubUsername string    `json:"githubusername"`
	Youtube        string    `json:"youtube"`
	Twitter        string    `json:"twitter"`
	Instagram      string    `json:"instagram"`
	Linkedin       string    `json:"linkedin"`
	Facebook       string    `json:"facebook"`
}

type ExperienceInput struct {
	Title       string `json:"title" validate:"required"`
	Company     string `json:"company" validate:"required"`
	Location    string `json:"location"`
	From        Date   `json:"from"`
	To          *Date  `json:"to"`
	Current     bool   `json:"current"`
	Description string `json:"description"`
}

func (in ExperienceInput) toModel() models.Experience {
	e := models.Experience{
		Title:       in.Title,
		Company:     in.Company,
		Location:    in.Location,
		From:        in.From.Time,
		Current:     in.Current,
		Description: in.Description,
	}
	if in.To != nil && !in.To.IsZero() {
		t := in.To.Time
		e.To = &t
	}
	return e
}

type EducationInput struct {
	School       string `json:"school" validate:"required"`
	Degree       string `json:"degree" validate:"required"`
	FieldOfStudy string `json:"fieldofstudy" validate:"required"`
	From         Date   `json:"from"`
	To           *Date  `json:"to"`
	Current      bool   `json:"current"`
	Description  string `json:"description"`
}

func (in EducationInput) toModel() models.Education {
	e := models.Education{
		School:       in.School,
		Degree:       in.Degree,
		FieldOfStudy: in.FieldOfStudy,
		From:         in.From.Time,
		Current:      in.Current,
		Description:  in.Description,
	}
	if in.To != nil && !in.To.IsZero() {
		t := in.To.Time
		e.To = &t
	}
	return e
}
