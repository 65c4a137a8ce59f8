package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Profile is the aggregate document: one per user, scalar fields plus the
// embedded experience and education lists.
type Profile struct {
	Id             primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	User           primitive.ObjectID `json:"user" bson:"user"`
	Company        string             `json:"company" bson:"company"`
	Website        string             `json:"website" bson:"website"`
	Location       string             `json:"location" bson:"location"`
	Status         string             `json:"status" bson:"status"`
	Skills         []string           `json:"skills" bson:"skills"`
	Bio            string             `json:"bio" bson:"bio"`
	GithubUsername string             `json:"githubusername" bson:"githubusername"`
	Social         Social             `json:"social" bson:"social"`
	Experience     []Experience       `json:"experience" bson:"experience"`
	Education      []Education        `json:"education" bson:"education"`
	CreatedAt      time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt      time.Time          `json:"updatedAt" bson:"updatedAt"`
}

// Social holds the fixed set of social links, each either empty or a
// normalized absolute URL.
type Social struct {
	Youtube   string `json:"youtube" bson:"youtube"`
	Twitter   string `json:"twitter" bson:"twitter"`
	Instagram string `json:"instagram" bson:"instagram"`
	Linkedin  string `json:"linkedin" bson:"linkedin"`
	Facebook  string `json:"facebook" bson:"facebook"`
}

type Experience struct {
	Id          primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Title       string             `json:"title" bson:"title"`
	Company     string             `json:"company" bson:"company"`
	Location    string             `json:"location" bson:"location"`
	From        time.Time          `json:"from" bson:"from"`
	To          *time.Time         `json:"to,omitempty" bson:"to,omitempty"`
	Current     bool               `json:"current" bson:"current"`
	Description string             `json:"description" bson:"description"`
}

func (e Experience) EntryID() primitive.ObjectID { return e.Id }

func (e Experience) WithEntryID(id primitive.ObjectID) Experience {
	e.Id = id
	return e
}

type Education struct {
	Id           primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	School       string             `json:"school" bson:"school"`
	Degree       string             `json:"degree" bson:"degree"`
	FieldOfStudy string             `json:"fieldofstudy" bson:"fieldofstudy"`
	From         time.Time          `json:"from" bson:"from"`
	To           *time.Time         `json:"to,omitempty" bson:"to,omitempty"`
	Current      bool               `json:"current" bson:"current"`
	Description  string             `json:"description" bson:"description"`
}

func (e Education) EntryID() primitive.ObjectID { return e.Id }

func (e Education) WithEntryID(id primitive.ObjectID) Education {
	e.Id = id
	return e
}
