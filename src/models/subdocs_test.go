package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func experienceFixture(title string) Experience {
	return Experience{
		Id:      primitive.NewObjectID(),
		Title:   title,
		Company: "Acme",
		From:    time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func TestAddEntryInsertsAtHead(t *testing.T) {
	var list []Experience

	list = AddEntry(list, Experience{Title: "First"})
	list = AddEntry(list, Experience{Title: "Second"})

	require.Len(t, list, 2)
	assert.Equal(t, "Second", list[0].Title)
	assert.Equal(t, "First", list[1].Title)
}

func TestAddEntryAssignsFreshID(t *testing.T) {
	list := AddEntry(nil, Experience{Title: "Engineer"})

	require.Len(t, list, 1)
	assert.False(t, list[0].Id.IsZero())

	list = AddEntry(list, Experience{Title: "Senior Engineer"})
	assert.NotEqual(t, list[0].Id, list[1].Id)
}

func TestAddEntryKeepsExistingEntries(t *testing.T) {
	e1 := experienceFixture("One")
	e2 := experienceFixture("Two")
	original := []Experience{e1, e2}

	list := AddEntry(original, Experience{Title: "Three"})

	require.Len(t, list, 3)
	assert.Equal(t, e1, list[1])
	assert.Equal(t, e2, list[2])
}

func TestAddThenRemoveRestoresOriginal(t *testing.T) {
	e1 := experienceFixture("One")
	e2 := experienceFixture("Two")
	original := []Experience{e1, e2}

	list := AddEntry(original, Experience{Title: "Temp"})
	list = RemoveEntryByID(list, list[0].Id)

	assert.Equal(t, original, list)
}

func TestRemoveEntryByIDUnknownIsNoop(t *testing.T) {
	original := []Experience{experienceFixture("One"), experienceFixture("Two")}

	list := RemoveEntryByID(original, primitive.NewObjectID())

	assert.Equal(t, original, list)
}

func TestRemoveEntryByIDLeavesSiblingsIntact(t *testing.T) {
	e1 := experienceFixture("One")
	e2 := experienceFixture("Two")
	e3 := experienceFixture("Three")

	list := RemoveEntryByID([]Experience{e1, e2, e3}, e2.Id)

	assert.Equal(t, []Experience{e1, e3}, list)
}

func TestUpdateEntryByID(t *testing.T) {
	e1 := experienceFixture("One")
	e2 := experienceFixture("Two")

	list, found := UpdateEntryByID([]Experience{e1, e2}, e2.Id, func(e Experience) Experience {
		e.Title = "Updated"
		return e
	})

	require.True(t, found)
	assert.Equal(t, "Updated", list[1].Title)
	assert.Equal(t, e2.Id, list[1].Id, "identifier survives the patch")
	assert.Equal(t, e1, list[0], "siblings untouched")
}

func TestUpdateEntryByIDNotFound(t *testing.T) {
	original := []Experience{experienceFixture("One")}

	list, found := UpdateEntryByID(original, primitive.NewObjectID(), func(e Experience) Experience {
		e.Title = "Updated"
		return e
	})

	assert.False(t, found)
	assert.Equal(t, original, list)
}

func TestEducationEntriesUseSameProtocol(t *testing.T) {
	list := AddEntry(nil, Education{School: "MIT", Degree: "BSc", FieldOfStudy: "CS"})
	require.Len(t, list, 1)
	assert.False(t, list[0].Id.IsZero())

	list = RemoveEntryByID(list, list[0].Id)
	assert.Empty(t, list)
}
