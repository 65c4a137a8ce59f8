package profiles

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSkillListAcceptsBothShapes(t *testing.T) {
	var fromArray SkillList
	require.NoError(t, json.Unmarshal([]byte(`["js","css"]`), &fromArray))
	assert.Equal(t, SkillList{"js", "css"}, fromArray)

	var fromString SkillList
	require.NoError(t, json.Unmarshal([]byte(`"a, b ,c"`), &fromString))
	assert.Equal(t, SkillList{"a", " b ", "c"}, fromString)

	var fromNull SkillList
	require.NoError(t, json.Unmarshal([]byte(`null`), &fromNull))
	assert.Nil(t, fromNull)

	var bad SkillList
	assert.Error(t, json.Unmarshal([]byte(`42`), &bad))
}

func TestDateAcceptsBothLayouts(t *testing.T) {
	var d Date
	require.NoError(t, json.Unmarshal([]byte(`"2021-01-01"`), &d))
	assert.Equal(t, time.Date(2021, 1, 1, 0, 0, 0, 0, time.UTC), d.Time)

	var rfc Date
	require.NoError(t, json.Unmarshal([]byte(`"2021-01-01T10:30:00Z"`), &rfc))
	assert.Equal(t, time.Date(2021, 1, 1, 10, 30, 0, 0, time.UTC), rfc.Time)

	var empty Date
	require.NoError(t, json.Unmarshal([]byte(`""`), &empty))
	assert.True(t, empty.IsZero())

	var bad Date
	assert.Error(t, json.Unmarshal([]byte(`"yesterday"`), &bad))
}
