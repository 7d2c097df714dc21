package shared_test

import (
	"errors"
	"testing"

	"github.com/jackyeh168/classpoints/src/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testAMarker struct{}
type testBMarker struct{}

type testAID = shared.EntityID[testAMarker]
type testBID = shared.EntityID[testBMarker]

var errInvalidTestID = shared.NewDomainError("TEST_ID_INVALID", shared.KindInvalidArgument, "invalid test id")

func TestNewEntityID_GeneratesUniqueUUIDs(t *testing.T) {
	id1 := shared.NewEntityID[testAMarker]()
	id2 := shared.NewEntityID[testAMarker]()

	assert.False(t, id1.IsEmpty())
	assert.NotEqual(t, id1.String(), id2.String(), "每次生成的 UUID 應該不同")
}

func TestEntityIDFromString_ValidUUID_Normalizes(t *testing.T) {
	id, err := shared.EntityIDFromString[testAMarker]("550E8400-E29B-41D4-A716-446655440000", errInvalidTestID)

	require.NoError(t, err)
	assert.Equal(t, "550e8400-e29b-41d4-a716-446655440000", id.String())
}

func TestEntityIDFromString_Invalid_ReturnsTemplateWithContext(t *testing.T) {
	tests := []struct {
		name  string
		value string
	}{
		{"空字串", ""},
		{"不是 UUID 格式", "not-a-uuid"},
		{"部分 UUID", "550e8400-e29b"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, err := shared.EntityIDFromString[testAMarker](tt.value, errInvalidTestID)

			assert.True(t, id.IsEmpty(), "解析失敗應該返回空 ID")
			assert.ErrorIs(t, err, errInvalidTestID)

			var domainErr *shared.DomainError
			require.True(t, errors.As(err, &domainErr))
			assert.Equal(t, tt.value, domainErr.Context["input"])
		})
	}
}

func TestEntityIDFromString_NilUUID_Rejected(t *testing.T) {
	_, err := shared.EntityIDFromString[testAMarker]("00000000-0000-0000-0000-000000000000", errInvalidTestID)

	assert.ErrorIs(t, err, errInvalidTestID)
}

func TestEntityIDFromString_PlainErrorTemplate_ReturnedAsIs(t *testing.T) {
	plain := errors.New("plain")

	_, err := shared.EntityIDFromString[testAMarker]("bad", plain)

	assert.Equal(t, plain, err)
}

func TestEntityID_SameUUIDDifferentMarkers_AreDistinctTypes(t *testing.T) {
	raw := "550e8400-e29b-41d4-a716-446655440000"
	a, _ := shared.EntityIDFromString[testAMarker](raw, errInvalidTestID)
	b, _ := shared.EntityIDFromString[testBMarker](raw, errInvalidTestID)

	assert.IsType(t, testAID{}, a)
	assert.IsType(t, testBID{}, b)
	assert.Equal(t, a.String(), b.String())
	// a.Equals(b) 無法編譯
}
