package domain

import (
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewIDList(t *testing.T) {
	a, b, c := uuid.New(), uuid.New(), uuid.New()

	t.Run("keeps order", func(t *testing.T) {
		list, err := NewIDList([]uuid.UUID{c, a, b})
		require.NoError(t, err)
		assert.Equal(t, IDList{c, a, b}, list)
	})

	t.Run("empty input gives empty non-nil list", func(t *testing.T) {
		list, err := NewIDList(nil)
		require.NoError(t, err)
		assert.NotNil(t, list)
		assert.Len(t, list, 0)
	})

	t.Run("rejects duplicates", func(t *testing.T) {
		_, err := NewIDList([]uuid.UUID{a, b, a})
		assert.ErrorIs(t, err, ErrDuplicateID)
	})

	t.Run("checks membership when known ids are given", func(t *testing.T) {
		_, err := NewIDList([]uuid.UUID{a, c}, a, b)
		assert.ErrorIs(t, err, ErrUnknownID)

		list, err := NewIDList([]uuid.UUID{b, a}, a, b)
		require.NoError(t, err)
		assert.Equal(t, IDList{b, a}, list)
	})
}

func TestIDList_Missing(t *testing.T) {
	a, b, c := uuid.New(), uuid.New(), uuid.New()
	list := IDList{a, b, c}

	assert.Empty(t, list.Missing([]uuid.UUID{a, b, c}))
	assert.Equal(t, []uuid.UUID{b}, list.Missing([]uuid.UUID{a, c}))
	assert.Equal(t, []uuid.UUID{a, b, c}, list.Missing(nil))
	assert.True(t, list.Contains(b))
	assert.False(t, list.Contains(uuid.New()))
}

func TestIDList_JSON(t *testing.T) {
	var nilList IDList
	data, err := json.Marshal(nilList)
	require.NoError(t, err)
	assert.JSONEq(t, `[]`, string(data))

	id := uuid.MustParse("6f1c2d7e-3b4a-4c5d-8e9f-0a1b2c3d4e5f")
	data, err = json.Marshal(IDList{id})
	require.NoError(t, err)
	assert.JSONEq(t, `["6f1c2d7e-3b4a-4c5d-8e9f-0a1b2c3d4e5f"]`, string(data))

	var decoded IDList
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, IDList{id}, decoded)
}

func TestIDList_Scan(t *testing.T) {
	id := uuid.MustParse("6f1c2d7e-3b4a-4c5d-8e9f-0a1b2c3d4e5f")

	tests := []struct {
		name  string
		value interface{}
		want  IDList
	}{
		{"null", nil, IDList{}},
		{"string", `["6f1c2d7e-3b4a-4c5d-8e9f-0a1b2c3d4e5f"]`, IDList{id}},
		{"bytes", []byte(`["6f1c2d7e-3b4a-4c5d-8e9f-0a1b2c3d4e5f"]`), IDList{id}},
		{"empty array", `[]`, IDList{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got IDList
			require.NoError(t, got.Scan(tt.value))
			assert.Equal(t, tt.want, got)
		})
	}

	var bad IDList
	assert.Error(t, bad.Scan(42))
}
