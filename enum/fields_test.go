package enum_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jrsteele09/go-authlete/enum"
)

type palette struct {
	Primary   enum.Optional[color]    `json:"primary,omitzero"`
	Accents   enum.List[color]        `json:"accents,omitempty"`
	LegacyIDs []enum.Ordinal[color]   `json:"legacyIds,omitempty"`
	Legacy    enum.OrdinalList[color] `json:"legacy,omitempty"`
}

func TestOptional(t *testing.T) {
	t.Run("known value is set", func(t *testing.T) {
		var p palette
		require.NoError(t, json.Unmarshal([]byte(`{"primary":"red"}`), &p))
		v, ok := p.Primary.Get()
		require.True(t, ok)
		require.Equal(t, colorRed, v)
	})

	t.Run("unknown value degrades to unset and keeps raw text", func(t *testing.T) {
		var p palette
		require.NoError(t, json.Unmarshal([]byte(`{"primary":"ultraviolet"}`), &p))
		require.False(t, p.Primary.IsSet())
		require.Equal(t, "ultraviolet", p.Primary.Raw())
		require.Equal(t, colorBlue, p.Primary.OrElse(colorBlue))
	})

	t.Run("null and absent are unset", func(t *testing.T) {
		var p palette
		require.NoError(t, json.Unmarshal([]byte(`{"primary":null}`), &p))
		require.False(t, p.Primary.IsSet())
		require.Empty(t, p.Primary.Raw())

		p = palette{}
		require.NoError(t, json.Unmarshal([]byte(`{}`), &p))
		require.True(t, p.Primary.IsZero())
	})

	t.Run("malformed value is still an error", func(t *testing.T) {
		var p palette
		require.Error(t, json.Unmarshal([]byte(`{"primary":{"x":1}}`), &p))
	})

	t.Run("unset is omitted and set is emitted as the canonical string", func(t *testing.T) {
		data, err := json.Marshal(palette{})
		require.NoError(t, err)
		require.JSONEq(t, `{}`, string(data))

		data, err = json.Marshal(palette{Primary: enum.Some(colorGreen)})
		require.NoError(t, err)
		require.JSONEq(t, `{"primary":"green"}`, string(data))
	})
}

func TestList(t *testing.T) {
	var p palette
	require.NoError(t, json.Unmarshal([]byte(`{"accents":["red","teal",5,null,99]}`), &p))
	require.Equal(t, enum.List[color]{colorRed, colorBlue}, p.Accents)
	require.True(t, p.Accents.Contains(colorBlue))
	require.False(t, p.Accents.Contains(colorGreen))
	require.Equal(t, []string{"red", "blue"}, p.Accents.Strings())

	data, err := json.Marshal(p)
	require.NoError(t, err)
	require.JSONEq(t, `{"accents":["red","blue"]}`, string(data))

	require.Error(t, json.Unmarshal([]byte(`{"accents":"red"}`), &p))
}

func TestOrdinal(t *testing.T) {
	var p palette
	require.NoError(t, json.Unmarshal([]byte(`{"legacyIds":[1,"blue"]}`), &p))
	require.Equal(t, []enum.Ordinal[color]{{Value: colorRed}, {Value: colorBlue}}, p.LegacyIDs)

	data, err := json.Marshal(palette{LegacyIDs: p.LegacyIDs})
	require.NoError(t, err)
	require.JSONEq(t, `{"legacyIds":[1,5]}`, string(data))

	require.ErrorIs(t, json.Unmarshal([]byte(`{"legacyIds":[3]}`), &p), enum.ErrNotFound)
}

func TestOrdinalList(t *testing.T) {
	var p palette
	require.NoError(t, json.Unmarshal([]byte(`{"legacy":[1,7,"blue",null]}`), &p))
	require.Equal(t, enum.OrdinalList[color]{colorRed, colorBlue}, p.Legacy)

	data, err := json.Marshal(palette{Legacy: p.Legacy})
	require.NoError(t, err)
	require.JSONEq(t, `{"legacy":[1,5]}`, string(data))

	_, err = json.Marshal(palette{Legacy: enum.OrdinalList[color]{color(7)}})
	require.ErrorIs(t, err, enum.ErrNotFound)

	require.Error(t, json.Unmarshal([]byte(`{"legacy":{"x":1}}`), &p))
}
