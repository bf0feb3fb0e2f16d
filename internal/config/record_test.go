package config

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecode_PartialMergesOverDefaults(t *testing.T) {
	rec, err := Decode([]byte(`{"tolerance": 40}`))
	require.NoError(t, err)

	want := Defaults()
	want.Tolerance = 40
	assert.True(t, want.Equal(rec), "got %+v", rec)
	assert.Equal(t, 50, rec.SearchRadius)
	assert.Equal(t, "F5", rec.EnableKey)
}

func TestDecode_EmptyObjectIsDefaults(t *testing.T) {
	rec, err := Decode([]byte(`{}`))
	require.NoError(t, err)
	assert.True(t, Defaults().Equal(rec))
}

func TestDecode_UnknownKeysPreserved(t *testing.T) {
	rec, err := Decode([]byte(`{"zeta": [1, 2], "alpha": {"x": true}, "theme": "forest"}`))
	require.NoError(t, err)

	assert.Equal(t, "forest", rec.Theme)
	require.Len(t, rec.Extra, 2)
	assert.JSONEq(t, `[1,2]`, string(rec.Extra["zeta"]))
	assert.JSONEq(t, `{"x":true}`, string(rec.Extra["alpha"]))
}

func TestDecode_WrongTypeFails(t *testing.T) {
	rec, err := Decode([]byte(`{"searchRadius": "wide"}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "searchRadius")
	assert.True(t, Defaults().Equal(rec))
}

func TestDecode_WholeFloatsAreIntegers(t *testing.T) {
	rec, err := Decode([]byte(`{"searchRadius": 60.0, "tolerance": 30, "loopSleepMs": 2.6, "toggleKey": "Q", "hud": true}`))
	require.NoError(t, err)

	assert.Equal(t, 60, rec.SearchRadius)
	assert.Equal(t, 30, rec.Tolerance)
	assert.Equal(t, 3, rec.LoopSleepMs, "fractions round to the nearest integer")
	assert.Equal(t, "Q", rec.ToggleKey)
	assert.JSONEq(t, `true`, string(rec.Extra["hud"]))

	data, err := Encode(rec)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"searchRadius": 60,`)
}

func TestDecode_NumberOutOfRangeFails(t *testing.T) {
	_, err := Decode([]byte(`{"tolerance": 1e300}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "tolerance")
}

func TestDecode_NullIntegerKeepsDefault(t *testing.T) {
	rec, err := Decode([]byte(`{"searchRadius": null}`))
	require.NoError(t, err)
	assert.Equal(t, DefaultSearchRadius, rec.SearchRadius)
}

func TestDecode_NotAnObject(t *testing.T) {
	_, err := Decode([]byte(`[1, 2, 3]`))
	assert.Error(t, err)

	_, err = Decode([]byte(`null`))
	assert.Error(t, err)
}

func TestEncode_LayoutMatchesBackendFile(t *testing.T) {
	data, err := Encode(Defaults())
	require.NoError(t, err)

	want := "{\n" +
		"  \"searchRadius\": 50,\n" +
		"  \"tolerance\": 24,\n" +
		"  \"loopSleepMs\": 1,\n" +
		"  \"enableKey\": \"F5\",\n" +
		"  \"toggleKey\": \"E\",\n" +
		"  \"modeKey\": \"F4\",\n" +
		"  \"theme\": \"default\"\n" +
		"}"
	assert.Equal(t, want, string(data))
}

func TestEncode_ExtraKeysSortedAfterKnown(t *testing.T) {
	rec := Defaults()
	rec.Extra = map[string]json.RawMessage{
		"zoom":  json.RawMessage(`2`),
		"alpha": json.RawMessage(`"a"`),
	}
	data, err := Encode(rec)
	require.NoError(t, err)

	s := string(data)
	theme := strings.Index(s, `"theme"`)
	alpha := strings.Index(s, `"alpha"`)
	zoom := strings.Index(s, `"zoom"`)
	assert.Greater(t, alpha, theme)
	assert.Greater(t, zoom, alpha)
}

func TestEncode_NoHTMLEscaping(t *testing.T) {
	rec := Defaults()
	rec.ToggleKey = "<"
	data, err := Encode(rec)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"toggleKey": "<"`)
}

func TestEncodeDecode_RoundTrip(t *testing.T) {
	rec := Record{
		SearchRadius: 120,
		Tolerance:    7,
		LoopSleepMs:  15,
		EnableKey:    "F9",
		ToggleKey:    "SPACE",
		ModeKey:      "F2",
		Theme:        "sunset",
		Extra:        map[string]json.RawMessage{"custom": json.RawMessage(`{"a":1}`)},
	}
	data, err := Encode(rec)
	require.NoError(t, err)

	back, err := Decode(data)
	require.NoError(t, err)
	assert.True(t, rec.Equal(back), "got %+v", back)
}

func TestRecord_GetSet(t *testing.T) {
	rec := Defaults()

	require.NoError(t, rec.Set(KeySearchRadius, " 75 "))
	require.NoError(t, rec.Set(KeyEnableKey, "f6"))
	require.NoError(t, rec.Set(KeyTheme, "Midnight"))

	v, ok := rec.Get(KeySearchRadius)
	assert.True(t, ok)
	assert.Equal(t, "75", v)
	assert.Equal(t, "F6", rec.EnableKey)
	assert.Equal(t, "Midnight", rec.Theme)

	assert.Error(t, rec.Set(KeyTolerance, "12abc"))
	assert.Error(t, rec.Set("nope", "1"))
	_, ok = rec.Get("nope")
	assert.False(t, ok)
}

