package core

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDateJSON(t *testing.T) {
	type payload struct {
		Deadline Date `json:"deadline"`
	}

	t.Run("unmarshals day strings", func(t *testing.T) {
		var p payload
		require.NoError(t, json.Unmarshal([]byte(`{"deadline": "2026-04-10"}`), &p))
		assert.Equal(t, NewDate(2026, time.April, 10), p.Deadline)
	})

	t.Run("unmarshals RFC3339 strings to day precision", func(t *testing.T) {
		var p payload
		require.NoError(t, json.Unmarshal([]byte(`{"deadline": "2026-04-10T15:04:05Z"}`), &p))
		assert.Equal(t, NewDate(2026, time.April, 10), p.Deadline)
	})

	t.Run("null and empty mean unset", func(t *testing.T) {
		var p payload
		require.NoError(t, json.Unmarshal([]byte(`{"deadline": null}`), &p))
		assert.True(t, p.Deadline.IsZero())

		require.NoError(t, json.Unmarshal([]byte(`{"deadline": ""}`), &p))
		assert.True(t, p.Deadline.IsZero())
	})

	t.Run("garbage is an error", func(t *testing.T) {
		var p payload
		assert.Error(t, json.Unmarshal([]byte(`{"deadline": "next tuesday"}`), &p))
	})

	t.Run("marshals back to day strings", func(t *testing.T) {
		data, err := json.Marshal(payload{Deadline: NewDate(2026, time.April, 10)})
		require.NoError(t, err)
		assert.JSONEq(t, `{"deadline": "2026-04-10"}`, string(data))
	})

	t.Run("zero marshals to null", func(t *testing.T) {
		data, err := json.Marshal(payload{})
		require.NoError(t, err)
		assert.JSONEq(t, `{"deadline": null}`, string(data))
	})
}
