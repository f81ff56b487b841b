package api

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestErrorCode_DefaultStatus verifies the full code-to-status table and the
// fallback for codes outside the closed set.
func TestErrorCode_DefaultStatus(t *testing.T) {
	t.Parallel()

	tests := []struct {
		code   ErrorCode
		status int
	}{
		{CodeInvalidParameters, 400},
		{CodeBackendError, 502},
		{CodeNotFound, 404},
		{CodeUnauthorized, 401},
		{CodeRateLimited, 429},
		{CodeInternalError, 500},
		{CodeDataUnavailable, 503},
		{ErrorCode("SOMETHING_ELSE"), 500},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(string(tt.code), func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.status, tt.code.DefaultStatus())
		})
	}
}

func TestEncodeSuccess_Defaults(t *testing.T) {
	t.Parallel()

	status, env := EncodeSuccess(map[string]any{"value": 1}, SuccessOptions{})

	assert.Equal(t, 200, status)
	assert.True(t, env.Success)
	assert.Nil(t, env.Error)
	assert.False(t, env.Meta.IsMock)
	assert.Empty(t, env.Meta.Warning)

	ts, err := time.Parse(time.RFC3339, env.Meta.Timestamp)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().UTC(), ts, 5*time.Second)
}

// TestEncodeSuccess_MockImpliesWarning verifies that a mock payload always
// carries a non-empty warning, supplied or substituted.
func TestEncodeSuccess_MockImpliesWarning(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name            string
		opts            SuccessOptions
		expectedWarning string
	}{
		{
			name:            "mock without warning gets default disclaimer",
			opts:            SuccessOptions{IsMock: true},
			expectedWarning: MockDataWarning,
		},
		{
			name:            "mock with custom warning keeps it",
			opts:            SuccessOptions{IsMock: true, Warning: "degraded feed"},
			expectedWarning: "degraded feed",
		},
		{
			name:            "real data carries no warning by default",
			opts:            SuccessOptions{},
			expectedWarning: "",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, env := EncodeSuccess("x", tt.opts)
			assert.Equal(t, tt.opts.IsMock, env.Meta.IsMock)
			assert.Equal(t, tt.expectedWarning, env.Meta.Warning)
			// The invariant both ways: isMock true iff warning non-empty
			// (unless the caller explicitly attached a warning to real data).
			if env.Meta.IsMock {
				assert.NotEmpty(t, env.Meta.Warning)
			}
		})
	}
}

func TestEncodeSuccess_StatusAndProvenance(t *testing.T) {
	t.Parallel()

	status, env := EncodeSuccess("payload", SuccessOptions{
		Status:      202,
		Source:      "upstream",
		LastUpdated: "2025-06-01T00:00:00Z",
	})

	assert.Equal(t, 202, status)
	assert.Equal(t, "upstream", env.Meta.Source)
	assert.Equal(t, "2025-06-01T00:00:00Z", env.Meta.LastUpdated)
}

// TestEncodeSuccess_Idempotent verifies that two encodings of the same data
// with the same options differ in nothing but the meta timestamp.
func TestEncodeSuccess_Idempotent(t *testing.T) {
	t.Parallel()

	opts := SuccessOptions{IsMock: true, Source: "synthetic"}
	s1, e1 := EncodeSuccess("same", opts)
	s2, e2 := EncodeSuccess("same", opts)

	assert.Equal(t, s1, s2)
	e1.Meta.Timestamp = ""
	e2.Meta.Timestamp = ""
	assert.Equal(t, e1, e2)
}

func TestEncodeError(t *testing.T) {
	t.Parallel()

	t.Run("default status from code", func(t *testing.T) {
		t.Parallel()

		status, env := EncodeError(CodeInvalidParameters, "symbol is required", ErrorOptions{
			Details: map[string]any{"parameter": "symbol"},
		})

		assert.Equal(t, 400, status)
		assert.False(t, env.Success)
		assert.Nil(t, env.Data)
		require.NotNil(t, env.Error)
		assert.Equal(t, CodeInvalidParameters, env.Error.Code)
		assert.Equal(t, "symbol is required", env.Error.Message)
		assert.Equal(t, "symbol", env.Error.Details["parameter"])
		assert.NotEmpty(t, env.Meta.Timestamp)
	})

	t.Run("caller overrides status", func(t *testing.T) {
		t.Parallel()

		status, env := EncodeError(CodeBackendError, "provider rejected request", ErrorOptions{Status: 504})

		assert.Equal(t, 504, status)
		assert.Equal(t, CodeBackendError, env.Error.Code)
	})
}

// TestWrapResponse verifies the lossless legacy-to-envelope conversion: mock
// and warning are hoisted into meta, everything else passes through as data.
func TestWrapResponse(t *testing.T) {
	t.Parallel()

	bars := []map[string]any{{"t": "2025-06-01T00:00:00Z", "o": 1.0}}
	payload := map[string]any{
		"bars":    bars,
		"mock":    true,
		"warning": "x",
		"extra":   1,
	}

	status, env := WrapResponse(payload, SuccessOptions{})

	assert.Equal(t, 200, status)
	assert.True(t, env.Success)
	assert.True(t, env.Meta.IsMock)
	assert.Equal(t, "x", env.Meta.Warning)

	data, ok := env.Data.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, bars, data["bars"])
	assert.Equal(t, 1, data["extra"])
	assert.NotContains(t, data, "mock")
	assert.NotContains(t, data, "warning")
}

func TestWrapResponse_RealData(t *testing.T) {
	t.Parallel()

	_, env := WrapResponse(map[string]any{"bars": []any{}, "mock": false}, SuccessOptions{})

	assert.False(t, env.Meta.IsMock)
	assert.Empty(t, env.Meta.Warning)
}
