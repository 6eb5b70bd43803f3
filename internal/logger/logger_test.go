package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogLevels(t *testing.T) {
	tests := []struct {
		level    Level
		expected string
	}{
		{DebugLevel, "DEBUG"},
		{InfoLevel, "INFO"},
		{WarnLevel, "WARN"},
		{ErrorLevel, "ERROR"},
		{FatalLevel, "FATAL"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.level.String())
		})
	}
}

func TestStructuredLogger(t *testing.T) {
	t.Run("LogLevelFiltering", func(t *testing.T) {
		var buf bytes.Buffer
		l := NewLogger(&buf, WarnLevel)

		l.Debug("debug message")
		assert.Empty(t, buf.String(), "debug message should be filtered")

		l.Info("info message")
		assert.Empty(t, buf.String(), "info message should be filtered")

		l.Warn("warn message")
		assert.NotEmpty(t, buf.String(), "warn message should be logged")

		buf.Reset()
		l.Error("error message")
		assert.NotEmpty(t, buf.String(), "error message should be logged")
	})

	t.Run("DomainFields", func(t *testing.T) {
		var buf bytes.Buffer
		l := NewLogger(&buf, InfoLevel)

		l.Info("sealed frame",
			Peer("peer-1"),
			Op("seal"),
			FrameBytes(128),
			Err(errors.New("boom")),
			Duration("elapsed", 1000000000), // 1 second
		)

		var entry map[string]interface{}
		require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))

		assert.Equal(t, "INFO", entry["level"])
		assert.Equal(t, "sealed frame", entry["message"])
		assert.Equal(t, "peer-1", entry["peer"])
		assert.Equal(t, "seal", entry["op"])
		assert.Equal(t, float64(128), entry["frame_bytes"])
		assert.Equal(t, "boom", entry["error"])
		assert.Equal(t, "1s", entry["elapsed"])
		assert.NotNil(t, entry["timestamp"])
		assert.NotNil(t, entry["caller"])
	})

	t.Run("WithFields", func(t *testing.T) {
		var buf bytes.Buffer
		base := NewLogger(&buf, InfoLevel)

		peerLogger := base.WithFields(Peer("peer-7"), Op("complete_kex"))
		peerLogger.Info("kex completed")

		var entry map[string]interface{}
		require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))

		assert.Equal(t, "peer-7", entry["peer"])
		assert.Equal(t, "complete_kex", entry["op"])
	})

	t.Run("SetLevel", func(t *testing.T) {
		var buf bytes.Buffer
		l := NewLogger(&buf, InfoLevel)

		l.Debug("debug 1")
		assert.Empty(t, buf.String(), "debug should be filtered at info level")

		l.SetLevel(DebugLevel)
		l.Debug("debug 2")
		assert.NotEmpty(t, buf.String(), "debug should be logged once level is lowered")
	})

	t.Run("GetLevel", func(t *testing.T) {
		l := NewLogger(&bytes.Buffer{}, InfoLevel)
		assert.Equal(t, InfoLevel, l.GetLevel())

		l.SetLevel(ErrorLevel)
		assert.Equal(t, ErrorLevel, l.GetLevel())
	})

	t.Run("PrettyPrint", func(t *testing.T) {
		var buf bytes.Buffer
		l := NewLogger(&buf, InfoLevel)
		l.SetPrettyPrint(true)

		l.Info("test message", Peer("peer-1"))

		output := buf.String()
		assert.Contains(t, output, "{\n")
		assert.Contains(t, output, "  \"")
		assert.Contains(t, output, "\n}")
	})
}

func TestStructuredError(t *testing.T) {
	t.Run("BasicError", func(t *testing.T) {
		err := NewStructuredError(ErrCodeInternal, "something went wrong", nil)

		assert.Equal(t, ErrCodeInternal, err.Code)
		assert.Equal(t, "something went wrong", err.Message)
		assert.Equal(t, "INTERNAL_ERROR: something went wrong", err.Error())
		assert.Nil(t, err.Unwrap())
	})

	t.Run("ErrorWithCause", func(t *testing.T) {
		cause := errors.New("handshake aborted")
		err := NewStructuredError(ErrCodeKexRejected, "key exchange rejected", cause)

		assert.Equal(t, cause, err.Unwrap())
		assert.True(t, errors.Is(err, err))
		assert.Contains(t, err.Error(), "caused by: handshake aborted")
	})

	t.Run("ErrorWithDetails", func(t *testing.T) {
		err := NewStructuredError(ErrCodeCertInvalid, "certificate failed CA verification", nil)
		err.WithDetails("peer", "peer-1").
			WithDetails("reason", "signature mismatch")

		assert.Equal(t, "peer-1", err.Details["peer"])
		assert.Equal(t, "signature mismatch", err.Details["reason"])
	})

	t.Run("DomainErrorCodes", func(t *testing.T) {
		for _, code := range []string{
			ErrCodeInternal,
			ErrCodeInvalidInput,
			ErrCodeTimeout,
			ErrCodeKexRejected,
			ErrCodeCertInvalid,
			ErrCodeBadPassword,
			ErrCodeDecodeFailed,
			ErrCodeSealFailed,
			ErrCodeOpenFailed,
			ErrCodeValidationError,
			ErrCodeConfigurationError,
		} {
			assert.NotEmpty(t, code)
		}

		assert.Equal(t, "KEX_REJECTED", ErrCodeKexRejected)
		assert.Equal(t, "CERT_INVALID", ErrCodeCertInvalid)
		assert.Equal(t, "BAD_PASSWORD", ErrCodeBadPassword)
		assert.Equal(t, "DECODE_FAILED", ErrCodeDecodeFailed)
		assert.Equal(t, "SEAL_FAILED", ErrCodeSealFailed)
		assert.Equal(t, "OPEN_FAILED", ErrCodeOpenFailed)
	})
}

func TestDefaultLogger(t *testing.T) {
	t.Run("DefaultLoggerExists", func(t *testing.T) {
		assert.NotNil(t, GetDefaultLogger())
	})

	t.Run("SetDefaultLogger", func(t *testing.T) {
		var buf bytes.Buffer
		newLogger := NewLogger(&buf, DebugLevel)
		SetDefaultLogger(newLogger)

		Debug("test debug")
		assert.NotEmpty(t, buf.String())

		buf.Reset()
		Info("test info")
		assert.NotEmpty(t, buf.String())

		buf.Reset()
		Warn("test warn")
		assert.NotEmpty(t, buf.String())

		buf.Reset()
		ErrorMsg("test error")
		assert.NotEmpty(t, buf.String())
	})
}

func TestFieldConstructors(t *testing.T) {
	t.Run("PeerField", func(t *testing.T) {
		field := Peer("peer-1")
		assert.Equal(t, "peer", field.Key)
		assert.Equal(t, "peer-1", field.Value)
	})

	t.Run("OpField", func(t *testing.T) {
		field := Op("seal")
		assert.Equal(t, "op", field.Key)
		assert.Equal(t, "seal", field.Value)
	})

	t.Run("FrameBytesField", func(t *testing.T) {
		field := FrameBytes(256)
		assert.Equal(t, "frame_bytes", field.Key)
		assert.Equal(t, 256, field.Value)
	})

	t.Run("ErrField", func(t *testing.T) {
		err := errors.New("test error")
		field := Err(err)
		assert.Equal(t, "error", field.Key)
		assert.Equal(t, "test error", field.Value)

		field = Err(nil)
		assert.Equal(t, "error", field.Key)
		assert.Nil(t, field.Value)
	})

	t.Run("AnyField", func(t *testing.T) {
		type testStruct struct {
			Name string
		}
		value := testStruct{Name: "test"}
		field := Any("data", value)
		assert.Equal(t, "data", field.Key)
		assert.Equal(t, value, field.Value)
	})
}

func BenchmarkLogger(b *testing.B) {
	l := NewLogger(&bytes.Buffer{}, InfoLevel)

	b.Run("SimpleLog", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			l.Info("benchmark message")
		}
	})

	b.Run("LogWithFields", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			l.Info("benchmark message", Peer("peer-1"), Op("seal"), FrameBytes(128))
		}
	})

	b.Run("FilteredLog", func(b *testing.B) {
		l.SetLevel(ErrorLevel)
		for i := 0; i < b.N; i++ {
			l.Debug("filtered message")
		}
	})
}
