package main

import (
	"bytes"
	"encoding/json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"testing"
)

func TestSetupLogger(t *testing.T) {
	tests := []struct {
		env       string
		json      bool
		debugSeen bool
	}{
		{env: envLocal, json: false, debugSeen: true},
		{env: envDev, json: true, debugSeen: true},
		{env: envProd, json: true, debugSeen: false},
		{env: "staging", json: true, debugSeen: false},
	}

	for _, tt := range tests {
		t.Run(tt.env, func(t *testing.T) {
			var buf bytes.Buffer
			log := setupLogger(tt.env, &buf)
			require.NotNil(t, log)

			log.Debug("debug line")
			assert.Equal(t, tt.debugSeen, buf.Len() > 0)

			buf.Reset()
			log.Info("info line")
			assert.Equal(t, tt.json, json.Valid(bytes.TrimSpace(buf.Bytes())), buf.String())
		})
	}
}
