package mux

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMux_getHealth(t *testing.T) {
	ts := testServer(t)

	var hr healthResponse
	assertGet(t, ts, "/health", &hr, http.StatusOK)
	assert.Equal(t, "OK", hr.Status)
	assert.Equal(t, "v-test", hr.Version)
}
