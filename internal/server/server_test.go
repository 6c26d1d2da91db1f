package server

import (
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestGetGinMode(t *testing.T) {
	assert.Equal(t, gin.DebugMode, getGinMode("dev"))
	assert.Equal(t, gin.TestMode, getGinMode("test"))
	assert.Equal(t, gin.ReleaseMode, getGinMode("production"))
}

func TestCorsConfig(t *testing.T) {
	all := corsConfig([]string{"*"})
	assert.True(t, all.AllowAllOrigins)
	assert.Empty(t, all.AllowOrigins)
	assert.NoError(t, all.Validate())

	some := corsConfig([]string{"https://app.example"})
	assert.False(t, some.AllowAllOrigins)
	assert.Equal(t, []string{"https://app.example"}, some.AllowOrigins)
	assert.NoError(t, some.Validate())
}
