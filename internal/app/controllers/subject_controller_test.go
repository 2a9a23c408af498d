package controllers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListSubjects(t *testing.T) {
	ctrl := NewSubjectController()
	router := gin.New()
	router.GET("/api/v1/subjects", ctrl.ListSubjects)

	w := performRequest(router, http.MethodGet, "/api/v1/subjects", nil)
	require.Equal(t, http.StatusOK, w.Code, "body: %s", w.Body.String())

	var subjects []string
	decodeSuccess(t, w, &subjects)
	assert.Equal(t, []string{
		"MATH", "PHYSICS", "CHEMISTRY", "BIOLOGY",
		"ENGLISH", "ARABIC", "ISLAMIC", "COMPUTER",
	}, subjects)
}
