package api

import (
	stderrors "errors"
	"net/http"

	"teamforge/errors"
	"teamforge/matching"

	"github.com/gin-gonic/gin"
)

// respondError maps the service sentinels onto HTTP statuses.
func respondError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case stderrors.Is(err, errors.ErrInvalidCredentials):
		status = http.StatusUnauthorized
	case stderrors.Is(err, errors.ErrNotGroupAdmin),
		stderrors.Is(err, errors.ErrNotTeamLead),
		stderrors.Is(err, errors.ErrNotMember):
		status = http.StatusForbidden
	case stderrors.Is(err, errors.ErrNotFound):
		status = http.StatusNotFound
	case stderrors.Is(err, errors.ErrUserAlreadyExists),
		stderrors.Is(err, errors.ErrNameInUse),
		stderrors.Is(err, errors.ErrSignupClosed),
		stderrors.Is(err, errors.ErrRunInProgress):
		status = http.StatusConflict
	case stderrors.Is(err, errors.ErrInvalidUsername),
		stderrors.Is(err, errors.ErrInvalidPassword),
		stderrors.Is(err, matching.ErrInvalidQuota),
		stderrors.Is(err, matching.ErrMissingQuota),
		stderrors.Is(err, matching.ErrUnknownName):
		status = http.StatusBadRequest
	}
	c.JSON(status, gin.H{"error": err.Error()})
}
