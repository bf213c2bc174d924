package api

import (
	"net/http"
	"sort"

	"teamforge/domain"
	"teamforge/services"

	"github.com/gin-gonic/gin"
)

type userHandler struct {
	auth   services.IAuthService
	groups services.IGroupService
	teams  services.ITeamService
}

type credentialsRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (h *userHandler) register(c *gin.Context) {
	var body credentialsRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	token, err := h.auth.Register(body.Username, body.Password)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"token": token})
}

func (h *userHandler) login(c *gin.Context) {
	var body credentialsRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	token, err := h.auth.Login(body.Username, body.Password)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": token})
}

func (h *userHandler) changeUsername(c *gin.Context) {
	var body struct {
		Username string `json:"username" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.auth.ChangeUsername(callerID(c), body.Username); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *userHandler) changePassword(c *gin.Context) {
	var body struct {
		CurrentPassword string `json:"currentPassword" binding:"required"`
		NewPassword     string `json:"newPassword" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.auth.ChangePassword(callerID(c), body.CurrentPassword, body.NewPassword); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *userHandler) deleteAccount(c *gin.Context) {
	var body struct {
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.auth.DeleteAccount(callerID(c), body.Password); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *userHandler) myGroups(c *gin.Context) {
	groups, err := h.groups.GroupsOf(callerID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, groups)
}

func (h *userHandler) myTeams(c *gin.Context) {
	teams, err := h.teams.TeamsOf(callerID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, teams)
}

func (h *userHandler) ownedTeams(c *gin.Context) {
	teams, err := h.teams.TeamsOwned(callerID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, teams)
}

// myFeed merges the boards of every group and team the caller belongs
// to into one chronological list.
func (h *userHandler) myFeed(c *gin.Context) {
	caller := callerID(c)
	tag := c.Query("tag")

	var feed []domain.Announcement

	groups, err := h.groups.GroupsOf(caller)
	if err != nil {
		respondError(c, err)
		return
	}
	for _, group := range groups {
		board, err := h.groups.Announcements(group.ID, caller, tag)
		if err != nil {
			respondError(c, err)
			return
		}
		feed = append(feed, board...)
	}

	teams, err := h.teams.TeamsOf(caller)
	if err != nil {
		respondError(c, err)
		return
	}
	for _, team := range teams {
		board, err := h.teams.Announcements(team.ID, caller, tag)
		if err != nil {
			respondError(c, err)
			return
		}
		feed = append(feed, board...)
	}

	sort.Slice(feed, func(i, j int) bool {
		return feed[i].PostedAt.Before(feed[j].PostedAt)
	})
	c.JSON(http.StatusOK, feed)
}
