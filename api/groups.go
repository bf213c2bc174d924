package api

import (
	"net/http"

	"teamforge/services"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type groupHandler struct {
	groups   services.IGroupService
	teams    services.ITeamService
	matching services.IMatchingService
}

func (h *groupHandler) create(c *gin.Context) {
	var body struct {
		Name      string `json:"name" binding:"required"`
		ShortName string `json:"shortName" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	group, err := h.groups.CreateGroup(callerID(c), body.Name, body.ShortName)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, group)
}

// getByName resolves a group from its exact name, for users who were
// handed a name instead of an ID.
func (h *groupHandler) getByName(c *gin.Context) {
	name := c.Query("name")
	if name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name query parameter is required"})
		return
	}
	group, err := h.groups.GetGroupByName(name)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, group)
}

func (h *groupHandler) get(c *gin.Context) {
	groupID, ok := pathID(c, "groupID")
	if !ok {
		return
	}
	group, err := h.groups.GetGroup(groupID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, group)
}

func (h *groupHandler) delete(c *gin.Context) {
	groupID, ok := pathID(c, "groupID")
	if !ok {
		return
	}
	if err := h.groups.DeleteGroup(groupID, callerID(c)); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *groupHandler) join(c *gin.Context) {
	groupID, ok := pathID(c, "groupID")
	if !ok {
		return
	}
	if err := h.groups.Join(groupID, callerID(c)); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *groupHandler) leave(c *gin.Context) {
	groupID, ok := pathID(c, "groupID")
	if !ok {
		return
	}
	if err := h.groups.Leave(groupID, callerID(c)); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// removeMember expels a member on the admin's authority.
func (h *groupHandler) removeMember(c *gin.Context) {
	groupID, ok := pathID(c, "groupID")
	if !ok {
		return
	}
	userID, ok := pathID(c, "userID")
	if !ok {
		return
	}
	if err := h.groups.RemoveMember(groupID, callerID(c), userID); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *groupHandler) members(c *gin.Context) {
	groupID, ok := pathID(c, "groupID")
	if !ok {
		return
	}
	members, err := h.groups.Members(groupID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, members)
}

func (h *groupHandler) teamsInGroup(c *gin.Context) {
	groupID, ok := pathID(c, "groupID")
	if !ok {
		return
	}
	teams, err := h.teams.TeamsInGroup(groupID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, teams)
}

func (h *groupHandler) rankTeams(c *gin.Context) {
	groupID, ok := pathID(c, "groupID")
	if !ok {
		return
	}
	var body struct {
		TeamIDs []uuid.UUID `json:"teamIDs" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.teams.RankTeams(groupID, callerID(c), body.TeamIDs); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *groupHandler) rankingStatus(c *gin.Context) {
	groupID, ok := pathID(c, "groupID")
	if !ok {
		return
	}
	has, err := h.teams.HasRankedTeams(groupID, callerID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"hasRankedTeams": has})
}

func (h *groupHandler) postAnnouncement(c *gin.Context) {
	groupID, ok := pathID(c, "groupID")
	if !ok {
		return
	}
	var body struct {
		Text string   `json:"text" binding:"required"`
		Tags []string `json:"tags"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ann, err := h.groups.PostAnnouncement(groupID, callerID(c), body.Text, body.Tags)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, ann)
}

func (h *groupHandler) announcements(c *gin.Context) {
	groupID, ok := pathID(c, "groupID")
	if !ok {
		return
	}
	board, err := h.groups.Announcements(groupID, callerID(c), c.Query("tag"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, board)
}

func (h *groupHandler) editAnnouncement(c *gin.Context) {
	annID, ok := pathID(c, "announcementID")
	if !ok {
		return
	}
	var body struct {
		Text string `json:"text" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.groups.EditAnnouncement(annID, callerID(c), body.Text); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *groupHandler) deleteAnnouncement(c *gin.Context) {
	annID, ok := pathID(c, "announcementID")
	if !ok {
		return
	}
	if err := h.groups.DeleteAnnouncement(annID, callerID(c)); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// runAssignment triggers the matching run for a group.
func (h *groupHandler) runAssignment(c *gin.Context) {
	groupID, ok := pathID(c, "groupID")
	if !ok {
		return
	}
	run, err := h.matching.RunAssignment(groupID, callerID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, run)
}

func (h *groupHandler) assignment(c *gin.Context) {
	groupID, ok := pathID(c, "groupID")
	if !ok {
		return
	}
	run, err := h.matching.Assignment(groupID, callerID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, run)
}
