package api

import (
	"net/http"

	"teamforge/services"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type teamHandler struct {
	teams services.ITeamService
}

func (h *teamHandler) create(c *gin.Context) {
	var body struct {
		GroupID uuid.UUID `json:"groupID" binding:"required"`
		Name    string    `json:"name" binding:"required"`
		Quota   int       `json:"quota" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	team, err := h.teams.CreateTeam(body.GroupID, callerID(c), body.Name, body.Quota)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, team)
}

func (h *teamHandler) get(c *gin.Context) {
	teamID, ok := pathID(c, "teamID")
	if !ok {
		return
	}
	team, err := h.teams.GetTeam(teamID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, team)
}

func (h *teamHandler) edit(c *gin.Context) {
	teamID, ok := pathID(c, "teamID")
	if !ok {
		return
	}
	var body struct {
		Name   string    `json:"name" binding:"required"`
		Quota  int       `json:"quota" binding:"required"`
		LeadID uuid.UUID `json:"leadID" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.teams.EditTeam(teamID, callerID(c), body.Name, body.Quota, body.LeadID); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *teamHandler) delete(c *gin.Context) {
	teamID, ok := pathID(c, "teamID")
	if !ok {
		return
	}
	if err := h.teams.DeleteTeam(teamID, callerID(c)); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *teamHandler) addMember(c *gin.Context) {
	teamID, ok := pathID(c, "teamID")
	if !ok {
		return
	}
	var body struct {
		UserID uuid.UUID `json:"userID" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.teams.AddMember(teamID, callerID(c), body.UserID); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *teamHandler) removeMember(c *gin.Context) {
	teamID, ok := pathID(c, "teamID")
	if !ok {
		return
	}
	userID, ok := pathID(c, "userID")
	if !ok {
		return
	}
	if err := h.teams.RemoveMember(teamID, callerID(c), userID); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *teamHandler) members(c *gin.Context) {
	teamID, ok := pathID(c, "teamID")
	if !ok {
		return
	}
	members, err := h.teams.TeamMembers(teamID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, members)
}

func (h *teamHandler) rankUsers(c *gin.Context) {
	teamID, ok := pathID(c, "teamID")
	if !ok {
		return
	}
	var body struct {
		UserIDs []uuid.UUID `json:"userIDs" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.teams.RankUsers(teamID, callerID(c), body.UserIDs); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *teamHandler) rankingStatus(c *gin.Context) {
	teamID, ok := pathID(c, "teamID")
	if !ok {
		return
	}
	has, err := h.teams.HasRankedUsers(teamID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"hasRankedUsers": has})
}

func (h *teamHandler) postAnnouncement(c *gin.Context) {
	teamID, ok := pathID(c, "teamID")
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

	ann, err := h.teams.PostAnnouncement(teamID, callerID(c), body.Text, body.Tags)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, ann)
}

func (h *teamHandler) announcements(c *gin.Context) {
	teamID, ok := pathID(c, "teamID")
	if !ok {
		return
	}
	board, err := h.teams.Announcements(teamID, callerID(c), c.Query("tag"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, board)
}

func (h *teamHandler) editAnnouncement(c *gin.Context) {
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

	if err := h.teams.EditAnnouncement(annID, callerID(c), body.Text); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *teamHandler) deleteAnnouncement(c *gin.Context) {
	annID, ok := pathID(c, "announcementID")
	if !ok {
		return
	}
	if err := h.teams.DeleteAnnouncement(annID, callerID(c)); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
