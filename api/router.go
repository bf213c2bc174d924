package api

import (
	"log/slog"

	"teamforge/services"

	"github.com/gin-gonic/gin"
)

// NewRouter builds the full route tree over the service layer.
func NewRouter(
	authSvc services.IAuthService,
	groupSvc services.IGroupService,
	teamSvc services.ITeamService,
	matchSvc services.IMatchingService,
	log *slog.Logger,
) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), RequestLogger(log))

	users := &userHandler{auth: authSvc, groups: groupSvc, teams: teamSvc}
	groups := &groupHandler{groups: groupSvc, teams: teamSvc, matching: matchSvc}
	teams := &teamHandler{teams: teamSvc}

	api := router.Group("/api")

	u := api.Group("/users")
	{
		u.POST("/register", users.register)
		u.POST("/login", users.login)

		me := u.Group("/me", Authenticate())
		me.PUT("/username", users.changeUsername)
		me.PUT("/password", users.changePassword)
		me.DELETE("", users.deleteAccount)
		me.GET("/groups", users.myGroups)
		me.GET("/teams", users.myTeams)
		me.GET("/teams/owned", users.ownedTeams)
		me.GET("/announcements", users.myFeed)
	}

	g := api.Group("/groups", Authenticate())
	{
		g.POST("", groups.create)
		g.GET("", groups.getByName)
		g.GET("/:groupID", groups.get)
		g.DELETE("/:groupID", groups.delete)
		g.POST("/:groupID/join", groups.join)
		g.POST("/:groupID/leave", groups.leave)
		g.GET("/:groupID/members", groups.members)
		g.DELETE("/:groupID/members/:userID", groups.removeMember)
		g.GET("/:groupID/teams", groups.teamsInGroup)

		g.PUT("/:groupID/ranking", groups.rankTeams)
		g.GET("/:groupID/ranking", groups.rankingStatus)

		g.POST("/:groupID/announcements", groups.postAnnouncement)
		g.GET("/:groupID/announcements", groups.announcements)
		g.PUT("/:groupID/announcements/:announcementID", groups.editAnnouncement)
		g.DELETE("/:groupID/announcements/:announcementID", groups.deleteAnnouncement)

		g.POST("/:groupID/assignment", groups.runAssignment)
		g.GET("/:groupID/assignment", groups.assignment)
	}

	t := api.Group("/teams", Authenticate())
	{
		t.POST("", teams.create)
		t.GET("/:teamID", teams.get)
		t.PUT("/:teamID", teams.edit)
		t.DELETE("/:teamID", teams.delete)
		t.GET("/:teamID/members", teams.members)
		t.POST("/:teamID/members", teams.addMember)
		t.DELETE("/:teamID/members/:userID", teams.removeMember)

		t.PUT("/:teamID/ranking", teams.rankUsers)
		t.GET("/:teamID/ranking", teams.rankingStatus)

		t.POST("/:teamID/announcements", teams.postAnnouncement)
		t.GET("/:teamID/announcements", teams.announcements)
		t.PUT("/:teamID/announcements/:announcementID", teams.editAnnouncement)
		t.DELETE("/:teamID/announcements/:announcementID", teams.deleteAnnouncement)
	}

	return router
}
