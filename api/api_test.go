package api

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"teamforge/domain"
	"teamforge/moderation"
	"teamforge/repositories"
	"teamforge/services"

	"github.com/dgraph-io/badger/v4"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	req := require.New(t)
	gin.SetMode(gin.TestMode)

	db, err := badger.Open(badger.DefaultOptions(t.TempDir()).WithLoggingLevel(badger.ERROR))
	req.NoError(err)
	t.Cleanup(func() {
		req.NoError(db.Close())
	})

	log := logs.GetLoggerFromLevel(slog.LevelError)
	censor, err := moderation.NewCensor([]string{"badger"}, '*', log)
	req.NoError(err)

	users := repositories.NewUserRepository(db)
	groups := repositories.NewGroupRepository(db)
	teams := repositories.NewTeamRepository(db)
	rankings := repositories.NewRankingRepository(db)
	assignments := repositories.NewAssignmentRepository(db)
	announcements := repositories.NewAnnouncementRepository(db)

	return NewRouter(
		services.NewAuthService(users, groups, rankings, time.Hour),
		services.NewGroupService(groups, users, rankings, announcements, censor, log),
		services.NewTeamService(teams, groups, users, rankings, announcements, censor, log),
		services.NewMatchingService(groups, teams, users, rankings, assignments, log),
		log,
	)
}

func do(t *testing.T, router *gin.Engine, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var payload *bytes.Buffer
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		payload = bytes.NewBuffer(data)
	} else {
		payload = bytes.NewBuffer(nil)
	}

	request := httptest.NewRequest(method, path, payload)
	request.Header.Set("Content-Type", "application/json")
	if token != "" {
		request.Header.Set("Authorization", "Bearer "+token)
	}

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, request)
	return recorder
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

// signup registers an account and returns its session token.
func signup(t *testing.T, router *gin.Engine, username string) string {
	t.Helper()
	rec := do(t, router, http.MethodPost, "/api/users/register", "", gin.H{
		"username": username,
		"password": "ComplexPass123!",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	return decode[map[string]string](t, rec)["token"]
}

func TestAPI_AuthFlow(t *testing.T) {
	req := require.New(t)
	router := newTestRouter(t)

	token := signup(t, router, "player")
	req.NotEmpty(token)

	t.Run("duplicate username conflicts", func(t *testing.T) {
		rec := do(t, router, http.MethodPost, "/api/users/register", "", gin.H{
			"username": "player",
			"password": "ComplexPass123!",
		})
		require.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("login with wrong password is unauthorized", func(t *testing.T) {
		rec := do(t, router, http.MethodPost, "/api/users/login", "", gin.H{
			"username": "player",
			"password": "WrongPass1234!",
		})
		require.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("login issues a fresh token", func(t *testing.T) {
		rec := do(t, router, http.MethodPost, "/api/users/login", "", gin.H{
			"username": "player",
			"password": "ComplexPass123!",
		})
		require.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("protected routes reject missing tokens", func(t *testing.T) {
		rec := do(t, router, http.MethodGet, "/api/users/me/groups", "", nil)
		require.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

// TestAPI_AssignmentFlow walks the whole product story over HTTP: accounts,
// a group, two capacity-two teams, rankings on both sides, the matching
// run and the published assignment.
func TestAPI_AssignmentFlow(t *testing.T) {
	req := require.New(t)
	router := newTestRouter(t)

	adminToken := signup(t, router, "admin")

	rec := do(t, router, http.MethodPost, "/api/groups", adminToken, gin.H{
		"name":      "Hackathon 2026",
		"shortName": "hack26",
	})
	req.Equal(http.StatusCreated, rec.Code, rec.Body.String())
	group := decode[domain.Group](t, rec)

	students := map[string]string{}
	for _, name := range []string{"s1", "s2", "s3", "s4"} {
		token := signup(t, router, name)
		students[name] = token
		rec := do(t, router, http.MethodPost, "/api/groups/"+group.ID.String()+"/join", token, nil)
		req.Equal(http.StatusNoContent, rec.Code)
	}

	rec = do(t, router, http.MethodPost, "/api/teams", adminToken, gin.H{
		"groupID": group.ID, "name": "d1", "quota": 2,
	})
	req.Equal(http.StatusCreated, rec.Code, rec.Body.String())
	d1 := decode[domain.Team](t, rec)

	rec = do(t, router, http.MethodPost, "/api/teams", adminToken, gin.H{
		"groupID": group.ID, "name": "d2", "quota": 2,
	})
	req.Equal(http.StatusCreated, rec.Code)
	d2 := decode[domain.Team](t, rec)

	rec = do(t, router, http.MethodGet, "/api/groups/"+group.ID.String()+"/members", adminToken, nil)
	req.Equal(http.StatusOK, rec.Code)
	members := decode[[]domain.User](t, rec)
	userID := map[string]string{}
	for _, member := range members {
		userID[member.Username] = member.ID.String()
	}

	rec = do(t, router, http.MethodPut, "/api/teams/"+d1.ID.String()+"/ranking", adminToken, gin.H{
		"userIDs": []string{userID["s1"], userID["s2"], userID["s3"], userID["s4"]},
	})
	req.Equal(http.StatusNoContent, rec.Code, rec.Body.String())
	rec = do(t, router, http.MethodPut, "/api/teams/"+d2.ID.String()+"/ranking", adminToken, gin.H{
		"userIDs": []string{userID["s4"], userID["s3"], userID["s2"], userID["s1"]},
	})
	req.Equal(http.StatusNoContent, rec.Code)

	rankings := map[string][]string{
		"s1": {d1.ID.String(), d2.ID.String()},
		"s2": {d2.ID.String(), d1.ID.String()},
		"s3": {d2.ID.String(), d1.ID.String()},
		"s4": {d1.ID.String(), d2.ID.String()},
	}
	for name, teamIDs := range rankings {
		rec := do(t, router, http.MethodPut, "/api/groups/"+group.ID.String()+"/ranking", students[name], gin.H{
			"teamIDs": teamIDs,
		})
		req.Equal(http.StatusNoContent, rec.Code, rec.Body.String())
	}

	t.Run("ranking status flips", func(t *testing.T) {
		rec := do(t, router, http.MethodGet, "/api/groups/"+group.ID.String()+"/ranking", students["s1"], nil)
		require.Equal(t, http.StatusOK, rec.Code)
		require.True(t, decode[map[string]bool](t, rec)["hasRankedTeams"])
	})

	t.Run("students cannot trigger the run", func(t *testing.T) {
		rec := do(t, router, http.MethodPost, "/api/groups/"+group.ID.String()+"/assignment", students["s1"], nil)
		require.Equal(t, http.StatusForbidden, rec.Code)
	})

	rec = do(t, router, http.MethodPost, "/api/groups/"+group.ID.String()+"/assignment", adminToken, nil)
	req.Equal(http.StatusOK, rec.Code, rec.Body.String())
	run := decode[repositories.AssignmentRun](t, rec)

	byTeam := map[string][]string{}
	for _, assignment := range run.Result.Assignments {
		byTeam[assignment.Team] = assignment.Members
	}
	req.Equal([]string{"s1", "s4"}, byTeam["d1"])
	req.Equal([]string{"s2", "s3"}, byTeam["d2"])

	t.Run("members read the stored assignment", func(t *testing.T) {
		rec := do(t, router, http.MethodGet, "/api/groups/"+group.ID.String()+"/assignment", students["s3"], nil)
		require.Equal(t, http.StatusOK, rec.Code)
		stored := decode[repositories.AssignmentRun](t, rec)
		require.Equal(t, run.Result, stored.Result)
	})

	t.Run("joining after the run conflicts", func(t *testing.T) {
		token := signup(t, router, "latecomer")
		rec := do(t, router, http.MethodPost, "/api/groups/"+group.ID.String()+"/join", token, nil)
		require.Equal(t, http.StatusConflict, rec.Code)
	})
}

func TestAPI_AnnouncementModeration(t *testing.T) {
	req := require.New(t)
	router := newTestRouter(t)

	adminToken := signup(t, router, "admin")
	rec := do(t, router, http.MethodPost, "/api/groups", adminToken, gin.H{
		"name": "Chess Club", "shortName": "chess",
	})
	req.Equal(http.StatusCreated, rec.Code)
	group := decode[domain.Group](t, rec)

	rec = do(t, router, http.MethodPost, "/api/groups/"+group.ID.String()+"/announcements", adminToken, gin.H{
		"text": "beware the badger",
		"tags": []string{"wildlife"},
	})
	req.Equal(http.StatusCreated, rec.Code, rec.Body.String())
	ann := decode[domain.Announcement](t, rec)
	req.Equal("beware the ******", ann.Text)

	rec = do(t, router, http.MethodGet, "/api/groups/"+group.ID.String()+"/announcements?tag=wildlife", adminToken, nil)
	req.Equal(http.StatusOK, rec.Code)
	board := decode[[]domain.Announcement](t, rec)
	req.Len(board, 1)

	t.Run("members see group posts in their feed", func(t *testing.T) {
		req := require.New(t)
		memberToken := signup(t, router, "rookie")
		rec := do(t, router, http.MethodPost, "/api/groups/"+group.ID.String()+"/join", memberToken, nil)
		req.Equal(http.StatusNoContent, rec.Code)

		rec = do(t, router, http.MethodGet, "/api/users/me/announcements", memberToken, nil)
		req.Equal(http.StatusOK, rec.Code)
		feed := decode[[]domain.Announcement](t, rec)
		req.Len(feed, 1)
		req.Equal("beware the ******", feed[0].Text)
	})

	t.Run("groups are reachable by name", func(t *testing.T) {
		req := require.New(t)
		rec := do(t, router, http.MethodGet, "/api/groups?name=Chess+Club", adminToken, nil)
		req.Equal(http.StatusOK, rec.Code)
		found := decode[domain.Group](t, rec)
		req.Equal(group.ID, found.ID)

		rec = do(t, router, http.MethodGet, "/api/groups?name=nope", adminToken, nil)
		req.Equal(http.StatusNotFound, rec.Code)
	})
}

func TestAPI_RosterManagement(t *testing.T) {
	req := require.New(t)
	router := newTestRouter(t)

	adminToken := signup(t, router, "admin")
	rec := do(t, router, http.MethodPost, "/api/groups", adminToken, gin.H{
		"name": "Running Club", "shortName": "run",
	})
	req.Equal(http.StatusCreated, rec.Code)
	group := decode[domain.Group](t, rec)

	memberToken := signup(t, router, "runner")
	rec = do(t, router, http.MethodPost, "/api/groups/"+group.ID.String()+"/join", memberToken, nil)
	req.Equal(http.StatusNoContent, rec.Code)

	rec = do(t, router, http.MethodGet, "/api/groups/"+group.ID.String()+"/members", adminToken, nil)
	req.Equal(http.StatusOK, rec.Code)
	members := decode[[]domain.User](t, rec)
	req.Len(members, 2)
	var runnerID uuid.UUID
	for _, m := range members {
		if m.Username == "runner" {
			runnerID = m.ID
		}
	}
	req.NotEqual(uuid.Nil, runnerID)

	rec = do(t, router, http.MethodPost, "/api/teams", adminToken, gin.H{
		"groupID": group.ID, "name": "pacers", "quota": 2,
	})
	req.Equal(http.StatusCreated, rec.Code)
	team := decode[domain.Team](t, rec)

	t.Run("the lead fills the roster by hand", func(t *testing.T) {
		req := require.New(t)
		rec := do(t, router, http.MethodPost, "/api/teams/"+team.ID.String()+"/members", memberToken, gin.H{
			"userID": runnerID,
		})
		require.Equal(t, http.StatusForbidden, rec.Code)

		rec = do(t, router, http.MethodPost, "/api/teams/"+team.ID.String()+"/members", adminToken, gin.H{
			"userID": runnerID,
		})
		req.Equal(http.StatusNoContent, rec.Code, rec.Body.String())

		rec = do(t, router, http.MethodDelete, "/api/teams/"+team.ID.String()+"/members/"+runnerID.String(), adminToken, nil)
		req.Equal(http.StatusNoContent, rec.Code)
	})

	t.Run("the admin expels a group member", func(t *testing.T) {
		req := require.New(t)
		rec := do(t, router, http.MethodDelete, "/api/groups/"+group.ID.String()+"/members/"+runnerID.String(), memberToken, nil)
		req.Equal(http.StatusForbidden, rec.Code)

		rec = do(t, router, http.MethodDelete, "/api/groups/"+group.ID.String()+"/members/"+runnerID.String(), adminToken, nil)
		req.Equal(http.StatusNoContent, rec.Code)

		rec = do(t, router, http.MethodGet, "/api/groups/"+group.ID.String()+"/members", adminToken, nil)
		req.Equal(http.StatusOK, rec.Code)
		req.Len(decode[[]domain.User](t, rec), 1)
	})
}
