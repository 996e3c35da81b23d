package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/sessions"
)

const sessionName = "opsboard_session"

// sessionGate guards the data routes behind a signed session cookie. With
// no secret configured the gate is a no-op and every route is open; this
// matches running the dashboard without an identity provider.
type sessionGate struct {
	store *sessions.CookieStore
}

func newSessionGate(secret string) *sessionGate {
	if secret == "" {
		return &sessionGate{}
	}
	store := sessions.NewCookieStore([]byte(secret))
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   12 * 60 * 60,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
	return &sessionGate{store: store}
}

func (g *sessionGate) configured() bool { return g.store != nil }

// require rejects requests without a signed-in session. Only cookie
// presence and signature are checked here; token validation happened at
// sign-in.
func (g *sessionGate) require() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !g.configured() {
			c.Next()
			return
		}
		session, err := g.store.Get(c.Request, sessionName)
		if err != nil || session.IsNew {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "sign-in required"})
			return
		}
		if signedIn, _ := session.Values["signed_in"].(bool); !signedIn {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "sign-in required"})
			return
		}
		c.Next()
	}
}

func (s *Server) handleSignIn(c *gin.Context) {
	if !s.sessions.configured() {
		c.JSON(http.StatusOK, gin.H{"signed_in": true, "auth": false})
		return
	}

	var body struct {
		Token string `json:"token"`
	}
	if err := c.ShouldBindJSON(&body); err != nil || body.Token == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "token required"})
		return
	}

	session, _ := s.sessions.store.New(c.Request, sessionName)
	session.Values["signed_in"] = true
	if err := session.Save(c.Request, c.Writer); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "session save failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"signed_in": true, "auth": true})
}

func (s *Server) handleSignOut(c *gin.Context) {
	if !s.sessions.configured() {
		c.JSON(http.StatusOK, gin.H{"signed_in": false})
		return
	}

	session, _ := s.sessions.store.Get(c.Request, sessionName)
	session.Options.MaxAge = -1
	if err := session.Save(c.Request, c.Writer); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "session save failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"signed_in": false})
}
