package userControllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/everscale-dev/storefront-api/auth"
	"github.com/everscale-dev/storefront-api/ledger"
	"github.com/everscale-dev/storefront-api/models"
)

type SignInInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type SignUpInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
	Name     string `json:"name" binding:"required"`
}

type ResetInput struct {
	Email string `json:"email" binding:"required,email"`
}

type FederatedInput struct {
	IDToken string `json:"idToken" binding:"required"`
}

// ensureProfile creates the stored profile on first sign-in and refreshes
// name/picture afterwards.
func ensureProfile(sessions *ledger.Manager, sess auth.Session) models.Profile {
	userKV := sessions.Session(sess.UserID).KV

	var profile models.Profile
	if !userKV.Load(profileKey, &profile) {
		profile = models.Profile{
			ID:        sess.UserID,
			Email:     sess.Email,
			Provider:  sess.Provider,
			CreatedAt: time.Now(),
		}
	}
	if sess.Name != "" {
		profile.Name = sess.Name
	}
	if sess.Picture != "" {
		profile.Picture = sess.Picture
	}
	userKV.Save(profileKey, profile)
	return profile
}

func signInEvent(sess auth.Session) auth.Event {
	return auth.Event{
		Name:     auth.EventSignIn,
		Username: sess.Email,
		Attributes: map[string]string{
			"sub":     sess.UserID,
			"email":   sess.Email,
			"name":    sess.Name,
			"picture": sess.Picture,
		},
	}
}

// SignIn authenticates email/password against the identity service.
// POST /auth/signin
func SignIn(client *auth.Client, sessions *ledger.Manager, hub *auth.Hub) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input SignInInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		sess, token, err := client.SignIn(c.Request.Context(), input.Email, input.Password)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			return
		}

		profile := ensureProfile(sessions, sess)
		hub.Publish(signInEvent(sess))

		c.JSON(http.StatusOK, gin.H{"message": "Login successful", "user": profile, "token": token})
	}
}

// SignUp creates an account and signs the user in.
// POST /auth/signup
func SignUp(client *auth.Client, sessions *ledger.Manager, hub *auth.Hub) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input SignUpInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		sess, token, err := client.SignUp(c.Request.Context(), input.Email, input.Password, input.Name)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		profile := ensureProfile(sessions, sess)
		hub.Publish(signInEvent(sess))

		c.JSON(http.StatusCreated, gin.H{"message": "Account created", "user": profile, "token": token})
	}
}

// SignOut revokes the caller's refresh tokens and announces the sign-out.
// POST /auth/signout
func SignOut(hub *auth.Hub) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessVal, exists := c.Get("session")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		sess := sessVal.(auth.Session)

		// Revocation is best effort; a dead identity service must not trap
		// the user in a signed-in state.
		_ = auth.RevokeSessions(c.Request.Context(), sess.UserID)

		hub.Publish(auth.Event{Name: auth.EventSignOut, Username: sess.Email})
		c.JSON(http.StatusOK, gin.H{"message": "Signed out"})
	}
}

// CurrentSession echoes the verified identity of the presented token.
// GET /auth/session
func CurrentSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		sessVal, exists := c.Get("session")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		c.JSON(http.StatusOK, sessVal.(auth.Session))
	}
}

// RequestPasswordReset asks the identity service to email a reset link.
// POST /auth/reset
func RequestPasswordReset(client *auth.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input ResetInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		if err := client.RequestPasswordReset(c.Request.Context(), input.Email); err != nil {
			c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Password reset email sent"})
	}
}

// FederatedSignIn verifies a provider ID token (e.g. Google) and signs the
// user in.
// POST /auth/federated
func FederatedSignIn(sessions *ledger.Manager, hub *auth.Hub) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input FederatedInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload"})
			return
		}

		sess, token, err := auth.FederatedSignIn(c.Request.Context(), input.IDToken)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			return
		}

		profile := ensureProfile(sessions, sess)
		hub.Publish(signInEvent(sess))

		c.JSON(http.StatusOK, gin.H{"message": "Login successful", "user": profile, "token": token})
	}
}

// CreateGuestSession mints an anonymous identity so a visitor can build a
// cart before signing in.
// POST /auth/guest
func CreateGuestSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, auth.NewGuestSession())
	}
}
