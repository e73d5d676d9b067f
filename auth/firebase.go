package auth

import (
	"context"
	"fmt"
	"os"

	firebase "firebase.google.com/go"
	fbauth "firebase.google.com/go/auth"
	"google.golang.org/api/option"
)

var (
	firebaseApp  *firebase.App
	firebaseAuth *fbauth.Client
	projectID    string
)

// InitFirebase wires the Admin SDK from FIREBASE_CREDENTIALS_JSON and
// FIREBASE_PROJECT_ID. Call once from main before serving; token
// verification and federated sign-in fail cleanly when skipped.
func InitFirebase(ctx context.Context) error {
	credsJSON := os.Getenv("FIREBASE_CREDENTIALS_JSON")
	if credsJSON == "" {
		return fmt.Errorf("FIREBASE_CREDENTIALS_JSON must be set")
	}

	projectID = os.Getenv("FIREBASE_PROJECT_ID")
	if projectID == "" {
		return fmt.Errorf("FIREBASE_PROJECT_ID must be set")
	}

	opt := option.WithCredentialsJSON([]byte(credsJSON))
	config := &firebase.Config{ProjectID: projectID}

	app, err := firebase.NewApp(ctx, config, opt)
	if err != nil {
		return fmt.Errorf("error initializing Firebase app: %v", err)
	}

	client, err := app.Auth(ctx)
	if err != nil {
		return fmt.Errorf("error getting Firebase Auth client: %v", err)
	}

	firebaseApp = app
	firebaseAuth = client
	return nil
}

// FederatedSignIn verifies a provider ID token (e.g. Google) through
// Firebase, checks audience and revocation, and returns the verified
// identity plus a first-party session token.
func FederatedSignIn(ctx context.Context, idToken string) (Session, string, error) {
	if firebaseAuth == nil {
		return Session{}, "", fmt.Errorf("federated sign-in is not configured")
	}

	token, err := firebaseAuth.VerifyIDTokenAndCheckRevoked(ctx, idToken)
	if err != nil {
		return Session{}, "", fmt.Errorf("invalid or revoked ID token")
	}
	if token.Audience != projectID {
		return Session{}, "", fmt.Errorf("invalid token audience")
	}

	email, _ := token.Claims["email"].(string)
	name, _ := token.Claims["name"].(string)
	picture, _ := token.Claims["picture"].(string)

	sess := Session{
		UserID:   token.UID,
		Email:    email,
		Name:     name,
		Picture:  picture,
		Provider: "google",
	}
	return sess, issueJWT(email, "user", token.UID, name, picture), nil
}

// RevokeSessions invalidates every refresh token of the user, the sign-out
// counterpart of federated sign-in.
func RevokeSessions(ctx context.Context, uid string) error {
	if firebaseAuth == nil {
		return fmt.Errorf("sign-out is not configured")
	}
	if err := firebaseAuth.RevokeRefreshTokens(ctx, uid); err != nil {
		return fmt.Errorf("failed to sign out: %v", err)
	}
	return nil
}
