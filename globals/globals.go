package globals

import (
	"context"
	"os"
)

var JwtSecret = []byte(jwtSecretFromEnv())

func jwtSecretFromEnv() string {
	if s := os.Getenv("JWT_SECRET"); s != "" {
		return s
	}
	return "eventify_dev_secret" // set JWT_SECRET in production
}

// Context keys
type ContextKey string

const UserIDKey ContextKey = "userId"
const UserTypeKey ContextKey = "userType"

var Ctx = context.Background()
