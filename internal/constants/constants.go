package constants

import "time"

// ContextKeyUserID is the Gin context key holding the authenticated user ID.
const ContextKeyUserID = "user_id"

// ContextKeyTask is the Gin context key holding the task loaded by the
// ownership middleware.
const ContextKeyTask = "task"

// MinPasswordLength is the minimum accepted password length at signup.
const MinPasswordLength = 6

// TokenLifetime is how long an issued auth token stays valid.
const TokenLifetime = 30 * 24 * time.Hour

// TokenIssuer identifies tokens minted by this server.
const TokenIssuer = "planner-api"

// MaxQuizQuestions caps the number of questions a single quiz request may ask for.
const MaxQuizQuestions = 10

// DefaultQuizQuestions is used when the request does not specify a count.
const DefaultQuizQuestions = 5

// MaxPromptChars is the input truncation limit for AI prompts.
const MaxPromptChars = 3000
