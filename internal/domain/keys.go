package domain

type CtxKey string

const (
	KeyUserID    CtxKey = "UserID"
	KeySessionID CtxKey = "SessionID"
	KeyUserRole  CtxKey = "Role"
)
