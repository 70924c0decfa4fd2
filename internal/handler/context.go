package handler

type ContextKey string

var (
	RoleCtxKey           ContextKey = "role"
	SubCtxKey            ContextKey = "sub"
	MyInfoCtx            ContextKey = "myInfo"
	ScheduleDraftCtx     ContextKey = "scheduleDraft"
	PublishedScheduleCtx ContextKey = "publishedSchedule"
)
