package webserver

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/stake-plus/stockdesk/src/config"
	"github.com/stake-plus/stockdesk/src/data"
	"github.com/stake-plus/stockdesk/src/errmap"
	"github.com/stake-plus/stockdesk/src/notify"
	"github.com/stake-plus/stockdesk/src/storage"
	"github.com/stake-plus/stockdesk/src/uistate"
)

func attachRoutes(r *gin.Engine, cfg config.Config, db *gorm.DB, rdb *redis.Client) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
	}))

	limiter := NewRateLimiter(cfg.RateLimit, cfg.RateWindow)
	r.Use(RateLimitMiddleware(limiter))

	var publisher notify.Publisher
	if rdb != nil {
		publisher = notify.NewRedisPublisher(rdb)
	}
	toasts := notify.NewCenter(cfg.ToastTTL, publisher)
	confirms := notify.NewBroker()

	var backend storage.Backend
	if rdb != nil {
		backend = storage.NewRedisBackend(rdb)
	} else {
		backend = storage.NewMemoryBackend()
	}
	kv := storage.New(backend, "stockdesk:kv")
	sessions := uistate.NewManager(storage.New(backend, "stockdesk:uistate"), cfg.FocusDelay)

	loginRoute := data.GetSetting("login_route")
	if loginRoute == "" {
		loginRoute = errmap.DefaultLoginRoute
	}
	mapper := errmap.Mapper{LoginRoute: loginRoute, RedirectDelay: cfg.RedirectDelay}

	calcH := NewCalc(db)
	moveH := NewMovements(db, toasts)
	toastH := NewToasts(toasts, confirms, mapper)
	stateH := NewUIState(kv, sessions)

	v1 := r.Group("/v1")
	{
		v1.POST("/calc/weight", calcH.Weigh)
		v1.POST("/validate", ValidateField)
		v1.GET("/labels/:kind", Labels)
		v1.GET("/materials", calcH.Materials)

		v1.POST("/movements", moveH.Create)
		v1.GET("/movements", moveH.List)
		v1.GET("/movements/export", moveH.ExportCSV)

		v1.POST("/toasts", toastH.Push)
		v1.GET("/toasts", toastH.List)
		v1.DELETE("/toasts/:id", toastH.Dismiss)
		v1.POST("/errors", toastH.ReportError)

		v1.GET("/confirmations", toastH.PendingConfirmations)
		v1.POST("/confirmations/:id", toastH.AnswerConfirmation)

		v1.PUT("/state/:session/:key", stateH.SetValue)
		v1.GET("/state/:session/:key", stateH.GetValue)
		v1.DELETE("/state/:session/:key", stateH.RemoveValue)

		sess := v1.Group("/session/:session")
		{
			sess.GET("/ui", stateH.Snapshot)
			sess.POST("/modal/:id/open", stateH.OpenModal)
			sess.POST("/modal/:id/close", stateH.CloseModal)
			sess.POST("/modal/:id/form", stateH.SetForm)
			sess.DELETE("/modal", stateH.CloseOpenModal)
			sess.POST("/element/:id/show", stateH.ShowElement)
			sess.POST("/element/:id/hide", stateH.HideElement)
			sess.POST("/busy/:control", stateH.SetBusy)
			sess.DELETE("/busy/:control", stateH.ClearBusy)
		}
	}
}
