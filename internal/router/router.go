package router

import (
	"database/sql"
	"net/http"
	"time"

	"dog-life/internal/adapters/assets/memory"
	"dog-life/internal/adapters/audio/sim"
	notifymem "dog-life/internal/adapters/notify/memory"
	"dog-life/internal/adapters/storage"
	mem "dog-life/internal/adapters/storage/memory"
	pg "dog-life/internal/adapters/storage/postgres"
	_ "dog-life/internal/docs"
	"dog-life/internal/domain/askai"
	"dog-life/internal/domain/feed"
	"dog-life/internal/domain/health"
	"dog-life/internal/domain/home"
	"dog-life/internal/domain/match"
	"dog-life/internal/domain/navigation"
	"dog-life/internal/domain/notifications"
	"dog-life/internal/domain/services"
	"dog-life/internal/domain/thoughts"
	"dog-life/internal/domain/voiceover"
	"dog-life/internal/middleware"
	"dog-life/internal/platform/chance"
	"dog-life/internal/platform/delay"
	"dog-life/internal/platform/logger"
	"dog-life/internal/ports/assets"
	"dog-life/internal/samples"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

const inboxCapacity = 32

type Options struct {
	Log logger.Logger

	// Opcional: si viene, el catálogo se lee de Postgres. Si no, in-memory.
	DB *sql.DB

	// Opcional: por defecto el store in-memory con los assets de muestra.
	Assets assets.Store

	// Opcional: si viene nil se arma uno con VoiceoverOptions. Quien lo pasa
	// es responsable de llamar Shutdown.
	Voiceover *voiceover.Manager

	Sleeper delay.Sleeper
	Rand    chance.Source

	UploadDelay   time.Duration
	ThoughtDelay  time.Duration
	VoiceDelay    time.Duration
	AnswerDelay   time.Duration
	AnalysisDelay time.Duration

	// Requests/seg por viewer en los endpoints "AI". 0 = sin límite.
	AIRateLimit float64
	AIRateBurst int

	AudioTick       time.Duration
	AutoplayBlocked bool
	SessionTTL      time.Duration
}

func NewRouter(opts Options) http.Handler {
	log := opts.Log
	if log == nil {
		log = logger.Nop()
	}

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.RequestLog(log))
	r.Use(chimw.Recoverer)
	r.Use(middleware.ViewerContext)

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	var catalog storage.Catalog
	if opts.DB != nil {
		catalog = pg.NewCatalog(opts.DB)
	} else {
		catalog = mem.NewSampleCatalog()
	}

	// El estado de leídas es por viewer y vive en memoria en ambos modos.
	readState := mem.NewReadStateRepo()

	limit := rateLimit(opts.AIRateLimit, opts.AIRateBurst)

	// Services por módulo
	feedSvc := feed.NewService(catalog.Feed)
	notifSvc := notifications.NewService(catalog.Notifications, readState)
	homeSvc := home.NewService(catalog.Home, feedSvc, notifSvc)
	askSvc := askai.NewService(catalog.AskAI, askai.Options{
		Sleeper:     opts.Sleeper,
		AnswerDelay: opts.AnswerDelay,
	})
	healthSvc := health.NewService(catalog.Health, health.Options{
		Sleeper:       opts.Sleeper,
		AnalysisDelay: opts.AnalysisDelay,
	})
	servicesSvc := services.NewService(catalog.Services)
	matchSvc := match.NewService(catalog.Match)

	manager := opts.Voiceover
	if manager == nil {
		manager = NewVoiceoverManager(opts)
	}

	// Rutas por módulo
	feed.RegisterRoutes(r, feedSvc)
	notifications.RegisterRoutes(r, notifSvc)
	home.RegisterRoutes(r, homeSvc)
	askai.RegisterRoutes(r, askSvc, limit)
	health.RegisterRoutes(r, healthSvc, limit)
	services.RegisterRoutes(r, servicesSvc)
	match.RegisterRoutes(r, matchSvc)
	navigation.RegisterRoutes(r)
	r.Group(func(gr chi.Router) {
		gr.Use(limit)
		thoughts.RegisterRoutes(gr, newThoughts(opts))
	})
	voiceover.RegisterRoutes(r, manager, limit)

	return r
}

// NewVoiceoverManager arma el manager de sesiones de audio con el backend
// simulado sobre el asset store de opts.
func NewVoiceoverManager(opts Options) *voiceover.Manager {
	log := opts.Log
	if log == nil {
		log = logger.Nop()
	}
	store := opts.Assets
	if store == nil {
		store = memory.NewStore(samples.Assets())
	}

	backend := sim.New(sim.Options{
		Assets:          store,
		Tick:            opts.AudioTick,
		AutoplayBlocked: opts.AutoplayBlocked,
		Log:             log.With(logger.Fields{"component": "audio"}),
	})

	return voiceover.NewManager(voiceover.ManagerOptions{
		Session: voiceover.Options{
			Backend:     backend,
			Generator:   newThoughts(opts),
			Assets:      store,
			Sleeper:     opts.Sleeper,
			Rand:        opts.Rand,
			UploadDelay: opts.UploadDelay,
			VoiceDelay:  opts.VoiceDelay,
		},
		NewInbox: func() voiceover.Inbox {
			return notifymem.NewInbox(inboxCapacity, log)
		},
		TTL: opts.SessionTTL,
		Log: log.With(logger.Fields{"component": "voiceover"}),
	})
}

func newThoughts(opts Options) *thoughts.Service {
	return thoughts.NewService(thoughts.Options{
		Rand:         opts.Rand,
		Sleeper:      opts.Sleeper,
		ThoughtDelay: opts.ThoughtDelay,
	})
}

func rateLimit(perSecond float64, burst int) func(http.Handler) http.Handler {
	if perSecond <= 0 {
		return func(next http.Handler) http.Handler { return next }
	}
	return middleware.NewRateLimiter(perSecond, burst).Limit
}
