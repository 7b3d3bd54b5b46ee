package router

import (
	"database/sql"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	mem "vet-care-assistant/internal/adapters/storage/memory"
	pg "vet-care-assistant/internal/adapters/storage/postgres"
	_ "vet-care-assistant/internal/docs"
	"vet-care-assistant/internal/domain/chat"
	"vet-care-assistant/internal/domain/diagnosis"
	"vet-care-assistant/internal/domain/emergency"
	"vet-care-assistant/internal/domain/prescriptions"
	"vet-care-assistant/internal/domain/vets"
	"vet-care-assistant/internal/domain/views"
	"vet-care-assistant/internal/i18n"
	"vet-care-assistant/internal/metrics"
	"vet-care-assistant/internal/middleware"
	"vet-care-assistant/internal/platform/logger"
)

type Options struct {
	// Opcional: si viene, vets y recetas salen de Postgres. Si no, in-memory.
	DB *sql.DB

	Logger logger.Logger // nil => Nop

	// Fuente aleatoria del diagnóstico simulado; nil => sembrada con la hora.
	Rand diagnosis.Rand

	// Latencia artificial de chat, diagnóstico y búsqueda de veterinarios.
	ResponseDelay time.Duration

	// Inactividad máxima de una sesión de chat en memoria; 0 => sin vencimiento.
	ChatSessionTTL time.Duration

	MaxUploadBytes  int64
	DefaultLanguage i18n.Language
	Hotline         string
}

func NewRouter(opts Options) http.Handler {
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}
	defLang := opts.DefaultLanguage
	if _, ok := i18n.ParseLanguage(string(defLang)); !ok {
		defLang = i18n.EN
	}

	m := metrics.New()
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.AccessLog(log))
	r.Use(chimw.Recoverer)
	r.Use(m.Middleware)

	r.Use(middleware.LangContext(defLang))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Handle("/metrics", m.Handler())
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	var (
		vetRepo          vets.Repository
		prescriptionRepo prescriptions.Repository
	)

	if opts.DB != nil {
		vetRepo = pg.NewVetsRepo(opts.DB)
		prescriptionRepo = pg.NewPrescriptionsRepo(opts.DB)
	} else {
		vetRepo = mem.NewVetRepo(vets.Directory())
		prescriptionRepo = mem.NewPrescriptionRepo(prescriptions.Catalog())
	}

	// Services por módulo
	chatSvc := chat.NewService(mem.NewChatRepo(opts.ChatSessionTTL), opts.ResponseDelay)
	diagnosisSvc := diagnosis.NewService(opts.Rand, opts.ResponseDelay, opts.MaxUploadBytes)
	emergencySvc := emergency.NewService(opts.Hotline)
	vetsSvc := vets.NewService(vetRepo, opts.ResponseDelay)
	prescriptionsSvc := prescriptions.NewService(prescriptionRepo)

	// Rutas por módulo
	views.RegisterRoutes(r)
	chat.RegisterRoutes(r, chatSvc, m)
	diagnosis.RegisterRoutes(r, diagnosisSvc, m)
	emergency.RegisterRoutes(r, emergencySvc, m)
	vets.RegisterRoutes(r, vetsSvc)
	prescriptions.RegisterRoutes(r, prescriptionsSvc)

	return r
}
