package outing

import (
	"log"

	"golf-outing-api/packages/outing/cron"
	"golf-outing-api/packages/outing/handlers"
	"golf-outing-api/packages/outing/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type Module struct {
	EventHandler       *handlers.EventHandler
	EventService       *services.EventService
	TeamHandler        *handlers.TeamHandler
	TeamService        *services.TeamService
	PlayerHandler      *handlers.PlayerHandler
	PlayerService      *services.PlayerService
	ScoreHandler       *handlers.ScoreHandler
	ScoreService       *services.ScoreService
	CompetitionHandler *handlers.CompetitionHandler
	FlightService      *services.FlightService
	PrizeService       *services.PrizeService
	LeaderboardService *services.LeaderboardService
	SideGameHandler    *handlers.SideGameHandler
	SideGameService    *services.SideGameService
	DocumentHandler    *handlers.DocumentHandler
	DocumentService    *services.DocumentService
	ConsistencyService *services.ConsistencyService
	Scheduler          *cron.Scheduler
	db                 *gorm.DB
}

func NewModule(db *gorm.DB) *Module {
	eventService := services.NewEventService(db)
	eventHandler := handlers.NewEventHandler(eventService)

	teamService := services.NewTeamService(db)
	scoreService := services.NewScoreService(db)
	teamHandler := handlers.NewTeamHandler(teamService, scoreService)

	playerService := services.NewPlayerService(db)
	playerHandler := handlers.NewPlayerHandler(playerService)

	scoreHandler := handlers.NewScoreHandler(scoreService, teamService, eventService, playerService)

	flightService := services.NewFlightService(db)
	prizeService := services.NewPrizeService(db)
	leaderboardService := services.NewLeaderboardService(db)
	competitionHandler := handlers.NewCompetitionHandler(flightService, prizeService, leaderboardService)

	sideGameService := services.NewSideGameService(db)
	sideGameHandler := handlers.NewSideGameHandler(sideGameService)

	documentService := services.NewDocumentService(eventService)
	documentHandler := handlers.NewDocumentHandler(documentService)

	// Periodic gross-score consistency sweep
	consistencyService := services.NewConsistencyService(db, scoreService)
	scheduler := cron.NewScheduler(consistencyService)

	return &Module{
		EventHandler:       eventHandler,
		EventService:       eventService,
		TeamHandler:        teamHandler,
		TeamService:        teamService,
		PlayerHandler:      playerHandler,
		PlayerService:      playerService,
		ScoreHandler:       scoreHandler,
		ScoreService:       scoreService,
		CompetitionHandler: competitionHandler,
		FlightService:      flightService,
		PrizeService:       prizeService,
		LeaderboardService: leaderboardService,
		SideGameHandler:    sideGameHandler,
		SideGameService:    sideGameService,
		DocumentHandler:    documentHandler,
		DocumentService:    documentService,
		ConsistencyService: consistencyService,
		Scheduler:          scheduler,
		db:                 db,
	}
}

func (m *Module) SetupRoutes(r *gin.Engine) {
	api := r.Group("/api")

	events := api.Group("/events")
	{
		events.GET("", m.EventHandler.GetAllEvents)
		events.POST("", m.EventHandler.CreateEvent)
		events.GET("/:id", m.EventHandler.GetEvent)
		events.PUT("/:id", m.EventHandler.UpdateEvent)
		events.DELETE("/:id", m.EventHandler.DeleteEvent)
		events.GET("/:id/teams", m.TeamHandler.GetTeamsByEvent)
		events.GET("/:id/players", m.PlayerHandler.GetPlayersByEvent)
		events.GET("/:id/side-games", m.SideGameHandler.GetResultsByEvent)
		events.GET("/:id/leaderboard", m.CompetitionHandler.GetLeaderboard)
		events.GET("/:id/audit", m.CompetitionHandler.GetEventAudit)
		events.GET("/:id/documents/:type", m.DocumentHandler.GenerateDocument)
		events.POST("/:id/assign-flights", m.CompetitionHandler.AssignFlights)
		events.POST("/:id/calculate-prizes", m.CompetitionHandler.CalculatePrizes)
	}

	teams := api.Group("/teams")
	{
		teams.POST("", m.TeamHandler.CreateTeam)
		teams.PUT("/:id", m.TeamHandler.UpdateTeam)
		teams.DELETE("/:id", m.TeamHandler.DeleteTeam)
		teams.GET("/:id/players", m.PlayerHandler.GetPlayersByTeam)
		teams.GET("/:id/scores", m.TeamHandler.GetTeamScores)
		teams.GET("/:id/audit", m.CompetitionHandler.GetTeamAudit)
		teams.POST("/:id/generate-code", m.TeamHandler.GenerateAccessCode)
	}

	players := api.Group("/players")
	{
		players.POST("", m.PlayerHandler.CreatePlayer)
		players.PUT("/:id", m.PlayerHandler.UpdatePlayer)
		players.DELETE("/:id", m.PlayerHandler.DeletePlayer)
		players.GET("/:id/mulligans", m.SideGameHandler.GetMulligansByPlayer)
	}

	api.POST("/scores", m.ScoreHandler.RecordManualScore)
	api.POST("/side-games", m.SideGameHandler.CreateResult)
	api.POST("/mulligans", m.SideGameHandler.CreateMulligan)

	mobile := api.Group("/mobile")
	{
		mobile.GET("/team/:accessCode", m.ScoreHandler.GetMobileTeam)
		// Scoring pages submit with both POST and PUT
		mobile.POST("/score", m.ScoreHandler.RecordMobileScore)
		mobile.PUT("/score", m.ScoreHandler.RecordMobileScore)
	}
}

// StartScheduler starts the cron scheduler for the consistency sweep
func (m *Module) StartScheduler() error {
	log.Println("Starting outing module scheduler...")
	return m.Scheduler.Start()
}

// StopScheduler stops the cron scheduler
func (m *Module) StopScheduler() {
	log.Println("Stopping outing module scheduler...")
	m.Scheduler.Stop()
}

// RunConsistencySweepNow manually triggers the sweep (useful for testing)
func (m *Module) RunConsistencySweepNow() {
	log.Println("Manually triggering consistency sweep...")
	m.Scheduler.RunNow()
}
