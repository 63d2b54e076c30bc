package api

import (
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	swaggerfiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	"github.com/agbanzy/apcconnctv2-sub002/docs"
	v1 "github.com/agbanzy/apcconnctv2-sub002/internal/api/handler/v1"
	"github.com/agbanzy/apcconnctv2-sub002/internal/api/middleware"
	"github.com/agbanzy/apcconnctv2-sub002/internal/config"
	"github.com/agbanzy/apcconnctv2-sub002/internal/repository"
	"github.com/agbanzy/apcconnctv2-sub002/internal/repository/dao"
	"github.com/agbanzy/apcconnctv2-sub002/internal/service"
)

type Server struct {
	Config *config.AppConfig
	Router *gin.Engine
}

func NewServer(conf *config.AppConfig, db *gorm.DB) *Server {
	gin.SetMode(conf.Gin.Mode)
	engine := gin.New()

	s := &Server{
		Config: conf,
		Router: engine,
	}

	s.MountMiddlewares()

	electionHandler := s.initElectionHandler(db)
	geographyHandler := s.initGeographyHandler(db)
	s.MountHandlers(electionHandler, geographyHandler)

	return s
}

func (s *Server) initElectionHandler(db *gorm.DB) *v1.ElectionHandler {
	electionDAO := dao.NewElectionDAO(db)
	repo := repository.NewElectionRepository(electionDAO)
	geoRepo := repository.NewGeographyRepository(dao.NewGeographyDAO(db))
	svc := service.NewElectionService(repo, geoRepo)
	handler := v1.NewElectionHandler(svc)

	return handler
}

func (s *Server) initGeographyHandler(db *gorm.DB) *v1.GeographyHandler {
	geoDAO := dao.NewGeographyDAO(db)
	repo := repository.NewGeographyRepository(geoDAO)
	svc := service.NewGeographyService(repo)
	handler := v1.NewGeographyHandler(svc)

	return handler
}

func (s *Server) MountMiddlewares() {
	// Logger and Recovery are needed unless we use gin.Default().
	s.Router.Use(gin.Logger())
	s.Router.Use(gin.Recovery())
	s.Router.Use(requestid.New())
	s.Router.Use(middleware.ConfigCORS(s.Config.API.AllowedCORSDomains))
}

func (s *Server) MountHandlers(electionHandler *v1.ElectionHandler, geographyHandler *v1.GeographyHandler) {
	const basePath = "/api/v1"

	authenticator := middleware.NewAuthenticator(s.Config.API.JWTSigningKey)

	// Scheduling and candidate management are restricted to election staff.
	admin := s.Router.Group(basePath,
		authenticator.VerifyJWT(),
		middleware.RequireRoles(middleware.RoleAdmin, middleware.RoleCoordinator),
	)
	{
		admin.POST("/elections", electionHandler.HandleCreateElection)
		admin.POST("/elections/bulk", electionHandler.HandleBulkGenerate)
		admin.PATCH("/elections/bulk-status", electionHandler.HandleBulkStatus)
		admin.PATCH("/elections/:electionID", electionHandler.HandleUpdateElection)
		admin.DELETE("/elections/:electionID", electionHandler.HandleDeleteElection)
		admin.POST("/elections/:electionID/candidates", electionHandler.HandleAddCandidate)
		admin.DELETE("/elections/:electionID/candidates/:candidateID", electionHandler.HandleRemoveCandidate)
	}

	// Ballots come only from members; staff roles are rejected before
	// the handler is reached.
	voters := s.Router.Group(basePath,
		authenticator.VerifyJWT(),
		middleware.RequireRoles(middleware.RoleMember),
	)
	{
		voters.POST("/elections/:electionID/vote", electionHandler.HandleCastVote)
	}

	authenticated := s.Router.Group(basePath, authenticator.VerifyJWT())
	{
		authenticated.GET("/elections", electionHandler.HandleListElections)
		authenticated.GET("/elections/:electionID", electionHandler.HandleGetElection)
		authenticated.GET("/elections/:electionID/candidates", electionHandler.HandleListCandidates)
		authenticated.GET("/elections/:electionID/results", electionHandler.HandleGetResults)

		authenticated.GET("/geography/states", geographyHandler.HandleListStates)
		authenticated.GET("/geography/states/:stateID/senatorial-districts", geographyHandler.HandleListSenatorialDistricts)
		authenticated.GET("/geography/states/:stateID/lgas", geographyHandler.HandleListLGAs)
		authenticated.GET("/geography/lgas/:lgaID/wards", geographyHandler.HandleListWards)
		authenticated.GET("/parties", geographyHandler.HandleListParties)
	}

	s.Router.GET("/", v1.HandleHealthcheck)

	// Setup Swagger UI.
	docs.SwaggerInfo.Host = s.Config.API.BaseURL
	docs.SwaggerInfo.BasePath = basePath
	docs.SwaggerInfo.Title = "Election Scheduling API"
	docs.SwaggerInfo.Description = "Bulk election scheduling, candidate registration and balloting over the Nigerian administrative hierarchy."
	docs.SwaggerInfo.Version = "1.0"
	s.Router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerfiles.Handler))
}
