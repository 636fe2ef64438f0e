package config

import (
	"github.com/IBM/sarama"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/viper"

	"quotation-service/src/internal/delivery/http"
	"quotation-service/src/internal/delivery/http/middleware"
	"quotation-service/src/internal/delivery/http/route"
	"quotation-service/src/internal/gateway/messaging"
	"quotation-service/src/internal/repository"
	"quotation-service/src/internal/usecase"
	"quotation-service/src/pkg/databases/mysql"
	"quotation-service/src/pkg/geocode"
	"quotation-service/src/pkg/log"
	"quotation-service/src/pkg/mailer"
	"quotation-service/src/pkg/otp"
	"quotation-service/src/pkg/sms"
	"quotation-service/src/pkg/storage"
)

type BootstrapConfig struct {
	DB       mysql.DBInterface
	App      *fiber.App
	Log      log.Log
	Validate *validator.Validate
	Config   *viper.Viper
	Producer sarama.SyncProducer
	Redis    redis.UniversalClient
	Mailer   mailer.Mailer
	Sms      sms.Sender
	Geocoder geocode.Resolver
}

func Bootstrap(config *BootstrapConfig) {
	// setup repositories
	personRepository := repository.NewPersonRepository(config.DB)
	administratorRepository := repository.NewAdministratorRepository(config.DB)
	categoryRepository := repository.NewCategoryRepository(config.DB)
	destinationRepository := repository.NewDestinationRepository(config.DB)
	originRepository := repository.NewOriginRepository(config.DB)
	quoteRepository := repository.NewQuoteRepository(config.DB)

	quoteProducer := messaging.NewQuoteProducer(config.Producer, config.Log)
	codes := otp.NewGenerator()
	store := storage.NewLocalStorage(config.Config.GetString("storage.dir"))

	// setup use cases
	personUseCase := usecase.NewPersonUseCase(
		config.Log,
		config.Validate,
		personRepository,
		quoteRepository,
	)
	administratorUseCase := usecase.NewAdministratorUseCase(
		config.Log,
		config.Validate,
		config.Config,
		personRepository,
		administratorRepository,
		config.Mailer,
		codes,
	)
	categoryUseCase := usecase.NewCategoryUseCase(
		config.Log,
		config.Validate,
		categoryRepository,
	)
	destinationUseCase := usecase.NewDestinationUseCase(
		config.Log,
		config.Validate,
		destinationRepository,
		categoryRepository,
		config.Geocoder,
	)
	originUseCase := usecase.NewOriginUseCase(
		config.Log,
		config.Validate,
		originRepository,
	)
	quoteUseCase := usecase.NewQuoteUseCase(
		config.Log,
		config.Validate,
		config.Config,
		quoteRepository,
		personRepository,
		categoryRepository,
		destinationRepository,
		originRepository,
		codes,
		config.Sms,
		quoteProducer,
	)
	authorizationUseCase := usecase.NewAuthorizationUseCase(
		config.Log,
		config.Validate,
		quoteRepository,
		store,
		config.Mailer,
		quoteProducer,
	)

	// setup controllers
	personController := http.NewPersonController(personUseCase, config.Log)
	administratorController := http.NewAdministratorController(administratorUseCase, config.Log)
	categoryController := http.NewCategoryController(categoryUseCase, config.Log)
	destinationController := http.NewDestinationController(destinationUseCase, config.Log)
	originController := http.NewOriginController(originUseCase, config.Log)
	quoteController := http.NewQuoteController(quoteUseCase, config.Log)
	authorizationController := http.NewAuthorizationController(authorizationUseCase, quoteUseCase, config.Log)

	// setup middleware
	authMiddleware := middleware.VerifyBearer(config.Config)

	routeConfig := route.RouteConfig{
		App:                     config.App,
		PersonController:        personController,
		AdministratorController: administratorController,
		CategoryController:      categoryController,
		DestinationController:   destinationController,
		OriginController:        originController,
		QuoteController:         quoteController,
		AuthorizationController: authorizationController,
		AuthMiddleware:          authMiddleware,
	}
	routeConfig.Setup()
}
