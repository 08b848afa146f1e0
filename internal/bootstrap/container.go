package bootstrap

import (
	"log"

	"hr-assistant-be/internal/config"
	"hr-assistant-be/internal/controller"
	"hr-assistant-be/internal/pkg/logger"
	"hr-assistant-be/internal/repository/memory"
	"hr-assistant-be/internal/repository/unitofwork"
	"hr-assistant-be/internal/service"
	"hr-assistant-be/pkg/assist/dispatch"
	"hr-assistant-be/pkg/assist/resolver"
	"hr-assistant-be/pkg/nlp"

	pktNats "hr-assistant-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	AssistantController controller.IAssistantController
	HealthController    controller.IHealthController

	// Background Services (Exposed for main.go to run)
	ConsumerService service.IConsumerService

	Logger logger.ILogger
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core Facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	// 2. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// NATS
	natsPub, err := pktNats.NewPublisher(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
	}

	// 3. Query understanding
	identityCache := memory.NewIdentityCache(uowFactory)
	pipeline := nlp.NewPipeline(identityCache, nil)

	dispatcher := dispatch.NewDispatcher(dispatch.Resolvers{
		Attendance:  resolver.NewAttendanceResolver(uowFactory, nil),
		TaskProject: resolver.NewTaskProjectResolver(uowFactory, nil),
		Employee:    resolver.NewEmployeeResolver(uowFactory),
	})

	// 4. Services
	publisherService := service.NewPublisherService(cfg.Assistant.QueryProcessedTopic, pubSub)
	consumerService := service.NewConsumerService(
		pubSub,
		cfg.Assistant.QueryProcessedTopic,
		uowFactory,
		natsPub,
		sysLogger,
	)

	assistantService := service.NewAssistantService(
		uowFactory,
		pipeline,
		dispatcher,
		publisherService,
		sysLogger,
	)

	// 5. Controllers
	return &Container{
		AssistantController: controller.NewAssistantController(assistantService),
		HealthController:    controller.NewHealthController(),

		ConsumerService: consumerService,

		Logger: sysLogger,
	}
}
