package app

import (
	"imagetags/internal/auth"
	"imagetags/internal/repo"
	"imagetags/internal/services"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// Services holds all application services
type Services struct {
	DB              *gorm.DB
	AuthService     *auth.Service
	UserRepo        *repo.UserRepository
	AttachmentRepo  *repo.AttachmentRepository
	ContentRepo     *repo.ContentRepository
	SettingsRepo    *repo.SettingsRepository
	ProcessLogRepo  *repo.ProcessLogRepository
	SettingsService *services.SettingsService
	BatchService    *services.BatchService
	PreviewService  *services.PreviewService
	StorageService  *services.StorageService
	ProgressHub     *services.ProgressHub
}

// NewServices creates a new services container
func NewServices(db *gorm.DB) *Services {
	userRepo := repo.NewUserRepository(db)
	attachmentRepo := repo.NewAttachmentRepository(db)
	contentRepo := repo.NewContentRepository(db)
	settingsRepo := repo.NewSettingsRepository(db)
	processLogRepo := repo.NewProcessLogRepository(db)

	authService := auth.NewService(userRepo)
	settingsService := services.NewSettingsService(settingsRepo)
	if err := settingsService.EnsureDefaults(); err != nil {
		log.Warn().Err(err).Msg("Failed to seed default settings")
	}

	// storage is optional; preview then serves no thumbnails
	storageService, err := services.NewStorageService()
	if err != nil {
		log.Warn().Err(err).Msg("Storage service disabled")
	}

	progressHub := services.NewProgressHub()
	batchService := services.NewBatchService(attachmentRepo, contentRepo, processLogRepo, settingsService, progressHub)
	previewService := services.NewPreviewService(attachmentRepo, contentRepo, processLogRepo, settingsService, storageService, batchService)

	return &Services{
		DB:              db,
		AuthService:     authService,
		UserRepo:        userRepo,
		AttachmentRepo:  attachmentRepo,
		ContentRepo:     contentRepo,
		SettingsRepo:    settingsRepo,
		ProcessLogRepo:  processLogRepo,
		SettingsService: settingsService,
		BatchService:    batchService,
		PreviewService:  previewService,
		StorageService:  storageService,
		ProgressHub:     progressHub,
	}
}
