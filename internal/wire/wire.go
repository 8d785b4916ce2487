package wire

import (
	"Quill/internal/api"
	"Quill/internal/api/config"
	"Quill/internal/api/handler"
	"Quill/internal/api/view"
	"Quill/internal/job"
	"Quill/internal/pkg/cron"
	"Quill/internal/repository"
	"Quill/internal/service"
	"fmt"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ApplicationContainer 封装了应用运行所需的所有顶级组件
type ApplicationContainer struct {
	Router  *gin.Engine
	DB      *gorm.DB
	CronMgr *cron.Manager
}

func BuildApplication(db *gorm.DB, cfg *config.Config) (*ApplicationContainer, error) {
	categoryRepo := repository.NewCategoryRepository(db)
	tagRepo := repository.NewTagRepository(db)
	postRepo := repository.NewPostRepository(db)

	categoryService := service.NewCategoryService(categoryRepo)
	tagService := service.NewTagService(tagRepo)
	postService := service.NewPostService(postRepo)

	renderer := view.NewRenderer()
	handlers := &api.HandlersGroup{
		CategoryHandler: handler.NewCategoryHandler(categoryService, renderer),
		TagHandler:      handler.NewTagHandler(tagService, renderer),
		PostHandler:     handler.NewPostHandler(postService, tagService, categoryService, renderer),
	}

	router := api.SetupRouter(handlers)

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying DB: %w", err)
	}
	cronMgr := cron.NewCronManager(cfg.Cron.DBStats, job.NewDBStatsJob(sqlDB))

	return &ApplicationContainer{
		Router:  router,
		DB:      db,
		CronMgr: cronMgr,
	}, nil
}
