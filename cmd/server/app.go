/*
 * @Description: 应用组装与生命周期管理
 * @Author: 安知鱼
 * @Date: 2025-08-25 00:21:55
 * @LastEditTime: 2025-10-12 10:40:19
 * @LastEditors: 安知鱼
 */
package server

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/anzhiyu-c/user-tags/internal/app/listener"
	"github.com/anzhiyu-c/user-tags/internal/app/middleware"
	"github.com/anzhiyu-c/user-tags/internal/app/task"
	"github.com/anzhiyu-c/user-tags/internal/infra/persistence/database"
	ent_impl "github.com/anzhiyu-c/user-tags/internal/infra/persistence/ent"
	"github.com/anzhiyu-c/user-tags/internal/infra/router"
	"github.com/anzhiyu-c/user-tags/internal/pkg/event"
	"github.com/anzhiyu-c/user-tags/pkg/config"
	"github.com/anzhiyu-c/user-tags/pkg/domain/model"
	"github.com/anzhiyu-c/user-tags/pkg/domain/repository"
	auth_handler "github.com/anzhiyu-c/user-tags/pkg/handler/auth"
	suggest_handler "github.com/anzhiyu-c/user-tags/pkg/handler/suggest"
	tag_group_handler "github.com/anzhiyu-c/user-tags/pkg/handler/tag_group"
	tagged_item_handler "github.com/anzhiyu-c/user-tags/pkg/handler/tagged_item"
	user_tag_handler "github.com/anzhiyu-c/user-tags/pkg/handler/user_tag"
	"github.com/anzhiyu-c/user-tags/pkg/idgen"
	"github.com/anzhiyu-c/user-tags/pkg/service/auth"
	"github.com/anzhiyu-c/user-tags/pkg/service/setting"
	"github.com/anzhiyu-c/user-tags/pkg/service/suggest"
	"github.com/anzhiyu-c/user-tags/pkg/service/tag"
	"github.com/anzhiyu-c/user-tags/pkg/service/tagging"
	"github.com/anzhiyu-c/user-tags/pkg/service/user"
	"github.com/anzhiyu-c/user-tags/pkg/service/utility"

	"github.com/gin-gonic/gin"

	_ "github.com/anzhiyu-c/user-tags/ent/runtime"
)

// App 持有应用的全部组件，负责组装与生命周期管理。
type App struct {
	cfg        *config.Config
	engine     *gin.Engine
	eventBus   *event.EventBus
	scheduler  *task.Scheduler
	settingSvc setting.SettingService
	tokenSvc   auth.TokenService
	userSvc    user.Service
	tagSvc     tag.Service
	taggingSvc tagging.Service
	suggestSvc suggest.Service
	cacheSvc   utility.CacheService
	mw         *middleware.Middleware
}

func (a *App) PrintBanner() {
	banner := `

      ██╗   ██╗███████╗███████╗██████╗     ████████╗ █████╗  ██████╗ ███████╗
      ██║   ██║██╔════╝██╔════╝██╔══██╗    ╚══██╔══╝██╔══██╗██╔════╝ ██╔════╝
      ██║   ██║███████╗█████╗  ██████╔╝       ██║   ███████║██║  ███╗███████╗
      ██║   ██║╚════██║██╔══╝  ██╔══██╗       ██║   ██╔══██║██║   ██║╚════██║
      ╚██████╔╝███████║███████╗██║  ██║       ██║   ██║  ██║╚██████╔╝███████║
       ╚═════╝ ╚══════╝╚══════╝╚═╝  ╚═╝       ╚═╝   ╚═╝  ╚═╝ ╚═════╝ ╚══════╝

`
	log.Println(banner)
	log.Println("--------------------------------------------------------")
	log.Println(" User Tags - 用户标签服务")
	log.Println("--------------------------------------------------------")
}

// NewApp 是应用的构造函数，它执行所有的初始化和依赖注入工作
func NewApp() (*App, func(), error) {
	// --- Phase 1: 加载外部配置 ---
	cfg, err := config.NewConfig()
	if err != nil {
		return nil, nil, fmt.Errorf("加载配置失败: %w", err)
	}

	// --- Phase 2: 初始化基础设施 ---
	sqlDB, err := database.NewSQLDB(cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("创建数据库连接池失败: %w", err)
	}
	entClient, err := database.NewEntClient(sqlDB, cfg)
	if err != nil {
		sqlDB.Close()
		return nil, nil, err
	}

	// 尝试连接 Redis（如果失败，将自动降级到内存缓存）
	redisClient, err := database.NewRedisClient(context.Background(), cfg)
	if err != nil {
		sqlDB.Close()
		return nil, nil, fmt.Errorf("redis 初始化失败: %w", err)
	}

	eventBus := event.NewEventBus()

	cleanup := func() {
		log.Println("执行清理操作：关闭事件总线与数据库连接...")
		eventBus.Shutdown()
		sqlDB.Close()
		if redisClient != nil {
			log.Println("关闭 Redis 连接...")
			redisClient.Close()
		}
	}

	dbType := cfg.GetString(config.KeyDBType)
	if dbType == "" {
		dbType = "sqlite"
	}
	if dbType == "mariadb" {
		dbType = "mysql"
	}

	// --- Phase 3: 初始化数据仓库层 ---
	settingRepo := ent_impl.NewSettingRepo(entClient)
	userRepo := ent_impl.NewUserRepo(entClient)
	userGroupRepo := ent_impl.NewUserGroupRepo(entClient)
	tagGroupRepo := ent_impl.NewTagGroupRepo(entClient)
	userTagRepo := ent_impl.NewUserTagRepo(entClient, dbType)
	taggedItemRepo := ent_impl.NewTaggedItemRepo(entClient)
	txManager := ent_impl.NewEntTransactionManager(entClient, dbType)

	// --- Phase 4: 初始化 ID 编码器 ---
	// 从数据库获取或生成 IDSeed（存储在数据库中，不可被外部修改）
	idSeed, err := getOrCreateIDSeed(context.Background(), settingRepo, userRepo)
	if err != nil {
		return nil, cleanup, fmt.Errorf("获取 IDSeed 失败: %w", err)
	}
	if err := idgen.InitSqidsEncoderWithSeed(idSeed); err != nil {
		return nil, cleanup, fmt.Errorf("初始化 ID 编码器失败: %w", err)
	}
	log.Println("✅ ID 编码器初始化成功")

	// --- Phase 5: 初始化业务逻辑层 ---
	settingSvc := setting.NewSettingService(settingRepo)
	if err := settingSvc.LoadAllSettings(context.Background()); err != nil {
		return nil, cleanup, fmt.Errorf("加载系统设置失败: %w", err)
	}

	// 使用智能缓存工厂，自动选择 Redis 或内存缓存
	cacheSvc, cacheType := utility.NewCacheServiceWithFallback(redisClient)
	log.Printf("缓存服务类型: %s", cacheType)

	tokenSvc := auth.NewTokenService(userRepo, settingSvc)
	userSvc := user.NewService(userRepo, userGroupRepo, tokenSvc)
	if err := userSvc.EnsureDefaultGroups(context.Background()); err != nil {
		return nil, cleanup, err
	}

	tagSvc := tag.NewService(tagGroupRepo, userTagRepo, txManager, eventBus)
	taggingSvc := tagging.NewService(tagGroupRepo, userTagRepo, taggedItemRepo, txManager, eventBus)
	suggestSvc := suggest.NewService(tagGroupRepo, userTagRepo, cacheSvc, suggest.Options{
		CacheTTL:     time.Duration(cfg.GetInt(config.KeySuggestTTL)) * time.Second,
		DefaultLimit: cfg.GetInt(config.KeySuggestLimit),
	})

	// --- Phase 6: 注册事件监听器 ---
	listener.NewSuggestCacheListener(eventBus, suggestSvc)

	// --- Phase 7: 初始化 HTTP 层 ---
	mw := middleware.NewMiddleware(tokenSvc)
	authHandler := auth_handler.NewHandler(userSvc)
	userTagHandler := user_tag_handler.NewHandler(tagSvc)
	tagGroupHandler := tag_group_handler.NewHandler(tagSvc)
	taggedItemHandler := tagged_item_handler.NewHandler(taggingSvc)
	suggestHandler := suggest_handler.NewHandler(suggestSvc)

	if !cfg.GetBool(config.KeyServerDebug) {
		gin.SetMode(gin.ReleaseMode)
	}
	engine := gin.Default()
	engine.Use(middleware.Cors())

	apiRouter := router.NewRouter(
		authHandler,
		userTagHandler,
		tagGroupHandler,
		taggedItemHandler,
		suggestHandler,
		mw,
	)
	apiRouter.Setup(engine)

	// --- Phase 8: 初始化定时任务 ---
	scheduler := task.NewScheduler(userTagRepo, taggedItemRepo)

	app := &App{
		cfg:        cfg,
		engine:     engine,
		eventBus:   eventBus,
		scheduler:  scheduler,
		settingSvc: settingSvc,
		tokenSvc:   tokenSvc,
		userSvc:    userSvc,
		tagSvc:     tagSvc,
		taggingSvc: taggingSvc,
		suggestSvc: suggestSvc,
		cacheSvc:   cacheSvc,
		mw:         mw,
	}
	return app, cleanup, nil
}

// Config 返回应用配置
func (a *App) Config() *config.Config {
	return a.cfg
}

// Engine 返回 Gin 引擎
func (a *App) Engine() *gin.Engine {
	return a.engine
}

// EventBus 返回事件总线，用于发布和订阅事件
func (a *App) EventBus() *event.EventBus {
	return a.eventBus
}

func (a *App) Run() error {
	a.scheduler.RegisterJobs()
	a.scheduler.Start()

	port := a.cfg.GetString(config.KeyServerPort)
	if port == "" {
		port = "8092"
	}
	fmt.Printf("应用程序启动成功，正在监听端口: %s\n", port)

	return a.engine.Run(":" + port)
}

func (a *App) Stop() {
	if a.scheduler != nil {
		a.scheduler.Stop()
		log.Println("任务调度器已停止。")
	}
}

// getOrCreateIDSeed 从数据库获取或创建 IDSeed
// IDSeed 用于生成唯一的公共ID，存储在数据库中以防止被外部修改
// 重要：对于已有数据的老部署，使用空字符串（默认字母表）保持兼容
func getOrCreateIDSeed(ctx context.Context, settingRepo repository.SettingRepository, userRepo repository.UserRepository) (string, error) {
	const idSeedKey = "id_seed"

	// 尝试从数据库获取现有的 IDSeed
	existing, err := settingRepo.FindByKey(ctx, idSeedKey)
	if err == nil && existing != nil {
		if existing.Value != "" {
			log.Println("📦 已从数据库加载 IDSeed")
		} else {
			log.Println("📦 使用兼容模式（默认字母表）")
		}
		return existing.Value, nil
	}

	// id_seed 不存在，通过检查用户表是否有数据来判断是全新安装还是老部署升级
	userCount, err := userRepo.Count(ctx)
	if err != nil {
		log.Printf("警告: 无法查询用户数量: %v，假设为老部署升级", err)
		userCount = 1 // 保守处理，假设有用户
	}

	var newSeed string
	var comment string

	if userCount > 0 {
		// 已有用户数据，使用空字符串保持已发出的ID可以继续解码
		newSeed = ""
		comment = "兼容模式：老部署升级，使用默认字母表"
		log.Println("⚠️  检测到老部署升级，使用兼容模式（默认字母表）以保持已有ID正常解码")
	} else {
		newSeed, err = idgen.GenerateRandomSeed()
		if err != nil {
			return "", fmt.Errorf("生成随机 IDSeed 失败: %w", err)
		}
		comment = "系统自动生成的ID种子，用于生成唯一的公共ID，请勿修改"
		log.Println("✅ 全新安装，已生成随机 IDSeed")
	}

	if err := settingRepo.Save(ctx, &model.Setting{
		ConfigKey: idSeedKey,
		Value:     newSeed,
		Comment:   comment,
	}); err != nil {
		return "", fmt.Errorf("保存 IDSeed 到数据库失败: %w", err)
	}

	return newSeed, nil
}
