package rdb

import (
	"github.com/pkg/errors"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"Social_Model/internal/model"
)

const (
	DriverMySQL    = "mysql"
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// Open 按驱动名打开数据库，返回的句柄由调用方显式传给各仓储
func Open(driver, dsn string, logLevel logger.LogLevel) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch driver {
	case DriverMySQL:
		dialector = mysql.Open(dsn)
	case DriverPostgres:
		dialector = postgres.Open(dsn)
	case DriverSQLite:
		dialector = sqlite.Open(dsn)
	default:
		return nil, errors.Errorf("unsupported db driver %q", driver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		// 唯一键/外键冲突统一成 gorm.ErrDuplicatedKey / gorm.ErrForeignKeyViolated
		TranslateError: true,
		Logger:         logger.Default.LogMode(logLevel),
	})
	if err != nil {
		return nil, errors.Wrapf(err, "open %s", driver)
	}

	if driver == DriverSQLite {
		// 内存库每个连接各自独立，只保留一个连接
		sqlDB, err := db.DB()
		if err != nil {
			return nil, errors.Wrap(err, "sqlite pool")
		}
		sqlDB.SetMaxOpenConns(1)
		if err := db.Exec("PRAGMA foreign_keys = ON").Error; err != nil {
			return nil, errors.Wrap(err, "enable sqlite foreign keys")
		}
	}
	return db, nil
}

// Migrate 建表（user, follower, post, comment, media）
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.User{},
		&model.Follower{},
		&model.Post{},
		&model.Comment{},
		&model.Media{},
	)
}

// Store 五个仓储共享同一个数据库句柄
type Store struct {
	Users     *UserRepository
	Followers *FollowerRepository
	Posts     *PostRepository
	Comments  *CommentRepository
	Media     *MediaRepository
}

func NewStore(db *gorm.DB) *Store {
	return &Store{
		Users:     &UserRepository{DB: db},
		Followers: &FollowerRepository{DB: db},
		Posts:     &PostRepository{DB: db},
		Comments:  &CommentRepository{DB: db},
		Media:     &MediaRepository{DB: db},
	}
}
