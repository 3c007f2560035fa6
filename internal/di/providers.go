package di

import (
	"context"

	"gorm.io/gorm"

	"gogram/internal/common"
	"gogram/internal/config"
	"gogram/internal/dbmongo"
	"gogram/internal/media"
	"gogram/internal/photo"
	"gogram/internal/user"
)

// Application bundles everything main needs to assemble the router.
type Application struct {
	Config       *config.Config
	DB           *gorm.DB
	Mongo        *dbmongo.MongoClient
	JWT          *common.JWTManager
	UserHandler  *user.Handler
	PhotoHandler *photo.PhotoHandlers
	MediaServer  *media.HTTPServer
}

func provideMongo(cfg *config.Config) (*dbmongo.MongoClient, func(), error) {
	mc, err := dbmongo.NewMongoConnection(cfg)
	if err != nil {
		return nil, nil, err
	}
	cleanup := func() {
		_ = mc.Close(context.Background())
	}
	return mc, cleanup, nil
}

// Interface adapters so wire can hand concrete types to constructors that
// accept the consumer-side interfaces.

func providePhotoStore(r *photo.PhotoRepository) photo.PhotoStore { return r }

func provideMediaStore(ms *dbmongo.MediaStorage) photo.MediaStore { return ms }

func provideUserDirectory(repo user.UserRepository) photo.UserDirectory { return repo }

func providePhotoUsecase(svc *photo.PhotoService) photo.PhotoUsecase { return svc }

func providePhotoMediaUploader(ms *dbmongo.MediaStorage) photo.MediaUploader { return ms }

func provideUserMediaUploader(ms *dbmongo.MediaStorage) user.MediaUploader { return ms }
